package order_test

import (
	"testing"

	"studiodesk/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("instant class accepts Processing but not lab states", func(t *testing.T) {
		require.NoError(t, order.StatusProcessing.Validate(true))
		require.Error(t, order.StatusLabProcessing.Validate(true))
		require.Error(t, order.StatusLabReceived.Validate(true))
	})

	t.Run("regular class accepts lab states but not Processing", func(t *testing.T) {
		require.NoError(t, order.StatusLabProcessing.Validate(false))
		require.NoError(t, order.StatusLabReceived.Validate(false))
		require.Error(t, order.StatusProcessing.Validate(false))
	})

	t.Run("shared states valid for both classes", func(t *testing.T) {
		for _, isInstant := range []bool{true, false} {
			require.NoError(t, order.StatusPending.Validate(isInstant))
			require.NoError(t, order.StatusDelivered.Validate(isInstant))
			require.NoError(t, order.StatusDiscarded.Validate(isInstant))
		}
	})

	t.Run("unknown is always invalid", func(t *testing.T) {
		require.Error(t, order.StatusUnknown.Validate(true))
		require.Error(t, order.StatusUnknown.Validate(false))
	})
}

func TestStatus_AvailableTransitions(t *testing.T) {
	t.Run("instant pending offers processing and discard", func(t *testing.T) {
		assert.Equal(t,
			[]order.Status{order.StatusProcessing, order.StatusDiscarded},
			order.StatusPending.AvailableTransitions(true))
	})

	t.Run("regular pending offers lab processing and discard", func(t *testing.T) {
		assert.Equal(t,
			[]order.Status{order.StatusLabProcessing, order.StatusDiscarded},
			order.StatusPending.AvailableTransitions(false))
	})

	t.Run("regular chain runs through the lab", func(t *testing.T) {
		assert.Equal(t, []order.Status{order.StatusLabReceived},
			order.StatusLabProcessing.AvailableTransitions(false))
		assert.Equal(t, []order.Status{order.StatusDelivered},
			order.StatusLabReceived.AvailableTransitions(false))
	})

	t.Run("terminal states offer only rollback", func(t *testing.T) {
		for _, isInstant := range []bool{true, false} {
			assert.Equal(t, []order.Status{order.StatusPending},
				order.StatusDelivered.AvailableTransitions(isInstant))
			assert.Equal(t, []order.Status{order.StatusPending},
				order.StatusDiscarded.AvailableTransitions(isInstant))
		}
	})

	t.Run("class-mismatched states offer nothing", func(t *testing.T) {
		assert.Empty(t, order.StatusLabProcessing.AvailableTransitions(true))
		assert.Empty(t, order.StatusProcessing.AvailableTransitions(false))
	})
}

func TestStatus_NextAuto(t *testing.T) {
	t.Run("instant chain", func(t *testing.T) {
		next, ok := order.StatusPending.NextAuto(true)
		require.True(t, ok)
		assert.Equal(t, order.StatusProcessing, next)

		next, ok = order.StatusProcessing.NextAuto(true)
		require.True(t, ok)
		assert.Equal(t, order.StatusDelivered, next)
	})

	t.Run("regular chain", func(t *testing.T) {
		next, ok := order.StatusPending.NextAuto(false)
		require.True(t, ok)
		assert.Equal(t, order.StatusLabProcessing, next)

		next, ok = order.StatusLabProcessing.NextAuto(false)
		require.True(t, ok)
		assert.Equal(t, order.StatusLabReceived, next)

		next, ok = order.StatusLabReceived.NextAuto(false)
		require.True(t, ok)
		assert.Equal(t, order.StatusDelivered, next)
	})

	t.Run("terminal states have no auto advance", func(t *testing.T) {
		for _, isInstant := range []bool{true, false} {
			_, ok := order.StatusDelivered.NextAuto(isInstant)
			assert.False(t, ok)
			_, ok = order.StatusDiscarded.NextAuto(isInstant)
			assert.False(t, ok)
		}
	})

	t.Run("discard is never chosen automatically", func(t *testing.T) {
		next, ok := order.StatusPending.NextAuto(true)
		require.True(t, ok)
		assert.NotEqual(t, order.StatusDiscarded, next)
	})
}

func TestStatus_Transition(t *testing.T) {
	t.Run("valid transition returns target", func(t *testing.T) {
		got, err := order.StatusPending.Transition(order.StatusDiscarded, true)
		require.NoError(t, err)
		assert.Equal(t, order.StatusDiscarded, got)
	})

	t.Run("skipping a state is rejected", func(t *testing.T) {
		_, err := order.StatusPending.Transition(order.StatusDelivered, true)
		require.Error(t, err)

		_, err = order.StatusLabProcessing.Transition(order.StatusDelivered, false)
		require.Error(t, err)
	})

	t.Run("cross-class transition is rejected", func(t *testing.T) {
		_, err := order.StatusPending.Transition(order.StatusLabProcessing, true)
		require.Error(t, err)
	})

	t.Run("discard after pending is rejected", func(t *testing.T) {
		_, err := order.StatusProcessing.Transition(order.StatusDiscarded, true)
		require.Error(t, err)
	})
}

func TestStatus_IsRollback(t *testing.T) {
	assert.True(t, order.StatusDelivered.IsRollback(order.StatusPending))
	assert.True(t, order.StatusDiscarded.IsRollback(order.StatusPending))
	assert.False(t, order.StatusPending.IsRollback(order.StatusPending))
	assert.False(t, order.StatusPending.IsRollback(order.StatusProcessing))
}

func TestStatus_Strings(t *testing.T) {
	t.Run("display names", func(t *testing.T) {
		assert.Equal(t, "Pending", order.StatusPending.String())
		assert.Equal(t, "Lab Processing", order.StatusLabProcessing.String())
		assert.Equal(t, "Lab Received", order.StatusLabReceived.String())
		assert.Equal(t, "Unknown", order.Status(42).String())
	})

	t.Run("round trip through display name", func(t *testing.T) {
		for _, s := range []order.Status{
			order.StatusPending, order.StatusProcessing, order.StatusLabProcessing,
			order.StatusLabReceived, order.StatusDelivered, order.StatusDiscarded,
		} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("unrecognized name fails", func(t *testing.T) {
		_, err := order.StatusFromString("Shipped")
		require.Error(t, err)
	})
}
