package queries_test

import (
	"testing"
	"time"

	"studiodesk/internal/core/application/usecases/queries"
	"studiodesk/internal/core/domain/model/transaction"
	"studiodesk/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestNewGetTransactionsQuery(t *testing.T) {
	t.Run("open filters are valid", func(t *testing.T) {
		query, err := queries.NewGetTransactionsQuery(
			transaction.KindUnknown, transaction.StatusUnknown, nil, nil)
		require.NoError(t, err)
		require.NoError(t, query.Validate())
	})

	t.Run("kind and status filters are preserved", func(t *testing.T) {
		query, err := queries.NewGetTransactionsQuery(
			transaction.KindBillPayment, transaction.StatusPending, nil, nil)
		require.NoError(t, err)
		require.Equal(t, transaction.KindBillPayment, query.Kind())
		require.Equal(t, transaction.StatusPending, query.Status())
	})

	t.Run("invalid kind is rejected", func(t *testing.T) {
		_, err := queries.NewGetTransactionsQuery(
			transaction.Kind(99), transaction.StatusUnknown, nil, nil)
		require.Error(t, err)
	})

	t.Run("inverted date range is rejected", func(t *testing.T) {
		from := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
		to := from.Add(-time.Hour)

		_, err := queries.NewGetTransactionsQuery(
			transaction.KindUnknown, transaction.StatusUnknown, &from, &to)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var query queries.GetTransactionsQuery
		require.ErrorIs(t, query.Validate(), queries.ErrGetTransactionsQueryIsNotConstructed)
	})
}
