package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"studiodesk/internal/core/application/usecases/commands"
	"studiodesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var request *http.Request
	if body == "" {
		request = httptest.NewRequest(method, target, nil)
	} else {
		request = httptest.NewRequest(method, target, strings.NewReader(body))
		request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	recorder := httptest.NewRecorder()
	return e.NewContext(request, recorder), recorder
}

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var response ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	return response
}

func TestErrorJSON_RollbackConfirmationConflict(t *testing.T) {
	ctx, recorder := newTestContext(http.MethodPost, "/", "")

	err := errorJSON(ctx, commands.NewRollbackConfirmationRequiredError("Delivered"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, recorder.Code)
	response := decodeError(t, recorder)
	assert.Equal(t, "Delivered", response.CurrentStatus)
}

func TestErrorJSON_TransitionInFlightConflict(t *testing.T) {
	ctx, recorder := newTestContext(http.MethodPost, "/", "")

	require.NoError(t, errorJSON(ctx, commands.ErrTransitionInFlight))

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestErrorJSON_NotFound(t *testing.T) {
	ctx, recorder := newTestContext(http.MethodGet, "/", "")

	require.NoError(t, errorJSON(ctx, errs.NewObjectNotFoundError("order", "abc")))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestErrorJSON_DomainValidationIsUnprocessable(t *testing.T) {
	ctx, recorder := newTestContext(http.MethodPost, "/", "")
	require.NoError(t, errorJSON(ctx, errs.NewValueIsRequiredError("customerName")))
	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

	ctx, recorder = newTestContext(http.MethodPost, "/", "")
	require.NoError(t, errorJSON(ctx, errs.NewValueIsInvalidError("target")))
	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
}

func TestErrorJSON_UnknownErrorIsInternal(t *testing.T) {
	ctx, recorder := newTestContext(http.MethodGet, "/", "")

	require.NoError(t, errorJSON(ctx, assert.AnError))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, "Internal server error", decodeError(t, recorder).Message)
}

func TestGetHealth(t *testing.T) {
	server := &Server{}
	ctx, recorder := newTestContext(http.MethodGet, "/health", "")

	require.NoError(t, server.GetHealth(ctx))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "ok")
}

func TestComposeOrder_MalformedBodyIsBadRequest(t *testing.T) {
	server := &Server{}
	ctx, recorder := newTestContext(http.MethodPost, "/api/v1/orders", "{not json")

	require.NoError(t, server.ComposeOrder(ctx))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestComposeOrder_MissingItemsIsBadRequest(t *testing.T) {
	server := &Server{}
	body := `{"customerName":"Asha","paymentMode":"Cash","items":[]}`
	ctx, recorder := newTestContext(http.MethodPost, "/api/v1/orders", body)

	require.NoError(t, server.ComposeOrder(ctx))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestEditOrder_InvalidIDIsBadRequest(t *testing.T) {
	server := &Server{}
	ctx, recorder := newTestContext(http.MethodPut, "/", "")
	ctx.SetParamNames("orderId")
	ctx.SetParamValues("not-a-uuid")

	require.NoError(t, server.EditOrder(ctx))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestTransitionOrderStatus_UnknownTargetIsUnprocessable(t *testing.T) {
	server := &Server{}
	ctx, recorder := newTestContext(http.MethodPost, "/", `{"target":"Teleported"}`)
	ctx.SetParamNames("orderId")
	ctx.SetParamValues("0b39cb9b-2d0c-4f4c-9c89-1f2f8f6c1234")

	require.NoError(t, server.TransitionOrderStatus(ctx))

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
}

func TestCreateTransaction_UnknownKindIsUnprocessable(t *testing.T) {
	server := &Server{}
	body := `{"kind":"Lottery","customerName":"Ravi","amount":100,"paymentMode":"Cash"}`
	ctx, recorder := newTestContext(http.MethodPost, "/api/v1/transactions", body)

	require.NoError(t, server.CreateTransaction(ctx))

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
}

func TestParseDateParam(t *testing.T) {
	t.Run("empty is open", func(t *testing.T) {
		parsed, err := parseDateParam("")
		require.NoError(t, err)
		assert.Nil(t, parsed)
	})

	t.Run("bare date", func(t *testing.T) {
		parsed, err := parseDateParam("2026-08-01")
		require.NoError(t, err)
		require.NotNil(t, parsed)
		assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), *parsed)
	})

	t.Run("rfc3339", func(t *testing.T) {
		parsed, err := parseDateParam("2026-08-01T10:30:00Z")
		require.NoError(t, err)
		require.NotNil(t, parsed)
		assert.Equal(t, 10, parsed.Hour())
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := parseDateParam("yesterday")
		assert.Error(t, err)
	})
}

func TestParseBoolParam(t *testing.T) {
	parsed, err := parseBoolParam("")
	require.NoError(t, err)
	assert.Nil(t, parsed)

	parsed, err = parseBoolParam("true")
	require.NoError(t, err)
	require.NotNil(t, parsed)
	assert.True(t, *parsed)

	parsed, err = parseBoolParam("0")
	require.NoError(t, err)
	require.NotNil(t, parsed)
	assert.False(t, *parsed)

	_, err = parseBoolParam("maybe")
	assert.Error(t, err)
}
