package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/orders/1", nil)
	HandleError(c, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestHandleError_FlatBody(t *testing.T) {
	w, body := render(t, ErrNotFound("orders", "Order", errors.New("record not found")))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.Equal(t, "orders", body["domain"])
	assert.Equal(t, "Order not found", body["message"])
	assert.NotContains(t, body, "details")
}

func TestHandleError_ValidationDetails(t *testing.T) {
	details := map[string]string{"email": `"email" must be a valid email address`}
	w, body := render(t, ValidationError(`Validation error: "email" must be a valid email address`, details))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, `Validation error: "email" must be a valid email address`, body["message"])
	assert.Equal(t, map[string]any{"email": `"email" must be a valid email address`}, body["details"])
}

func TestHandleError_HidesCause(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.1:5432: connection refused")

	w, body := render(t, FailedTo("orders", "create order", cause))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to create order", body["message"])
	assert.NotContains(t, w.Body.String(), "connection refused")

	w, body = render(t, cause)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", body["message"])
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestAsAppError_Wrapped(t *testing.T) {
	inner := NewBadRequestError("bad")
	wrapped := fmt.Errorf("handler: %w", inner)

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Same(t, inner, appErr)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestWrap_Unwraps(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := FailedTo("portfolio", "delete portfolio item", sentinel)
	assert.True(t, Is(err, sentinel))
	assert.Contains(t, err.Error(), "Failed to delete portfolio item")
}
