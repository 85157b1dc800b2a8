package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"atelier_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParamID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		value   string
		want    uint
		wantErr bool
	}{
		{value: "1", want: 1},
		{value: "42", want: 42},
		{value: "0", want: 0},
		{value: "-3", want: 0},
		{value: "99999999999999999999", want: 0},
		{value: "abc", wantErr: true},
		{value: "1.5", wantErr: true},
		{value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Params = gin.Params{{Key: "id", Value: tt.value}}

			id, err := ParseParamID(c, "id")
			if tt.wantErr {
				require.Error(t, err)
				appErr, ok := apperrors.AsAppError(err)
				require.True(t, ok)
				assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
				assert.Equal(t, "Invalid ID format", appErr.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}
