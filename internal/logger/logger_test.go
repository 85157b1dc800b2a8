package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext_AddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("production", &buf)
	t.Cleanup(func() { Init("test") })

	ctx := WithRequestID(context.Background(), "req-42")
	CtxWithError(ctx, "storage failed", errors.New("boom"), "kind", "order")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "storage failed", line["msg"])
	assert.Equal(t, "req-42", line["request_id"])
	assert.Equal(t, "boom", line["error"])
	assert.Equal(t, "order", line["kind"])
	assert.Equal(t, "ERROR", line["level"])
}

func TestHTTPLog_LevelFollowsStatus(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("production", &buf)
	t.Cleanup(func() { Init("test") })

	HTTPLog("GET", "/api/orders", 200, time.Millisecond, 10)
	HTTPLog("GET", "/api/orders/9", 404, time.Millisecond, 10)
	HTTPLog("POST", "/api/orders", 500, time.Millisecond, 10)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	levels := make([]string, 0, len(lines))
	for _, l := range lines {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(l), &rec))
		levels = append(levels, rec["level"].(string))
	}
	assert.Equal(t, []string{"INFO", "WARN", "ERROR"}, levels)
}

func TestGetRequestID_Empty(t *testing.T) {
	assert.Equal(t, "", GetRequestID(context.Background()))
}
