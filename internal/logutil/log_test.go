package logutil

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "warn", "json")
	require.NoError(t, err)
	logger.Info().Msg("hidden")
	logger.Warn().Msg("visible")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"message":"visible"`)

	_, err = New(&buf, "loud", "json")
	require.Error(t, err)
	_, err = New(&buf, "info", "xml")
	require.Error(t, err)
	_, err = New(&buf, "info", "console")
	require.NoError(t, err)
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := WithLogger(context.Background(), logger)
	l := GetOrDefault(ctx)
	l.Info().Msg("from context")
	require.Contains(t, buf.String(), "from context")
}

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	var sawLogger bool
	handler := AccessLog(logger, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := GetOrDefault(r.Context())
		sawLogger = l.GetLevel() == zerolog.DebugLevel
		w.WriteHeader(http.StatusUnauthorized)
	}))

	req := httptest.NewRequest(http.MethodGet, "/auth/verify", nil)
	req.Header.Set("Cookie", "selkies_session=super-secret-token")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, sawLogger)
	line := buf.String()
	require.Contains(t, line, `"http.status":401`)
	require.Contains(t, line, `"http.path":"/auth/verify"`)
	require.False(t, strings.Contains(line, "super-secret-token"), "cookies must never be logged")
}
