package log

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingHandler(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := NewZapLogger(zap.New(core))

	handler := NewLoggingHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}), logger)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/operators", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, 1, logs.Len())

	entry := logs.All()[0]
	fields := entry.ContextMap()
	assert.Equal(t, "request", entry.Message)
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/v1/operators", fields["path"])
	assert.Equal(t, int64(http.StatusTeapot), fields["status"])
}

func TestLoggingHandlerDefaultStatus(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	handler := NewLoggingHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}), NewZapLogger(zap.New(core)))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/graphql", nil))

	assert.Equal(t, 1, logs.FilterField(zap.Int("status", http.StatusOK)).Len())
}
