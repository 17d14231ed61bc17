package httpx

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRecoveryMiddleware(t *testing.T) {
	log := discardLogger()

	t.Run("panic becomes 500", func(t *testing.T) {
		handler := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		}), AccessLogMiddleware(log), RecoveryMiddleware(log))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/blogs", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var response ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, "INTERNAL_ERROR", response.Error.Code)
	})

	t.Run("no panic passes through", func(t *testing.T) {
		handler := RecoveryMiddleware(log)(okHandler())

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/blogs", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
