package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/staticserve/core/handler"
	"github.com/dmitrymomot/staticserve/middleware"
)

func okHandler(ctx handler.Context) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(http.StatusOK)
		return nil
	}
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("generates_uuid_and_sets_header", func(t *testing.T) {
		t.Parallel()

		var captured string
		h := middleware.RequestID[handler.Context]()(func(ctx handler.Context) handler.Response {
			captured, _ = middleware.GetRequestID(ctx)
			return okHandler(ctx)
		})

		req := httptest.NewRequest(http.MethodGet, "/file.txt", nil)
		w := httptest.NewRecorder()
		ctx := handler.NewContext(w, req)
		require.NoError(t, h(ctx)(w, req))

		_, err := uuid.Parse(captured)
		assert.NoError(t, err)
		assert.Equal(t, captured, w.Header().Get("X-Request-ID"))
	})

	t.Run("reuses_existing_id_when_configured", func(t *testing.T) {
		t.Parallel()

		h := middleware.RequestIDWithConfig[handler.Context](middleware.RequestIDConfig{
			UseExisting: true,
		})(okHandler)

		req := httptest.NewRequest(http.MethodGet, "/file.txt", nil)
		req.Header.Set("X-Request-ID", "incoming-id")
		w := httptest.NewRecorder()
		require.NoError(t, h(handler.NewContext(w, req))(w, req))

		assert.Equal(t, "incoming-id", w.Header().Get("X-Request-ID"))
	})

	t.Run("ignores_incoming_id_by_default", func(t *testing.T) {
		t.Parallel()

		h := middleware.RequestID[handler.Context]()(okHandler)

		req := httptest.NewRequest(http.MethodGet, "/file.txt", nil)
		req.Header.Set("X-Request-ID", "incoming-id")
		w := httptest.NewRecorder()
		require.NoError(t, h(handler.NewContext(w, req))(w, req))

		assert.NotEqual(t, "incoming-id", w.Header().Get("X-Request-ID"))
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})
}
