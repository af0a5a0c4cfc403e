package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blog/config"
	deliverycontext "blog/internal/delivery/context"
	domainerrors "blog/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	mw := NewRequestIDMiddleware(logger)

	e := echo.New()

	t.Run("generates an id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		var seen string
		err := mw.Process(func(c echo.Context) error {
			seen = deliverycontext.RequestIDFromContext(c.Request().Context())
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("inside")

			return nil
		})(c)
		require.NoError(t, err)

		assert.Len(t, seen, 36)
		assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Contains(t, buf.String(), seen)
	})

	t.Run("keeps a well-formed client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "client-id.1")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, mw.Process(func(c echo.Context) error { return nil })(c))
		assert.Equal(t, "client-id.1", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Equal(t, "client-id.1", deliverycontext.RequestID(c))
	})

	t.Run("replaces a malformed client id", func(t *testing.T) {
		for _, bad := range []string{"has space", "<script>", strings.Repeat("a", 65)} {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(deliverycontext.HeaderXRequestID, bad)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, mw.Process(func(c echo.Context) error { return nil })(c))
			assert.NotEqual(t, bad, deliverycontext.RequestID(c))
			assert.Len(t, deliverycontext.RequestID(c), 36)
		}
	})
}

func newDebugLogger(buf *bytes.Buffer) *LoggerMiddleware {
	cfg := &config.Config{}
	cfg.Env.Debug = true

	return NewLoggerMiddleware(slog.New(slog.NewJSONHandler(buf, nil)), cfg)
}

func TestLoggerMiddleware_LevelByStatus(t *testing.T) {
	var buf bytes.Buffer
	mw := newDebugLogger(&buf)

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/missing?x=1", nil), httptest.NewRecorder())

	err := mw.Handle(func(c echo.Context) error {
		return c.String(http.StatusNotFound, "nope")
	})(c)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"uri":"/missing"`)
	assert.Contains(t, out, `"query":"x=1"`)
	assert.Contains(t, out, `"bytes_out":4`)
}

func TestLoggerMiddleware_StatusFromReturnedError(t *testing.T) {
	var buf bytes.Buffer
	mw := newDebugLogger(&buf)

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/post/9", nil), httptest.NewRecorder())

	err := mw.Handle(func(c echo.Context) error {
		return domainerrors.ErrPostNotFound
	})(c)
	require.ErrorIs(t, err, domainerrors.ErrPostNotFound)
	assert.Contains(t, buf.String(), `"status":404`)
}

func TestLoggerMiddleware_SkipsProbes(t *testing.T) {
	var buf bytes.Buffer
	mw := newDebugLogger(&buf)

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())

	require.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))
	assert.Zero(t, buf.Len())
}

func TestLoggerMiddleware_SilentWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	mw := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), &config.Config{})

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	require.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))
	assert.Zero(t, buf.Len())
}
