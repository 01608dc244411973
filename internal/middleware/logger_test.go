package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-ledger/pkg/configpkg"
)

func TestNewLoggerLevel(t *testing.T) {
	testCases := []struct {
		name   string
		config configpkg.Config
		want   zerolog.Level
	}{
		{name: "Default", config: configpkg.Config{}, want: zerolog.InfoLevel},
		{name: "Debug", config: configpkg.Config{LogLevel: "debug"}, want: zerolog.DebugLevel},
		{name: "Invalid", config: configpkg.Config{LogLevel: "loud"}, want: zerolog.InfoLevel},
		{name: "Development", config: configpkg.Config{LogLevel: "warn", Environment: "development"}, want: zerolog.TraceLevel},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer

			l := NewLogger(&buf, tc.config)
			require.Equal(t, tc.want, l.GetLevel())
		})
	}
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer

	logger := NewLogger(&buf, configpkg.Config{LogLevel: "info"})

	engine := gin.New()
	engine.Use(RequestLogger(logger))
	engine.GET("/ping", func(c *gin.Context) {
		zerolog.Ctx(c.Request.Context()).Info().Msg("inside handler")
		c.Status(http.StatusNoContent)
	})

	t.Run("GeneratesRequestID", func(t *testing.T) {
		buf.Reset()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusNoContent, w.Code)

		id := w.Header().Get(RequestIDHeader)
		require.NotEmpty(t, id)
		require.Contains(t, buf.String(), `"request_id":"`+id+`"`)
		require.Contains(t, buf.String(), `"message":"inside handler"`)
		require.Contains(t, buf.String(), `"status_code":204`)
		require.Contains(t, buf.String(), `"path":"/ping"`)
	})

	t.Run("PropagatesRequestID", func(t *testing.T) {
		buf.Reset()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		engine.ServeHTTP(w, req)

		require.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
		require.Contains(t, buf.String(), `"request_id":"abc-123"`)
	})
}
