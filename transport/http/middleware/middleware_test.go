package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hallbook/config"
	"hallbook/infras/otel/mocks"
	"hallbook/shared/cache"
	cacheMocks "hallbook/shared/cache/mocks"
	"hallbook/shared/constant"
	"hallbook/transport/http/middleware"
)

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func newMiddleware(t *testing.T, cfg *config.Config) (middleware.AppMiddleware, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	return middleware.NewAppMiddleware(mocks.NewOtel(), cfg, mockCache), mockCache
}

func TestRequestID(t *testing.T) {
	mw, _ := newMiddleware(t, &config.Config{})

	var seen string

	handler := mw.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
	}))

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/halls", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(constant.RequestHeaderRequestID))
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/halls", nil)
		req.Header.Set(constant.RequestHeaderRequestID, "abc-123")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", rec.Header().Get(constant.RequestHeaderRequestID))
	})
}

func TestCORS_AllowsAnyOrigin(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true

	mw, _ := newMiddleware(t, cfg)
	handler := mw.CORS()(http.HandlerFunc(ok))

	req := httptest.NewRequest(http.MethodOptions, "/bookings", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Disabled(t *testing.T) {
	mw, _ := newMiddleware(t, &config.Config{})
	handler := mw.CORS()(http.HandlerFunc(ok))

	req := httptest.NewRequest(http.MethodGet, "/halls", nil)
	req.Header.Set("Origin", "http://example.com")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	const key = "limiter:10.0.0.1:test-agent"

	tests := []struct {
		name      string
		setupMock func(c *cacheMocks.MockRedisCache)
		wantCode  int
		remaining string
	}{
		{
			name: "first request in window",
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(cache.Nil)
				c.EXPECT().Save(gomock.Any(), key, 1, 60).Return(nil)
			},
			wantCode:  http.StatusOK,
			remaining: "1",
		},
		{
			name: "over the limit",
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), key, gomock.Any()).DoAndReturn(func(_ context.Context, _ string, value any) error {
					*value.(*int) = 2

					return nil
				})
			},
			wantCode: http.StatusTooManyRequests,
		},
		{
			name: "cache failure lets the request through",
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(errors.New("redis down"))
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw, mockCache := newMiddleware(t, cfg)
			tt.setupMock(mockCache)

			req := httptest.NewRequest(http.MethodGet, "/halls", nil)
			req.Header.Set(constant.RequestHeaderUserAgent, "test-agent")
			req.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.1, 192.168.0.1")

			rec := httptest.NewRecorder()
			mw.RateLimit()(http.HandlerFunc(ok)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.remaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}

func TestRecover(t *testing.T) {
	mw, _ := newMiddleware(t, &config.Config{})

	handler := mw.Recover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/halls", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
}

func TestMetricsAndTracing_PassThrough(t *testing.T) {
	mw, _ := newMiddleware(t, &config.Config{})

	router := chi.NewRouter()
	router.Use(mw.Tracing, mw.Metrics, mw.Logger)
	router.Get("/halls/{id}/availability", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/halls/3/availability", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
