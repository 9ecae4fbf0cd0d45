package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(rps float64, burst int) *gin.Engine {
		mw := New(&mockLogger{}, rps, burst)
		r := gin.New()
		r.GET("/ping", mw.RateLimit(), func(c *gin.Context) {
			c.String(http.StatusOK, "pong")
		})
		return r
	}

	t.Run("Allows Within Burst", func(t *testing.T) {
		r := newRouter(1, 3)
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
			if w.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i, w.Code)
			}
		}
	})

	t.Run("Throttles Beyond Burst", func(t *testing.T) {
		r := newRouter(1, 2)
		var last int
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
			last = w.Code
		}
		if last != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", last)
		}
	})

	t.Run("Limits Are Per Client", func(t *testing.T) {
		r := newRouter(1, 1)

		first := httptest.NewRequest(http.MethodGet, "/ping", nil)
		first.RemoteAddr = "10.0.0.1:1234"
		second := httptest.NewRequest(http.MethodGet, "/ping", nil)
		second.RemoteAddr = "10.0.0.2:1234"

		w1 := httptest.NewRecorder()
		r.ServeHTTP(w1, first)
		w2 := httptest.NewRecorder()
		r.ServeHTTP(w2, second)

		if w1.Code != http.StatusOK || w2.Code != http.StatusOK {
			t.Fatalf("expected both clients allowed, got %d and %d", w1.Code, w2.Code)
		}
	})

	t.Run("Bucket Is Reused Per Client", func(t *testing.T) {
		p := newLimiterPool(1, 1)
		if p.get("10.0.0.1") != p.get("10.0.0.1") {
			t.Error("expected a stable bucket per client")
		}
	})

	t.Run("Pool Stays Bounded Under Address Churn", func(t *testing.T) {
		p := newLimiterPool(1, 1)
		for i := 0; i < limiterPoolSize+100; i++ {
			p.get(fmt.Sprintf("10.%d.%d.%d", i/65536, i/256%256, i%256))
		}
		if n := p.limiters.Len(); n > limiterPoolSize {
			t.Errorf("expected at most %d buckets, got %d", limiterPoolSize, n)
		}
	})
}
