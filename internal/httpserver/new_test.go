package httpserver

import (
	"context"
	"testing"

	"github.com/gin-gonic/gin"

	"clinic-assistant/internal/middleware"
	"clinic-assistant/internal/model"
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

type fakeHandler struct{}

func (fakeHandler) Ask(c *gin.Context)       {}
func (fakeHandler) Visualize(c *gin.Context) {}

func TestNew(t *testing.T) {
	l := &mockLogger{}
	baseCfg := func() Config {
		return Config{
			Logger:           l,
			Port:             8080,
			Mode:             gin.DebugMode,
			Environment:      string(model.EnvironmentDevelopment),
			AssistantHandler: fakeHandler{},
			Middleware:       middleware.New(l, 0, 0),
		}
	}

	t.Run("Development Keeps Configured Mode", func(t *testing.T) {
		if _, err := New(l, baseCfg()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gin.Mode() != gin.DebugMode {
			t.Errorf("expected debug mode, got %s", gin.Mode())
		}
	})

	t.Run("Production Forces Release Mode", func(t *testing.T) {
		cfg := baseCfg()
		cfg.Environment = string(model.EnvironmentProduction)
		srv, err := New(l, cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gin.Mode() != gin.ReleaseMode {
			t.Errorf("expected release mode, got %s", gin.Mode())
		}
		if srv.mode != gin.ReleaseMode {
			t.Errorf("expected server mode %s, got %s", gin.ReleaseMode, srv.mode)
		}
	})

	t.Run("Missing Handler Rejected", func(t *testing.T) {
		cfg := baseCfg()
		cfg.AssistantHandler = nil
		if _, err := New(l, cfg); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("Missing Port Rejected", func(t *testing.T) {
		cfg := baseCfg()
		cfg.Port = 0
		if _, err := New(l, cfg); err == nil {
			t.Fatal("expected error")
		}
	})
}
