package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeProvider is a scriptable provider for manager tests.
type fakeProvider struct {
	name  string
	calls int
	fn    func(call int) (*Response, error)
}

func (f *fakeProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	f.calls++
	return f.fn(f.calls)
}

func (f *fakeProvider) Name() string  { return f.name }
func (f *fakeProvider) Model() string { return f.name + "-model" }

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, args ...any)  {}

func okResponse(text string) *Response {
	return &Response{
		Content: Message{Role: "assistant", Parts: []Part{{Text: text}}},
		Usage:   &Usage{},
	}
}

func TestManagerGenerateContent(t *testing.T) {
	ctx := context.Background()
	req := &Request{Messages: []Message{{Role: "user", Parts: []Part{{Text: "hi"}}}}}

	t.Run("No Providers", func(t *testing.T) {
		m := NewManager(nil, &Config{RetryAttempts: 1}, nopLogger{})
		_, err := m.GenerateContent(ctx, req)
		if !errors.Is(err, ErrNoProvidersConfigured) {
			t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
		}
	})

	t.Run("Retries Transient Failures", func(t *testing.T) {
		p := &fakeProvider{name: "gemini", fn: func(call int) (*Response, error) {
			if call < 3 {
				return nil, errors.New("transient")
			}
			return okResponse("done"), nil
		}}
		m := NewManager([]Provider{p}, &Config{RetryAttempts: 3, RetryDelay: time.Millisecond}, nopLogger{})

		resp, err := m.GenerateContent(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != "done" {
			t.Errorf("unexpected text: %q", resp.Text())
		}
		if p.calls != 3 {
			t.Errorf("expected 3 attempts, got %d", p.calls)
		}
	})

	t.Run("Falls Back By Priority", func(t *testing.T) {
		fail := &fakeProvider{name: "gemini", fn: func(int) (*Response, error) {
			return nil, errors.New("down")
		}}
		ok := &fakeProvider{name: "deepseek", fn: func(int) (*Response, error) {
			return okResponse("fallback"), nil
		}}
		m := NewManager([]Provider{fail, ok}, &Config{
			FallbackEnabled: true,
			RetryAttempts:   2,
			RetryDelay:      time.Millisecond,
		}, nopLogger{})

		resp, err := m.GenerateContent(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != "fallback" {
			t.Errorf("expected fallback provider response, got %q", resp.Text())
		}
		if fail.calls != 2 {
			t.Errorf("expected 2 attempts on primary, got %d", fail.calls)
		}
	})

	t.Run("Fallback Disabled Stops After First Provider", func(t *testing.T) {
		fail := &fakeProvider{name: "gemini", fn: func(int) (*Response, error) {
			return nil, errors.New("down")
		}}
		second := &fakeProvider{name: "deepseek", fn: func(int) (*Response, error) {
			return okResponse("never"), nil
		}}
		m := NewManager([]Provider{fail, second}, &Config{
			FallbackEnabled: false,
			RetryAttempts:   1,
		}, nopLogger{})

		_, err := m.GenerateContent(ctx, req)
		if !errors.Is(err, ErrAllProvidersFailed) {
			t.Errorf("expected ErrAllProvidersFailed, got %v", err)
		}
		if second.calls != 0 {
			t.Errorf("second provider should not be tried, got %d calls", second.calls)
		}
	})

	t.Run("All Providers Fail", func(t *testing.T) {
		a := &fakeProvider{name: "gemini", fn: func(int) (*Response, error) {
			return nil, errors.New("down")
		}}
		b := &fakeProvider{name: "deepseek", fn: func(int) (*Response, error) {
			return nil, errors.New("also down")
		}}
		m := NewManager([]Provider{a, b}, &Config{
			FallbackEnabled: true,
			RetryAttempts:   1,
		}, nopLogger{})

		_, err := m.GenerateContent(ctx, req)
		if !errors.Is(err, ErrAllProvidersFailed) {
			t.Errorf("expected ErrAllProvidersFailed, got %v", err)
		}
	})
}
