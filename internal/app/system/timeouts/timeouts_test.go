package timeouts_test

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/projecthub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

func TestDefaults(t *testing.T) {
	timeouts.Reset()
	if got := timeouts.Short(); got != timeouts.DefaultShort {
		t.Errorf("Short: got %v, want %v", got, timeouts.DefaultShort)
	}
	if got := timeouts.Long(); got != timeouts.DefaultLong {
		t.Errorf("Long: got %v, want %v", got, timeouts.DefaultLong)
	}
}

func TestConfigure_IgnoresZero(t *testing.T) {
	timeouts.Reset()
	defer timeouts.Reset()

	timeouts.Configure(timeouts.Config{Medium: 42 * time.Second})

	cfg := timeouts.Current()
	if cfg.Medium != 42*time.Second {
		t.Errorf("Medium: got %v, want 42s", cfg.Medium)
	}
	if cfg.Ping != timeouts.DefaultPing {
		t.Errorf("Ping changed: got %v", cfg.Ping)
	}
}

func TestWithTimeout(t *testing.T) {
	ctx, cancel := timeouts.WithTimeout(context.Background(), time.Millisecond, zap.NewNop(), "test")
	defer cancel()

	<-ctx.Done()
	if ctx.Err() != context.DeadlineExceeded {
		t.Errorf("expected DeadlineExceeded, got %v", ctx.Err())
	}
}
