package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/nirmaan-labs/nirmaan/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// sweepUserService stubs the session-sweep path. The rest of the user
// service is never called by the worker.
type sweepUserService struct {
	calls   atomic.Int64
	deleted int64
	err     error
}

func (s *sweepUserService) Login(ctx context.Context, username, password string) (*domain.LoginResult, error) {
	panic("not used")
}

func (s *sweepUserService) Logout(ctx context.Context, token string) error {
	panic("not used")
}

func (s *sweepUserService) GetBySessionToken(ctx context.Context, token string) (*domain.AdminUser, error) {
	panic("not used")
}

func (s *sweepUserService) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	s.calls.Add(1)
	return s.deleted, s.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() Config {
	return Config{
		Interval:        time.Second,
		SweepTimeout:    time.Second,
		ShutdownTimeout: time.Second,
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "interval too short",
			mutate:  func(c *Config) { c.Interval = 100 * time.Millisecond },
			wantErr: "interval",
		},
		{
			name:    "sweep timeout too short",
			mutate:  func(c *Config) { c.SweepTimeout = 0 },
			wantErr: "sweep timeout",
		},
		{
			name:    "shutdown timeout too short",
			mutate:  func(c *Config) { c.ShutdownTimeout = 500 * time.Millisecond },
			wantErr: "shutdown timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)

			err := config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(&sweepUserService{}, Config{}, testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestWorkerSweepsOnStart(t *testing.T) {
	svc := &sweepUserService{deleted: 3}
	w, err := New(svc, testConfig(), testLogger())
	require.NoError(t, err)

	w.Start(context.Background())
	defer w.Stop()

	require.Eventually(t, func() bool {
		return svc.calls.Load() >= 1
	}, time.Second, 10*time.Millisecond)
}

func TestWorkerStops(t *testing.T) {
	svc := &sweepUserService{}
	w, err := New(svc, testConfig(), testLogger())
	require.NoError(t, err)

	w.Start(context.Background())

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestWorkerSurvivesSweepError(t *testing.T) {
	svc := &sweepUserService{err: errors.New("db unavailable")}
	w, err := New(svc, Config{
		Interval:        time.Second,
		SweepTimeout:    time.Second,
		ShutdownTimeout: time.Second,
	}, testLogger())
	require.NoError(t, err)

	w.Start(context.Background())

	require.Eventually(t, func() bool {
		return svc.calls.Load() >= 1
	}, time.Second, 10*time.Millisecond)

	w.Stop()
}
