package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go"

	"github.com/jakefish18/wanikani-parser/internal/config"
)

// Supervisor restarts a failed ingestion run from scratch after a fixed backoff.
// Already persisted subjects are skipped by the restarted run.
type Supervisor struct {
	attempts uint
	backoff  time.Duration
	logger   *slog.Logger
}

func NewSupervisor(cfg config.SupervisorConfig, logger *slog.Logger) *Supervisor {
	if logger == nil {
		logger = slog.Default()
	}
	attempts := cfg.MaxAttempts
	if attempts == 0 {
		attempts = 1
	}
	return &Supervisor{
		attempts: attempts,
		backoff:  time.Duration(cfg.BackoffSeconds) * time.Second,
		logger:   logger,
	}
}

// Run calls fn until it succeeds, the attempts are used up or ctx is done.
// It returns the last error of fn.
func (s *Supervisor) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	return retry.Do(
		func() error {
			return s.attempt(ctx, fn)
		},
		retry.Context(ctx),
		retry.Attempts(s.attempts),
		retry.Delay(s.backoff),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(error) bool {
			return ctx.Err() == nil
		}),
		retry.OnRetry(func(n uint, err error) {
			s.logger.Error("Ingestion run failed, restarting",
				"attempt", n+1,
				"max_attempts", s.attempts,
				"backoff", s.backoff,
				"error", err)
		}),
	)
}

func (s *Supervisor) attempt(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("ingestion run panicked: %v", r)
		}
	}()
	return fn(ctx)
}
