package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/jakefish18/wanikani-parser/internal/bootstrap"
	"github.com/jakefish18/wanikani-parser/internal/ingest"
	"github.com/jakefish18/wanikani-parser/internal/metrics"
)

func newScheduleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Ingest every kind on the configured cron schedule and serve metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			app := bootstrap.New()
			return app.Run(cmd.Context(), func(ctx context.Context) error {
				repos, err := openRepositories(ctx, cfg.Database)
				if err != nil {
					return err
				}
				app.AddShutdownHook(repos.Close)

				m := metrics.New()
				coordinator, err := newCoordinator(ctx, cfg, repos, m)
				if err != nil {
					return err
				}
				supervisor := ingest.NewSupervisor(cfg.Ingest.Supervisor, slog.Default())

				scheduler, err := newScheduler(cfg.Schedule.Cron, func() {
					slog.Info("Running scheduled ingestion")
					err := supervisor.Run(ctx, func(ctx context.Context) error {
						_, err := coordinator.RunAll(ctx)
						return err
					})
					if err != nil {
						slog.Error("Scheduled ingestion failed", "error", err)
						return
					}
					slog.Info("Scheduled ingestion completed")
				})
				if err != nil {
					return err
				}
				scheduler.Start()
				app.AddShutdownHook(func(ctx context.Context) error {
					select {
					case <-scheduler.Stop().Done():
						return nil
					case <-ctx.Done():
						return ctx.Err()
					}
				})

				mux := http.NewServeMux()
				mux.Handle("/metrics", m.Handler())
				srv := &http.Server{
					Addr:              cfg.Metrics.Address,
					Handler:           mux,
					ReadHeaderTimeout: 15 * time.Second,
				}
				app.AddShutdownHook(srv.Shutdown)

				slog.Info("Serving metrics", "address", srv.Addr, "cron", cfg.Schedule.Cron)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
		},
	}
}

// newScheduler registers job on the cron expression. A run still in progress when the next
// tick fires makes that tick a no-op.
func newScheduler(expr string, job func()) (*cron.Cron, error) {
	scheduler := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := scheduler.AddFunc(expr, job); err != nil {
		return nil, fmt.Errorf("invalid cron schedule %q: %w", expr, err)
	}
	return scheduler, nil
}
