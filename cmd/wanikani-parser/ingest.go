package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jakefish18/wanikani-parser/internal/bootstrap"
	"github.com/jakefish18/wanikani-parser/internal/ingest"
	"github.com/jakefish18/wanikani-parser/internal/metrics"
	"github.com/jakefish18/wanikani-parser/internal/subject"
)

const ingestAll = "all"

func newIngestCommand() *cobra.Command {
	var once bool
	cmd := &cobra.Command{
		Use:       "ingest {radicals|kanji|vocabulary|all}",
		Short:     "Ingest subjects that are not stored yet",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"radicals", "kanji", "vocabulary", ingestAll},
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := parseIngestTarget(args[0])
			if err != nil {
				return err
			}
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

				coordinator, err := newCoordinator(ctx, cfg, repos, metrics.New())
				if err != nil {
					return err
				}

				run := func(ctx context.Context) error {
					for _, kind := range kinds {
						summary, err := coordinator.Run(ctx, kind)
						if summary != nil {
							printSummary(cmd.OutOrStdout(), summary)
						}
						if err != nil {
							return err
						}
					}
					return nil
				}
				if once {
					return run(ctx)
				}
				return ingest.NewSupervisor(cfg.Ingest.Supervisor, slog.Default()).Run(ctx, run)
			})
		},
	}
	cmd.Flags().BoolVar(&once, "once", false, "run once instead of restarting failed runs")
	return cmd
}

func parseIngestTarget(target string) ([]subject.Kind, error) {
	if target == ingestAll {
		return subject.Kinds, nil
	}
	kind, err := subject.ParseKind(target)
	if err != nil {
		return nil, err
	}
	return []subject.Kind{kind}, nil
}

func printSummary(output io.Writer, summary *ingest.Summary) {
	_, _ = color.New(color.Bold).Fprintf(output, "%s run %s (%s)\n",
		summary.Kind, summary.RunID, summary.FinishedAt.Sub(summary.StartedAt).Round(time.Millisecond))
	for _, tier := range summary.Tiers {
		_, _ = fmt.Fprintf(output, "  %-9s total=%d scheduled=%d created=%d skipped=%d failed=%d\n",
			tier.Difficulty, tier.Total, tier.Scheduled, tier.Created, tier.Skipped, tier.Failed)
	}

	failures := summary.Failures()
	if len(failures) == 0 {
		_, _ = color.New(color.FgGreen).Fprintf(output, "  created %d, skipped %d\n", summary.Created(), summary.Skipped())
		return
	}
	red := color.New(color.FgRed)
	_, _ = red.Fprintf(output, "  %d of %d units failed\n", len(failures), summary.Scheduled())
	for _, failure := range failures {
		_, _ = red.Fprintf(output, "    %s\n", failure.Error())
	}
}
