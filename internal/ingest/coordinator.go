// Package ingest walks the listing tiers of a subject kind and persists every
// detail page that is not stored yet.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jakefish18/wanikani-parser/internal/extractor"
	"github.com/jakefish18/wanikani-parser/internal/fetcher"
	"github.com/jakefish18/wanikani-parser/internal/media"
	"github.com/jakefish18/wanikani-parser/internal/metrics"
	"github.com/jakefish18/wanikani-parser/internal/resolver"
	"github.com/jakefish18/wanikani-parser/internal/subject"
)

// Config controls what a Coordinator ingests and how many units run at once.
type Config struct {
	BaseURL       string
	Difficulties  []subject.Difficulty
	Concurrency   int
	AudioFormat   extractor.AudioFormat
	DownloadMedia bool
}

// Coordinator runs ingestion for one kind at a time. Units of a tier run
// concurrently up to Config.Concurrency and are joined before the next tier starts.
type Coordinator struct {
	cfg        Config
	fetcher    fetcher.Fetcher
	radicals   subject.RadicalRepository
	kanji      subject.KanjiRepository
	words      subject.WordRepository
	resolver   *resolver.Resolver
	downloader *media.Downloader
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

type Option func(*Coordinator)

// WithDownloader stores radical images and word audio through d.
func WithDownloader(d *media.Downloader) Option {
	return func(c *Coordinator) {
		c.downloader = d
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Coordinator) {
		c.metrics = m
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Coordinator) {
		c.logger = logger
	}
}

func NewCoordinator(
	cfg Config,
	f fetcher.Fetcher,
	radicals subject.RadicalRepository,
	kanji subject.KanjiRepository,
	words subject.WordRepository,
	opts ...Option,
) *Coordinator {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if len(cfg.Difficulties) == 0 {
		cfg.Difficulties = subject.Difficulties
	}
	if cfg.AudioFormat == "" {
		cfg.AudioFormat = extractor.AudioMpeg
	}

	c := &Coordinator{
		cfg:      cfg,
		fetcher:  f,
		radicals: radicals,
		kanji:    kanji,
		words:    words,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.resolver = resolver.New(radicals, c.backfillRadicals,
		resolver.WithBackfillHook(c.metrics.Backfill),
		resolver.WithLogger(c.logger),
	)
	return c
}

// backfillRadicals re-runs radical ingestion. Unit failures of the backfill
// are left to the lookup that follows it.
func (c *Coordinator) backfillRadicals(ctx context.Context) error {
	_, err := c.Run(ctx, subject.KindRadical)
	return err
}

// RunAll ingests radicals, kanji and vocabulary in that order and stops at the first run error.
func (c *Coordinator) RunAll(ctx context.Context) ([]*Summary, error) {
	summaries := make([]*Summary, 0, len(subject.Kinds))
	for _, kind := range subject.Kinds {
		summary, err := c.Run(ctx, kind)
		if summary != nil {
			summaries = append(summaries, summary)
		}
		if err != nil {
			return summaries, err
		}
	}
	return summaries, nil
}

// Run ingests every configured tier of kind. A failed listing fetch or
// existence query aborts the run; failed units are only recorded in the summary.
func (c *Coordinator) Run(ctx context.Context, kind subject.Kind) (*Summary, error) {
	s, err := c.strategyFor(kind)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		RunID:     uuid.NewString(),
		Kind:      kind,
		StartedAt: time.Now(),
	}
	logger := c.logger.With("run_id", summary.RunID, "kind", string(kind))
	logger.Info("Starting ingestion run", "difficulties", len(c.cfg.Difficulties))

	err = c.runTiers(ctx, logger, kind, s, summary)
	summary.FinishedAt = time.Now()
	c.metrics.Run(string(kind), err)
	if err != nil {
		logger.Error("Ingestion run aborted", "error", err)
		return summary, err
	}

	logger.Info("Finished ingestion run",
		"created", summary.Created(),
		"skipped", summary.Skipped(),
		"failed", summary.Failed(),
		"duration", summary.FinishedAt.Sub(summary.StartedAt))
	return summary, nil
}

func (c *Coordinator) runTiers(ctx context.Context, logger *slog.Logger, kind subject.Kind, s strategy, summary *Summary) error {
	for _, difficulty := range c.cfg.Difficulties {
		tier, err := c.runTier(ctx, logger.With("difficulty", string(difficulty)), kind, s, difficulty)
		if err != nil {
			return fmt.Errorf("ingest %s %s: %w", kind, difficulty, err)
		}
		summary.Tiers = append(summary.Tiers, *tier)
	}
	return nil
}

func (c *Coordinator) runTier(ctx context.Context, logger *slog.Logger, kind subject.Kind, s strategy, difficulty subject.Difficulty) (*TierResult, error) {
	listingURL := kind.ListingURL(c.cfg.BaseURL, difficulty)
	doc, err := c.fetcher.Fetch(ctx, listingURL)
	if err != nil {
		return nil, fmt.Errorf("fetch listing: %w", err)
	}
	links, err := extractor.ListingLinks(doc, kind, c.cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("extract listing links: %w", err)
	}

	result := &TierResult{Difficulty: difficulty, Total: len(links)}
	// pending holds listing positions so unit progress counts against the whole listing.
	pending := make([]int, 0, len(links))
	for i, link := range links {
		exists, err := s.exists(ctx, link)
		if err != nil {
			return nil, fmt.Errorf("check %s: %w", link, err)
		}
		if exists {
			logger.Warn("Subject already exists", "progress", progress(i+1, len(links)), "url", link)
			result.Skipped++
			c.metrics.Unit(string(kind), metrics.OutcomeSkipped)
			continue
		}
		pending = append(pending, i)
	}
	result.Scheduled = len(pending)
	logger.Info("Scheduling units", "total", len(links), "scheduled", len(pending))

	// Each unit owns one slot, so no unit can abort or block its siblings.
	errs := make([]error, len(pending))
	var g errgroup.Group
	g.SetLimit(c.cfg.Concurrency)
	for i, index := range pending {
		link := links[index]
		g.Go(func() error {
			errs[i] = c.runUnit(ctx, s, link)
			unitLogger := logger.With("progress", progress(index+1, len(links)), "url", link)
			switch {
			case errs[i] == nil:
				unitLogger.Info("Stored subject")
			case errors.Is(errs[i], subject.ErrDuplicate):
				unitLogger.Warn("Subject stored concurrently")
			default:
				unitLogger.Error("Failed to ingest subject", "error", errs[i])
			}
			return nil
		})
	}
	_ = g.Wait()

	for i, err := range errs {
		switch {
		case err == nil:
			result.Created++
			c.metrics.Unit(string(kind), metrics.OutcomeCreated)
		case errors.Is(err, subject.ErrDuplicate):
			result.Skipped++
			c.metrics.Unit(string(kind), metrics.OutcomeSkipped)
		default:
			result.Failed++
			result.Failures = append(result.Failures, UnitError{URL: links[pending[i]], Err: err})
			c.metrics.Unit(string(kind), metrics.OutcomeFailed)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger.Info("Finished tier",
		"total", result.Total,
		"created", result.Created,
		"skipped", result.Skipped,
		"failed", result.Failed)
	return result, nil
}

// runUnit processes one detail page, turning a panic into that unit's error.
func (c *Coordinator) runUnit(ctx context.Context, s strategy, url string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while processing %s: %v", url, r)
		}
	}()
	return s.process(ctx, url)
}

func (c *Coordinator) saveMedia(ctx context.Context, url, key string) error {
	if !c.cfg.DownloadMedia || c.downloader == nil {
		return nil
	}
	return c.downloader.Save(ctx, url, key)
}

func progress(i, total int) string {
	return fmt.Sprintf("[%d/%d]", i, total)
}
