package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/jakefish18/wanikani-parser/internal/config"
	"github.com/jakefish18/wanikani-parser/internal/database"
	"github.com/jakefish18/wanikani-parser/internal/extractor"
	"github.com/jakefish18/wanikani-parser/internal/fetcher"
	"github.com/jakefish18/wanikani-parser/internal/ingest"
	"github.com/jakefish18/wanikani-parser/internal/media"
	"github.com/jakefish18/wanikani-parser/internal/metrics"
	"github.com/jakefish18/wanikani-parser/internal/subject"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// repositories holds the connection pool and the repositories sharing it.
type repositories struct {
	db       *sqlx.DB
	radicals *subject.DBRadicalRepository
	kanji    *subject.DBKanjiRepository
	words    *subject.DBWordRepository
}

// openRepositories opens the database and applies pending migrations.
func openRepositories(ctx context.Context, cfg config.DatabaseConfig) (*repositories, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	if _, err := database.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return &repositories{
		db:       db,
		radicals: subject.NewDBRadicalRepository(db),
		kanji:    subject.NewDBKanjiRepository(db),
		words:    subject.NewDBWordRepository(db),
	}, nil
}

func (r *repositories) Close(context.Context) error {
	return r.db.Close()
}

func newCoordinator(ctx context.Context, cfg *config.Config, repos *repositories, m *metrics.Metrics) (*ingest.Coordinator, error) {
	difficulties, err := subject.ParseDifficulties(cfg.Source.Difficulties)
	if err != nil {
		return nil, err
	}
	audioFormat, err := extractor.ParseAudioFormat(cfg.Ingest.AudioFormat)
	if err != nil {
		return nil, err
	}

	f := fetcher.NewHTTPFetcher(cfg.Source)
	opts := []ingest.Option{
		ingest.WithMetrics(m),
		ingest.WithLogger(slog.Default()),
	}
	if cfg.Ingest.DownloadMedia {
		store, err := media.NewStore(ctx, cfg.Media)
		if err != nil {
			return nil, fmt.Errorf("create media store: %w", err)
		}
		if store != nil {
			opts = append(opts, ingest.WithDownloader(media.NewDownloader(f, store, slog.Default())))
		}
	}

	return ingest.NewCoordinator(
		ingest.Config{
			BaseURL:       cfg.Source.BaseURL,
			Difficulties:  difficulties,
			Concurrency:   cfg.Ingest.Concurrency,
			AudioFormat:   audioFormat,
			DownloadMedia: cfg.Ingest.DownloadMedia,
		},
		f, repos.radicals, repos.kanji, repos.words,
		opts...,
	), nil
}
