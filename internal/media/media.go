// Package media stores radical images and vocabulary audio downloaded during ingestion.
package media

import (
	"context"
	"fmt"
	"log/slog"
	"path"

	"github.com/jakefish18/wanikani-parser/internal/config"
	"github.com/jakefish18/wanikani-parser/internal/fetcher"
)

const (
	DriverNone  = "none"
	DriverLocal = "local"
	DriverS3    = "s3"
)

// Store persists media files by key. Keys use forward slashes.
type Store interface {
	Exists(ctx context.Context, key string) (bool, error)
	Put(ctx context.Context, key string, data []byte) error
}

func ImageKey(filename string) string {
	return path.Join("images", filename)
}

func AudioKey(filename string) string {
	return path.Join("audio", filename)
}

// NewStore builds the store selected by cfg.Driver. The none driver returns a nil store.
func NewStore(ctx context.Context, cfg config.MediaConfig) (Store, error) {
	switch cfg.Driver {
	case DriverNone, "":
		return nil, nil
	case DriverLocal:
		return NewLocalStore(cfg.Directory), nil
	case DriverS3:
		return NewS3Store(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("unsupported media driver %q", cfg.Driver)
	}
}

// Downloader copies remote media into a Store, skipping keys that already exist.
type Downloader struct {
	fetcher fetcher.Fetcher
	store   Store
	logger  *slog.Logger
}

func NewDownloader(f fetcher.Fetcher, store Store, logger *slog.Logger) *Downloader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Downloader{fetcher: f, store: store, logger: logger}
}

// Save downloads url into key. Download failures are returned as *fetcher.FetchError.
func (d *Downloader) Save(ctx context.Context, url, key string) error {
	if url == "" {
		return nil
	}

	exists, err := d.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check media %s: %w", key, err)
	}
	if exists {
		d.logger.Debug("Media already stored", "key", key)
		return nil
	}

	data, err := d.fetcher.Download(ctx, url)
	if err != nil {
		return err
	}
	if err := d.store.Put(ctx, key, data); err != nil {
		return fmt.Errorf("store media %s: %w", key, err)
	}
	d.logger.Debug("Stored media", "key", key, "bytes", len(data))
	return nil
}
