// Package resolver maps radical labels found on kanji pages to stored radicals.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/jakefish18/wanikani-parser/internal/subject"
)

var ErrRadicalNotFound = errors.New("radical not found")

// RadicalNotFoundError is returned when a label is still unknown after a backfill.
type RadicalNotFoundError struct {
	Meaning string
}

func (e *RadicalNotFoundError) Error() string {
	return fmt.Sprintf("radical %q not found after backfill", e.Meaning)
}

func (e *RadicalNotFoundError) Unwrap() error {
	return ErrRadicalNotFound
}

// BackfillFunc re-ingests the radical catalogue and returns once it is complete.
type BackfillFunc func(ctx context.Context) error

// Resolver looks radicals up by meaning and backfills the catalogue at most
// once per lookup. Concurrent lookups share a single in-flight backfill.
type Resolver struct {
	radicals   subject.RadicalRepository
	backfill   BackfillFunc
	onBackfill func()
	logger     *slog.Logger
	group      singleflight.Group
}

type Option func(*Resolver)

// WithBackfillHook registers fn to be called each time a backfill starts.
func WithBackfillHook(fn func()) Option {
	return func(r *Resolver) {
		r.onBackfill = fn
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

func New(radicals subject.RadicalRepository, backfill BackfillFunc, opts ...Option) *Resolver {
	r := &Resolver{
		radicals: radicals,
		backfill: backfill,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the radical ids for labels, in label order. All labels
// missing from the catalogue share a single backfill.
func (r *Resolver) Resolve(ctx context.Context, labels []string) ([]int64, error) {
	radicals, err := r.resolve(ctx, labels)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, len(radicals))
	for i, radical := range radicals {
		ids[i] = radical.ID
	}
	return ids, nil
}

// ResolveOne finds the radical whose meaning equals label. When it is missing
// the radical catalogue is backfilled and the lookup retried exactly once.
func (r *Resolver) ResolveOne(ctx context.Context, label string) (*subject.Radical, error) {
	radicals, err := r.resolve(ctx, []string{label})
	if err != nil {
		return nil, err
	}
	return radicals[0], nil
}

func (r *Resolver) resolve(ctx context.Context, labels []string) ([]*subject.Radical, error) {
	radicals := make([]*subject.Radical, len(labels))
	var missing []int
	for i, label := range labels {
		radical, err := r.radicals.FindByMeaning(ctx, label)
		switch {
		case err == nil:
			radicals[i] = radical
		case errors.Is(err, subject.ErrNotFound):
			missing = append(missing, i)
		default:
			return nil, fmt.Errorf("find radical %q: %w", label, err)
		}
	}
	if len(missing) == 0 {
		return radicals, nil
	}

	first := labels[missing[0]]
	r.logger.Warn("Radicals are missing, backfilling radicals", "meaning", first, "missing", len(missing))
	if err := r.runBackfill(ctx); err != nil {
		return nil, fmt.Errorf("backfill radicals for %q: %w", first, err)
	}

	for _, i := range missing {
		radical, err := r.radicals.FindByMeaning(ctx, labels[i])
		if err != nil {
			if errors.Is(err, subject.ErrNotFound) {
				return nil, &RadicalNotFoundError{Meaning: labels[i]}
			}
			return nil, fmt.Errorf("find radical %q after backfill: %w", labels[i], err)
		}
		radicals[i] = radical
	}
	return radicals, nil
}

func (r *Resolver) runBackfill(ctx context.Context) error {
	_, err, _ := r.group.Do("radicals", func() (interface{}, error) {
		if r.onBackfill != nil {
			r.onBackfill()
		}
		return nil, r.backfill(ctx)
	})
	return err
}
