package subject

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/jakefish18/wanikani-parser/internal/database"
)

//go:generate mockgen -source=radical_repository.go -destination=../mocks/subject/mock_radical_repository.go -package=mock_subject

// RadicalRepository defines operations for managing radicals.
type RadicalRepository interface {
	Create(ctx context.Context, radical *Radical) error
	BatchCreate(ctx context.Context, radicals []*Radical) error
	ExistsByURL(ctx context.Context, url string) (bool, error)
	FindByURL(ctx context.Context, url string) (*Radical, error)
	FindByMeaning(ctx context.Context, meaning string) (*Radical, error)
	FindUpToLevel(ctx context.Context, level int) ([]Radical, error)
}

var radicalColumns = []string{"id", "url", "level", "symbol", "meaning", "mnemonic", "image_filename", "is_image_symbol", "created_at"}

var radicalInsertColumns = []string{"url", "level", "symbol", "meaning", "mnemonic", "image_filename", "is_image_symbol"}

// DBRadicalRepository implements RadicalRepository using sqlx.
type DBRadicalRepository struct {
	db *sqlx.DB
}

// NewDBRadicalRepository creates a new DBRadicalRepository.
func NewDBRadicalRepository(db *sqlx.DB) *DBRadicalRepository {
	return &DBRadicalRepository{db: db}
}

// Create inserts a radical and sets its ID.
func (r *DBRadicalRepository) Create(ctx context.Context, radical *Radical) error {
	return r.BatchCreate(ctx, []*Radical{radical})
}

// BatchCreate inserts radicals in a single transaction.
// Rows are inserted one by one so that every radical gets its own ID on any driver.
func (r *DBRadicalRepository) BatchCreate(ctx context.Context, radicals []*Radical) error {
	if len(radicals) == 0 {
		return nil
	}

	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		for _, radical := range radicals {
			id, err := insertReturningID(ctx, tx, "radicals", radicalInsertColumns,
				radical.URL, radical.Level, radical.Symbol, radical.Meaning, radical.Mnemonic,
				radical.ImageFilename, radical.IsImageSymbol,
			)
			if err != nil {
				return fmt.Errorf("create radical %s: %w", radical.URL, err)
			}
			radical.ID = id
		}
		return nil
	})
}

func (r *DBRadicalRepository) ExistsByURL(ctx context.Context, url string) (bool, error) {
	return existsByURL(ctx, r.db, "radicals", url)
}

func (r *DBRadicalRepository) FindByURL(ctx context.Context, url string) (*Radical, error) {
	query, args, err := sq.Select(radicalColumns...).From("radicals").Where(sq.Eq{"url": url}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build radical query: %w", err)
	}
	var radical Radical
	if err := getOne(ctx, r.db, &radical, query, args...); err != nil {
		return nil, fmt.Errorf("find radical by url %s: %w", url, err)
	}
	return &radical, nil
}

// FindByMeaning returns the oldest radical with the exact meaning.
func (r *DBRadicalRepository) FindByMeaning(ctx context.Context, meaning string) (*Radical, error) {
	query, args, err := sq.Select(radicalColumns...).From("radicals").
		Where(sq.Eq{"meaning": meaning}).
		OrderBy("id").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build radical query: %w", err)
	}
	var radical Radical
	if err := getOne(ctx, r.db, &radical, query, args...); err != nil {
		return nil, fmt.Errorf("find radical by meaning %s: %w", meaning, err)
	}
	return &radical, nil
}

func (r *DBRadicalRepository) FindUpToLevel(ctx context.Context, level int) ([]Radical, error) {
	query, args, err := sq.Select(radicalColumns...).From("radicals").
		Where(sq.LtOrEq{"level": level}).
		OrderBy("level", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build radicals query: %w", err)
	}
	var radicals []Radical
	if err := r.db.SelectContext(ctx, &radicals, query, args...); err != nil {
		return nil, fmt.Errorf("load radicals up to level %d: %w", level, err)
	}
	return radicals, nil
}
