package subject

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/jakefish18/wanikani-parser/internal/database"
)

//go:generate mockgen -source=kanji_repository.go -destination=../mocks/subject/mock_kanji_repository.go -package=mock_subject

// KanjiRepository defines operations for managing kanji and their owned records.
type KanjiRepository interface {
	Create(ctx context.Context, kanji *Kanji) error
	BatchCreate(ctx context.Context, kanji []*Kanji) error
	ExistsByURL(ctx context.Context, url string) (bool, error)
	FindByURL(ctx context.Context, url string) (*Kanji, error)
	FindUpToLevel(ctx context.Context, level int) ([]Kanji, error)
	PrimaryMeaning(ctx context.Context, kanjiID int64) (*KanjiMeaning, error)
	PrimaryReadings(ctx context.Context, kanjiID int64) ([]KanjiReading, error)
	Radicals(ctx context.Context, kanjiID int64) ([]Radical, error)
}

var kanjiColumns = []string{"id", "url", "level", "symbol", "created_at"}

const (
	kanjiMeaningColumns = "id, kanji_id, meaning, is_primary, mnemonic, hint"
	kanjiReadingColumns = "id, kanji_id, reading, type, is_primary, mnemonic, hint"
)

// DBKanjiRepository implements KanjiRepository using sqlx.
type DBKanjiRepository struct {
	db *sqlx.DB
}

// NewDBKanjiRepository creates a new DBKanjiRepository.
func NewDBKanjiRepository(db *sqlx.DB) *DBKanjiRepository {
	return &DBKanjiRepository{db: db}
}

// Create inserts the kanji with its meanings, readings and radical links in one transaction.
func (r *DBKanjiRepository) Create(ctx context.Context, kanji *Kanji) error {
	return r.BatchCreate(ctx, []*Kanji{kanji})
}

// BatchCreate inserts several kanji and their owned records in a single transaction.
func (r *DBKanjiRepository) BatchCreate(ctx context.Context, kanji []*Kanji) error {
	if len(kanji) == 0 {
		return nil
	}

	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		for _, k := range kanji {
			if err := insertKanji(ctx, tx, k); err != nil {
				return fmt.Errorf("create kanji %s: %w", k.URL, err)
			}
		}
		return nil
	})
}

func insertKanji(ctx context.Context, tx *sqlx.Tx, kanji *Kanji) error {
	id, err := insertReturningID(ctx, tx, "kanji", []string{"url", "level", "symbol"}, kanji.URL, kanji.Level, kanji.Symbol)
	if err != nil {
		return err
	}
	kanji.ID = id

	if len(kanji.Meanings) > 0 {
		var args []interface{}
		for i := range kanji.Meanings {
			m := &kanji.Meanings[i]
			m.KanjiID = id
			args = append(args, m.KanjiID, m.Meaning, m.IsPrimary, m.Mnemonic, m.Hint)
		}
		q := buildMultiRowInsert("kanji_meanings", []string{"kanji_id", "meaning", "is_primary", "mnemonic", "hint"}, len(kanji.Meanings))
		if _, err := tx.ExecContext(ctx, q, args...); err != nil {
			return fmt.Errorf("insert kanji meanings: %w", err)
		}
	}

	if len(kanji.Readings) > 0 {
		var args []interface{}
		for i := range kanji.Readings {
			rd := &kanji.Readings[i]
			rd.KanjiID = id
			args = append(args, rd.KanjiID, rd.Reading, rd.Type, rd.IsPrimary, rd.Mnemonic, rd.Hint)
		}
		q := buildMultiRowInsert("kanji_readings", []string{"kanji_id", "reading", "type", "is_primary", "mnemonic", "hint"}, len(kanji.Readings))
		if _, err := tx.ExecContext(ctx, q, args...); err != nil {
			return fmt.Errorf("insert kanji readings: %w", err)
		}
	}

	radicalIDs := uniqueIDs(kanji.RadicalIDs)
	if len(radicalIDs) > 0 {
		var args []interface{}
		for _, radicalID := range radicalIDs {
			args = append(args, id, radicalID)
		}
		q := buildMultiRowInsert("kanji_radicals", []string{"kanji_id", "radical_id"}, len(radicalIDs))
		if _, err := tx.ExecContext(ctx, q, args...); err != nil {
			return fmt.Errorf("insert kanji radicals: %w", err)
		}
	}
	return nil
}

// uniqueIDs drops repeated ids and keeps the first occurrence order.
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	return result
}

func (r *DBKanjiRepository) ExistsByURL(ctx context.Context, url string) (bool, error) {
	return existsByURL(ctx, r.db, "kanji", url)
}

// FindByURL returns the kanji with its meanings, readings and radical ids.
func (r *DBKanjiRepository) FindByURL(ctx context.Context, url string) (*Kanji, error) {
	query, args, err := sq.Select(kanjiColumns...).From("kanji").Where(sq.Eq{"url": url}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build kanji query: %w", err)
	}
	var kanji Kanji
	if err := getOne(ctx, r.db, &kanji, query, args...); err != nil {
		return nil, fmt.Errorf("find kanji by url %s: %w", url, err)
	}

	if err := r.db.SelectContext(ctx, &kanji.Meanings,
		"SELECT "+kanjiMeaningColumns+" FROM kanji_meanings WHERE kanji_id = ? ORDER BY id", kanji.ID); err != nil {
		return nil, fmt.Errorf("load kanji meanings: %w", err)
	}
	if err := r.db.SelectContext(ctx, &kanji.Readings,
		"SELECT "+kanjiReadingColumns+" FROM kanji_readings WHERE kanji_id = ? ORDER BY id", kanji.ID); err != nil {
		return nil, fmt.Errorf("load kanji readings: %w", err)
	}
	if err := r.db.SelectContext(ctx, &kanji.RadicalIDs,
		"SELECT radical_id FROM kanji_radicals WHERE kanji_id = ? ORDER BY id", kanji.ID); err != nil {
		return nil, fmt.Errorf("load kanji radicals: %w", err)
	}
	return &kanji, nil
}

func (r *DBKanjiRepository) FindUpToLevel(ctx context.Context, level int) ([]Kanji, error) {
	query, args, err := sq.Select(kanjiColumns...).From("kanji").
		Where(sq.LtOrEq{"level": level}).
		OrderBy("level", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build kanji query: %w", err)
	}
	var kanji []Kanji
	if err := r.db.SelectContext(ctx, &kanji, query, args...); err != nil {
		return nil, fmt.Errorf("load kanji up to level %d: %w", level, err)
	}
	return kanji, nil
}

func (r *DBKanjiRepository) PrimaryMeaning(ctx context.Context, kanjiID int64) (*KanjiMeaning, error) {
	var meaning KanjiMeaning
	if err := getOne(ctx, r.db, &meaning,
		"SELECT "+kanjiMeaningColumns+" FROM kanji_meanings WHERE kanji_id = ? AND is_primary = ? ORDER BY id LIMIT 1",
		kanjiID, true); err != nil {
		return nil, fmt.Errorf("find primary meaning of kanji %d: %w", kanjiID, err)
	}
	return &meaning, nil
}

func (r *DBKanjiRepository) PrimaryReadings(ctx context.Context, kanjiID int64) ([]KanjiReading, error) {
	var readings []KanjiReading
	if err := r.db.SelectContext(ctx, &readings,
		"SELECT "+kanjiReadingColumns+" FROM kanji_readings WHERE kanji_id = ? AND is_primary = ? ORDER BY id",
		kanjiID, true); err != nil {
		return nil, fmt.Errorf("load primary readings of kanji %d: %w", kanjiID, err)
	}
	return readings, nil
}

// Radicals returns the kanji's component radicals in link order.
func (r *DBKanjiRepository) Radicals(ctx context.Context, kanjiID int64) ([]Radical, error) {
	query, args, err := sq.Select(prefixed("r", radicalColumns)...).
		From("kanji_radicals kr").
		Join("radicals r ON r.id = kr.radical_id").
		Where(sq.Eq{"kr.kanji_id": kanjiID}).
		OrderBy("kr.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build kanji radicals query: %w", err)
	}
	var radicals []Radical
	if err := r.db.SelectContext(ctx, &radicals, query, args...); err != nil {
		return nil, fmt.Errorf("load radicals of kanji %d: %w", kanjiID, err)
	}
	return radicals, nil
}

func prefixed(alias string, columns []string) []string {
	result := make([]string, len(columns))
	for i, c := range columns {
		result[i] = alias + "." + c
	}
	return result
}
