package subject

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/jakefish18/wanikani-parser/internal/database"
)

//go:generate mockgen -source=word_repository.go -destination=../mocks/subject/mock_word_repository.go -package=mock_subject

// WordRepository defines operations for managing vocabulary and their owned records.
type WordRepository interface {
	Create(ctx context.Context, word *Word) error
	BatchCreate(ctx context.Context, words []*Word) error
	ExistsByURL(ctx context.Context, url string) (bool, error)
	FindByURL(ctx context.Context, url string) (*Word, error)
	FindUpToLevel(ctx context.Context, level int) ([]Word, error)
	PrimaryMeaning(ctx context.Context, wordID int64) (*WordMeaning, error)
}

var wordColumns = []string{"id", "url", "level", "symbols", "reading", "reading_explanation", "reading_audio_filename", "types", "created_at"}

const wordMeaningColumns = "id, word_id, meaning, is_primary, explanation"

// DBWordRepository implements WordRepository using sqlx.
type DBWordRepository struct {
	db *sqlx.DB
}

// NewDBWordRepository creates a new DBWordRepository.
func NewDBWordRepository(db *sqlx.DB) *DBWordRepository {
	return &DBWordRepository{db: db}
}

// Create inserts the word with its meanings, context sentences and use patterns in one transaction.
func (r *DBWordRepository) Create(ctx context.Context, word *Word) error {
	return r.BatchCreate(ctx, []*Word{word})
}

func (r *DBWordRepository) BatchCreate(ctx context.Context, words []*Word) error {
	if len(words) == 0 {
		return nil
	}

	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		for _, w := range words {
			if err := insertWord(ctx, tx, w); err != nil {
				return fmt.Errorf("create word %s: %w", w.URL, err)
			}
		}
		return nil
	})
}

func insertWord(ctx context.Context, tx *sqlx.Tx, word *Word) error {
	id, err := insertReturningID(ctx, tx, "words",
		[]string{"url", "level", "symbols", "reading", "reading_explanation", "reading_audio_filename", "types"},
		word.URL, word.Level, word.Symbols, word.Reading, word.ReadingExplanation, word.ReadingAudioFilename, word.Types,
	)
	if err != nil {
		return err
	}
	word.ID = id

	if len(word.Meanings) > 0 {
		var args []interface{}
		for i := range word.Meanings {
			m := &word.Meanings[i]
			m.WordID = id
			args = append(args, m.WordID, m.Meaning, m.IsPrimary, m.Explanation)
		}
		q := buildMultiRowInsert("word_meanings", []string{"word_id", "meaning", "is_primary", "explanation"}, len(word.Meanings))
		if _, err := tx.ExecContext(ctx, q, args...); err != nil {
			return fmt.Errorf("insert word meanings: %w", err)
		}
	}

	if len(word.ContextSentences) > 0 {
		var args []interface{}
		for i := range word.ContextSentences {
			s := &word.ContextSentences[i]
			s.WordID = id
			args = append(args, s.WordID, s.Ordinal, s.Japanese, s.English)
		}
		q := buildMultiRowInsert("word_context_sentences", []string{"word_id", "ordinal", "japanese", "english"}, len(word.ContextSentences))
		if _, err := tx.ExecContext(ctx, q, args...); err != nil {
			return fmt.Errorf("insert word context sentences: %w", err)
		}
	}

	if len(word.UsePatterns) > 0 {
		var args []interface{}
		for i := range word.UsePatterns {
			p := &word.UsePatterns[i]
			p.WordID = id
			args = append(args, p.WordID, p.Ordinal, p.Pattern, p.Japanese, p.English)
		}
		q := buildMultiRowInsert("word_use_patterns", []string{"word_id", "ordinal", "pattern", "japanese", "english"}, len(word.UsePatterns))
		if _, err := tx.ExecContext(ctx, q, args...); err != nil {
			return fmt.Errorf("insert word use patterns: %w", err)
		}
	}
	return nil
}

func (r *DBWordRepository) ExistsByURL(ctx context.Context, url string) (bool, error) {
	return existsByURL(ctx, r.db, "words", url)
}

// FindByURL returns the word with its meanings, context sentences and use patterns.
func (r *DBWordRepository) FindByURL(ctx context.Context, url string) (*Word, error) {
	query, args, err := sq.Select(wordColumns...).From("words").Where(sq.Eq{"url": url}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build word query: %w", err)
	}
	var word Word
	if err := getOne(ctx, r.db, &word, query, args...); err != nil {
		return nil, fmt.Errorf("find word by url %s: %w", url, err)
	}

	if err := r.db.SelectContext(ctx, &word.Meanings,
		"SELECT "+wordMeaningColumns+" FROM word_meanings WHERE word_id = ? ORDER BY id", word.ID); err != nil {
		return nil, fmt.Errorf("load word meanings: %w", err)
	}
	if err := r.db.SelectContext(ctx, &word.ContextSentences,
		"SELECT id, word_id, ordinal, japanese, english FROM word_context_sentences WHERE word_id = ? ORDER BY ordinal", word.ID); err != nil {
		return nil, fmt.Errorf("load word context sentences: %w", err)
	}
	if err := r.db.SelectContext(ctx, &word.UsePatterns,
		"SELECT id, word_id, ordinal, pattern, japanese, english FROM word_use_patterns WHERE word_id = ? ORDER BY ordinal", word.ID); err != nil {
		return nil, fmt.Errorf("load word use patterns: %w", err)
	}
	return &word, nil
}

func (r *DBWordRepository) FindUpToLevel(ctx context.Context, level int) ([]Word, error) {
	query, args, err := sq.Select(wordColumns...).From("words").
		Where(sq.LtOrEq{"level": level}).
		OrderBy("level", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build words query: %w", err)
	}
	var words []Word
	if err := r.db.SelectContext(ctx, &words, query, args...); err != nil {
		return nil, fmt.Errorf("load words up to level %d: %w", level, err)
	}
	return words, nil
}

func (r *DBWordRepository) PrimaryMeaning(ctx context.Context, wordID int64) (*WordMeaning, error) {
	var meaning WordMeaning
	if err := getOne(ctx, r.db, &meaning,
		"SELECT "+wordMeaningColumns+" FROM word_meanings WHERE word_id = ? AND is_primary = ? ORDER BY id LIMIT 1",
		wordID, true); err != nil {
		return nil, fmt.Errorf("find primary meaning of word %d: %w", wordID, err)
	}
	return &meaning, nil
}
