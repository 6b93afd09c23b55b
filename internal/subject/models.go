package subject

import (
	"database/sql"
	"time"
)

// Radical is the atomic building block of kanji.
type Radical struct {
	ID            int64          `db:"id"`
	URL           string         `db:"url"`
	Level         int            `db:"level"`
	Symbol        string         `db:"symbol"`
	Meaning       string         `db:"meaning"`
	Mnemonic      string         `db:"mnemonic"`
	ImageFilename sql.NullString `db:"image_filename"`
	IsImageSymbol bool           `db:"is_image_symbol"`
	CreatedAt     time.Time      `db:"created_at"`
}

// Label is the symbol, or the meaning for radicals only drawn as an image.
func (r Radical) Label() string {
	if r.Symbol != "" {
		return r.Symbol
	}
	return r.Meaning
}

type Kanji struct {
	ID        int64     `db:"id"`
	URL       string    `db:"url"`
	Level     int       `db:"level"`
	Symbol    string    `db:"symbol"`
	CreatedAt time.Time `db:"created_at"`

	Meanings   []KanjiMeaning `db:"-"`
	Readings   []KanjiReading `db:"-"`
	RadicalIDs []int64        `db:"-"`
}

// KanjiMeaning only carries a mnemonic and hint when primary.
type KanjiMeaning struct {
	ID        int64  `db:"id"`
	KanjiID   int64  `db:"kanji_id"`
	Meaning   string `db:"meaning"`
	IsPrimary bool   `db:"is_primary"`
	Mnemonic  string `db:"mnemonic"`
	Hint      string `db:"hint"`
}

// KanjiReading only carries a mnemonic and hint when primary.
type KanjiReading struct {
	ID        int64       `db:"id"`
	KanjiID   int64       `db:"kanji_id"`
	Reading   string      `db:"reading"`
	Type      ReadingType `db:"type"`
	IsPrimary bool        `db:"is_primary"`
	Mnemonic  string      `db:"mnemonic"`
	Hint      string      `db:"hint"`
}

type KanjiRadical struct {
	ID        int64 `db:"id"`
	KanjiID   int64 `db:"kanji_id"`
	RadicalID int64 `db:"radical_id"`
}

type Word struct {
	ID                   int64          `db:"id"`
	URL                  string         `db:"url"`
	Level                int            `db:"level"`
	Symbols              string         `db:"symbols"`
	Reading              string         `db:"reading"`
	ReadingExplanation   string         `db:"reading_explanation"`
	ReadingAudioFilename sql.NullString `db:"reading_audio_filename"`
	Types                string         `db:"types"`
	CreatedAt            time.Time      `db:"created_at"`

	Meanings         []WordMeaning         `db:"-"`
	ContextSentences []WordContextSentence `db:"-"`
	UsePatterns      []WordUsePattern      `db:"-"`
}

type WordMeaning struct {
	ID          int64  `db:"id"`
	WordID      int64  `db:"word_id"`
	Meaning     string `db:"meaning"`
	IsPrimary   bool   `db:"is_primary"`
	Explanation string `db:"explanation"`
}

type WordContextSentence struct {
	ID       int64  `db:"id"`
	WordID   int64  `db:"word_id"`
	Ordinal  int    `db:"ordinal"`
	Japanese string `db:"japanese"`
	English  string `db:"english"`
}

type WordUsePattern struct {
	ID       int64  `db:"id"`
	WordID   int64  `db:"word_id"`
	Ordinal  int    `db:"ordinal"`
	Pattern  string `db:"pattern"`
	Japanese string `db:"japanese"`
	English  string `db:"english"`
}
