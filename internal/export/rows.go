package export

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jakefish18/wanikani-parser/internal/subject"
)

// KanjiRow is one kanji flattened for spreadsheets and flashcards.
type KanjiRow struct {
	Level           int    `yaml:"level"`
	Symbol          string `yaml:"symbol"`
	Radicals        string `yaml:"radicals"`
	Meaning         string `yaml:"meaning"`
	Readings        string `yaml:"readings"`
	ReadingMnemonic string `yaml:"reading_mnemonic"`
	ReadingHint     string `yaml:"reading_hint,omitempty"`
	MeaningMnemonic string `yaml:"meaning_mnemonic"`
	MeaningHint     string `yaml:"meaning_hint,omitempty"`
}

var kanjiHeader = []string{"level", "symbol", "radicals", "meaning", "readings", "reading_mnemonic", "reading_hint", "meaning_mnemonic", "meaning_hint"}

func (r KanjiRow) record() []string {
	return []string{strconv.Itoa(r.Level), r.Symbol, r.Radicals, r.Meaning, r.Readings, r.ReadingMnemonic, r.ReadingHint, r.MeaningMnemonic, r.MeaningHint}
}

func (r KanjiRow) card() Card {
	return Card{
		Front: r.Symbol,
		Back: []Field{
			{Name: "Level", Value: strconv.Itoa(r.Level)},
			{Name: "Radicals", Value: r.Radicals},
			{Name: "Meaning", Value: r.Meaning},
			{Name: "Readings", Value: r.Readings},
			{Name: "Reading mnemonic", Value: r.ReadingMnemonic},
			{Name: "Reading hint", Value: r.ReadingHint},
			{Name: "Meaning mnemonic", Value: r.MeaningMnemonic},
			{Name: "Meaning hint", Value: r.MeaningHint},
		},
	}
}

// WordRow is one vocabulary item flattened for spreadsheets and flashcards.
type WordRow struct {
	Level              int    `yaml:"level"`
	Symbols            string `yaml:"symbols"`
	Reading            string `yaml:"reading"`
	Meaning            string `yaml:"meaning"`
	MeaningExplanation string `yaml:"meaning_explanation"`
	ReadingExplanation string `yaml:"reading_explanation"`
	AudioFilename      string `yaml:"audio_filename,omitempty"`
}

var wordHeader = []string{"level", "symbols", "reading", "meaning", "meaning_explanation", "reading_explanation", "audio_filename"}

func (r WordRow) record() []string {
	return []string{strconv.Itoa(r.Level), r.Symbols, r.Reading, r.Meaning, r.MeaningExplanation, r.ReadingExplanation, r.AudioFilename}
}

func (r WordRow) card() Card {
	return Card{
		Front: r.Symbols,
		Back: []Field{
			{Name: "Level", Value: strconv.Itoa(r.Level)},
			{Name: "Reading", Value: r.Reading},
			{Name: "Meaning", Value: r.Meaning},
			{Name: "Meaning explanation", Value: r.MeaningExplanation},
			{Name: "Reading explanation", Value: r.ReadingExplanation},
			{Name: "Audio", Value: r.AudioFilename},
		},
	}
}

// RadicalRow is one radical flattened for spreadsheets and flashcards.
type RadicalRow struct {
	Level    int    `yaml:"level"`
	Symbol   string `yaml:"symbol"`
	Meaning  string `yaml:"meaning"`
	Mnemonic string `yaml:"mnemonic"`
}

var radicalHeader = []string{"level", "symbol", "meaning", "mnemonic"}

func (r RadicalRow) record() []string {
	return []string{strconv.Itoa(r.Level), r.Symbol, r.Meaning, r.Mnemonic}
}

func (r RadicalRow) card() Card {
	return Card{
		Front: r.Symbol,
		Back: []Field{
			{Name: "Level", Value: strconv.Itoa(r.Level)},
			{Name: "Meaning", Value: r.Meaning},
			{Name: "Mnemonic", Value: r.Mnemonic},
		},
	}
}

// KanjiRows builds the rows of every kanji up to and including level.
func (e *Exporter) KanjiRows(ctx context.Context, level int) ([]KanjiRow, error) {
	kanji, err := e.kanji.FindUpToLevel(ctx, level)
	if err != nil {
		return nil, err
	}

	rows := make([]KanjiRow, 0, len(kanji))
	for _, k := range kanji {
		row := KanjiRow{Level: k.Level, Symbol: k.Symbol}

		radicals, err := e.kanji.Radicals(ctx, k.ID)
		if err != nil {
			return nil, err
		}
		labels := make([]string, len(radicals))
		for i, r := range radicals {
			labels[i] = r.Label()
		}
		row.Radicals = strings.Join(labels, " + ")

		meaning, err := e.kanji.PrimaryMeaning(ctx, k.ID)
		switch {
		case err == nil:
			row.Meaning = meaning.Meaning
			row.MeaningMnemonic = meaning.Mnemonic
			row.MeaningHint = meaning.Hint
		case errors.Is(err, subject.ErrNotFound):
			e.logger.Warn("Kanji has no primary meaning", "symbol", k.Symbol, "url", k.URL)
		default:
			return nil, err
		}

		readings, err := e.kanji.PrimaryReadings(ctx, k.ID)
		if err != nil {
			return nil, err
		}
		formatted := make([]string, len(readings))
		for i, r := range readings {
			formatted[i] = fmt.Sprintf("%s(%s)", r.Reading, r.Type)
			// every primary reading carries the same mnemonic
			row.ReadingMnemonic = r.Mnemonic
			row.ReadingHint = r.Hint
		}
		row.Readings = strings.Join(formatted, ", ")

		rows = append(rows, row)
	}
	return rows, nil
}

// VocabularyRows builds the rows of every word up to and including level.
func (e *Exporter) VocabularyRows(ctx context.Context, level int) ([]WordRow, error) {
	words, err := e.words.FindUpToLevel(ctx, level)
	if err != nil {
		return nil, err
	}

	rows := make([]WordRow, 0, len(words))
	for _, w := range words {
		row := WordRow{
			Level:              w.Level,
			Symbols:            w.Symbols,
			Reading:            w.Reading,
			ReadingExplanation: w.ReadingExplanation,
			AudioFilename:      w.ReadingAudioFilename.String,
		}
		meaning, err := e.words.PrimaryMeaning(ctx, w.ID)
		switch {
		case err == nil:
			row.Meaning = meaning.Meaning
			row.MeaningExplanation = meaning.Explanation
		case errors.Is(err, subject.ErrNotFound):
			e.logger.Warn("Word has no primary meaning", "symbols", w.Symbols, "url", w.URL)
		default:
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// RadicalRows builds the rows of every radical up to and including level.
func (e *Exporter) RadicalRows(ctx context.Context, level int) ([]RadicalRow, error) {
	radicals, err := e.radicals.FindUpToLevel(ctx, level)
	if err != nil {
		return nil, err
	}

	rows := make([]RadicalRow, len(radicals))
	for i, r := range radicals {
		rows[i] = RadicalRow{
			Level:    r.Level,
			Symbol:   r.Label(),
			Meaning:  r.Meaning,
			Mnemonic: r.Mnemonic,
		}
	}
	return rows, nil
}
