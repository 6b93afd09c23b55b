// Package export turns stored subjects into CSV, YAML and flashcard decks.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jakefish18/wanikani-parser/internal/subject"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
	FormatDeck Format = "deck"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatCSV, FormatYAML, FormatDeck:
		return f, nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// Extension is the file extension of an export written in f.
func (f Format) Extension() string {
	switch f {
	case FormatYAML:
		return ".yaml"
	case FormatDeck:
		return ".md"
	default:
		return ".csv"
	}
}

type row interface {
	record() []string
	card() Card
}

type Exporter struct {
	radicals     subject.RadicalRepository
	kanji        subject.KanjiRepository
	words        subject.WordRepository
	templatePath string
	logger       *slog.Logger
	now          func() time.Time
}

// NewExporter creates an exporter. templatePath may point to a custom deck
// template; the embedded one is used when it is empty or unreadable.
func NewExporter(
	radicals subject.RadicalRepository,
	kanji subject.KanjiRepository,
	words subject.WordRepository,
	templatePath string,
	logger *slog.Logger,
) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{
		radicals:     radicals,
		kanji:        kanji,
		words:        words,
		templatePath: templatePath,
		logger:       logger,
		now:          time.Now,
	}
}

// Export writes every subject of kind up to and including level to output.
// It returns the number of exported subjects.
func (e *Exporter) Export(ctx context.Context, kind subject.Kind, level int, format Format, output io.Writer) (int, error) {
	var (
		header []string
		rows   []row
		data   interface{}
	)
	switch kind {
	case subject.KindKanji:
		kanji, err := e.KanjiRows(ctx, level)
		if err != nil {
			return 0, fmt.Errorf("build kanji rows: %w", err)
		}
		header, rows, data = kanjiHeader, toRows(kanji), kanji
	case subject.KindVocabulary:
		words, err := e.VocabularyRows(ctx, level)
		if err != nil {
			return 0, fmt.Errorf("build vocabulary rows: %w", err)
		}
		header, rows, data = wordHeader, toRows(words), words
	case subject.KindRadical:
		radicals, err := e.RadicalRows(ctx, level)
		if err != nil {
			return 0, fmt.Errorf("build radical rows: %w", err)
		}
		header, rows, data = radicalHeader, toRows(radicals), radicals
	default:
		return 0, fmt.Errorf("unknown subject kind %q", kind)
	}

	var err error
	switch format {
	case FormatCSV:
		err = writeCSV(output, header, rows)
	case FormatYAML:
		err = writeYAML(output, data)
	case FormatDeck:
		err = e.writeDeck(output, kind, level, rows)
	default:
		err = fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return 0, err
	}

	e.logger.Info("Exported subjects", "kind", string(kind), "level", level, "format", string(format), "count", len(rows))
	return len(rows), nil
}

func toRows[T row](items []T) []row {
	rows := make([]row, len(items))
	for i, item := range items {
		rows[i] = item
	}
	return rows
}

func writeCSV(output io.Writer, header []string, rows []row) error {
	w := csv.NewWriter(output)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range rows {
		if err := w.Write(r.record()); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func writeYAML(output io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(output)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("close yaml encoder: %w", err)
	}
	return nil
}
