package export

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/jakefish18/wanikani-parser/internal/subject"
)

//go:embed templates/deck.md.go.tmpl
var fallbackDeckTemplate string

const fallbackDeckTemplateName = "deck.md.go.tmpl"

// Deck is the data passed to the deck template.
type Deck struct {
	Title string
	Date  time.Time
	Cards []Card
}

// Card has the subject on the front and labelled fields on the back.
// Fields with an empty value are left out by the embedded template.
type Card struct {
	Front string
	Back  []Field
}

type Field struct {
	Name  string
	Value string
}

func (e *Exporter) writeDeck(output io.Writer, kind subject.Kind, level int, rows []row) error {
	deck := Deck{
		Title: deckTitle(kind, level),
		Date:  e.now(),
		Cards: make([]Card, len(rows)),
	}
	for i, r := range rows {
		deck.Cards[i] = r.card()
	}
	return WriteDeck(output, e.templatePath, deck, e.logger)
}

func deckTitle(kind subject.Kind, level int) string {
	name := map[subject.Kind]string{
		subject.KindRadical:    "Radicals",
		subject.KindKanji:      "Kanji",
		subject.KindVocabulary: "Vocabulary",
	}[kind]
	return fmt.Sprintf("WaniKani %s up to level %d", name, level)
}

func WriteDeck(output io.Writer, templatePath string, deck Deck, logger *slog.Logger) error {
	tmpl, err := parseTemplateWithFallback(templatePath, fallbackDeckTemplate, logger)
	if err != nil {
		return fmt.Errorf("parseTemplateWithFallback() > %w", err)
	}
	if err := tmpl.Execute(output, deck); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}

func parseTemplateWithFallback(templatePath string, fallbackTemplate string, logger *slog.Logger) (*template.Template, error) {
	if logger == nil {
		logger = slog.Default()
	}
	funcMap := template.FuncMap{
		"join":  strings.Join,
		"upper": strings.ToUpper,
	}

	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			fileName := filepath.Base(templatePath)
			tmpl, err := template.New(fileName).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			logger.Warn("failed to parse a templatePath",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(fallbackDeckTemplateName).
		Funcs(funcMap).
		Parse(fallbackTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}
