package extractor

import (
	"strings"

	"github.com/go-shiori/dom"
	"golang.org/x/net/html"

	"github.com/jakefish18/wanikani-parser/internal/subject"
)

var componentSelector = mustSelector("section#section-components span.subject-character__meaning")

// KanjiDraft is an extracted kanji whose component radicals are still labels.
// The labels must be resolved to radical ids before the kanji is stored.
type KanjiDraft struct {
	Kanji         *subject.Kanji
	RadicalLabels []string
}

type KanjiExtractor struct{}

func NewKanjiExtractor() *KanjiExtractor {
	return &KanjiExtractor{}
}

// Extract reads a kanji detail page. The meaning and reading mnemonics are
// attached to the primary meanings and readings only.
func (e *KanjiExtractor) Extract(doc *html.Node, pageURL string) (*KanjiDraft, error) {
	level, err := Level(doc)
	if err != nil {
		return nil, err
	}
	symbol, err := Symbol(doc, subject.KindKanji)
	if err != nil {
		return nil, err
	}
	meanings, err := Meanings(doc)
	if err != nil {
		return nil, err
	}
	readings, err := Readings(doc)
	if err != nil {
		return nil, err
	}
	meaningMnemonic, err := MeaningMnemonic(doc)
	if err != nil {
		return nil, err
	}
	readingMnemonic, err := ReadingMnemonic(doc)
	if err != nil {
		return nil, err
	}

	terms := HighlightedTerms(doc, RadicalHighlightClass, KanjiHighlightClass, ReadingHighlightClass)
	meaningMnemonic = HighlightMnemonic(meaningMnemonic, terms)
	readingMnemonic = HighlightMnemonic(readingMnemonic, terms)

	kanji := &subject.Kanji{
		URL:    pageURL,
		Level:  level,
		Symbol: symbol,
	}
	for _, m := range meanings {
		meaning := subject.KanjiMeaning{Meaning: m.Text, IsPrimary: m.IsPrimary}
		if m.IsPrimary {
			meaning.Mnemonic = meaningMnemonic.Text
			meaning.Hint = meaningMnemonic.Hint
		}
		kanji.Meanings = append(kanji.Meanings, meaning)
	}
	for _, r := range readings {
		reading := subject.KanjiReading{Reading: r.Text, Type: r.Type, IsPrimary: r.IsPrimary}
		if r.IsPrimary {
			reading.Mnemonic = readingMnemonic.Text
			reading.Hint = readingMnemonic.Hint
		}
		kanji.Readings = append(kanji.Readings, reading)
	}

	return &KanjiDraft{Kanji: kanji, RadicalLabels: ComponentLabels(doc)}, nil
}

// ComponentLabels returns the meanings of the radicals listed in the components section.
func ComponentLabels(doc *html.Node) []string {
	var labels []string
	for _, span := range componentSelector.MatchAll(doc) {
		if label := strings.TrimSpace(dom.TextContent(span)); label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}
