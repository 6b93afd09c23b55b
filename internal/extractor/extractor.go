// Package extractor turns parsed subject pages into draft entities.
//
// The primitives in this file are shared by the radical, kanji and
// vocabulary extractors; each kind has its own extractor type.
package extractor

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/go-shiori/dom"
	"golang.org/x/net/html"

	"github.com/jakefish18/wanikani-parser/internal/subject"
)

const (
	RadicalHighlightClass    = "radical-highlight"
	KanjiHighlightClass      = "kanji-highlight"
	ReadingHighlightClass    = "reading-highlight"
	VocabularyHighlightClass = "vocabulary-highlight"
)

const primaryReadingClass = "subject-readings__reading--primary"

const primaryMeaningTitle = "Primary"

var wordTypeMeaningTitles = []string{"Word Type", "WordType"}

// selector keeps the CSS source next to the compiled matcher for error reports.
type selector struct {
	css string
	cascadia.Selector
}

func mustSelector(css string) selector {
	return selector{css: css, Selector: cascadia.MustCompile(css)}
}

var (
	levelSelector          = mustSelector("a.page-header__icon--level")
	meaningBlockSelector   = mustSelector("div.subject-section__meanings")
	meaningTitleSelector   = mustSelector("h2.subject-section__meanings-title")
	meaningItemsSelector   = mustSelector("p.subject-section__meanings-items")
	mnemonicTextSelector   = mustSelector("p.subject-section__text")
	hintSelector           = mustSelector("p.subject-hint__text")
	readingGroupSelector   = mustSelector("div.subject-readings__reading")
	readingTitleSelector   = mustSelector("h3.subject-readings__reading-title")
	readingItemsSelector   = mustSelector("p.subject-readings__reading-items")
	meaningSectionSelector = mustSelector("section.subject-section--meaning")
	readingSectionSelector = mustSelector("section.subject-section--reading")
	paragraphSelector      = mustSelector("p")
)

// Meaning is a meaning as listed on a kanji or vocabulary page.
type Meaning struct {
	Text      string
	IsPrimary bool
}

// Mnemonic is the explanation text of one page section and its optional hint.
type Mnemonic struct {
	Text string
	Hint string
}

// Reading is one kanji reading with its classified type.
type Reading struct {
	Text      string
	Type      subject.ReadingType
	IsPrimary bool
}

// ListingLinks returns the unlocked detail-page URLs of a listing page in document order.
// Relative links are resolved against baseURL.
func ListingLinks(doc *html.Node, kind subject.Kind, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url %s: %w", baseURL, err)
	}

	marker := cascadia.MustCompile(fmt.Sprintf(
		"a.subject-character.subject-character--%s.subject-character--grid.subject-character--unlocked", kind))

	var links []string
	for _, a := range marker.MatchAll(doc) {
		href := strings.TrimSpace(dom.GetAttribute(a, "href"))
		if href == "" {
			continue
		}
		ref, err := url.Parse(href)
		if err != nil {
			return nil, &ExtractionError{Field: "listing link", Selector: href, Err: err}
		}
		links = append(links, base.ResolveReference(ref).String())
	}
	return links, nil
}

// Level parses the page's level badge.
func Level(doc *html.Node) (int, error) {
	text, err := requiredText(doc, levelSelector, "level")
	if err != nil {
		return 0, err
	}
	level, err := strconv.Atoi(text)
	if err != nil {
		return 0, &ExtractionError{Field: "level", Selector: levelSelector.css, Err: err}
	}
	return level, nil
}

// Symbol returns the header symbol of a subject page of the given kind.
// Radicals drawn as an image have an empty symbol.
func Symbol(doc *html.Node, kind subject.Kind) (string, error) {
	return requiredText(doc, mustSelector("span.page-header__icon--"+string(kind)), "symbol")
}

// Meanings scans the labeled meaning blocks. The "Primary" block yields one
// primary meaning, word type blocks are skipped and every other block yields
// one non-primary meaning per comma separated item.
func Meanings(doc *html.Node) ([]Meaning, error) {
	var meanings []Meaning
	for _, block := range meaningBlockSelector.MatchAll(doc) {
		title, err := requiredText(block, meaningTitleSelector, "meaning title")
		if err != nil {
			return nil, err
		}
		items, err := requiredText(block, meaningItemsSelector, "meaning items")
		if err != nil {
			return nil, err
		}

		switch {
		case title == primaryMeaningTitle:
			meanings = append(meanings, Meaning{Text: items, IsPrimary: true})
		case slices.Contains(wordTypeMeaningTitles, title):
		default:
			for _, item := range splitList(items) {
				meanings = append(meanings, Meaning{Text: item})
			}
		}
	}
	return meanings, nil
}

// WordTypes returns the text of the word type block, or an empty string.
func WordTypes(doc *html.Node) string {
	for _, block := range meaningBlockSelector.MatchAll(doc) {
		title, err := requiredText(block, meaningTitleSelector, "meaning title")
		if err != nil || !slices.Contains(wordTypeMeaningTitles, title) {
			continue
		}
		if items, err := requiredText(block, meaningItemsSelector, "word types"); err == nil {
			return items
		}
	}
	return ""
}

// MeaningMnemonic extracts the mnemonic of the meaning section.
func MeaningMnemonic(doc *html.Node) (Mnemonic, error) {
	return sectionMnemonic(doc, meaningSectionSelector)
}

// ReadingMnemonic extracts the mnemonic of the reading section.
func ReadingMnemonic(doc *html.Node) (Mnemonic, error) {
	return sectionMnemonic(doc, readingSectionSelector)
}

func sectionMnemonic(doc *html.Node, section selector) (Mnemonic, error) {
	node := section.MatchFirst(doc)
	if node == nil {
		return Mnemonic{}, &ExtractionError{Field: "mnemonic", Selector: section.css}
	}

	// Paragraphs are trimmed and joined with one space so sentences never run together.
	var parts []string
	for _, p := range mnemonicTextSelector.MatchAll(node) {
		if text := strings.TrimSpace(dom.TextContent(p)); text != "" {
			parts = append(parts, text)
		}
	}

	var hint string
	if h := hintSelector.MatchFirst(node); h != nil {
		hint = strings.TrimSpace(dom.TextContent(h))
	}
	return Mnemonic{Text: strings.Join(parts, " "), Hint: hint}, nil
}

// HighlightedTerms returns the texts of all spans carrying one of the highlight classes.
func HighlightedTerms(doc *html.Node, classes ...string) []string {
	var terms []string
	for _, class := range classes {
		for _, span := range cascadia.MustCompile("span." + class).MatchAll(doc) {
			if term := strings.TrimSpace(dom.TextContent(span)); term != "" {
				terms = append(terms, term)
			}
		}
	}
	return terms
}

// Highlight upper-cases every occurrence of each term in text.
// Replacement repeats until no lower-case occurrence is left, so applying it
// again with the same terms changes nothing.
func Highlight(text string, terms []string) string {
	for {
		next := text
		for _, term := range terms {
			if term == "" {
				continue
			}
			next = strings.ReplaceAll(next, term, strings.ToUpper(term))
		}
		if next == text {
			return text
		}
		text = next
	}
}

// HighlightMnemonic applies Highlight to both the text and the hint.
func HighlightMnemonic(m Mnemonic, terms []string) Mnemonic {
	return Mnemonic{Text: Highlight(m.Text, terms), Hint: Highlight(m.Hint, terms)}
}

// ClassifyReading maps a reading group label to its reading type.
// Any label outside On'yomi, Kun'yomi and Nanori is rejected.
func ClassifyReading(label string) (subject.ReadingType, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(label), "’", "'")
	switch normalized {
	case "On'yomi":
		return subject.ReadingOn, nil
	case "Kun'yomi":
		return subject.ReadingKun, nil
	case "Nanori":
		return subject.ReadingNanori, nil
	}
	return "", &UnknownReadingTypeError{Label: label}
}

// Readings extracts every reading group of a kanji page. Groups whose items
// read "None" yield nothing; primary groups mark all their readings primary.
func Readings(doc *html.Node) ([]Reading, error) {
	var readings []Reading
	for _, group := range readingGroupSelector.MatchAll(doc) {
		title, err := requiredText(group, readingTitleSelector, "reading title")
		if err != nil {
			return nil, err
		}
		readingType, err := ClassifyReading(title)
		if err != nil {
			return nil, err
		}
		items, err := requiredText(group, readingItemsSelector, "reading items")
		if err != nil {
			return nil, err
		}
		if items == "None" {
			continue
		}

		isPrimary := slices.Contains(strings.Fields(dom.ClassName(group)), primaryReadingClass)
		for _, item := range splitList(items) {
			readings = append(readings, Reading{Text: item, Type: readingType, IsPrimary: isPrimary})
		}
	}
	return readings, nil
}

// sentencePair returns the trimmed texts of the first two paragraphs of node.
func sentencePair(node *html.Node, field string) (string, string, error) {
	ps := paragraphSelector.MatchAll(node)
	if len(ps) < 2 {
		return "", "", &ExtractionError{Field: field, Selector: paragraphSelector.css}
	}
	return strings.TrimSpace(dom.TextContent(ps[0])), strings.TrimSpace(dom.TextContent(ps[1])), nil
}

func requiredText(node *html.Node, sel selector, field string) (string, error) {
	found := sel.MatchFirst(node)
	if found == nil {
		return "", &ExtractionError{Field: field, Selector: sel.css}
	}
	return strings.TrimSpace(dom.TextContent(found)), nil
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
