package extractor

import (
	"strings"

	"github.com/go-shiori/dom"
	"golang.org/x/net/html"

	"github.com/jakefish18/wanikani-parser/internal/subject"
)

var (
	radicalMeaningSelector = mustSelector("p.subject-section__meanings-items")
	radicalImageSelector   = mustSelector("wk-character-image.radical-image")
)

// RadicalDraft is an extracted radical with the location of its symbol image, if any.
type RadicalDraft struct {
	Radical  *subject.Radical
	ImageURL string
}

type RadicalExtractor struct{}

func NewRadicalExtractor() *RadicalExtractor {
	return &RadicalExtractor{}
}

// Extract reads a radical detail page.
// Radicals drawn as an image get IsImageSymbol and an image filename named after their meaning.
func (e *RadicalExtractor) Extract(doc *html.Node, pageURL string) (*RadicalDraft, error) {
	level, err := Level(doc)
	if err != nil {
		return nil, err
	}
	symbol, err := Symbol(doc, subject.KindRadical)
	if err != nil {
		return nil, err
	}
	meaning, err := requiredText(doc, radicalMeaningSelector, "meaning")
	if err != nil {
		return nil, err
	}
	mnemonic, err := requiredText(doc, mnemonicTextSelector, "mnemonic")
	if err != nil {
		return nil, err
	}

	radical := &subject.Radical{
		URL:      pageURL,
		Level:    level,
		Symbol:   symbol,
		Meaning:  meaning,
		Mnemonic: Highlight(mnemonic, HighlightedTerms(doc, RadicalHighlightClass)),
	}

	draft := &RadicalDraft{Radical: radical}
	if img := radicalImageSelector.MatchFirst(doc); img != nil {
		radical.IsImageSymbol = true
		radical.ImageFilename = subject.NullString(RadicalImageFilename(meaning))
		draft.ImageURL = strings.TrimSpace(dom.GetAttribute(img, "src"))
	}
	return draft, nil
}

// RadicalImageFilename is the deterministic file name of a radical's symbol image.
func RadicalImageFilename(meaning string) string {
	return fileSafe(meaning) + ".svg"
}
