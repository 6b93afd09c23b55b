package extractor

import (
	"fmt"
	"strings"

	"github.com/go-shiori/dom"
	"golang.org/x/net/html"

	"github.com/jakefish18/wanikani-parser/internal/subject"
)

// AudioFormat selects one of the encodings offered for a reading recording.
type AudioFormat string

const (
	AudioWebm AudioFormat = "webm"
	AudioMpeg AudioFormat = "mpeg"
)

// audioSourceIndex is the position of each format among the audio element's sources.
var audioSourceIndex = map[AudioFormat]int{
	AudioWebm: 0,
	AudioMpeg: 1,
}

func ParseAudioFormat(s string) (AudioFormat, error) {
	format := AudioFormat(s)
	if _, ok := audioSourceIndex[format]; !ok {
		return "", &UnsupportedAudioFormatError{Format: s}
	}
	return format, nil
}

var (
	wordReadingSelector    = mustSelector("div.reading-with-audio__reading")
	audioSelector          = mustSelector("audio.reading-with-audio__audio")
	audioSourceSelector    = mustSelector("source")
	contextSentenceSel     = mustSelector("div.subject-section__text.subject-section__text--grouped")
	patternNameSelector    = mustSelector("a.subject-collocations__pattern-name")
	patternExampleSelector = mustSelector("li.subject-collocations__pattern-collocation")
	exampleSentenceSel     = mustSelector("div.context-sentences")
)

// WordDraft is an extracted vocabulary item with the location of its reading audio, if any.
type WordDraft struct {
	Word     *subject.Word
	AudioURL string
}

type WordExtractor struct {
	format AudioFormat
}

// NewWordExtractor creates an extractor picking audio in the given format.
func NewWordExtractor(format AudioFormat) *WordExtractor {
	return &WordExtractor{format: format}
}

// Extract reads a vocabulary detail page.
func (e *WordExtractor) Extract(doc *html.Node, pageURL string) (*WordDraft, error) {
	level, err := Level(doc)
	if err != nil {
		return nil, err
	}
	symbols, err := Symbol(doc, subject.KindVocabulary)
	if err != nil {
		return nil, err
	}
	meanings, err := Meanings(doc)
	if err != nil {
		return nil, err
	}
	meaningExplanation, err := MeaningMnemonic(doc)
	if err != nil {
		return nil, err
	}
	readingExplanation, err := ReadingMnemonic(doc)
	if err != nil {
		return nil, err
	}
	reading, err := requiredText(doc, wordReadingSelector, "reading")
	if err != nil {
		return nil, err
	}

	terms := HighlightedTerms(doc, RadicalHighlightClass, KanjiHighlightClass, ReadingHighlightClass, VocabularyHighlightClass)
	meaningExplanation = HighlightMnemonic(meaningExplanation, terms)
	readingExplanation = HighlightMnemonic(readingExplanation, terms)

	word := &subject.Word{
		URL:                pageURL,
		Level:              level,
		Symbols:            symbols,
		Reading:            reading,
		ReadingExplanation: readingExplanation.Text,
		Types:              WordTypes(doc),
	}
	for _, m := range meanings {
		meaning := subject.WordMeaning{Meaning: m.Text, IsPrimary: m.IsPrimary}
		if m.IsPrimary {
			meaning.Explanation = meaningExplanation.Text
		}
		word.Meanings = append(word.Meanings, meaning)
	}

	if word.ContextSentences, err = contextSentences(doc); err != nil {
		return nil, err
	}
	if word.UsePatterns, err = usePatterns(doc); err != nil {
		return nil, err
	}

	draft := &WordDraft{Word: word}
	if audio := audioSelector.MatchFirst(doc); audio != nil {
		src, err := e.audioSource(audio)
		if err != nil {
			return nil, err
		}
		word.ReadingAudioFilename = subject.NullString(AudioFilename(symbols, e.format))
		draft.AudioURL = src
	}
	return draft, nil
}

func (e *WordExtractor) audioSource(audio *html.Node) (string, error) {
	index, ok := audioSourceIndex[e.format]
	if !ok {
		return "", &UnsupportedAudioFormatError{Format: string(e.format)}
	}
	sources := audioSourceSelector.MatchAll(audio)
	if len(sources) <= index {
		return "", &ExtractionError{
			Field:    "reading audio",
			Selector: audioSourceSelector.css,
			Err:      fmt.Errorf("found %d sources, want %s at %d", len(sources), e.format, index),
		}
	}
	return strings.TrimSpace(dom.GetAttribute(sources[index], "src")), nil
}

// AudioFilename is the deterministic file name of a word's reading audio.
func AudioFilename(symbols string, format AudioFormat) string {
	return fmt.Sprintf("audio_%s.%s", fileSafe(symbols), format)
}

var pathSeparatorReplacer = strings.NewReplacer("/", "_", `\`, "_")

// fileSafe keeps page text from introducing directories into a file name.
func fileSafe(s string) string {
	return pathSeparatorReplacer.Replace(s)
}

func contextSentences(doc *html.Node) ([]subject.WordContextSentence, error) {
	var sentences []subject.WordContextSentence
	for i, block := range contextSentenceSel.MatchAll(doc) {
		japanese, english, err := sentencePair(block, "context sentence")
		if err != nil {
			return nil, err
		}
		sentences = append(sentences, subject.WordContextSentence{Ordinal: i, Japanese: japanese, English: english})
	}
	return sentences, nil
}

// usePatterns pairs each pattern name with its example list and emits one row per example.
func usePatterns(doc *html.Node) ([]subject.WordUsePattern, error) {
	names := patternNameSelector.MatchAll(doc)
	examples := patternExampleSelector.MatchAll(doc)

	var patterns []subject.WordUsePattern
	for i := 0; i < len(names) && i < len(examples); i++ {
		pattern := strings.TrimSpace(dom.TextContent(names[i]))
		for _, example := range exampleSentenceSel.MatchAll(examples[i]) {
			japanese, english, err := sentencePair(example, "use pattern example")
			if err != nil {
				return nil, err
			}
			patterns = append(patterns, subject.WordUsePattern{
				Ordinal:  len(patterns),
				Pattern:  pattern,
				Japanese: japanese,
				English:  english,
			})
		}
	}
	return patterns, nil
}
