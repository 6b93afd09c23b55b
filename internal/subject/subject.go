// Package subject holds the radical, kanji and vocabulary entities and their repositories.
package subject

import (
	"errors"
	"fmt"
	"net/url"
)

var (
	// ErrNotFound is returned by lookups that match no row.
	ErrNotFound = errors.New("subject not found")
	// ErrDuplicate is returned when a top-level entity with the same URL is already stored.
	ErrDuplicate = errors.New("subject already exists")
)

// Kind is the closed set of subject kinds served by the source.
type Kind string

const (
	KindRadical    Kind = "radical"
	KindKanji      Kind = "kanji"
	KindVocabulary Kind = "vocabulary"
)

// Kinds lists every kind in dependency order.
var Kinds = []Kind{KindRadical, KindKanji, KindVocabulary}

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindRadical, "radicals":
		return KindRadical, nil
	case KindKanji:
		return KindKanji, nil
	case KindVocabulary, "words":
		return KindVocabulary, nil
	}
	return "", fmt.Errorf("unknown subject kind %q", s)
}

// ListingPath is the path of the kind's listing page.
func (k Kind) ListingPath() string {
	switch k {
	case KindRadical:
		return "/radicals"
	case KindKanji:
		return "/kanji"
	default:
		return "/vocabulary"
	}
}

// ListingURL returns the listing page URL for one difficulty tier.
func (k Kind) ListingURL(baseURL string, difficulty Difficulty) string {
	return baseURL + k.ListingPath() + "?difficulty=" + url.QueryEscape(string(difficulty))
}

// Difficulty is one of the six listing tiers.
type Difficulty string

const (
	Pleasant Difficulty = "pleasant"
	Painful  Difficulty = "painful"
	Death    Difficulty = "death"
	Hell     Difficulty = "hell"
	Paradise Difficulty = "paradise"
	Reality  Difficulty = "reality"
)

// Difficulties is the fixed tier order.
var Difficulties = []Difficulty{Pleasant, Painful, Death, Hell, Paradise, Reality}

// ParseDifficulties validates names and returns them in tier order,
// regardless of the order they were given in.
func ParseDifficulties(names []string) ([]Difficulty, error) {
	wanted := make(map[Difficulty]bool, len(names))
	for _, name := range names {
		d := Difficulty(name)
		if !d.Valid() {
			return nil, fmt.Errorf("unknown difficulty %q", name)
		}
		wanted[d] = true
	}
	result := make([]Difficulty, 0, len(wanted))
	for _, d := range Difficulties {
		if wanted[d] {
			result = append(result, d)
		}
	}
	return result, nil
}

func (d Difficulty) Valid() bool {
	for _, known := range Difficulties {
		if d == known {
			return true
		}
	}
	return false
}

// ReadingType classifies a kanji reading.
type ReadingType string

const (
	ReadingOn     ReadingType = "O"
	ReadingKun    ReadingType = "K"
	ReadingNanori ReadingType = "N"
)
