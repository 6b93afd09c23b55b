package subject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_ListingURL(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{kind: KindRadical, want: "https://www.wanikani.com/radicals?difficulty=pleasant"},
		{kind: KindKanji, want: "https://www.wanikani.com/kanji?difficulty=pleasant"},
		{kind: KindVocabulary, want: "https://www.wanikani.com/vocabulary?difficulty=pleasant"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.ListingURL("https://www.wanikani.com", Pleasant))
		})
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{input: "radical", want: KindRadical},
		{input: "radicals", want: KindRadical},
		{input: "kanji", want: KindKanji},
		{input: "vocabulary", want: KindVocabulary},
		{input: "words", want: KindVocabulary},
		{input: "sentences", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDifficulties(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    []Difficulty
		wantErr bool
	}{
		{
			name:  "all tiers keep the fixed order",
			input: []string{"reality", "pleasant", "hell", "painful", "paradise", "death"},
			want:  Difficulties,
		},
		{
			name:  "subset is reordered",
			input: []string{"hell", "pleasant", "hell"},
			want:  []Difficulty{Pleasant, Hell},
		},
		{
			name:    "unknown tier",
			input:   []string{"pleasant", "nightmare"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDifficulties(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
