package ocr

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLanguageSet(t *testing.T) {
	tests := []struct {
		name     string
		raw      []string
		expected []string
	}{
		{
			name:     "empty selection defaults to English",
			raw:      nil,
			expected: []string{"en"},
		},
		{
			name:     "blank entries default to English",
			raw:      []string{"", "  ", ","},
			expected: []string{"en"},
		},
		{
			name:     "comma-joined entries split",
			raw:      []string{"en,fr", "de"},
			expected: []string{"de", "en", "fr"},
		},
		{
			name:     "duplicates and case folded",
			raw:      []string{"EN", "en", " Fr "},
			expected: []string{"en", "fr"},
		},
		{
			name:     "order independent of input order",
			raw:      []string{"ja", "en"},
			expected: []string{"en", "ja"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewLanguageSet(tt.raw)
			assert.Equal(t, tt.expected, s.Codes())
		})
	}
}

func TestLanguageSetTesseract(t *testing.T) {
	s := NewLanguageSet([]string{"en", "zh_sim", "ja"})
	assert.Equal(t, []string{"eng", "jpn", "chi_sim"}, s.Tesseract())
}

func TestLanguageSetTesseractPassthrough(t *testing.T) {
	// Raw traineddata names not in the front-end table pass through
	s := NewLanguageSet([]string{"nld"})
	assert.Equal(t, []string{"nld"}, s.Tesseract())
}

func TestLanguageSetString(t *testing.T) {
	s := NewLanguageSet([]string{"fr", "en"})
	assert.Equal(t, "en,fr", s.String())
}

func TestSupportedLanguages(t *testing.T) {
	langs := SupportedLanguages()
	assert.Contains(t, langs, "en")
	assert.Contains(t, langs, "zh_sim")
	assert.True(t, sort.StringsAreSorted(langs))
}
