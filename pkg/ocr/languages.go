package ocr

import (
	"sort"
	"strings"
)

// DefaultLanguage is always part of the selection when the user picks
// nothing.
const DefaultLanguage = "en"

// tesseractNames maps front-end language codes to the traineddata
// names the engine expects. Codes outside this table pass through
// verbatim so raw Tesseract names keep working.
var tesseractNames = map[string]string{
	"en":     "eng",
	"es":     "spa",
	"fr":     "fra",
	"de":     "deu",
	"it":     "ita",
	"pt":     "por",
	"zh_sim": "chi_sim",
	"ja":     "jpn",
}

// SupportedLanguages returns the front-end language codes in stable
// order.
func SupportedLanguages() []string {
	codes := make([]string, 0, len(tesseractNames))
	for code := range tesseractNames {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// LanguageSet is a normalized selection of language codes: trimmed,
// lower-cased, comma entries split, duplicates removed, sorted.
// It is never empty.
type LanguageSet struct {
	codes []string
}

// NewLanguageSet normalizes raw user input into a LanguageSet.
// An empty selection falls back to English.
func NewLanguageSet(raw []string) LanguageSet {
	seen := make(map[string]bool)
	var codes []string

	for _, entry := range raw {
		for _, token := range strings.Split(entry, ",") {
			code := strings.ToLower(strings.TrimSpace(token))
			if code == "" || seen[code] {
				continue
			}
			seen[code] = true
			codes = append(codes, code)
		}
	}

	if len(codes) == 0 {
		codes = []string{DefaultLanguage}
	}
	sort.Strings(codes)

	return LanguageSet{codes: codes}
}

// Codes returns the normalized front-end codes.
func (s LanguageSet) Codes() []string {
	out := make([]string, len(s.codes))
	copy(out, s.codes)
	return out
}

// Tesseract returns the engine-facing language names.
func (s LanguageSet) Tesseract() []string {
	out := make([]string, 0, len(s.codes))
	for _, code := range s.codes {
		if name, ok := tesseractNames[code]; ok {
			out = append(out, name)
			continue
		}
		out = append(out, code)
	}
	return out
}

func (s LanguageSet) String() string {
	return strings.Join(s.codes, ",")
}
