package storefront

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/antzucaro/matchr"
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

// Language is a language code accepted by the store's `l` query parameter.
type Language string

const DefaultLanguage Language = "english"

var languageNames = map[Language]string{
	"arabic":     "Arabic",
	"brazilian":  "Portuguese - Brazil",
	"bulgarian":  "Bulgarian",
	"czech":      "Czech",
	"danish":     "Danish",
	"dutch":      "Dutch",
	"english":    "English",
	"finnish":    "Finnish",
	"french":     "French",
	"german":     "German",
	"greek":      "Greek",
	"hungarian":  "Hungarian",
	"indonesian": "Indonesian",
	"italian":    "Italian",
	"japanese":   "Japanese",
	"koreana":    "Korean",
	"latam":      "Spanish - Latin America",
	"norwegian":  "Norwegian",
	"polish":     "Polish",
	"portuguese": "Portuguese - Portugal",
	"romanian":   "Romanian",
	"russian":    "Russian",
	"schinese":   "Simplified Chinese",
	"spanish":    "Spanish - Spain",
	"swedish":    "Swedish",
	"tchinese":   "Traditional Chinese",
	"thai":       "Thai",
	"turkish":    "Turkish",
	"ukrainian":  "Ukrainian",
	"vietnamese": "Vietnamese",
}

// DisplayName is the English name of the language, empty if unsupported.
func (l Language) DisplayName() string {
	return languageNames[l]
}

// Languages returns every supported language code sorted alphabetically.
func Languages() []Language {
	out := make([]Language, 0, len(languageNames))
	for code := range languageNames {
		out = append(out, code)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i] < out[j]
	})
	return out
}

// an unknown code is only worth suggesting a replacement for if it is this close
const suggestionThreshold = 0.8

// Suggest returns the supported language code closest to `code`, or "" if
// nothing is close enough.
func Suggest(code string) Language {
	code = strings.ToLower(strings.TrimSpace(code))

	var best Language
	var bestSimilarity float64
	for _, candidate := range Languages() {
		similarity := matchr.JaroWinkler(code, string(candidate), false)
		if similarity > bestSimilarity {
			best = candidate
			bestSimilarity = similarity
		}
	}
	if bestSimilarity < suggestionThreshold {
		return ""
	}
	return best
}

// ParseLanguage validates a language code, codes are case-insensitive.
func ParseLanguage(code string) (Language, error) {
	normalized := Language(strings.ToLower(strings.TrimSpace(code)))
	if _, ok := languageNames[normalized]; ok {
		return normalized, nil
	}
	suggestion := Suggest(code)
	if suggestion != "" {
		return "", fmt.Errorf("%w: %q (did you mean %q?)", ErrUnsupportedLanguage, code, suggestion)
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
}
