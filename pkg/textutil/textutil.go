package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeLabel lowercases a label and removes all whitespace from it so that
// "Recent  Reviews:" and "recentreviews:" compare the same.
func NormalizeLabel(label string) string {
	label = strings.ToLower(label)
	label = strings.Trim(label, " \n\t")
	label = whitespaceRegex.ReplaceAllString(label, "")
	return label
}

// MatchLabel returns true if the normalized label contains any of the matchers,
// matchers are expected to be normalized already.
func MatchLabel(label string, matchers []string) bool {
	label = NormalizeLabel(label)
	for _, m := range matchers {
		if strings.Contains(label, m) {
			return true
		}
	}
	return false
}

var unsafeFilenameChars = regexp.MustCompile(`[\\/*?:"<>|]`)

// SafeFilename removes characters that are not allowed in file names on common
// filesystems and replaces spaces with underscores. The result is truncated to 200
// bytes.
func SafeFilename(name string) string {
	cleaned := unsafeFilenameChars.ReplaceAllString(name, "")
	cleaned = strings.ReplaceAll(cleaned, " ", "_")
	if len(cleaned) > 200 {
		cleaned = strings.ToValidUTF8(cleaned[:200], "")
	}
	return cleaned
}
