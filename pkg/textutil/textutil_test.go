package textutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeLabel(t *testing.T) {
	table := []struct {
		input    string
		expected string
	}{
		{input: "Recent Reviews:", expected: "recentreviews:"},
		{input: "  ALL   Reviews:\n", expected: "allreviews:"},
		{input: "最近评测：", expected: "最近评测："},
		{input: "", expected: ""},
	}

	for _, row := range table {
		require.Equal(t, row.expected, NormalizeLabel(row.input))
	}
}

func TestMatchLabel(t *testing.T) {
	matchers := []string{"developer", "开发者"}

	require.True(t, MatchLabel("Developer:", matchers))
	require.True(t, MatchLabel("开发者:", matchers))
	require.True(t, MatchLabel(" DEVELOPER ", matchers))
	require.False(t, MatchLabel("Publisher:", matchers))
	require.False(t, MatchLabel("", matchers))
	require.False(t, MatchLabel("Developer", nil))
}

func TestSafeFilename(t *testing.T) {
	table := []struct {
		input    string
		expected string
	}{
		{input: "Cyberpunk_2077", expected: "Cyberpunk_2077"},
		{input: "Half Life: Alyx", expected: "Half_Life_Alyx"},
		{input: `a\b/c*d?e"f<g>h|i`, expected: "abcdefghi"},
	}
	for _, row := range table {
		require.Equal(t, row.expected, SafeFilename(row.input))
	}

	long := SafeFilename(strings.Repeat("a", 300))
	require.Len(t, long, 200)
}
