package record

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestMergeSingleSource(t *testing.T) {
	markup := Record{
		"title": "Portal 2",
		"price": "$9.99",
		"tags":  []string{"Puzzle", "Co-op"},
		"metacritic": Record{
			"score": 95,
			"url":   "https://www.metacritic.com/game/pc/portal-2",
		},
	}
	catalog := Record{
		"name":         "Portal 2",
		"steam_appid":  float64(620),
		"is_free":      false,
		"developers":   []any{"Valve"},
		"release_date": Record{"coming_soon": false, "date": "18 Apr, 2011"},
	}

	merged, err := Merge(markup, nil)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(markup, merged))

	merged, err = Merge(nil, catalog)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(catalog, merged))

	merged, err = Merge(Record{}, catalog)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(catalog, merged))
}

func TestMergeNoData(t *testing.T) {
	_, err := Merge(nil, nil)
	require.True(t, errors.Is(err, ErrNoData))

	_, err = Merge(Record{}, Record{})
	require.True(t, errors.Is(err, ErrNoData))
}

func TestMergePrecedence(t *testing.T) {
	table := []struct {
		name     string
		base     Record
		overlay  Record
		expected Record
	}{
		{
			name:     "empty base string is filled",
			base:     Record{"price": ""},
			overlay:  Record{"price": "Free"},
			expected: Record{"price": "Free"},
		},
		{
			name:     "non-empty base wins",
			base:     Record{"price": "$9.99"},
			overlay:  Record{"price": "$8.00"},
			expected: Record{"price": "$9.99"},
		},
		{
			name:    "map replaces string",
			base:    Record{"rating": "Mature"},
			overlay: Record{"rating": Record{"descriptors": []any{"Violence"}}},
			expected: Record{
				"rating": Record{"descriptors": []any{"Violence"}},
			},
		},
		{
			name:     "string never replaces map",
			base:     Record{"price": Record{"discount_price": "$5"}},
			overlay:  Record{"price": "$8.00"},
			expected: Record{"price": Record{"discount_price": "$5"}},
		},
		{
			name:     "nil base is filled",
			base:     Record{"metacritic": nil},
			overlay:  Record{"metacritic": Record{"score": float64(88)}},
			expected: Record{"metacritic": Record{"score": float64(88)}},
		},
		{
			name:     "empty sequences are filled",
			base:     Record{"tags": []string{}, "dlcs": []Record{}},
			overlay:  Record{"tags": []any{"RPG"}, "dlcs": []any{float64(1)}},
			expected: Record{"tags": []any{"RPG"}, "dlcs": []any{float64(1)}},
		},
		{
			name:     "empty map is filled",
			base:     Record{"reviews": Record{}},
			overlay:  Record{"reviews": Record{"total": float64(10)}},
			expected: Record{"reviews": Record{"total": float64(10)}},
		},
		{
			name:     "zero and false are filled",
			base:     Record{"required_age": 0, "is_free": false},
			overlay:  Record{"required_age": float64(18), "is_free": true},
			expected: Record{"required_age": float64(18), "is_free": true},
		},
		{
			name:     "falsy overlay still fills a falsy base",
			base:     Record{"title": nil},
			overlay:  Record{"title": ""},
			expected: Record{"title": ""},
		},
		{
			name:     "non-empty sequence is kept",
			base:     Record{"tags": []string{"Puzzle"}},
			overlay:  Record{"tags": []any{"RPG"}},
			expected: Record{"tags": []string{"Puzzle"}},
		},
		{
			name:     "fields from both sources interleave",
			base:     Record{"title": "Foo", "price": ""},
			overlay:  Record{"name": "Foo", "price": "Free"},
			expected: Record{"title": "Foo", "name": "Foo", "price": "Free"},
		},
	}

	for _, row := range table {
		t.Run(row.name, func(t *testing.T) {
			merged, err := Merge(row.base, row.overlay)
			require.NoError(t, err)
			diff := cmp.Diff(row.expected, merged)
			if diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestMergeDoesNotModifyInputs(t *testing.T) {
	markup := Record{"price": ""}
	catalog := Record{"price": "Free", "name": "Foo"}

	_, err := Merge(markup, catalog)
	require.NoError(t, err)
	require.Equal(t, Record{"price": ""}, markup)
	require.Equal(t, Record{"price": "Free", "name": "Foo"}, catalog)
}

func TestSourcesOf(t *testing.T) {
	require.Equal(t, Sources{Markup: true}, SourcesOf(Record{"a": 1}, nil))
	require.Equal(t, Sources{Catalog: true}, SourcesOf(Record{}, Record{"a": 1}))
	require.Equal(t, Sources{}, SourcesOf(nil, nil))
}
