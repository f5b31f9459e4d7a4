package appdetails

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"steamscraper/internal/components/fetch"
	"steamscraper/internal/components/telemetry"
	"steamscraper/internal/record"
	"steamscraper/internal/storefront"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const portal2Body = `{
	"620": {
		"success": true,
		"data": {
			"type": "game",
			"name": "Portal 2",
			"steam_appid": 620,
			"is_free": false,
			"developers": ["Valve"],
			"price_overview": {"currency": "USD", "final_formatted": "$9.99"},
			"metacritic": {"score": 95, "url": "https://www.metacritic.com/game/pc/portal-2"}
		}
	}
}`

func TestDecode(t *testing.T) {
	out, err := Decode(620, []byte(portal2Body))
	require.NoError(t, err)

	expected := record.Record{
		"type":        "game",
		"name":        "Portal 2",
		"steam_appid": float64(620),
		"is_free":     false,
		"developers":  []any{"Valve"},
		"price_overview": map[string]any{
			"currency":        "USD",
			"final_formatted": "$9.99",
		},
		"metacritic": map[string]any{
			"score": float64(95),
			"url":   "https://www.metacritic.com/game/pc/portal-2",
		},
	}
	diff := cmp.Diff(expected, out)
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestDecodeFailures(t *testing.T) {
	table := []struct {
		name     string
		body     string
		expected error
	}{
		{name: "unsuccessful", body: `{"620": {"success": false}}`, expected: ErrUnsuccessful},
		{name: "missing key", body: `{"570": {"success": true, "data": {"name": "Dota 2"}}}`, expected: ErrMissingApp},
		{name: "empty object", body: `{}`, expected: ErrMissingApp},
	}
	for _, row := range table {
		_, err := Decode(620, []byte(row.body))
		require.True(t, errors.Is(err, row.expected), row.name)
	}

	for _, body := range []string{``, `not json`, `[]`, `{"620": []}`, `{"620": {"success": "yes"}}`} {
		_, err := Decode(620, []byte(body))
		require.Error(t, err, body)
	}
}

func TestDecodeIgnoresOtherEntries(t *testing.T) {
	body := `{
		"570": {"success": true, "data": []},
		"620": {"success": true, "data": {"name": "Portal 2"}},
		"730": "garbage"
	}`
	out, err := Decode(620, []byte(body))
	require.NoError(t, err)
	require.Equal(t, record.Record{"name": "Portal 2"}, out)
}

func TestDecodeSuccessWithoutData(t *testing.T) {
	out, err := Decode(620, []byte(`{"620": {"success": true}}`))
	require.NoError(t, err)
	require.Equal(t, record.Record{}, out)
}

type fakeFetcher struct {
	body  string
	err   error
	calls int
}

func (f *fakeFetcher) Catalog(context.Context, storefront.AppID, storefront.Language) ([]byte, error) {
	f.calls++
	return []byte(f.body), f.err
}

func TestSourceGet(t *testing.T) {
	source := NewSource(&fakeFetcher{body: portal2Body}, telemetry.NewRecorder())
	out, err := source.Get(context.Background(), "https://store.steampowered.com/app/620/Portal_2/", storefront.DefaultLanguage)
	require.NoError(t, err)
	require.Equal(t, "Portal 2", out["name"])
}

func TestSourceGetNoData(t *testing.T) {
	table := []struct {
		name    string
		fetcher *fakeFetcher
		report  string
	}{
		{name: "transport", fetcher: &fakeFetcher{err: errors.New("timeout")}, report: report_source_get},
		{name: "unsuccessful", fetcher: &fakeFetcher{body: `{"620": {"success": false}}`}, report: report_source_decode},
		{name: "missing key", fetcher: &fakeFetcher{body: `{"1": {"success": true}}`}, report: report_source_decode},
		{name: "bad body", fetcher: &fakeFetcher{body: `<html>`}, report: report_source_decode},
	}
	for _, row := range table {
		recorder := telemetry.NewRecorder()
		out, err := NewSource(row.fetcher, recorder).Get(context.Background(), 620, storefront.DefaultLanguage)
		require.NoError(t, err, row.name)
		require.Nil(t, out, row.name)
		require.True(t, recorder.Has(telemetry.REPORT_WARNING, row.report), row.name)
	}
}

func TestSourceGetInvalidIdentifier(t *testing.T) {
	fetcher := &fakeFetcher{body: portal2Body}
	_, err := NewSource(fetcher, telemetry.NewRecorder()).Get(context.Background(), "https://www.google.com/", storefront.DefaultLanguage)
	require.True(t, errors.Is(err, storefront.ErrInvalidIdentifier))
	require.Equal(t, 0, fetcher.calls)
}

func TestSourceWithClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("appids") != "620" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(portal2Body))
	}))
	defer server.Close()

	opts := fetch.DefaultOptions()
	opts.BaseURL = server.URL
	opts.CloudflareBypass = false
	recorder := telemetry.NewRecorder()
	client, err := fetch.NewClient(opts, recorder)
	require.NoError(t, err)

	out, err := NewSource(client, recorder).Get(context.Background(), 620, storefront.DefaultLanguage)
	require.NoError(t, err)
	require.Equal(t, "Portal 2", out["name"])

	out, err = NewSource(client, recorder).Get(context.Background(), 570, storefront.DefaultLanguage)
	require.NoError(t, err)
	require.Nil(t, out)
}
