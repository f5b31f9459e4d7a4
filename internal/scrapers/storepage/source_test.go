package storepage

import (
	"context"
	"errors"
	"steamscraper/internal/components/telemetry"
	"steamscraper/internal/storefront"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	markup string
	err    error
	urls   []string
	langs  []storefront.Language
}

func (f *fakeFetcher) Markup(_ context.Context, storeUrl string, lang storefront.Language) (string, error) {
	f.urls = append(f.urls, storeUrl)
	f.langs = append(f.langs, lang)
	return f.markup, f.err
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestSourceGet(t *testing.T) {
	fetcher := &fakeFetcher{markup: `<div class="apphub_AppName">Portal 2</div>`}
	source := NewSource(fetcher, telemetry.NewRecorder())

	out, err := source.Get(context.Background(), 620, "german")
	require.NoError(t, err)
	require.Equal(t, "Portal 2", out["title"])
	require.Equal(t, []string{"https://store.steampowered.com/app/620/"}, fetcher.urls)
	require.Equal(t, []storefront.Language{"german"}, fetcher.langs)

	_, err = source.Get(context.Background(), "https://store.steampowered.com/app/620/Portal_2/?snr=1", "english")
	require.NoError(t, err)
	require.Equal(t, "https://store.steampowered.com/app/620/Portal_2/?snr=1", fetcher.urls[1])
}

func TestSourceGetInvalidIdentifier(t *testing.T) {
	fetcher := &fakeFetcher{}
	source := NewSource(fetcher, telemetry.NewRecorder())

	for _, identifier := range []any{"http://store.steampowered.com/app/620/", "portal 2", -1} {
		out, err := source.Get(context.Background(), identifier, storefront.DefaultLanguage)
		require.True(t, errors.Is(err, storefront.ErrInvalidIdentifier))
		require.Nil(t, out)
	}
	require.Empty(t, fetcher.urls)
}

func TestSourceGetFetchFailure(t *testing.T) {
	recorder := telemetry.NewRecorder()
	source := NewSource(&fakeFetcher{err: errors.New("connection reset")}, recorder)

	out, err := source.Get(context.Background(), "620", storefront.DefaultLanguage)
	require.NoError(t, err)
	require.Nil(t, out)
	require.True(t, recorder.Has(telemetry.REPORT_WARNING, report_source_get))
}

func TestParseStatic(t *testing.T) {
	recorder := telemetry.NewRecorder()
	source := NewSource(&fakeFetcher{}, recorder)

	out, err := source.ParseStatic(strings.NewReader(`<div class="apphub_AppName">Foo</div>`), storefront.DefaultLanguage)
	require.NoError(t, err)
	require.Equal(t, "Foo", out["title"])
	require.Equal(t, PriceUnavailable, out["price"])

	out, err = source.ParseStatic(failingReader{}, storefront.DefaultLanguage)
	require.Error(t, err)
	require.Nil(t, out)
	require.True(t, recorder.Has(telemetry.REPORT_BROKEN, report_source_parse))
}

func TestExtractorParseStatic(t *testing.T) {
	extractor := NewExtractor(telemetry.NewRecorder())

	out, err := extractor.ParseStatic(strings.NewReader(`<div class="apphub_AppName">Foo</div>`), storefront.DefaultLanguage)
	require.NoError(t, err)
	require.Equal(t, "Foo", out["title"])

	out, err = extractor.ParseStatic(failingReader{}, storefront.DefaultLanguage)
	require.Error(t, err)
	require.Nil(t, out)
}
