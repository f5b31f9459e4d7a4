// Package storepage scrapes the rendered store page of a product.
package storepage

import (
	"context"
	"fmt"
	"io"
	"steamscraper/internal/components/assert"
	"steamscraper/internal/components/telemetry"
	"steamscraper/internal/record"
	"steamscraper/internal/storefront"
	"strings"
)

const (
	report_source_get   = "source-get"
	report_source_parse = "source-parse"
)

// Fetcher returns the markup of a store page, it is implemented by fetch.Client.
type Fetcher interface {
	Markup(ctx context.Context, storeUrl string, lang storefront.Language) (string, error)
}

type Source struct {
	fetcher   Fetcher
	extractor *Extractor
	tel       telemetry.API
}

func NewSource(fetcher Fetcher, tel telemetry.API) *Source {
	assert.NotNil(fetcher, "fetcher")
	assert.NotNil(tel, "telemetry")

	return &Source{
		fetcher:   fetcher,
		extractor: NewExtractor(tel),
		tel:       telemetry.NewScopedAPI("store_page", tel),
	}
}

// Get fetches and extracts the store page of `identifier` (an app id, a string of
// digits or a store page url). An identifier that is not a store page fails with
// storefront.ErrInvalidIdentifier before anything is fetched. If the page could not
// be fetched or extracted a nil record and a nil error are returned.
func (s *Source) Get(ctx context.Context, identifier any, lang storefront.Language) (record.Record, error) {
	storeUrl, err := storefront.ResolveURL(identifier)
	if err != nil {
		return nil, err
	}

	s.tel.ReportDebug("fetching store page", storeUrl.Raw, lang)
	markup, err := s.fetcher.Markup(ctx, storeUrl.Raw, lang)
	if err != nil {
		s.tel.ReportWarning(report_source_get, fmt.Errorf("fetch: %w", err), storeUrl.Raw)
		return nil, nil
	}

	out, err := s.extractor.ParseStatic(strings.NewReader(markup), lang)
	if err != nil {
		s.tel.ReportBroken(report_source_parse, err, storeUrl.Raw)
		return nil, nil
	}
	return out, nil
}

// ParseStatic is Extractor.ParseStatic with the failure reported.
func (s *Source) ParseStatic(r io.Reader, lang storefront.Language) (record.Record, error) {
	out, err := s.extractor.ParseStatic(r, lang)
	if err != nil {
		s.tel.ReportBroken(report_source_parse, err)
		return nil, err
	}
	return out, nil
}
