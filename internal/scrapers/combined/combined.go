// Package combined retrieves a product from both the store page and the
// appdetails endpoint and merges the results.
package combined

import (
	"context"
	"steamscraper/internal/components/assert"
	"steamscraper/internal/components/telemetry"
	"steamscraper/internal/record"
	"steamscraper/internal/storefront"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

const report_combined_source = "source"

var tracer = otel.Tracer("steamscraper/combined")

// Getter is a single source of records, an error is only returned for an
// identifier that cannot be used. A nil record means the source had no data.
type Getter interface {
	Get(ctx context.Context, identifier any, lang storefront.Language) (record.Record, error)
}

type Options struct {
	// Concurrent fetches both sources at the same time, the merge order does not
	// change.
	Concurrent bool
}

type Source struct {
	markup  Getter
	catalog Getter
	opts    Options
	tel     telemetry.API
}

func NewSource(markup, catalog Getter, opts Options, tel telemetry.API) *Source {
	assert.NotNil(markup, "markup source")
	assert.NotNil(catalog, "catalog source")
	assert.NotNil(tel, "telemetry")

	return &Source{
		markup:  markup,
		catalog: catalog,
		opts:    opts,
		tel:     telemetry.NewScopedAPI("combined", tel),
	}
}

// getOne treats a source failing as that source having no data.
func (s *Source) getOne(ctx context.Context, name string, source Getter, identifier any, lang storefront.Language) record.Record {
	ctx, span := tracer.Start(ctx, name)
	defer span.End()

	out, err := source.Get(ctx, identifier, lang)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.tel.ReportWarning(report_combined_source, err, name)
		return nil
	}
	span.SetAttributes(attribute.Int("fields", len(out)))
	return out
}

func (s *Source) fetch(ctx context.Context, identifier any, lang storefront.Language) (markup, catalog record.Record) {
	if !s.opts.Concurrent {
		markup = s.getOne(ctx, "markup", s.markup, identifier, lang)
		catalog = s.getOne(ctx, "catalog", s.catalog, identifier, lang)
		return markup, catalog
	}

	// neither goroutine returns an error, a failed source is just empty
	var g errgroup.Group
	g.Go(func() error {
		markup = s.getOne(ctx, "markup", s.markup, identifier, lang)
		return nil
	})
	g.Go(func() error {
		catalog = s.getOne(ctx, "catalog", s.catalog, identifier, lang)
		return nil
	})
	g.Wait()
	return markup, catalog
}

// getAttributes describes a combined retrieval, the app id is a string since ids
// can be larger than an int64.
func getAttributes(id storefront.AppID, lang storefront.Language, opts Options) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("app_id", id.String()),
		attribute.String("language", string(lang)),
		attribute.Bool("concurrent", opts.Concurrent),
	}
}

// Get merges the store page and appdetails records of `identifier` with
// record.Merge, the store page is the base. The identifier is validated before
// either source is asked, record.ErrNoData is returned when neither source had
// any fields.
func (s *Source) Get(ctx context.Context, identifier any, lang storefront.Language) (record.Record, error) {
	id, err := storefront.Resolve(identifier)
	if err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "combined.get")
	defer span.End()
	span.SetAttributes(getAttributes(id, lang, s.opts)...)

	markup, catalog := s.fetch(ctx, identifier, lang)

	sources := record.SourcesOf(markup, catalog)
	span.SetAttributes(
		attribute.Bool("sources.markup", sources.Markup),
		attribute.Bool("sources.catalog", sources.Catalog),
	)
	s.tel.ReportDebug("retrieved sources", id, "markup", sources.Markup, "catalog", sources.Catalog)

	merged, err := record.Merge(markup, catalog)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return merged, nil
}
