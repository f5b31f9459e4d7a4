package storepage

import (
	"fmt"
	"io"
	"steamscraper/internal/components/assert"
	"steamscraper/internal/components/telemetry"
	"steamscraper/internal/record"
	"steamscraper/internal/storefront"

	"github.com/PuerkitoBio/goquery"
)

const report_extract = "extract"

// fieldGroup extracts a cluster of related fields that share one anchor node. A
// group never looks at what another group extracted.
type fieldGroup struct {
	name    string
	extract func(doc *goquery.Document) record.Record
	// fallback supplies the value of the group's fields when extract panics,
	// groups whose fields are simply absent on failure leave it nil.
	fallback func() record.Record
}

var fieldGroups = []fieldGroup{
	{name: "title", extract: extractTitle, fallback: func() record.Record {
		return record.Record{"title": nil, "header_image": nil}
	}},
	{name: "description", extract: extractDescriptions, fallback: func() record.Record {
		return record.Record{"short_description": nil, "full_description": nil}
	}},
	{name: "details", extract: extractDetails},
	{name: "media", extract: extractMedia, fallback: func() record.Record {
		return record.Record{"media": emptyMedia()}
	}},
	{name: "price", extract: extractPrice, fallback: func() record.Record {
		return record.Record{"price": PriceUnavailable}
	}},
	{name: "tags", extract: extractTags, fallback: func() record.Record {
		return record.Record{"tags": []string{}}
	}},
	{name: "reviews", extract: extractReviews, fallback: func() record.Record {
		return record.Record{"reviews": record.Record{}}
	}},
	{name: "system_requirements", extract: extractSystemRequirements, fallback: func() record.Record {
		return record.Record{"system_requirements": record.Record{}}
	}},
	{name: "language_support", extract: extractLanguageSupport, fallback: func() record.Record {
		return record.Record{"language_support": []record.Record{}}
	}},
	{name: "metacritic", extract: extractMetacritic, fallback: func() record.Record {
		return record.Record{"metacritic": nil}
	}},
	{name: "dlcs", extract: extractDlcs, fallback: func() record.Record {
		return record.Record{"dlcs": []record.Record{}}
	}},
	{name: "features", extract: extractFeatures, fallback: func() record.Record {
		return record.Record{"features": []string{}}
	}},
	{name: "content_descriptors", extract: extractContentDescriptors, fallback: func() record.Record {
		return record.Record{"content_descriptors": []string{}}
	}},
}

// Extractor turns a store page into a record.
type Extractor struct {
	tel telemetry.API
}

func NewExtractor(tel telemetry.API) *Extractor {
	assert.NotNil(tel, "telemetry")
	return &Extractor{tel: telemetry.NewScopedAPI("store_page", tel)}
}

func (e *Extractor) runGroup(group fieldGroup, doc *goquery.Document, out record.Record) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e.tel.ReportBroken(
			fmt.Sprintf("%s.%s", report_extract, group.name),
			fmt.Errorf("panic: %v", r),
		)
		if group.fallback == nil {
			return
		}
		for key, value := range group.fallback() {
			out[key] = value
		}
	}()

	// fields are only copied once the whole group succeeded, a panic never leaves
	// half of a group behind.
	for key, value := range group.extract(doc) {
		out[key] = value
	}
}

// Extract runs every field group against `doc`. A group whose anchor node is
// missing yields its default, it never stops the other groups from running.
//
// Keyword matching on row labels recognizes every supported locale at once, `lang`
// only annotates the telemetry.
func (e *Extractor) Extract(doc *goquery.Document, lang storefront.Language) record.Record {
	assert.NotNil(doc, "document")

	out := record.Record{}
	for _, group := range fieldGroups {
		e.runGroup(group, doc, out)
	}
	e.tel.ReportDebug("extracted fields", len(out), lang)
	return out
}

// Parse reads markup from `r` and extracts it, it only fails if the markup cannot
// be read into a tree.
func (e *Extractor) Parse(r io.Reader, lang storefront.Language) (record.Record, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse store page: %w", err)
	}
	return e.Extract(doc, lang), nil
}

// ParseStatic extracts markup that was obtained some other way, for example a
// saved copy of a store page. Every failure, panics included, is returned as an
// error.
func (e *Extractor) ParseStatic(r io.Reader, lang storefront.Language) (out record.Record, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			out = nil
			err = fmt.Errorf("extract store page: panic: %v", recovered)
		}
	}()
	return e.Parse(r, lang)
}
