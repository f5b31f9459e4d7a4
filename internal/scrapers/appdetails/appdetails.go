// Package appdetails reads the store's structured appdetails endpoint.
package appdetails

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"steamscraper/internal/components/assert"
	"steamscraper/internal/components/telemetry"
	"steamscraper/internal/record"
	"steamscraper/internal/storefront"
)

const (
	report_source_get    = "source-get"
	report_source_decode = "source-decode"
)

var (
	ErrMissingApp   = errors.New("response does not contain the app")
	ErrUnsuccessful = errors.New("response is not successful")
)

// Fetcher returns the raw appdetails body for an app, it is implemented by
// fetch.Client.
type Fetcher interface {
	Catalog(ctx context.Context, id storefront.AppID, lang storefront.Language) ([]byte, error)
}

type envelope struct {
	Success bool          `json:"success"`
	Data    record.Record `json:"data"`
}

// Decode returns the `data` object of the entry keyed by `id`, other entries of
// the response are not looked at. Numbers are decoded as float64.
func Decode(id storefront.AppID, body []byte) (record.Record, error) {
	var response map[string]json.RawMessage
	err := json.Unmarshal(body, &response)
	if err != nil {
		return nil, fmt.Errorf("decode appdetails: %w", err)
	}
	raw, ok := response[id.String()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingApp, id)
	}
	var entry envelope
	err = json.Unmarshal(raw, &entry)
	if err != nil {
		return nil, fmt.Errorf("decode appdetails entry %s: %w", id, err)
	}
	if !entry.Success {
		return nil, fmt.Errorf("%w: %s", ErrUnsuccessful, id)
	}
	if entry.Data == nil {
		return record.Record{}, nil
	}
	return entry.Data, nil
}

type Source struct {
	fetcher Fetcher
	tel     telemetry.API
}

func NewSource(fetcher Fetcher, tel telemetry.API) *Source {
	assert.NotNil(fetcher, "fetcher")
	assert.NotNil(tel, "telemetry")

	return &Source{
		fetcher: fetcher,
		tel:     telemetry.NewScopedAPI("appdetails", tel),
	}
}

// Get returns the appdetails record of `identifier`. Every upstream failure
// (transport, status, body, missing or unsuccessful entry) results in a nil
// record and a nil error, only an identifier that cannot be resolved is an error.
func (s *Source) Get(ctx context.Context, identifier any, lang storefront.Language) (record.Record, error) {
	id, err := storefront.Resolve(identifier)
	if err != nil {
		return nil, err
	}

	s.tel.ReportDebug("fetching appdetails", id, lang)
	body, err := s.fetcher.Catalog(ctx, id, lang)
	if err != nil {
		s.tel.ReportWarning(report_source_get, fmt.Errorf("fetch: %w", err), id)
		return nil, nil
	}

	out, err := Decode(id, body)
	if err != nil {
		s.tel.ReportWarning(report_source_decode, err, id)
		return nil, nil
	}
	return out, nil
}
