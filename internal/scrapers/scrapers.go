// Package scrapers wires the individual sources of product records together
// behind one interface per retrieval mode.
package scrapers

import (
	"context"
	"errors"
	"fmt"
	"steamscraper/internal/components/fetch"
	"steamscraper/internal/components/telemetry"
	"steamscraper/internal/record"
	"steamscraper/internal/scrapers/appdetails"
	"steamscraper/internal/scrapers/combined"
	"steamscraper/internal/scrapers/storepage"
	"steamscraper/internal/storefront"
	"strings"
)

// Source retrieves the record of one product. `identifier` is an app id, a string
// of digits or a store page url.
type Source interface {
	Get(ctx context.Context, identifier any, lang storefront.Language) (record.Record, error)
}

type Mode string

const (
	MODE_STORE_HTML       Mode = "store-html"
	MODE_STEAMPOWERED_API Mode = "steampowered-api"
	MODE_COMBINED         Mode = "combined"
)

var Modes = []Mode{MODE_STORE_HTML, MODE_STEAMPOWERED_API, MODE_COMBINED}

var ErrUnknownMode = errors.New("unknown source")

func ParseMode(value string) (Mode, error) {
	for _, mode := range Modes {
		if string(mode) == strings.ToLower(strings.TrimSpace(value)) {
			return mode, nil
		}
	}
	return "", fmt.Errorf("%w %q, expected one of %v", ErrUnknownMode, value, Modes)
}

// Sources holds one Source per mode, all of them share the same fetch client.
type Sources struct {
	StorePage  *storepage.Source
	AppDetails *appdetails.Source
	Combined   *combined.Source
}

func NewSources(client *fetch.Client, opts combined.Options, tel telemetry.API) Sources {
	storePage := storepage.NewSource(client, tel)
	appDetails := appdetails.NewSource(client, tel)
	return Sources{
		StorePage:  storePage,
		AppDetails: appDetails,
		Combined:   combined.NewSource(storePage, appDetails, opts, tel),
	}
}

func (s Sources) Get(mode Mode) (Source, error) {
	switch mode {
	case MODE_STORE_HTML:
		return s.StorePage, nil
	case MODE_STEAMPOWERED_API:
		return s.AppDetails, nil
	case MODE_COMBINED:
		return s.Combined, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownMode, mode)
}
