// Package storefront names things on the store: app ids, store page urls and the
// languages the store renders in.
package storefront

import (
	"errors"
	"fmt"
	"regexp"
	"steamscraper/pkg/textutil"
	"strconv"
)

const StoreHost = "store.steampowered.com"

var ErrInvalidIdentifier = errors.New("invalid app id or store url")

// AppID is the numeric id of a product on the store.
type AppID uint64

func (id AppID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// StoreURL returns the canonical store page of the app, without a slug.
func (id AppID) StoreURL() string {
	return fmt.Sprintf("https://%s/app/%d/", StoreHost, id)
}

// the id and the optional slug are the only capturing groups, anything after
// them is ignored.
var storeUrlRegex = regexp.MustCompile(`^https://store\.steampowered\.com/app/(\d+)(?:/([^/?#]+))?`)

// StoreURL is a store page url that matched the canonical pattern.
type StoreURL struct {
	Raw  string
	ID   AppID
	Slug string
}

// SafeName is the slug (or "app_<id>" when there is no slug) with characters that
// cannot appear in file names removed.
func (u StoreURL) SafeName() string {
	name := u.Slug
	if name == "" {
		name = fmt.Sprintf("app_%d", u.ID)
	}
	return textutil.SafeFilename(name)
}

// MatchStoreURL checks `url` against the canonical store page pattern.
func MatchStoreURL(url string) (StoreURL, bool) {
	groups := storeUrlRegex.FindStringSubmatch(url)
	if len(groups) < 3 {
		return StoreURL{}, false
	}
	id, err := strconv.ParseUint(groups[1], 10, 64)
	if err != nil || id == 0 {
		return StoreURL{}, false
	}
	return StoreURL{
		Raw:  url,
		ID:   AppID(id),
		Slug: groups[2],
	}, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Resolve turns an integer, a string of decimal digits or a store page url into
// an AppID. Digit strings never go through url matching.
func Resolve(input any) (AppID, error) {
	switch v := input.(type) {
	case AppID:
		if v == 0 {
			return 0, fmt.Errorf("%w: %d", ErrInvalidIdentifier, v)
		}
		return v, nil
	case int:
		return resolveSigned(int64(v))
	case int32:
		return resolveSigned(int64(v))
	case int64:
		return resolveSigned(v)
	case uint:
		return resolveUnsigned(uint64(v))
	case uint32:
		return resolveUnsigned(uint64(v))
	case uint64:
		return resolveUnsigned(v)
	case string:
		if isDigits(v) {
			id, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return 0, fmt.Errorf("%w: %q", ErrInvalidIdentifier, v)
			}
			return resolveUnsigned(id)
		}
		match, ok := MatchStoreURL(v)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrInvalidIdentifier, v)
		}
		return match.ID, nil
	}
	return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidIdentifier, input)
}

func resolveSigned(v int64) (AppID, error) {
	if v <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidIdentifier, v)
	}
	return AppID(v), nil
}

func resolveUnsigned(v uint64) (AppID, error) {
	if v == 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidIdentifier, v)
	}
	return AppID(v), nil
}

// ResolveURL is like Resolve but returns the store page to fetch for the input,
// numeric inputs get the canonical url synthesized.
func ResolveURL(input any) (StoreURL, error) {
	if s, ok := input.(string); ok && !isDigits(s) {
		match, ok := MatchStoreURL(s)
		if !ok {
			return StoreURL{}, fmt.Errorf("%w: %q", ErrInvalidIdentifier, s)
		}
		return match, nil
	}

	id, err := Resolve(input)
	if err != nil {
		return StoreURL{}, err
	}
	match, ok := MatchStoreURL(id.StoreURL())
	if !ok {
		return StoreURL{}, fmt.Errorf("%w: %q", ErrInvalidIdentifier, id.StoreURL())
	}
	return match, nil
}
