package record

// shouldOverride decides if the catalog value replaces what the markup record has
// for the same field. A map always replaces a string, never the other way around.
func shouldOverride(base any, present bool, overlay any) bool {
	if !present {
		return true
	}
	if IsFalsy(base) {
		return true
	}
	return IsString(base) && IsMap(overlay)
}

// Merge combines the record extracted from the store page with the one decoded
// from the catalog. The markup record is the base, catalog fields only fill in
// fields that are missing or empty in it, or replace a bare string with structured
// data. Either input can be nil. ErrNoData is returned if the result has no fields.
//
// Neither input is modified, nested values are shared with the inputs.
func Merge(markup, catalog Record) (Record, error) {
	out := make(Record, len(markup)+len(catalog))
	for key, value := range markup {
		out[key] = value
	}
	for key, value := range catalog {
		existing, present := out[key]
		if shouldOverride(existing, present, value) {
			out[key] = value
		}
	}

	if len(out) == 0 {
		return nil, ErrNoData
	}
	return out, nil
}

// Sources reports which of the inputs to Merge contributed data.
type Sources struct {
	Markup  bool
	Catalog bool
}

func SourcesOf(markup, catalog Record) Sources {
	return Sources{
		Markup:  len(markup) > 0,
		Catalog: len(catalog) > 0,
	}
}
