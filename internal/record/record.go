// Package record holds the loosely typed field map every source produces and the
// policy used to combine two of them.
package record

import (
	"errors"
	"reflect"
)

var ErrNoData = errors.New("no data retrieved")

// Record maps field names to nil, scalars, nested maps or sequences. It is kept
// loosely typed so fields an upstream source adds pass through untouched.
type Record = map[string]any

// IsFalsy reports whether `value` counts as empty: nil, "", zero numbers, false
// and empty sequences or maps. Nil pointers and interfaces are falsy too.
func IsFalsy(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Pointer, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// IsMap reports whether `value` is a nested mapping of any key and value type.
func IsMap(value any) bool {
	if value == nil {
		return false
	}
	return reflect.TypeOf(value).Kind() == reflect.Map
}

// IsString reports whether `value` is a bare string.
func IsString(value any) bool {
	if value == nil {
		return false
	}
	return reflect.TypeOf(value).Kind() == reflect.String
}
