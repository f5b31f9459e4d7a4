// Package assert guards against programmer errors, it should never be used to
// validate user input.
package assert

import "fmt"

// NotNil panics if `value` is nil, `name` is what the value is called in the
// panic message.
func NotNil(value any, name string) {
	if value == nil {
		panic(fmt.Sprintf("expected %s to be not nil", name))
	}
}

func NotEmptyStr(str string, name string) {
	if str == "" {
		panic(fmt.Sprintf("expected %s to be a non-empty string", name))
	}
}

func NotZero[T comparable](value T, name string) {
	var zero T
	if value == zero {
		panic(fmt.Sprintf("expected %s to be set", name))
	}
}
