// Package chrono abstracts the clock so that anything naming things after the
// current time can be tested.
package chrono

import "time"

type API interface {
	Now() time.Time
}

// StandardImpl is the system clock in the local time zone.
type StandardImpl struct{}

func (StandardImpl) Now() time.Time {
	return time.Now()
}

// FixedImpl always returns the same time.
type FixedImpl struct {
	Time time.Time
}

func (f FixedImpl) Now() time.Time {
	return f.Time
}
