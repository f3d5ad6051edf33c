// Package clock abstracts the wall clock so rendered output can be pinned in tests.
package clock

import "time"

// Clock reports the current instant.
type Clock interface {
	Now() time.Time
}

// System reads the host clock in the host's local time zone.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Fixed always reports the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }

// At returns a Fixed clock pinned to t.
func At(t time.Time) Fixed { return Fixed(t) }
