// Package timezone resolves fixed UTC offset specifications like "+0300" or
// "-05:30" into time.Location values. Named zones and DST rules are out of
// scope; only the numeric offset applies.
package timezone

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidFormat indicates the specification is not a signed integer
	// after colon removal.
	ErrInvalidFormat = errors.New("invalid timezone format")

	// ErrInvalidOffset indicates the specification parsed but does not
	// describe a valid fixed UTC offset.
	ErrInvalidOffset = errors.New("invalid timezone offset")
)

const maxOffsetSeconds = 24 * 60 * 60

// Resolve parses a fixed-offset specification in the form ±HHMM or ±HH:MM
// and returns a fixed time.Location for it. The digits are interpreted as
// hours-and-minutes packed decimal, so "+0330" is three hours and thirty
// minutes east of UTC. Minute components of 60 or more are rejected, as are
// offsets at or beyond 24 hours in either direction.
func Resolve(spec string) (*time.Location, error) {
	packed, err := strconv.Atoi(strings.ReplaceAll(spec, ":", ""))
	if err != nil {
		return nil, fmt.Errorf("%w: %q (use the form +0300)", ErrInvalidFormat, spec)
	}

	hours := packed / 100
	minutes := packed % 100
	if minutes >= 60 || minutes <= -60 {
		return nil, fmt.Errorf("%w: %q has a minute component of %d", ErrInvalidOffset, spec, minutes)
	}

	seconds := hours*3600 + minutes*60
	if seconds <= -maxOffsetSeconds || seconds >= maxOffsetSeconds {
		return nil, fmt.Errorf("%w: %q is outside the valid UTC offset range", ErrInvalidOffset, spec)
	}

	return time.FixedZone(spec, seconds), nil
}
