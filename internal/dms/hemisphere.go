package dms

import (
	"errors"
	"fmt"
	"strings"
)

// ErrHemisphere is returned for a hint outside N, S, E, W.
var ErrHemisphere = errors.New("dms: invalid hemisphere")

// Hemisphere is the caller-supplied sign context for a coordinate column.
type Hemisphere byte

const (
	North Hemisphere = 'N'
	South Hemisphere = 'S'
	East  Hemisphere = 'E'
	West  Hemisphere = 'W'
)

// ParseHemisphere accepts a single hemisphere letter in either case.
func ParseHemisphere(s string) (Hemisphere, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "N":
		return North, nil
	case "S":
		return South, nil
	case "E":
		return East, nil
	case "W":
		return West, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrHemisphere, s)
}

// Negative reports whether values in this hemisphere carry a minus sign.
func (h Hemisphere) Negative() bool { return h == South || h == West }

// IsLatitude is true for N and S.
func (h Hemisphere) IsLatitude() bool { return h == North || h == South }

func (h Hemisphere) Valid() bool {
	switch h {
	case North, South, East, West:
		return true
	}
	return false
}

func (h Hemisphere) String() string {
	if !h.Valid() {
		return fmt.Sprintf("Hemisphere(%d)", byte(h))
	}
	return string(h)
}
