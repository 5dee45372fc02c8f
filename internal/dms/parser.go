// Package dms converts degrees-minutes-seconds text such as 116°23'29" into
// decimal degrees.
//
// The sign is never read from the text itself. Callers pass a Hemisphere per
// column; South and West produce negative values.
package dms

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// ErrFormat is matched by every FormatError.
var ErrFormat = errors.New("invalid DMS format")

var (
	tokenRe = regexp.MustCompile(`^(\d+)°(\d+)'(\d+(?:\.\d+)?)"`)
	primes  = strings.NewReplacer("′", "'", "″", `"`)
)

// FormatError reports text that does not match D°M'S".
type FormatError struct {
	Text string // normalized input
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %s", ErrFormat, e.Text)
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// Decimal is the outcome of a parse. Valid is false when the input was blank,
// which callers must treat as "not computable" rather than zero.
type Decimal struct {
	Degrees float64
	Valid   bool
}

// Value returns the degrees as an interface value, or nil when not Valid.
func (d Decimal) Value() any {
	if !d.Valid {
		return nil
	}
	return d.Degrees
}

// Parse converts text to signed decimal degrees. Anything after a complete
// D°M'S" token is ignored.
func Parse(text string, h Hemisphere) (Decimal, error) {
	return parse(text, h, false)
}

// ParseStrict is Parse but rejects trailing text after the token.
func ParseStrict(text string, h Hemisphere) (Decimal, error) {
	return parse(text, h, true)
}

func parse(text string, h Hemisphere, strict bool) (Decimal, error) {
	if !h.Valid() {
		return Decimal{}, fmt.Errorf("%w: %v", ErrHemisphere, h)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return Decimal{}, nil
	}

	norm := normalize(text)
	m := tokenRe.FindStringSubmatch(norm)
	if m == nil || (strict && len(m[0]) != len(norm)) {
		return Decimal{}, &FormatError{Text: norm}
	}

	deg, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Decimal{}, &FormatError{Text: norm}
	}
	min, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Decimal{}, &FormatError{Text: norm}
	}
	sec, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return Decimal{}, &FormatError{Text: norm}
	}

	angle := deg + min/60 + sec/3600
	if h.Negative() {
		angle = -angle
	}
	return Decimal{Degrees: angle, Valid: true}, nil
}

// normalize maps the Unicode prime glyphs to ASCII and drops all whitespace.
func normalize(s string) string {
	s = primes.Replace(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Format renders an unsigned D°M'S" token.
func Format(degrees, minutes int, seconds float64) string {
	return fmt.Sprintf(`%d°%d'%s"`, degrees, minutes, strconv.FormatFloat(seconds, 'f', -1, 64))
}
