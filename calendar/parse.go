package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate is the sentinel behind every DateParseError.
var ErrInvalidDate = errors.New("invalid date")

// DateParseError describes an input that could not be read as YYYY-MM-DD.
// When returned from ParseDateOr, Substitute holds the date used instead.
type DateParseError struct {
	Input      string
	Substitute Date
	Err        error
}

func (e *DateParseError) Error() string {
	if e.Substitute.IsZero() {
		return fmt.Sprintf("invalid date %q", e.Input)
	}
	return fmt.Sprintf("invalid date %q, using %s", e.Input, e.Substitute)
}

func (e *DateParseError) Unwrap() error { return ErrInvalidDate }

// ParseDate reads a YYYY-MM-DD date. Timestamps with a time part
// (2025-03-01T10:00:00Z) are accepted and truncated to their day.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(Layout, s)
	if err == nil {
		return FromTime(t), nil
	}
	if ts, tsErr := time.Parse(time.RFC3339, s); tsErr == nil {
		return FromTime(ts), nil
	}
	return Date{}, &DateParseError{Input: s, Err: err}
}

// ParseDateOr parses s and substitutes fallback when it cannot be read.
// The substitution is never silent: the returned error is a
// *DateParseError carrying the fallback, and the returned date is usable.
func ParseDateOr(s string, fallback Date) (Date, error) {
	d, err := ParseDate(s)
	if err == nil {
		return d, nil
	}
	var perr *DateParseError
	if errors.As(err, &perr) {
		perr.Substitute = fallback
		return fallback, perr
	}
	return fallback, err
}

// MustParseDate parses s or panics. Use in tests and static tables.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// MarshalText implements encoding.TextMarshaler so dates serialise as
// YYYY-MM-DD in JSON and YAML.
func (d Date) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return []byte{}, nil
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
