package kernel

import (
	"time"

	"tracking/internal/pkg/errs"
)

// instantLayouts are the accepted textual timestamp forms, tried in order.
// The first two carry an offset; the rest are offset-less ("naive") and are
// interpreted as UTC.
var instantLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// ErrInstantIsInvalid indicates that a timestamp string could not be parsed
// in any of the accepted layouts.
var ErrInstantIsInvalid = errs.NewValueIsInvalidError("timestamp is not a recognized instant")

// ParseInstant parses a timestamp string into an absolute instant.
//
// Values that carry an offset (RFC 3339) are taken as-is. Values without an
// offset are interpreted as UTC, so "2025-01-15T10:00:00" and
// "2025-01-15T10:00:00+00:00" denote the same instant. The result is always
// in UTC.
func ParseInstant(s string) (time.Time, error) {
	for _, layout := range instantLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errs.NewValueIsInvalidErrorWithCause(s, ErrInstantIsInvalid)
}

// NormalizeInstant converts t to an absolute instant in UTC.
//
// Both operands of every time comparison in the domain pass through this
// function first, so a wall-clock value read in one zone is never compared
// against one read in another. Offset-carrying values are unchanged as
// instants.
func NormalizeInstant(t time.Time) time.Time {
	return t.UTC()
}
