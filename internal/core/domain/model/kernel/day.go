package kernel

import (
	"time"

	"logistica/internal/pkg/errs"
)

// DayLayout is the canonical calendar date format used across the API,
// the database and the UI: "2006-01-02".
const DayLayout = "2006-01-02"

// ErrDayIsNotConstructed indicates that a Day was not created through NewDay.
var ErrDayIsNotConstructed = errs.NewValueIsRequiredError("Day must be created via NewDay or Today")

// Day is a value object representing a calendar date without time or zone.
// It is stored and transmitted in ISO "YYYY-MM-DD" form, which makes
// lexicographic ordering identical to chronological ordering. Deliveries use
// Day for their scheduled date.
//
// The zero value is invalid; construct via NewDay or Today.
type Day struct {
	value string
}

// NewDay parses a calendar date in "YYYY-MM-DD" form.
// Returns a ValueIsInvalidError if the string does not encode a real date.
func NewDay(s string) (Day, error) {
	if s == "" {
		return Day{}, errs.NewValueIsRequiredError("scheduledDate")
	}
	if _, err := time.Parse(DayLayout, s); err != nil {
		return Day{}, errs.NewValueIsInvalidErrorWithCause("scheduledDate", err)
	}
	return Day{value: s}, nil
}

// Today returns the current calendar date in UTC.
func Today() Day {
	return Day{value: time.Now().UTC().Format(DayLayout)}
}

// String returns the date in "YYYY-MM-DD" form.
func (d Day) String() string {
	return d.value
}

// Before reports whether d is strictly earlier than other.
// Works on the canonical string form, which orders chronologically.
func (d Day) Before(other Day) bool {
	return d.value < other.value
}

// IsEqual compares two days for equality.
func (d Day) IsEqual(other Day) bool {
	return d.value == other.value
}

// Validate checks if the Day is properly constructed.
func (d Day) Validate() error {
	if d.value == "" {
		return ErrDayIsNotConstructed
	}
	return nil
}
