package kernel

import (
	"time"

	"logistica/internal/pkg/errs"
)

// TimeOfDayLayout is the canonical clock time format used across the API
// and the database: "15:04".
const TimeOfDayLayout = "15:04"

// ErrTimeOfDayIsNotConstructed indicates that a TimeOfDay was not created through NewTimeOfDay.
var ErrTimeOfDayIsNotConstructed = errs.NewValueIsRequiredError("TimeOfDay must be created via NewTimeOfDay")

// TimeOfDay is a value object representing a wall-clock time without a date,
// in 24-hour "HH:MM" form. Deliveries use TimeOfDay for their scheduled time
// slot. As with Day, lexicographic ordering of the canonical form matches
// chronological ordering.
//
// The zero value is invalid; construct via NewTimeOfDay.
type TimeOfDay struct {
	value string
}

// NewTimeOfDay parses a clock time in 24-hour "HH:MM" form.
// Returns a ValueIsInvalidError if the string does not encode a valid time.
func NewTimeOfDay(s string) (TimeOfDay, error) {
	if s == "" {
		return TimeOfDay{}, errs.NewValueIsRequiredError("scheduledTime")
	}
	if _, err := time.Parse(TimeOfDayLayout, s); err != nil {
		return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause("scheduledTime", err)
	}
	return TimeOfDay{value: s}, nil
}

// String returns the time in "HH:MM" form.
func (t TimeOfDay) String() string {
	return t.value
}

// Before reports whether t is strictly earlier than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.value < other.value
}

// IsEqual compares two times for equality.
func (t TimeOfDay) IsEqual(other TimeOfDay) bool {
	return t.value == other.value
}

// Validate checks if the TimeOfDay is properly constructed.
func (t TimeOfDay) Validate() error {
	if t.value == "" {
		return ErrTimeOfDayIsNotConstructed
	}
	return nil
}
