package model

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is a clock time expressed as minutes since midnight, in [0, 1440).
type TimeOfDay int

const minutesPerDay = 24 * 60

// NewTimeOfDay builds a TimeOfDay from an hour and minute pair.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("model: %02d:%02d is not a valid time of day: %w", hour, minute, ErrInvalidTime)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// ParseTimeOfDay parses "HH:MM" (a single-digit hour is accepted as well).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hourPart, minutePart, found := strings.Cut(s, ":")
	if !found {
		return 0, fmt.Errorf("model: cannot parse time of day %q: %w", s, ErrInvalidTime)
	}
	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return 0, fmt.Errorf("model: cannot parse time of day %q: %w", s, ErrInvalidTime)
	}
	minute, err := strconv.Atoi(minutePart)
	if err != nil || len(minutePart) != 2 {
		return 0, fmt.Errorf("model: cannot parse time of day %q: %w", s, ErrInvalidTime)
	}
	return NewTimeOfDay(hour, minute)
}

func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

// Valid reports whether t falls inside a single day.
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < minutesPerDay
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}
