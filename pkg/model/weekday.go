package model

import "fmt"

// Weekday is one of the seven weekday names used to bucket assignments.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

var weekdayOrder = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Weekdays returns the weekday names in calendar order.
func Weekdays() []Weekday {
	days := make([]Weekday, len(weekdayOrder))
	copy(days, weekdayOrder)
	return days
}

// ParseWeekday matches s against the closed weekday set.
func ParseWeekday(s string) (Weekday, error) {
	for _, day := range weekdayOrder {
		if string(day) == s {
			return day, nil
		}
	}
	return "", fmt.Errorf("model: %q is not a weekday: %w", s, ErrInvalidWeekday)
}

func (d Weekday) Valid() bool {
	for _, day := range weekdayOrder {
		if day == d {
			return true
		}
	}
	return false
}

// Index returns the calendar position of d, Monday being 0, or -1 when invalid.
func (d Weekday) Index() int {
	for i, day := range weekdayOrder {
		if day == d {
			return i
		}
	}
	return -1
}

func (d Weekday) String() string {
	return string(d)
}
