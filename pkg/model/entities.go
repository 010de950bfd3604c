package model

import (
	"fmt"
	"slices"
)

// Professor owns the authorization list and unavailability windows consulted by
// the self-conflict checks.
type Professor struct {
	Id                 int64  `validate:"gt=0"`
	Name               string `validate:"required"`
	AuthorizedSubjects []string
	BlockedSlots       []BlockedSlot `validate:"dive"`
}

// Authorized reports whether the professor may teach the subject code.
func (p *Professor) Authorized(subjectCode string) bool {
	return p != nil && slices.Contains(p.AuthorizedSubjects, subjectCode)
}

func (p *Professor) Validate() error {
	if p == nil {
		return fmt.Errorf("model: professor is nil: %w", ErrValidation)
	}
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("model: professor %d: %v: %w", p.Id, err, ErrValidation)
	}
	return nil
}

// BlockedSlot is a professor's declared unavailability window on a single day.
// Immutable once attached to a professor.
type BlockedSlot struct {
	Day       Weekday   `validate:"oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime TimeOfDay `validate:"gte=0,lt=1440"`
	EndTime   TimeOfDay `validate:"gte=0,lt=1440,gtfield=StartTime"`
}

func (b BlockedSlot) String() string {
	return fmt.Sprintf("%s %s-%s", b.Day, b.StartTime, b.EndTime)
}

// Room is the physical space snapshot referenced by an assignment.
type Room struct {
	Id       int64  `validate:"gt=0"`
	Name     string `validate:"required"`
	Capacity int    `validate:"gte=0"`
	IsLab    bool
}

func (r *Room) Validate() error {
	if r == nil {
		return fmt.Errorf("model: room is nil: %w", ErrValidation)
	}
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("model: room %d: %v: %w", r.Id, err, ErrValidation)
	}
	return nil
}

// Subject is the course snapshot optionally referenced by an assignment.
type Subject struct {
	Code        string `validate:"required"`
	Name        string
	Credits     int `validate:"gte=0"`
	RequiresLab bool
}

func (s *Subject) Validate() error {
	if s == nil {
		return fmt.Errorf("model: subject is nil: %w", ErrValidation)
	}
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("model: subject %q: %v: %w", s.Code, err, ErrValidation)
	}
	return nil
}
