// Package model declares the domain records of the conflict graph: assignments,
// the entities they reference, and the conflict taxonomy. All records are treated
// as immutable once constructed and validated.
package model

import "fmt"

// SessionType is the session code an assignment is scheduled under.
type SessionType string

const (
	SessionDay   SessionType = "D"
	SessionNight SessionType = "N"
)

var sessionLabels = map[SessionType]string{
	SessionDay:   "day",
	SessionNight: "night",
}

// SessionTypes returns the closed session code set.
func SessionTypes() []SessionType {
	return []SessionType{SessionDay, SessionNight}
}

func (s SessionType) Valid() bool {
	_, ok := sessionLabels[s]
	return ok
}

// Label returns the human-readable session name.
func (s SessionType) Label() string {
	if label, ok := sessionLabels[s]; ok {
		return label
	}
	return string(s)
}

// Assignment is one scheduled class occurrence. Identity is carried by Id alone;
// two assignments with the same Id are the same assignment regardless of the
// remaining fields. The Subject reference is optional, Professor and Room may be
// left unresolved (consumers decide how strictly to treat that).
type Assignment struct {
	Id               int64       `validate:"gt=0"`
	Day              Weekday     `validate:"oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime        TimeOfDay   `validate:"gte=0,lt=1440"`
	EndTime          TimeOfDay   `validate:"gte=0,lt=1440,gtfield=StartTime"`
	ProfessorId      int64       `validate:"gt=0"`
	RoomId           int64       `validate:"gt=0"`
	GroupId          int64       `validate:"gt=0"`
	Session          SessionType `validate:"oneof=D N"`
	EnrolledStudents int         `validate:"gte=0"`

	Subject   *Subject
	Room      *Room
	Professor *Professor
}

// Validate checks the assignment's structural invariants, including the nested
// professor, room and subject snapshots when present.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrNilAssignment
	}
	if err := validate.Struct(a); err != nil {
		return fmt.Errorf("model: assignment %d: %v: %w", a.Id, err, ErrValidation)
	}
	return nil
}

// Equal reports identity, which is defined by Id only.
func (a *Assignment) Equal(other *Assignment) bool {
	return a != nil && other != nil && a.Id == other.Id
}

// Duration returns the scheduled length in minutes.
func (a *Assignment) Duration() int {
	return int(a.EndTime - a.StartTime)
}

func (a *Assignment) String() string {
	return fmt.Sprintf("assignment %d (%s %s-%s)", a.Id, a.Day, a.StartTime, a.EndTime)
}
