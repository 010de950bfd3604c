package model

import (
	"fmt"
	"strconv"
	"strings"
)

// ConflictType is the closed category of a detected conflict. The first four
// values are self-conflicts (an assignment against its own constraints), the
// rest are pairwise dimensions between two time-overlapping assignments on the
// same day. Declaration order is the classification order.
type ConflictType int

const (
	ProfessorBlocked ConflictType = iota
	SubjectAuthorization
	RoomCapacity
	RoomCompatibility
	SameProfessor
	SameRoom
	SameGroup
	SameSession
)

var conflictCodes = map[ConflictType]string{
	ProfessorBlocked:     "PROFESSOR_BLOCKED",
	SubjectAuthorization: "SUBJECT_AUTHORIZATION",
	RoomCapacity:         "ROOM_CAPACITY",
	RoomCompatibility:    "ROOM_COMPATIBILITY",
	SameProfessor:        "PROFESSOR",
	SameRoom:             "ROOM",
	SameGroup:            "GROUP",
	SameSession:          "SESSION_TYPE",
}

var conflictLabels = map[ConflictType]string{
	ProfessorBlocked:     "professor blocked slot",
	SubjectAuthorization: "professor not authorized for subject",
	RoomCapacity:         "room capacity exceeded",
	RoomCompatibility:    "room incompatible with subject",
	SameProfessor:        "same professor",
	SameRoom:             "same room",
	SameGroup:            "same group",
	SameSession:          "same session type",
}

// ConflictTypes returns every conflict category in classification order.
func ConflictTypes() []ConflictType {
	return []ConflictType{
		ProfessorBlocked, SubjectAuthorization, RoomCapacity, RoomCompatibility,
		SameProfessor, SameRoom, SameGroup, SameSession,
	}
}

// SelfConflictTypes returns the categories an assignment can hold against itself.
func SelfConflictTypes() []ConflictType {
	return []ConflictType{ProfessorBlocked, SubjectAuthorization, RoomCapacity, RoomCompatibility}
}

// PairwiseConflictTypes returns the dimensions compared between two assignments.
func PairwiseConflictTypes() []ConflictType {
	return []ConflictType{SameProfessor, SameRoom, SameGroup, SameSession}
}

func (t ConflictType) Valid() bool {
	_, ok := conflictCodes[t]
	return ok
}

// Pairwise reports whether t arises from comparing two distinct assignments.
func (t ConflictType) Pairwise() bool {
	return t >= SameProfessor && t <= SameSession
}

// String returns the stable uppercase code of the category.
func (t ConflictType) String() string {
	if code, ok := conflictCodes[t]; ok {
		return code
	}
	return fmt.Sprintf("ConflictType(%d)", int(t))
}

// Label returns the human-readable description carried by exported edges.
func (t ConflictType) Label() string {
	if label, ok := conflictLabels[t]; ok {
		return label
	}
	return t.String()
}

// PairKey is the canonical "<low>-<high>" identifier of an unordered assignment
// pair. A self-edge uses the same id on both sides.
type PairKey string

// NewPairKey canonicalizes the two ids into ascending order.
func NewPairKey(id1, id2 int64) PairKey {
	if id2 < id1 {
		id1, id2 = id2, id1
	}
	return PairKey(strconv.FormatInt(id1, 10) + "-" + strconv.FormatInt(id2, 10))
}

// Split decodes the key back into its ascending id pair.
func (k PairKey) Split() (int64, int64, error) {
	lowPart, highPart, found := strings.Cut(string(k), "-")
	if !found {
		return 0, 0, fmt.Errorf("model: pair key %q: %w", k, ErrInvalidPairKey)
	}
	low, err := strconv.ParseInt(lowPart, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("model: pair key %q: %w", k, ErrInvalidPairKey)
	}
	high, err := strconv.ParseInt(highPart, 10, 64)
	if err != nil || low > high {
		return 0, 0, fmt.Errorf("model: pair key %q: %w", k, ErrInvalidPairKey)
	}
	return low, high, nil
}

// Contains reports whether either side of the key is id.
func (k PairKey) Contains(id int64) bool {
	low, high, err := k.Split()
	if err != nil {
		return false
	}
	return low == id || high == id
}

// Self reports whether the key joins an assignment with itself.
func (k PairKey) Self() bool {
	low, high, err := k.Split()
	return err == nil && low == high
}

// ConflictEdge is one typed conflict attached to a canonical assignment pair.
// FirstId <= SecondId always holds; a self-conflict carries the same id twice.
type ConflictEdge struct {
	Type     ConflictType
	FirstId  int64
	SecondId int64
}

// NewConflictEdge builds an edge with the ids in canonical ascending order.
func NewConflictEdge(t ConflictType, id1, id2 int64) ConflictEdge {
	if id2 < id1 {
		id1, id2 = id2, id1
	}
	return ConflictEdge{Type: t, FirstId: id1, SecondId: id2}
}

// NewSelfEdge builds the id-id edge recorded by self-conflict checks.
func NewSelfEdge(t ConflictType, id int64) ConflictEdge {
	return ConflictEdge{Type: t, FirstId: id, SecondId: id}
}

// Key returns the canonical pair key the edge is stored under.
func (e ConflictEdge) Key() PairKey {
	return NewPairKey(e.FirstId, e.SecondId)
}

// Self reports whether the edge ties an assignment to its own constraints.
func (e ConflictEdge) Self() bool {
	return e.FirstId == e.SecondId
}

func (e ConflictEdge) String() string {
	return fmt.Sprintf("%s(%d-%d)", e.Type, e.FirstId, e.SecondId)
}
