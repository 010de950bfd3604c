package detector

import (
	"errors"
	"fmt"

	"github.com/ocampoLuis/conflictgraph/pkg/model"
)

var (
	// ErrInvalidRange reports a time range whose end does not lie strictly
	// after its start, or whose endpoints fall outside the day.
	ErrInvalidRange = errors.New("detector: invalid time range")

	// ErrMissingReference reports an assignment whose professor, room or
	// subject reference was not resolved before a strict check needed it.
	ErrMissingReference = errors.New("detector: unresolved entity reference")

	// ErrConflict is the sentinel wrapped by every *ConflictError, so callers
	// can match the whole class with errors.Is.
	ErrConflict = errors.New("detector: conflict detected")
)

// ConflictError reports a single detected conflict. For self conflicts both
// ids are equal.
type ConflictError struct {
	Type     model.ConflictType
	FirstId  int64
	SecondId int64
}

func (e *ConflictError) Error() string {
	if e.FirstId == e.SecondId {
		return fmt.Sprintf("detector: %s conflict on assignment %d", e.Type, e.FirstId)
	}
	return fmt.Sprintf("detector: %s conflict between assignments %d and %d", e.Type, e.FirstId, e.SecondId)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// Edge converts the error into its graph representation.
func (e *ConflictError) Edge() model.ConflictEdge {
	return model.NewConflictEdge(e.Type, e.FirstId, e.SecondId)
}

func newSelfConflictError(t model.ConflictType, id int64) *ConflictError {
	return &ConflictError{Type: t, FirstId: id, SecondId: id}
}

func newPairConflictError(t model.ConflictType, id1, id2 int64) *ConflictError {
	e := model.NewConflictEdge(t, id1, id2)
	return &ConflictError{Type: e.Type, FirstId: e.FirstId, SecondId: e.SecondId}
}
