package graph

import "github.com/ocampoLuis/conflictgraph/pkg/model"

// AssignmentSource enumerates the assignments a Loader rebuilds from. The
// slice may be in any order; classification does not depend on it.
type AssignmentSource interface {
	AllAssignments() []model.Assignment
}

// SliceSource adapts an in-memory slice into an AssignmentSource.
type SliceSource []model.Assignment

func (s SliceSource) AllAssignments() []model.Assignment {
	return s
}
