package graph

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"github.com/ocampoLuis/conflictgraph/pkg/model"
)

// AllAssignments returns every tracked assignment, ordered by weekday and
// insertion order within each day.
func (l *Loader) AllAssignments() []model.Assignment {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.Assignment, 0, len(l.days))
	for _, day := range model.Weekdays() {
		out = append(out, l.byDay[day]...)
	}
	return out
}

// AssignmentsByDay returns the day's bucket in insertion order.
func (l *Loader) AssignmentsByDay(day model.Weekday) []model.Assignment {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.byDay[day])
}

// ConflictFreeAssignments returns the assignments with no recorded conflict,
// ordered by id.
func (l *Loader) ConflictFreeAssignments() []model.Assignment {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := lo.Values(l.conflictFree)
	slices.SortFunc(out, func(a, b model.Assignment) int {
		return cmp.Compare(a.Id, b.Id)
	})
	return out
}

// EdgeConflicts returns a copy of the whole edge map.
func (l *Loader) EdgeConflicts() map[model.PairKey][]model.ConflictEdge {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[model.PairKey][]model.ConflictEdge, len(l.edges))
	for key, bundle := range l.edges {
		out[key] = slices.Clone(bundle)
	}
	return out
}

// ConflictsFor returns every edge incident to the id, ordered by partner
// pair; edges of one pair keep their classification order. Unknown ids
// yield an empty slice.
func (l *Loader) ConflictsFor(id int64) []model.ConflictEdge {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.ConflictEdge, 0, len(l.incident[id]))
	for key := range l.incident[id] {
		out = append(out, l.edges[key]...)
	}
	slices.SortStableFunc(out, func(a, b model.ConflictEdge) int {
		if c := cmp.Compare(a.FirstId, b.FirstId); c != 0 {
			return c
		}
		return cmp.Compare(a.SecondId, b.SecondId)
	})
	return out
}

// TotalConflicts returns the number of recorded edges across all pairs.
func (l *Loader) TotalConflicts() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return lo.SumBy(lo.Values(l.edges), func(bundle []model.ConflictEdge) int {
		return len(bundle)
	})
}

// Statistics returns the recorded edge count per conflict type. Types with
// no occurrences are absent from the map.
func (l *Loader) Statistics() map[model.ConflictType]int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	stats := make(map[model.ConflictType]int)
	for _, bundle := range l.edges {
		for _, edge := range bundle {
			stats[edge.Type]++
		}
	}
	return stats
}

// Len returns the number of tracked assignments.
func (l *Loader) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.days)
}

// DayCounts returns the number of tracked assignments per weekday. Days with
// no assignments are absent from the map.
func (l *Loader) DayCounts() map[model.Weekday]int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return lo.MapValues(l.byDay, func(bucket []model.Assignment, _ model.Weekday) int {
		return len(bucket)
	})
}
