// Package graph maintains an incrementally updated conflict graph over a
// working set of class assignments.
//
// A Loader owns four indices guarded as one unit by a single sync.RWMutex:
// the per-day assignment buckets, the edge map keyed by canonical pair key,
// the conflict-free set, and a reverse index from assignment id to the keys
// of its incident edges. Mutating operations (Add, Remove, Clear) hold the
// exclusive lock for their entire run, including the full pairwise scan of a
// day bucket; read operations share the lock and return copies, so callers
// can never observe or corrupt internal state through a returned reference.
//
// Classification is permissive about unresolved entity references: a check
// that cannot be decided contributes no conflict and is logged as a warning.
// Call sites that want the strict form use the detector's verify operations
// before handing an assignment to the Loader.
package graph

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/ocampoLuis/conflictgraph/pkg/detector"
	"github.com/ocampoLuis/conflictgraph/pkg/model"
)

// Sentinel errors for Loader operations.
var (
	// ErrAlreadyTracked indicates an Add with an id the Loader already holds.
	ErrAlreadyTracked = errors.New("graph: assignment already tracked")

	// ErrNotTracked indicates a Remove for an id the Loader does not hold.
	ErrNotTracked = errors.New("graph: assignment not tracked")

	// ErrNilSource indicates a Rebuild from a nil AssignmentSource.
	ErrNilSource = errors.New("graph: nil assignment source")
)

// Loader is the authoritative conflict state for a working set of
// assignments. Zero value is not usable; construct with New.
type Loader struct {
	mu     sync.RWMutex
	rules  detector.Detector
	logger *zap.Logger

	byDay        map[model.Weekday][]model.Assignment
	edges        map[model.PairKey][]model.ConflictEdge
	conflictFree map[int64]model.Assignment
	incident     map[int64]map[model.PairKey]struct{} // id -> keys of its edges
	days         map[int64]model.Weekday              // id -> tracked day
}

// Option configures a Loader before first use.
type Option func(*Loader)

// WithLogger attaches a logger for classification diagnostics; defaults to a
// no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New builds an empty Loader classifying through the given rules. A nil
// rules argument falls back to detector.New() with its defaults.
func New(rules detector.Detector, opts ...Option) *Loader {
	l := &Loader{
		rules:        rules,
		logger:       zap.NewNop(),
		byDay:        make(map[model.Weekday][]model.Assignment),
		edges:        make(map[model.PairKey][]model.ConflictEdge),
		conflictFree: make(map[int64]model.Assignment),
		incident:     make(map[int64]map[model.PairKey]struct{}),
		days:         make(map[int64]model.Weekday),
	}
	if l.rules == nil {
		l.rules = detector.New()
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// pairwiseDimensions lists the resource dimensions compared between two
// overlapping assignments, in classification order.
var pairwiseDimensions = []struct {
	conflictType model.ConflictType
	collides     func(e, a *model.Assignment) bool
}{
	{model.SameProfessor, func(e, a *model.Assignment) bool { return e.ProfessorId == a.ProfessorId }},
	{model.SameRoom, func(e, a *model.Assignment) bool { return e.RoomId == a.RoomId }},
	{model.SameGroup, func(e, a *model.Assignment) bool { return e.GroupId == a.GroupId }},
	{model.SameSession, func(e, a *model.Assignment) bool { return e.Session == a.Session }},
}

// Add classifies the assignment against the current working set and indexes
// it. The assignment is validated first; a nil or invalid one fails fast and
// leaves the Loader untouched. The stored snapshot is a value copy, so the
// caller keeping or mutating its pointer cannot corrupt Loader state.
func (l *Loader) Add(a *model.Assignment) error {
	if a == nil {
		return model.ErrNilAssignment
	}
	if err := a.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.days[a.Id]; ok {
		return fmt.Errorf("%w: id %d", ErrAlreadyTracked, a.Id)
	}

	conflicted := false

	//** Self-conflict checks in classification order
	for _, result := range l.rules.SelfOutcomes(a) {
		switch result.Outcome {
		case detector.Conflict:
			l.recordEdgeLocked(model.NewSelfEdge(result.Type, a.Id))
			conflicted = true
		case detector.Indeterminate:
			l.logger.Warn("conflict check skipped: unresolved reference",
				zap.Int64("assignmentId", a.Id),
				zap.Stringer("check", result.Type))
		}
	}

	//** Pairwise scan of the day bucket
	// Every unordered pair is examined exactly once: when its second member
	// arrives. The canonical low-high key makes the recorded edge identical
	// whichever member arrived first, so a rebuild in any insertion order
	// produces the same edge map.
	for i := range l.byDay[a.Day] {
		existing := &l.byDay[a.Day][i]
		overlaps, err := l.rules.AssignmentsOverlap(existing, a)
		if err != nil {
			return err
		}
		if !overlaps {
			continue
		}
		collided := false
		for _, dim := range pairwiseDimensions {
			if !dim.collides(existing, a) {
				continue
			}
			l.recordEdgeLocked(model.NewConflictEdge(dim.conflictType, existing.Id, a.Id))
			collided = true
		}
		if collided {
			conflicted = true
			delete(l.conflictFree, existing.Id)
		}
	}

	//** Index the snapshot
	l.byDay[a.Day] = append(l.byDay[a.Day], *a)
	l.days[a.Id] = a.Day
	if !conflicted {
		l.conflictFree[a.Id] = *a
	}
	return nil
}

// Remove returns the assignment to the absent state: its day bucket entry,
// conflict-free membership and every incident edge are purged. Surviving
// parties of purged edges keep their current classification; they are not
// re-examined. Removing an untracked assignment fails with ErrNotTracked.
func (l *Loader) Remove(a *model.Assignment) error {
	if a == nil {
		return model.ErrNilAssignment
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	day, ok := l.days[a.Id]
	if !ok {
		return fmt.Errorf("%w: id %d", ErrNotTracked, a.Id)
	}

	//** Drop the day bucket entry
	l.byDay[day] = slices.DeleteFunc(l.byDay[day], func(e model.Assignment) bool {
		return e.Id == a.Id
	})
	if len(l.byDay[day]) == 0 {
		delete(l.byDay, day)
	}

	//** Purge incident edges through the reverse index
	for key := range l.incident[a.Id] {
		// Edges under one key all share their endpoints.
		if bundle := l.edges[key]; len(bundle) > 0 {
			other := bundle[0].FirstId
			if other == a.Id {
				other = bundle[0].SecondId
			}
			if other != a.Id {
				l.dropIncidentLocked(other, key)
			}
		}
		delete(l.edges, key)
	}
	delete(l.incident, a.Id)

	delete(l.conflictFree, a.Id)
	delete(l.days, a.Id)
	return nil
}

// Clear drops every index atomically, leaving an empty Loader.
func (l *Loader) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	clear(l.byDay)
	clear(l.edges)
	clear(l.conflictFree)
	clear(l.incident)
	clear(l.days)
}

// Rebuild clears the Loader and re-adds every assignment the source yields.
// The first failing Add aborts the rebuild, leaving the assignments added so
// far in place. Each step takes the write lock on its own, so concurrent
// readers may observe intermediate states of an ongoing rebuild.
func (l *Loader) Rebuild(src AssignmentSource) error {
	if src == nil {
		return ErrNilSource
	}
	assignments := src.AllAssignments()

	l.Clear()
	for i := range assignments {
		if err := l.Add(&assignments[i]); err != nil {
			return fmt.Errorf("graph: rebuild aborted at assignment %d: %w", assignments[i].Id, err)
		}
	}
	return nil
}

func (l *Loader) recordEdgeLocked(edge model.ConflictEdge) {
	key := edge.Key()
	l.edges[key] = append(l.edges[key], edge)
	l.addIncidentLocked(edge.FirstId, key)
	if edge.SecondId != edge.FirstId {
		l.addIncidentLocked(edge.SecondId, key)
	}
}

func (l *Loader) addIncidentLocked(id int64, key model.PairKey) {
	keys, ok := l.incident[id]
	if !ok {
		keys = make(map[model.PairKey]struct{})
		l.incident[id] = keys
	}
	keys[key] = struct{}{}
}

func (l *Loader) dropIncidentLocked(id int64, key model.PairKey) {
	keys, ok := l.incident[id]
	if !ok {
		return
	}
	delete(keys, key)
	if len(keys) == 0 {
		delete(l.incident, id)
	}
}
