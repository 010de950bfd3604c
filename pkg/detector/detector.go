// Package detector implements the overlap and compatibility rules used to
// classify scheduling conflicts. All predicates are pure; the only shared state
// is the bounded memoization cache of pairwise overlap results.
package detector

import (
	"go.uber.org/zap"

	"github.com/ocampoLuis/conflictgraph/pkg/model"
)

// Outcome is the tri-state result of a self-conflict check. Indeterminate means
// a required professor/room/subject reference was missing, so the check could
// not be decided; callers choose whether to treat that permissively or escalate.
type Outcome int8

const (
	NoConflict Outcome = iota
	Conflict
	Indeterminate
)

// Conflicting reports whether the outcome is a definite conflict.
func (o Outcome) Conflicting() bool {
	return o == Conflict
}

func (o Outcome) String() string {
	switch o {
	case NoConflict:
		return "no-conflict"
	case Conflict:
		return "conflict"
	case Indeterminate:
		return "indeterminate"
	}
	return "unknown"
}

// SelfOutcome pairs one self-conflict check with its result.
type SelfOutcome struct {
	Type    model.ConflictType
	Outcome Outcome
}

type Detector interface {
	// Reports whether two validated time ranges overlap. Touching endpoints
	// (end1 == start2) count as overlapping.
	TimeOverlaps(start1, end1, start2, end2 model.TimeOfDay) (bool, error)

	// Same comparison after shrinking both ranges symmetrically by tolerance
	// minutes; a range inverted by the shrink never overlaps anything.
	TimeOverlapsWithin(start1, end1, start2, end2 model.TimeOfDay, tolerance int) (bool, error)

	// Returns the overlapped minutes between two ranges, zero when disjoint.
	OverlapMinutes(start1, end1, start2, end2 model.TimeOfDay) (int, error)

	// Returns the overlap as a percentage of the shorter range's duration.
	OverlapPercentage(start1, end1, start2, end2 model.TimeOfDay) (float64, error)

	// Reports whether two assignments share a day and overlapping times under
	// the configured tolerance. Results are memoized per concrete pair.
	AssignmentsOverlap(a1, a2 *model.Assignment) (bool, error)

	// Checks the assignment's time against its professor's blocked slots.
	CheckBlockedSlot(a *model.Assignment) Outcome

	// Checks whether the professor is authorized for the assignment's subject
	// code; vacuously NoConflict when no subject is referenced.
	CheckSubjectAuthorization(a *model.Assignment) Outcome

	// Checks whether enrollment exceeds the room capacity.
	CheckRoomCapacity(a *model.Assignment) Outcome

	// Checks whether a lab-requiring subject sits in a non-lab room.
	CheckRoomCompatibility(a *model.Assignment) Outcome

	// Runs all four self-conflict checks in classification order (blocked
	// slot, authorization, capacity, lab compatibility) and returns each
	// check's conflict type paired with its outcome.
	SelfOutcomes(a *model.Assignment) []SelfOutcome

	// Reports whether two assignments can coexist: false only when they share
	// a day, overlap in time, and collide on professor, room or group.
	AreCompatible(a1, a2 *model.Assignment) (bool, error)

	// Like AreCompatible but names the failure: returns a *ConflictError
	// carrying the first colliding dimension and both ids, or nil.
	VerifyCompatible(a1, a2 *model.Assignment) error

	// Runs the four self-conflict checks strictly: the first Conflict becomes
	// a *ConflictError, the first Indeterminate an ErrMissingReference error.
	VerifySelfCompatible(a *model.Assignment) error

	// Drops every memoized overlap result. Never invoked automatically.
	ClearCache()

	// Reports the number of memoized overlap results currently held.
	CacheLen() int
}

// Option configures a Detector at construction time.
type Option func(*standardDetector)

// WithTolerance shrinks every compared range by the given number of minutes
// before the overlap test. Negative values are treated as zero.
func WithTolerance(minutes int) Option {
	return func(d *standardDetector) {
		d.tolerance = max(minutes, 0)
	}
}

// WithCacheSize bounds the overlap memoization cache to n entries, evicting
// least-recently-used results. Zero disables memoization entirely.
func WithCacheSize(n int) Option {
	return func(d *standardDetector) {
		d.cacheSize = max(n, 0)
	}
}

// WithLogger attaches a logger for diagnostics; defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(d *standardDetector) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// DefaultCacheSize bounds the overlap cache unless WithCacheSize overrides it.
const DefaultCacheSize = 4096

// New builds the standard rule set.
func New(opts ...Option) Detector {
	d := &standardDetector{
		cacheSize: DefaultCacheSize,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.cache = newOverlapCache(d.cacheSize)
	return d
}
