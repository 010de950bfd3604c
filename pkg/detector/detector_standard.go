package detector

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ocampoLuis/conflictgraph/pkg/model"
)

type standardDetector struct {
	tolerance int // Minutes shaved off both ends of every compared range
	cacheSize int
	cache     *overlapCache
	logger    *zap.Logger
}

func (d *standardDetector) TimeOverlaps(start1, end1, start2, end2 model.TimeOfDay) (bool, error) {
	return d.TimeOverlapsWithin(start1, end1, start2, end2, 0)
}

func (d *standardDetector) TimeOverlapsWithin(start1, end1, start2, end2 model.TimeOfDay, tolerance int) (bool, error) {
	if err := checkRange(start1, end1); err != nil {
		return false, err
	}
	if err := checkRange(start2, end2); err != nil {
		return false, err
	}

	shift := model.TimeOfDay(max(tolerance, 0))
	start1, end1 = start1+shift, end1-shift
	start2, end2 = start2+shift, end2-shift
	if end1 <= start1 || end2 <= start2 {
		// The tolerance swallowed a whole range: nothing left to overlap.
		return false, nil
	}

	return !(end1 < start2) && !(start1 > end2), nil
}

func (d *standardDetector) OverlapMinutes(start1, end1, start2, end2 model.TimeOfDay) (int, error) {
	if err := checkRange(start1, end1); err != nil {
		return 0, err
	}
	if err := checkRange(start2, end2); err != nil {
		return 0, err
	}
	overlapped := int(min(end1, end2)) - int(max(start1, start2))
	return max(overlapped, 0), nil
}

func (d *standardDetector) OverlapPercentage(start1, end1, start2, end2 model.TimeOfDay) (float64, error) {
	overlapped, err := d.OverlapMinutes(start1, end1, start2, end2)
	if err != nil {
		return 0, err
	}
	shorter := min(int(end1-start1), int(end2-start2))
	return float64(overlapped) / float64(shorter) * 100, nil
}

func (d *standardDetector) AssignmentsOverlap(a1, a2 *model.Assignment) (bool, error) {
	if a1 == nil || a2 == nil {
		return false, model.ErrNilAssignment
	}

	key := newOverlapKey(a1, a2)
	if overlaps, ok := d.cache.get(key); ok {
		return overlaps, nil
	}

	overlaps := false
	if a1.Day == a2.Day {
		var err error
		overlaps, err = d.TimeOverlapsWithin(a1.StartTime, a1.EndTime, a2.StartTime, a2.EndTime, d.tolerance)
		if err != nil {
			return false, err // Never cache failed comparisons
		}
	}

	d.cache.put(key, overlaps)
	return overlaps, nil
}

func (d *standardDetector) CheckBlockedSlot(a *model.Assignment) Outcome {
	requireAssignment(a)
	if a.Professor == nil {
		return Indeterminate
	}

	for _, slot := range a.Professor.BlockedSlots {
		if slot.Day != a.Day {
			continue
		}
		overlaps, err := d.TimeOverlapsWithin(a.StartTime, a.EndTime, slot.StartTime, slot.EndTime, d.tolerance)
		if err != nil {
			d.logger.Warn("skipping malformed blocked slot",
				zap.Int64("professorId", a.Professor.Id),
				zap.String("slot", slot.String()),
				zap.Error(err))
			continue
		}
		if overlaps {
			return Conflict
		}
	}
	return NoConflict
}

func (d *standardDetector) CheckSubjectAuthorization(a *model.Assignment) Outcome {
	requireAssignment(a)
	if a.Subject == nil {
		return NoConflict
	}
	if a.Professor == nil {
		return Indeterminate
	}
	if !a.Professor.Authorized(a.Subject.Code) {
		return Conflict
	}
	return NoConflict
}

func (d *standardDetector) CheckRoomCapacity(a *model.Assignment) Outcome {
	requireAssignment(a)
	if a.Room == nil {
		return Indeterminate
	}
	if a.EnrolledStudents > a.Room.Capacity {
		return Conflict
	}
	return NoConflict
}

func (d *standardDetector) CheckRoomCompatibility(a *model.Assignment) Outcome {
	requireAssignment(a)
	if a.Subject == nil || !a.Subject.RequiresLab {
		return NoConflict
	}
	if a.Room == nil {
		return Indeterminate
	}
	if !a.Room.IsLab {
		return Conflict
	}
	return NoConflict
}

func (d *standardDetector) SelfOutcomes(a *model.Assignment) []SelfOutcome {
	requireAssignment(a)
	return []SelfOutcome{
		{model.ProfessorBlocked, d.CheckBlockedSlot(a)},
		{model.SubjectAuthorization, d.CheckSubjectAuthorization(a)},
		{model.RoomCapacity, d.CheckRoomCapacity(a)},
		{model.RoomCompatibility, d.CheckRoomCompatibility(a)},
	}
}

func (d *standardDetector) AreCompatible(a1, a2 *model.Assignment) (bool, error) {
	if a1 == nil || a2 == nil {
		return false, model.ErrNilAssignment
	}
	if a1.Id == a2.Id {
		// An assignment never collides with itself on a pairwise dimension.
		return true, nil
	}

	overlaps, err := d.AssignmentsOverlap(a1, a2)
	if err != nil {
		return false, err
	}
	if !overlaps {
		return true, nil
	}

	compatible := a1.ProfessorId != a2.ProfessorId &&
		a1.RoomId != a2.RoomId &&
		a1.GroupId != a2.GroupId
	return compatible, nil
}

func (d *standardDetector) VerifyCompatible(a1, a2 *model.Assignment) error {
	if a1 == nil || a2 == nil {
		return model.ErrNilAssignment
	}
	if a1.Id == a2.Id {
		return nil
	}

	overlaps, err := d.AssignmentsOverlap(a1, a2)
	if err != nil {
		return err
	}
	if !overlaps {
		return nil
	}

	switch {
	case a1.ProfessorId == a2.ProfessorId:
		return newPairConflictError(model.SameProfessor, a1.Id, a2.Id)
	case a1.RoomId == a2.RoomId:
		return newPairConflictError(model.SameRoom, a1.Id, a2.Id)
	case a1.GroupId == a2.GroupId:
		return newPairConflictError(model.SameGroup, a1.Id, a2.Id)
	}
	return nil
}

func (d *standardDetector) VerifySelfCompatible(a *model.Assignment) error {
	if a == nil {
		return model.ErrNilAssignment
	}
	for _, result := range d.SelfOutcomes(a) {
		switch result.Outcome {
		case Conflict:
			return newSelfConflictError(result.Type, a.Id)
		case Indeterminate:
			return fmt.Errorf("%w: assignment %d lacks data for %s check", ErrMissingReference, a.Id, result.Type)
		}
	}
	return nil
}

func (d *standardDetector) ClearCache() {
	d.cache.clear()
}

func (d *standardDetector) CacheLen() int {
	return d.cache.len()
}

func checkRange(start, end model.TimeOfDay) error {
	if !start.Valid() || !end.Valid() || end <= start {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, int(start), int(end))
	}
	return nil
}

func requireAssignment(a *model.Assignment) {
	if a == nil {
		panic("detector: nil assignment")
	}
}
