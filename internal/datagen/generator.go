// Package datagen produces randomized but valid assignment datasets for the
// CLI, the benchmark harness and load-style experiments. Generation is fully
// deterministic for a given Config, seed included.
package datagen

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/samber/lo"

	"github.com/ocampoLuis/conflictgraph/pkg/model"
)

// ErrInvalidConfig reports a Config that cannot produce a dataset.
var ErrInvalidConfig = errors.New("datagen: invalid config")

// Config controls the size and texture of a generated dataset. Rates are
// probabilities in [0, 1].
type Config struct {
	Assignments int
	Professors  int
	Rooms       int
	Subjects    int
	Groups      int

	Days        []model.Weekday
	DayStart    model.TimeOfDay
	DayEnd      model.TimeOfDay
	SlotMinutes []int // Candidate class durations

	BlockedRate float64 // Professors carrying one blocked slot
	LabRate     float64 // Lab rooms, and lab-requiring subjects
	NightRate   float64 // Night-session assignments

	Seed uint64
}

// DefaultConfig sizes the entity pools relative to the assignment count, so
// collisions on professors, rooms and groups occur at a realistic rate.
func DefaultConfig(assignments int) Config {
	return Config{
		Assignments: assignments,
		Professors:  max(assignments/4, 1),
		Rooms:       max(assignments/5, 1),
		Subjects:    max(assignments/6, 1),
		Groups:      max(assignments/3, 1),
		Days:        model.Weekdays()[:5], // Monday through Friday
		DayStart:    model.TimeOfDay(7 * 60),
		DayEnd:      model.TimeOfDay(21 * 60),
		SlotMinutes: []int{60, 90, 120},
		BlockedRate: 0.25,
		LabRate:     0.2,
		NightRate:   0.3,
		Seed:        1,
	}
}

// Dataset is a generated working set. It satisfies graph.AssignmentSource.
type Dataset struct {
	Professors  []model.Professor
	Rooms       []model.Room
	Subjects    []model.Subject
	Assignments []model.Assignment
}

func (d *Dataset) AllAssignments() []model.Assignment {
	return d.Assignments
}

// Generate builds a dataset from the config. Every produced assignment
// passes model validation and carries resolved entity references; ids are
// ascending from 1 within each entity kind.
func Generate(cfg Config) (*Dataset, error) {
	if err := checkConfig(cfg); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))

	subjects := generateSubjects(cfg, rng)
	professors := generateProfessors(cfg, rng, subjects)
	rooms := generateRooms(cfg, rng)

	assignments := make([]model.Assignment, 0, cfg.Assignments)
	for i := range cfg.Assignments {
		professor := &professors[rng.IntN(len(professors))]
		room := &rooms[rng.IntN(len(rooms))]
		subject := &subjects[rng.IntN(len(subjects))]

		slot := cfg.SlotMinutes[rng.IntN(len(cfg.SlotMinutes))]
		window := int(cfg.DayEnd-cfg.DayStart) - slot
		start := cfg.DayStart + model.TimeOfDay(30*rng.IntN(window/30+1))

		session := model.SessionDay
		if rng.Float64() < cfg.NightRate {
			session = model.SessionNight
		}

		assignments = append(assignments, model.Assignment{
			Id:               int64(i + 1),
			Day:              cfg.Days[rng.IntN(len(cfg.Days))],
			StartTime:        start,
			EndTime:          start + model.TimeOfDay(slot),
			ProfessorId:      professor.Id,
			RoomId:           room.Id,
			GroupId:          int64(rng.IntN(cfg.Groups) + 1),
			Session:          session,
			EnrolledStudents: 10 + rng.IntN(41),
			Professor:        professor,
			Room:             room,
			Subject:          subject,
		})
	}

	return &Dataset{
		Professors:  professors,
		Rooms:       rooms,
		Subjects:    subjects,
		Assignments: assignments,
	}, nil
}

func checkConfig(cfg Config) error {
	switch {
	case cfg.Assignments <= 0:
		return fmt.Errorf("%w: assignments must be positive", ErrInvalidConfig)
	case cfg.Professors <= 0 || cfg.Rooms <= 0 || cfg.Subjects <= 0 || cfg.Groups <= 0:
		return fmt.Errorf("%w: entity pools must be positive", ErrInvalidConfig)
	case len(cfg.Days) == 0:
		return fmt.Errorf("%w: at least one day required", ErrInvalidConfig)
	case len(cfg.SlotMinutes) == 0:
		return fmt.Errorf("%w: at least one slot duration required", ErrInvalidConfig)
	}
	for _, day := range cfg.Days {
		if !day.Valid() {
			return fmt.Errorf("%w: unknown day %q", ErrInvalidConfig, day)
		}
	}
	if lo.Min(cfg.SlotMinutes) <= 0 {
		return fmt.Errorf("%w: slot durations must be positive", ErrInvalidConfig)
	}
	if !cfg.DayStart.Valid() || !cfg.DayEnd.Valid() {
		return fmt.Errorf("%w: day window out of range", ErrInvalidConfig)
	}
	longest := lo.Max(cfg.SlotMinutes)
	if int(cfg.DayEnd-cfg.DayStart) < longest {
		return fmt.Errorf("%w: day window shorter than the longest slot", ErrInvalidConfig)
	}
	return nil
}

func generateSubjects(cfg Config, rng *rand.Rand) []model.Subject {
	subjects := make([]model.Subject, 0, cfg.Subjects)
	for i := range cfg.Subjects {
		subjects = append(subjects, model.Subject{
			Code:        fmt.Sprintf("SUB%03d", i+101),
			Name:        fmt.Sprintf("Subject %d", i+101),
			Credits:     3 + rng.IntN(4),
			RequiresLab: rng.Float64() < cfg.LabRate,
		})
	}
	return subjects
}

func generateProfessors(cfg Config, rng *rand.Rand, subjects []model.Subject) []model.Professor {
	codes := lo.Map(subjects, func(s model.Subject, _ int) string { return s.Code })

	professors := make([]model.Professor, 0, cfg.Professors)
	for i := range cfg.Professors {
		// A reshuffled prefix of the subject codes becomes this professor's
		// authorizations, leaving the rest to surface as conflicts.
		shuffled := make([]string, len(codes))
		copy(shuffled, codes)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		authorized := shuffled[:1+rng.IntN(len(shuffled))]

		professor := model.Professor{
			Id:                 int64(i + 1),
			Name:               fmt.Sprintf("Professor %d", i+1),
			AuthorizedSubjects: authorized,
		}
		// Blocked slots take two hours; skip them when the window is tighter.
		if blockWindow := int(cfg.DayEnd-cfg.DayStart) - 120; blockWindow >= 0 && rng.Float64() < cfg.BlockedRate {
			start := cfg.DayStart + model.TimeOfDay(60*rng.IntN(blockWindow/60+1))
			professor.BlockedSlots = []model.BlockedSlot{{
				Day:       cfg.Days[rng.IntN(len(cfg.Days))],
				StartTime: start,
				EndTime:   start + model.TimeOfDay(120),
			}}
		}
		professors = append(professors, professor)
	}
	return professors
}

func generateRooms(cfg Config, rng *rand.Rand) []model.Room {
	rooms := make([]model.Room, 0, cfg.Rooms)
	for i := range cfg.Rooms {
		rooms = append(rooms, model.Room{
			Id:       int64(i + 1),
			Name:     fmt.Sprintf("Room %d", i+1),
			Capacity: 20 + 5*rng.IntN(9),
			IsLab:    rng.Float64() < cfg.LabRate,
		})
	}
	return rooms
}
