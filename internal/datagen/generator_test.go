package datagen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocampoLuis/conflictgraph/pkg/model"
)

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	// Arrange
	cfg := DefaultConfig(50)
	cfg.Seed = 42

	// Act
	first, err1 := Generate(cfg)
	second, err2 := Generate(cfg)

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first.Assignments, second.Assignments)
	assert.Equal(t, first.Professors, second.Professors)

	// A different seed lands on a different dataset.
	cfg.Seed = 43
	third, err := Generate(cfg)
	require.NoError(t, err)
	assert.NotEqual(t, first.Assignments, third.Assignments)
}

func TestGeneratedAssignmentsAreValid(t *testing.T) {
	// Arrange
	cfg := DefaultConfig(200)
	cfg.Seed = 7

	// Act
	dataset, err := Generate(cfg)

	// Assert
	require.NoError(t, err)
	require.Len(t, dataset.Assignments, 200)

	for i, a := range dataset.Assignments {
		require.NoError(t, a.Validate())
		assert.Equal(t, int64(i+1), a.Id, "ids ascend from 1")

		require.NotNil(t, a.Professor)
		require.NotNil(t, a.Room)
		require.NotNil(t, a.Subject)
		assert.Equal(t, a.Professor.Id, a.ProfessorId)
		assert.Equal(t, a.Room.Id, a.RoomId)

		assert.GreaterOrEqual(t, a.StartTime, cfg.DayStart)
		assert.LessOrEqual(t, a.EndTime, cfg.DayEnd)
		assert.Contains(t, cfg.Days, a.Day)
	}

	for _, professor := range dataset.Professors {
		require.NoError(t, professor.Validate())
	}
	for _, room := range dataset.Rooms {
		require.NoError(t, room.Validate())
	}
}

func TestGenerateFeedsConflictVariety(t *testing.T) {
	// Arrange: pools small enough that all conflict families appear.
	cfg := DefaultConfig(300)
	cfg.Seed = 11

	// Act
	dataset, err := Generate(cfg)
	require.NoError(t, err)

	// Assert: some professors double-booked, some rooms are labs, some
	// subjects need one, some professors carry blocked slots.
	labRooms := 0
	for _, room := range dataset.Rooms {
		if room.IsLab {
			labRooms++
		}
	}
	assert.Positive(t, labRooms)

	blocked := 0
	for _, professor := range dataset.Professors {
		blocked += len(professor.BlockedSlots)
	}
	assert.Positive(t, blocked)

	nights := 0
	for _, a := range dataset.Assignments {
		if a.Session == model.SessionNight {
			nights++
		}
	}
	assert.Positive(t, nights)
	assert.Less(t, nights, len(dataset.Assignments))
}

func TestGenerateRejectsBadConfigs(t *testing.T) {
	scenarios := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no assignments", func(c *Config) { c.Assignments = 0 }},
		{"no professors", func(c *Config) { c.Professors = 0 }},
		{"no days", func(c *Config) { c.Days = nil }},
		{"unknown day", func(c *Config) { c.Days = []model.Weekday{"Someday"} }},
		{"no slot durations", func(c *Config) { c.SlotMinutes = nil }},
		{"non-positive slot duration", func(c *Config) { c.SlotMinutes = []int{60, 0} }},
		{"window too small", func(c *Config) {
			c.DayStart, c.DayEnd = model.TimeOfDay(8*60), model.TimeOfDay(8*60+30)
		}},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			cfg := DefaultConfig(10)
			scenario.mutate(&cfg)

			_, err := Generate(cfg)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
