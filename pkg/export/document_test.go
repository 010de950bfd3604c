package export

import (
	"bytes"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocampoLuis/conflictgraph/pkg/detector"
	"github.com/ocampoLuis/conflictgraph/pkg/graph"
	"github.com/ocampoLuis/conflictgraph/pkg/model"
)

func at(hour, minute int) model.TimeOfDay {
	return model.TimeOfDay(hour*60 + minute)
}

func class(id int64, day model.Weekday, start, end model.TimeOfDay, session model.SessionType) model.Assignment {
	return model.Assignment{
		Id:               id,
		Day:              day,
		StartTime:        start,
		EndTime:          end,
		ProfessorId:      100 + id,
		RoomId:           200 + id,
		GroupId:          300 + id,
		Session:          session,
		EnrolledStudents: 20,
	}
}

func TestDocumentShape(t *testing.T) {
	// Arrange: two classes sharing a professor, nothing else.
	loader := graph.New(detector.New())
	a1 := class(1, model.Monday, at(8, 0), at(10, 0), model.SessionDay)
	a1.ProfessorId, a1.RoomId, a1.GroupId, a1.EnrolledStudents = 7, 11, 21, 25
	a2 := class(2, model.Monday, at(9, 0), at(11, 0), model.SessionNight)
	a2.ProfessorId, a2.RoomId, a2.GroupId, a2.EnrolledStudents = 7, 12, 22, 30
	require.NoError(t, loader.Add(&a1))
	require.NoError(t, loader.Add(&a2))

	// Act
	payload, err := Build(loader).Marshal()

	// Assert: the exact wire shape downstream tooling depends on.
	require.NoError(t, err)
	expected := `{"nodes":[` +
		`{"id":1,"day":"Monday","startTime":"08:00","endTime":"10:00","professorId":7,"roomId":11,"groupId":21,"session":"D","enrolledStudents":25},` +
		`{"id":2,"day":"Monday","startTime":"09:00","endTime":"11:00","professorId":7,"roomId":12,"groupId":22,"session":"N","enrolledStudents":30}` +
		`],"edges":[{"between":[1,2],"conflicts":["same professor"]}]}`
	assert.Equal(t, expected, string(payload))
}

func TestSelfConflictEdgeShape(t *testing.T) {
	// Arrange
	loader := graph.New(detector.New())
	a := class(1, model.Monday, at(17, 0), at(19, 0), model.SessionNight)
	a.Professor = &model.Professor{
		Id:   a.ProfessorId,
		Name: "M. Duarte",
		BlockedSlots: []model.BlockedSlot{
			{Day: model.Monday, StartTime: at(16, 0), EndTime: at(18, 0)},
		},
	}
	require.NoError(t, loader.Add(&a))

	// Act
	doc := Build(loader)

	// Assert
	require.Len(t, doc.Edges, 1)
	assert.Equal(t, [2]int64{1, 1}, doc.Edges[0].Between)
	assert.Equal(t, []string{"professor blocked slot"}, doc.Edges[0].Conflicts)
}

func TestBuildIsDeterministic(t *testing.T) {
	// Arrange: enough assignments that map iteration order would show.
	assignments := make([]model.Assignment, 0, 30)
	for i := range 30 {
		id := int64(i + 1)
		day := model.Weekdays()[i%5]
		start := at(8+(i/5)%10, 0)
		a := class(id, day, start, start+90, model.SessionDay)
		if i%3 == 0 {
			a.ProfessorId = 100 // Force a handful of professor collisions
		}
		assignments = append(assignments, a)
	}

	reference := graph.New(detector.New())
	require.NoError(t, reference.Rebuild(graph.SliceSource(assignments)))
	referencePayload, err := Build(reference).Marshal()
	require.NoError(t, err)

	for range 5 {
		// Act: same set, shuffled insertion order, fresh loader.
		shuffled := slices.Clone(assignments)
		rand.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		loader := graph.New(detector.New())
		require.NoError(t, loader.Rebuild(graph.SliceSource(shuffled)))

		payload, err := Build(loader).Marshal()

		// Assert
		require.NoError(t, err)
		assert.Equal(t, string(referencePayload), string(payload))
	}
}

func TestEdgesSortedByPair(t *testing.T) {
	// Arrange: 1-2 professor clash, 1-3 room clash, 3 has a lab self-edge.
	loader := graph.New(detector.New())
	a1 := class(1, model.Monday, at(8, 0), at(10, 0), model.SessionDay)
	a2 := class(2, model.Monday, at(9, 0), at(11, 0), model.SessionNight)
	a2.ProfessorId = a1.ProfessorId
	a3 := class(3, model.Monday, at(9, 30), at(11, 30), model.SessionNight)
	a3.RoomId = a1.RoomId
	a3.Subject = &model.Subject{Code: "QUI110", Name: "Organic Chemistry", Credits: 5, RequiresLab: true}
	a3.Room = &model.Room{Id: a3.RoomId, Name: "B-101", Capacity: 40}

	require.NoError(t, loader.Add(&a1))
	require.NoError(t, loader.Add(&a2))
	require.NoError(t, loader.Add(&a3))

	// Act
	doc := Build(loader)

	// Assert
	pairs := make([][2]int64, 0, len(doc.Edges))
	for _, edge := range doc.Edges {
		pairs = append(pairs, edge.Between)
	}
	assert.Equal(t, [][2]int64{{1, 2}, {1, 3}, {2, 3}, {3, 3}}, pairs)
}

func TestEncodeIndented(t *testing.T) {
	// Arrange
	loader := graph.New(detector.New())
	a := class(1, model.Friday, at(8, 0), at(9, 0), model.SessionDay)
	require.NoError(t, loader.Add(&a))

	// Act
	var buf bytes.Buffer
	require.NoError(t, Build(loader).Encode(&buf))

	// Assert
	assert.True(t, strings.HasPrefix(buf.String(), "{\n  \"nodes\""))
	assert.True(t, strings.HasSuffix(buf.String(), "}\n"))
}
