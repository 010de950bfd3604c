// Package export renders the conflict graph into its interchange document: a
// JSON object with a nodes array (one entry per assignment, with nested
// professor/room/subject snapshots) and an edges array of
// {"between": [id1, id2], "conflicts": [label, ...]} records. Output is
// deterministic: nodes are ordered by id, edges by id pair, conflict labels
// by classification order.
package export

import (
	"cmp"
	"encoding/json"
	"io"
	"slices"

	"github.com/samber/lo"

	"github.com/ocampoLuis/conflictgraph/pkg/model"
)

// Graph is the read surface a Document is built from. *graph.Loader
// satisfies it.
type Graph interface {
	AllAssignments() []model.Assignment
	EdgeConflicts() map[model.PairKey][]model.ConflictEdge
}

type Document struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node is one assignment with its entity snapshots. Times render as "HH:MM".
type Node struct {
	Id               int64              `json:"id"`
	Day              string             `json:"day"`
	StartTime        string             `json:"startTime"`
	EndTime          string             `json:"endTime"`
	ProfessorId      int64              `json:"professorId"`
	RoomId           int64              `json:"roomId"`
	GroupId          int64              `json:"groupId"`
	Session          string             `json:"session"`
	EnrolledStudents int                `json:"enrolledStudents"`
	Professor        *ProfessorSnapshot `json:"professor,omitempty"`
	Room             *RoomSnapshot      `json:"room,omitempty"`
	Subject          *SubjectSnapshot   `json:"subject,omitempty"`
}

// Edge joins two node ids with every conflict label recorded between them.
// Between[0] < Between[1] except for a self conflict, where both are equal.
type Edge struct {
	Between   [2]int64 `json:"between"`
	Conflicts []string `json:"conflicts"`
}

type ProfessorSnapshot struct {
	Id                 int64                 `json:"id"`
	Name               string                `json:"name"`
	AuthorizedSubjects []string              `json:"authorizedSubjects,omitempty"`
	BlockedSlots       []BlockedSlotSnapshot `json:"blockedSlots,omitempty"`
}

type BlockedSlotSnapshot struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type RoomSnapshot struct {
	Id       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	IsLab    bool   `json:"isLab"`
}

type SubjectSnapshot struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Credits     int    `json:"credits"`
	RequiresLab bool   `json:"requiresLab"`
}

// Build snapshots the graph's current state into a Document.
func Build(g Graph) *Document {
	nodes := lo.Map(g.AllAssignments(), func(a model.Assignment, _ int) Node {
		return newNode(a)
	})
	slices.SortFunc(nodes, func(a, b Node) int {
		return cmp.Compare(a.Id, b.Id)
	})

	edges := make([]Edge, 0)
	for _, bundle := range g.EdgeConflicts() {
		if len(bundle) == 0 {
			continue
		}
		edges = append(edges, Edge{
			Between: [2]int64{bundle[0].FirstId, bundle[0].SecondId},
			Conflicts: lo.Map(bundle, func(e model.ConflictEdge, _ int) string {
				return e.Type.Label()
			}),
		})
	}
	slices.SortFunc(edges, func(a, b Edge) int {
		if c := cmp.Compare(a.Between[0], b.Between[0]); c != 0 {
			return c
		}
		return cmp.Compare(a.Between[1], b.Between[1])
	})

	return &Document{Nodes: nodes, Edges: edges}
}

// Marshal renders the document as compact JSON.
func (d *Document) Marshal() ([]byte, error) {
	return json.Marshal(d)
}

// Encode writes the document as indented JSON, for files meant to be read.
func (d *Document) Encode(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(d)
}

func newNode(a model.Assignment) Node {
	n := Node{
		Id:               a.Id,
		Day:              string(a.Day),
		StartTime:        a.StartTime.String(),
		EndTime:          a.EndTime.String(),
		ProfessorId:      a.ProfessorId,
		RoomId:           a.RoomId,
		GroupId:          a.GroupId,
		Session:          string(a.Session),
		EnrolledStudents: a.EnrolledStudents,
	}
	if a.Professor != nil {
		n.Professor = &ProfessorSnapshot{
			Id:                 a.Professor.Id,
			Name:               a.Professor.Name,
			AuthorizedSubjects: slices.Clone(a.Professor.AuthorizedSubjects),
			BlockedSlots: lo.Map(a.Professor.BlockedSlots, func(s model.BlockedSlot, _ int) BlockedSlotSnapshot {
				return BlockedSlotSnapshot{
					Day:       string(s.Day),
					StartTime: s.StartTime.String(),
					EndTime:   s.EndTime.String(),
				}
			}),
		}
	}
	if a.Room != nil {
		n.Room = &RoomSnapshot{
			Id:       a.Room.Id,
			Name:     a.Room.Name,
			Capacity: a.Room.Capacity,
			IsLab:    a.Room.IsLab,
		}
	}
	if a.Subject != nil {
		n.Subject = &SubjectSnapshot{
			Code:        a.Subject.Code,
			Name:        a.Subject.Name,
			Credits:     a.Subject.Credits,
			RequiresLab: a.Subject.RequiresLab,
		}
	}
	return n
}
