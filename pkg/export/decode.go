package export

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/ocampoLuis/conflictgraph/pkg/model"
)

// Parse reads a previously exported document. The payload goes through a raw
// map first and is then decoded field-wise, so unknown keys are ignored and
// numeric types settle into place.
func Parse(data []byte) (*Document, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("export: parse document: %w", err)
	}

	var doc Document
	if err := mapstructure.Decode(raw, &doc); err != nil {
		return nil, fmt.Errorf("export: decode document: %w", err)
	}
	return &doc, nil
}

// Assignments reconstructs validated assignments from the document's nodes,
// ready to feed a Loader. Edges are derived state and are not read back;
// a rebuild recomputes them.
func (d *Document) Assignments() ([]model.Assignment, error) {
	out := make([]model.Assignment, 0, len(d.Nodes))
	for _, node := range d.Nodes {
		a, err := node.assignment()
		if err != nil {
			return nil, fmt.Errorf("export: node %d: %w", node.Id, err)
		}
		out = append(out, a)
	}
	return out, nil
}

func (n Node) assignment() (model.Assignment, error) {
	day, err := model.ParseWeekday(n.Day)
	if err != nil {
		return model.Assignment{}, err
	}
	start, err := model.ParseTimeOfDay(n.StartTime)
	if err != nil {
		return model.Assignment{}, err
	}
	end, err := model.ParseTimeOfDay(n.EndTime)
	if err != nil {
		return model.Assignment{}, err
	}

	a := model.Assignment{
		Id:               n.Id,
		Day:              day,
		StartTime:        start,
		EndTime:          end,
		ProfessorId:      n.ProfessorId,
		RoomId:           n.RoomId,
		GroupId:          n.GroupId,
		Session:          model.SessionType(n.Session),
		EnrolledStudents: n.EnrolledStudents,
	}

	if n.Professor != nil {
		professor := &model.Professor{
			Id:                 n.Professor.Id,
			Name:               n.Professor.Name,
			AuthorizedSubjects: n.Professor.AuthorizedSubjects,
		}
		for _, snapshot := range n.Professor.BlockedSlots {
			slot, err := snapshot.blockedSlot()
			if err != nil {
				return model.Assignment{}, err
			}
			professor.BlockedSlots = append(professor.BlockedSlots, slot)
		}
		a.Professor = professor
	}
	if n.Room != nil {
		a.Room = &model.Room{
			Id:       n.Room.Id,
			Name:     n.Room.Name,
			Capacity: n.Room.Capacity,
			IsLab:    n.Room.IsLab,
		}
	}
	if n.Subject != nil {
		a.Subject = &model.Subject{
			Code:        n.Subject.Code,
			Name:        n.Subject.Name,
			Credits:     n.Subject.Credits,
			RequiresLab: n.Subject.RequiresLab,
		}
	}

	if err := a.Validate(); err != nil {
		return model.Assignment{}, err
	}
	return a, nil
}

func (s BlockedSlotSnapshot) blockedSlot() (model.BlockedSlot, error) {
	day, err := model.ParseWeekday(s.Day)
	if err != nil {
		return model.BlockedSlot{}, err
	}
	start, err := model.ParseTimeOfDay(s.StartTime)
	if err != nil {
		return model.BlockedSlot{}, err
	}
	end, err := model.ParseTimeOfDay(s.EndTime)
	if err != nil {
		return model.BlockedSlot{}, err
	}
	return model.BlockedSlot{Day: day, StartTime: start, EndTime: end}, nil
}
