// Package inputs loads a Constraints record from a JSON document on disk,
// the same read-file-then-unmarshal-then-reshape pattern the rest of the
// corpus uses for course/activity catalogs.
package inputs

import (
	"encoding/json"
	"math/rand"
	"os"
	"sort"

	"github.com/pkg/errors"

	"classcalendar/internal/calendar"
	"classcalendar/internal/constraints"
)

// classJSON is the intermediate shape one class entry takes on disk before
// being reshaped into constraints.Class (whose AllowedRoomTypes is a set,
// not a list).
type classJSON struct {
	ID               int      `json:"id"`
	InstructorID     int      `json:"instructor_id"`
	AllowedRoomTypes []string `json:"allowed_room_types"`
	RequiredHours    int      `json:"required_hours"`
	Semester         int      `json:"semester"`
	Group            int      `json:"group"`
	Optional         bool     `json:"optional"`
}

// instructorJSON is the intermediate shape for one instructor entry.
// Availability is given as 60 entries (5 days x 12 slots), row-major, one of
// "available", "available_if_needed", "not_available".
type instructorJSON struct {
	ID           int      `json:"id"`
	Priority     float64  `json:"priority"`
	Availability []string `json:"availability"`
}

// document is the top-level JSON document shape.
type document struct {
	Classes     []classJSON      `json:"classes"`
	Instructors []instructorJSON `json:"instructors"`
}

// LoadConstraints reads path and reshapes it into a *constraints.Constraints
// ready for an annealing run.
func LoadConstraints(path string) (*constraints.Constraints, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading constraints document")
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parsing constraints document")
	}

	cons := constraints.NewConstraints()

	for _, i := range doc.Instructors {
		availability, err := reshapeAvailability(i.Availability)
		if err != nil {
			return nil, errors.Wrapf(err, "instructor %d", i.ID)
		}
		cons.Instructors[constraints.InstructorID(i.ID)] = constraints.Instructor{
			Availability: availability,
			Priority:     i.Priority,
		}
	}

	for _, c := range doc.Classes {
		roomTypes, err := reshapeRoomTypes(c.AllowedRoomTypes)
		if err != nil {
			return nil, errors.Wrapf(err, "class %d", c.ID)
		}
		semester, err := constraints.NewSemester(c.Semester)
		if err != nil {
			return nil, errors.Wrapf(err, "class %d", c.ID)
		}
		group, err := constraints.NewGroup(c.Group)
		if err != nil {
			return nil, errors.Wrapf(err, "class %d", c.ID)
		}
		cons.Classes[calendar.ClassID(c.ID)] = constraints.Class{
			InstructorID:     constraints.InstructorID(c.InstructorID),
			AllowedRoomTypes: roomTypes,
			RequiredHours:    c.RequiredHours,
			Semester:         semester,
			Group:            group,
			Optional:         c.Optional,
		}
	}

	if err := cons.Validate(); err != nil {
		return nil, errors.Wrap(err, "validating constraints document")
	}

	return cons, nil
}

func reshapeRoomTypes(names []string) (map[constraints.RoomType]struct{}, error) {
	out := make(map[constraints.RoomType]struct{}, len(names))
	for _, name := range names {
		rt, err := parseRoomType(name)
		if err != nil {
			return nil, err
		}
		out[rt] = struct{}{}
	}
	return out, nil
}

func parseRoomType(name string) (constraints.RoomType, error) {
	switch name {
	case "single_classroom":
		return constraints.SingleClassroom, nil
	case "double_classroom":
		return constraints.DoubleClassroom, nil
	case "chem_lab":
		return constraints.ChemLab, nil
	case "physics_lab":
		return constraints.PhysicsLab, nil
	case "computer_lab":
		return constraints.ComputerLab, nil
	default:
		return 0, errors.Errorf("unknown room type %q", name)
	}
}

func reshapeAvailability(cells []string) (calendar.WeekCalendar[constraints.Availability], error) {
	values := make([]constraints.Availability, len(cells))
	for i, cell := range cells {
		a, err := parseAvailability(cell)
		if err != nil {
			return calendar.WeekCalendar[constraints.Availability]{}, err
		}
		values[i] = a
	}
	return calendar.NewWeekCalendarFromSlice(values)
}

// RandomInitialState seeds a starting ClassCalendar by placing each class's
// RequiredHours units at uniformly random (day, slot) cells, independently
// per unit — the same scheme the reference annealer's random_init uses to
// build a run's starting point before any moves are proposed.
func RandomInitialState(cons *constraints.Constraints, rng *rand.Rand) *calendar.ClassCalendar {
	cc := calendar.NewClassCalendar()

	ids := make([]calendar.ClassID, 0, len(cons.Classes))
	for id := range cons.Classes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		class := cons.Classes[id]
		for h := 0; h < class.RequiredHours; h++ {
			day := calendar.Day(rng.Intn(calendar.DaysPerWeek))
			slot := calendar.Slot(rng.Intn(calendar.SlotsPerDay))
			_ = cc.Add(day, slot, id)
		}
	}

	return cc
}

func parseAvailability(name string) (constraints.Availability, error) {
	switch name {
	case "available":
		return constraints.Available, nil
	case "available_if_needed":
		return constraints.AvailableIfNeeded, nil
	case "not_available":
		return constraints.NotAvailable, nil
	default:
		return 0, errors.Errorf("unknown availability %q", name)
	}
}
