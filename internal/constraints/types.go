// Package constraints holds the immutable-during-a-run input model: classes,
// instructors, rooms, and the enumerations they're built from.
package constraints

import (
	"fmt"

	"classcalendar/internal/calendar"
)

// InstructorID identifies an Instructor within a Constraints record.
type InstructorID int

// Semester is one of eight academic terms, S1 through S8.
type Semester int

const (
	S1 Semester = iota + 1
	S2
	S3
	S4
	S5
	S6
	S7
	S8
)

func (s Semester) String() string {
	if s < S1 || s > S8 {
		return fmt.Sprintf("Semester(%d)", int(s))
	}
	return fmt.Sprintf("S%d", int(s))
}

// NewSemester validates value as one of S1..S8.
func NewSemester(value int) (Semester, error) {
	if value < int(S1) || value > int(S8) {
		return 0, fmt.Errorf("%w: semester %d", ErrInvalidSemester, value)
	}
	return Semester(value), nil
}

// AllSemesters returns S1..S8 in order.
func AllSemesters() []Semester {
	out := make([]Semester, 0, 8)
	for s := S1; s <= S8; s++ {
		out = append(out, s)
	}
	return out
}

// Group is one of four teaching groups, G1 through G4.
type Group int

const (
	G1 Group = iota + 1
	G2
	G3
	G4
)

func (g Group) String() string {
	if g < G1 || g > G4 {
		return fmt.Sprintf("Group(%d)", int(g))
	}
	return fmt.Sprintf("G%d", int(g))
}

// NewGroup validates value as one of G1..G4.
func NewGroup(value int) (Group, error) {
	if value < int(G1) || value > int(G4) {
		return 0, fmt.Errorf("%w: group %d", ErrInvalidGroup, value)
	}
	return Group(value), nil
}

// RoomType is one of the six closed room-type variants. Unassigned is a
// sentinel used by classes whose allowed types don't (yet) resolve to a
// concrete room, never a type a physical Room actually carries.
type RoomType int

const (
	SingleClassroom RoomType = iota
	DoubleClassroom
	ChemLab
	PhysicsLab
	ComputerLab
	Unassigned
)

func (t RoomType) String() string {
	switch t {
	case SingleClassroom:
		return "SingleClassroom"
	case DoubleClassroom:
		return "DoubleClassroom"
	case ChemLab:
		return "ChemLab"
	case PhysicsLab:
		return "PhysicsLab"
	case ComputerLab:
		return "ComputerLab"
	case Unassigned:
		return "Unassigned"
	default:
		return fmt.Sprintf("RoomType(%d)", int(t))
	}
}

// IsLab reports whether t is one of the two laboratory types. Used by the
// labs_on_different_days heuristic.
func (t RoomType) IsLab() bool {
	return t == ChemLab || t == PhysicsLab
}

// Availability is an instructor's status for one week-grid cell.
type Availability int

const (
	Available Availability = iota
	AvailableIfNeeded
	NotAvailable
)

func (a Availability) String() string {
	switch a {
	case Available:
		return "Available"
	case AvailableIfNeeded:
		return "AvailableIfNeeded"
	case NotAvailable:
		return "NotAvailable"
	default:
		return fmt.Sprintf("Availability(%d)", int(a))
	}
}

// Class is immutable for the duration of an annealing run.
type Class struct {
	InstructorID     InstructorID
	AllowedRoomTypes map[RoomType]struct{}
	RequiredHours    int
	Semester         Semester
	Group            Group
	Optional         bool
}

// AllowsRoomType reports whether rt is one of the class's permitted types.
func (c Class) AllowsRoomType(rt RoomType) bool {
	_, ok := c.AllowedRoomTypes[rt]
	return ok
}

// AllowsAnyLab reports whether the class's allowed types include either lab
// type.
func (c Class) AllowsAnyLab() bool {
	return c.AllowsRoomType(ChemLab) || c.AllowsRoomType(PhysicsLab)
}

// Instructor carries a per-slot availability profile. Priority is accepted
// for forward compatibility with external schedulers but unused by the
// core's heuristics, matching the spec's note that instructor priority is
// unused by the core.
type Instructor struct {
	Availability calendar.WeekCalendar[Availability]
	Priority     float64
}

// Constraints is the immutable input record consumed by one annealing run.
type Constraints struct {
	Classes     map[calendar.ClassID]Class
	Instructors map[InstructorID]Instructor
}

// NewConstraints returns an empty Constraints record ready to be populated.
func NewConstraints() *Constraints {
	return &Constraints{
		Classes:     make(map[calendar.ClassID]Class),
		Instructors: make(map[InstructorID]Instructor),
	}
}

// TotalRequiredHours sums RequiredHours across every class — the invariant
// len(entries) must equal at all times.
func (c *Constraints) TotalRequiredHours() int {
	total := 0
	for _, class := range c.Classes {
		total += class.RequiredHours
	}
	return total
}
