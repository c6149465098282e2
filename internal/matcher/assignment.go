package matcher

import (
	"classcalendar/internal/calendar"
	"classcalendar/internal/constraints"
)

// AssignmentKey identifies one (day, slot, class) triple — the post-
// processor's output unit, matching the reference implementation's
// ClassroomAssignmentKey (day, timeslot, class_key). Matching itself still
// runs per (day, slot) cell, since that's the unit classes compete for
// rooms within, but the result is keyed down to the class so two different
// classes sharing a cell each get their own room recorded.
type AssignmentKey struct {
	Day   calendar.Day
	Slot  calendar.Slot
	Class calendar.ClassID
}

// occupant is one class-unit occupying a cell, expanded by occupancy count
// (a class placed twice in the same cell needs two rooms).
type occupant struct {
	class calendar.ClassID
	copy  int
}

// cellKey identifies one (day, slot) cell — the unit matching runs over,
// since two classes in different cells never compete for the same room.
type cellKey struct {
	Day  calendar.Day
	Slot calendar.Slot
}

// CollisionCount returns, for every cell of cc, the number of class-units
// that cannot be matched to a distinct room given each class's allowed room
// types — the room_collisions heuristic term. A cell with k class-units and
// a maximum matching of size m contributes k-m collisions.
func CollisionCount(cc *calendar.ClassCalendar, cons *constraints.Constraints) int {
	cells := groupByCell(cc)
	total := 0
	for _, occupants := range cells {
		_, matchSize := matchCell(occupants, cons)
		total += len(occupants) - matchSize
	}
	return total
}

// AssignRooms computes, for every occupied cell, a maximum matching between
// the classes placed there and the concrete rooms whose type they allow,
// returning a room per successfully matched (day, slot, class) triple.
// Cells with more class-units than matchable rooms leave the excess
// unassigned — callers read collision count separately via CollisionCount to
// penalize that case during search; AssignRooms runs once, after annealing,
// as the post-processing step at the end of annealer.Run. A class occupying the
// same cell more than once (the only case AssignmentKey can't distinguish
// on its own) collects every room it was matched to under that one key, in
// no particular order.
func AssignRooms(cc *calendar.ClassCalendar, cons *constraints.Constraints) map[AssignmentKey][]constraints.Room {
	cells := groupByCell(cc)
	result := make(map[AssignmentKey][]constraints.Room)

	for key, occupants := range cells {
		rooms, matching := matchCellRooms(occupants, cons)
		for l, r := range matching.LeftMatch {
			if r == unmatched {
				continue
			}
			assignKey := AssignmentKey{Day: key.Day, Slot: key.Slot, Class: occupants[l].class}
			result[assignKey] = append(result[assignKey], rooms[r])
		}
	}

	return result
}

func groupByCell(cc *calendar.ClassCalendar) map[cellKey][]occupant {
	cells := make(map[cellKey][]occupant)
	counts := make(map[cellKey]map[calendar.ClassID]int)

	for _, e := range cc.Entries() {
		key := cellKey{Day: e.Day, Slot: e.Slot}
		if counts[key] == nil {
			counts[key] = make(map[calendar.ClassID]int)
		}
		n := counts[key][e.Class]
		cells[key] = append(cells[key], occupant{class: e.Class, copy: n})
		counts[key][e.Class] = n + 1
	}

	return cells
}

// matchCell builds the bipartite graph for one cell's occupants against
// every concrete room, and returns the room list paired with the matched
// size. Rooms not allowed by any class-unit present are still included in
// the graph (as isolated nodes) so indices line up with AllRooms order.
func matchCell(occupants []occupant, cons *constraints.Constraints) ([]constraints.Room, int) {
	rooms, matching := matchCellRooms(occupants, cons)
	return rooms, matching.Size
}

func matchCellRooms(occupants []occupant, cons *constraints.Constraints) ([]constraints.Room, Matching) {
	rooms := constraints.AllRooms()
	g := NewBipartiteGraph(len(occupants), len(rooms))

	for l, occ := range occupants {
		class, ok := cons.Classes[occ.class]
		if !ok {
			continue
		}
		for r, room := range rooms {
			if class.AllowsRoomType(room.Type()) {
				g.AddEdge(l, r)
			}
		}
	}

	return rooms, MaximumMatching(g)
}
