package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classcalendar/internal/calendar"
	"classcalendar/internal/constraints"
)

func buildConstraints(singleOnly, chemOnly calendar.ClassID) *constraints.Constraints {
	cons := constraints.NewConstraints()
	cons.Instructors[1] = constraints.Instructor{}
	cons.Classes[singleOnly] = constraints.Class{
		InstructorID:     1,
		AllowedRoomTypes: map[constraints.RoomType]struct{}{constraints.SingleClassroom: {}},
		RequiredHours:    1,
	}
	cons.Classes[chemOnly] = constraints.Class{
		InstructorID:     1,
		AllowedRoomTypes: map[constraints.RoomType]struct{}{constraints.ChemLab: {}},
		RequiredHours:    1,
	}
	return cons
}

func TestAssignRoomsDisjointTypesBothFit(t *testing.T) {
	cc := calendar.NewClassCalendar()
	day, slot := calendar.Day(0), calendar.Slot(0)
	require.NoError(t, cc.Add(day, slot, 1))
	require.NoError(t, cc.Add(day, slot, 2))

	cons := buildConstraints(1, 2)

	assert.Equal(t, 0, CollisionCount(cc, cons))

	assignment := AssignRooms(cc, cons)

	singleKey := AssignmentKey{Day: day, Slot: slot, Class: 1}
	chemKey := AssignmentKey{Day: day, Slot: slot, Class: 2}

	require.Len(t, assignment[singleKey], 1)
	require.Len(t, assignment[chemKey], 1)
	assert.Equal(t, constraints.SingleClassroom, assignment[singleKey][0].Type())
	assert.Equal(t, constraints.ChemLab, assignment[chemKey][0].Type())
}

func TestAssignRoomsSameClassTwiceInOneCellGetsTwoRooms(t *testing.T) {
	cc := calendar.NewClassCalendar()
	day, slot := calendar.Day(0), calendar.Slot(0)
	require.NoError(t, cc.Add(day, slot, 1))
	require.NoError(t, cc.Add(day, slot, 1))

	cons := constraints.NewConstraints()
	cons.Instructors[1] = constraints.Instructor{}
	cons.Classes[1] = constraints.Class{
		InstructorID:     1,
		AllowedRoomTypes: map[constraints.RoomType]struct{}{constraints.SingleClassroom: {}},
		RequiredHours:    2,
	}

	assignment := AssignRooms(cc, cons)
	key := AssignmentKey{Day: day, Slot: slot, Class: 1}
	require.Len(t, assignment[key], 2)
	assert.NotEqual(t, assignment[key][0], assignment[key][1])
}

func TestCollisionCountOversubscribedType(t *testing.T) {
	cc := calendar.NewClassCalendar()
	day, slot := calendar.Day(0), calendar.Slot(0)

	cons := constraints.NewConstraints()
	cons.Instructors[1] = constraints.Instructor{}
	// Three classes competing for the two SingleClassroom rooms.
	for id := calendar.ClassID(1); id <= 3; id++ {
		cons.Classes[id] = constraints.Class{
			InstructorID:     1,
			AllowedRoomTypes: map[constraints.RoomType]struct{}{constraints.SingleClassroom: {}},
			RequiredHours:    1,
		}
		require.NoError(t, cc.Add(day, slot, id))
	}

	assert.Equal(t, 1, CollisionCount(cc, cons))
}

func TestCollisionCountEmptyCalendar(t *testing.T) {
	cc := calendar.NewClassCalendar()
	cons := constraints.NewConstraints()
	assert.Equal(t, 0, CollisionCount(cc, cons))
}
