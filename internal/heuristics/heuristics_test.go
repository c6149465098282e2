package heuristics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classcalendar/internal/calendar"
)

func TestOutsideSessionLengthRunGrowth(t *testing.T) {
	cc := calendar.NewClassCalendar()
	d0 := calendar.Day(0)
	const k0 = calendar.ClassID(0)

	assert.Equal(t, int64(0), OutsideSessionLength(cc, 2, 4))

	require.NoError(t, cc.Add(d0, calendar.Slot(7), k0)) // 15:00, run=1
	assert.Equal(t, int64(1), OutsideSessionLength(cc, 2, 4))

	require.NoError(t, cc.Add(d0, calendar.Slot(8), k0)) // 16:00, run=2
	assert.Equal(t, int64(0), OutsideSessionLength(cc, 2, 4))

	require.NoError(t, cc.Add(d0, calendar.Slot(9), k0)) // 17:00, run=3
	assert.Equal(t, int64(0), OutsideSessionLength(cc, 2, 4))

	require.NoError(t, cc.Add(d0, calendar.Slot(10), k0)) // 18:00, run=4
	assert.Equal(t, int64(0), OutsideSessionLength(cc, 2, 4))

	require.NoError(t, cc.Add(d0, calendar.Slot(11), k0)) // 19:00, run=5 > max
	assert.Equal(t, int64(1), OutsideSessionLength(cc, 2, 4))
}

func TestInconsistentClassSlotsProgression(t *testing.T) {
	cc := calendar.NewClassCalendar()
	const k6, k7 = calendar.ClassID(6), calendar.ClassID(7)
	d0, d3, d4 := calendar.Day(0), calendar.Day(3), calendar.Day(4)
	const t18, t19 = calendar.Slot(10), calendar.Slot(11)

	assert.Equal(t, int64(0), InconsistentClassSlots(cc))

	require.NoError(t, cc.Add(d0, t18, k7))
	assert.Equal(t, int64(0), InconsistentClassSlots(cc))

	require.NoError(t, cc.Add(d4, t18, k6))
	assert.Equal(t, int64(0), InconsistentClassSlots(cc))

	require.NoError(t, cc.Add(d4, t18, k7))
	assert.Equal(t, int64(0), InconsistentClassSlots(cc))

	require.NoError(t, cc.Add(d3, t19, k6))
	assert.Equal(t, int64(2), InconsistentClassSlots(cc))

	require.NoError(t, cc.Add(d3, t18, k6))
	assert.Equal(t, int64(1), InconsistentClassSlots(cc))

	require.NoError(t, cc.Add(d0, t19, k6))
	assert.Equal(t, int64(0), InconsistentClassSlots(cc))
}

func TestIncontinuousClassesProgression(t *testing.T) {
	cc := calendar.NewClassCalendar()
	const k7, k9 = calendar.ClassID(7), calendar.ClassID(9)
	d2, d3 := calendar.Day(2), calendar.Day(3)

	assert.Equal(t, int64(0), IncontinuousClasses(cc))

	require.NoError(t, cc.Add(d2, calendar.Slot(0), k9))
	assert.Equal(t, int64(0), IncontinuousClasses(cc))

	require.NoError(t, cc.Add(d2, calendar.Slot(1), k9))
	assert.Equal(t, int64(0), IncontinuousClasses(cc))

	require.NoError(t, cc.Add(d2, calendar.Slot(3), k9))
	assert.Equal(t, int64(1), IncontinuousClasses(cc))

	require.NoError(t, cc.Add(d2, calendar.Slot(5), k9))
	assert.Equal(t, int64(1), IncontinuousClasses(cc))

	require.NoError(t, cc.Add(d3, calendar.Slot(5), k9))
	assert.Equal(t, int64(1), IncontinuousClasses(cc))

	require.NoError(t, cc.Add(d3, calendar.Slot(3), k9))
	assert.Equal(t, int64(2), IncontinuousClasses(cc))

	require.NoError(t, cc.Add(d2, calendar.Slot(2), k9))
	assert.Equal(t, int64(2), IncontinuousClasses(cc))

	require.NoError(t, cc.Add(d2, calendar.Slot(4), k9))
	assert.Equal(t, int64(1), IncontinuousClasses(cc))

	require.NoError(t, cc.Add(d2, calendar.Slot(2), k7))
	assert.Equal(t, int64(1), IncontinuousClasses(cc))

	require.NoError(t, cc.Add(d3, calendar.Slot(3), k7))
	assert.Equal(t, int64(1), IncontinuousClasses(cc))

	require.NoError(t, cc.Add(d3, calendar.Slot(1), k7))
	assert.Equal(t, int64(2), IncontinuousClasses(cc))
}

func TestSameSlotCount(t *testing.T) {
	cc := calendar.NewClassCalendar()
	d0, slot := calendar.Day(0), calendar.Slot(0)
	require.NoError(t, cc.Add(d0, slot, 1))
	assert.Equal(t, int64(0), SameSlotCount(cc))

	require.NoError(t, cc.Add(d0, slot, 2))
	assert.Equal(t, int64(2), SameSlotCount(cc))
}
