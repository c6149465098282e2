package reportexport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classcalendar/internal/annealer"
	"classcalendar/internal/calendar"
	"classcalendar/internal/constraints"
	"classcalendar/internal/matcher"
)

func buildResult(t *testing.T) *annealer.Result {
	t.Helper()
	cc := calendar.NewClassCalendar()
	require.NoError(t, cc.Add(calendar.Day(0), calendar.Slot(0), calendar.ClassID(1)))

	return &annealer.Result{
		FinalCalendar: cc,
		FinalCost:     4.5,
		TotalSteps:    100,
		Elapsed:       2 * time.Second,
		RoomAssignment: map[matcher.AssignmentKey][]constraints.Room{
			{Day: calendar.Day(0), Slot: calendar.Slot(0), Class: calendar.ClassID(1)}: {constraints.RoomAula1},
		},
	}
}

func TestBuildReportGroupsByDayAndSlot(t *testing.T) {
	report := BuildReport([]*annealer.Result{buildResult(t), nil})

	require.Len(t, report.Runs, 1)
	run := report.Runs[0]
	assert.NotEmpty(t, run.RunID)
	assert.Equal(t, 4.5, run.FinalCost)
	require.Len(t, run.Days, 1)
	assert.Equal(t, "Mon", run.Days[0].Day)
	require.Len(t, run.Days[0].Slots, 1)
	require.Len(t, run.Days[0].Slots[0].Classes, 1)
	assert.Equal(t, 1, run.Days[0].Slots[0].Classes[0].ClassID)
	assert.Equal(t, []string{"Aula1"}, run.Days[0].Slots[0].Classes[0].Rooms)
}

func TestBuildReportKeepsTwoClassesInOneCellDistinct(t *testing.T) {
	cc := calendar.NewClassCalendar()
	require.NoError(t, cc.Add(calendar.Day(1), calendar.Slot(2), calendar.ClassID(1)))
	require.NoError(t, cc.Add(calendar.Day(1), calendar.Slot(2), calendar.ClassID(2)))

	result := &annealer.Result{
		FinalCalendar: cc,
		RoomAssignment: map[matcher.AssignmentKey][]constraints.Room{
			{Day: calendar.Day(1), Slot: calendar.Slot(2), Class: calendar.ClassID(1)}: {constraints.RoomAula1},
			{Day: calendar.Day(1), Slot: calendar.Slot(2), Class: calendar.ClassID(2)}: {constraints.RoomLabQuimica},
		},
	}

	report := BuildReport([]*annealer.Result{result})
	slot := report.Runs[0].Days[0].Slots[0]
	require.Len(t, slot.Classes, 2)
	assert.Equal(t, 1, slot.Classes[0].ClassID)
	assert.Equal(t, []string{"Aula1"}, slot.Classes[0].Rooms)
	assert.Equal(t, 2, slot.Classes[1].ClassID)
	assert.Equal(t, []string{"LabQuimica"}, slot.Classes[1].Rooms)
}

func TestWriteFileProducesValidJSON(t *testing.T) {
	report := BuildReport([]*annealer.Result{buildResult(t)})
	path := filepath.Join(t.TempDir(), "result.json")

	require.NoError(t, WriteFile(path, report))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded.Runs, 1)
}
