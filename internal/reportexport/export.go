// Package reportexport writes one or more annealer.Result records as a
// detailed JSON schedule report, grouped by day and slot the way the
// teacher's exporter groups activities by day and block.
package reportexport

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/pkg/errors"

	"classcalendar/internal/annealer"
	"classcalendar/internal/calendar"
	"classcalendar/internal/constraints"
	"classcalendar/internal/matcher"
)

// Report is the top-level exported document.
type Report struct {
	Runs []RunReport `json:"runs"`
}

// RunReport is one annealing run's final schedule plus its summary stats.
type RunReport struct {
	RunID      string        `json:"run_id"`
	FinalCost  float64       `json:"final_cost"`
	TotalSteps int           `json:"total_steps"`
	ElapsedMs  int64         `json:"elapsed_ms"`
	Days       []DaySchedule `json:"days"`
}

// DaySchedule groups one weekday's occupied slots.
type DaySchedule struct {
	Day   string       `json:"day"`
	Slots []SlotDetail `json:"slots"`
}

// SlotDetail is one (day, slot) cell's placed classes, each with its own
// assigned rooms — a class sharing a cell with another class never has its
// rooms confused with the other's.
type SlotDetail struct {
	Slot    string            `json:"slot"`
	Classes []ClassAssignment `json:"classes"`
}

// ClassAssignment is one class's occupancy of a (day, slot) cell plus the
// room(s) the post-processor matched it to.
type ClassAssignment struct {
	ClassID int      `json:"class_id"`
	Rooms   []string `json:"rooms"`
}

// BuildReport reshapes a slice of annealer results into an exportable
// Report.
func BuildReport(results []*annealer.Result) Report {
	runs := make([]RunReport, 0, len(results))
	for _, r := range results {
		if r == nil {
			continue
		}
		runs = append(runs, buildRunReport(r))
	}
	return Report{Runs: runs}
}

type cellKey struct {
	Day  calendar.Day
	Slot calendar.Slot
}

func buildRunReport(r *annealer.Result) RunReport {
	perCellClasses := make(map[cellKey][]calendar.ClassID)
	for _, e := range r.FinalCalendar.Entries() {
		key := cellKey{Day: e.Day, Slot: e.Slot}
		if !containsClass(perCellClasses[key], e.Class) {
			perCellClasses[key] = append(perCellClasses[key], e.Class)
		}
	}

	byDay := make(map[calendar.Day][]calendar.Slot)
	for key := range perCellClasses {
		byDay[key.Day] = append(byDay[key.Day], key.Slot)
	}

	days := make([]DaySchedule, 0, calendar.DaysPerWeek)
	for d := calendar.Day(0); int(d) < calendar.DaysPerWeek; d++ {
		slots := byDay[d]
		sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })

		slotDetails := make([]SlotDetail, 0, len(slots))
		for _, s := range slots {
			key := cellKey{Day: d, Slot: s}
			classIDs := append([]calendar.ClassID(nil), perCellClasses[key]...)
			sort.Slice(classIDs, func(i, j int) bool { return classIDs[i] < classIDs[j] })

			classAssignments := make([]ClassAssignment, 0, len(classIDs))
			for _, classID := range classIDs {
				assignKey := matcher.AssignmentKey{Day: d, Slot: s, Class: classID}
				classAssignments = append(classAssignments, ClassAssignment{
					ClassID: int(classID),
					Rooms:   roomNames(r.RoomAssignment[assignKey]),
				})
			}

			slotDetails = append(slotDetails, SlotDetail{
				Slot:    s.String(),
				Classes: classAssignments,
			})
		}

		if len(slotDetails) == 0 {
			continue
		}
		days = append(days, DaySchedule{Day: d.String(), Slots: slotDetails})
	}

	return RunReport{
		RunID:      r.RunID.String(),
		FinalCost:  r.FinalCost,
		TotalSteps: r.TotalSteps,
		ElapsedMs:  r.Elapsed.Milliseconds(),
		Days:       days,
	}
}

func containsClass(ids []calendar.ClassID, class calendar.ClassID) bool {
	for _, id := range ids {
		if id == class {
			return true
		}
	}
	return false
}

func roomNames(rooms []constraints.Room) []string {
	names := make([]string, len(rooms))
	for i, r := range rooms {
		names[i] = r.String()
	}
	return names
}

// WriteFile marshals report as indented JSON and writes it to path.
func WriteFile(path string, report Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling report")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "writing report file")
	}
	return nil
}
