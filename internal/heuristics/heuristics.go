// Package heuristics implements the eleven pure scoring functions composed
// linearly into the annealer's cost function, plus the fixed-point weight
// table each is scaled by.
package heuristics

import (
	"classcalendar/internal/calendar"
	"classcalendar/internal/constraints"
	"classcalendar/internal/matcher"
)

// Weight is a fixed-point integer numerator over a shared denominator of
// 1000, chosen so the parallel sum is reproducible across worker
// interleavings regardless of floating-point associativity.
type Weight int64

const WeightDenominator int64 = 1000

const (
	WeightRoomCollisions             Weight = 10000
	WeightSameSlotPerInstructor      Weight = 9000
	WeightSameSlotPerSemester        Weight = 5000
	WeightLabsOnDifferentDays        Weight = 4500
	WeightInstructorNotAvailable     Weight = 3000
	WeightIncontinuousClasses        Weight = 2500
	WeightOutsideSessionLength       Weight = 1500
	WeightHolesPerSemester           Weight = 1300
	WeightInstructorAvailableIfNeed  Weight = 1250
	WeightInconsistentClassSlots     Weight = 1000
	WeightSameSlotCount              Weight = 100
)

// MinSessionLength and MaxSessionLength bound a contiguous run of occupied
// slots for one (class, day) that outside_session_length does not penalize.
const (
	MinSessionLength = 2
	MaxSessionLength = 4
)

// Term names one of the eleven scoring functions, used by ParEvaluator to
// dispatch one worker per term without open polymorphism.
type Term int

const (
	TermRoomCollisions Term = iota
	TermSameSlotPerInstructor
	TermSameSlotPerSemester
	TermLabsOnDifferentDays
	TermInstructorNotAvailable
	TermIncontinuousClasses
	TermOutsideSessionLength
	TermHolesPerSemester
	TermInstructorAvailableIfNeeded
	TermInconsistentClassSlots
	TermSameSlotCount
)

// AllTerms lists the eleven terms in table order.
func AllTerms() []Term {
	return []Term{
		TermRoomCollisions,
		TermSameSlotPerInstructor,
		TermSameSlotPerSemester,
		TermLabsOnDifferentDays,
		TermInstructorNotAvailable,
		TermIncontinuousClasses,
		TermOutsideSessionLength,
		TermHolesPerSemester,
		TermInstructorAvailableIfNeeded,
		TermInconsistentClassSlots,
		TermSameSlotCount,
	}
}

// String returns t's snake_case name, matching the reference
// implementation's EVALUATORS table labels — used for the per-term cost
// breakdown logged at the end of a run.
func (t Term) String() string {
	switch t {
	case TermRoomCollisions:
		return "room_collisions"
	case TermSameSlotPerInstructor:
		return "same_slot_per_instructor"
	case TermSameSlotPerSemester:
		return "same_slot_per_semester"
	case TermLabsOnDifferentDays:
		return "labs_on_different_days"
	case TermInstructorNotAvailable:
		return "instructor_not_available"
	case TermIncontinuousClasses:
		return "incontinuous_classes"
	case TermOutsideSessionLength:
		return "outside_session_length"
	case TermHolesPerSemester:
		return "holes_per_semester"
	case TermInstructorAvailableIfNeeded:
		return "instructor_available_if_needed"
	case TermInconsistentClassSlots:
		return "inconsistent_class_slots"
	case TermSameSlotCount:
		return "same_slot_count"
	default:
		return "unknown"
	}
}

// Weight returns t's fixed-point weight.
func (t Term) Weight() Weight {
	switch t {
	case TermRoomCollisions:
		return WeightRoomCollisions
	case TermSameSlotPerInstructor:
		return WeightSameSlotPerInstructor
	case TermSameSlotPerSemester:
		return WeightSameSlotPerSemester
	case TermLabsOnDifferentDays:
		return WeightLabsOnDifferentDays
	case TermInstructorNotAvailable:
		return WeightInstructorNotAvailable
	case TermIncontinuousClasses:
		return WeightIncontinuousClasses
	case TermOutsideSessionLength:
		return WeightOutsideSessionLength
	case TermHolesPerSemester:
		return WeightHolesPerSemester
	case TermInstructorAvailableIfNeeded:
		return WeightInstructorAvailableIfNeed
	case TermInconsistentClassSlots:
		return WeightInconsistentClassSlots
	case TermSameSlotCount:
		return WeightSameSlotCount
	default:
		return 0
	}
}

// Evaluate computes t's raw (unweighted) count for the given state.
func (t Term) Evaluate(cc *calendar.ClassCalendar, cons *constraints.Constraints) int64 {
	switch t {
	case TermRoomCollisions:
		return int64(matcher.CollisionCount(cc, cons))
	case TermSameSlotPerInstructor:
		return SameSlotPerInstructor(cc, cons)
	case TermSameSlotPerSemester:
		return SameSlotPerSemester(cc, cons)
	case TermLabsOnDifferentDays:
		return LabsOnDifferentDays(cc, cons)
	case TermInstructorNotAvailable:
		return InstructorNotAvailable(cc, cons)
	case TermIncontinuousClasses:
		return IncontinuousClasses(cc)
	case TermOutsideSessionLength:
		return OutsideSessionLength(cc, MinSessionLength, MaxSessionLength)
	case TermHolesPerSemester:
		return HolesPerSemester(cc, cons)
	case TermInstructorAvailableIfNeeded:
		return InstructorAvailableIfNeeded(cc, cons)
	case TermInconsistentClassSlots:
		return InconsistentClassSlots(cc)
	case TermSameSlotCount:
		return SameSlotCount(cc)
	default:
		return 0
	}
}

// WeightedCost scales a raw term count by its fixed-point weight; callers
// sum across terms and divide the total by WeightDenominator to obtain the
// floating-point cost.
func WeightedCost(t Term, rawCount int64) int64 {
	return rawCount * int64(t.Weight())
}

// cellCounts tallies, for one (day, slot) cell, the per-class occupancy —
// shared scaffolding for several terms below.
func cellCounts(cc *calendar.ClassCalendar, day calendar.Day, slot calendar.Slot) map[calendar.ClassID]uint8 {
	counts := make(map[calendar.ClassID]uint8)
	for _, class := range cc.ClassIDs() {
		if n := cc.Count(day, slot, class); n > 0 {
			counts[class] = n
		}
	}
	return counts
}

// SameSlotCount is the total number of entries sitting in cells that hold
// two or more entries (from any classes).
func SameSlotCount(cc *calendar.ClassCalendar) int64 {
	var total int64
	for _, day := range calendar.AllDays() {
		for _, slot := range calendar.AllSlots() {
			var cellTotal int64
			for _, class := range cc.ClassIDs() {
				cellTotal += int64(cc.Count(day, slot, class))
			}
			if cellTotal >= 2 {
				total += cellTotal
			}
		}
	}
	return total
}

// SameSlotPerInstructor sums, over every cell, the instructor-grouped
// occupancy counts that are 2 or more — the same instructor double-booked
// in one cell across their classes.
func SameSlotPerInstructor(cc *calendar.ClassCalendar, cons *constraints.Constraints) int64 {
	var total int64
	for _, day := range calendar.AllDays() {
		for _, slot := range calendar.AllSlots() {
			perInstructor := make(map[constraints.InstructorID]int64)
			for _, class := range cc.ClassIDs() {
				n := cc.Count(day, slot, class)
				if n == 0 {
					continue
				}
				info, ok := cons.Classes[class]
				if !ok {
					continue
				}
				perInstructor[info.InstructorID] += int64(n)
			}
			for _, n := range perInstructor {
				if n >= 2 {
					total += n
				}
			}
		}
	}
	return total
}

// SameSlotPerSemester sums, over every cell, the semester-grouped occupancy
// counts that are 2 or more.
func SameSlotPerSemester(cc *calendar.ClassCalendar, cons *constraints.Constraints) int64 {
	var total int64
	for _, day := range calendar.AllDays() {
		for _, slot := range calendar.AllSlots() {
			perSemester := make(map[constraints.Semester]int64)
			for _, class := range cc.ClassIDs() {
				n := cc.Count(day, slot, class)
				if n == 0 {
					continue
				}
				info, ok := cons.Classes[class]
				if !ok {
					continue
				}
				perSemester[info.Semester] += int64(n)
			}
			for _, n := range perSemester {
				if n >= 2 {
					total += n
				}
			}
		}
	}
	return total
}

// InstructorNotAvailable counts entries whose cell is NotAvailable for
// their class's instructor.
func InstructorNotAvailable(cc *calendar.ClassCalendar, cons *constraints.Constraints) int64 {
	return countByAvailability(cc, cons, constraints.NotAvailable)
}

// InstructorAvailableIfNeeded counts entries whose cell is
// AvailableIfNeeded for their class's instructor.
func InstructorAvailableIfNeeded(cc *calendar.ClassCalendar, cons *constraints.Constraints) int64 {
	return countByAvailability(cc, cons, constraints.AvailableIfNeeded)
}

func countByAvailability(cc *calendar.ClassCalendar, cons *constraints.Constraints, want constraints.Availability) int64 {
	var total int64
	for _, class := range cc.ClassIDs() {
		info, ok := cons.Classes[class]
		if !ok {
			continue
		}
		instructor, ok := cons.Instructors[info.InstructorID]
		if !ok {
			continue
		}
		for _, day := range calendar.AllDays() {
			for _, slot := range calendar.AllSlots() {
				n := cc.Count(day, slot, class)
				if n == 0 {
					continue
				}
				if instructor.Availability.Get(day, slot) == want {
					total += int64(n)
				}
			}
		}
	}
	return total
}

// OutsideSessionLength counts contiguous runs of occupied slots per
// (class, day) whose length falls outside [minLen, maxLen]. A run outside
// the bound contributes exactly 1 regardless of how far outside it falls —
// preserved intentionally as a count-of-runs semantic, not a
// distance-weighted one.
func OutsideSessionLength(cc *calendar.ClassCalendar, minLen, maxLen int) int64 {
	var total int64
	for _, class := range cc.ClassIDs() {
		for _, day := range calendar.AllDays() {
			runLength := 0
			for _, slot := range calendar.AllSlots() {
				if cc.Count(day, slot, class) > 0 {
					runLength++
				} else if runLength > 0 {
					if runLength < minLen || runLength > maxLen {
						total++
					}
					runLength = 0
				}
			}
			if runLength >= 1 && (runLength < minLen || runLength > maxLen) {
				total++
			}
		}
	}
	return total
}

// InconsistentClassSlots counts, for every class active on at least two
// distinct days, the slots used on exactly one of those days.
func InconsistentClassSlots(cc *calendar.ClassCalendar) int64 {
	var total int64
	for _, class := range cc.ClassIDs() {
		daysActive := 0
		for _, day := range calendar.AllDays() {
			if dayHasClass(cc, day, class) {
				daysActive++
			}
		}
		if daysActive < 2 {
			continue
		}
		for _, slot := range calendar.AllSlots() {
			count := 0
			for _, day := range calendar.AllDays() {
				if cc.Count(day, slot, class) > 0 {
					count++
				}
			}
			if count == 1 {
				total++
			}
		}
	}
	return total
}

func dayHasClass(cc *calendar.ClassCalendar, day calendar.Day, class calendar.ClassID) bool {
	for _, slot := range calendar.AllSlots() {
		if cc.Count(day, slot, class) > 0 {
			return true
		}
	}
	return false
}

// LabsOnDifferentDays counts, for each class whose allowed room types
// include a lab type, (distinct_days_used - 1) when that class spans two or
// more days, else 0.
func LabsOnDifferentDays(cc *calendar.ClassCalendar, cons *constraints.Constraints) int64 {
	var total int64
	for _, class := range cc.ClassIDs() {
		info, ok := cons.Classes[class]
		if !ok || !info.AllowsAnyLab() {
			continue
		}
		var days int64
		for _, day := range calendar.AllDays() {
			if dayHasClass(cc, day, class) {
				days++
			}
		}
		if days >= 2 {
			total += days - 1
		}
	}
	return total
}

// IncontinuousClasses counts (class, day) pairs whose set of occupied slots
// contains a gap — any two used slots with an unused slot strictly between
// them.
func IncontinuousClasses(cc *calendar.ClassCalendar) int64 {
	var total int64
	for _, class := range cc.ClassIDs() {
		for _, day := range calendar.AllDays() {
			var used []int
			for i, slot := range calendar.AllSlots() {
				if cc.Count(day, slot, class) > 0 {
					used = append(used, i)
				}
			}
			hasGap := false
			for i := 1; i < len(used); i++ {
				if used[i-1]+1 < used[i] {
					hasGap = true
					break
				}
			}
			if hasGap {
				total++
			}
		}
	}
	return total
}

// HolesPerSemester counts, for each (semester, day), the number of empty
// slots strictly between the first and last slot at which any class of
// that semester is active.
func HolesPerSemester(cc *calendar.ClassCalendar, cons *constraints.Constraints) int64 {
	var total int64
	for _, semester := range constraints.AllSemesters() {
		for _, day := range calendar.AllDays() {
			slots := calendar.AllSlots()
			active := make([]bool, len(slots))
			for i, slot := range slots {
				for _, class := range cc.ClassIDs() {
					if cc.Count(day, slot, class) == 0 {
						continue
					}
					info, ok := cons.Classes[class]
					if ok && info.Semester == semester {
						active[i] = true
						break
					}
				}
			}
			first, last := -1, -1
			for i, a := range active {
				if a {
					if first == -1 {
						first = i
					}
					last = i
				}
			}
			if first == -1 {
				continue
			}
			for i := first; i <= last; i++ {
				if !active[i] {
					total++
				}
			}
		}
	}
	return total
}
