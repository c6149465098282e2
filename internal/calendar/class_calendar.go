package calendar

import "math/rand"

// ClassID identifies a class within a Constraints record. It is a plain
// integer key rather than a pointer so ClassCalendar never holds a cyclic
// reference back into the constraints model.
type ClassID int

// maxCount is the saturation ceiling for a single cell's occupancy count.
// The spec models this as u8::MAX; Go has no unsigned byte overflow trap,
// so Add checks explicitly instead of relying on wraparound.
const maxCount = 255

// Entry is one unit of occupancy: a single (day, slot, class) triple. One
// element exists per placed class-hour.
type Entry struct {
	Day   Day
	Slot  Slot
	Class ClassID
}

// Delta is a self-describing description of one entry's move. Swap returns
// its inverse: reverting a move never recomputes state, it replays Move
// with src and dst swapped.
type Delta struct {
	Class   ClassID
	SrcDay  Day
	SrcSlot Slot
	DstDay  Day
	DstSlot Slot
}

// Swap returns the inverse of d: applying Move with the swapped coordinates
// restores the state Move(d) produced.
func (d Delta) Swap() Delta {
	return Delta{
		Class:   d.Class,
		SrcDay:  d.DstDay,
		SrcSlot: d.DstSlot,
		DstDay:  d.SrcDay,
		DstSlot: d.SrcSlot,
	}
}

// ClassCalendar is the mutable occupancy state the annealer searches over.
// Two representations are kept in sync: a per-class occupancy grid (for
// O(1) cell lookups) and a flat entries list (for O(1) uniform-random
// sampling of an occupied unit). Swap-remove keeps the entries list compact
// without preserving insertion order — order is never externally
// observable.
type ClassCalendar struct {
	grid    map[ClassID]*WeekCalendar[uint8]
	entries []Entry
}

// NewClassCalendar returns an empty calendar with no entries.
func NewClassCalendar() *ClassCalendar {
	return &ClassCalendar{grid: make(map[ClassID]*WeekCalendar[uint8])}
}

// Entries returns the flat entry list. Callers must not mutate the
// returned slice.
func (c *ClassCalendar) Entries() []Entry {
	return c.entries
}

// ClassIDs returns the set of classes that have ever held an entry
// (including classes currently at zero occupancy everywhere).
func (c *ClassCalendar) ClassIDs() []ClassID {
	ids := make([]ClassID, 0, len(c.grid))
	for id := range c.grid {
		ids = append(ids, id)
	}
	return ids
}

func (c *ClassCalendar) calendarFor(class ClassID) *WeekCalendar[uint8] {
	wc, ok := c.grid[class]
	if !ok {
		wc = &WeekCalendar[uint8]{}
		c.grid[class] = wc
	}
	return wc
}

// Count returns the occupancy count for (day, slot, class). Classes never
// added to the calendar read as zero.
func (c *ClassCalendar) Count(day Day, slot Slot, class ClassID) uint8 {
	wc, ok := c.grid[class]
	if !ok {
		return 0
	}
	return wc.Get(day, slot)
}

// Add places one unit of class at (day, slot). Fails with ErrDestinationFull
// if the cell is already at the saturation ceiling; the calendar is left
// unmodified on failure.
func (c *ClassCalendar) Add(day Day, slot Slot, class ClassID) error {
	wc := c.calendarFor(class)
	count := wc.Get(day, slot)
	if count >= maxCount {
		return ErrDestinationFull
	}
	wc.Set(day, slot, count+1)
	c.entries = append(c.entries, Entry{Day: day, Slot: slot, Class: class})
	return nil
}

// Remove takes away one unit of class from (day, slot). Fails with
// ErrSourceEmpty if no matching entry exists; the first matching entry is
// removed by swap-remove, so the entries slice does not preserve order.
func (c *ClassCalendar) Remove(day Day, slot Slot, class ClassID) error {
	idx := -1
	for i, e := range c.entries {
		if e.Day == day && e.Slot == slot && e.Class == class {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrSourceEmpty
	}
	c.swapRemove(idx)
	wc := c.calendarFor(class)
	wc.Set(day, slot, wc.Get(day, slot)-1)
	return nil
}

// RemoveAny removes one arbitrary entry belonging to class, scanning the
// entries list linearly. Fails with ErrNoClasses if class has zero entries.
func (c *ClassCalendar) RemoveAny(class ClassID) error {
	idx := -1
	for i, e := range c.entries {
		if e.Class == class {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNoClasses
	}
	e := c.entries[idx]
	c.swapRemove(idx)
	wc := c.calendarFor(class)
	wc.Set(e.Day, e.Slot, wc.Get(e.Day, e.Slot)-1)
	return nil
}

func (c *ClassCalendar) swapRemove(idx int) {
	last := len(c.entries) - 1
	c.entries[idx] = c.entries[last]
	c.entries = c.entries[:last]
}

// Move performs a composite remove-then-add of one unit of class from
// (srcDay, srcSlot) to (dstDay, dstSlot). Preconditions are the same as
// Remove followed by Add; on Add failure the removed unit is not restored,
// matching the reference implementation's unchecked `.unwrap()` composite
// — callers that need atomicity should check destination capacity first
// (MoveRandom does this).
func (c *ClassCalendar) Move(srcDay Day, srcSlot Slot, dstDay Day, dstSlot Slot, class ClassID) error {
	if err := c.Remove(srcDay, srcSlot, class); err != nil {
		return err
	}
	return c.Add(dstDay, dstSlot, class)
}

// MoveRandom picks a uniformly random entry and a uniformly random
// destination cell, and moves it there if the destination has spare
// capacity. On ErrRandomDestinationFull the calendar is left unmodified —
// this is the expected, silently-countable outcome the annealer treats as
// a no-op step. On ErrNoClassesToMove the calendar is empty.
func (c *ClassCalendar) MoveRandom(rng *rand.Rand) (Delta, error) {
	if len(c.entries) == 0 {
		return Delta{}, ErrNoClassesToMove
	}
	idx := rng.Intn(len(c.entries))
	entry := c.entries[idx]

	dstDay := Day(rng.Intn(DaysPerWeek))
	dstSlot := Slot(rng.Intn(SlotsPerDay))

	wc := c.calendarFor(entry.Class)
	if wc.Get(dstDay, dstSlot) >= maxCount {
		return Delta{}, ErrRandomDestinationFull
	}

	wc.Set(entry.Day, entry.Slot, wc.Get(entry.Day, entry.Slot)-1)
	wc.Set(dstDay, dstSlot, wc.Get(dstDay, dstSlot)+1)
	c.entries[idx] = Entry{Day: dstDay, Slot: dstSlot, Class: entry.Class}

	return Delta{
		Class:   entry.Class,
		SrcDay:  entry.Day,
		SrcSlot: entry.Slot,
		DstDay:  dstDay,
		DstSlot: dstSlot,
	}, nil
}

// Clone returns a deep copy, safe to mutate independently of c. Used by the
// ParEvaluator to hold a mirror of the annealer's state without aliasing.
func (c *ClassCalendar) Clone() *ClassCalendar {
	clone := NewClassCalendar()
	clone.entries = make([]Entry, len(c.entries))
	copy(clone.entries, c.entries)
	for class, wc := range c.grid {
		cp := *wc
		clone.grid[class] = &cp
	}
	return clone
}

// TotalEntries returns len(Entries()), the invariant-checked total occupancy
// mass (== sum of every class's RequiredHours while the annealer runs).
func (c *ClassCalendar) TotalEntries() int {
	return len(c.entries)
}

// TotalForClass returns the number of entries belonging to class, summed
// across every cell — the per-class half of invariant 3 (total entries for
// a class equals that class's RequiredHours).
func (c *ClassCalendar) TotalForClass(class ClassID) int {
	wc, ok := c.grid[class]
	if !ok {
		return 0
	}
	total := 0
	for _, day := range AllDays() {
		for _, slot := range AllSlots() {
			total += int(wc.Get(day, slot))
		}
	}
	return total
}
