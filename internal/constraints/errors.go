package constraints

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSemester is returned when constructing a Semester outside S1..S8.
	ErrInvalidSemester = errors.New("constraints: semester out of range")

	// ErrInvalidGroup is returned when constructing a Group outside G1..G4.
	ErrInvalidGroup = errors.New("constraints: group out of range")

	// ErrUnknownInstructor is returned when a Class references an
	// InstructorID absent from the owning Constraints record.
	ErrUnknownInstructor = errors.New("constraints: class references unknown instructor")

	// ErrNoAllowedRoomTypes is returned by Validate when a Class has an
	// empty AllowedRoomTypes set — a class that can never be placed in any
	// room is a configuration error, not a schedulable edge case.
	ErrNoAllowedRoomTypes = errors.New("constraints: class has no allowed room types")
)

// Validate checks that every class's InstructorID resolves and that every
// class declares at least one allowed room type.
func (c *Constraints) Validate() error {
	for id, class := range c.Classes {
		if _, ok := c.Instructors[class.InstructorID]; !ok {
			return fmt.Errorf("%w: class %d references instructor %d", ErrUnknownInstructor, id, class.InstructorID)
		}
		if len(class.AllowedRoomTypes) == 0 {
			return fmt.Errorf("%w: class %d", ErrNoAllowedRoomTypes, id)
		}
	}
	return nil
}
