package constraints

import "fmt"

// Room enumerates the eight concrete physical rooms, across five real room
// types, that the scheduling domain models. The set is closed: callers never
// construct a Room value outside this list.
type Room int

const (
	RoomAula1 Room = iota
	RoomAula2_3
	RoomAula4
	RoomAula5_6
	RoomSalaSeminarios
	RoomSalaComputo
	RoomLabFisica
	RoomLabQuimica
)

// AllRooms returns the eight concrete rooms in declaration order.
func AllRooms() []Room {
	return []Room{
		RoomAula1,
		RoomAula2_3,
		RoomAula4,
		RoomAula5_6,
		RoomSalaSeminarios,
		RoomSalaComputo,
		RoomLabFisica,
		RoomLabQuimica,
	}
}

func (r Room) String() string {
	switch r {
	case RoomAula1:
		return "Aula1"
	case RoomAula2_3:
		return "Aula2_3"
	case RoomAula4:
		return "Aula4"
	case RoomAula5_6:
		return "Aula5_6"
	case RoomSalaSeminarios:
		return "SalaSeminarios"
	case RoomSalaComputo:
		return "SalaComputo"
	case RoomLabFisica:
		return "LabFisica"
	case RoomLabQuimica:
		return "LabQuimica"
	default:
		return fmt.Sprintf("Room(%d)", int(r))
	}
}

// Type returns the RoomType r physically is.
func (r Room) Type() RoomType {
	switch r {
	case RoomAula1, RoomAula4:
		return SingleClassroom
	case RoomAula2_3, RoomAula5_6, RoomSalaSeminarios:
		return DoubleClassroom
	case RoomSalaComputo:
		return ComputerLab
	case RoomLabFisica:
		return PhysicsLab
	case RoomLabQuimica:
		return ChemLab
	default:
		return Unassigned
	}
}

// RoomsOfType returns every concrete room whose Type matches rt.
func RoomsOfType(rt RoomType) []Room {
	var out []Room
	for _, r := range AllRooms() {
		if r.Type() == rt {
			out = append(out, r)
		}
	}
	return out
}
