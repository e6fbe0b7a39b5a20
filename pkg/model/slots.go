package model

import "fmt"

var weekdays = [5]string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes"}

// morningRanges and eveningRanges hold the seven hourly ranges each shift is
// divided into. Matutino runs 07:00-14:00, Vespertino 14:00-21:00.
var morningRanges = [7][2]int{
	{7, 8}, {8, 9}, {9, 10}, {10, 11}, {11, 12}, {12, 13}, {13, 14},
}

var eveningRanges = [7][2]int{
	{14, 15}, {15, 16}, {16, 17}, {17, 18}, {18, 19}, {19, 20}, {20, 21},
}

// Slot is one hourly cell of the weekly timetable.
type Slot struct {
	Day         string
	DayOrdinal  int
	Start       int
	End         int
	SlotOrdinal int
	Shift       Shift
}

// Key returns the slot's stable wire-format identifier, e.g. "07:00-08:00".
func (s Slot) Key() string {
	return fmt.Sprintf("%02d:00-%02d:00", s.Start, s.End)
}

func rangesFor(shift Shift) [7][2]int {
	if shift == Evening {
		return eveningRanges
	}
	return morningRanges
}

// slotAt reconstructs the Slot at a given day/slot ordinal for shift,
// without building the whole catalog. Used when exporting the dense
// schedule state back into the wire-format map.
func slotAt(shift Shift, dayOrdinal, slotOrdinal int) Slot {
	ranges := rangesFor(shift)
	r := ranges[slotOrdinal]
	return Slot{
		Day:         weekdays[dayOrdinal],
		DayOrdinal:  dayOrdinal,
		Start:       r[0],
		End:         r[1],
		SlotOrdinal: slotOrdinal,
		Shift:       shift,
	}
}

// AllSlots returns the 35 slots of a shift, in day-then-hour order.
func AllSlots(shift Shift) []Slot {
	ranges := rangesFor(shift)
	slots := make([]Slot, 0, len(weekdays)*len(ranges))
	for dayOrdinal, day := range weekdays {
		for slotOrdinal, r := range ranges {
			slots = append(slots, Slot{
				Day:         day,
				DayOrdinal:  dayOrdinal,
				Start:       r[0],
				End:         r[1],
				SlotOrdinal: slotOrdinal,
				Shift:       shift,
			})
		}
	}
	return slots
}
