package model

import "sort"

// orderSlots returns candidates reordered by ascending slotScore, preferring
// early-morning slots and spreading load across days. The sort is stable so
// ties preserve the catalog's day-then-hour order.
func orderSlots(candidates []Slot, occupiedPerDay [5]int) []Slot {
	scores := make([]int, len(candidates))
	for i, slot := range candidates {
		scores[i] = slotScore(slot, occupiedPerDay)
	}

	indices := make([]int, len(candidates))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return scores[indices[a]] < scores[indices[b]]
	})

	ordered := make([]Slot, len(candidates))
	for i, idx := range indices {
		ordered[i] = candidates[idx]
	}
	return ordered
}

func slotScore(slot Slot, occupiedPerDay [5]int) int {
	return 2*occupiedPerDay[slot.DayOrdinal] + earlyLateBonus(slot.Start)
}

func earlyLateBonus(hour int) int {
	switch {
	case hour < 10:
		return -3
	case hour > 18:
		return 3
	default:
		return 0
	}
}
