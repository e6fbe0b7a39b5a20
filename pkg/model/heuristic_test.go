package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderSlots_PrefersLessLoadedDay(t *testing.T) {
	// Arrange
	candidates := []Slot{
		{Day: "Lunes", DayOrdinal: 0, Start: 8, End: 9, SlotOrdinal: 1},
		{Day: "Martes", DayOrdinal: 1, Start: 8, End: 9, SlotOrdinal: 1},
	}
	occupiedPerDay := [5]int{3, 0, 0, 0, 0}

	// Act
	ordered := orderSlots(candidates, occupiedPerDay)

	// Assert
	assert.Equal(t, "Martes", ordered[0].Day)
	assert.Equal(t, "Lunes", ordered[1].Day)
}

func TestOrderSlots_PrefersEarlyHourOverLate(t *testing.T) {
	// Arrange
	candidates := []Slot{
		{Day: "Lunes", DayOrdinal: 0, Start: 19, End: 20, SlotOrdinal: 5},
		{Day: "Lunes", DayOrdinal: 0, Start: 8, End: 9, SlotOrdinal: 1},
	}
	occupiedPerDay := [5]int{}

	// Act
	ordered := orderSlots(candidates, occupiedPerDay)

	// Assert
	assert.Equal(t, 8, ordered[0].Start)
	assert.Equal(t, 19, ordered[1].Start)
}

func TestOrderSlots_StableOnTies(t *testing.T) {
	// Arrange
	candidates := []Slot{
		{Day: "Lunes", DayOrdinal: 0, Start: 11, End: 12, SlotOrdinal: 4},
		{Day: "Martes", DayOrdinal: 1, Start: 11, End: 12, SlotOrdinal: 4},
	}
	occupiedPerDay := [5]int{}

	// Act
	ordered := orderSlots(candidates, occupiedPerDay)

	// Assert: equal scores, input order preserved
	assert.Equal(t, "Lunes", ordered[0].Day)
	assert.Equal(t, "Martes", ordered[1].Day)
}

func TestEarlyLateBonus(t *testing.T) {
	assert.Equal(t, -3, earlyLateBonus(7))
	assert.Equal(t, 0, earlyLateBonus(12))
	assert.Equal(t, 3, earlyLateBonus(19))
}
