package model

// validate decides whether placing professor in slot for group is legal
// given the caller's precomputed occupancy bits and hour counters. It is a
// pure function: all state lives in the caller's dense arrays.
func validate(group Group, slot Slot, professor Professor, occupied, professorBusy bool, professorHours int) (bool, string) {
	if slot.Shift != group.Shift {
		return false, "slot not in group's shift"
	}
	if occupied {
		return false, "group already busy"
	}
	if professorBusy {
		return false, "professor already busy"
	}
	if professorHours >= professor.MaxHours {
		return false, "professor out of hours"
	}
	if professor.PreferredShift != Either && professor.PreferredShift != slot.Shift {
		return false, "shift mismatch"
	}
	if !professorAvailable(professor, slot) {
		return false, "professor not available at this slot"
	}
	return true, ""
}

// professorAvailable reports whether slot falls within one of professor's
// declared availability windows for slot.Day. An empty availability mapping
// means the professor is available everywhere.
func professorAvailable(professor Professor, slot Slot) bool {
	if len(professor.Availability) == 0 {
		return true
	}
	windows, ok := professor.Availability[slot.Day]
	if !ok {
		return false
	}
	for _, w := range windows {
		if slot.Start >= w.Start && slot.End <= w.End {
			return true
		}
	}
	return false
}
