package model

import (
	"time"

	"github.com/samber/lo"
)

// Placement is one filled cell of a group's weekly schedule.
type Placement struct {
	Subject   string
	Professor string
}

// Schedule is the externally visible weekly timetable: group -> day ->
// slot key -> placement. A group/day absent from the map has no classes
// placed that day; a slot key absent from a day's map is free.
type Schedule map[string]map[string]map[string]Placement

// Stats reports search effort for a single Solve call.
type Stats struct {
	TotalTimeSeconds float64
	NodesExplored    float64
}

// Result is the outcome of a Solve call.
type Result struct {
	Success  bool
	Schedule Schedule
	Stats    Stats
}

// pendingAssignment is one unmet (group, subject) obligation, carrying the
// indices (into the professors slice, input order) of professors qualified
// to teach it.
type pendingAssignment struct {
	GroupIdx   int
	SubjectIdx int
	Professors []int
}

// searchState holds every piece of mutable state touched during a single
// Solve call. Nothing here outlives that call.
type searchState struct {
	groups     []Group
	subjects   []Subject
	professors []Professor
	pending    []pendingAssignment

	schedule  [][5][7]*Placement
	occupancy [][5][7]bool

	profHours   []int
	placedHours []int

	nodesExplored int
}

// Solve runs the backtracking search described by the component design:
// a pending-assignment list is filled hour by hour, slots ordered by the
// slot heuristic, professors tried in input order, every tentative
// placement checked by the hard-constraint validator before being
// committed. The conflict graph is accepted for parity with the engine API
// and future heuristic reuse but is not consulted by this search.
func Solve(groups []Group, subjects []Subject, professors []Professor, graph *ConflictGraph) Result {
	start := time.Now()

	pending := buildPending(groups, subjects, professors)
	state := &searchState{
		groups:      groups,
		subjects:    subjects,
		professors:  professors,
		pending:     pending,
		schedule:    make([][5][7]*Placement, len(groups)),
		occupancy:   make([][5][7]bool, len(professors)),
		profHours:   make([]int, len(professors)),
		placedHours: make([]int, len(pending)),
	}

	success := state.solve(0)

	result := Result{
		Success: success,
		Stats: Stats{
			TotalTimeSeconds: time.Since(start).Seconds(),
			NodesExplored:    float64(state.nodesExplored),
		},
	}
	if success {
		result.Schedule = state.exportSchedule()
	} else {
		result.Schedule = Schedule{}
	}
	return result
}

// buildPending derives one pending assignment per (group, subject) pair
// sharing a term, in subject-then-group input order.
func buildPending(groups []Group, subjects []Subject, professors []Professor) []pendingAssignment {
	groupIndex := make(map[string]int, len(groups))
	for i, g := range groups {
		groupIndex[g.Name] = i
	}

	var pending []pendingAssignment
	for subjectIdx, subject := range subjects {
		for _, groupName := range subject.GroupsTaking {
			groupIdx, ok := groupIndex[groupName]
			if !ok {
				continue
			}
			qualified := lo.FilterMap(professors, func(p Professor, i int) (int, bool) {
				return i, p.Teaches(subject.Name)
			})
			pending = append(pending, pendingAssignment{
				GroupIdx:   groupIdx,
				SubjectIdx: subjectIdx,
				Professors: qualified,
			})
		}
	}
	return pending
}

// solve is the outer recursion over pending-assignment index i. It does not
// undo a unit's placements if solve(i+1) fails: once tryPlace(i) returns
// true, that unit's placements are final.
func (s *searchState) solve(i int) bool {
	if i == len(s.pending) {
		return true
	}
	if !s.tryPlace(i) {
		return false
	}
	return s.solve(i + 1)
}

// tryPlace is the inner recursion that fills the remaining hours of a
// single pending unit, one hour per call, backtracking only within the
// unit's own (slot, professor) search.
func (s *searchState) tryPlace(i int) bool {
	unit := s.pending[i]
	subject := s.subjects[unit.SubjectIdx]
	group := s.groups[unit.GroupIdx]

	if s.placedHours[i] >= subject.WeeklyHours {
		return true
	}

	ordered := orderSlots(AllSlots(group.Shift), s.occupiedPerDay(unit.GroupIdx))

	for _, slot := range ordered {
		for _, profIdx := range unit.Professors {
			professor := s.professors[profIdx]
			s.nodesExplored++

			occupied := s.schedule[unit.GroupIdx][slot.DayOrdinal][slot.SlotOrdinal] != nil
			busy := s.occupancy[profIdx][slot.DayOrdinal][slot.SlotOrdinal]

			ok, _ := validate(group, slot, professor, occupied, busy, s.profHours[profIdx])
			if !ok {
				continue
			}

			s.commit(i, profIdx, slot, subject.Name)
			if s.tryPlace(i) {
				return true
			}
			s.undo(i, profIdx, slot)
		}
	}

	return false
}

func (s *searchState) commit(i, profIdx int, slot Slot, subjectName string) {
	unit := s.pending[i]
	s.schedule[unit.GroupIdx][slot.DayOrdinal][slot.SlotOrdinal] = &Placement{
		Subject:   subjectName,
		Professor: s.professors[profIdx].Name,
	}
	s.occupancy[profIdx][slot.DayOrdinal][slot.SlotOrdinal] = true
	s.profHours[profIdx]++
	s.placedHours[i]++
}

func (s *searchState) undo(i, profIdx int, slot Slot) {
	unit := s.pending[i]
	s.schedule[unit.GroupIdx][slot.DayOrdinal][slot.SlotOrdinal] = nil
	s.occupancy[profIdx][slot.DayOrdinal][slot.SlotOrdinal] = false
	s.profHours[profIdx]--
	s.placedHours[i]--
}

// occupiedPerDay counts, for each weekday, how many slots of groupIdx's
// schedule are already filled. Feeds the slot heuristic's load-spreading
// term.
func (s *searchState) occupiedPerDay(groupIdx int) [5]int {
	var counts [5]int
	for day := 0; day < 5; day++ {
		for slot := 0; slot < 7; slot++ {
			if s.schedule[groupIdx][day][slot] != nil {
				counts[day]++
			}
		}
	}
	return counts
}

// exportSchedule converts the dense internal state into the wire-shaped
// nested map. Called only once, after a successful solve.
func (s *searchState) exportSchedule() Schedule {
	schedule := make(Schedule)
	for groupIdx, group := range s.groups {
		for day := 0; day < 5; day++ {
			for slotOrdinal := 0; slotOrdinal < 7; slotOrdinal++ {
				placement := s.schedule[groupIdx][day][slotOrdinal]
				if placement == nil {
					continue
				}
				slot := slotAt(group.Shift, day, slotOrdinal)
				if schedule[group.Name] == nil {
					schedule[group.Name] = make(map[string]map[string]Placement)
				}
				if schedule[group.Name][slot.Day] == nil {
					schedule[group.Name][slot.Day] = make(map[string]Placement)
				}
				schedule[group.Name][slot.Day][slot.Key()] = *placement
			}
		}
	}
	return schedule
}
