package model

import (
	"testing"

	. "github.com/onsi/gomega"
)

func TestBuildConflictGraph_SharedGroupConflicts(t *testing.T) {
	// Arrange
	g := NewWithT(t)
	groups := []Group{{Name: "A", Term: 1, Shift: Morning}}
	subjects := []Subject{
		{Name: "Math", Term: 1, WeeklyHours: 2, GroupsTaking: []string{"A"}},
		{Name: "History", Term: 1, WeeklyHours: 2, GroupsTaking: []string{"A"}},
	}
	professors := []Professor{
		{Name: "P1", SubjectsTaught: []string{"Math"}, MaxHours: 10, PreferredShift: Either},
		{Name: "P2", SubjectsTaught: []string{"History"}, MaxHours: 10, PreferredShift: Either},
	}

	// Act
	graph := BuildConflictGraph(groups, subjects, professors)

	// Assert
	g.Expect(graph.NodeCount()).To(Equal(2))
	g.Expect(graph.EdgeCount()).To(Equal(1))
	g.Expect(graph.Neighbors(0)).To(ContainElement(1))
	g.Expect(graph.Neighbors(1)).To(ContainElement(0))
}

func TestBuildConflictGraph_SharedProfessorConflicts(t *testing.T) {
	// Arrange
	g := NewWithT(t)
	groups := []Group{
		{Name: "A", Term: 1, Shift: Morning},
		{Name: "B", Term: 1, Shift: Morning},
	}
	subjects := []Subject{
		{Name: "Math", Term: 1, WeeklyHours: 2, GroupsTaking: []string{"A"}},
		{Name: "Physics", Term: 1, WeeklyHours: 2, GroupsTaking: []string{"B"}},
	}
	professors := []Professor{
		{Name: "P1", SubjectsTaught: []string{"Math", "Physics"}, MaxHours: 10, PreferredShift: Either},
	}

	// Act
	graph := BuildConflictGraph(groups, subjects, professors)

	// Assert
	g.Expect(graph.EdgeCount()).To(Equal(1))
	g.Expect(graph.Degree(0)).To(Equal(1))
}

func TestBuildConflictGraph_UnrelatedUnitsNoEdge(t *testing.T) {
	// Arrange
	g := NewWithT(t)
	groups := []Group{
		{Name: "A", Term: 1, Shift: Morning},
		{Name: "B", Term: 1, Shift: Morning},
	}
	subjects := []Subject{
		{Name: "Math", Term: 1, WeeklyHours: 2, GroupsTaking: []string{"A"}},
		{Name: "Physics", Term: 1, WeeklyHours: 2, GroupsTaking: []string{"B"}},
	}
	professors := []Professor{
		{Name: "P1", SubjectsTaught: []string{"Math"}, MaxHours: 10, PreferredShift: Either},
		{Name: "P2", SubjectsTaught: []string{"Physics"}, MaxHours: 10, PreferredShift: Either},
	}

	// Act
	graph := BuildConflictGraph(groups, subjects, professors)

	// Assert
	g.Expect(graph.EdgeCount()).To(Equal(0))
}
