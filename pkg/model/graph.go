package model

import "github.com/samber/lo"

// ConflictNode identifies a single (group, subject) weekly assignment unit.
type ConflictNode struct {
	Group   string
	Subject string
	Term    int
}

// ConflictGraph links assignment units that cannot be reasoned about
// independently: those sharing a group, or sharing a qualified professor.
// It is built once per instance and never mutated during search.
type ConflictGraph struct {
	nodes []ConflictNode
	edges []map[int]bool
}

// BuildConflictGraph constructs the conflict graph for an instance.
func BuildConflictGraph(groups []Group, subjects []Subject, professors []Professor) *ConflictGraph {
	professorsBySubject := make(map[string][]string, len(subjects))
	for _, subject := range subjects {
		professorsBySubject[subject.Name] = lo.FilterMap(professors, func(p Professor, _ int) (string, bool) {
			return p.Name, p.Teaches(subject.Name)
		})
	}

	var nodes []ConflictNode
	for _, subject := range subjects {
		for _, groupName := range subject.GroupsTaking {
			nodes = append(nodes, ConflictNode{Group: groupName, Subject: subject.Name, Term: subject.Term})
		}
	}

	edges := make([]map[int]bool, len(nodes))
	for i := range edges {
		edges[i] = make(map[int]bool)
	}

	sharesProfessor := func(a, b ConflictNode) bool {
		profsA := professorsBySubject[a.Subject]
		profsB := professorsBySubject[b.Subject]
		return lo.SomeBy(profsA, func(name string) bool {
			return lo.Contains(profsB, name)
		})
	}

	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			if nodes[i].Group == nodes[j].Group || sharesProfessor(nodes[i], nodes[j]) {
				edges[i][j] = true
				edges[j][i] = true
			}
		}
	}

	return &ConflictGraph{nodes: nodes, edges: edges}
}

// NodeCount returns the number of assignment-unit nodes.
func (g *ConflictGraph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of undirected edges.
func (g *ConflictGraph) EdgeCount() int {
	total := 0
	for _, neighbors := range g.edges {
		total += len(neighbors)
	}
	return total / 2
}

// Neighbors returns the indices of nodes conflicting with node i.
func (g *ConflictGraph) Neighbors(i int) []int {
	neighbors := make([]int, 0, len(g.edges[i]))
	for j := range g.edges[i] {
		neighbors = append(neighbors, j)
	}
	return neighbors
}

// Degree returns the number of nodes conflicting with node i.
func (g *ConflictGraph) Degree(i int) int {
	return len(g.edges[i])
}
