package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"

	"github.com/alemarcos/horarios/pkg/model"
	"github.com/samber/lo"
)

// benchmarkCase describes one synthetic instance shape to measure.
type benchmarkCase struct {
	Name         string
	Groups       int
	SubjectsEach int
	WeeklyHours  int
	Professors   int
}

type benchmarkResult struct {
	Case          benchmarkCase
	Success       bool
	NodesExplored float64
	DurationSecs  float64
}

func main() {
	cases := getCases()
	results := make([]benchmarkResult, 0, len(cases))

	for _, c := range cases {
		fmt.Printf("Benchmarking case %q (groups=%d, subjects/group=%d, hours=%d, professors=%d)\n",
			c.Name, c.Groups, c.SubjectsEach, c.WeeklyHours, c.Professors)

		groups, subjects, professors := generateInstance(c)
		graph := model.BuildConflictGraph(groups, subjects, professors)
		result := model.Solve(groups, subjects, professors, graph)

		results = append(results, benchmarkResult{
			Case:          c,
			Success:       result.Success,
			NodesExplored: result.Stats.NodesExplored,
			DurationSecs:  result.Stats.TotalTimeSeconds,
		})
	}

	writeCsv(results)
}

func getCases() []benchmarkCase {
	return []benchmarkCase{
		{Name: "tiny", Groups: 2, SubjectsEach: 2, WeeklyHours: 3, Professors: 4},
		{Name: "small", Groups: 5, SubjectsEach: 4, WeeklyHours: 4, Professors: 10},
		{Name: "medium", Groups: 10, SubjectsEach: 6, WeeklyHours: 4, Professors: 20},
		{Name: "large", Groups: 20, SubjectsEach: 6, WeeklyHours: 5, Professors: 40},
	}
}

// generateInstance builds an always-feasible synthetic instance: groups
// alternate shift, every group gets its own SubjectsEach subjects, and the
// subjects are dealt round-robin to the professors, so each subject has
// exactly one qualified professor, with a 40-hour budget and no
// availability restriction.
func generateInstance(c benchmarkCase) ([]model.Group, []model.Subject, []model.Professor) {
	groups := make([]model.Group, 0, c.Groups)
	for i := 0; i < c.Groups; i++ {
		shift := model.Morning
		if i%2 == 1 {
			shift = model.Evening
		}
		groups = append(groups, model.Group{
			Name:  fmt.Sprintf("grupo-%d", i),
			Term:  i%4 + 1,
			Shift: shift,
		})
	}

	subjects := make([]model.Subject, 0, c.Groups*c.SubjectsEach)
	for gi, g := range groups {
		for si := 0; si < c.SubjectsEach; si++ {
			subjects = append(subjects, model.Subject{
				Name:         fmt.Sprintf("materia-%d-%d", gi, si),
				Term:         g.Term,
				WeeklyHours:  c.WeeklyHours,
				GroupsTaking: []string{g.Name},
			})
		}
	}

	professors := make([]model.Professor, 0, c.Professors)
	subjectNames := lo.Map(subjects, func(s model.Subject, _ int) string { return s.Name })
	for pi := 0; pi < c.Professors; pi++ {
		taught := make([]string, 0)
		for si, name := range subjectNames {
			if si%c.Professors == pi {
				taught = append(taught, name)
			}
		}
		professors = append(professors, model.Professor{
			Name:           fmt.Sprintf("profesor-%d", pi),
			SubjectsTaught: taught,
			MaxHours:       40,
			PreferredShift: model.Either,
		})
	}

	return groups, subjects, professors
}

func writeCsv(results []benchmarkResult) {
	file, err := os.Create("benchmark_results.csv")
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Case", "Groups", "SubjectsPerGroup", "WeeklyHours", "Professors", "Success", "NodesExplored", "DurationSecs"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, r := range results {
		record := []string{
			r.Case.Name,
			fmt.Sprintf("%d", r.Case.Groups),
			fmt.Sprintf("%d", r.Case.SubjectsEach),
			fmt.Sprintf("%d", r.Case.WeeklyHours),
			fmt.Sprintf("%d", r.Case.Professors),
			fmt.Sprintf("%v", r.Success),
			fmt.Sprintf("%.0f", r.NodesExplored),
			fmt.Sprintf("%.3f", r.DurationSecs),
		}
		if err := writer.Write(record); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}
