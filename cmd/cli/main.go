package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/alemarcos/horarios/pkg/codec"
	"github.com/alemarcos/horarios/pkg/model"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s <input-file> <output-file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}
	inputPath := flag.Arg(0)
	outputPath := flag.Arg(1)

	// Extract input
	instance, err := model.LoadInstance(inputPath)
	if err != nil {
		log.Printf("cannot load input file: %v", err)
		os.Exit(1)
	}

	// Build conflict graph and run the search
	graph := model.BuildConflictGraph(instance.Groups, instance.Subjects, instance.Professors)
	result := model.Solve(instance.Groups, instance.Subjects, instance.Professors, graph)

	if err := codec.WriteResult(outputPath, result); err != nil {
		log.Printf("cannot write output file: %v", err)
		os.Exit(1)
	}

	if result.Success {
		fmt.Printf("Schedule found: %d nodes explored in %.3fs\n", int(result.Stats.NodesExplored), result.Stats.TotalTimeSeconds)
	} else {
		fmt.Printf("No feasible schedule: %d nodes explored in %.3fs\n", int(result.Stats.NodesExplored), result.Stats.TotalTimeSeconds)
	}
}
