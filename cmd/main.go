package main

import (
	"fmt"
	"log"

	"github.com/ocampoLuis/conflictgraph/internal/datagen"
	"github.com/ocampoLuis/conflictgraph/pkg/detector"
	"github.com/ocampoLuis/conflictgraph/pkg/graph"
	"github.com/ocampoLuis/conflictgraph/pkg/model"
)

const Tolerance = 0

func main() {
	const Assignments = 40

	config := datagen.DefaultConfig(Assignments)
	config.Seed = 7

	dataset, err := datagen.Generate(config)
	if err != nil {
		log.Fatalf("cannot generate dataset: %v", err)
	}

	// rules := detector.New()
	// rules := detector.New(detector.WithCacheSize(0))
	rules := detector.New(detector.WithTolerance(Tolerance))
	loader := graph.New(rules)

	if err := loader.Rebuild(dataset); err != nil {
		log.Fatal(err)
	}

	for _, day := range model.Weekdays() {
		for _, assignment := range loader.AssignmentsByDay(day) {
			edges := loader.ConflictsFor(assignment.Id)
			if len(edges) == 0 {
				continue
			}

			fmt.Printf("Day: %v, Assignment: %v, Conflicts: %v \n", day, assignment.Id, len(edges))
			for _, edge := range edges {
				fmt.Printf("    %v \n", edge)
			}
		}
	}

	fmt.Printf("Assignments: %v, Edges: %v, Conflict-free: %v \n", loader.Len(), loader.TotalConflicts(), len(loader.ConflictFreeAssignments()))

	for _, assignment := range loader.ConflictFreeAssignments() {
		if len(loader.ConflictsFor(assignment.Id)) > 0 {
			log.Fatal("Verification failed")
		}
	}

	fmt.Println("Well done!")
}
