package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ocampoLuis/conflictgraph/internal/datagen"
	"github.com/ocampoLuis/conflictgraph/pkg/detector"
	"github.com/ocampoLuis/conflictgraph/pkg/export"
	"github.com/ocampoLuis/conflictgraph/pkg/graph"
	"github.com/ocampoLuis/conflictgraph/pkg/model"
)

func main() {
	// Define arguments
	generatePtr := flag.Int("generate", 0, "Number of assignments to generate synthetically; mutually exclusive with -in")
	seedPtr := flag.Uint64("seed", 1, "Seed for the synthetic generator, where 1 is the default")
	inFilePtr := flag.String("in", "", "Path to a conflict-graph JSON document whose assignments will be loaded; mutually exclusive with -generate")
	tolerancePtr := flag.Int("tolerance", 0, "Number of minutes shaved off both ends of every compared time range before the overlap test, where 0 is the default")
	outFilePtr := flag.String("out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	verbosePtr := flag.Bool("verbose", false, "Log progress and classification diagnostics in a human-readable format")
	flag.Parse()
	generate := *generatePtr
	seed := *seedPtr
	inFile := *inFilePtr
	tolerance := *tolerancePtr
	outFile := *outFilePtr
	verbose := *verbosePtr

	// Validate arguments
	if generate == 0 && inFile == "" {
		log.Fatal("either -generate or -in must be specified")
	} else if generate != 0 && inFile != "" {
		log.Fatal("-generate and -in are mutually exclusive")
	} else if generate < 0 {
		log.Fatalf("generate must be positive: %v", generate)
	} else if tolerance < 0 {
		log.Fatalf("tolerance must not be negative: %v", tolerance)
	}

	logger, err := newLogger(verbose)
	if err != nil {
		log.Fatalf("cannot initialize logger: %v", err)
	}
	defer logger.Sync()

	// Extract input
	var assignments []model.Assignment
	if inFile != "" {
		data, err := os.ReadFile(inFile)
		if err != nil {
			log.Fatalf("cannot read input file: %v", err)
		}
		document, err := export.Parse(data)
		if err != nil {
			log.Fatalf("cannot parse input file: %v", err)
		}
		assignments, err = document.Assignments()
		if err != nil {
			log.Fatalf("cannot decode input assignments: %v", err)
		}
		logger.Info("input document loaded", zap.String("file", inFile), zap.Int("assignments", len(assignments)))
	} else {
		config := datagen.DefaultConfig(generate)
		config.Seed = seed
		dataset, err := datagen.Generate(config)
		if err != nil {
			log.Fatalf("cannot generate dataset: %v", err)
		}
		assignments = dataset.Assignments
		logger.Info("dataset generated",
			zap.Uint64("seed", seed),
			zap.Int("assignments", len(dataset.Assignments)),
			zap.Int("professors", len(dataset.Professors)),
			zap.Int("rooms", len(dataset.Rooms)))
	}

	// Initialize engines
	rules := detector.New(detector.WithTolerance(tolerance), detector.WithLogger(logger))
	loader := graph.New(rules, graph.WithLogger(logger))

	// Build the conflict graph
	if err := loader.Rebuild(graph.SliceSource(assignments)); err != nil {
		log.Fatalf("an error occurred during graph construction: %v", err)
	}
	logger.Info("conflict graph built", zap.Int("assignments", loader.Len()), zap.Int("edges", loader.TotalConflicts()))

	// Marshal the graph into json
	documentJson, err := export.Build(loader).Marshal()
	if err != nil {
		log.Fatalf("an error occurred while building output json: %v", err)
	}

	// Verify outfile is empty, if so then write the results to the Standard Output
	if outFile == "" {
		fmt.Println(string(documentJson))
	} else {
		err := os.WriteFile(outFile, documentJson, 0666)
		if err != nil {
			log.Fatalf("an error occurred while writing to the output file: %v", err)
		}
	}

	// Print summary
	stats := loader.Statistics()
	fmt.Printf("Assignments: %v\n", loader.Len())
	fmt.Printf("Conflicts: %v\n", loader.TotalConflicts())
	for _, conflictType := range model.ConflictTypes() {
		if count := stats[conflictType]; count > 0 {
			fmt.Printf("  %v: %v\n", conflictType.Label(), count)
		}
	}
	fmt.Printf("Conflict-free: %v\n", len(loader.ConflictFreeAssignments()))
}

// newLogger builds the production logger, or the development one when verbose
// output was requested. Every record carries this run's id.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		config = zap.NewDevelopmentConfig()
	}

	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("runId", uuid.NewString())), nil
}
