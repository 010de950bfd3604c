package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/ocampoLuis/conflictgraph/internal/datagen"
	"github.com/ocampoLuis/conflictgraph/pkg/detector"
	"github.com/ocampoLuis/conflictgraph/pkg/graph"
)

const (
	resultsPath = "benchmark_results.csv"
	runs        = 5
	seed        = 1
)

type BenchmarkResult struct {
	Size           int
	Tolerance      int
	Edges          int
	ConflictFree   int
	MinDuration    int64
	MedianDuration int64
	MaxDuration    int64
	AddsPerSecond  float64
}

func main() {
	sizes := getSizes()
	tolerances := getTolerances()
	results := make([]BenchmarkResult, 0, len(sizes)*len(tolerances))

	for _, size := range sizes {
		for _, tolerance := range tolerances {
			fmt.Printf("Benchmarking size \"%v\" with tolerance \"%v\" over %v runs\n", size, tolerance, runs)

			config := datagen.DefaultConfig(size)
			config.Seed = seed
			dataset := lo.Must(datagen.Generate(config))

			durations := make([]int64, 0, runs)
			var edges, conflictFree int
			for range runs {
				duration, measuredEdges, measuredFree := measure(dataset, tolerance)
				durations = append(durations, duration)
				edges, conflictFree = measuredEdges, measuredFree
			}

			minDuration, medianDuration, maxDuration := summarize(durations)
			results = append(results, BenchmarkResult{
				Size:           size,
				Tolerance:      tolerance,
				Edges:          edges,
				ConflictFree:   conflictFree,
				MinDuration:    minDuration,
				MedianDuration: medianDuration,
				MaxDuration:    maxDuration,
				AddsPerSecond:  addsPerSecond(size, medianDuration),
			})
		}
	}

	toCsv(results)
}

func getSizes() []int {
	return []int{100, 250, 500, 1000, 2500, 5000}
}

func getTolerances() []int {
	return []int{0, 10}
}

// measure rebuilds a fresh conflict graph from the dataset and returns the
// wall-clock duration in microseconds together with the resulting edge and
// conflict-free counts.
func measure(dataset *datagen.Dataset, tolerance int) (duration int64, edges int, conflictFree int) {
	rules := detector.New(detector.WithTolerance(tolerance))
	loader := graph.New(rules)

	start := time.Now()
	err := loader.Rebuild(dataset)
	duration = time.Since(start).Microseconds()

	if err != nil {
		log.Panicf("an error occurred during graph construction: %v", err)
	}
	return duration, loader.TotalConflicts(), len(loader.ConflictFreeAssignments())
}

func toCsv(results []BenchmarkResult) {
	file, err := os.Create(resultsPath)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	runId := uuid.NewString()

	header := []string{"Size", "Tolerance", "Edges", "Conflict-Free", "Min(ms)", "Median(ms)", "Max(ms)", "Adds/s", "RunId"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		record := []string{
			fmt.Sprintf("%d", result.Size),
			fmt.Sprintf("%d", result.Tolerance),
			fmt.Sprintf("%d", result.Edges),
			fmt.Sprintf("%d", result.ConflictFree),
			millisString(result.MinDuration),
			millisString(result.MedianDuration),
			millisString(result.MaxDuration),
			fmt.Sprintf("%.0f", result.AddsPerSecond),
			runId,
		}
		if err := writer.Write(record); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}

// summarize returns the minimum, median and maximum of the samples. The median
// of an even-length sample is its upper middle element.
func summarize(samples []int64) (minimum, median, maximum int64) {
	if len(samples) == 0 {
		return 0, 0, 0
	}
	sorted := slices.Clone(samples)
	slices.Sort(sorted)
	return sorted[0], sorted[len(sorted)/2], sorted[len(sorted)-1]
}

// addsPerSecond converts a rebuild of n assignments over the given duration in
// microseconds into a throughput rate.
func addsPerSecond(n int, microseconds int64) float64 {
	if microseconds <= 0 {
		return 0
	}
	return float64(n) / (float64(microseconds) / 1e6)
}

func millisString(microseconds int64) string {
	return fmt.Sprintf("%.3f", float64(microseconds)/1000)
}
