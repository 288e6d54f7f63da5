// internal/benchmark/suite.go
package benchmark

import (
	"context"
	"errors"
	"time"

	"github.com/promptlab/promptbench/internal/dataset"
	"github.com/promptlab/promptbench/internal/prompt"
)

// Progress reports one finished problem during a suite run. Run is nil
// when the problem failed outright (every technique failed).
type Progress struct {
	Index   int
	Total   int
	Problem dataset.Problem
	Run     *Run
	Err     error
}

// Summary aggregates a whole-dataset run: per-technique win counts and
// average overall scores, plus per-category win counts.
type Summary struct {
	TotalProblems  int
	Completed      int
	Failed         int
	ElapsedSeconds float64
	Wins           map[prompt.Technique]int
	AverageOverall map[prompt.Technique]float64
	CategoryWins   map[string]map[prompt.Technique]int
	Runs           []*Run
}

// RunSuite benchmarks every problem in order. Individual problem failures
// are counted, reported through onProgress, and skipped; the suite only
// errors when the context is cancelled before it finishes.
func (o *Orchestrator) RunSuite(ctx context.Context, problems []dataset.Problem, onProgress func(Progress)) (*Summary, error) {
	summary := &Summary{
		TotalProblems:  len(problems),
		Wins:           make(map[prompt.Technique]int),
		AverageOverall: make(map[prompt.Technique]float64),
		CategoryWins:   make(map[string]map[prompt.Technique]int),
	}
	scoreSums := make(map[prompt.Technique]float64)
	scoreCounts := make(map[prompt.Technique]int)

	start := time.Now()
	for i, problem := range problems {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		run, err := o.Benchmark(ctx, problem)
		if err != nil {
			if !errors.Is(err, ErrAllTechniquesFailed) {
				return nil, err
			}
			summary.Failed++
			if onProgress != nil {
				onProgress(Progress{Index: i + 1, Total: len(problems), Problem: problem, Err: err})
			}
			continue
		}

		summary.Completed++
		summary.Runs = append(summary.Runs, run)
		summary.Wins[run.Best]++

		categoryWins := summary.CategoryWins[problem.Category]
		if categoryWins == nil {
			categoryWins = make(map[prompt.Technique]int)
			summary.CategoryWins[problem.Category] = categoryWins
		}
		categoryWins[run.Best]++

		for _, result := range run.Results {
			if result.Success {
				scoreSums[result.Technique] += result.Scores.Overall
				scoreCounts[result.Technique]++
			}
		}

		if onProgress != nil {
			onProgress(Progress{Index: i + 1, Total: len(problems), Problem: problem, Run: run})
		}
	}

	for technique, count := range scoreCounts {
		summary.AverageOverall[technique] = scoreSums[technique] / float64(count)
	}
	summary.ElapsedSeconds = time.Since(start).Seconds()
	return summary, nil
}
