// internal/benchmark/benchmark.go
// Package benchmark drives the evaluation pipeline: it builds one prompt
// per technique, executes each against the model, scores every response on
// accuracy, completeness, and efficiency, and greedily selects the winner.
package benchmark

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/promptlab/promptbench/internal/dataset"
	"github.com/promptlab/promptbench/internal/executor"
	"github.com/promptlab/promptbench/internal/logging"
	"github.com/promptlab/promptbench/internal/prompt"
	"github.com/promptlab/promptbench/internal/scoring"
)

// ErrAllTechniquesFailed reports that no technique produced a usable
// result, so no winner can be selected.
var ErrAllTechniquesFailed = errors.New("all techniques failed to execute")

// Orchestrator owns one benchmark configuration: an executor and a
// validated weight set. Scorers are stateless and shared across runs.
type Orchestrator struct {
	exec         executor.ModelExecutor
	weights      WeightConfig
	accuracy     scoring.AccuracyScorer
	completeness scoring.CompletenessScorer
	efficiency   scoring.EfficiencyScorer
}

// NewOrchestrator validates the weights and returns a ready orchestrator.
// Invalid weights fail here, before any model call.
func NewOrchestrator(exec executor.ModelExecutor, weights WeightConfig) (*Orchestrator, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Orchestrator{exec: exec, weights: weights}, nil
}

// Weights returns the orchestrator's weight configuration.
func (o *Orchestrator) Weights() WeightConfig {
	return o.weights
}

// Benchmark evaluates every technique on one problem and selects the best.
// Techniques run concurrently; each writes into its own slot and selection
// waits for all of them. A failed execution zeroes that technique's scores
// without aborting the run; only total failure is an error.
func (o *Orchestrator) Benchmark(ctx context.Context, problem dataset.Problem) (*Run, error) {
	// Build all prompts up front so a configuration problem aborts
	// before any model call.
	prompts := make([]string, len(prompt.All))
	for i, technique := range prompt.All {
		text, err := prompt.Build(problem.Statement, technique)
		if err != nil {
			return nil, err
		}
		prompts[i] = text
	}

	results := make([]TechniqueResult, len(prompt.All))
	var wg sync.WaitGroup
	for i, technique := range prompt.All {
		wg.Add(1)
		go func(slot int, technique prompt.Technique, promptText string) {
			defer wg.Done()
			results[slot] = o.evaluate(ctx, problem, technique, promptText)
		}(i, technique, prompts[i])
	}
	wg.Wait()

	run := &Run{
		Problem: problem,
		Weights: o.weights,
		Results: results,
	}

	best, ok := o.selectBest(results)
	if !ok {
		return nil, fmt.Errorf("problem %d: %w", problem.ID, ErrAllTechniquesFailed)
	}
	run.Best = best
	run.Comparison = buildComparison(results)
	return run, nil
}

// evaluate runs one technique end to end: execute, then score.
func (o *Orchestrator) evaluate(ctx context.Context, problem dataset.Problem, technique prompt.Technique, promptText string) TechniqueResult {
	execResult, err := o.exec.Execute(ctx, promptText, technique)
	if err != nil {
		logging.LogEvent("technique %s failed on problem %d: %v", technique, problem.ID, err)
		return TechniqueResult{
			ExecutionResult: ExecutionResult{
				Technique:      technique,
				Prompt:         promptText,
				ElapsedSeconds: execResult.Elapsed.Seconds(),
				Success:        false,
				Error:          err.Error(),
			},
		}
	}

	accuracy := o.accuracy.Score(execResult.ResponseText, problem.GroundTruth)
	completeness := o.completeness.Score(execResult.ResponseText, problem.Category)
	efficiency := o.efficiency.Score(execResult.Elapsed, execResult.PromptTokens, execResult.CompletionTokens, execResult.ResponseText, problem.Category)
	overall := accuracy*o.weights.Accuracy + completeness*o.weights.Completeness + efficiency*o.weights.Efficiency

	return TechniqueResult{
		ExecutionResult: ExecutionResult{
			Technique:        technique,
			Prompt:           promptText,
			Response:         execResult.ResponseText,
			ElapsedSeconds:   execResult.Elapsed.Seconds(),
			PromptTokens:     execResult.PromptTokens,
			CompletionTokens: execResult.CompletionTokens,
			Success:          true,
		},
		Scores: ScoreSet{
			Accuracy:     accuracy,
			Completeness: completeness,
			Efficiency:   efficiency,
			Overall:      overall,
		},
	}
}

// selectBest greedily picks the successful technique with the highest
// overall score. Ties within epsilon break on accuracy, then completeness,
// then efficiency; a full tie keeps the technique earliest in the fixed
// enumeration order.
func (o *Orchestrator) selectBest(results []TechniqueResult) (prompt.Technique, bool) {
	bestIndex := -1
	for i, result := range results {
		if !result.Success {
			continue
		}
		if bestIndex < 0 || strictlyBetter(result.Scores, results[bestIndex].Scores) {
			bestIndex = i
		}
	}
	if bestIndex < 0 {
		return "", false
	}
	return results[bestIndex].Technique, true
}

// strictlyBetter reports whether a beats b on the tie-break chain
// overall -> accuracy -> completeness -> efficiency. Equal on all four
// means not better, so the incumbent (earlier technique) survives.
func strictlyBetter(a, b ScoreSet) bool {
	for _, pair := range [][2]float64{
		{a.Overall, b.Overall},
		{a.Accuracy, b.Accuracy},
		{a.Completeness, b.Completeness},
		{a.Efficiency, b.Efficiency},
	} {
		if pair[0] > pair[1]+scoreEpsilon {
			return true
		}
		if pair[1] > pair[0]+scoreEpsilon {
			return false
		}
	}
	return false
}

// buildComparison ranks the successful techniques by overall score,
// descending. Order among exact ties follows the enumeration order, which
// sort.SliceStable preserves.
func buildComparison(results []TechniqueResult) []ComparisonRow {
	var rows []ComparisonRow
	for _, result := range results {
		if !result.Success {
			continue
		}
		rows = append(rows, ComparisonRow{
			Technique:      result.Technique,
			Accuracy:       result.Scores.Accuracy,
			Completeness:   result.Scores.Completeness,
			Efficiency:     result.Scores.Efficiency,
			Overall:        result.Scores.Overall,
			LatencySeconds: result.ElapsedSeconds,
			TotalTokens:    result.PromptTokens + result.CompletionTokens,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Overall > rows[j].Overall
	})
	return rows
}
