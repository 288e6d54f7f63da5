// internal/benchmark/types.go
package benchmark

import (
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/promptlab/promptbench/internal/appconfig"
	"github.com/promptlab/promptbench/internal/dataset"
	"github.com/promptlab/promptbench/internal/prompt"
)

// weightSumEpsilon is the tolerance for the weights-sum-to-one invariant.
const weightSumEpsilon = 1e-9

// scoreEpsilon is the floating-point tolerance used when comparing scores
// during greedy selection.
const scoreEpsilon = 1e-9

// WeightConfig holds the top-level metric weights. Each weight is
// non-negative and the three must sum to 1.0; the invariant is enforced
// when an orchestrator is configured, never mid-run.
type WeightConfig struct {
	Accuracy     float64 `json:"accuracy" validate:"gte=0,lte=1"`
	Completeness float64 `json:"completeness" validate:"gte=0,lte=1"`
	Efficiency   float64 `json:"efficiency" validate:"gte=0,lte=1"`
}

// DefaultWeights is the process-wide default weighting.
var DefaultWeights = WeightConfig{Accuracy: 0.5, Completeness: 0.3, Efficiency: 0.2}

var weightValidator = validator.New()

// Validate checks the per-field ranges and the sum-to-one invariant.
func (w WeightConfig) Validate() error {
	if err := weightValidator.Struct(w); err != nil {
		return &appconfig.ConfigurationError{Field: "weights", Reason: err.Error()}
	}
	sum := w.Accuracy + w.Completeness + w.Efficiency
	if math.Abs(sum-1.0) > weightSumEpsilon {
		return &appconfig.ConfigurationError{
			Field:  "weights",
			Reason: "weights must sum to 1.0",
		}
	}
	return nil
}

// ScoreSet carries the three sub-scores and their weighted overall value
// for one technique's result. Derived once, never mutated.
type ScoreSet struct {
	Accuracy     float64 `json:"accuracy"`
	Completeness float64 `json:"completeness"`
	Efficiency   float64 `json:"efficiency"`
	Overall      float64 `json:"overall"`
}

// ExecutionResult records one model execution for one technique.
type ExecutionResult struct {
	Technique        prompt.Technique `json:"technique"`
	Prompt           string           `json:"prompt"`
	Response         string           `json:"response,omitempty"`
	ElapsedSeconds   float64          `json:"elapsed_time"`
	PromptTokens     int              `json:"prompt_tokens"`
	CompletionTokens int              `json:"completion_tokens"`
	Success          bool             `json:"success"`
	Error            string           `json:"error,omitempty"`
}

// TechniqueResult pairs an execution with its scores.
type TechniqueResult struct {
	ExecutionResult
	Scores ScoreSet `json:"scores"`
}

// ComparisonRow summarizes one successful technique for ranking output.
type ComparisonRow struct {
	Technique      prompt.Technique `json:"technique"`
	Accuracy       float64          `json:"accuracy"`
	Completeness   float64          `json:"completeness"`
	Efficiency     float64          `json:"efficiency"`
	Overall        float64          `json:"overall"`
	LatencySeconds float64          `json:"latency"`
	TotalTokens    int              `json:"tokens"`
}

// Run aggregates one problem's benchmark: every technique's result in the
// fixed enumeration order, the ranked comparison, and the selected best
// technique. It exists only for the lifetime of one Benchmark call; callers
// serialize or persist it as they see fit.
type Run struct {
	Problem    dataset.Problem   `json:"problem"`
	Weights    WeightConfig      `json:"weights"`
	Results    []TechniqueResult `json:"results"`
	Comparison []ComparisonRow   `json:"comparison"`
	Best       prompt.Technique  `json:"best_technique"`
}

// BestResult returns the selected technique's full result.
func (r *Run) BestResult() TechniqueResult {
	for _, result := range r.Results {
		if result.Technique == r.Best {
			return result
		}
	}
	return TechniqueResult{}
}
