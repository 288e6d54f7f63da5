// internal/scoring/efficiency.go
package scoring

import (
	"math"
	"strings"
	"time"
)

const (
	// fastLatency and slowLatency bound the latency interpolation.
	fastLatency = 2 * time.Second
	slowLatency = 30 * time.Second

	// tokenBudgetLow and tokenBudgetHigh bound the token interpolation.
	tokenBudgetLow  = 100
	tokenBudgetHigh = 1000

	// concisenessFloor and concisenessCeiling are multiples of the category
	// baseline length between which the conciseness penalty ramps in.
	concisenessFloor   = 2.0
	concisenessCeiling = 8.0

	// midpointScore stands in for a component whose input is missing.
	midpointScore = 0.5

	latencyWeight     = 0.4
	tokenWeight       = 0.3
	concisenessWeight = 0.3
)

// EfficiencyScorer grades the resource cost of a response: latency against
// an acceptable ceiling, token usage against a budget, and length against
// the category baseline. Missing measurements score the midpoint rather
// than being treated as a fault.
type EfficiencyScorer struct{}

// Score returns the efficiency of a response in [0, 1].
func (EfficiencyScorer) Score(elapsed time.Duration, promptTokens, completionTokens int, response, category string) float64 {
	latency := latencyComponent(elapsed)
	tokens := tokenComponent(promptTokens + completionTokens)
	conciseness := concisenessComponent(response, category)
	return latency*latencyWeight + tokens*tokenWeight + conciseness*concisenessWeight
}

func latencyComponent(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return midpointScore
	}
	return interpolateDown(elapsed.Seconds(), fastLatency.Seconds(), slowLatency.Seconds())
}

func tokenComponent(totalTokens int) float64 {
	if totalTokens <= 0 {
		return midpointScore
	}
	return interpolateDown(float64(totalTokens), tokenBudgetLow, tokenBudgetHigh)
}

// concisenessComponent inverts the completeness sufficiency baseline:
// responses far longer than the category needs are penalized.
func concisenessComponent(response, category string) float64 {
	words := len(strings.Fields(response))
	if words == 0 {
		return 0.0
	}
	ratio := float64(words) / float64(baselineWords(category))
	return interpolateDown(ratio, concisenessFloor, concisenessCeiling)
}

// interpolateDown maps value <= lo to 1.0, value >= hi to 0.0, and
// interpolates linearly between.
func interpolateDown(value, lo, hi float64) float64 {
	if value <= lo {
		return 1.0
	}
	if value >= hi {
		return 0.0
	}
	return math.Max(0, 1.0-(value-lo)/(hi-lo))
}
