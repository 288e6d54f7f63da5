// internal/scoring/completeness.go
package scoring

import (
	"math"
	"regexp"
	"strings"
)

// stepSaturation is the step-signal count at which the step score maxes out.
const stepSaturation = 5

// sufficiencyCap stops verbosity beyond the category baseline from raising
// the sufficiency signal.
const sufficiencyCap = 1.0

var (
	numberedStepPattern = regexp.MustCompile(`(?im)\b(?:step\s+)?\d+[.):]`)
	bulletPattern       = regexp.MustCompile(`(?m)^\s*[-*•]\s`)
	answerMarkerPattern = regexp.MustCompile(`(?i)(?:answer|result|solution|final|therefore)\s*[:\-=]`)
	connectorWords      = []string{"first", "second", "third", "next", "then", "finally", "therefore"}
	conclusionWords     = []string{"therefore", "thus", "hence", "so", "conclusion", "finally"}
	numericWordPattern  = regexp.MustCompile(`\d`)
)

// categoryBaselineWords is the minimum expected answer length per problem
// category. The completeness sufficiency signal and the efficiency
// conciseness signal share this baseline.
var categoryBaselineWords = map[string]int{
	"arithmetic":   8,
	"algebra":      15,
	"word_problem": 25,
	"geometry":     20,
}

const defaultBaselineWords = 12

func baselineWords(category string) int {
	if words, ok := categoryBaselineWords[strings.ToLower(strings.TrimSpace(category))]; ok {
		return words
	}
	return defaultBaselineWords
}

// CompletenessScorer grades the structural quality of a response: step
// presence, explanation density, a delimited final answer, and sufficient
// length for the problem category. The four signals combine in fixed equal
// quarters; that sub-weighting is an implementation constant, independent
// of the top-level metric weights.
type CompletenessScorer struct{}

// Score returns the completeness of a response in [0, 1].
func (CompletenessScorer) Score(response, category string) float64 {
	if strings.TrimSpace(response) == "" {
		return 0.0
	}
	steps := stepSignal(response)
	density := explanationDensity(response)
	structure := structureSignal(response)
	sufficiency := sufficiencySignal(response, category)
	return (steps + density + structure + sufficiency) / 4.0
}

// stepSignal counts structural reasoning markers (numbered steps, bullets,
// line breaks, connector words) and saturates at stepSaturation.
func stepSignal(response string) float64 {
	count := len(numberedStepPattern.FindAllString(response, -1))
	count += len(bulletPattern.FindAllString(response, -1))

	lower := strings.ToLower(response)
	for _, word := range connectorWords {
		count += strings.Count(lower, word)
	}

	for _, line := range strings.Split(response, "\n")[1:] {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}

	return math.Min(float64(count)/stepSaturation, 1.0)
}

// explanationDensity is the ratio of non-numeric words to total tokens,
// penalizing answers that are bare numbers.
func explanationDensity(response string) float64 {
	words := strings.Fields(response)
	if len(words) == 0 {
		return 0.0
	}
	nonNumeric := 0
	for _, word := range words {
		if !numericWordPattern.MatchString(word) {
			nonNumeric++
		}
	}
	return float64(nonNumeric) / float64(len(words))
}

// structureSignal rewards a clearly delimited final answer; a conclusion
// word alone earns half credit.
func structureSignal(response string) float64 {
	if answerMarkerPattern.MatchString(response) {
		return 1.0
	}
	lower := strings.ToLower(response)
	for _, word := range conclusionWords {
		if strings.Contains(lower, word) {
			return 0.5
		}
	}
	return 0.0
}

// sufficiencySignal compares response length to the category baseline,
// capped so padding cannot raise the score.
func sufficiencySignal(response, category string) float64 {
	words := len(strings.Fields(response))
	baseline := baselineWords(category)
	return math.Min(float64(words)/float64(baseline), sufficiencyCap)
}
