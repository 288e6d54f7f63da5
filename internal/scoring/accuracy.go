// internal/scoring/accuracy.go
// Package scoring implements the three independent response scorers. Every
// scorer is a pure function of its inputs and returns a value in [0, 1].
package scoring

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/promptlab/promptbench/internal/mathexpr"
)

const (
	// numericTolerance bounds the relative/absolute difference accepted by
	// the numeric comparison strategy.
	numericTolerance = 1e-6
	// partialCredit is awarded when the ground truth only appears as a
	// substring of the response. Heuristic and tunable, not load-bearing.
	partialCredit = 0.5
)

var (
	answerLinePattern = regexp.MustCompile(`(?i)(?:answer|result|solution)\s*(?:is|[:\-=])\s*([^\n]+)`)
	numberPattern     = regexp.MustCompile(`-?\d+(?:\.\d+)?(?:/\d+)?`)
	reasoningWords    = []string{"therefore", "because", "thus", "so"}
)

// AccuracyScorer grades a response against a ground-truth answer using
// layered matching strategies, cheapest first. Parsing failures at any
// stage fall through to the next strategy; they are never errors.
type AccuracyScorer struct{}

// Score returns 1.0 for an exact, numeric, or symbolic match, partial
// credit when the ground truth is merely mentioned, and 0.0 otherwise.
// An empty ground truth switches to heuristic quality scoring.
func (AccuracyScorer) Score(response, groundTruth string) float64 {
	if strings.TrimSpace(response) == "" {
		return 0.0
	}
	if strings.TrimSpace(groundTruth) == "" {
		return heuristicScore(response)
	}

	expected := normalizeAnswer(groundTruth)
	candidates := extractCandidates(response)

	for _, candidate := range candidates {
		if normalizeAnswer(candidate) == expected {
			return 1.0
		}
	}

	if expectedValue, ok := parseNumberToken(groundTruth); ok {
		if value, ok := lastNumberToken(response); ok && withinTolerance(value, expectedValue) {
			return 1.0
		}
	}

	for _, candidate := range candidates {
		if equivalent, err := mathexpr.Equivalent(candidate, groundTruth); err == nil && equivalent {
			return 1.0
		}
	}

	if expected != "" && strings.Contains(normalizeAnswer(response), expected) {
		return partialCredit
	}

	return 0.0
}

// extractCandidates pulls likely answer strings out of a response:
// "Answer:"-style captures, the final non-empty line, and the last
// number-like token. Duplicates are dropped, order preserved.
func extractCandidates(response string) []string {
	var candidates []string

	for _, match := range answerLinePattern.FindAllStringSubmatch(response, -1) {
		candidates = append(candidates, strings.TrimSpace(match[1]))
	}

	lines := strings.Split(response, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			candidates = append(candidates, line)
			break
		}
	}

	if numbers := numberPattern.FindAllString(response, -1); len(numbers) > 0 {
		candidates = append(candidates, numbers[len(numbers)-1])
	}

	seen := make(map[string]bool, len(candidates))
	unique := candidates[:0]
	for _, c := range candidates {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		unique = append(unique, c)
	}
	return unique
}

// normalizeAnswer trims, case-folds, strips wrapping quotes/brackets and
// trailing punctuation, collapses whitespace, and drops thousands commas.
func normalizeAnswer(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, ",", "")
	s = strings.Join(strings.Fields(s), " ")
	s = strings.Trim(s, " \t\"'`()[]{}")
	s = strings.TrimRight(s, ".,;:!?")
	return s
}

// lastNumberToken returns the numeric value of the last number-like token
// (integer, decimal, or simple fraction) in the text.
func lastNumberToken(text string) (float64, bool) {
	matches := numberPattern.FindAllString(strings.ReplaceAll(text, ",", ""), -1)
	if len(matches) == 0 {
		return 0, false
	}
	return parseNumberToken(matches[len(matches)-1])
}

// parseNumberToken parses integers, decimals, and "a/b" fractions.
func parseNumberToken(s string) (float64, bool) {
	s = normalizeAnswer(s)
	if s == "" {
		return 0, false
	}
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, errN := strconv.ParseFloat(strings.TrimSpace(num), 64)
		d, errD := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if errN != nil || errD != nil || d == 0 {
			return 0, false
		}
		return n / d, true
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

func withinTolerance(actual, expected float64) bool {
	diff := math.Abs(actual - expected)
	return diff <= numericTolerance*math.Max(1, math.Abs(expected))
}

// heuristicScore estimates answer quality when no ground truth exists:
// a base score plus bonuses for numeric content, reasoning words, and a
// clear answer marker.
func heuristicScore(response string) float64 {
	score := 0.5
	if numberPattern.MatchString(response) {
		score += 0.2
	}
	lower := strings.ToLower(response)
	for _, word := range reasoningWords {
		if strings.Contains(lower, word) {
			score += 0.1
			break
		}
	}
	if answerLinePattern.MatchString(response) {
		score += 0.2
	}
	return math.Min(score, 1.0)
}
