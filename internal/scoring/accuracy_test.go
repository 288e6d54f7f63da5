package scoring

import "testing"

func TestScoreExactMatch(t *testing.T) {
	var scorer AccuracyScorer
	if got := scorer.Score("42", "42"); got != 1.0 {
		t.Fatalf("exact match = %v, want 1.0", got)
	}
	if got := scorer.Score("  42. ", "42"); got != 1.0 {
		t.Fatalf("exact match with punctuation = %v, want 1.0", got)
	}
	if got := scorer.Score("The Answer Is 42", "42"); got != 1.0 {
		t.Fatalf("case-folded answer line = %v, want 1.0", got)
	}
}

func TestScoreNumericEquivalence(t *testing.T) {
	var scorer AccuracyScorer
	baseline := scorer.Score("1/2", "1/2")
	if baseline != 1.0 {
		t.Fatalf("identity fraction = %v, want 1.0", baseline)
	}
	if got := scorer.Score("The answer is 0.5", "1/2"); got != baseline {
		t.Fatalf("decimal vs fraction = %v, want %v", got, baseline)
	}
	if got := scorer.Score("Result: 2/4", "0.5"); got != 1.0 {
		t.Fatalf("fraction vs decimal = %v, want 1.0", got)
	}
	if got := scorer.Score("about 1,000 total", "1000"); got != 1.0 {
		t.Fatalf("comma-formatted number = %v, want 1.0", got)
	}
}

func TestScoreSymbolicEquivalence(t *testing.T) {
	var scorer AccuracyScorer
	if got := scorer.Score("x^2+2x+1", "(x+1)^2"); got != 1.0 {
		t.Fatalf("expanded polynomial = %v, want 1.0", got)
	}
	if got := scorer.Score("Answer: (x+1)(x-1)", "x^2-1"); got != 1.0 {
		t.Fatalf("factored polynomial = %v, want 1.0", got)
	}
}

func TestScoreSubstringPartialCredit(t *testing.T) {
	var scorer AccuracyScorer
	got := scorer.Score("I believe 42 apples remain after the trade", "42 apples")
	if got != partialCredit {
		t.Fatalf("substring mention = %v, want %v", got, partialCredit)
	}
}

func TestScoreMismatch(t *testing.T) {
	var scorer AccuracyScorer
	if got := scorer.Score("The answer is 43", "42"); got != 0.0 {
		t.Fatalf("wrong numeric answer = %v, want 0.0", got)
	}
	if got := scorer.Score("I am not sure", "42"); got != 0.0 {
		t.Fatalf("no answer = %v, want 0.0", got)
	}
	if got := scorer.Score("", "42"); got != 0.0 {
		t.Fatalf("empty response = %v, want 0.0", got)
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	var scorer AccuracyScorer
	first := scorer.Score("Step 1: 15+27. Final answer: 42", "42")
	for i := 0; i < 5; i++ {
		if got := scorer.Score("Step 1: 15+27. Final answer: 42", "42"); got != first {
			t.Fatalf("score changed across runs: %v != %v", got, first)
		}
	}
}

func TestHeuristicScoreWithoutGroundTruth(t *testing.T) {
	var scorer AccuracyScorer
	rich := scorer.Score("Therefore the answer is 42", "")
	bare := scorer.Score("maybe", "")
	if rich <= bare {
		t.Fatalf("structured answer (%v) should outscore bare text (%v)", rich, bare)
	}
	if rich > 1.0 {
		t.Fatalf("heuristic score must be capped at 1.0, got %v", rich)
	}
}

func TestParseNumberToken(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"42", 42, true},
		{"-3.5", -3.5, true},
		{"3/4", 0.75, true},
		{"x+1", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := parseNumberToken(c.in)
		if ok != c.ok || (ok && got != c.want) {
			t.Fatalf("parseNumberToken(%q) = (%v, %v), want (%v, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestLastNumberTokenPrefersFinalNumber(t *testing.T) {
	got, ok := lastNumberToken("first 15, then 27, total 42")
	if !ok || got != 42 {
		t.Fatalf("lastNumberToken = (%v, %v), want (42, true)", got, ok)
	}
}
