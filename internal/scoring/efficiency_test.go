package scoring

import (
	"testing"
	"time"
)

func TestEfficiencyFastShortResponse(t *testing.T) {
	var scorer EfficiencyScorer
	got := scorer.Score(1*time.Second, 20, 30, "The answer is 42", "arithmetic")
	if got != 1.0 {
		t.Fatalf("fast, cheap response = %v, want 1.0", got)
	}
}

func TestEfficiencySlowResponsePenalized(t *testing.T) {
	var scorer EfficiencyScorer
	fast := scorer.Score(1*time.Second, 20, 30, "The answer is 42", "arithmetic")
	slow := scorer.Score(45*time.Second, 20, 30, "The answer is 42", "arithmetic")
	if slow >= fast {
		t.Fatalf("slow response (%v) should score below fast one (%v)", slow, fast)
	}
}

func TestEfficiencyMissingMeasurementsUseMidpoint(t *testing.T) {
	if got := latencyComponent(0); got != midpointScore {
		t.Fatalf("zero elapsed = %v, want midpoint %v", got, midpointScore)
	}
	if got := tokenComponent(0); got != midpointScore {
		t.Fatalf("missing tokens = %v, want midpoint %v", got, midpointScore)
	}
}

func TestEfficiencyTokenBudget(t *testing.T) {
	if got := tokenComponent(tokenBudgetLow); got != 1.0 {
		t.Fatalf("within budget = %v, want 1.0", got)
	}
	if got := tokenComponent(tokenBudgetHigh); got != 0.0 {
		t.Fatalf("over budget = %v, want 0.0", got)
	}
	mid := tokenComponent((tokenBudgetLow + tokenBudgetHigh) / 2)
	if mid <= 0.0 || mid >= 1.0 {
		t.Fatalf("interpolated token score out of range: %v", mid)
	}
}

func TestConcisenessPenalizesPadding(t *testing.T) {
	concise := "The sum of 15 and 27 is 42."
	padded := concise
	for i := 0; i < 7; i++ {
		padded += " " + concise
	}
	c := concisenessComponent(concise, "arithmetic")
	p := concisenessComponent(padded, "arithmetic")
	if p >= c {
		t.Fatalf("padded response (%v) should score below concise one (%v)", p, c)
	}
	if got := concisenessComponent("", "arithmetic"); got != 0.0 {
		t.Fatalf("empty response conciseness = %v, want 0.0", got)
	}
}

func TestEfficiencyScoreBounded(t *testing.T) {
	var scorer EfficiencyScorer
	got := scorer.Score(0, 0, 0, "", "algebra")
	if got < 0.0 || got > 1.0 {
		t.Fatalf("efficiency out of range: %v", got)
	}
}
