package scoring

import "testing"

const steppedResponse = "Step 1: add 15 and 27.\nStep 2: the sum is 42.\nFinal answer: 42"

func TestCompletenessEmptyResponse(t *testing.T) {
	var scorer CompletenessScorer
	if got := scorer.Score("", "arithmetic"); got != 0.0 {
		t.Fatalf("empty response = %v, want 0.0", got)
	}
	if got := scorer.Score("   \n ", "arithmetic"); got != 0.0 {
		t.Fatalf("blank response = %v, want 0.0", got)
	}
}

func TestCompletenessStructuredBeatsBareNumber(t *testing.T) {
	var scorer CompletenessScorer
	structured := scorer.Score(steppedResponse, "arithmetic")
	bare := scorer.Score("42", "arithmetic")
	if structured <= bare {
		t.Fatalf("structured response (%v) should outscore bare number (%v)", structured, bare)
	}
}

func TestCompletenessBounded(t *testing.T) {
	var scorer CompletenessScorer
	long := steppedResponse
	for i := 0; i < 6; i++ {
		long += "\n" + steppedResponse
	}
	got := scorer.Score(long, "arithmetic")
	if got < 0.0 || got > 1.0 {
		t.Fatalf("completeness out of range: %v", got)
	}
}

func TestSufficiencyCapsVerbosity(t *testing.T) {
	padded := "word "
	for i := 0; i < 8; i++ {
		padded += padded
	}
	if got := sufficiencySignal(padded, "arithmetic"); got != sufficiencyCap {
		t.Fatalf("padded sufficiency = %v, want cap %v", got, sufficiencyCap)
	}
}

func TestExplanationDensityPenalizesBareNumbers(t *testing.T) {
	if got := explanationDensity("42"); got != 0.0 {
		t.Fatalf("bare number density = %v, want 0.0", got)
	}
	if got := explanationDensity("the sum of both numbers"); got != 1.0 {
		t.Fatalf("pure prose density = %v, want 1.0", got)
	}
}

func TestStructureSignal(t *testing.T) {
	if got := structureSignal("Final answer: 42"); got != 1.0 {
		t.Fatalf("answer marker = %v, want 1.0", got)
	}
	if got := structureSignal("thus we get it"); got != 0.5 {
		t.Fatalf("conclusion word = %v, want 0.5", got)
	}
	if got := structureSignal("just text"); got != 0.0 {
		t.Fatalf("no structure = %v, want 0.0", got)
	}
}

func TestBaselineWordsPerCategory(t *testing.T) {
	if baselineWords("word_problem") <= baselineWords("arithmetic") {
		t.Fatal("word problems should expect longer answers than arithmetic")
	}
	if baselineWords("unknown-category") != defaultBaselineWords {
		t.Fatalf("unknown category baseline = %d, want %d", baselineWords("unknown-category"), defaultBaselineWords)
	}
}
