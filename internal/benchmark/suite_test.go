package benchmark

import (
	"context"
	"fmt"
	"testing"

	"github.com/promptlab/promptbench/internal/dataset"
	"github.com/promptlab/promptbench/internal/prompt"
)

func TestRunSuiteAggregates(t *testing.T) {
	problems := dataset.Sample()
	orch := newTestOrchestrator(t, &fakeExecutor{})

	var progressed int
	summary, err := orch.RunSuite(context.Background(), problems, func(p Progress) {
		progressed++
		if p.Total != len(problems) {
			t.Fatalf("progress total = %d, want %d", p.Total, len(problems))
		}
		if p.Index != progressed {
			t.Fatalf("progress index = %d, want %d", p.Index, progressed)
		}
	})
	if err != nil {
		t.Fatalf("RunSuite: %v", err)
	}

	if summary.TotalProblems != len(problems) {
		t.Fatalf("total problems = %d, want %d", summary.TotalProblems, len(problems))
	}
	if summary.Completed != len(problems) || summary.Failed != 0 {
		t.Fatalf("completed=%d failed=%d, want %d/0", summary.Completed, summary.Failed, len(problems))
	}
	if progressed != len(problems) {
		t.Fatalf("progress callbacks = %d, want %d", progressed, len(problems))
	}
	if len(summary.Runs) != len(problems) {
		t.Fatalf("runs = %d, want %d", len(summary.Runs), len(problems))
	}

	totalWins := 0
	for _, wins := range summary.Wins {
		totalWins += wins
	}
	if totalWins != summary.Completed {
		t.Fatalf("total wins = %d, want %d", totalWins, summary.Completed)
	}

	categoryWins := 0
	for _, perTechnique := range summary.CategoryWins {
		for _, wins := range perTechnique {
			categoryWins += wins
		}
	}
	if categoryWins != summary.Completed {
		t.Fatalf("category wins = %d, want %d", categoryWins, summary.Completed)
	}

	for technique, average := range summary.AverageOverall {
		if average < 0 || average > 1 {
			t.Fatalf("average overall for %s out of range: %v", technique, average)
		}
	}
}

func TestRunSuiteCountsFailedProblems(t *testing.T) {
	failures := make(map[prompt.Technique]error, len(prompt.All))
	for _, technique := range prompt.All {
		failures[technique] = fmt.Errorf("model unavailable")
	}
	orch := newTestOrchestrator(t, &fakeExecutor{failures: failures})

	problems := dataset.Sample()[:3]
	var failedProgress int
	summary, err := orch.RunSuite(context.Background(), problems, func(p Progress) {
		if p.Err != nil {
			failedProgress++
		}
		if p.Run != nil {
			t.Fatalf("failed problem %d should not carry a run", p.Index)
		}
	})
	if err != nil {
		t.Fatalf("RunSuite should tolerate per-problem failures: %v", err)
	}
	if summary.Failed != len(problems) || summary.Completed != 0 {
		t.Fatalf("failed=%d completed=%d, want %d/0", summary.Failed, summary.Completed, len(problems))
	}
	if failedProgress != len(problems) {
		t.Fatalf("failure progress callbacks = %d, want %d", failedProgress, len(problems))
	}
	if len(summary.Wins) != 0 {
		t.Fatalf("no wins expected, got %v", summary.Wins)
	}
}

func TestRunSuiteHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	orch := newTestOrchestrator(t, &fakeExecutor{})
	if _, err := orch.RunSuite(ctx, dataset.Sample(), nil); err == nil {
		t.Fatal("expected an error from a cancelled context")
	}
}
