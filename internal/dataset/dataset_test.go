package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateAcceptsWellFormedDataset(t *testing.T) {
	raw := []byte(`[{"problem": "What is 1+1?", "answer": "2", "category": "arithmetic"}]`)
	violations, err := Validate(raw)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if len(violations) != 0 {
		t.Fatalf("expected no violations, got %v", violations)
	}
}

func TestValidateRejectsMissingAnswer(t *testing.T) {
	raw := []byte(`[{"problem": "What is 1+1?"}]`)
	violations, err := Validate(raw)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if len(violations) == 0 {
		t.Fatal("expected violations for missing answer field")
	}
}

func TestValidateRejectsEmptyDataset(t *testing.T) {
	violations, err := Validate([]byte(`[]`))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if len(violations) == 0 {
		t.Fatal("expected violations for empty dataset")
	}
}

func TestLoadFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "problems.json")
	if err := SaveFile(path, Sample()); err != nil {
		t.Fatalf("SaveFile error: %v", err)
	}

	problems, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if len(problems) != len(Sample()) {
		t.Fatalf("expected %d problems, got %d", len(Sample()), len(problems))
	}
	if problems[0].Statement != "What is 15 + 27?" {
		t.Fatalf("unexpected first problem: %q", problems[0].Statement)
	}
}

func TestLoadFileAssignsMissingIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "problems.json")
	raw := `[
        {"problem": "What is 1+1?", "answer": "2"},
        {"problem": "What is 2+2?", "answer": "4"}
    ]`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	problems, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if problems[0].ID != 1 || problems[1].ID != 2 {
		t.Fatalf("expected positional IDs 1 and 2, got %d and %d", problems[0].ID, problems[1].ID)
	}
}

func TestLoadFileRejectsInvalidDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "problems.json")
	if err := os.WriteFile(path, []byte(`[{"problem": ""}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for schema-invalid dataset")
	}
}

func TestSampleCoversCoreCategories(t *testing.T) {
	categories := map[string]bool{}
	for _, p := range Sample() {
		categories[p.Category] = true
	}
	for _, want := range []string{CategoryArithmetic, CategoryAlgebra, CategoryWordProblem, CategoryGeometry} {
		if !categories[want] {
			t.Fatalf("sample dataset missing category %q", want)
		}
	}
}
