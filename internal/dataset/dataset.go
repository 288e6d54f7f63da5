// internal/dataset/dataset.go
// Package dataset manages math problems with ground-truth answers for
// benchmarking. Problems are immutable once created and referenced by
// value into the pipeline.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Problem categories. The set is open; unknown categories fall back to
// default scoring baselines.
const (
	CategoryArithmetic  = "arithmetic"
	CategoryAlgebra     = "algebra"
	CategoryWordProblem = "word_problem"
	CategoryGeometry    = "geometry"
)

// Problem is one math problem with its expected answer.
type Problem struct {
	ID          int    `json:"id"`
	Statement   string `json:"problem"`
	GroundTruth string `json:"answer"`
	Category    string `json:"category"`
}

// problemSchema describes a dataset file: a non-empty array of problem
// objects. Files are validated against it before any problem is loaded.
var problemSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type":     "object",
		"required": []string{"problem", "answer"},
		"properties": map[string]any{
			"id":       map[string]any{"type": "integer"},
			"problem":  map[string]any{"type": "string", "minLength": 1},
			"answer":   map[string]any{"type": "string", "minLength": 1},
			"category": map[string]any{"type": "string"},
		},
	},
}

// Validate checks raw dataset JSON against the problem schema and returns
// the individual violations, if any.
func Validate(raw []byte) ([]string, error) {
	schemaLoader := gojsonschema.NewGoLoader(problemSchema)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}
	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
	}
	return violations, nil
}

// LoadFile reads and validates a dataset file. Problems without an
// explicit ID are numbered by position; a missing category defaults to
// arithmetic-style scoring via the empty string.
func LoadFile(path string) ([]Problem, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading dataset: %w", err)
	}

	violations, err := Validate(raw)
	if err != nil {
		return nil, err
	}
	if len(violations) > 0 {
		return nil, fmt.Errorf("dataset %q is invalid: %s", path, strings.Join(violations, "; "))
	}

	var problems []Problem
	if err := json.Unmarshal(raw, &problems); err != nil {
		return nil, fmt.Errorf("error parsing dataset: %w", err)
	}
	for i := range problems {
		if problems[i].ID == 0 {
			problems[i].ID = i + 1
		}
	}
	return problems, nil
}

// SaveFile writes problems to a JSON dataset file.
func SaveFile(path string, problems []Problem) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating dataset file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(problems); err != nil {
		return fmt.Errorf("error writing dataset: %w", err)
	}
	return nil
}

// Sample returns the built-in benchmark problems.
func Sample() []Problem {
	return []Problem{
		{ID: 1, Statement: "What is 15 + 27?", GroundTruth: "42", Category: CategoryArithmetic},
		{ID: 2, Statement: "Calculate 144 / 12", GroundTruth: "12", Category: CategoryArithmetic},
		{ID: 3, Statement: "What is 7 * 8?", GroundTruth: "56", Category: CategoryArithmetic},
		{ID: 4, Statement: "Solve for x: 2x + 5 = 15", GroundTruth: "5", Category: CategoryAlgebra},
		{ID: 5, Statement: "If 3x = 21, what is x?", GroundTruth: "7", Category: CategoryAlgebra},
		{ID: 6, Statement: "Expand (x+1)^2", GroundTruth: "x^2+2x+1", Category: CategoryAlgebra},
		{ID: 7, Statement: "A shop sells pencils at 3 for $1. How many pencils can you buy with $5?", GroundTruth: "15", Category: CategoryWordProblem},
		{ID: 8, Statement: "Tom has 12 marbles and gives away a quarter of them. How many remain?", GroundTruth: "9", Category: CategoryWordProblem},
		{ID: 9, Statement: "What is the area of a rectangle 6 units wide and 7 units tall?", GroundTruth: "42", Category: CategoryGeometry},
		{ID: 10, Statement: "What fraction of a circle is a 90 degree sector?", GroundTruth: "1/4", Category: CategoryGeometry},
	}
}
