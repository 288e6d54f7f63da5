// internal/prompt/prompt.go
// Package prompt builds prompt variants for a fixed set of prompting
// techniques. Building is a pure string transform: the same problem and
// technique always produce a byte-identical prompt.
package prompt

import (
	"fmt"
	"strings"

	"github.com/promptlab/promptbench/internal/appconfig"
)

// Technique identifies one prompting strategy. The set is closed; adding a
// technique means adding a case to Build and a slot in All.
type Technique string

const (
	ZeroShot         Technique = "zero_shot"
	FewShot          Technique = "few_shot"
	ChainOfThought   Technique = "chain_of_thought"
	InstructionBased Technique = "instruction_based"
)

// All lists every technique in its fixed enumeration order. The order is
// load-bearing: the orchestrator's tie-break falls back to it.
var All = []Technique{ZeroShot, FewShot, ChainOfThought, InstructionBased}

// fewShotExamples are fixed worked problem/solution pairs prepended by the
// few-shot template. Constant across all problems.
var fewShotExamples = []struct {
	Problem  string
	Solution string
}{
	{"What is 12 + 8?", "12 + 8 = 20"},
	{"Calculate 3 * 7", "3 * 7 = 21"},
	{"Solve for x: x + 4 = 9", "x = 9 - 4 = 5"},
}

// Build maps a problem statement and technique to its prompt text. An
// unsupported technique is a programming error and surfaces as a
// ConfigurationError.
func Build(statement string, technique Technique) (string, error) {
	switch technique {
	case ZeroShot:
		return statement, nil
	case FewShot:
		return buildFewShot(statement), nil
	case ChainOfThought:
		return fmt.Sprintf("Solve the following problem. Reason step by step, then give the final answer.\n\nProblem: %s", statement), nil
	case InstructionBased:
		return fmt.Sprintf("Solve the following math problem.\nInstructions:\n- Show your work.\n- State the final numeric answer on its own line, prefixed with \"Answer:\".\n\nProblem: %s", statement), nil
	default:
		return "", &appconfig.ConfigurationError{
			Field:  "technique",
			Reason: fmt.Sprintf("unknown technique %q", string(technique)),
		}
	}
}

func buildFewShot(statement string) string {
	var examples []string
	for _, ex := range fewShotExamples {
		examples = append(examples, fmt.Sprintf("Problem: %s\nSolution: %s", ex.Problem, ex.Solution))
	}
	return fmt.Sprintf("Here are some examples:\n\n%s\n\nNow solve this problem:\nProblem: %s\nSolution:", strings.Join(examples, "\n\n"), statement)
}
