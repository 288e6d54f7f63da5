// internal/commands/benchmark.go
package promptbench

import (
	"fmt"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/promptlab/promptbench/internal/benchmark"
	"github.com/promptlab/promptbench/internal/dataset"
	"github.com/promptlab/promptbench/internal/executor"
	"github.com/promptlab/promptbench/internal/report"
	"github.com/promptlab/promptbench/internal/resultstore"
)

// benchmarkCmd runs every prompting technique against a single problem and
// prints the ranked comparison.
var benchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Benchmark every prompting technique on a single problem",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		statement, _ := cmd.Flags().GetString("problem")
		answer, _ := cmd.Flags().GetString("answer")
		category, _ := cmd.Flags().GetString("category")

		problem := dataset.Problem{
			ID:          1,
			Statement:   statement,
			GroundTruth: answer,
			Category:    category,
		}

		exec, err := executor.New(cfg)
		if err != nil {
			return err
		}
		defer exec.Close()

		ctx := cmd.Context()
		if err := exec.Ping(ctx); err != nil {
			return fmt.Errorf("model host %s is not reachable: %w", cfg.Host.URL, err)
		}

		orch, err := benchmark.NewOrchestrator(exec, weightsFromConfig(cfg))
		if err != nil {
			return err
		}

		run, err := orch.Benchmark(ctx, problem)
		if err != nil {
			return err
		}

		if DebugEnabled() {
			pp.Println(run)
		}
		fmt.Fprintln(cmd.OutOrStdout(), report.RenderRun(run))

		store := resultstore.New(cfg.ResultsPath())
		if err := store.Append(cfg.Host.Model, run); err != nil {
			report.Warnf("could not persist run: %v", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(benchmarkCmd)

	benchmarkCmd.Flags().StringP("problem", "p", "", "math problem statement to benchmark")
	benchmarkCmd.Flags().StringP("answer", "a", "", "expected answer (optional, enables exact scoring)")
	benchmarkCmd.Flags().String("category", dataset.CategoryArithmetic, "problem category (arithmetic, algebra, word_problem, geometry)")
	_ = benchmarkCmd.MarkFlagRequired("problem")
}
