// internal/commands/suite.go
package promptbench

import (
	"fmt"
	"os"

	"github.com/k0kubun/pp"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/promptlab/promptbench/internal/benchmark"
	"github.com/promptlab/promptbench/internal/dataset"
	"github.com/promptlab/promptbench/internal/executor"
	"github.com/promptlab/promptbench/internal/report"
	"github.com/promptlab/promptbench/internal/resultstore"
	"github.com/promptlab/promptbench/internal/tui"
)

// suiteCmd benchmarks every problem in the configured dataset and prints
// the aggregate summary.
var suiteCmd = &cobra.Command{
	Use:   "suite",
	Short: "Run the full problem dataset and summarize technique wins",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		problems, err := loadProblems(cfg.DatasetPath)
		if err != nil {
			return err
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

		var summary *benchmark.Summary
		if cfg.NoTUI || !isatty.IsTerminal(os.Stdout.Fd()) {
			summary, err = tui.RunSuitePlain(ctx, orch, problems)
		} else {
			summary, err = tui.RunSuite(ctx, orch, problems)
		}
		if err != nil {
			return err
		}

		if DebugEnabled() {
			pp.Println(summary)
		}
		fmt.Fprintln(cmd.OutOrStdout(), report.RenderSummary(summary))

		store := resultstore.New(cfg.ResultsPath())
		for _, run := range summary.Runs {
			if err := store.Append(cfg.Host.Model, run); err != nil {
				report.Warnf("could not persist run for problem %d: %v", run.Problem.ID, err)
				break
			}
		}
		report.Successf("persisted %d runs to %s", len(summary.Runs), store.Path(cfg.Host.Model))
		return nil
	},
}

// loadProblems reads the configured dataset, falling back to the built-in
// sample set when no path is configured.
func loadProblems(path string) ([]dataset.Problem, error) {
	if path == "" {
		return dataset.Sample(), nil
	}
	return dataset.LoadFile(path)
}

func init() {
	rootCmd.AddCommand(suiteCmd)
}
