// internal/commands/dataset.go
package promptbench

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/promptlab/promptbench/internal/dataset"
	"github.com/promptlab/promptbench/internal/report"
	"github.com/promptlab/promptbench/internal/util"
)

// datasetCmd groups dataset-related CLI commands.
var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Group commands for inspecting problem datasets",
}

// datasetListCmd prints the configured dataset (or the built-in sample set).
var datasetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the problems in the configured dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		problems, err := loadProblems(GetConfig().DatasetPath)
		if err != nil {
			return err
		}
		for _, problem := range problems {
			fmt.Fprintf(cmd.OutOrStdout(), "%3d  %-12s %-60s expected: %s\n",
				problem.ID, problem.Category, util.TruncateRunes(problem.Statement, 58), problem.GroundTruth)
		}
		return nil
	},
}

// datasetValidateCmd checks a dataset file against the problem schema.
var datasetValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a dataset JSON file against the problem schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("could not read dataset file: %w", err)
		}

		violations, err := dataset.Validate(raw)
		if err != nil {
			return err
		}
		if len(violations) > 0 {
			for _, violation := range violations {
				report.Errorf("  %s", violation)
			}
			return fmt.Errorf("%s: %d schema violations", args[0], len(violations))
		}

		problems, err := dataset.LoadFile(args[0])
		if err != nil {
			return err
		}
		report.Successf("%s: %d problems, schema OK", args[0], len(problems))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(datasetCmd)
	datasetCmd.AddCommand(datasetListCmd)
	datasetCmd.AddCommand(datasetValidateCmd)
}
