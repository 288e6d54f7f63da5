// internal/report/report.go
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/promptlab/promptbench/internal/benchmark"
	"github.com/promptlab/promptbench/internal/prompt"
	"github.com/promptlab/promptbench/internal/util"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	bestStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	rowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	failedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// RenderRun renders one problem's ranked comparison table with the
// selected technique highlighted.
func RenderRun(run *benchmark.Run) string {
	var builder strings.Builder

	builder.WriteString(titleStyle.Render(fmt.Sprintf("Problem %d: %s", run.Problem.ID, util.TruncateRunes(run.Problem.Statement, 70))))
	builder.WriteString("\n")
	if run.Problem.GroundTruth != "" {
		builder.WriteString(faintStyle.Render(fmt.Sprintf("Expected: %s", run.Problem.GroundTruth)))
		builder.WriteString("\n")
	}
	builder.WriteString("\n")

	header := fmt.Sprintf("%-20s %10s %14s %12s %10s %10s %8s",
		"TECHNIQUE", "ACCURACY", "COMPLETENESS", "EFFICIENCY", "OVERALL", "TIME", "TOKENS")
	builder.WriteString(headerStyle.Render(header))
	builder.WriteString("\n")

	for _, row := range run.Comparison {
		line := fmt.Sprintf("%-20s %10.3f %14.3f %12.3f %10.3f %9.2fs %8d",
			row.Technique, row.Accuracy, row.Completeness, row.Efficiency,
			row.Overall, row.LatencySeconds, row.TotalTokens)
		if row.Technique == run.Best {
			builder.WriteString(bestStyle.Render(line + "  ← best"))
		} else {
			builder.WriteString(rowStyle.Render(line))
		}
		builder.WriteString("\n")
	}

	for _, result := range run.Results {
		if !result.Success {
			builder.WriteString(failedStyle.Render(fmt.Sprintf("%-20s failed: %s", result.Technique, result.Error)))
			builder.WriteString("\n")
		}
	}

	best := run.BestResult()
	builder.WriteString("\n")
	builder.WriteString(faintStyle.Render(fmt.Sprintf("Best response (%s): %s", run.Best, util.TruncateRunes(best.Response, 200))))
	builder.WriteString("\n")
	return builder.String()
}

// RenderSummary renders the whole-suite rollup: per-technique wins and
// averages, then the per-category winner breakdown.
func RenderSummary(summary *benchmark.Summary) string {
	var builder strings.Builder

	builder.WriteString(titleStyle.Render("Suite Summary"))
	builder.WriteString("\n\n")
	builder.WriteString(rowStyle.Render(fmt.Sprintf("Problems: %d   Completed: %d   Failed: %d   Elapsed: %.1fs",
		summary.TotalProblems, summary.Completed, summary.Failed, summary.ElapsedSeconds)))
	builder.WriteString("\n\n")

	header := fmt.Sprintf("%-20s %6s %14s", "TECHNIQUE", "WINS", "AVG OVERALL")
	builder.WriteString(headerStyle.Render(header))
	builder.WriteString("\n")
	for _, technique := range prompt.All {
		line := fmt.Sprintf("%-20s %6d %14.3f",
			technique, summary.Wins[technique], summary.AverageOverall[technique])
		builder.WriteString(rowStyle.Render(line))
		builder.WriteString("\n")
	}

	if len(summary.CategoryWins) > 0 {
		builder.WriteString("\n")
		builder.WriteString(headerStyle.Render("Wins by category"))
		builder.WriteString("\n")

		categories := make([]string, 0, len(summary.CategoryWins))
		for category := range summary.CategoryWins {
			categories = append(categories, category)
		}
		sort.Strings(categories)

		for _, category := range categories {
			var parts []string
			for _, technique := range prompt.All {
				if wins := summary.CategoryWins[category][technique]; wins > 0 {
					parts = append(parts, fmt.Sprintf("%s: %d", technique, wins))
				}
			}
			builder.WriteString(rowStyle.Render(fmt.Sprintf("%-16s %s", category, strings.Join(parts, "  "))))
			builder.WriteString("\n")
		}
	}
	return builder.String()
}

// Successf prints a green status line.
func Successf(format string, args ...interface{}) {
	color.Green(format, args...)
}

// Warnf prints a yellow status line.
func Warnf(format string, args ...interface{}) {
	color.Yellow(format, args...)
}

// Errorf prints a red status line.
func Errorf(format string, args ...interface{}) {
	color.Red(format, args...)
}
