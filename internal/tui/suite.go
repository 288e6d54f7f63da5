// internal/tui/suite.go
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/promptlab/promptbench/internal/benchmark"
	"github.com/promptlab/promptbench/internal/dataset"
	"github.com/promptlab/promptbench/internal/util"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	currentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	helpStyle    = lipgloss.NewStyle().Faint(true)
)

type progressMsg benchmark.Progress

type doneMsg struct {
	summary *benchmark.Summary
	err     error
}

type suiteModel struct {
	spinner   spinner.Model
	cancel    context.CancelFunc
	start     time.Time
	total     int
	completed int
	lines     []string
	summary   *benchmark.Summary
	err       error
	cancelled bool
}

func newSuiteModel(total int, cancel context.CancelFunc) *suiteModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return &suiteModel{
		spinner: s,
		cancel:  cancel,
		start:   time.Now(),
		total:   total,
	}
}

func (m *suiteModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *suiteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			// Stop after the in-flight problem; the runner reports back
			// through doneMsg.
			m.cancelled = true
			m.cancel()
		}
		return m, nil

	case progressMsg:
		m.completed = msg.Index
		if msg.Err != nil {
			m.lines = append(m.lines, failStyle.Render(
				fmt.Sprintf("✗ problem %d: %v", msg.Problem.ID, msg.Err)))
		} else {
			m.lines = append(m.lines, doneStyle.Render(
				fmt.Sprintf("✓ problem %d → %s (%.3f)", msg.Problem.ID, msg.Run.Best, msg.Run.BestResult().Scores.Overall)))
		}
		return m, nil

	case doneMsg:
		m.summary = msg.summary
		m.err = msg.err
		return m, tea.Quit

	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m *suiteModel) View() string {
	var builder strings.Builder
	builder.WriteString(titleStyle.Render("Benchmark Suite"))
	builder.WriteString("\n\n")
	for _, line := range m.lines {
		builder.WriteString("  " + line + "\n")
	}
	if m.summary == nil {
		elapsed := time.Since(m.start).Seconds()
		status := fmt.Sprintf("problem %d/%d", m.completed+1, m.total)
		if m.cancelled {
			status = "stopping"
		}
		builder.WriteString(currentStyle.Render(
			fmt.Sprintf("\n  %s Benchmarking %s... %.1fs\n", m.spinner.View(), status, elapsed)))
		builder.WriteString(helpStyle.Render("\n  q: stop\n"))
	}
	return builder.String()
}

// RunSuite drives the orchestrator across the whole dataset behind a
// progress view. Pressing q cancels after the in-flight problem.
func RunSuite(ctx context.Context, orch *benchmark.Orchestrator, problems []dataset.Problem) (*benchmark.Summary, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := newSuiteModel(len(problems), cancel)
	program := tea.NewProgram(model)

	go func() {
		summary, err := orch.RunSuite(ctx, problems, func(p benchmark.Progress) {
			program.Send(progressMsg(p))
		})
		program.Send(doneMsg{summary: summary, err: err})
	}()

	final, err := program.Run()
	if err != nil {
		return nil, err
	}
	m := final.(*suiteModel)
	if m.err != nil {
		return nil, m.err
	}
	return m.summary, nil
}

// RunSuitePlain is the non-TTY fallback: one log line per problem,
// no screen control.
func RunSuitePlain(ctx context.Context, orch *benchmark.Orchestrator, problems []dataset.Problem) (*benchmark.Summary, error) {
	return orch.RunSuite(ctx, problems, func(p benchmark.Progress) {
		if p.Err != nil {
			fmt.Printf("[%d/%d] problem %d failed: %v\n", p.Index, p.Total, p.Problem.ID, p.Err)
			return
		}
		fmt.Printf("[%d/%d] problem %d (%s) → %s (overall %.3f)\n",
			p.Index, p.Total, p.Problem.ID, util.TruncateRunes(p.Problem.Statement, 50),
			p.Run.Best, p.Run.BestResult().Scores.Overall)
	})
}
