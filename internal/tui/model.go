// Package tui is an interactive viewer for projection results: a scrollable
// year-by-year table with a breakdown of the selected year.
package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/finsim/finsim/internal/calculation"
	"github.com/finsim/finsim/internal/config"
	"github.com/finsim/finsim/internal/domain"
	"github.com/finsim/finsim/internal/output"
)

// Model is the TUI application state.
type Model struct {
	planPath string
	plan     *domain.Plan
	result   *domain.ProjectionResult

	years table.Model

	width  int
	height int

	err error
}

// NewModel creates the application model for a plan file. The projection runs
// on Init.
func NewModel(planPath string) Model {
	columns := []table.Column{
		{Title: "Year", Width: 6},
		{Title: "Income", Width: 16},
		{Title: "Outcome", Width: 16},
		{Title: "Balance", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(styles)

	return Model{planPath: planPath, years: t}
}

type projectionDoneMsg struct {
	plan   *domain.Plan
	result *domain.ProjectionResult
}

type projectionErrMsg struct{ err error }

func (m Model) Init() tea.Cmd {
	return m.runProjection
}

func (m Model) runProjection() tea.Msg {
	plan, err := config.NewInputParser().LoadFromFile(m.planPath)
	if err != nil {
		return projectionErrMsg{err}
	}

	result, err := calculation.NewEngine().Project(plan)
	if err != nil {
		return projectionErrMsg{err}
	}

	return projectionDoneMsg{plan: plan, result: result}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if msg.Height > 14 {
			m.years.SetHeight(msg.Height - 14)
		}
		return m, nil

	case projectionDoneMsg:
		m.plan = msg.plan
		m.result = msg.result
		m.years.SetRows(yearRows(msg.result))
		return m, nil

	case projectionErrMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.years, cmd = m.years.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.err != nil {
		return ErrorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.result == nil {
		return StatusBarStyle.Render("Running projection...")
	}

	title := TitleStyle.Render(fmt.Sprintf("Balance Projection: %s", m.planPath))
	summary := SummaryStyle.Render(m.selectedYearSummary())
	status := StatusBarStyle.Render(fmt.Sprintf(
		"total after %d years: %s   ↑/↓ select year · q quit",
		m.result.Years(), output.FormatMoney(m.result.Total)))

	return lipgloss.JoinVertical(lipgloss.Left, title, m.years.View(), summary, status)
}

func (m Model) selectedYearSummary() string {
	idx := m.years.Cursor()
	if idx < 0 || idx >= len(m.result.History) {
		return ""
	}
	yb := &m.result.History[idx]

	s := fmt.Sprintf("Year %d: income %s, outcome %s\n",
		yb.Year, output.FormatMoney(yb.Income), output.FormatMoney(yb.Outcome))
	for i := range yb.Salaries {
		sb := &yb.Salaries[i]
		s += fmt.Sprintf("  %s: %s net\n", sb.Title, output.FormatMoney(sb.NetPay))
	}
	for i := range yb.Categories {
		cb := &yb.Categories[i]
		s += fmt.Sprintf("  %s: %s\n", cb.Title, output.FormatMoney(cb.Spent))
	}
	return s
}

func yearRows(result *domain.ProjectionResult) []table.Row {
	rows := make([]table.Row, 0, len(result.History))
	for i := range result.History {
		yb := &result.History[i]
		rows = append(rows, table.Row{
			strconv.Itoa(yb.Year),
			output.FormatMoney(yb.Income),
			output.FormatMoney(yb.Outcome),
			output.FormatMoney(yb.Balance()),
		})
	}
	return rows
}
