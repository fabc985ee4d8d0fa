package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/tinct/pkg/archive"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// RunListModel is the bubbletea model for interactive run browsing.
type RunListModel struct {
	Runs     []archive.Run
	Cursor   int
	Selected *archive.Run
	Height   int
	Offset   int
}

// NewRunListModel creates a new run list model.
func NewRunListModel(runs []archive.Run) RunListModel {
	return RunListModel{
		Runs:   runs,
		Height: 15,
	}
}

func (m RunListModel) Init() tea.Cmd {
	return nil
}

func (m RunListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Runs)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			run := m.Runs[m.Cursor]
			m.Selected = &run
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m RunListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Archived Runs"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Runs) {
		end = len(m.Runs)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		run := m.Runs[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		outcome := fmt.Sprintf("%d colors", run.NumColors)
		if !run.Found {
			outcome = "—"
		}

		rows = append(rows, []string{
			cursor,
			shortID(run.ID),
			run.Strategy,
			fmt.Sprintf("%d", run.Nodes),
			fmt.Sprintf("%d", run.MaxColors),
			outcome,
			formatRelativeTime(run.CreatedAt),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Run", "Strategy", "Nodes", "Budget", "Result", "When").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Runs) {
				return lipgloss.NewStyle()
			}
			run := m.Runs[actualIdx]
			isCurrent := actualIdx == m.Cursor

			base := lipgloss.NewStyle()
			if isCurrent {
				if run.Found {
					return base.Foreground(colorGreen).Bold(true)
				}
				return base.Foreground(colorYellow).Bold(true)
			}
			if !run.Found {
				return base.Foreground(colorDim)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Runs))))

	return b.String()
}

// browseRuns runs the interactive picker and returns the chosen run, or nil
// when the user quits without selecting.
func browseRuns(runs []archive.Run) (*archive.Run, error) {
	final, err := tea.NewProgram(NewRunListModel(runs)).Run()
	if err != nil {
		return nil, fmt.Errorf("run browser: %w", err)
	}
	m, ok := final.(RunListModel)
	if !ok {
		return nil, nil
	}
	return m.Selected, nil
}
