package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	scoreStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	dimStyle      = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	selectedStyle = lipgloss.NewStyle().Bold(true)
)

func (m Model) View() string {
	var s string

	switch m.state {
	case StateInput:
		s += titleStyle.Render("vsmsearch") + "\n\n"
		s += "Enter your query:\n"
		s += "> " + m.query + "█\n\n"
		s += dimStyle.Render("(Press Enter to search, Esc to quit)")

	case StateSearching:
		s += "Ranking documents for " + selectedStyle.Render(m.query) + "...\n"

	case StateBrowsing:
		s += fmt.Sprintf("Found %d result(s) for %s %s\n\n",
			len(m.results), selectedStyle.Render(m.query), dimStyle.Render("(q to search again)"))

		start := 0
		end := len(m.results)
		if m.height > 5 && end > m.height-5 {
			end = m.height - 5
		}

		for i := start; i < end; i++ {
			cursor := "  "
			hit := m.results[i]
			line := fmt.Sprintf("%s  %s", hit.Filename, scoreStyle.Render(fmt.Sprintf("%.4f", hit.Score)))

			if m.cursor == i {
				cursor = cursorStyle.Render("> ")
				line = selectedStyle.Render(line)
			}
			s += cursor + line + "\n"
		}

		s += "\n" + dimStyle.Render("(Use arrow keys to navigate, q to go back)")

	case StateError:
		s += errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n"
		s += dimStyle.Render("(Press q to try again)")
	}

	return s
}
