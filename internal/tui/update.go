package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/corpuslab/vsmsearch/internal/engine"
)

// performSearch runs the ranking engine in the background and reports
// back as a resultsMsg or errMsg.
func performSearch(eng *engine.Engine, query string, spelling, synonyms, soundex bool) tea.Cmd {
	return func() tea.Msg {
		hits, err := eng.Search(engine.SearchRequest{
			Query:    query,
			K:        20,
			Spelling: spelling,
			Synonyms: synonyms,
			Soundex:  soundex,
		})
		if err != nil {
			return errMsg{err}
		}
		return resultsMsg(hits)
	}
}

type resultsMsg []engine.SearchHit
type errMsg struct{ err error }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}

		switch m.state {
		case StateInput:
			switch msg.Type {
			case tea.KeyEnter:
				if m.query != "" {
					m.state = StateSearching
					return m, performSearch(m.eng, m.query, m.spelling, m.synonyms, m.soundex)
				}
			case tea.KeyEsc:
				return m, tea.Quit
			case tea.KeyBackspace:
				if len(m.query) > 0 {
					m.query = m.query[:len(m.query)-1]
				}
			case tea.KeyRunes:
				m.query += string(msg.Runes)
			case tea.KeySpace:
				m.query += " "
			}

		case StateBrowsing, StateError:
			switch msg.String() {
			case "q", "esc":
				m.state = StateInput
				m.results = nil
				m.err = nil
				m.cursor = 0
			case "up", "k":
				if m.cursor > 0 {
					m.cursor--
				}
			case "down", "j":
				if m.cursor < len(m.results)-1 {
					m.cursor++
				}
			}
		}

	case resultsMsg:
		m.results = msg
		m.state = StateBrowsing
		m.cursor = 0

	case errMsg:
		m.err = msg.err
		m.state = StateError

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}
