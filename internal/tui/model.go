// Package tui implements an interactive bubbletea browser over search
// results: type a query, watch it rank, move through the hit list.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/corpuslab/vsmsearch/internal/engine"
)

// AppState represents the current state of the TUI.
type AppState int

const (
	StateInput AppState = iota
	StateSearching
	StateBrowsing
	StateError
)

// Model holds the application state.
type Model struct {
	state          AppState
	query          string
	results        []engine.SearchHit
	cursor         int
	viewportOffset int
	err            error
	width          int
	height         int
	eng            *engine.Engine
	spelling       bool
	synonyms       bool
	soundex        bool
}

// NewModel creates a new TUI model bound to eng.
func NewModel(eng *engine.Engine, initialQuery string) Model {
	m := Model{
		state:    StateInput,
		query:    initialQuery,
		eng:      eng,
		cursor:   0,
		spelling: true,
		synonyms: true,
		soundex:  true,
	}

	if initialQuery != "" {
		m.state = StateSearching
	}

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	cmds = append(cmds, tea.EnterAltScreen)

	if m.query != "" {
		cmds = append(cmds, performSearch(m.eng, m.query, m.spelling, m.synonyms, m.soundex))
	}

	return tea.Batch(cmds...)
}
