package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/corpuslab/vsmsearch/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse [query]",
	Short: "Launch the interactive result browser",
	Long:  `Starts an interactive terminal UI for typing queries and paging through ranked results.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		eng, err := buildEngine(cfg)
		if err != nil {
			return err
		}

		initialQuery := ""
		if len(args) > 0 {
			initialQuery = args[0]
		}

		model := tui.NewModel(eng, initialQuery)
		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("browse: %w", err)
		}
		return nil
	},
}
