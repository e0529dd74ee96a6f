package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corpuslab/vsmsearch/internal/docfind"
	"github.com/corpuslab/vsmsearch/internal/docindex"
	"github.com/corpuslab/vsmsearch/internal/textnorm"
)

var docsCmd = &cobra.Command{
	Use:   "docs [name fragment]",
	Short: "Fuzzy-match indexed document filenames",
	Long: `Looks up indexed document filenames by approximate match,
entirely separate from the ranked query pipeline, for when you
remember part of a filename but not the right search terms.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		norm := textnorm.NewDefaultNormalizer()
		svc := docindex.NewService(cfg.CorpusDir, cfg.ResolveDataDir(), norm)
		if err := svc.Load(); err != nil {
			return fmt.Errorf("docs: %w", err)
		}

		limit, _ := cmd.Flags().GetInt("limit")
		finder := docfind.NewFinder(svc.Current())
		matches := finder.Find(args[0], limit)

		if len(matches) == 0 {
			fmt.Println("no matching filenames")
			return nil
		}
		for i, m := range matches {
			fmt.Printf("%2d. %-40s (doc %d, score %d)\n", i+1, m.Filename, m.DocID, m.Score)
		}
		return nil
	},
}
