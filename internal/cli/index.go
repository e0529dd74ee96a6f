package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corpuslab/vsmsearch/internal/docindex"
	"github.com/corpuslab/vsmsearch/internal/textnorm"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build (or rebuild) the index from the corpus directory",
	Long: `Scans the configured corpus directory for *.txt documents,
builds the positional inverted index plus its phonetic and k-gram
auxiliary structures, and atomically publishes the result to the data
directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		norm := textnorm.NewDefaultNormalizer()
		svc := docindex.NewService(cfg.CorpusDir, cfg.ResolveDataDir(), norm)

		err = svc.Rebuild(func(msg string) {
			fmt.Println(msg)
		})
		if err != nil {
			return fmt.Errorf("index build failed: %w", err)
		}

		snap := svc.Current()
		fmt.Printf("indexed %d document(s), %d term(s)\n", snap.NumDocs(), len(snap.TermDictionary))
		return nil
	},
}
