package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corpuslab/vsmsearch/internal/engine"
	appErrors "github.com/corpuslab/vsmsearch/internal/errors"
)

var queryCmd = &cobra.Command{
	Use:   "query [terms...]",
	Short: "Run a single ranked query against the index",
	Long: `Expands the given query (lemmatization, optional spelling
correction, synonym expansion, and Soundex phonetic matching) and
ranks the corpus against it by cosine similarity, printing the top
results.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		eng, err := buildEngine(cfg)
		if err != nil {
			return err
		}

		k, _ := cmd.Flags().GetInt("k")
		if k == 0 {
			k = cfg.DefaultK
		}
		spelling, _ := cmd.Flags().GetBool("spelling")
		synonyms, _ := cmd.Flags().GetBool("synonyms")
		soundex, _ := cmd.Flags().GetBool("soundex")
		format, _ := cmd.Flags().GetString("format")

		hits, err := eng.Search(engine.SearchRequest{
			Query:    strings.Join(args, " "),
			K:        k,
			Spelling: spelling,
			Synonyms: synonyms,
			Soundex:  soundex,
		})
		if err != nil {
			return reportSearchError(err)
		}

		if format == "json" {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(hits)
		}

		if len(hits) == 0 {
			fmt.Println("no matching documents")
			return nil
		}
		for i, h := range hits {
			fmt.Printf("%2d. %-40s %.4f\n", i+1, h.Filename, h.Score)
		}
		return nil
	},
}

// reportSearchError maps internal error kinds to a process-friendly
// message instead of a raw Go error dump.
func reportSearchError(err error) error {
	switch {
	case err == appErrors.ErrEmptyQuery:
		return fmt.Errorf("query must not be empty")
	case err == appErrors.ErrNotReady:
		return fmt.Errorf("index not loaded yet; run 'vsmsearch index' first")
	default:
		return err
	}
}
