// Package cli provides the command-line interface for vsmsearch.
//
// This package implements all CLI commands using the Cobra CLI
// framework: rebuilding the index, running a single query, browsing
// results interactively, fuzzy filename lookup, and inspecting query
// history. Execute is the main entry point.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corpuslab/vsmsearch/internal/cache"
	"github.com/corpuslab/vsmsearch/internal/config"
	"github.com/corpuslab/vsmsearch/internal/constants"
	"github.com/corpuslab/vsmsearch/internal/docindex"
	"github.com/corpuslab/vsmsearch/internal/engine"
	"github.com/corpuslab/vsmsearch/internal/history"
	"github.com/corpuslab/vsmsearch/internal/metrics"
	"github.com/corpuslab/vsmsearch/internal/textnorm"
	"github.com/corpuslab/vsmsearch/internal/version"
)

var rootCmd = &cobra.Command{
	Use:     "vsmsearch [query]",
	Short:   "Rank a small text corpus with a TF-IDF vector space model",
	Version: version.Version,
	Long: `vsmsearch indexes a directory of plain-text documents and ranks
them against natural-language queries using cosine similarity over
TF-IDF term vectors, with optional spelling correction, synonym
expansion, and phonetic (Soundex) matching.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return queryCmd.RunE(cmd, args)
	},
}

// Execute runs the root command and handles all CLI interactions.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(historyCmd)

	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("corpus", "", "Corpus directory (overrides config)")
	rootCmd.PersistentFlags().String("data", "", "Index data directory (overrides config)")

	queryCmd.Flags().IntP("k", "k", 0, "Number of results to return (default from config)")
	queryCmd.Flags().Bool("spelling", true, "Enable spelling correction")
	queryCmd.Flags().Bool("synonyms", true, "Enable synonym expansion")
	queryCmd.Flags().Bool("soundex", true, "Enable phonetic (Soundex) expansion")
	queryCmd.Flags().String("format", "list", "Output format: list|json")

	browseCmd.Flags().Bool("spelling", true, "Not read: browse always enables spelling correction")
	browseCmd.Flags().Bool("synonyms", true, "Not read: browse always enables synonym expansion")
	browseCmd.Flags().Bool("soundex", true, "Not read: browse always enables phonetic (Soundex) expansion")

	docsCmd.Flags().IntP("limit", "l", 10, "Maximum number of fuzzy matches to show")

	historyCmd.Flags().Int("limit", 10, "Maximum number of entries to show")
	historyCmd.Flags().Bool("top", false, "Show most frequent queries instead of recent ones")
	historyCmd.Flags().Bool("clear", false, "Clear query history")
}

// loadConfig resolves the active config from --config, falling back to
// defaults, then applies --corpus/--data overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	if path != "" {
		cfg, err = config.LoadFile(path)
		if err != nil {
			return nil, err
		}
	} else {
		cfg = config.DefaultConfig()
	}

	if corpus, _ := cmd.Flags().GetString("corpus"); corpus != "" {
		cfg.CorpusDir = corpus
	}
	if data, _ := cmd.Flags().GetString("data"); data != "" {
		cfg.DataDir = data
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildEngine wires a full Engine from configuration, loading a
// previously persisted snapshot if one exists. It does not rebuild.
func buildEngine(cfg *config.Config) (*engine.Engine, error) {
	norm := textnorm.NewDefaultNormalizer()
	svc := docindex.NewService(cfg.CorpusDir, cfg.ResolveDataDir(), norm)

	if err := svc.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: no usable index loaded yet (%v); run 'vsmsearch index' first\n", err)
	}

	var qcache *cache.QueryCache
	if cfg.CacheEnabled {
		qcache = cache.NewQueryCache(constants.DefaultCacheCapacity, constants.DefaultCacheTTL)
	}

	monitor := metrics.NewPerformanceMonitor()
	hist := history.NewQueryHistory(history.DefaultHistoryPath(), constants.DefaultHistorySize)
	_ = hist.Load()

	return engine.New(svc, norm, qcache, monitor, hist), nil
}
