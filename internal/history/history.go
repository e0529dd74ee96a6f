// Package history persists a record of past queries — text, which
// expansion toggles (spelling/synonyms/soundex) were active, result
// count, and duration — for later review via the CLI's history
// command. Because the same query text means something different
// depending on which toggles ran, history groups and dedupes on the
// (query, flags) pair rather than on query text alone.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/corpuslab/vsmsearch/internal/constants"
)

// QueryEntry represents a single past query.
type QueryEntry struct {
	Query        string    `json:"query"`
	Timestamp    time.Time `json:"timestamp"`
	ResultsCount int       `json:"results_count"`
	Flags        string    `json:"flags,omitempty"` // comma-joined, e.g. "spelling,synonyms"
	Duration     int64     `json:"duration_ms,omitempty"`
}

// searchKey is the (query, flags) pair that identifies one distinct
// search configuration. Two entries only count as the "same query"
// for dedup and frequency purposes when both match.
func (e QueryEntry) searchKey() string {
	return strings.ToLower(strings.TrimSpace(e.Query)) + "\x00" + e.Flags
}

// QueryHistory manages the on-disk query history.
type QueryHistory struct {
	Entries  []QueryEntry `json:"entries"`
	MaxSize  int          `json:"max_size"`
	FilePath string       `json:"-"`
}

// NewQueryHistory creates a new query history manager.
func NewQueryHistory(filePath string, maxSize int) *QueryHistory {
	if maxSize <= 0 {
		maxSize = constants.DefaultHistorySize
	}
	return &QueryHistory{
		Entries:  make([]QueryEntry, 0),
		MaxSize:  maxSize,
		FilePath: filePath,
	}
}

// DefaultHistoryPath returns the default path for query history.
func DefaultHistoryPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, ".vsmsearch", "query_history.json")
	}
	return filepath.Join(configDir, "vsmsearch", "query_history.json")
}

// Load loads query history from file. A missing or empty file yields an
// empty history rather than an error.
func (qh *QueryHistory) Load() error {
	if _, err := os.Stat(qh.FilePath); os.IsNotExist(err) {
		return nil
	}

	data, err := os.ReadFile(qh.FilePath)
	if err != nil {
		return fmt.Errorf("failed to read history file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, qh); err != nil {
		return fmt.Errorf("failed to parse history file: %w", err)
	}
	return nil
}

// Save saves query history to file.
func (qh *QueryHistory) Save() error {
	dir := filepath.Dir(qh.FilePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	data, err := json.MarshalIndent(qh, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	if err := os.WriteFile(qh.FilePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return nil
}

// AddEntry records a query run under a given expansion configuration.
// When the most recent entry has the same query text and the SAME
// flags, that entry is updated in place (a re-run, not a new search);
// a repeat with different flags, or one separated by another search,
// gets its own entry, since a flipped toggle can change which
// documents match.
func (qh *QueryHistory) AddEntry(query string, resultsCount int, flags string, duration time.Duration) {
	entry := QueryEntry{
		Query:        query,
		Timestamp:    time.Now(),
		ResultsCount: resultsCount,
		Flags:        flags,
		Duration:     duration.Milliseconds(),
	}

	if n := len(qh.Entries); n > 0 && qh.Entries[n-1].searchKey() == entry.searchKey() {
		qh.Entries[n-1] = entry
		return
	}

	qh.Entries = append(qh.Entries, entry)
	if over := len(qh.Entries) - qh.MaxSize; over > 0 {
		qh.Entries = qh.Entries[over:]
	}
}

// GetRecentQueries returns the most recent distinct query texts,
// newest first, collapsing repeats across different flag
// configurations since the CLI just wants something to re-type.
func (qh *QueryHistory) GetRecentQueries(limit int) []string {
	if limit <= 0 {
		limit = 10
	}

	seen := make(map[string]bool)
	var queries []string
	for i := len(qh.Entries) - 1; i >= 0 && len(queries) < limit; i-- {
		query := qh.Entries[i].Query
		if !seen[query] {
			seen[query] = true
			queries = append(queries, query)
		}
	}
	return queries
}

// GetEntriesByPattern returns entries whose query contains pattern
// (case-insensitive), most recent first.
func (qh *QueryHistory) GetEntriesByPattern(pattern string) []QueryEntry {
	var matches []QueryEntry
	for _, entry := range qh.Entries {
		if containsIgnoreCase(entry.Query, pattern) {
			matches = append(matches, entry)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Timestamp.After(matches[j].Timestamp)
	})
	return matches
}

// QueryFrequency represents one (query, flags) search configuration
// with its usage frequency.
type QueryFrequency struct {
	Query    string    `json:"query"`
	Flags    string    `json:"flags,omitempty"`
	Count    int       `json:"count"`
	LastUsed time.Time `json:"last_used"`
}

// GetTopQueries returns the most frequently issued (query, flags)
// configurations, since a query rerun with a different toggle set is
// a different search and shouldn't inflate the same frequency count.
func (qh *QueryHistory) GetTopQueries(limit int) []QueryFrequency {
	if limit <= 0 {
		limit = 10
	}

	type agg struct {
		QueryFrequency
		key string
	}
	byKey := make(map[string]*agg)
	for _, e := range qh.Entries {
		key := e.searchKey()
		a, ok := byKey[key]
		if !ok {
			a = &agg{QueryFrequency: QueryFrequency{Query: e.Query, Flags: e.Flags}, key: key}
			byKey[key] = a
		}
		a.Count++
		if e.Timestamp.After(a.LastUsed) {
			a.LastUsed = e.Timestamp
		}
	}

	freqs := make([]QueryFrequency, 0, len(byKey))
	for _, a := range byKey {
		freqs = append(freqs, a.QueryFrequency)
	}
	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].Count == freqs[j].Count {
			return freqs[i].LastUsed.After(freqs[j].LastUsed)
		}
		return freqs[i].Count > freqs[j].Count
	})

	if len(freqs) > limit {
		freqs = freqs[:limit]
	}
	return freqs
}

// HistoryStats represents aggregate usage statistics, including how
// often each expansion toggle was enabled across recorded queries.
type HistoryStats struct {
	TotalQueries       int       `json:"total_queries"`
	UniqueQueries      int       `json:"unique_queries"`
	AvgResultsPerQuery float64   `json:"avg_results_per_query"`
	AvgQueryDurationMS float64   `json:"avg_query_duration_ms"`
	OldestEntry        time.Time `json:"oldest_entry"`
	NewestEntry        time.Time `json:"newest_entry"`
	SpellingRatio      float64   `json:"spelling_ratio"`
	SynonymsRatio      float64   `json:"synonyms_ratio"`
	SoundexRatio       float64   `json:"soundex_ratio"`
}

// GetStats returns usage statistics over the full history.
func (qh *QueryHistory) GetStats() HistoryStats {
	if len(qh.Entries) == 0 {
		return HistoryStats{}
	}

	stats := HistoryStats{
		TotalQueries:  len(qh.Entries),
		UniqueQueries: len(qh.uniqueSearchKeys()),
		OldestEntry:   qh.Entries[0].Timestamp,
		NewestEntry:   qh.Entries[len(qh.Entries)-1].Timestamp,
	}

	var totalResults int
	var totalDuration int64
	var spellingCount, synonymsCount, soundexCount int
	for _, entry := range qh.Entries {
		totalResults += entry.ResultsCount
		totalDuration += entry.Duration
		if strings.Contains(entry.Flags, "spelling") {
			spellingCount++
		}
		if strings.Contains(entry.Flags, "synonyms") {
			synonymsCount++
		}
		if strings.Contains(entry.Flags, "soundex") {
			soundexCount++
		}
	}

	n := float64(len(qh.Entries))
	stats.AvgResultsPerQuery = float64(totalResults) / n
	if totalDuration > 0 {
		stats.AvgQueryDurationMS = float64(totalDuration) / n
	}
	stats.SpellingRatio = float64(spellingCount) / n
	stats.SynonymsRatio = float64(synonymsCount) / n
	stats.SoundexRatio = float64(soundexCount) / n
	return stats
}

func (qh *QueryHistory) uniqueSearchKeys() map[string]struct{} {
	unique := make(map[string]struct{}, len(qh.Entries))
	for _, entry := range qh.Entries {
		unique[entry.searchKey()] = struct{}{}
	}
	return unique
}

// Clear removes all entries from history and persists the empty state.
func (qh *QueryHistory) Clear() error {
	qh.Entries = make([]QueryEntry, 0)
	return qh.Save()
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
