// Package constants defines module-wide constants for the indexing and
// ranking engine.
package constants

import "time"

// Query defaults and clamping, per the query API contract.
const (
	DefaultK = 10
	MinK     = 1
	MaxK     = 1000

	MaxQueryLength = 1000
)

// K-gram and phonetic sizes.
const (
	KgramSize    = 3
	SoundexLen   = 4
	KgramPadding = "$"
)

// Cache settings.
const (
	DefaultCacheTTL      = 5 * time.Minute
	DefaultCacheCapacity = 1000
)

// History settings.
const (
	DefaultHistorySize = 200
)

// Recovery / retry settings for corpus I/O.
const (
	DefaultRetryAttempts = 3
	DefaultRetryBaseDelay = 50 * time.Millisecond
	DefaultRetryMaxDelay  = 2 * time.Second
	DefaultRetryBackoff   = 2.0
)

// Corpus file extension recognized by the builder.
const CorpusFileExt = ".txt"
