// Package recovery provides retry-with-backoff for transient corpus I/O
// failures encountered while building an index.
package recovery

import (
	"math"
	"os"
	"time"

	"github.com/corpuslab/vsmsearch/internal/constants"
)

// RetryConfig holds configuration for retry operations.
type RetryConfig struct {
	MaxAttempts   int
	BaseDelay     time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

// DefaultConfig returns a sensible default retry configuration.
func DefaultConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:   constants.DefaultRetryAttempts,
		BaseDelay:     constants.DefaultRetryBaseDelay,
		MaxDelay:      constants.DefaultRetryMaxDelay,
		BackoffFactor: constants.DefaultRetryBackoff,
	}
}

// shouldRetry reports whether an error reading a corpus file is worth
// retrying. Missing files and permission errors are permanent; anything
// else (a transient lock, a momentary I/O hiccup) is retried.
func shouldRetry(err error) bool {
	if os.IsNotExist(err) || os.IsPermission(err) {
		return false
	}
	return true
}

// calculateDelay computes the exponential backoff delay for attempt
// (1-indexed), capped at cfg.MaxDelay.
func calculateDelay(cfg RetryConfig, attempt int) time.Duration {
	delay := float64(cfg.BaseDelay) * math.Pow(cfg.BackoffFactor, float64(attempt-1))
	if delay > float64(cfg.MaxDelay) {
		delay = float64(cfg.MaxDelay)
	}
	return time.Duration(delay)
}

// ReadFileWithRetry reads path, retrying transient failures with
// exponential backoff up to cfg.MaxAttempts times.
func ReadFileWithRetry(cfg RetryConfig, path string) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		data, err := os.ReadFile(path)
		if err == nil {
			return data, nil
		}
		lastErr = err

		if !shouldRetry(err) {
			break
		}
		if attempt < cfg.MaxAttempts {
			time.Sleep(calculateDelay(cfg, attempt))
		}
	}

	return nil, lastErr
}
