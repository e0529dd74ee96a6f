// Package validation provides input validation for queries and result
// limits, implementing the clamping contract of the query API.
package validation

import (
	"strings"
	"unicode"

	"github.com/corpuslab/vsmsearch/internal/constants"
	"github.com/corpuslab/vsmsearch/internal/errors"
)

// ValidateQuery trims and sanitizes a raw query string, rejecting empty
// input and truncating input longer than MaxQueryLength bytes.
func ValidateQuery(query string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return -1
		}
		return r
	}, query)

	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.Join(strings.Fields(cleaned), " ")

	if cleaned == "" {
		return "", errors.ErrEmptyQuery
	}
	if len(cleaned) > constants.MaxQueryLength {
		cleaned = cleaned[:constants.MaxQueryLength]
	}
	return cleaned, nil
}

// ClampK implements the result-count clamping contract: integers clamp to
// [MinK, MaxK]; anything that isn't an integral value maps to the default.
// Accepts int, int64, float64 or nil (nil maps to the default, matching a
// caller that never supplied k).
func ClampK(raw any) int {
	switch v := raw.(type) {
	case nil:
		return constants.DefaultK
	case int:
		return clampInt(v)
	case int64:
		return clampInt(int(v))
	case float64:
		if v != float64(int(v)) {
			return constants.DefaultK
		}
		return clampInt(int(v))
	default:
		return constants.DefaultK
	}
}

func clampInt(k int) int {
	if k < constants.MinK {
		return constants.MinK
	}
	if k > constants.MaxK {
		return constants.MaxK
	}
	return k
}
