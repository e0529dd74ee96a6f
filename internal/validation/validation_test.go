package validation

import (
	"testing"

	"github.com/corpuslab/vsmsearch/internal/constants"
)

func TestValidateQuery(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"empty", "", "", true},
		{"whitespace only", "   \t  ", "", true},
		{"trims and collapses", "  hello   world  ", "hello world", false},
		{"strips control chars", "hi\x00there", "hithere", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidateQuery(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("ValidateQuery(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestClampK(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want int
	}{
		{"nil defaults", nil, constants.DefaultK},
		{"zero clamps to min", 0, constants.MinK},
		{"negative clamps to min", -5, constants.MinK},
		{"too large clamps to max", 10_000, constants.MaxK},
		{"in range passes through", 42, 42},
		{"non-integral float defaults", 3.5, constants.DefaultK},
		{"integral float clamps", float64(7), 7},
		{"unsupported type defaults", "10", constants.DefaultK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampK(tc.in); got != tc.want {
				t.Errorf("ClampK(%v) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}
