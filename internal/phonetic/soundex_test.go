package phonetic

import "testing"

func TestEncodeKnownValues(t *testing.T) {
	tests := map[string]string{
		"Robert":  "R163",
		"Rupert":  "R163",
		"Ashcraft": "A226",
		"Tymczak": "T522",
		"Pfister": "P236",
		"Honeyman": "H555",
	}
	for in, want := range tests {
		if got := Encode(in); got != want {
			t.Errorf("Encode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEncodeNonAlphabeticInitialIsEmpty(t *testing.T) {
	for _, in := range []string{"", "123", "$term"} {
		if got := Encode(in); got != "" {
			t.Errorf("Encode(%q) = %q, want empty string", in, got)
		}
	}
}

func TestEncodeAlwaysFourChars(t *testing.T) {
	for _, in := range []string{"A", "Ab", "Lee", "Euler"} {
		if got := Encode(in); len(got) != 4 {
			t.Errorf("Encode(%q) = %q, want length 4", in, got)
		}
	}
}

func TestEncodePreservesInitialLetter(t *testing.T) {
	got := Encode("smith")
	if got[0] != 'S' {
		t.Errorf("Encode(%q) = %q, want to start with 'S'", "smith", got)
	}
}
