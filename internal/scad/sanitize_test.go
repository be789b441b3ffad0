// Where: internal/scad/sanitize_test.go
// What: Tests for display-name sanitization.
// Why: File names are derived from user input and must stay predictable.
package scad

import "testing"

func TestSafeName(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Jane Doe", want: "Jane_Doe"},
		{name: "apostrophe", in: "Jane O'Brien", want: "Jane_O_Brien"},
		{name: "slash", in: "A/B", want: "A_B"},
		{name: "space", in: "A B", want: "A_B"},
		{name: "punctuation only", in: "!!!", want: "___"},
		{name: "hyphen and underscore kept", in: "Anne-Marie_K", want: "Anne-Marie_K"},
		{name: "surrounding spaces trimmed", in: "  Bob  ", want: "Bob"},
		{name: "unicode letters kept", in: "Łukasz Górski", want: "Łukasz_Górski"},
		{name: "quote replaced", in: `Bob "Ace"`, want: "Bob__Ace_"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SafeName(tc.in); got != tc.want {
				t.Fatalf("SafeName(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSafeNameCollision(t *testing.T) {
	// Distinct display names may sanitize identically; later output wins.
	if SafeName("A/B") != SafeName("A B") {
		t.Fatalf("expected A/B and A B to collide")
	}
}
