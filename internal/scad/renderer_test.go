// Where: internal/scad/renderer_test.go
// What: Tests for nametag script rendering.
// Why: Substitution must be deterministic and carry every parameter.
package scad

import (
	"strings"
	"testing"

	"github.com/scadworks/tagsmith/internal/config"
)

func TestRenderNametagSubstitution(t *testing.T) {
	params := config.DefaultParameters()
	params["text_size"] = 10

	script, err := RenderNametag("Jane Doe", params)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		`name = "Jane Doe";`,
		"nametag_width = 80;",
		"nametag_height = 30;",
		"text_size = 10;",
		"text_height = 1.5;",
		"ring_height = 1.2;",
		"mounting_hole_diameter = 4;",
		"// Auto-generated nametag for: Jane Doe",
		"nametag();",
	} {
		if !strings.Contains(script, want) {
			t.Fatalf("rendered script missing %q", want)
		}
	}
}

func TestRenderNametagIdempotent(t *testing.T) {
	params := config.DefaultParameters()
	first, err := RenderNametag("Bob", params)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	second, err := RenderNametag("Bob", params)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if first != second {
		t.Fatalf("rendering is not deterministic")
	}
}

func TestRenderNametagWholeNumbersStayWhole(t *testing.T) {
	params := config.DefaultParameters()
	params["nametag_width"] = 90

	script, err := RenderNametag("Bob", params)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(script, "nametag_width = 90;") {
		t.Fatalf("expected whole-number formatting, got:\n%s", script)
	}
}

func TestRenderNametagInsertsNameLiterally(t *testing.T) {
	// Quote characters are not escaped; the corrupted script is the
	// documented contract for such names.
	script, err := RenderNametag(`Bob "Ace"`, config.DefaultParameters())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(script, `name = "Bob "Ace"";`) {
		t.Fatalf("expected literal insertion, got:\n%s", script)
	}
}
