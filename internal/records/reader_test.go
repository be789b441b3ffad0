// Where: internal/records/reader_test.go
// What: Tests for the CSV reader.
// Why: Row skipping and default fallback are the reader's whole contract.
package records

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/scadworks/tagsmith/internal/config"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "names.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestReadSkipsRowsWithoutName(t *testing.T) {
	path := writeCSV(t, "name,text_size\nJane Doe,\n,\n   ,\nBob,9\n")

	requests, err := Read(path, config.DefaultParameters())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(requests) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(requests))
	}
	if requests[0].Name != "Jane Doe" || requests[1].Name != "Bob" {
		t.Fatalf("unexpected order: %#v", requests)
	}
}

func TestReadNonNumericOverrideKeepsDefault(t *testing.T) {
	path := writeCSV(t, "name,text_size\nBob,abc\n")

	requests, err := Read(path, config.DefaultParameters())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(requests))
	}
	if got := requests[0].Params["text_size"]; got != 8 {
		t.Fatalf("expected default text_size 8, got %v", got)
	}
}

func TestReadNumericOverride(t *testing.T) {
	path := writeCSV(t, "name,text_size,nametag_width\nJane,10,95.5\n")

	requests, err := Read(path, config.DefaultParameters())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	params := requests[0].Params
	if params["text_size"] != 10 {
		t.Fatalf("expected text_size 10, got %v", params["text_size"])
	}
	if params["nametag_width"] != 95.5 {
		t.Fatalf("expected nametag_width 95.5, got %v", params["nametag_width"])
	}
	// Untouched keys keep their defaults.
	if params["ring_width"] != 3 {
		t.Fatalf("expected default ring_width 3, got %v", params["ring_width"])
	}
}

func TestReadIgnoresUnknownColumns(t *testing.T) {
	path := writeCSV(t, "name,department,text_size\nJane,Engineering,10\n")

	requests, err := Read(path, config.DefaultParameters())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(requests) != 1 || requests[0].Params["text_size"] != 10 {
		t.Fatalf("unexpected requests: %#v", requests)
	}
}

func TestReadShortRow(t *testing.T) {
	path := writeCSV(t, "name,text_size\nJane\n")

	requests, err := Read(path, config.DefaultParameters())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(requests) != 1 || requests[0].Params["text_size"] != 8 {
		t.Fatalf("expected defaulted short row, got %#v", requests)
	}
}

func TestReadZeroValidRowsIsNotAnError(t *testing.T) {
	path := writeCSV(t, "name\n\n   \n")

	requests, err := Read(path, config.DefaultParameters())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(requests) != 0 {
		t.Fatalf("expected empty result, got %#v", requests)
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "absent.csv"), config.DefaultParameters()); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestReadDoesNotMutateDefaults(t *testing.T) {
	defaults := config.DefaultParameters()
	path := writeCSV(t, "name,text_size\nJane,12\n")

	if _, err := Read(path, defaults); err != nil {
		t.Fatalf("read: %v", err)
	}
	if defaults["text_size"] != 8 {
		t.Fatalf("defaults mutated: %v", defaults["text_size"])
	}
}
