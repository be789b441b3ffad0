// Where: internal/records/reader.go
// What: CSV input reader producing generation requests.
// Why: Map header-keyed rows onto fully resolved parameter sets.
package records

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/scadworks/tagsmith/internal/config"
)

// Request is one row reduced to a display name and a fully resolved
// parameter set. Immutable after creation; consumed once by the generator.
type Request struct {
	Name   string
	Params config.ParameterSet
}

// Read parses a header CSV into requests, preserving row order. Rows without
// a non-empty name are skipped silently. A parameter column overrides its
// default only when the cell is non-empty after trimming and parses as a
// float; anything else keeps the default. Zero valid rows is a normal,
// empty result; the caller decides whether that is fatal.
func Read(path string, defaults config.ParameterSet) ([]Request, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	requests, err := parse(file, defaults)
	if err != nil {
		return nil, fmt.Errorf("read csv %s: %w", path, err)
	}
	return requests, nil
}

func parse(r io.Reader, defaults config.ParameterSet) ([]Request, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	columns := make(map[string]int, len(header))
	for i, cell := range header {
		columns[strings.TrimSpace(cell)] = i
	}

	var requests []Request
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		name := strings.TrimSpace(cellAt(row, columns, "name"))
		if name == "" {
			continue
		}

		params := defaults.Clone()
		for _, key := range config.ParameterKeys {
			raw := strings.TrimSpace(cellAt(row, columns, key))
			if raw == "" {
				continue
			}
			value, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				continue
			}
			params[key] = value
		}

		requests = append(requests, Request{Name: name, Params: params})
	}
	return requests, nil
}

// cellAt returns the row cell for a header column, or "" when the column is
// absent or the row is shorter than the header.
func cellAt(row []string, columns map[string]int, key string) string {
	idx, ok := columns[key]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}
