package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

var (
	ErrMissingColumn = errors.New("catalog: missing column")
	ErrDuplicateID   = errors.New("catalog: duplicate star id")
	ErrNotFinite     = errors.New("catalog: value is not finite")
)

// Column names, matched case-insensitively.
const (
	ColID        = "Star ID"
	ColRA        = "RA"
	ColDe        = "DE"
	ColMagnitude = "Magnitude"
)

// LoadCSV reads a catalogue CSV file with a header row containing
// Star ID, RA, DE and Magnitude. Other columns are ignored.
func LoadCSV(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()

	t, err := ReadCSV(f)
	if err != nil {
		return Table{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ReadCSV parses catalogue rows from r.
func ReadCSV(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return Table{}, fmt.Errorf("catalog: read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	idx := make([]int, 4)
	for i, name := range []string{ColID, ColRA, ColDe, ColMagnitude} {
		c, ok := cols[strings.ToLower(name)]
		if !ok {
			return Table{}, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
		idx[i] = c
	}

	var rows []Entry
	seen := make(map[string]int)
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return Table{}, fmt.Errorf("catalog: line %d: %w", line, err)
		}
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}

		e, err := parseRecord(rec, idx)
		if err != nil {
			return Table{}, fmt.Errorf("catalog: line %d: %w", line, err)
		}
		if prev, dup := seen[e.ID]; dup {
			return Table{}, fmt.Errorf("%w: %s (lines %d and %d)", ErrDuplicateID, e.ID, prev, line)
		}
		seen[e.ID] = line
		rows = append(rows, e)
	}

	return Table{rows: rows}, nil
}

func parseRecord(rec []string, idx []int) (Entry, error) {
	field := func(i int) (string, error) {
		if idx[i] >= len(rec) {
			return "", fmt.Errorf("short record: %d fields", len(rec))
		}
		return strings.TrimSpace(rec[idx[i]]), nil
	}

	id, err := field(0)
	if err != nil {
		return Entry{}, err
	}
	if id == "" {
		return Entry{}, errors.New("empty star id")
	}

	var nums [3]float64
	for k, name := range []string{ColRA, ColDe, ColMagnitude} {
		s, err := field(k + 1)
		if err != nil {
			return Entry{}, err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Entry{}, fmt.Errorf("%s: %w", name, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Entry{}, fmt.Errorf("%s %q: %w", name, s, ErrNotFinite)
		}
		nums[k] = v
	}

	return Entry{ID: id, RA: nums[0], De: nums[1], Mag: nums[2]}, nil
}
