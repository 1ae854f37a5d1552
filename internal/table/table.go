// Package table reads and writes the delimited word-list tables exchanged
// between pipeline stages. Cells are normalized on read so that every absent
// value is the empty string.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ErrMissingColumn is returned when a table lacks a required column.
var ErrMissingColumn = errors.New("missing column")

// Table is a header row plus records of equal width.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// New returns an empty table with the given columns.
func New(columns ...string) *Table {
	t := &Table{}
	for _, c := range columns {
		t.AddColumn(c)
	}
	return t
}

// Clean normalizes a cell: blank values and the literal "nan" (any case)
// become the empty string, anything else is returned verbatim.
func Clean(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || strings.EqualFold(trimmed, "nan") {
		return ""
	}
	return s
}

// Delimiter returns ',' for .csv files and '\t' otherwise.
func Delimiter(path string) rune {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return ','
	}
	return '\t'
}

// Read parses a delimited table with a header row.
func Read(r io.Reader, comma rune) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("read header: empty table")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	t := &Table{index: make(map[string]int, len(header))}
	for i, c := range header {
		if _, dup := t.index[c]; dup {
			return nil, fmt.Errorf("read header: duplicate column %q", c)
		}
		t.index[c] = i
	}
	t.columns = header

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		for i := range record {
			record[i] = Clean(record[i])
		}
		t.rows = append(t.rows, record)
	}
	return t, nil
}

// ReadFile reads the table at path, choosing the delimiter by extension.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	t, err := Read(f, Delimiter(path))
	if err != nil {
		return nil, fmt.Errorf("table %s: %w", path, err)
	}
	return t, nil
}

// Write writes the header and all rows.
func (t *Table) Write(w io.Writer, comma rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = comma
	if err := writer.Write(t.columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := writer.WriteAll(t.rows); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	return nil
}

// WriteFile writes t to path atomically: the table goes to a temporary file
// in the same directory, which replaces path only once it is complete.
func WriteFile(path string, t *Table) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".table-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if err := t.Write(tmp, Delimiter(path)); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}

	success = true
	return nil
}

// Columns returns the header in order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Has reports whether column exists.
func (t *Table) Has(column string) bool {
	_, ok := t.index[column]
	return ok
}

// Require returns an error wrapping ErrMissingColumn naming every absent column.
func (t *Table) Require(columns ...string) error {
	var missing []string
	for _, c := range columns {
		if !t.Has(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}

// Get returns the cell at row and column, or "" if the column is absent.
func (t *Table) Get(row int, column string) string {
	i, ok := t.index[column]
	if !ok {
		return ""
	}
	return t.rows[row][i]
}

// Set stores a cell, adding the column first if needed.
func (t *Table) Set(row int, column, value string) {
	i, ok := t.index[column]
	if !ok {
		i = t.AddColumn(column)
	}
	t.rows[row][i] = value
}

// AddColumn appends an empty column unless it exists, and returns its position.
func (t *Table) AddColumn(column string) int {
	if i, ok := t.index[column]; ok {
		return i
	}
	if t.index == nil {
		t.index = make(map[string]int)
	}
	t.index[column] = len(t.columns)
	t.columns = append(t.columns, column)
	for i := range t.rows {
		t.rows[i] = append(t.rows[i], "")
	}
	return len(t.columns) - 1
}

// PrependColumn inserts column in front of all others with the given values,
// one per row.
func (t *Table) PrependColumn(column string, values []string) error {
	if t.Has(column) {
		return fmt.Errorf("column %q already exists", column)
	}
	if len(values) != len(t.rows) {
		return fmt.Errorf("column %q: %d values for %d rows", column, len(values), len(t.rows))
	}
	t.columns = append([]string{column}, t.columns...)
	for i := range t.rows {
		t.rows[i] = append([]string{values[i]}, t.rows[i]...)
	}
	t.reindex()
	return nil
}

// Rename renames columns through rename; columns it returns "" for keep
// their name. Renaming two columns to one name is an error.
func (t *Table) Rename(rename func(string) string) error {
	renamed := make([]string, len(t.columns))
	seen := make(map[string]bool, len(t.columns))
	for i, c := range t.columns {
		name := rename(c)
		if name == "" {
			name = c
		}
		if seen[name] {
			return fmt.Errorf("rename: two columns map to %q", name)
		}
		seen[name] = true
		renamed[i] = name
	}
	t.columns = renamed
	t.reindex()
	return nil
}

// Select returns a copy of the given rows of t in the given order.
func (t *Table) Select(rows []int) *Table {
	out := &Table{columns: t.Columns()}
	out.reindex()
	out.rows = make([][]string, len(rows))
	for i, r := range rows {
		out.rows[i] = slices.Clone(t.rows[r])
	}
	return out
}

// Filter returns the positions of the rows keep accepts.
func (t *Table) Filter(keep func(row int) bool) []int {
	var out []int
	for i := range t.rows {
		if keep(i) {
			out = append(out, i)
		}
	}
	return out
}

func (t *Table) reindex() {
	t.index = make(map[string]int, len(t.columns))
	for i, c := range t.columns {
		t.index[c] = i
	}
}
