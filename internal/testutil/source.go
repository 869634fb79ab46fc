// Package testutil provides an in-memory tabular source and a canned
// definition fixture for tests across the module.
package testutil

import (
	"strconv"

	"github.com/udisondev/d2core/internal/tables"
)

// MemTable is an in-memory tables.Table.
type MemTable struct {
	cols    []string
	colIdx  map[string]int
	records [][]string
}

// NewMemTable builds a table from a header row and data rows. Short rows
// are padded with empty cells.
func NewMemTable(cols []string, rows ...[]string) *MemTable {
	t := &MemTable{cols: cols, colIdx: make(map[string]int, len(cols))}
	for i, c := range cols {
		t.colIdx[c] = i
	}
	for _, row := range rows {
		padded := make([]string, len(cols))
		copy(padded, row)
		t.records = append(t.records, padded)
	}
	return t
}

func (t *MemTable) Columns() int { return len(t.cols) }
func (t *MemTable) Rows() int    { return len(t.records) }

func (t *MemTable) ColumnIndex(name string) (int, bool) {
	idx, ok := t.colIdx[name]
	return idx, ok
}

func (t *MemTable) ColumnName(col int) string {
	if col < 0 || col >= len(t.cols) {
		return ""
	}
	return t.cols[col]
}

func (t *MemTable) String(col, row int) string {
	if row < 0 || row >= len(t.records) || col < 0 || col >= len(t.cols) {
		return ""
	}
	return t.records[row][col]
}

func (t *MemTable) Uint16(col, row int) uint16 {
	return uint16(t.Uint32(col, row))
}

func (t *MemTable) Uint32(col, row int) uint32 {
	v, err := strconv.ParseInt(t.String(col, row), 10, 64)
	if err != nil {
		return 0
	}
	return uint32(v)
}

// MemSource is an in-memory tables.Source.
type MemSource struct {
	id     string
	tables map[tables.Name]*MemTable
}

// NewMemSource returns an empty source with the given identity.
func NewMemSource(id string) *MemSource {
	return &MemSource{id: id, tables: make(map[tables.Name]*MemTable)}
}

func (s *MemSource) ID() string { return s.id }

func (s *MemSource) Table(name tables.Name) (tables.Table, bool) {
	t, ok := s.tables[name]
	return t, ok
}

// Add registers a table under name and returns the source for chaining.
func (s *MemSource) Add(name tables.Name, t *MemTable) *MemSource {
	s.tables[name] = t
	return s
}
