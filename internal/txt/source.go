// Package txt reads the tab-separated definition tables from a directory of
// .txt files and exposes them as a tables.Source. Files are parsed lazily on
// first access and cached for the lifetime of the source.
package txt

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/udisondev/d2core/internal/tables"
)

// Dir is a tables.Source over a directory holding one <table>.txt file per
// definition table.
type Dir struct {
	path   string
	id     string
	parsed map[tables.Name]*File
}

// Open validates that dir exists and returns a source over it. The source ID
// is the cleaned absolute path, so two sources over the same directory are
// interchangeable for Index reload detection.
func Open(dir string) (*Dir, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving data dir: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("opening data dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("opening data dir: %s is not a directory", abs)
	}
	return &Dir{
		path:   abs,
		id:     abs,
		parsed: make(map[tables.Name]*File),
	}, nil
}

// ID returns the source identity.
func (d *Dir) ID() string { return d.id }

// Table parses and returns the named table. A missing or malformed file
// yields false; the Index degrades per table rather than failing the load.
func (d *Dir) Table(name tables.Name) (tables.Table, bool) {
	if f, ok := d.parsed[name]; ok {
		return f, f != nil
	}

	path := filepath.Join(d.path, string(name)+".txt")
	f, err := ParseFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("definition table unreadable", "table", name, "path", path, "error", err)
		}
		d.parsed[name] = nil
		return nil, false
	}

	d.parsed[name] = f
	return f, true
}

// File is one parsed tab-separated definition table.
type File struct {
	cols   []string
	colIdx map[string]int
	rows   [][]string
}

// ParseFile reads a tab-separated table file: first line is the header, every
// further non-empty line one row. Rows shorter than the header are padded.
func ParseFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading header: %w", err)
		}
		return nil, fmt.Errorf("parsing %s: empty file", path)
	}

	out := &File{}
	out.cols = splitRow(scanner.Text())
	out.colIdx = make(map[string]int, len(out.cols))
	for i, c := range out.cols {
		// First declaration wins on duplicate headers, matching how the
		// original tools resolved them.
		if _, ok := out.colIdx[c]; !ok {
			out.colIdx[c] = i
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		row := splitRow(line)
		if len(row) < len(out.cols) {
			padded := make([]string, len(out.cols))
			copy(padded, row)
			row = padded
		}
		out.rows = append(out.rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}
	return out, nil
}

func splitRow(line string) []string {
	line = strings.TrimSuffix(line, "\r")
	return strings.Split(line, "\t")
}

func (f *File) Columns() int { return len(f.cols) }
func (f *File) Rows() int    { return len(f.rows) }

func (f *File) ColumnIndex(name string) (int, bool) {
	idx, ok := f.colIdx[name]
	return idx, ok
}

func (f *File) ColumnName(col int) string {
	if col < 0 || col >= len(f.cols) {
		return ""
	}
	return f.cols[col]
}

func (f *File) String(col, row int) string {
	if row < 0 || row >= len(f.rows) || col < 0 || col >= len(f.cols) {
		return ""
	}
	return f.rows[row][col]
}

func (f *File) Uint16(col, row int) uint16 {
	return uint16(f.Uint32(col, row))
}

func (f *File) Uint32(col, row int) uint32 {
	s := f.String(col, row)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return uint32(v)
}
