package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrEmpty indicates the source file had no header row.
var ErrEmpty = errors.New("dataset has no header row")

// Dataset is an in-memory table of string cells under named columns.
// It is built once by Load, mutated once by Clean, and read-only after that.
type Dataset struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// Load parses a CSV file into a Dataset. The first record is the header;
// short rows are padded and long rows truncated to the header width.
// A missing file surfaces as fs.ErrNotExist for the caller to classify.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("dataset %s not found: %w", path, err)
		}
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	ds := &Dataset{Name: filepath.Base(path), Columns: make([]string, len(header))}
	for i, h := range header {
		ds.Columns[i] = strings.TrimSpace(h)
	}

	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(ds.Rows)+1, err)
		}
		row := make([]string, len(ds.Columns))
		copy(row, rec)
		for i := range row {
			row[i] = strings.TrimSpace(row[i])
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds, nil
}

// LoadClean is Load followed by Clean.
func LoadClean(path string) (*Dataset, error) {
	ds, err := Load(path)
	if err != nil {
		return nil, err
	}
	ds.Clean()
	return ds, nil
}

// Clean replaces every missing cell with "0" and then removes rows that are
// exact duplicates of an earlier row, keeping the first occurrence and the
// relative order of survivors. The zero fill applies to every column
// regardless of type; downstream statistics include those zeros.
// Clean is idempotent.
func (d *Dataset) Clean() {
	for _, row := range d.Rows {
		for i, cell := range row {
			if cell == "" {
				row[i] = "0"
			}
		}
	}
	seen := make(map[string]struct{}, len(d.Rows))
	kept := d.Rows[:0]
	for _, row := range d.Rows {
		key := strings.Join(row, "\x1f")
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, row)
	}
	d.Rows = kept
}

// HasColumn reports whether the named column exists.
func (d *Dataset) HasColumn(name string) bool {
	return d.columnIndex(name) >= 0
}

// Column returns the cells of the named column in row order.
func (d *Dataset) Column(name string) ([]string, bool) {
	idx := d.columnIndex(name)
	if idx < 0 {
		return nil, false
	}
	out := make([]string, len(d.Rows))
	for i, row := range d.Rows {
		out[i] = row[idx]
	}
	return out, true
}

// NumericColumn returns the column as float64 values. The second return is
// false when the column is absent or any cell fails to parse; mixed columns
// are not coerced.
func (d *Dataset) NumericColumn(name string) ([]float64, bool) {
	cells, ok := d.Column(name)
	if !ok {
		return nil, false
	}
	out := make([]float64, len(cells))
	for i, c := range cells {
		v, err := strconv.ParseFloat(c, 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// NumericColumns lists the columns whose every cell parses as a number,
// preserving header order.
func (d *Dataset) NumericColumns() []string {
	var out []string
	for _, name := range d.Columns {
		if _, ok := d.NumericColumn(name); ok {
			out = append(out, name)
		}
	}
	return out
}

func (d *Dataset) columnIndex(name string) int {
	for i, c := range d.Columns {
		if c == name {
			return i
		}
	}
	return -1
}
