package models

import (
	"strconv"
	"time"
)

// Dataset is a parsed CSV held in the dataset cache between requests.
type Dataset struct {
	ID         string     `json:"id"`          // Cache key, assigned at upload
	Name       string     `json:"name"`        // Original filename
	Columns    []string   `json:"columns"`     // Header row
	Rows       [][]string `json:"rows"`        // Data rows, cells as uploaded
	UploadedBy string     `json:"uploaded_by"` // Username of the uploader
	UploadedAt time.Time  `json:"uploaded_at"` // Upload time
}

// ColumnIndex returns the position of a named column, or -1 if absent.
func (d *Dataset) ColumnIndex(name string) int {
	for i, c := range d.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// NumericColumns returns the names of columns whose non-empty cells all parse
// as floats. Columns with no non-empty cells do not count as numeric.
func (d *Dataset) NumericColumns() []string {
	var cols []string
	for i, name := range d.Columns {
		seen := false
		numeric := true
		for _, row := range d.Rows {
			if i >= len(row) || row[i] == "" {
				continue
			}
			seen = true
			if _, err := strconv.ParseFloat(row[i], 64); err != nil {
				numeric = false
				break
			}
		}
		if seen && numeric {
			cols = append(cols, name)
		}
	}
	return cols
}

// ColumnValues returns the non-empty cells of a column as floats.
// Cells that do not parse are skipped.
func (d *Dataset) ColumnValues(name string) []float64 {
	idx := d.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	var vals []float64
	for _, row := range d.Rows {
		if idx >= len(row) || row[idx] == "" {
			continue
		}
		if v, err := strconv.ParseFloat(row[idx], 64); err == nil {
			vals = append(vals, v)
		}
	}
	return vals
}

// ColumnStats summarizes one numeric column of a dataset.
type ColumnStats struct {
	Column   string  `json:"column"`   // Column name
	Count    int     `json:"count"`    // Non-empty numeric cells
	Mean     float64 `json:"mean"`     // Arithmetic mean
	Min      float64 `json:"min"`      // Smallest value
	Max      float64 `json:"max"`      // Largest value
	Missing  int     `json:"missing"`  // Empty cells
	Distinct int     `json:"distinct"` // Distinct non-empty cells
}
