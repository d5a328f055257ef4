/*
 * Sheetbench (C) 2024-2026 Sheetbench Authors
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU Affero General Public License for more details.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

// Package sheetio loads exported workbooks back into a normalized table
// so their logical content can be compared regardless of which writer
// stack produced them.
package sheetio

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
)

// Table is the normalized content of one exported workbook.
// Dates are reduced to their calendar day, since the writer stacks are
// allowed to differ in cell level date representation.
type Table struct {
	Columns []string
	Ints    []int64
	Floats  []float64
	Dates   []string // yyyy-mm-dd
	Strings []string
}

// Rows returns the number of data rows.
func (t *Table) Rows() int {
	return len(t.Ints)
}

// dateLayouts are the cell formats the two writer stacks produce.
var dateLayouts = []string{
	"2006-01-02",
	"01-02-06",
	"1/2/06",
	time.RFC3339,
}

// excelEpoch is day zero of the 1900 date system, adjusted for the
// historical Lotus leap year bug.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// Load reads a workbook and normalizes its first sheet.
// The sheet must have a header row with the four benchmark columns.
func Load(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("sheetio: open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("sheetio: %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("sheetio: read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheetio: %s: empty sheet", path)
	}
	header := rows[0]
	if len(header) != 4 {
		return nil, fmt.Errorf("sheetio: %s: want 4 columns, got %d", path, len(header))
	}

	t := &Table{
		Columns: append([]string(nil), header...),
		Ints:    make([]int64, 0, len(rows)-1),
		Floats:  make([]float64, 0, len(rows)-1),
		Dates:   make([]string, 0, len(rows)-1),
		Strings: make([]string, 0, len(rows)-1),
	}
	for i, row := range rows[1:] {
		if len(row) != 4 {
			return nil, fmt.Errorf("sheetio: %s row %d: want 4 cells, got %d", path, i+2, len(row))
		}
		iv, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("sheetio: %s row %d: bad int %q", path, i+2, row[0])
		}
		fv, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("sheetio: %s row %d: bad float %q", path, i+2, row[1])
		}
		day, err := parseDay(row[2])
		if err != nil {
			return nil, fmt.Errorf("sheetio: %s row %d: %w", path, i+2, err)
		}
		t.Ints = append(t.Ints, iv)
		t.Floats = append(t.Floats, fv)
		t.Dates = append(t.Dates, day)
		t.Strings = append(t.Strings, row[3])
	}
	return t, nil
}

// parseDay normalizes a date cell to yyyy-mm-dd. Serial numbers are
// accepted for workbooks whose date style got lost.
func parseDay(s string) (string, error) {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d.Format("2006-01-02"), nil
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		days := int(math.Floor(serial))
		return excelEpoch.AddDate(0, 0, days).Format("2006-01-02"), nil
	}
	return "", fmt.Errorf("bad date %q", s)
}

// Equal reports whether two tables carry the same logical dataset.
// The first difference found is returned as the error.
func (t *Table) Equal(other *Table) error {
	if t.Rows() != other.Rows() {
		return fmt.Errorf("row count: %d != %d", t.Rows(), other.Rows())
	}
	for i, name := range t.Columns {
		if i >= len(other.Columns) || other.Columns[i] != name {
			return fmt.Errorf("column %d: name mismatch", i)
		}
	}
	for i := range t.Ints {
		if t.Ints[i] != other.Ints[i] {
			return fmt.Errorf("row %d: Int %d != %d", i, t.Ints[i], other.Ints[i])
		}
		if t.Floats[i] != other.Floats[i] {
			return fmt.Errorf("row %d: Float %v != %v", i, t.Floats[i], other.Floats[i])
		}
		if t.Dates[i] != other.Dates[i] {
			return fmt.Errorf("row %d: Date %s != %s", i, t.Dates[i], other.Dates[i])
		}
		if t.Strings[i] != other.Strings[i] {
			return fmt.Errorf("row %d: String %q != %q", i, t.Strings[i], other.Strings[i])
		}
	}
	return nil
}
