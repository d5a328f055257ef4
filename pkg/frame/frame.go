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

// Package frame holds the in-memory benchmark dataset.
//
// A Frame is a fixed four column table: a sequential integer column, a
// constant float column, a constant calendar date column and a constant
// string column. It is built once per run and never mutated afterwards,
// so both export paths see exactly the same data.
package frame

import (
	"fmt"
	"time"
)

// Default fixture values. These mirror the data the benchmark was
// originally defined with; all of them can be overridden with options.
const (
	DefaultFloatValue  = 123.456789
	DefaultStringValue = "Test"
)

// Column names, in export order.
const (
	ColInt    = "Int"
	ColFloat  = "Float"
	ColDate   = "Date"
	ColString = "String"
)

// Frame is an immutable four column dataset.
//
// All columns have exactly Rows() entries. The Int column is materialized;
// Float, Date and String are constant per row and stored once.
type Frame struct {
	ints     []int64
	floatVal float64
	dateVal  time.Time
	strVal   string
	names    [4]string
}

// Option modifies frame construction.
type Option func(*Frame)

// WithFloatValue sets the value repeated in the Float column.
func WithFloatValue(v float64) Option {
	return func(f *Frame) { f.floatVal = v }
}

// WithStringValue sets the value repeated in the String column.
func WithStringValue(v string) Option {
	return func(f *Frame) { f.strVal = v }
}

// WithDate sets the value repeated in the Date column.
// Only the calendar date is kept; the time of day is truncated.
func WithDate(t time.Time) Option {
	return func(f *Frame) { f.dateVal = truncateToDay(t) }
}

// New builds a frame with the given number of rows.
// The Int column holds 0..rows-1, the remaining columns repeat their
// configured constant. A non-positive row count is rejected.
func New(rows int, opts ...Option) (*Frame, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("frame: row count must be positive, got %d", rows)
	}
	f := &Frame{
		floatVal: DefaultFloatValue,
		dateVal:  truncateToDay(time.Now().UTC()),
		strVal:   DefaultStringValue,
		names:    [4]string{ColInt, ColFloat, ColDate, ColString},
	}
	for _, opt := range opts {
		opt(f)
	}
	f.ints = make([]int64, rows)
	for i := range f.ints {
		f.ints[i] = int64(i)
	}
	return f, nil
}

// Rows returns the row count.
func (f *Frame) Rows() int {
	return len(f.ints)
}

// Columns returns the column names in export order.
func (f *Frame) Columns() []string {
	cols := make([]string, len(f.names))
	copy(cols, f.names[:])
	return cols
}

// Int returns the integer value at row i.
func (f *Frame) Int(i int) int64 {
	return f.ints[i]
}

// FloatValue returns the constant of the Float column.
func (f *Frame) FloatValue() float64 {
	return f.floatVal
}

// DateValue returns the constant of the Date column, truncated to a UTC day.
func (f *Frame) DateValue() time.Time {
	return f.dateVal
}

// StringValue returns the constant of the String column.
func (f *Frame) StringValue() string {
	return f.strVal
}

// Ints returns a copy of the Int column.
func (f *Frame) Ints() []int64 {
	out := make([]int64, len(f.ints))
	copy(out, f.ints)
	return out
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
