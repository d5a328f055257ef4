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

package frame

import (
	"testing"
	"time"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

func TestArrowRecord(t *testing.T) {
	date := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	f, err := New(100, WithFloatValue(123.456789), WithStringValue("Test"), WithDate(date))
	if err != nil {
		t.Fatal(err)
	}

	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	rec := f.ArrowRecord(mem)

	if got, want := int(rec.NumRows()), f.Rows(); got != want {
		t.Errorf("NumRows() = %d, want %d", got, want)
	}
	if got, want := int(rec.NumCols()), 4; got != want {
		t.Fatalf("NumCols() = %d, want %d", got, want)
	}

	schema := rec.Schema()
	for i, want := range f.Columns() {
		if got := schema.Field(i).Name; got != want {
			t.Errorf("field %d name = %q, want %q", i, got, want)
		}
	}

	ints := rec.Column(0).(*array.Int64)
	floats := rec.Column(1).(*array.Float64)
	dates := rec.Column(2).(*array.Date32)
	strs := rec.Column(3).(*array.String)
	for i := 0; i < f.Rows(); i++ {
		if ints.Value(i) != f.Int(i) {
			t.Errorf("row %d: Int = %d, want %d", i, ints.Value(i), f.Int(i))
			break
		}
		if floats.Value(i) != f.FloatValue() {
			t.Errorf("row %d: Float = %v, want %v", i, floats.Value(i), f.FloatValue())
			break
		}
		if !dates.Value(i).ToTime().Equal(date) {
			t.Errorf("row %d: Date = %v, want %v", i, dates.Value(i).ToTime(), date)
			break
		}
		if strs.Value(i) != f.StringValue() {
			t.Errorf("row %d: String = %q, want %q", i, strs.Value(i), f.StringValue())
			break
		}
	}

	rec.Release()
	mem.AssertSize(t, 0)
}
