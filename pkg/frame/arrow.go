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
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// ArrowSchema returns the Arrow schema matching the frame columns.
// Dates map to date32 (days since epoch), which keeps the calendar date
// exact without dragging a time of day along.
func (f *Frame) ArrowSchema() *arrow.Schema {
	return arrow.NewSchema([]arrow.Field{
		{Name: ColInt, Type: arrow.PrimitiveTypes.Int64, Nullable: false},
		{Name: ColFloat, Type: arrow.PrimitiveTypes.Float64, Nullable: false},
		{Name: ColDate, Type: arrow.FixedWidthTypes.Date32, Nullable: false},
		{Name: ColString, Type: arrow.BinaryTypes.String, Nullable: false},
	}, nil)
}

// ArrowRecord converts the frame into an Arrow record batch with the same
// column names, row count and values. The conversion has no side effects
// on the frame; the caller owns the returned record and must Release it.
func (f *Frame) ArrowRecord(mem memory.Allocator) arrow.Record {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	rows := f.Rows()

	ints := array.NewInt64Builder(mem)
	floats := array.NewFloat64Builder(mem)
	dates := array.NewDate32Builder(mem)
	strs := array.NewStringBuilder(mem)

	defer ints.Release()
	defer floats.Release()
	defer dates.Release()
	defer strs.Release()

	ints.Reserve(rows)
	floats.Reserve(rows)
	dates.Reserve(rows)
	strs.Reserve(rows)

	day := arrow.Date32FromTime(f.dateVal)
	for i := 0; i < rows; i++ {
		ints.Append(f.ints[i])
		floats.Append(f.floatVal)
		dates.Append(day)
		strs.Append(f.strVal)
	}

	intArr := ints.NewInt64Array()
	floatArr := floats.NewFloat64Array()
	dateArr := dates.NewDate32Array()
	strArr := strs.NewStringArray()

	defer intArr.Release()
	defer floatArr.Release()
	defer dateArr.Release()
	defer strArr.Release()

	return array.NewRecord(f.ArrowSchema(), []arrow.Array{
		intArr, floatArr, dateArr, strArr,
	}, int64(rows))
}
