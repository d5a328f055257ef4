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

package export

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/tealeg/xlsx/v3"
)

// XLSXWriter exports the converted Arrow record through tealeg/xlsx.
type XLSXWriter struct {
	Record arrow.Record
}

// Name implements SheetWriter.
func (*XLSXWriter) Name() string { return "xlsx" }

// Write implements SheetWriter.
func (w *XLSXWriter) Write(path string) (int64, error) {
	wb := xlsx.NewFile()
	sheet, err := wb.AddSheet(SheetName)
	if err != nil {
		return 0, fmt.Errorf("xlsx: add sheet: %w", err)
	}

	if err := w.fill(sheet); err != nil {
		return 0, fmt.Errorf("xlsx: %w", err)
	}
	if err := wb.Save(path); err != nil {
		return 0, fmt.Errorf("xlsx: save %s: %w", path, err)
	}
	return fileSize(path)
}

func (w *XLSXWriter) fill(sheet *xlsx.Sheet) error {
	schema := w.Record.Schema()

	header := sheet.AddRow()
	for _, field := range schema.Fields() {
		header.AddCell().SetString(field.Name)
	}

	cols := w.Record.Columns()
	rows := int(w.Record.NumRows())
	for i := 0; i < rows; i++ {
		row := sheet.AddRow()
		for c, col := range cols {
			cell := row.AddCell()
			switch arr := col.(type) {
			case *array.Int64:
				cell.SetInt64(arr.Value(i))
			case *array.Float64:
				cell.SetFloat(arr.Value(i))
			case *array.Date32:
				cell.SetDate(arr.Value(i).ToTime())
			case *array.String:
				cell.SetString(arr.Value(i))
			default:
				return fmt.Errorf("unsupported column type %s for %q",
					col.DataType(), schema.Field(c).Name)
			}
		}
	}
	return nil
}
