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

	"github.com/xuri/excelize/v2"

	"github.com/sheetbench/sheetbench/pkg/frame"
)

// dateFormat is the number format applied to Date cells.
const dateFormat = "yyyy-mm-dd"

// ExcelizeWriter exports the native frame through excelize.
// Rows go through the stream writer, which keeps memory flat for large
// row counts.
type ExcelizeWriter struct {
	Frame *frame.Frame
}

// Name implements SheetWriter.
func (*ExcelizeWriter) Name() string { return "excelize" }

// Write implements SheetWriter.
func (w *ExcelizeWriter) Write(path string) (int64, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := w.write(f); err != nil {
		return 0, fmt.Errorf("excelize: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return 0, fmt.Errorf("excelize: save %s: %w", path, err)
	}
	return fileSize(path)
}

func (w *ExcelizeWriter) write(f *excelize.File) error {
	numFmt := dateFormat
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return err
	}

	header := make([]interface{}, 0, 4)
	for _, name := range w.Frame.Columns() {
		header = append(header, name)
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}

	rows := w.Frame.Rows()
	floatVal := w.Frame.FloatValue()
	dateVal := w.Frame.DateValue()
	strVal := w.Frame.StringValue()
	for i := 0; i < rows; i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			w.Frame.Int(i),
			floatVal,
			excelize.Cell{StyleID: dateStyle, Value: dateVal},
			strVal,
		}
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}
	return sw.Flush()
}
