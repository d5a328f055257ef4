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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/sheetbench/sheetbench/pkg/frame"
	"github.com/sheetbench/sheetbench/pkg/sheetio"
)

func testFrame(t *testing.T, rows int) *frame.Frame {
	t.Helper()
	f, err := frame.New(rows,
		frame.WithDate(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatal(err)
	}
	return f
}

// verifyTable checks an exported workbook against the frame contents.
func verifyTable(t *testing.T, tbl *sheetio.Table, f *frame.Frame) {
	t.Helper()
	if tbl.Rows() != f.Rows() {
		t.Fatalf("rows = %d, want %d", tbl.Rows(), f.Rows())
	}
	for i, want := range f.Columns() {
		if tbl.Columns[i] != want {
			t.Errorf("column %d = %q, want %q", i, tbl.Columns[i], want)
		}
	}
	wantDay := f.DateValue().Format("2006-01-02")
	for i := 0; i < f.Rows(); i++ {
		if tbl.Ints[i] != f.Int(i) {
			t.Errorf("row %d: Int = %d, want %d", i, tbl.Ints[i], f.Int(i))
			return
		}
		if tbl.Floats[i] != f.FloatValue() {
			t.Errorf("row %d: Float = %v, want %v", i, tbl.Floats[i], f.FloatValue())
			return
		}
		if tbl.Dates[i] != wantDay {
			t.Errorf("row %d: Date = %s, want %s", i, tbl.Dates[i], wantDay)
			return
		}
		if tbl.Strings[i] != f.StringValue() {
			t.Errorf("row %d: String = %q, want %q", i, tbl.Strings[i], f.StringValue())
			return
		}
	}
}

func TestExcelizeWriter(t *testing.T) {
	f := testFrame(t, 4)
	path := filepath.Join(t.TempDir(), "out.xlsx")

	w := &ExcelizeWriter{Frame: f}
	size, err := w.Write(path)
	if err != nil {
		t.Fatal(err)
	}
	if size <= 0 {
		t.Fatalf("size = %d, want > 0", size)
	}

	tbl, err := sheetio.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	verifyTable(t, tbl, f)
}

func TestXLSXWriter(t *testing.T) {
	f := testFrame(t, 4)
	rec := f.ArrowRecord(memory.NewGoAllocator())
	defer rec.Release()
	path := filepath.Join(t.TempDir(), "out.xlsx")

	w := &XLSXWriter{Record: rec}
	size, err := w.Write(path)
	if err != nil {
		t.Fatal(err)
	}
	if size <= 0 {
		t.Fatalf("size = %d, want > 0", size)
	}

	tbl, err := sheetio.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	verifyTable(t, tbl, f)
}

func TestWritersProduceEqualContent(t *testing.T) {
	f := testFrame(t, 25)
	rec := f.ArrowRecord(memory.NewGoAllocator())
	defer rec.Release()

	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.xlsx")
	pathB := filepath.Join(dir, "b.xlsx")

	if _, err := (&ExcelizeWriter{Frame: f}).Write(pathA); err != nil {
		t.Fatal(err)
	}
	if _, err := (&XLSXWriter{Record: rec}).Write(pathB); err != nil {
		t.Fatal(err)
	}

	tblA, err := sheetio.Load(pathA)
	if err != nil {
		t.Fatal(err)
	}
	tblB, err := sheetio.Load(pathB)
	if err != nil {
		t.Fatal(err)
	}
	if err := tblA.Equal(tblB); err != nil {
		t.Errorf("workbooks differ: %v", err)
	}
}

func TestRepeatedExportIsIdentical(t *testing.T) {
	f := testFrame(t, 10)
	dir := t.TempDir()
	pathA := filepath.Join(dir, "first.xlsx")
	pathB := filepath.Join(dir, "second.xlsx")

	for _, path := range []string{pathA, pathB} {
		if _, err := (&ExcelizeWriter{Frame: f}).Write(path); err != nil {
			t.Fatal(err)
		}
	}
	tblA, err := sheetio.Load(pathA)
	if err != nil {
		t.Fatal(err)
	}
	tblB, err := sheetio.Load(pathB)
	if err != nil {
		t.Fatal(err)
	}
	if err := tblA.Equal(tblB); err != nil {
		t.Errorf("repeated exports differ: %v", err)
	}
}

func TestWriteUnwritablePath(t *testing.T) {
	f := testFrame(t, 4)
	rec := f.ArrowRecord(memory.NewGoAllocator())
	defer rec.Release()
	bad := filepath.Join(t.TempDir(), "missing", "dir", "out.xlsx")

	writers := []SheetWriter{
		&ExcelizeWriter{Frame: f},
		&XLSXWriter{Record: rec},
		&ParquetWriter{Record: rec},
	}
	for _, w := range writers {
		t.Run(w.Name(), func(t *testing.T) {
			if _, err := w.Write(bad); err == nil {
				t.Errorf("Write() to unwritable path succeeded")
			}
		})
	}
}

func TestParquetWriter(t *testing.T) {
	f := testFrame(t, 100)
	rec := f.ArrowRecord(memory.NewGoAllocator())
	defer rec.Release()
	path := filepath.Join(t.TempDir(), "out.parquet")

	w := &ParquetWriter{Record: rec}
	size, err := w.Write(path)
	if err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if size != info.Size() || size <= 0 {
		t.Errorf("size = %d, stat = %d", size, info.Size())
	}
}
