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

package bench

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

func TestTimed(t *testing.T) {
	wantErr := errors.New("disk full")
	tests := []struct {
		name     string
		fn       func() (int64, error)
		wantSize int64
		wantErr  error
	}{
		{
			name: "Success",
			fn: func() (int64, error) {
				time.Sleep(time.Millisecond)
				return 1234, nil
			},
			wantSize: 1234,
		},
		{
			name: "Failure",
			fn: func() (int64, error) {
				return 0, wantErr
			},
			wantErr: wantErr,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := Timed(OpExport, "excelize", "out.xlsx", 100, tt.fn)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Timed() error = %v, want %v", err, tt.wantErr)
			}
			if op.Size != tt.wantSize {
				t.Errorf("Size = %d, want %d", op.Size, tt.wantSize)
			}
			if op.End.Before(op.Start) {
				t.Errorf("End %v before Start %v", op.End, op.Start)
			}
			if op.Duration() < 0 {
				t.Errorf("negative duration %v", op.Duration())
			}
			if tt.wantErr != nil && op.Err != tt.wantErr.Error() {
				t.Errorf("Err = %q, want %q", op.Err, tt.wantErr.Error())
			}
			if tt.wantErr == nil && op.Err != "" {
				t.Errorf("Err = %q, want empty", op.Err)
			}
		})
	}
}

func TestTimedStopsOnPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic to propagate")
		}
	}()
	Timed(OpExport, "excelize", "out.xlsx", 1, func() (int64, error) {
		panic("boom")
	})
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	rcv := c.Receiver()
	for i := 0; i < 5; i++ {
		rcv <- Operation{OpType: OpExport, Writer: "w", Rows: i}
	}
	ops := c.Close()
	if len(ops) != 5 {
		t.Fatalf("collected %d operations, want 5", len(ops))
	}
}

func TestOperationsCSVRoundTrip(t *testing.T) {
	start := time.Now().UTC().Round(time.Microsecond)
	ops := Operations{
		{
			OpType: OpExport,
			Writer: "excelize",
			Start:  start,
			End:    start.Add(3 * time.Second),
			Size:   1 << 20,
			File:   "dataframe_excelize.xlsx",
			Rows:   250000,
		},
		{
			OpType: OpExport,
			Writer: "xlsx",
			Start:  start.Add(4 * time.Second),
			End:    start.Add(9 * time.Second),
			Err:    "write failed:\tno space",
			File:   "dataframe_xlsx.xlsx",
			Rows:   250000,
		},
	}

	var buf bytes.Buffer
	if err := ops.CSV(&buf); err != nil {
		t.Fatal(err)
	}
	got, err := OperationsFromCSV(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(ops) {
		t.Fatalf("got %d operations, want %d", len(got), len(ops))
	}
	for i := range ops {
		want := ops[i]
		if got[i].OpType != want.OpType || got[i].Writer != want.Writer ||
			got[i].Size != want.Size || got[i].File != want.File || got[i].Rows != want.Rows {
			t.Errorf("op %d = %v, want %v", i, got[i], want)
		}
		if !got[i].Start.Equal(want.Start) || !got[i].End.Equal(want.End) {
			t.Errorf("op %d time mismatch: %v->%v, want %v->%v",
				i, got[i].Start, got[i].End, want.Start, want.End)
		}
		// Tabs in error messages are flattened by the escaper.
		if want.Err != "" && got[i].Err == "" {
			t.Errorf("op %d lost its error", i)
		}
	}
}

func TestOperationsSortAndFilter(t *testing.T) {
	base := time.Now()
	ops := Operations{
		{Writer: "xlsx", Start: base.Add(time.Second)},
		{Writer: "excelize", Start: base},
	}
	ops.SortByStartTime()
	if ops[0].Writer != "excelize" {
		t.Errorf("sort order wrong: %v", ops)
	}
	if got := ops.FilterByWriter("xlsx"); len(got) != 1 || got[0].Writer != "xlsx" {
		t.Errorf("FilterByWriter = %v", got)
	}
	if errs := ops.Errors(); len(errs) != 0 {
		t.Errorf("Errors() = %v, want none", errs)
	}
}
