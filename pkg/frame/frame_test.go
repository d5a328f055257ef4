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
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		rows     int
		opts     []Option
		wantErr  bool
		wantRows int
	}{
		{
			name:     "Default",
			rows:     1000,
			wantRows: 1000,
		},
		{
			name:     "SingleRow",
			rows:     1,
			wantRows: 1,
		},
		{
			name:    "ZeroRows",
			rows:    0,
			wantErr: true,
		},
		{
			name:    "NegativeRows",
			rows:    -5,
			wantErr: true,
		},
		{
			name:     "Overrides",
			rows:     10,
			opts:     []Option{WithFloatValue(1.5), WithStringValue("abc")},
			wantRows: 10,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.rows, tt.opts...)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				return
			}
			if got.Rows() != tt.wantRows {
				t.Errorf("Rows() = %v, want %v", got.Rows(), tt.wantRows)
			}
			cols := got.Columns()
			want := []string{ColInt, ColFloat, ColDate, ColString}
			if len(cols) != len(want) {
				t.Fatalf("Columns() = %v, want %v", cols, want)
			}
			for i := range want {
				if cols[i] != want[i] {
					t.Errorf("Columns()[%d] = %q, want %q", i, cols[i], want[i])
				}
			}
			for i := 0; i < got.Rows(); i++ {
				if got.Int(i) != int64(i) {
					t.Errorf("Int(%d) = %d, want %d", i, got.Int(i), i)
					return
				}
			}
		})
	}
}

func TestNewDefaults(t *testing.T) {
	f, err := New(4)
	if err != nil {
		t.Fatal(err)
	}
	if f.FloatValue() != DefaultFloatValue {
		t.Errorf("FloatValue() = %v, want %v", f.FloatValue(), DefaultFloatValue)
	}
	if f.StringValue() != DefaultStringValue {
		t.Errorf("StringValue() = %q, want %q", f.StringValue(), DefaultStringValue)
	}
	now := time.Now().UTC()
	y, m, d := f.DateValue().Date()
	wy, wm, wd := now.Date()
	if y != wy || m != wm || d != wd {
		t.Errorf("DateValue() = %v, want today (%v)", f.DateValue(), now)
	}
	if h, min, s := f.DateValue().Clock(); h != 0 || min != 0 || s != 0 {
		t.Errorf("DateValue() not truncated to day: %v", f.DateValue())
	}
}

func TestWithDateTruncates(t *testing.T) {
	in := time.Date(2023, time.March, 14, 15, 9, 26, 535, time.FixedZone("x", 3600))
	f, err := New(1, WithDate(in))
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2023, time.March, 14, 0, 0, 0, 0, time.UTC)
	if !f.DateValue().Equal(want) {
		t.Errorf("DateValue() = %v, want %v", f.DateValue(), want)
	}
}

func TestIntsIsCopy(t *testing.T) {
	f, err := New(10)
	if err != nil {
		t.Fatal(err)
	}
	ints := f.Ints()
	ints[0] = 42
	if f.Int(0) != 0 {
		t.Errorf("mutating Ints() result changed the frame: Int(0) = %d", f.Int(0))
	}
	cols := f.Columns()
	cols[0] = "changed"
	if f.Columns()[0] != ColInt {
		t.Errorf("mutating Columns() result changed the frame")
	}
}
