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

package sheetio

import (
	"testing"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "ISO", in: "2024-06-01", want: "2024-06-01"},
		{name: "ShortDashed", in: "06-01-24", want: "2024-06-01"},
		{name: "ShortSlashed", in: "6/1/24", want: "2024-06-01"},
		{name: "RFC3339", in: "2024-06-01T00:00:00Z", want: "2024-06-01"},
		{name: "Serial", in: "45444", want: "2024-06-01"},
		{name: "SerialFractional", in: "45444.75", want: "2024-06-01"},
		{name: "Garbage", in: "yesterday", wantErr: true},
		{name: "Empty", in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDay(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDay(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("parseDay(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func testTable() *Table {
	return &Table{
		Columns: []string{"Int", "Float", "Date", "String"},
		Ints:    []int64{0, 1, 2},
		Floats:  []float64{1.5, 1.5, 1.5},
		Dates:   []string{"2024-06-01", "2024-06-01", "2024-06-01"},
		Strings: []string{"Test", "Test", "Test"},
	}
}

func TestTableEqual(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Table)
		wantErr bool
	}{
		{name: "Identical", mutate: func(*Table) {}},
		{name: "RowCount", mutate: func(o *Table) {
			o.Ints = o.Ints[:2]
		}, wantErr: true},
		{name: "ColumnName", mutate: func(o *Table) {
			o.Columns[3] = "Text"
		}, wantErr: true},
		{name: "IntValue", mutate: func(o *Table) {
			o.Ints[1] = 42
		}, wantErr: true},
		{name: "FloatValue", mutate: func(o *Table) {
			o.Floats[0] = 2.5
		}, wantErr: true},
		{name: "DateValue", mutate: func(o *Table) {
			o.Dates[2] = "2024-06-02"
		}, wantErr: true},
		{name: "StringValue", mutate: func(o *Table) {
			o.Strings[2] = "test"
		}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := testTable(), testTable()
			tt.mutate(b)
			err := a.Equal(b)
			if (err != nil) != tt.wantErr {
				t.Errorf("Equal() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("does-not-exist.xlsx"); err == nil {
		t.Error("Load() of missing file succeeded")
	}
}
