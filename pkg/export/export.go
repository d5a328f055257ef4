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

// Package export writes the benchmark dataset to spreadsheet files.
//
// Two writer stacks are exercised: excelize consumes the native frame,
// tealeg/xlsx consumes the Arrow record. Each writer performs exactly one
// export per call and releases the target file on every path.
package export

import "os"

// SheetName is the worksheet every writer targets.
const SheetName = "Sheet1"

// SheetWriter writes one dataset to a single spreadsheet file.
type SheetWriter interface {
	// Name identifies the writer stack in reports.
	Name() string

	// Write exports the dataset to path, returning the size of the
	// produced file in bytes. Any failure is returned unwrapped enough
	// for errors.Is to see the underlying cause.
	Write(path string) (int64, error)
}

// fileSize stats the produced file. A successful export of a non-empty
// dataset never produces an empty file.
func fileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
