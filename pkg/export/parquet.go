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
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
)

// ParquetWriter dumps the Arrow record to a parquet file. The file is a
// reference artifact next to the workbooks, not part of the measured
// comparison.
type ParquetWriter struct {
	Record arrow.Record
}

// Name implements SheetWriter.
func (*ParquetWriter) Name() string { return "parquet" }

// Write implements SheetWriter.
func (w *ParquetWriter) Write(path string) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("parquet: create %s: %w", path, err)
	}
	defer f.Close()

	writer, err := pqarrow.NewFileWriter(w.Record.Schema(), f, nil, pqarrow.DefaultWriterProps())
	if err != nil {
		return 0, fmt.Errorf("parquet: %w", err)
	}

	if err := writer.Write(w.Record); err != nil {
		writer.Close()
		return 0, fmt.Errorf("parquet: write: %w", err)
	}
	if err := writer.Close(); err != nil {
		return 0, fmt.Errorf("parquet: close: %w", err)
	}
	return fileSize(path)
}
