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
	"context"
	"fmt"
	"os"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/sheetbench/sheetbench/pkg/export"
	"github.com/sheetbench/sheetbench/pkg/frame"
)

// OpExport is the operation type recorded for spreadsheet exports.
const OpExport = "export"

// Sheet benchmarks spreadsheet export performance of the two writer
// stacks. The run is strictly sequential: build the frame, export it
// through excelize, convert it to an Arrow record, export that through
// tealeg/xlsx.
type Sheet struct {
	Common

	// Fixture overrides. Zero values select the frame defaults.
	FloatValue  float64
	StringValue string
	Date        time.Time

	// Output paths.
	ExcelizeOut string
	XLSXOut     string

	// ParquetOut, when set, also dumps the Arrow record to this path
	// after the measured exports.
	ParquetOut string

	frame  *frame.Frame
	record arrow.Record
}

// Prepare builds the dataset.
func (s *Sheet) Prepare(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.UpdateStatus != nil {
		s.UpdateStatus(fmt.Sprintf("Building dataset: %d rows, 4 columns", s.Rows))
	}

	var opts []frame.Option
	if s.FloatValue != 0 {
		opts = append(opts, frame.WithFloatValue(s.FloatValue))
	}
	if s.StringValue != "" {
		opts = append(opts, frame.WithStringValue(s.StringValue))
	}
	if !s.Date.IsZero() {
		opts = append(opts, frame.WithDate(s.Date))
	}

	f, err := frame.New(s.Rows, opts...)
	if err != nil {
		return err
	}
	s.frame = f
	s.prepareProgress(1)
	return nil
}

// Start runs the two timed exports. Both operations are returned even
// when the second is never reached; the first error aborts the run.
func (s *Sheet) Start(ctx context.Context) (Operations, error) {
	if s.frame == nil {
		return nil, fmt.Errorf("sheet: Start called before Prepare")
	}
	collector := NewCollector()
	rcv := collector.Receiver()

	err := s.run(ctx, rcv)
	ops := collector.Close()
	ops.SortByStartTime()
	return ops, err
}

func (s *Sheet) run(ctx context.Context, rcv chan<- Operation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ew := &export.ExcelizeWriter{Frame: s.frame}
	op, err := Timed(OpExport, ew.Name(), s.ExcelizeOut, s.frame.Rows(), func() (int64, error) {
		return ew.Write(s.ExcelizeOut)
	})
	rcv <- op
	if err != nil {
		return err
	}

	// The conversion sits between the two measured exports, exactly
	// where the second representation is first needed.
	s.record = s.frame.ArrowRecord(memory.NewGoAllocator())

	if err := ctx.Err(); err != nil {
		return err
	}

	xw := &export.XLSXWriter{Record: s.record}
	op, err = Timed(OpExport, xw.Name(), s.XLSXOut, s.frame.Rows(), func() (int64, error) {
		return xw.Write(s.XLSXOut)
	})
	rcv <- op
	if err != nil {
		return err
	}

	if s.ParquetOut != "" {
		pw := &export.ParquetWriter{Record: s.record}
		if s.UpdateStatus != nil {
			s.UpdateStatus(fmt.Sprintf("Writing parquet reference to %q", s.ParquetOut))
		}
		if _, err := pw.Write(s.ParquetOut); err != nil {
			return err
		}
	}
	return nil
}

// Cleanup releases the Arrow record and, when requested, removes the
// produced files.
func (s *Sheet) Cleanup(_ context.Context) {
	if s.record != nil {
		s.record.Release()
		s.record = nil
	}
	if !s.Clean {
		return
	}
	for _, path := range []string{s.ExcelizeOut, s.XLSXOut, s.ParquetOut} {
		if path == "" {
			continue
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) && s.Error != nil {
			s.Error("unable to remove ", path, ": ", err)
		}
	}
}
