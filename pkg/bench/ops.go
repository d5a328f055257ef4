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
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

type Operations []Operation

// Operation is a single timed unit of work, in this tool always one
// export of the dataset to a file.
type Operation struct {
	OpType string    `json:"type"`
	Writer string    `json:"writer"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Err    string    `json:"err"`
	Size   int64     `json:"size"`
	File   string    `json:"file"`
	Rows   int       `json:"rows"`
}

// Duration returns the wall clock time the operation took.
func (o Operation) Duration() time.Duration {
	return o.End.Sub(o.Start)
}

func (o Operation) String() string {
	return fmt.Sprintf("%s[%s] %s, %v->%v, Size: %d, Rows: %d, Error: %v",
		o.OpType, o.Writer, o.File, o.Start, o.End, o.Size, o.Rows, o.Err)
}

// Timed runs fn with a scoped timer around it. The end timestamp is
// stamped in a defer, so it is recorded on every exit path, including a
// panic unwinding through fn. Errors are recorded on the operation and
// returned unchanged; timing never masks the underlying failure.
func Timed(opType, writer, file string, rows int, fn func() (int64, error)) (op Operation, err error) {
	op = Operation{
		OpType: opType,
		Writer: writer,
		File:   file,
		Rows:   rows,
		Start:  time.Now(),
	}
	defer func() {
		op.End = time.Now()
		if err != nil {
			op.Err = err.Error()
		}
	}()
	op.Size, err = fn()
	return op, err
}

// Collector receives operations as they complete.
type Collector struct {
	ops Operations
	// The mutex protects the ops above.
	// Once ops have been added, they should no longer be modified.
	opsMu sync.Mutex
	rcv   chan Operation
	rcvWg sync.WaitGroup
}

func NewCollector() *Collector {
	r := &Collector{
		ops: make(Operations, 0, 16),
		rcv: make(chan Operation, 16),
	}
	r.rcvWg.Add(1)
	go func() {
		defer r.rcvWg.Done()
		for op := range r.rcv {
			r.opsMu.Lock()
			r.ops = append(r.ops, op)
			r.opsMu.Unlock()
		}
	}()
	return r
}

func (c *Collector) Receiver() chan<- Operation {
	return c.rcv
}

// Close drains the receiver and returns the collected operations.
func (c *Collector) Close() Operations {
	close(c.rcv)
	c.rcvWg.Wait()
	return c.ops
}

// SortByStartTime sorts operations by start time, earliest first.
func (o Operations) SortByStartTime() {
	sort.Slice(o, func(i, j int) bool {
		return o[i].Start.Before(o[j].Start)
	})
}

// FilterByWriter returns the operations run by a specific writer stack.
func (o Operations) FilterByWriter(writer string) Operations {
	dst := make(Operations, 0, len(o))
	for _, op := range o {
		if op.Writer == writer {
			dst = append(dst, op)
		}
	}
	return dst
}

// Errors returns the error messages of all failed operations.
func (o Operations) Errors() []string {
	var errs []string
	for _, op := range o {
		if op.Err != "" {
			errs = append(errs, op.Err)
		}
	}
	return errs
}

// TotalDuration sums individual operation durations.
func (o Operations) TotalDuration() time.Duration {
	var d time.Duration
	for _, op := range o {
		d += op.Duration()
	}
	return d
}

const csvHeader = "idx\top\twriter\tbytes\trows\tfile\terror\tstart\tend\tduration_ns\n"

// CSV writes the operations as tab separated values.
func (o Operations) CSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(csvHeader); err != nil {
		return err
	}
	for i, op := range o {
		_, err := fmt.Fprintf(bw, "%d\t%s\t%s\t%d\t%d\t%s\t%s\t%s\t%s\t%d\n",
			i, op.OpType, op.Writer, op.Size, op.Rows, op.File,
			csvEscapeString(op.Err),
			op.Start.Format(time.RFC3339Nano), op.End.Format(time.RFC3339Nano),
			op.End.Sub(op.Start)/time.Nanosecond)
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// OperationsFromCSV loads operations from a CSV dump.
func OperationsFromCSV(r io.Reader) (Operations, error) {
	var ops Operations
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.ReuseRecord = true
	header, err := cr.Read()
	if err != nil {
		return nil, err
	}
	fieldIdx := make(map[string]int)
	for i, s := range header {
		fieldIdx[s] = i
	}
	for {
		values, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		start, err := time.Parse(time.RFC3339Nano, values[fieldIdx["start"]])
		if err != nil {
			return nil, err
		}
		end, err := time.Parse(time.RFC3339Nano, values[fieldIdx["end"]])
		if err != nil {
			return nil, err
		}
		size, err := strconv.ParseInt(values[fieldIdx["bytes"]], 10, 64)
		if err != nil {
			return nil, err
		}
		rows, err := strconv.Atoi(values[fieldIdx["rows"]])
		if err != nil {
			return nil, err
		}
		ops = append(ops, Operation{
			OpType: values[fieldIdx["op"]],
			Writer: values[fieldIdx["writer"]],
			Start:  start,
			End:    end,
			Err:    values[fieldIdx["error"]],
			Size:   size,
			File:   values[fieldIdx["file"]],
			Rows:   rows,
		})
	}
	return ops, nil
}

// csvEscapeString removes characters that would corrupt the tab separated
// format.
func csvEscapeString(s string) string {
	return strings.NewReplacer("\t", " ", "\n", " ", "\r", " ").Replace(s)
}
