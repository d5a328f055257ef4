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

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/zstd"
	"github.com/minio/cli"
	"github.com/minio/mc/pkg/probe"
	"github.com/minio/pkg/v3/console"

	"github.com/sheetbench/sheetbench/pkg/bench"
)

var (
	analyzeTitleStyle  = lipgloss.NewStyle().Bold(true)
	analyzeHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	analyzeFastStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// Analyze benchmark data command.
var analyzeCmd = cli.Command{
	Name:   "analyze",
	Usage:  "analyze existing benchmark data",
	Action: mainAnalyze,
	Before: setGlobalsFromContext,
	Flags:  combineFlags(globalFlags),
	CustomHelpTemplate: `NAME:
  {{.HelpName}} - {{.Usage}}

USAGE:
  {{.HelpName}} [FLAGS] BENCHDATA

DESCRIPTION:
  Loads the zstd compressed CSV written by 'sheetbench run' and renders
  the same per-writer comparison the run printed.

EXAMPLES:
  # Analyze a previous run.
  {{.HelpName}} sheetbench-run-2026-08-29[120000]-xxxx.csv.zst

FLAGS:
  {{range .VisibleFlags}}{{.}}
  {{end}}`,
}

func mainAnalyze(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		fatalIf(errInvalidArgument(), "Command takes a single benchmark data file")
	}
	ops := loadBenchData(ctx.Args().First())
	ops.SortByStartTime()
	printAnalysis(ctx, ops)
	return nil
}

// loadBenchData reads operations back from a zstd compressed CSV dump.
func loadBenchData(path string) bench.Operations {
	f, err := os.Open(path)
	fatalIf(probe.NewError(err), "Unable to open %q", path)
	defer f.Close()

	dec, err := zstd.NewReader(f)
	fatalIf(probe.NewError(err), "Unable to decompress %q", path)
	defer dec.Close()

	ops, err := bench.OperationsFromCSV(dec)
	fatalIf(probe.NewError(err), "Unable to parse %q", path)
	return ops
}

// writerSummary aggregates the operations of one writer stack.
type writerSummary struct {
	writer string
	file   string
	rows   int
	size   int64
	dur    time.Duration
}

// printAnalysis reports the collected operations, either as JSON or as a
// rendered comparison table with one line per writer stack.
func printAnalysis(ctx *cli.Context, ops bench.Operations) {
	if globalJSON || ctx.Bool("json") {
		printJSONAnalysis(ops)
		return
	}

	if len(ops) == 0 {
		console.Infoln("No operations recorded.")
		return
	}

	for _, e := range ops.Errors() {
		console.Errorln("Export error:", e)
	}

	console.Println("")
	console.Println(analyzeTitleStyle.Render("Export comparison:"))
	console.Println(analyzeHeaderStyle.Render(fmt.Sprintf("%-10s %-26s %12s %12s %12s %14s",
		"WRITER", "FILE", "ROWS", "SIZE", "TIME", "ROWS/S")))

	sums := summarize(ops)
	fastest, slowest := sums[0], sums[0]
	for _, s := range sums {
		if s.dur < fastest.dur {
			fastest = s
		}
		if s.dur > slowest.dur {
			slowest = s
		}
		console.Println(fmt.Sprintf("%-10s %-26s %12s %12s %12v %14s",
			s.writer, s.file,
			humanize.Comma(int64(s.rows)),
			humanize.IBytes(uint64(s.size)),
			s.dur.Round(time.Millisecond),
			humanize.Comma(int64(rowsPerSec(s.rows, s.dur)))))
	}

	if len(sums) > 1 && fastest.writer != slowest.writer && fastest.dur > 0 {
		ratio := float64(slowest.dur) / float64(fastest.dur)
		console.Println("")
		console.Println(analyzeFastStyle.Render(fmt.Sprintf("%s was %.2fx faster than %s.",
			fastest.writer, ratio, slowest.writer)))
	}
	console.Println(fmt.Sprintf("Total export time: %v.",
		ops.TotalDuration().Round(time.Millisecond)))
	console.Println("")

	if globalDebug {
		console.Println("Command line:", commandLine(ctx))
	}
}

// summarize folds the operations into one row per writer stack, in
// first-seen order.
func summarize(ops bench.Operations) []writerSummary {
	var writers []string
	seen := make(map[string]struct{}, 2)
	for _, op := range ops {
		if _, ok := seen[op.Writer]; ok {
			continue
		}
		seen[op.Writer] = struct{}{}
		writers = append(writers, op.Writer)
	}

	sums := make([]writerSummary, 0, len(writers))
	for _, writer := range writers {
		wops := ops.FilterByWriter(writer)
		s := writerSummary{writer: writer, dur: wops.TotalDuration()}
		for _, op := range wops {
			s.file = op.File
			s.rows = op.Rows
			s.size += op.Size
		}
		sums = append(sums, s)
	}
	return sums
}

func printJSONAnalysis(ops bench.Operations) {
	b, err := json.MarshalIndent(ops, "", "  ")
	fatalIf(probe.NewError(err), "Unable to marshal analysis")
	console.Println(string(b))
}

func rowsPerSec(rows int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(rows) / d.Seconds()
}
