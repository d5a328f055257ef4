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
	"github.com/minio/cli"
	"github.com/minio/pkg/v3/console"

	"github.com/sheetbench/sheetbench/pkg/bench"
)

var runFlags = []cli.Flag{}

var runCombinedFlags = combineFlags(globalFlags, profileFlags, datasetFlags, benchFlags, runFlags)

// Run command.
var runCmd = cli.Command{
	Name:   "run",
	Usage:  "benchmark spreadsheet export through both writer stacks",
	Action: mainRun,
	Before: setGlobalsFromContext,
	Flags:  runCombinedFlags,
	CustomHelpTemplate: `NAME:
  {{.HelpName}} - {{.Usage}}

USAGE:
  {{.HelpName}} [FLAGS]

DESCRIPTION:
  Builds an in-memory dataset with four columns (Int, Float, Date, String)
  and exports it to a .xlsx workbook twice, once per writer stack, timing
  each export:

  1. The native frame is written with excelize (stream writer).
  2. The frame is converted to an Arrow record batch and written with
     tealeg/xlsx.

  The steps run strictly sequentially. Both workbooks contain the same
  logical rows and columns; elapsed wall clock time per export is
  reported, and the raw measurements are saved as zstd compressed CSV.

EXAMPLES:
  # Run the canonical comparison: 250,000 rows.
  {{.HelpName}}

  # Smaller dataset, remove the workbooks afterwards.
  {{.HelpName}} --rows=10000 --clean

  # Keep a parquet dump of the converted dataset next to the workbooks.
  {{.HelpName}} --parquet=dataframe.parquet

FLAGS:
  {{range .VisibleFlags}}{{.}}
  {{end}}`,
}

// mainRun is the entry point for the run command.
func mainRun(ctx *cli.Context) error {
	cfg := loadRunConfig(ctx)
	checkRunSyntax(ctx, cfg)

	b := bench.Sheet{
		Common: bench.Common{
			Rows: cfg.Rows,
		},
		FloatValue:  cfg.FloatValue,
		StringValue: cfg.StringValue,
		ExcelizeOut: cfg.ExcelizeOut,
		XLSXOut:     cfg.XLSXOut,
		ParquetOut:  cfg.ParquetOut,
	}
	return runBench(ctx, &b)
}

func checkRunSyntax(ctx *cli.Context, cfg runConfig) {
	if ctx.NArg() > 0 {
		console.Fatal("Command takes no arguments")
	}
	if cfg.Rows <= 0 {
		console.Fatal("--rows must be positive")
	}
	if cfg.ExcelizeOut == "" || cfg.XLSXOut == "" {
		console.Fatal("output file names cannot be empty")
	}
	if cfg.ExcelizeOut == cfg.XLSXOut {
		console.Fatal("--excelize-out and --xlsx-out must differ")
	}
}
