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
	"fmt"

	"github.com/minio/cli"
	"github.com/minio/mc/pkg/probe"
	"github.com/minio/pkg/v3/console"
	"golang.org/x/sync/errgroup"

	"github.com/sheetbench/sheetbench/pkg/sheetio"
)

var cmpFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "excelize-out",
		Usage: "Workbook produced by the excelize export",
		Value: "dataframe_excelize.xlsx",
	},
	cli.StringFlag{
		Name:  "xlsx-out",
		Usage: "Workbook produced by the tealeg/xlsx export",
		Value: "dataframe_xlsx.xlsx",
	},
}

var cmpCmd = cli.Command{
	Name:   "cmp",
	Usage:  "verify two exported workbooks carry identical content",
	Action: mainCmp,
	Before: setGlobalsFromContext,
	Flags:  combineFlags(globalFlags, cmpFlags),
	CustomHelpTemplate: `NAME:
  {{.HelpName}} - {{.Usage}}

USAGE:
  {{.HelpName}} [FLAGS] [FILE1 FILE2]

DESCRIPTION:
  Loads both workbooks and verifies they hold the same logical dataset:
  identical column headers, row counts, Int/Float/String values, and the
  same calendar date in the Date column. Cell level representation is
  allowed to differ between the two writer stacks.

EXAMPLES:
  # Compare the default outputs of 'sheetbench run'.
  {{.HelpName}}

  # Compare two specific workbooks.
  {{.HelpName}} a.xlsx b.xlsx

FLAGS:
  {{range .VisibleFlags}}{{.}}
  {{end}}`,
}

func mainCmp(ctx *cli.Context) error {
	pathA := ctx.String("excelize-out")
	pathB := ctx.String("xlsx-out")
	switch ctx.NArg() {
	case 0:
	case 2:
		pathA = ctx.Args().Get(0)
		pathB = ctx.Args().Get(1)
	default:
		fatalIf(errInvalidArgument(), "Command takes either no or exactly two file arguments")
	}

	var tableA, tableB *sheetio.Table
	var g errgroup.Group
	g.Go(func() (err error) {
		tableA, err = sheetio.Load(pathA)
		return err
	})
	g.Go(func() (err error) {
		tableB, err = sheetio.Load(pathB)
		return err
	})
	err := g.Wait()
	fatalIf(probe.NewError(err), "Unable to load workbooks")

	err = tableA.Equal(tableB)
	fatalIf(probe.NewError(err), "Workbooks %q and %q differ", pathA, pathB)

	console.Infoln(fmt.Sprintf("Workbooks match: %d rows, %d columns.",
		tableA.Rows(), len(tableA.Columns)))
	return nil
}
