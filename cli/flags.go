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
	"strconv"

	"github.com/minio/cli"
	"github.com/minio/pkg/v3/console"
)

// Collection of sheetbench flags currently supported
var globalFlags = []cli.Flag{
	cli.BoolFlag{
		Name:   "quiet, q",
		Usage:  "disable progress bar display",
		Hidden: true,
	},
	cli.BoolFlag{
		Name:  "no-color",
		Usage: "disable color theme",
	},
	cli.BoolFlag{
		Name:   "json",
		Usage:  "enable JSON formatted output",
		Hidden: true,
	},
	cli.BoolFlag{
		Name:  "debug",
		Usage: "enable debug output",
	},
	cli.BoolFlag{
		Name:  "autocompletion",
		Usage: "install auto-completion for your shell",
	},
}

var profileFlags = []cli.Flag{
	cli.StringFlag{
		Name:   "pprofdir",
		Usage:  "Write profiles to this folder",
		Value:  "pprof",
		Hidden: true,
	},
	cli.BoolFlag{
		Name:   "cpu",
		Usage:  "Write a local CPU profile",
		Hidden: true,
	},
	cli.BoolFlag{
		Name:   "mem",
		Usage:  "Write an local allocation profile",
		Hidden: true,
	},
	cli.BoolFlag{
		Name:   "block",
		Usage:  "Write a local goroutine blocking profile",
		Hidden: true,
	},
	cli.BoolFlag{
		Name:   "mutex",
		Usage:  "Write a mutex contention profile",
		Hidden: true,
	},
	cli.BoolFlag{
		Name:   "trace",
		Usage:  "Write an local execution trace",
		Hidden: true,
	},
}

// Flags common across benchmark commands.
var benchFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "benchdata",
		Value: "",
		Usage: "Output benchmark+profile data to this file. By default unique filename is generated.",
	},
	cli.StringFlag{
		Name:  "influxdb",
		Usage: "Push benchmark data to InfluxDB. Specify as 'http://<token>@<hostname>:<port>/<bucket>/<org>'",
		Value: "",
	},
	cli.BoolFlag{
		Name:  "clean",
		Usage: "Remove the produced spreadsheet files after the benchmark",
	},
	cli.StringFlag{
		Name:   "config",
		Usage:  "Read run defaults from this YAML file",
		EnvVar: appNameUC + "_CONFIG",
		Value:  "",
	},
}

// Flags describing the dataset and output paths. Defaults reproduce the
// canonical benchmark: 250,000 rows, constant values, fixed file names.
var datasetFlags = []cli.Flag{
	cli.IntFlag{
		Name:   "rows",
		Usage:  "Number of rows in the dataset",
		EnvVar: appNameUC + "_ROWS",
		Value:  250000,
	},
	cli.StringFlag{
		Name:  "excelize-out",
		Usage: "Output file for the excelize export",
		Value: "dataframe_excelize.xlsx",
	},
	cli.StringFlag{
		Name:  "xlsx-out",
		Usage: "Output file for the tealeg/xlsx export",
		Value: "dataframe_xlsx.xlsx",
	},
	cli.Float64Flag{
		Name:  "float-value",
		Usage: "Constant written to the Float column",
		Value: 123.456789,
	},
	cli.StringFlag{
		Name:  "string-value",
		Usage: "Constant written to the String column",
		Value: "Test",
	},
	cli.StringFlag{
		Name:  "parquet",
		Usage: "Also dump the converted dataset to this parquet file",
		Value: "",
	},
}

// Set global states. NOTE: It is deliberately kept monolithic to ensure we dont miss out any flags.
func setGlobalsFromContext(ctx *cli.Context) error {
	quiet := ctx.IsSet("quiet")
	debug := ctx.IsSet("debug")
	json := ctx.IsSet("json")
	noColor := ctx.IsSet("no-color")
	setGlobals(quiet, debug, json, noColor)
	return nil
}

// Set global states. NOTE: It is deliberately kept monolithic to ensure we dont miss out any flags.
func setGlobals(quiet, debug, json, noColor bool) {
	globalQuiet = globalQuiet || quiet
	globalDebug = globalDebug || debug
	globalJSON = globalJSON || json
	globalNoColor = globalNoColor || noColor

	// Disable colorified messages if requested.
	if globalNoColor || globalQuiet {
		console.SetColorOff()
	}
}

// commandLine attempts to reconstruct the commandline.
func commandLine(ctx *cli.Context) string {
	s := os.Args[0] + " " + ctx.Command.Name
	for _, flag := range ctx.Command.Flags {
		val, err := flagToJSON(ctx, flag)
		if err != nil || val == "" {
			continue
		}
		name := flag.GetName()
		switch name {
		case "influxdb":
			val = "*REDACTED*"
		}
		s += " --" + flag.GetName() + "=" + val
	}
	return s
}

// flagToJSON converts a flag to a representation usable on the command line.
func flagToJSON(ctx *cli.Context, flag cli.Flag) (string, error) {
	switch flag.(type) {
	case cli.StringFlag:
		if ctx.IsSet(flag.GetName()) {
			return ctx.String(flag.GetName()), nil
		}
	case cli.BoolFlag:
		if ctx.IsSet(flag.GetName()) {
			return strconv.FormatBool(ctx.Bool(flag.GetName())), nil
		}
	case cli.Int64Flag:
		if ctx.IsSet(flag.GetName()) {
			return fmt.Sprint(ctx.Int64(flag.GetName())), nil
		}
	case cli.IntFlag:
		if ctx.IsSet(flag.GetName()) {
			return fmt.Sprint(ctx.Int(flag.GetName())), nil
		}
	case cli.Float64Flag:
		if ctx.IsSet(flag.GetName()) {
			return fmt.Sprint(ctx.Float64(flag.GetName())), nil
		}
	case cli.DurationFlag:
		if ctx.IsSet(flag.GetName()) {
			return ctx.Duration(flag.GetName()).String(), nil
		}
	default:
		if ctx.IsSet(flag.GetName()) {
			val := ctx.Generic(flag.GetName())
			b, err := json.Marshal(val)
			return string(b), err
		}
	}
	return "", nil
}
