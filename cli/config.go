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
	"os"

	"github.com/minio/cli"
	"github.com/minio/mc/pkg/probe"
	"gopkg.in/yaml.v3"
)

// runConfig are the effective run parameters after merging the optional
// YAML config file with command line flags. Flags that were set
// explicitly always win over file values.
type runConfig struct {
	Rows        int     `yaml:"rows"`
	ExcelizeOut string  `yaml:"excelize_out"`
	XLSXOut     string  `yaml:"xlsx_out"`
	ParquetOut  string  `yaml:"parquet_out"`
	FloatValue  float64 `yaml:"float_value"`
	StringValue string  `yaml:"string_value"`
}

// loadRunConfig merges flag defaults, the optional --config file and
// explicit flags, in that order of precedence (lowest first).
func loadRunConfig(ctx *cli.Context) runConfig {
	cfg := runConfig{
		Rows:        ctx.Int("rows"),
		ExcelizeOut: ctx.String("excelize-out"),
		XLSXOut:     ctx.String("xlsx-out"),
		ParquetOut:  ctx.String("parquet"),
		FloatValue:  ctx.Float64("float-value"),
		StringValue: ctx.String("string-value"),
	}

	path := ctx.String("config")
	if path == "" {
		return cfg
	}

	data, err := os.ReadFile(path)
	fatalIf(probe.NewError(err), "Unable to read config file %q", path)

	var file runConfig
	err = yaml.Unmarshal(data, &file)
	fatalIf(probe.NewError(err), "Unable to parse config file %q", path)

	if file.Rows != 0 && !ctx.IsSet("rows") {
		cfg.Rows = file.Rows
	}
	if file.ExcelizeOut != "" && !ctx.IsSet("excelize-out") {
		cfg.ExcelizeOut = file.ExcelizeOut
	}
	if file.XLSXOut != "" && !ctx.IsSet("xlsx-out") {
		cfg.XLSXOut = file.XLSXOut
	}
	if file.ParquetOut != "" && !ctx.IsSet("parquet") {
		cfg.ParquetOut = file.ParquetOut
	}
	if file.FloatValue != 0 && !ctx.IsSet("float-value") {
		cfg.FloatValue = file.FloatValue
	}
	if file.StringValue != "" && !ctx.IsSet("string-value") {
		cfg.StringValue = file.StringValue
	}
	return cfg
}
