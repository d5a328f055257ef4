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
	"flag"
	"path/filepath"
	"testing"
	"time"

	"github.com/minio/cli"

	"github.com/sheetbench/sheetbench/pkg/bench"
)

// testContext builds a cli context with the flags runBench reads.
func testContext(benchdata string) *cli.Context {
	set := flag.NewFlagSet(appName, flag.ContinueOnError)
	set.String("benchdata", benchdata, "")
	set.String("influxdb", "", "")
	set.Bool("clean", false, "")
	set.Bool("json", false, "")
	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestRunBenchAnalyzeRoundTrip(t *testing.T) {
	quiet := globalQuiet
	globalQuiet = true
	defer func() { globalQuiet = quiet }()

	dir := t.TempDir()
	benchdata := filepath.Join(dir, "ops")

	b := &bench.Sheet{
		Common:      bench.Common{Rows: 25},
		ExcelizeOut: filepath.Join(dir, "excelize.xlsx"),
		XLSXOut:     filepath.Join(dir, "xlsx.xlsx"),
	}
	if err := runBench(testContext(benchdata), b); err != nil {
		t.Fatal(err)
	}

	ops := loadBenchData(benchdata + ".csv.zst")
	if len(ops) != 2 {
		t.Fatalf("got %d operations, want 2", len(ops))
	}
	for _, op := range ops {
		if op.Err != "" {
			t.Errorf("%s: unexpected error %q", op.Writer, op.Err)
		}
		if op.Rows != 25 {
			t.Errorf("%s: rows = %d, want 25", op.Writer, op.Rows)
		}
	}

	set := flag.NewFlagSet(appName, flag.ContinueOnError)
	if err := set.Parse([]string{benchdata + ".csv.zst"}); err != nil {
		t.Fatal(err)
	}
	if err := mainAnalyze(cli.NewContext(cli.NewApp(), set, nil)); err != nil {
		t.Fatal(err)
	}
}

func TestSummarize(t *testing.T) {
	base := time.Now()
	ops := bench.Operations{
		{Writer: "excelize", File: "a.xlsx", Rows: 10, Size: 100,
			Start: base, End: base.Add(2 * time.Second)},
		{Writer: "xlsx", File: "b.xlsx", Rows: 10, Size: 300,
			Start: base.Add(2 * time.Second), End: base.Add(3 * time.Second)},
	}
	sums := summarize(ops)
	if len(sums) != 2 {
		t.Fatalf("got %d summaries, want 2", len(sums))
	}
	if sums[0].writer != "excelize" || sums[1].writer != "xlsx" {
		t.Errorf("writer order = %q, %q", sums[0].writer, sums[1].writer)
	}
	if sums[0].dur != 2*time.Second || sums[1].dur != time.Second {
		t.Errorf("durations = %v, %v", sums[0].dur, sums[1].dur)
	}
	if sums[1].size != 300 || sums[1].file != "b.xlsx" {
		t.Errorf("summary = %+v", sums[1])
	}
}

func TestPRandASCII(t *testing.T) {
	for _, n := range []int{1, 4, 8} {
		s := pRandASCII(n)
		if len(s) != n {
			t.Errorf("pRandASCII(%d) length = %d", n, len(s))
		}
	}
}
