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
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/cheggaaa/pb"
	"github.com/klauspost/compress/zstd"
	"github.com/minio/cli"
	"github.com/minio/mc/pkg/probe"
	"github.com/minio/pkg/v3/console"

	"github.com/sheetbench/sheetbench/pkg/bench"
)

// runBench will run the supplied benchmark and save/print the analysis.
func runBench(ctx *cli.Context, b bench.Benchmark) error {
	console.Infoln("Preparing dataset.")

	pgDone := make(chan struct{})
	c := b.GetCommon()
	c.Clean = ctx.Bool("clean")
	c.Error = printError
	if !globalQuiet && !globalJSON {
		c.UpdateStatus = func(s string) {
			printInfo(s)
		}
		c.PrepareProgress = make(chan float64, 1)
		const pgScale = 10000
		pg := newProgressBar(pgScale, pb.U_NO)
		pg.SetCaption("Preparing")
		pg.ShowCounters = false
		pg.ShowElapsedTime = false
		pg.ShowSpeed = false
		pg.ShowTimeLeft = false
		pg.ShowFinalTime = true
		go func() {
			defer close(pgDone)
			defer pg.FinishPrint("\n")
			tick := time.Tick(time.Millisecond * 125)
			pg.Set(-1)
			newVal := int64(-1)
			for {
				select {
				case <-tick:
					current := pg.Get()
					if current != newVal {
						pg.Set64(newVal)
						pg.Update()
					}
				case pct, ok := <-c.PrepareProgress:
					if !ok {
						pg.Set64(pgScale)
						if newVal > 0 {
							pg.Update()
						}
						return
					}
					newVal = int64(pct * pgScale)
				}
			}
		}()
	} else {
		close(pgDone)
	}

	err := b.Prepare(context.Background())
	if c.PrepareProgress != nil {
		close(c.PrepareProgress)
		c.PrepareProgress = nil
		<-pgDone
	}
	fatalIf(probe.NewError(err), "Unable to prepare benchmark")

	var wg sync.WaitGroup
	var influxChan chan<- bench.Operation
	if ctx.String("influxdb") != "" {
		influxChan = newInfluxDB(ctx, &wg)
	}

	console.Infoln("Starting benchmark...")
	ops, err := b.Start(context.Background())
	ops.SortByStartTime()

	if influxChan != nil {
		for _, op := range ops {
			influxChan <- op
		}
		close(influxChan)
		wg.Wait()
	}

	writeBenchData(ctx, ops)

	if err != nil {
		// A failed export halts the comparison rather than produce a
		// misleading partial timing result.
		b.Cleanup(context.Background())
		fatalIf(probe.NewError(err), "Benchmark aborted")
	}

	printAnalysis(ctx, ops)
	b.Cleanup(context.Background())
	return nil
}

// writeBenchData dumps the raw operations to a zstd compressed CSV file.
func writeBenchData(ctx *cli.Context, ops bench.Operations) {
	if len(ops) == 0 {
		return
	}
	fileName := ctx.String("benchdata")
	if fileName == "" {
		fileName = fmt.Sprintf("%s-%s-%s-%s", appName, ctx.Command.Name,
			time.Now().Format("2006-01-02[150405]"), pRandASCII(4))
	}

	f, err := os.Create(fileName + ".csv.zst")
	if err != nil {
		console.Error("Unable to write benchmark data:", err)
		return
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f)
	fatalIf(probe.NewError(err), "Unable to compress benchmark output")
	defer enc.Close()

	err = ops.CSV(enc)
	fatalIf(probe.NewError(err), "Unable to write benchmark output")

	console.Infof("Benchmark data written to %q\n", fileName+".csv.zst")
}

// pRandASCII return pseudorandom ASCII string with length n.
// Should never be considered for true random data generation.
func pRandASCII(n int) string {
	const asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890"
	// Use a single seed.
	dst := make([]byte, n)
	var seed [8]byte

	// Get something random
	_, _ = rand.Read(seed[:])
	rnd := binary.LittleEndian.Uint32(seed[0:4])
	rnd2 := binary.LittleEndian.Uint32(seed[4:8])
	for i := range dst {
		dst[i] = asciiLetters[int(rnd>>16)%len(asciiLetters)]
		rnd ^= rnd2
		rnd *= 2654435761
	}
	return string(dst)
}
