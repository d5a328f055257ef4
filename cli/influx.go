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
	"errors"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api/http"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/minio/cli"
	"github.com/minio/mc/pkg/probe"

	"github.com/sheetbench/sheetbench/pkg/bench"
)

// newInfluxDB returns a channel that pushes operations to InfluxDB.
// The returned channel must be closed when all operations are sent;
// wg is done once the final flush completed.
func newInfluxDB(ctx *cli.Context, wg *sync.WaitGroup) chan<- bench.Operation {
	u, err := parseInfluxURL(ctx)
	if err != nil {
		fatalIf(probe.NewError(err), "unable to parse influxdb parameter")
	}
	token := ""
	if u.User != nil {
		token = u.User.Username()
	}
	var tagValues url.Values
	if len(u.RawQuery) > 0 {
		tagValues, err = url.ParseQuery(u.RawQuery)
		errorIf(probe.NewError(err), "unable to parse tags")
	}
	tags := make(map[string]string, len(tagValues)+2)
	for key, tag := range tagValues {
		if len(tag) > 0 && len(key) > 0 {
			tags[key] = tag[0]
		}
	}
	tags["run_id"] = pRandASCII(8)

	// Tag with the hostname of the machine running the benchmark.
	hostname, err := os.Hostname()
	if err != nil {
		fatalIf(probe.NewError(err), "unable to determine hostname")
	}
	tags["client"] = hostname

	// Create a new client using an InfluxDB server base URL and an authentication token
	serverURL := u.Scheme + "://" + u.Host
	client := influxdb2.NewClientWithOptions(serverURL, token,
		influxdb2.DefaultOptions().SetMaxRetryTime(1000).SetMaxRetries(2))
	{
		to, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		ok, err := client.Ping(to)
		if !ok {
			errorIf(probe.NewError(err), "unable to reach influxdb")
		}
	}
	// Use async write client for writes to desired bucket
	path := strings.Split(strings.TrimPrefix(u.Path, "/"), "/")
	writeAPI := client.WriteAPI(path[1], path[0])
	writeAPI.SetWriteFailedCallback(func(_ string, err http.Error, _ uint) bool {
		errorIf(probe.NewError(&err), "unable to write to influxdb")
		return false
	})

	ch := make(chan bench.Operation, 100)
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer client.Close()
		for op := range ch {
			fields := map[string]interface{}{
				"duration_ns": int64(op.Duration()),
				"bytes":       op.Size,
				"rows":        op.Rows,
			}
			if op.Err != "" {
				fields["error"] = op.Err
			}
			pt := write.NewPoint(appName+"_op", mergeTags(tags, map[string]string{
				"op":     op.OpType,
				"writer": op.Writer,
				"file":   op.File,
			}), fields, op.End)
			writeAPI.WritePoint(pt)
		}
		writeAPI.Flush()
	}()
	return ch
}

func mergeTags(base, extra map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// parseInfluxURL parses the --influxdb parameter:
// http://<token>@<hostname>:<port>/<bucket>/<org>?<tag=value>
func parseInfluxURL(ctx *cli.Context) (*url.URL, error) {
	s := ctx.String("influxdb")
	if s == "" {
		return nil, errors.New("no influxdb parameter")
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "http", "https":
	default:
		return nil, errors.New("influxdb scheme must be http or https")
	}
	path := strings.Split(strings.TrimPrefix(u.Path, "/"), "/")
	if len(path) != 2 || path[0] == "" || path[1] == "" {
		return nil, errors.New("influxdb path must be /<bucket>/<org>")
	}
	return u, nil
}
