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

// Package bench runs timed benchmark operations and collects their
// measurements.
package bench

import "context"

// Benchmark is a runnable benchmark.
type Benchmark interface {
	// Prepare builds everything the measured operations need.
	Prepare(ctx context.Context) error

	// Start executes the measured operations. The first failing
	// operation aborts the remaining ones; operations recorded up to
	// and including the failure are still returned.
	Start(ctx context.Context) (Operations, error)

	// Cleanup releases resources after the benchmark run.
	Cleanup(ctx context.Context)

	// GetCommon returns the common parameters.
	GetCommon() *Common
}

// Common contains common benchmark parameters.
type Common struct {
	// Rows in the dataset every operation exports.
	Rows int

	// Remove produced files during Cleanup.
	Clean bool

	PrepareProgress chan float64

	// UpdateStatus, when set, receives human readable progress lines.
	UpdateStatus func(s string)

	// Error is called with non fatal errors during the run.
	Error func(data ...any)
}

func (c *Common) GetCommon() *Common {
	return c
}

func (c *Common) prepareProgress(progress float64) {
	if c.PrepareProgress == nil {
		return
	}
	select {
	case c.PrepareProgress <- progress:
	default:
	}
}
