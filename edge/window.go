// Copyright 2025 go-edgestream Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package edge

import "log/slog"

// delayPair is a two-element shift register for one logical row stream.
type delayPair struct {
	latest   Pixel
	previous Pixel
}

// shift pushes v in and returns the taps as they were before the push,
// oldest first.
func (d *delayPair) shift(v Pixel) (older, old Pixel) {
	older, old = d.previous, d.latest
	d.previous = d.latest
	d.latest = v
	return older, old
}

// WindowBuilder reconstructs a 3x3 neighborhood from a raster-scanned pixel
// stream. It owns all row and column position state of the filter.
//
// A WindowBuilder is not safe for concurrent use; samples must be presented
// strictly in arrival order.
type WindowBuilder struct {
	rowLength int

	column   int
	rowsSeen int

	// Shift registers, one per logical row: the current row, one row back
	// and two rows back.
	cur, back1, back2 delayPair

	grid        Grid
	windowValid bool
}

// NewWindowBuilder creates a builder for rows of rowLength valid samples.
// Values below 1 select DefaultRowLength.
func NewWindowBuilder(rowLength int) *WindowBuilder {
	if rowLength < 1 {
		rowLength = DefaultRowLength
	}
	return &WindowBuilder{rowLength: rowLength}
}

// Step consumes one sample. On a step without a valid sample nothing moves
// and the window is reported invalid; the held grid is returned as is.
//
// On a valid step the three shift registers advance, the grid is rebuilt
// with pixel at [2][2], and validity is judged from the column and row
// counters as they stood before this sample was absorbed.
func (b *WindowBuilder) Step(pixel Pixel, valid bool, hist RowHistory) (Grid, bool) {
	if !valid {
		b.windowValid = false
		return b.grid, false
	}

	b.grid[0][0], b.grid[0][1] = b.back2.shift(hist.TwoRowsBack)
	b.grid[1][0], b.grid[1][1] = b.back1.shift(hist.PreviousRow)
	b.grid[2][0], b.grid[2][1] = b.cur.shift(pixel)
	b.grid[0][2] = b.back2.latest
	b.grid[1][2] = b.back1.latest
	b.grid[2][2] = pixel

	b.windowValid = b.rowsSeen >= 2 && b.column >= 2

	endOfLine := b.column == b.rowLength-1
	if endOfLine {
		b.column = 0
		if b.rowsSeen < maxRowsSeen {
			b.rowsSeen++
			if b.rowsSeen == maxRowsSeen {
				Logger().Debug("edge: row counter saturated", slog.Int("rows_seen", b.rowsSeen))
			}
		}
	} else {
		b.column++
	}

	return b.grid, b.windowValid
}

// Reset returns the builder to its power-on state, discarding any window
// in flight.
func (b *WindowBuilder) Reset() {
	*b = WindowBuilder{rowLength: b.rowLength}
}

// RowLength returns the configured number of samples per row.
func (b *WindowBuilder) RowLength() int {
	return b.rowLength
}

// Column returns the column the next valid sample will occupy.
func (b *WindowBuilder) Column() int {
	return b.column
}

// RowsSeen returns the number of completed rows, saturated at 7.
func (b *WindowBuilder) RowsSeen() int {
	return b.rowsSeen
}

// WindowValid returns the validity reported by the most recent step.
func (b *WindowBuilder) WindowValid() bool {
	return b.windowValid
}

// Grid returns the most recently assembled neighborhood.
func (b *WindowBuilder) Grid() Grid {
	return b.grid
}
