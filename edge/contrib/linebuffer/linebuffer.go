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

// Package linebuffer supplies the row history the edge filter consumes.
//
// A Buffer holds the two most recent rows of a raster stream. For every step
// it reports the samples one and two rows above the current column, then
// stores the incoming sample. Only valid steps move the buffer, so its
// output stays in step with the filter's own column counter.
package linebuffer

import (
	"github.com/ajroetker/go-edgestream/edge"
	"github.com/ajroetker/go-edgestream/edge/contrib/image"
)

// Buffer is a pair of delay lines of one row each.
//
// Row storage is a two-row frame used as a ring: while a row streams in,
// slot newest holds the previous row and the other slot holds the row
// before it, which is overwritten column by column with the current row.
type Buffer struct {
	rows   *image.Frame
	column int
	newest int
}

// New creates a buffer for rows of rowLength samples. Values below 1 select
// edge.DefaultRowLength.
func New(rowLength int) *Buffer {
	if rowLength < 1 {
		rowLength = edge.DefaultRowLength
	}
	return &Buffer{rows: image.NewFrame(rowLength, 2)}
}

// RowLength returns the number of samples per row.
func (b *Buffer) RowLength() int {
	return b.rows.Width()
}

// Step returns the history at the current column and, when valid, absorbs
// pixel and advances the column. Idle steps return the history of the
// column that is still pending.
func (b *Buffer) Step(pixel edge.Pixel, valid bool) edge.RowHistory {
	prev := b.rows.Row(b.newest)
	older := b.rows.Row(1 - b.newest)
	hist := edge.RowHistory{
		PreviousRow: prev[b.column],
		TwoRowsBack: older[b.column],
	}
	if !valid {
		return hist
	}

	older[b.column] = pixel
	b.column++
	if b.column == b.rows.Width() {
		b.column = 0
		b.newest = 1 - b.newest
	}
	return hist
}

// Reset clears both rows and rewinds to column zero.
func (b *Buffer) Reset() {
	b.rows.Clear()
	b.column = 0
	b.newest = 0
}

// Column returns the column the next valid sample will be stored at.
func (b *Buffer) Column() int {
	return b.column
}
