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

import (
	"fmt"
	"strings"
)

const (
	// PixelBits is the sample width of the grayscale feed.
	PixelBits = 12

	// MaxPixel is the largest representable sample (all ones).
	MaxPixel Pixel = 1<<PixelBits - 1

	// DefaultRowLength is the number of valid samples per row.
	DefaultRowLength = 640

	// DefaultScaleShift is the default right shift applied to the magnitude.
	DefaultScaleShift = 4

	// maxRowsSeen is where the completed-row counter saturates.
	maxRowsSeen = 7
)

// Pixel is a 12-bit grayscale intensity stored in the low bits of a uint16.
type Pixel uint16

// RowHistory holds the samples of the two previous rows at the current
// column, as supplied by the row storage collaborator.
type RowHistory struct {
	PreviousRow Pixel
	TwoRowsBack Pixel
}

// Grid is a 3x3 neighborhood indexed [rowOffset][colOffset].
// Row 0 is two rows back and row 2 is the current row; column 0 is two
// columns back and column 2 is the current column.
type Grid [3][3]Pixel

// Center returns cell [2][2], the raw sample of the step that built the grid.
func (g Grid) Center() Pixel {
	return g[2][2]
}

// CombineMode selects how the horizontal and vertical gradients are merged.
type CombineMode int

const (
	// SumAbs combines the gradients as |Gx| + |Gy|.
	SumAbs CombineMode = iota

	// SelectGx uses |Gx| only.
	SelectGx

	// SelectGy uses |Gy| only.
	SelectGy
)

var combineModeNames = map[CombineMode]string{
	SumAbs:   "sumabs",
	SelectGx: "gx",
	SelectGy: "gy",
}

// String returns the short name of the mode, as accepted by ParseCombineMode.
func (m CombineMode) String() string {
	if name, ok := combineModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("CombineMode(%d)", int(m))
}

// Valid reports whether m is one of the defined modes.
func (m CombineMode) Valid() bool {
	_, ok := combineModeNames[m]
	return ok
}

// CombineModeNames returns the accepted mode names in declaration order.
func CombineModeNames() []string {
	return []string{SumAbs.String(), SelectGx.String(), SelectGy.String()}
}

// ParseCombineMode parses a mode name. Matching is case-insensitive.
func ParseCombineMode(s string) (CombineMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, name := range combineModeNames {
		if name == s {
			return m, nil
		}
	}
	return SumAbs, fmt.Errorf("%w: unknown combine mode %q (want one of %s)",
		ErrInvalidConfig, s, strings.Join(CombineModeNames(), ", "))
}

// Input is everything a single processing step consumes.
type Input struct {
	// Pixel is the incoming sample. Only meaningful when Valid is set.
	Pixel Pixel

	// Valid marks the step as carrying a sample.
	Valid bool

	// Reset clears all filter state this step. It takes priority over Valid.
	Reset bool

	// Mode selects the combine mode per step when the filter was built with
	// Config.RuntimeMode. It is ignored otherwise.
	Mode CombineMode

	// History carries the previous rows at the current column.
	History RowHistory
}

// Output is what a single processing step produces.
type Output struct {
	// Valid always equals the Valid flag of the matching Input.
	Valid bool

	// Pixel is the edge magnitude, or the raw sample when no valid window exists.
	Pixel Pixel

	// WindowValid exposes the internal window validity. Diagnostic only.
	WindowValid bool
}
