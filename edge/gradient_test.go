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
	"math"
	"testing"
)

func TestGradients(t *testing.T) {
	tests := []struct {
		name   string
		grid   Grid
		gx, gy int32
	}{
		{"flat", Grid{{7, 7, 7}, {7, 7, 7}, {7, 7, 7}}, 0, 0},
		{"right column", Grid{{0, 0, 4095}, {0, 0, 0}, {0, 0, 4095}}, 8190, 0},
		{"vertical step", Grid{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}}, 4, 0},
		{"horizontal step", Grid{{0, 0, 0}, {0, 0, 0}, {10, 10, 10}}, 0, 40},
		{"falling edge", Grid{{4095, 0, 0}, {4095, 0, 0}, {4095, 0, 0}}, -4 * 4095, 0},
		{"max gx", Grid{{0, 0, 4095}, {0, 0, 4095}, {0, 0, 4095}}, 4 * 4095, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gx, gy := Gradients(tt.grid)
			if gx != tt.gx || gy != tt.gy {
				t.Errorf("Gradients: got (%d, %d), want (%d, %d)", gx, gy, tt.gx, tt.gy)
			}
		})
	}
}

func TestAbsU(t *testing.T) {
	tests := []struct {
		in   int32
		want uint32
	}{
		{0, 0},
		{5, 5},
		{-5, 5},
		{math.MaxInt32, math.MaxInt32},
		{math.MinInt32, 1 << 31},
	}
	for _, tt := range tests {
		if got := absU(tt.in); got != tt.want {
			t.Errorf("absU(%d): got %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSaturate(t *testing.T) {
	tests := []struct {
		in   uint32
		want Pixel
	}{
		{0, 0},
		{511, 511},
		{4095, 4095},
		{4096, 4095},
		{8190, 4095},
		{math.MaxUint32, 4095},
	}
	for _, tt := range tests {
		if got := Saturate(tt.in); got != tt.want {
			t.Errorf("Saturate(%d): got %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestComputeExample(t *testing.T) {
	var g Grid
	g[0][2] = 4095
	g[2][2] = 4095

	if got := Compute(g, SumAbs, 4, true); got != 511 {
		t.Errorf("Compute: got %d, want 511", got)
	}
}

func TestComputeSaturates(t *testing.T) {
	// Gx = 4095 + 1 = 4096 with shift 0.
	var g Grid
	g[0][2] = 4095
	g[2][2] = 1

	gx, _ := Gradients(g)
	if gx != 4096 {
		t.Fatalf("Gx: got %d, want 4096", gx)
	}
	if got := Compute(g, SelectGx, 0, true); got != MaxPixel {
		t.Errorf("Compute: got %d, want %d", got, MaxPixel)
	}

	// Largest possible SumAbs with no shift.
	full := Grid{{0, 0, 4095}, {0, 0, 4095}, {4095, 4095, 4095}}
	if got := Compute(full, SumAbs, 0, true); got != MaxPixel {
		t.Errorf("Compute(full): got %d, want %d", got, MaxPixel)
	}
}

func TestComputePassthrough(t *testing.T) {
	g := Grid{{0, 0, 4095}, {0, 0, 4095}, {4095, 4095, 1234}}
	for _, mode := range []CombineMode{SumAbs, SelectGx, SelectGy} {
		if got := Compute(g, mode, 4, false); got != 1234 {
			t.Errorf("Compute(%v, invalid): got %d, want 1234", mode, got)
		}
	}
}

func TestComputeShift(t *testing.T) {
	g := Grid{{0, 0, 100}, {0, 0, 100}, {0, 0, 100}} // Gx = 400, Gy = 0
	tests := []struct {
		shift uint
		want  Pixel
	}{
		{0, 400},
		{1, 200},
		{4, 25},
		{9, 0},
		{40, 0},
	}
	for _, tt := range tests {
		if got := Compute(g, SumAbs, tt.shift, true); got != tt.want {
			t.Errorf("Compute(shift=%d): got %d, want %d", tt.shift, got, tt.want)
		}
	}
}

func TestModeIndependence(t *testing.T) {
	g := Grid{{10, 20, 30}, {5, 0, 90}, {200, 40, 60}}
	gx, gy := Gradients(g)
	if gx == 0 || gy == 0 || absU(gx) == absU(gy) {
		t.Fatalf("grid does not produce distinct non-zero gradients: gx=%d gy=%d", gx, gy)
	}

	mx := Magnitude(gx, gy, SelectGx)
	my := Magnitude(gx, gy, SelectGy)
	sum := Magnitude(gx, gy, SumAbs)
	if mx == my {
		t.Errorf("SelectGx and SelectGy agree: %d", mx)
	}
	if sum != mx+my {
		t.Errorf("SumAbs: got %d, want %d", sum, mx+my)
	}
}

func TestComputeExhaustiveCorners(t *testing.T) {
	// Every cell at 0 or MaxPixel: 512 grids, all modes, a few shifts.
	for bits := 0; bits < 1<<9; bits++ {
		var g Grid
		for i := range 9 {
			if bits&(1<<i) != 0 {
				g[i/3][i%3] = MaxPixel
			}
		}
		gx, gy := Gradients(g)
		for _, mode := range []CombineMode{SumAbs, SelectGx, SelectGy} {
			for _, shift := range []uint{0, 2, 4, 8} {
				got := Compute(g, mode, shift, true)
				want := Magnitude(gx, gy, mode) >> shift
				if want > uint32(MaxPixel) {
					want = uint32(MaxPixel)
				}
				if uint32(got) != want {
					t.Fatalf("grid %09b mode %v shift %d: got %d, want %d", bits, mode, shift, got, want)
				}
			}
		}
	}
}
