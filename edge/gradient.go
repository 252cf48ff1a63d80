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

// Gradients returns the unnormalized Sobel responses of g.
//
//	Gx = (g[0][2] + 2*g[1][2] + g[2][2]) - (g[0][0] + 2*g[1][0] + g[2][0])
//	Gy = (g[2][0] + 2*g[2][1] + g[2][2]) - (g[0][0] + 2*g[0][1] + g[0][2])
//
// Each term is at most 4*MaxPixel, well inside int32.
func Gradients(g Grid) (gx, gy int32) {
	p00, p01, p02 := int32(g[0][0]), int32(g[0][1]), int32(g[0][2])
	p10, p12 := int32(g[1][0]), int32(g[1][2])
	p20, p21, p22 := int32(g[2][0]), int32(g[2][1]), int32(g[2][2])

	gx = (p02 + 2*p12 + p22) - (p00 + 2*p10 + p20)
	gy = (p20 + 2*p21 + p22) - (p00 + 2*p01 + p02)
	return gx, gy
}

// absU returns |v| as an unsigned value. The negation happens in the
// unsigned domain so math.MinInt32 maps to 1<<31 instead of overflowing.
func absU(v int32) uint32 {
	u := uint32(v)
	if v < 0 {
		u = -u
	}
	return u
}

// Magnitude combines two gradients according to mode.
// SumAbs may need one bit more than either operand; uint32 has room for it.
func Magnitude(gx, gy int32, mode CombineMode) uint32 {
	switch mode {
	case SelectGx:
		return absU(gx)
	case SelectGy:
		return absU(gy)
	default:
		return absU(gx) + absU(gy)
	}
}

// Saturate clamps v to the 12-bit range. Any bit set above bit 11 forces
// MaxPixel; the result never wraps.
func Saturate(v uint32) Pixel {
	if v>>PixelBits != 0 {
		return MaxPixel
	}
	return Pixel(v) & MaxPixel
}

// Compute is the gradient stage of the filter. It is a pure function of its
// arguments.
//
// The magnitude is shifted right by shift and saturated to 12 bits. When
// windowValid is false the raw sample at g[2][2] is returned instead; the
// arithmetic result is simply discarded in that case.
func Compute(g Grid, mode CombineMode, shift uint, windowValid bool) Pixel {
	gx, gy := Gradients(g)
	scaled := Magnitude(gx, gy, mode) >> shift
	clamped := Saturate(scaled)
	if !windowValid {
		return g[2][2]
	}
	return clamped
}
