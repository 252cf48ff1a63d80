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

// GradientRow computes a full output row in frame mode from three aligned
// input rows: top is two rows back, mid one row back, bot the current row.
//
// dst[x] for x >= 2 equals what the streaming filter emits at column x of
// the row held in bot once two full rows precede it. The first two columns
// pass bot through unchanged. All slices must be at least len(bot) long.
//
// Work proceeds in blocks of BatchWidth samples using the separable form of
// the Sobel kernels:
//
//	Gx = v[x] - v[x-2]               where v = top + 2*mid + bot
//	Gy = h(bot)[x] - h(top)[x]       where h(r)[x] = r[x-2] + 2*r[x-1] + r[x]
func GradientRow(top, mid, bot, dst []Pixel, mode CombineMode, shift uint) {
	width := len(bot)
	if width == 0 {
		return
	}
	top, mid, dst = top[:width], mid[:width], dst[:width]

	for x := 0; x < min(2, width); x++ {
		dst[x] = bot[x]
	}
	if width < 3 {
		return
	}

	lanes := BatchWidth()
	gx := make([]int32, lanes)
	gy := make([]int32, lanes)

	x := 2
	for ; x+lanes <= width; x += lanes {
		gradientBlock(top, mid, bot, gx, gy, x)
		storeBlock(dst[x:x+lanes], gx, gy, mode, shift)
	}

	// Tail shorter than one block.
	if remaining := width - x; remaining > 0 {
		gradientBlock(top, mid, bot, gx[:remaining], gy[:remaining], x)
		storeBlock(dst[x:], gx[:remaining], gy[:remaining], mode, shift)
	}
}

// gradientBlock fills gx and gy for columns x0 .. x0+len(gx)-1.
func gradientBlock(top, mid, bot []Pixel, gx, gy []int32, x0 int) {
	for i := range gx {
		x := x0 + i
		vr := int32(top[x]) + 2*int32(mid[x]) + int32(bot[x])
		vl := int32(top[x-2]) + 2*int32(mid[x-2]) + int32(bot[x-2])
		gx[i] = vr - vl

		hb := int32(bot[x-2]) + 2*int32(bot[x-1]) + int32(bot[x])
		ht := int32(top[x-2]) + 2*int32(top[x-1]) + int32(top[x])
		gy[i] = hb - ht
	}
}

func storeBlock(dst []Pixel, gx, gy []int32, mode CombineMode, shift uint) {
	for i := range gx {
		dst[i] = Saturate(Magnitude(gx[i], gy[i], mode) >> shift)
	}
}
