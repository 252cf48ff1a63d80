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

package image

// Point operations on frames. They run row by row and may be used in place
// (img == out).

// Threshold binarizes img: out = above where in >= threshold, else below.
// Turns an edge magnitude frame into an edge map.
func Threshold[T Sample](img, out *Image[T], threshold, below, above T) {
	if img == nil || out == nil || !SameSize(img, out) {
		return
	}
	for y := 0; y < img.height; y++ {
		inRow := img.RowSlice(y)
		outRow := out.RowSlice(y)
		for x, v := range inRow {
			if v >= threshold {
				outRow[x] = above
			} else {
				outRow[x] = below
			}
		}
	}
}

// Invert computes out = maxVal - in, clamping at zero for inputs above maxVal.
func Invert[T Sample](img, out *Image[T], maxVal T) {
	if img == nil || out == nil || !SameSize(img, out) {
		return
	}
	for y := 0; y < img.height; y++ {
		inRow := img.RowSlice(y)
		outRow := out.RowSlice(y)
		for x, v := range inRow {
			if v > maxVal {
				outRow[x] = 0
				continue
			}
			outRow[x] = maxVal - v
		}
	}
}

// ClampImage clamps every pixel of img to [minVal, maxVal].
func ClampImage[T Sample](img, out *Image[T], minVal, maxVal T) {
	if img == nil || out == nil || !SameSize(img, out) {
		return
	}
	for y := 0; y < img.height; y++ {
		inRow := img.RowSlice(y)
		outRow := out.RowSlice(y)
		for x, v := range inRow {
			outRow[x] = min(max(v, minVal), maxVal)
		}
	}
}
