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

import "github.com/ajroetker/go-edgestream/edge"

// Sample is the set of element types an Image can hold.
type Sample interface {
	~uint8 | ~uint16 | ~uint32 | ~int32
}

// Image is a single-channel 2D array with vector-aligned rows.
type Image[T Sample] struct {
	data   []T
	width  int
	height int
	stride int // elements per row, including padding
}

// Frame is a 12-bit grayscale image as consumed and produced by edge.Filter.
type Frame = Image[edge.Pixel]

// NewImage creates a zeroed image. Non-positive dimensions yield an empty image.
func NewImage[T Sample](width, height int) *Image[T] {
	if width <= 0 || height <= 0 {
		return &Image[T]{}
	}

	lanes := edge.LanesFor[T]()
	stride := ((width + lanes - 1) / lanes) * lanes

	return &Image[T]{
		data:   make([]T, stride*height),
		width:  width,
		height: height,
		stride: stride,
	}
}

// NewFrame creates a zeroed 12-bit frame.
func NewFrame(width, height int) *Frame {
	return NewImage[edge.Pixel](width, height)
}

// Width returns the image width in pixels.
func (img *Image[T]) Width() int {
	return img.width
}

// Height returns the image height in pixels.
func (img *Image[T]) Height() int {
	return img.height
}

// Stride returns the number of elements per row, including padding.
func (img *Image[T]) Stride() int {
	return img.stride
}

// Row returns a mutable slice for row y, including padding elements.
func (img *Image[T]) Row(y int) []T {
	if y < 0 || y >= img.height || img.data == nil {
		return nil
	}
	start := y * img.stride
	return img.data[start : start+img.stride]
}

// RowSlice returns a mutable slice for row y, limited to the image width.
func (img *Image[T]) RowSlice(y int) []T {
	if y < 0 || y >= img.height || img.data == nil {
		return nil
	}
	start := y * img.stride
	return img.data[start : start+img.width]
}

// At returns the value at (x, y), or zero out of bounds.
func (img *Image[T]) At(x, y int) T {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		var zero T
		return zero
	}
	return img.data[y*img.stride+x]
}

// Set sets the value at (x, y). Out of bounds writes are ignored.
func (img *Image[T]) Set(x, y int, value T) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return
	}
	img.data[y*img.stride+x] = value
}

// SameSize reports whether both images have the same dimensions.
func SameSize[T, U Sample](a *Image[T], b *Image[U]) bool {
	return a.width == b.width && a.height == b.height
}

// Clone creates a deep copy of the image.
func (img *Image[T]) Clone() *Image[T] {
	clone := *img
	if img.data != nil {
		clone.data = make([]T, len(img.data))
		copy(clone.data, img.data)
	}
	return &clone
}

// Clear sets all pixels to zero.
func (img *Image[T]) Clear() {
	clear(img.data)
}

// Fill sets all pixels to value.
func (img *Image[T]) Fill(value T) {
	for i := range img.data {
		img.data[i] = value
	}
}
