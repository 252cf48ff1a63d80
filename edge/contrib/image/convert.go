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

import (
	stdimage "image"
	"image/color"

	"github.com/ajroetker/go-edgestream/edge"
)

// sampleShift is the distance between 16-bit storage and 12-bit samples.
const sampleShift = 16 - edge.PixelBits

// FrameFromImage converts any image to a 12-bit frame. 16-bit gray keeps
// its top 12 bits, 8-bit gray is widened, and everything else goes through
// color.Gray16Model first.
func FrameFromImage(src stdimage.Image) *Frame {
	b := src.Bounds()
	frame := NewFrame(b.Dx(), b.Dy())

	switch s := src.(type) {
	case *stdimage.Gray16:
		for y := 0; y < frame.height; y++ {
			row := frame.RowSlice(y)
			for x := range row {
				row[x] = edge.Pixel(s.Gray16At(b.Min.X+x, b.Min.Y+y).Y >> sampleShift)
			}
		}
	case *stdimage.Gray:
		for y := 0; y < frame.height; y++ {
			row := frame.RowSlice(y)
			for x := range row {
				v := edge.Pixel(s.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
				row[x] = v<<4 | v>>4
			}
		}
	default:
		for y := 0; y < frame.height; y++ {
			row := frame.RowSlice(y)
			for x := range row {
				g := color.Gray16Model.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.Gray16)
				row[x] = edge.Pixel(g.Y >> sampleShift)
			}
		}
	}
	return frame
}

// ToGray16 converts the frame to a 16-bit grayscale image. Samples are
// expanded by bit replication so MaxPixel maps to 0xffff.
func (img *Image[T]) ToGray16() *stdimage.Gray16 {
	dst := stdimage.NewGray16(stdimage.Rect(0, 0, img.width, img.height))
	for y := 0; y < img.height; y++ {
		row := img.RowSlice(y)
		for x, v := range row {
			p := uint16(min(uint32(v), uint32(edge.MaxPixel)))
			dst.SetGray16(x, y, color.Gray16{Y: p<<sampleShift | p>>(edge.PixelBits-sampleShift)})
		}
	}
	return dst
}
