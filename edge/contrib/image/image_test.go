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
	"testing"

	"github.com/ajroetker/go-edgestream/edge"
)

func TestNewImage(t *testing.T) {
	img := NewImage[edge.Pixel](100, 50)

	if img.Width() != 100 {
		t.Errorf("Width: got %d, want 100", img.Width())
	}
	if img.Height() != 50 {
		t.Errorf("Height: got %d, want 50", img.Height())
	}

	lanes := edge.BatchWidth()
	if img.Stride() < 100 {
		t.Errorf("Stride: got %d, want >= 100", img.Stride())
	}
	if img.Stride()%lanes != 0 {
		t.Errorf("Stride not aligned: got %d, want multiple of %d", img.Stride(), lanes)
	}
}

func TestNewImage_ZeroDimensions(t *testing.T) {
	img := NewFrame(0, 0)
	if img.Width() != 0 || img.Height() != 0 {
		t.Errorf("Zero dimensions: got %dx%d, want 0x0", img.Width(), img.Height())
	}

	img = NewFrame(-1, 10)
	if img.Width() != 0 || img.Height() != 0 {
		t.Errorf("Negative width: got %dx%d, want 0x0", img.Width(), img.Height())
	}
	if img.Row(0) != nil {
		t.Error("Row(0) on empty image should return nil")
	}
}

func TestImage_Row(t *testing.T) {
	img := NewFrame(10, 5)

	row0 := img.Row(0)
	for i := range 10 {
		row0[i] = edge.Pixel(i)
	}
	for i := range 10 {
		if got := img.At(i, 0); got != edge.Pixel(i) {
			t.Errorf("At(%d,0): got %v, want %v", i, got, i)
		}
	}

	row1 := img.Row(1)
	row1[0] = 999
	if row0[0] == 999 {
		t.Error("Rows should be independent")
	}

	if img.Row(-1) != nil {
		t.Error("Row(-1) should return nil")
	}
	if img.Row(5) != nil {
		t.Error("Row(5) should return nil")
	}
}

func TestImage_RowSlice(t *testing.T) {
	img := NewFrame(10, 5)

	if got := len(img.RowSlice(0)); got != 10 {
		t.Errorf("RowSlice length: got %d, want 10", got)
	}
	if got := len(img.Row(0)); got < 10 {
		t.Errorf("Row length: got %d, want >= 10", got)
	}
	if img.RowSlice(5) != nil {
		t.Error("RowSlice(5) should return nil")
	}
}

func TestImage_AtSet(t *testing.T) {
	img := NewFrame(10, 10)

	img.Set(5, 7, 42)
	if got := img.At(5, 7); got != 42 {
		t.Errorf("At(5,7): got %v, want 42", got)
	}

	if got := img.At(-1, 0); got != 0 {
		t.Errorf("At(-1,0): got %v, want 0", got)
	}
	if got := img.At(10, 0); got != 0 {
		t.Errorf("At(10,0): got %v, want 0", got)
	}

	// Out of bounds writes are no-ops.
	img.Set(-1, 0, 999)
	img.Set(10, 0, 999)
}

func TestImage_Clone(t *testing.T) {
	img := NewFrame(10, 10)
	img.Set(5, 5, 42)

	clone := img.Clone()
	if !SameSize(img, clone) {
		t.Fatal("Clone dimensions differ")
	}
	if clone.At(5, 5) != 42 {
		t.Errorf("Clone At(5,5): got %v, want 42", clone.At(5, 5))
	}

	clone.Set(5, 5, 7)
	if img.At(5, 5) != 42 {
		t.Error("Clone shares storage with the original")
	}

	empty := NewFrame(0, 0).Clone()
	if empty.Width() != 0 {
		t.Errorf("empty Clone width: got %d", empty.Width())
	}
}

func TestImage_ClearFill(t *testing.T) {
	img := NewFrame(7, 3)
	img.Fill(edge.MaxPixel)
	for y := range 3 {
		for x := range 7 {
			if img.At(x, y) != edge.MaxPixel {
				t.Fatalf("Fill: At(%d,%d) = %v", x, y, img.At(x, y))
			}
		}
	}

	img.Clear()
	for y := range 3 {
		for x := range 7 {
			if img.At(x, y) != 0 {
				t.Fatalf("Clear: At(%d,%d) = %v", x, y, img.At(x, y))
			}
		}
	}
}

func TestSameSize(t *testing.T) {
	a := NewFrame(10, 20)
	b := NewImage[int32](10, 20)
	c := NewFrame(20, 10)

	if !SameSize(a, b) {
		t.Error("a and b should be same size")
	}
	if SameSize(a, c) {
		t.Error("a and c should differ")
	}
}

func BenchmarkNewFrame(b *testing.B) {
	for b.Loop() {
		_ = NewFrame(640, 480)
	}
}

func BenchmarkImage_Clone(b *testing.B) {
	img := NewFrame(640, 480)
	for b.Loop() {
		_ = img.Clone()
	}
}
