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

package pipeline

import (
	"log/slog"

	"github.com/ajroetker/go-edgestream/edge"
	"github.com/ajroetker/go-edgestream/edge/contrib/image"
	"github.com/ajroetker/go-edgestream/edge/contrib/workerpool"
)

// RunFrame resets s and streams frame through it in raster order, one valid
// sample per step. The first two rows and columns of the result are the raw
// input.
//
// The frame width should equal the stream's row length; a mismatch is
// logged and the frame is processed anyway.
func RunFrame(s *Stream, frame *image.Frame) *image.Frame {
	if rowLength := s.filter.Config().RowLength; frame.Width() != rowLength {
		edge.Logger().Warn("pipeline: frame width differs from row length",
			slog.Int("width", frame.Width()), slog.Int("row_length", rowLength))
	}

	s.Reset()
	out := image.NewFrame(frame.Width(), frame.Height())
	for y := 0; y < frame.Height(); y++ {
		src := frame.RowSlice(y)
		dst := out.RowSlice(y)
		for x, p := range src {
			dst[x] = s.Step(Sample{Pixel: p, Valid: true}).Pixel
		}
	}
	edge.Logger().Debug("pipeline: frame streamed",
		slog.Int("width", frame.Width()), slog.Int("height", frame.Height()))
	return out
}

// ProcessFrames streams every frame through its own Stream on pool.
// cfg.RowLength is replaced by each frame's width.
func ProcessFrames(pool *workerpool.Pool, cfg edge.Config, frames []*image.Frame) ([]*image.Frame, error) {
	streams := make([]*Stream, len(frames))
	for i, frame := range frames {
		c := cfg
		c.RowLength = frame.Width()
		s, err := NewStream(c)
		if err != nil {
			return nil, err
		}
		streams[i] = s
	}

	outs := make([]*image.Frame, len(frames))
	pool.ParallelForAtomic(len(frames), func(i int) {
		outs[i] = RunFrame(streams[i], frames[i])
	})
	edge.Logger().Info("pipeline: frames processed", slog.Int("frames", len(frames)))
	return outs, nil
}

// ReferenceFrame computes the filter output for frame without streaming,
// using edge.GradientRow on independent rows spread over pool. The result
// equals RunFrame with the same mode and shift.
func ReferenceFrame(pool *workerpool.Pool, frame *image.Frame, mode edge.CombineMode, shift uint) *image.Frame {
	out := image.NewFrame(frame.Width(), frame.Height())
	for y := 0; y < min(2, frame.Height()); y++ {
		copy(out.RowSlice(y), frame.RowSlice(y))
	}
	if frame.Height() < 3 {
		return out
	}

	pool.ParallelFor(frame.Height()-2, func(start, end int) {
		for y := start + 2; y < end+2; y++ {
			edge.GradientRow(frame.RowSlice(y-2), frame.RowSlice(y-1), frame.RowSlice(y),
				out.RowSlice(y), mode, shift)
		}
	})
	return out
}
