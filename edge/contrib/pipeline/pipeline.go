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
	"context"
	"fmt"

	"github.com/ajroetker/go-edgestream/edge"
	"github.com/ajroetker/go-edgestream/edge/contrib/image"
	"github.com/ajroetker/go-edgestream/edge/contrib/linebuffer"
)

// windowed is what the window stage hands to the gradient stage.
type windowed struct {
	grid        edge.Grid
	windowValid bool
	pixel       edge.Pixel
	valid       bool
	reset       bool
	mode        edge.CombineMode
}

// Pipeline runs the filter as three goroutine stages: row history, window
// assembly and gradient. Each stage owns its state exclusively, and stages
// exchange values over FIFO channels, so output k depends only on samples up
// to k and arrives in input order.
type Pipeline struct {
	cfg    edge.Config
	buffer int
}

// New creates a pipeline for cfg. buffer is the capacity of each channel
// between stages; values below 0 are treated as 0.
func New(cfg edge.Config, buffer int) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Pipeline{cfg: cfg, buffer: max(buffer, 0)}, nil
}

// Name describes the pipeline configuration.
func (p *Pipeline) Name() string {
	mode := p.cfg.Mode.String()
	if p.cfg.RuntimeMode {
		mode = "runtime"
	}
	return fmt.Sprintf("sobel(shift=%d, mode=%s, row=%d)", p.cfg.ScaleShift, mode, p.cfg.RowLength)
}

// Process consumes in until it is closed or ctx is done, producing exactly
// one Output per Sample. The returned channel is closed when processing
// stops. Each call starts from a fresh state.
func (p *Pipeline) Process(ctx context.Context, in <-chan Sample) <-chan edge.Output {
	inputs := p.rowStage(ctx, in)
	windows := p.windowStage(ctx, inputs)
	return p.gradientStage(ctx, windows)
}

// send delivers v unless ctx ends first.
func send[T any](ctx context.Context, out chan<- T, v T) bool {
	select {
	case out <- v:
		return true
	case <-ctx.Done():
		return false
	}
}

func (p *Pipeline) rowStage(ctx context.Context, in <-chan Sample) <-chan edge.Input {
	out := make(chan edge.Input, p.buffer)
	go func() {
		defer close(out)
		lines := linebuffer.New(p.cfg.RowLength)
		for {
			var s Sample
			var ok bool
			select {
			case s, ok = <-in:
				if !ok {
					return
				}
			case <-ctx.Done():
				return
			}

			next := edge.Input{Pixel: s.Pixel, Valid: s.Valid, Reset: s.Reset, Mode: s.Mode}
			if s.Reset {
				lines.Reset()
			} else {
				next.History = lines.Step(s.Pixel, s.Valid)
			}
			if !send(ctx, out, next) {
				return
			}
		}
	}()
	return out
}

func (p *Pipeline) windowStage(ctx context.Context, in <-chan edge.Input) <-chan windowed {
	out := make(chan windowed, p.buffer)
	go func() {
		defer close(out)
		builder := edge.NewWindowBuilder(p.cfg.RowLength)
		for v := range in {
			w := windowed{pixel: v.Pixel, valid: v.Valid, reset: v.Reset, mode: p.cfg.Mode}
			if p.cfg.RuntimeMode {
				w.mode = v.Mode
			}
			if v.Reset {
				builder.Reset()
				edge.Logger().Debug("pipeline: reset")
			} else {
				w.grid, w.windowValid = builder.Step(v.Pixel, v.Valid, v.History)
			}
			if !send(ctx, out, w) {
				return
			}
		}
	}()
	return out
}

func (p *Pipeline) gradientStage(ctx context.Context, in <-chan windowed) <-chan edge.Output {
	out := make(chan edge.Output, p.buffer)
	go func() {
		defer close(out)
		for w := range in {
			o := edge.Output{Valid: w.valid, Pixel: w.pixel}
			if w.valid && !w.reset {
				o.Pixel = edge.Compute(w.grid, w.mode, p.cfg.ScaleShift, w.windowValid)
				o.WindowValid = w.windowValid
			}
			if !send(ctx, out, o) {
				return
			}
		}
	}()
	return out
}

// RunFrame streams frame through a fresh pipeline in raster order and
// collects the outputs into a new frame. It returns ctx.Err() if ctx ends
// before every sample has come back.
func (p *Pipeline) RunFrame(ctx context.Context, frame *image.Frame) (*image.Frame, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	in := make(chan Sample, p.buffer)
	go func() {
		defer close(in)
		for y := 0; y < frame.Height(); y++ {
			for _, px := range frame.RowSlice(y) {
				if !send(ctx, in, Sample{Pixel: px, Valid: true}) {
					return
				}
			}
		}
	}()

	out := image.NewFrame(frame.Width(), frame.Height())
	x, y := 0, 0
	for o := range p.Process(ctx, in) {
		out.Set(x, y, o.Pixel)
		if x++; x == frame.Width() {
			x = 0
			y++
		}
	}
	if y < frame.Height() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	return out, nil
}
