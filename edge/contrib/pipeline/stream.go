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
	"github.com/ajroetker/go-edgestream/edge"
	"github.com/ajroetker/go-edgestream/edge/contrib/linebuffer"
)

// Sample is one step of a raw pixel feed, before row history is attached.
type Sample struct {
	Pixel edge.Pixel
	Valid bool
	Reset bool

	// Mode is used when the filter runs with Config.RuntimeMode.
	Mode edge.CombineMode
}

// Stream is the synchronous reference: a line buffer and a filter stepped
// together. It is not safe for concurrent use.
type Stream struct {
	lines  *linebuffer.Buffer
	filter *edge.Filter
}

// NewStream creates a stream for cfg.
func NewStream(cfg edge.Config) (*Stream, error) {
	f, err := edge.NewFilter(cfg)
	if err != nil {
		return nil, err
	}
	return &Stream{
		lines:  linebuffer.New(cfg.RowLength),
		filter: f,
	}, nil
}

// Step runs one processing cycle. A reset clears the line buffer as well as
// the filter.
func (s *Stream) Step(in Sample) edge.Output {
	if in.Reset {
		s.lines.Reset()
		return s.filter.Step(edge.Input{Pixel: in.Pixel, Valid: in.Valid, Reset: true})
	}
	hist := s.lines.Step(in.Pixel, in.Valid)
	return s.filter.Step(edge.Input{
		Pixel:   in.Pixel,
		Valid:   in.Valid,
		Mode:    in.Mode,
		History: hist,
	})
}

// Reset clears all state.
func (s *Stream) Reset() {
	s.lines.Reset()
	s.filter.Reset()
}

// Filter returns the underlying filter, for diagnostics.
func (s *Stream) Filter() *edge.Filter {
	return s.filter
}
