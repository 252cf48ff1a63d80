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

import "log/slog"

// Filter is the step-level edge filter: a WindowBuilder feeding Compute.
//
// Every call to Step is one processing cycle. Output.Valid always equals
// Input.Valid, so the output cadence is the input cadence.
//
// A Filter is not safe for concurrent use.
type Filter struct {
	cfg     Config
	builder *WindowBuilder
}

// NewFilter creates a filter from cfg.
func NewFilter(cfg Config) (*Filter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	Logger().Debug("edge: filter created",
		slog.Uint64("scale_shift", uint64(cfg.ScaleShift)),
		slog.String("mode", cfg.Mode.String()),
		slog.Bool("runtime_mode", cfg.RuntimeMode),
		slog.Int("row_length", cfg.RowLength))
	return &Filter{
		cfg:     cfg,
		builder: NewWindowBuilder(cfg.RowLength),
	}, nil
}

// Step runs one processing cycle.
//
// A reset clears all state and does not absorb the sample; the output for
// that cycle is the raw sample with the window reported invalid.
func (f *Filter) Step(in Input) Output {
	if in.Reset {
		f.Reset()
		return Output{Valid: in.Valid, Pixel: in.Pixel}
	}

	grid, windowValid := f.builder.Step(in.Pixel, in.Valid, in.History)
	if !in.Valid {
		// Nothing was absorbed; the held grid belongs to an earlier step.
		return Output{Valid: false, Pixel: in.Pixel}
	}

	mode := f.cfg.Mode
	if f.cfg.RuntimeMode {
		mode = in.Mode
	}
	return Output{
		Valid:       true,
		Pixel:       Compute(grid, mode, f.cfg.ScaleShift, windowValid),
		WindowValid: windowValid,
	}
}

// Reset clears the window state. It takes effect immediately.
func (f *Filter) Reset() {
	f.builder.Reset()
	Logger().Debug("edge: filter reset")
}

// Config returns the configuration the filter was built with.
func (f *Filter) Config() Config {
	return f.cfg
}

// Column returns the column the next valid sample will occupy.
func (f *Filter) Column() int {
	return f.builder.Column()
}

// RowsSeen returns the saturating count of completed rows.
func (f *Filter) RowsSeen() int {
	return f.builder.RowsSeen()
}
