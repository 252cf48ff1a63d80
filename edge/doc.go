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

// Package edge provides a streaming 3x3 Sobel edge filter for raster-scanned
// 12-bit grayscale pixel feeds.
//
// The filter consumes exactly one sample per step and produces exactly one
// sample per step. Each input carries a valid flag, and the output valid flag
// always mirrors it: the filter never drops, inserts or delays samples.
//
// Two components run in lockstep:
//
//	WindowBuilder  reconstructs a 3x3 neighborhood from the pixel stream and
//	               the two previous rows supplied by a line buffer.
//	Compute        turns a neighborhood into an edge magnitude, scales it,
//	               saturates it to 12 bits, and falls back to the raw sample
//	               when the window is not yet valid.
//
// Filter combines both behind the step-level interface:
//
//	f, err := edge.NewFilter(edge.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	for _, in := range inputs {
//	    out := f.Step(in)
//	    // out.Valid == in.Valid
//	}
//
// # Edge Policy
//
// No valid window exists for the first two rows after a reset, nor for the
// first two columns of any row. Those positions pass the raw sample through
// unchanged instead of padding or replicating borders.
//
// # Logging
//
// The package is silent by default. Call SetLogger to receive debug records
// about construction, resets and row counter saturation.
package edge
