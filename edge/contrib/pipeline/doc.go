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

// Package pipeline drives the edge filter over whole streams and frames.
//
// Stream pairs a linebuffer.Buffer with an edge.Filter so callers only supply
// raw samples. RunFrame and ProcessFrames feed frames through streams in
// raster order, and ReferenceFrame computes the same result row by row with
// edge.GradientRow.
//
// Pipeline is the staged variant: row history, window assembly and gradient
// computation each run on their own goroutine, connected by FIFO channels.
// Its output sequence is identical to a Stream fed the same samples.
//
//	p, err := pipeline.New(edge.DefaultConfig(), 64)
//	if err != nil {
//	    return err
//	}
//	for out := range p.Process(ctx, samples) {
//	    // one Output per Sample, in order
//	}
package pipeline
