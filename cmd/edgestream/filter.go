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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/go-edgestream/edge"
	"github.com/ajroetker/go-edgestream/edge/contrib/image"
	"github.com/ajroetker/go-edgestream/edge/contrib/pipeline"
	"github.com/ajroetker/go-edgestream/edge/contrib/workerpool"
)

// errVerify reports a mismatch between the streamed and reference frames.
var errVerify = errors.New("streamed output differs from reference")

type filterOptions struct {
	output    string
	suffix    string
	shift     uint
	mode      string
	rowLength int
	workers   int
	buffer    int
	staged    bool
	verify    bool
	threshold int
	invert    bool
}

// fileResult is what one input produced, reported after all inputs finish.
type fileResult struct {
	input, output string
	samples       int
	mismatches    int
}

func newFilterCmd() *cobra.Command {
	opts := filterOptions{
		suffix:    "_edges",
		shift:     edge.DefaultScaleShift,
		mode:      edge.SumAbs.String(),
		buffer:    256,
		threshold: -1,
	}

	cmd := &cobra.Command{
		Use:   "filter [flags] FILE...",
		Short: "Stream image files through the edge filter",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(cmd.Context(), cmd.OutOrStdout(), opts, args)
		},
	}

	addFilterFlags(cmd.Flags(), &opts)
	return cmd
}

func addFilterFlags(flags *pflag.FlagSet, opts *filterOptions) {
	flags.StringVarP(&opts.output, "output", "o", opts.output, "output file (single input only)")
	flags.StringVar(&opts.suffix, "suffix", opts.suffix, "suffix added to input names when --output is not set")
	flags.UintVar(&opts.shift, "shift", opts.shift, "right shift applied to the gradient magnitude")
	flags.StringVar(&opts.mode, "mode", opts.mode, "combine mode: "+strings.Join(edge.CombineModeNames(), ", "))
	flags.IntVar(&opts.rowLength, "row-length", opts.rowLength, "samples per row (0: frame width)")
	flags.IntVar(&opts.workers, "workers", opts.workers, "frames processed in parallel (0: GOMAXPROCS)")
	flags.IntVar(&opts.buffer, "buffer", opts.buffer, "channel capacity between stages with --staged")
	flags.BoolVar(&opts.staged, "staged", opts.staged, "use the goroutine-per-stage pipeline")
	flags.BoolVar(&opts.verify, "verify", opts.verify, "compare every output with the frame-mode reference")
	flags.IntVar(&opts.threshold, "threshold", opts.threshold, "binarize output at this magnitude (-1: off)")
	flags.BoolVar(&opts.invert, "invert", opts.invert, "draw dark edges on a light background")
}

// outputPath derives an output name from an input name: a.tiff -> a_edges.tiff.
func outputPath(input, suffix string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + suffix + ext
}

func runFilter(ctx context.Context, w io.Writer, opts filterOptions, inputs []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	mode, err := edge.ParseCombineMode(opts.mode)
	if err != nil {
		return err
	}
	if opts.threshold > int(edge.MaxPixel) {
		return fmt.Errorf("threshold %d above %d", opts.threshold, edge.MaxPixel)
	}
	if opts.output != "" && len(inputs) > 1 {
		return fmt.Errorf("--output needs exactly one input, got %d", len(inputs))
	}

	outputs := lo.Map(inputs, func(in string, _ int) string {
		if opts.output != "" {
			return opts.output
		}
		return outputPath(in, opts.suffix)
	})
	if dups := lo.FindDuplicates(outputs); len(dups) > 0 {
		return fmt.Errorf("several inputs map to %s", strings.Join(dups, ", "))
	}
	if clash := lo.Intersect(inputs, outputs); len(clash) > 0 {
		return fmt.Errorf("output would overwrite input %s", strings.Join(clash, ", "))
	}

	cfg := edge.Config{ScaleShift: opts.shift, Mode: mode, RowLength: opts.rowLength}

	pool := workerpool.New(opts.workers)
	defer pool.Close()
	// Reference rows run on their own pool; frame workers block on them.
	refPool := workerpool.New(opts.workers)
	defer refPool.Close()

	results := make([]fileResult, len(inputs))
	err = pool.ParallelForErr(len(inputs), func(i int) error {
		res, err := processFile(ctx, refPool, cfg, opts, inputs[i], outputs[i])
		results[i] = res
		return err
	})

	printer := message.NewPrinter(language.English)
	for _, res := range results {
		if res.samples == 0 {
			continue
		}
		printer.Fprintf(w, "%s -> %s: %d samples\n", res.input, res.output, res.samples)
	}
	return err
}

func processFile(ctx context.Context, refPool *workerpool.Pool, cfg edge.Config, opts filterOptions, input, output string) (fileResult, error) {
	res := fileResult{input: input, output: output}
	log := edge.Logger().With(slog.String("input", input))

	frame, err := image.ReadFrame(input)
	if err != nil {
		return res, err
	}
	if cfg.RowLength == 0 {
		cfg.RowLength = frame.Width()
	}

	var out *image.Frame
	if opts.staged {
		p, err := pipeline.New(cfg, opts.buffer)
		if err != nil {
			return res, err
		}
		log.Debug("edgestream: staged run", slog.String("pipeline", p.Name()))
		if out, err = p.RunFrame(ctx, frame); err != nil {
			return res, err
		}
	} else {
		s, err := pipeline.NewStream(cfg)
		if err != nil {
			return res, err
		}
		out = pipeline.RunFrame(s, frame)
	}

	if opts.verify {
		if cfg.RowLength != frame.Width() {
			log.Warn("edgestream: verify skipped, row length differs from width",
				slog.Int("row_length", cfg.RowLength), slog.Int("width", frame.Width()))
		} else {
			ref := pipeline.ReferenceFrame(refPool, frame, cfg.Mode, cfg.ScaleShift)
			if res.mismatches = mismatches(ref, out); res.mismatches > 0 {
				return res, fmt.Errorf("%s: %w in %d samples", input, errVerify, res.mismatches)
			}
			log.Debug("edgestream: verified against reference")
		}
	}

	if opts.threshold >= 0 {
		image.Threshold(out, out, edge.Pixel(opts.threshold), 0, edge.MaxPixel)
	}
	if opts.invert {
		image.Invert(out, out, edge.MaxPixel)
	}

	if err := image.WriteFrame(output, out); err != nil {
		return res, err
	}
	res.samples = frame.Width() * frame.Height()
	log.Info("edgestream: wrote frame", slog.String("output", output))
	return res, nil
}

// mismatches counts positions where a and b differ. Frames of different
// sizes differ everywhere.
func mismatches(a, b *image.Frame) int {
	if !image.SameSize(a, b) {
		return max(a.Width()*a.Height(), b.Width()*b.Height())
	}
	n := 0
	for y := 0; y < a.Height(); y++ {
		ra, rb := a.RowSlice(y), b.RowSlice(y)
		for x := range ra {
			if ra[x] != rb[x] {
				n++
			}
		}
	}
	return n
}
