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
	"errors"
	"fmt"
	stdimage "image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned when a file extension maps to no encoder.
var ErrUnsupportedFormat = errors.New("image: unsupported format")

// Format is an on-disk frame encoding.
type Format int

const (
	FormatTIFF Format = iota
	FormatPNG
)

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tif", ".tiff":
		return FormatTIFF, nil
	case ".png":
		return FormatPNG, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// DecodeFrame reads a TIFF or PNG stream and converts it to a frame.
func DecodeFrame(r io.Reader) (*Frame, error) {
	src, _, err := stdimage.Decode(r)
	if err != nil {
		return nil, err
	}
	return FrameFromImage(src), nil
}

// EncodeFrame writes frame to w as 16-bit grayscale.
func EncodeFrame(w io.Writer, frame *Frame, format Format) error {
	img := frame.ToGray16()
	switch format {
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case FormatPNG:
		return png.Encode(w, img)
	default:
		return fmt.Errorf("%w: format %d", ErrUnsupportedFormat, format)
	}
}

// ReadFrame loads a frame from a TIFF or PNG file.
func ReadFrame(path string) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	frame, err := DecodeFrame(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return frame, nil
}

// WriteFrame stores frame at path, choosing the encoding from the extension.
func WriteFrame(path string, frame *Frame) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := EncodeFrame(f, frame, format); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
