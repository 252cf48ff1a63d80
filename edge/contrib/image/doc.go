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

// Package image provides single-channel frames for the edge filter.
//
// Image[T] stores 2D data with rows padded to the detected vector width, so
// row kernels such as edge.GradientRow can work in whole blocks. Frame is
// the 12-bit instantiation used by the streaming filter.
//
// # Frame I/O
//
// ReadFrame and WriteFrame move frames to and from 16-bit grayscale TIFF or
// PNG files:
//
//	frame, err := image.ReadFrame("in.tiff")
//	if err != nil {
//	    return err
//	}
//	// ... process ...
//	err = image.WriteFrame("out.tiff", out)
//
// 16-bit sources keep their top 12 bits; 8-bit sources are widened. Colored
// sources are converted to gray first.
package image
