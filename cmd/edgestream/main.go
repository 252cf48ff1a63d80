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

// Command edgestream runs the streaming Sobel edge filter over image files.
//
// Usage:
//
//	edgestream filter -o edges.tiff frame.tiff
//	edgestream filter --mode gx --shift 2 --workers 4 a.tiff b.png c.tiff
//	edgestream filter --staged --verify frame.png
//	edgestream info
//
// Each input frame is streamed in raster order, one sample per step, through
// a fresh filter whose row length is the frame width unless --row-length
// overrides it. Outputs are 16-bit grayscale TIFF or PNG, chosen by
// extension.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
