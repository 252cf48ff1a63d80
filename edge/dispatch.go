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

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel is the widest vector unit detected on this CPU. It decides
// how many samples GradientRow processes per block and how contrib/image
// pads its rows.
type DispatchLevel int

const (
	// DispatchScalar processes 16-byte blocks with no vector unit assumed.
	DispatchScalar DispatchLevel = iota

	// DispatchAVX2 indicates 256-bit vectors.
	DispatchAVX2

	// DispatchAVX512 indicates 512-bit vectors.
	DispatchAVX512

	// DispatchNEON indicates 128-bit ARM ASIMD vectors.
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Set by init() in dispatch_*.go files.
var (
	currentLevel DispatchLevel
	currentWidth int
)

// CurrentLevel returns the detected dispatch level.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the vector width in bytes: 16, 32 or 64.
func CurrentWidth() int {
	return currentWidth
}

// NoSimdEnv reports whether EDGESTREAM_NO_SIMD is set. When it is, detection
// is skipped and the scalar width is used.
func NoSimdEnv() bool {
	val := os.Getenv("EDGESTREAM_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// BatchWidth returns how many Pixels fit in one vector at the current level.
func BatchWidth() int {
	return LanesFor[Pixel]()
}

// LanesFor returns how many values of type T fit in one vector.
func LanesFor[T any]() int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 || currentWidth < size {
		return 1
	}
	return currentWidth / size
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16
}
