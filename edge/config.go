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
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every configuration validation error.
var ErrInvalidConfig = errors.New("edge: invalid config")

// Config holds the construction-time parameters of a Filter. They cannot be
// changed once the filter exists.
type Config struct {
	// ScaleShift is the right shift applied to the gradient magnitude.
	// Larger values darken the output; smaller values brighten it and
	// saturate sooner.
	ScaleShift uint

	// Mode is the combine mode of the combined-magnitude variant.
	Mode CombineMode

	// RuntimeMode selects the two-mode variant: the combine mode is taken
	// from each Input instead of from Mode.
	RuntimeMode bool

	// RowLength is the number of valid samples per row. The filter relies
	// on it for end-of-line detection and never checks it against the feed.
	RowLength int
}

// DefaultConfig returns a shift of 4, SumAbs, and 640-sample rows.
func DefaultConfig() Config {
	return Config{
		ScaleShift: DefaultScaleShift,
		Mode:       SumAbs,
		RowLength:  DefaultRowLength,
	}
}

// Validate reports whether c can build a filter.
func (c Config) Validate() error {
	if c.RowLength < 1 {
		return fmt.Errorf("%w: row length %d, want >= 1", ErrInvalidConfig, c.RowLength)
	}
	if !c.Mode.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, c.Mode)
	}
	return nil
}
