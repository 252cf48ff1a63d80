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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-edgestream/edge"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print dispatch level and filter defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := edge.DefaultConfig()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "dispatch:    %s (%d-byte vectors, %d samples per block)\n",
				edge.CurrentLevel(), edge.CurrentWidth(), edge.BatchWidth())
			fmt.Fprintf(w, "pixel:       %d bits, max %d\n", edge.PixelBits, edge.MaxPixel)
			fmt.Fprintf(w, "row length:  %d\n", cfg.RowLength)
			fmt.Fprintf(w, "scale shift: %d\n", cfg.ScaleShift)
			fmt.Fprintf(w, "mode:        %s\n", cfg.Mode)
			return nil
		},
	}
}
