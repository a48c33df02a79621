/*
Copyright © 2026 the warp authors.
This file is part of warp.

warp is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

warp is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with warp.  If not, see <http://www.gnu.org/licenses/>.
*/

package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

var prepareCmd = &cobra.Command{
	Use:   "prepare",
	Short: "Resolve, load, and resample the configured nuclide list.",
	Long: `prepare runs the full pipeline (resolve, load, union, index, resample) for
the nuclide list named in the configuration file and prints the resulting
grid and catalog dimensions. It does not write the packed distribution
records anywhere; those are produced on demand by a downstream consumer
through the warp package API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if aceLoader == nil {
			return errNoACELoader
		}
		prepared, err := prepare(Config, aceLoader)
		if err != nil {
			return err
		}
		lengths := prepared.Lengths()
		log.Printf("nuclides=%d grid_points=%d retained_reactions=%d", lengths[0], lengths[1], lengths[2])
		log.Printf("grid range: [%g, %g] eV", prepared.Grid[0], prepared.Grid[len(prepared.Grid)-1])
		return nil
	},
}
