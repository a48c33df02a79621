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
	"fmt"

	"github.com/Knetic/govaluate"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "List the reaction catalog, optionally filtered by an expression.",
	Long: `inspect runs the pipeline through cataloging and prints one line per
retained reaction column: nuclide index, MT number, and Q value. If the
configuration file sets RetainReactions, that expression is evaluated
against each candidate reaction (variables mt, q, awr) and only matches
are printed; this is independent of and in addition to the catalog's own
built-in retention filter.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if aceLoader == nil {
			return errNoACELoader
		}
		prepared, err := prepare(Config, aceLoader)
		if err != nil {
			return err
		}

		var expr *govaluate.EvaluableExpression
		if Config.RetainReactions != "" {
			expr, err = govaluate.NewEvaluableExpression(Config.RetainReactions)
			if err != nil {
				return fmt.Errorf("xsprep: parsing retain_reactions expression: %v", err)
			}
		}

		lengths := prepared.Lengths()
		n, r := int(lengths[0]), int(lengths[2])
		qs := prepared.Q()
		for col := n; col < n+r; col++ {
			nuclideIndex, mt, _ := prepared.Catalog.ReactionAt(col)
			q := float64(qs[col])
			awr := float64(prepared.Catalog.AWR[nuclideIndex])

			if expr != nil {
				result, err := expr.Evaluate(map[string]interface{}{
					"mt":  float64(mt),
					"q":   q,
					"awr": awr,
				})
				if err != nil {
					return fmt.Errorf("xsprep: evaluating retain_reactions: %v", err)
				}
				keep, ok := result.(bool)
				if !ok || !keep {
					continue
				}
			}
			fmt.Printf("nuclide=%d mt=%d q=%g\n", nuclideIndex, mt, q)
		}
		return nil
	},
}
