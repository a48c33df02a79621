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

package warp

import "sort"

// UnionGrid builds the global energy grid E* (§4.3): the sorted,
// de-duplicated union of every table's principal cross-section axis, its
// nu axes, and every reaction's angular/outgoing-energy distribution
// axes. Unionization applies no retention filter — it runs over every
// distribution a table exposes, not just the reactions that end up
// columns in the dense table.
func UnionGrid(tables []*Table) []float64 {
	seen := make(map[float64]struct{})
	add := func(xs []float64) {
		for _, x := range xs {
			seen[x] = struct{}{}
		}
	}
	for _, t := range tables {
		add(t.Energy)
		add(t.NuTEnergy)
		add(t.NuDEnergy)
		add(t.NuPEnergy)
		for _, rxn := range t.Reactions {
			if rxn.Angular != nil {
				add(rxn.Angular.EnergyIn)
			}
			if rxn.EnergyDist != nil {
				add(rxn.EnergyDist.EnergyIn)
				add(rxn.EnergyDist.EnergyAIn)
				add(rxn.EnergyDist.EnergyBIn)
			}
		}
	}

	grid := make([]float64, 0, len(seen))
	for x := range seen {
		grid = append(grid, x)
	}
	sort.Float64s(grid)
	return grid
}

// bracket returns the smallest index i such that e < axis[i] (the
// "smallest index with E < axis[i]" predicate used throughout §4.7), or
// len(axis) if no such index exists.
func bracket(axis []float64, e float64) int {
	lo, hi := 0, len(axis)
	for lo < hi {
		mid := (lo + hi) / 2
		if e < axis[mid] {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// nextRowAtOrAfter returns the smallest row index i such that grid[i] >= e,
// or len(grid) if none exists. This is the shared "next_dex" search used
// by every branch of the distribution packer (§4.7, "Next-row discipline").
func nextRowAtOrAfter(grid []float64, e float64) int {
	return sort.Search(len(grid), func(i int) bool { return grid[i] >= e })
}
