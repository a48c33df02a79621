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

// retentionFilter is §4.4's "Retention filter": MT < 200 and MT not one
// of the informational/redundant totals {3,4,5,10,27}.
func retentionFilter(mt uint32) bool {
	if mt >= 200 {
		return false
	}
	switch mt {
	case 3, 4, 5, 10, 27:
		return false
	}
	return true
}

// CatalogEntry is one column of the dense cross-section table: either a
// per-nuclide total (Reaction nil, MT sentinel 1) or a retained reaction.
type CatalogEntry struct {
	NuclideIndex int
	MT           uint32
	Q            float32
	Reaction     *Reaction // nil for the per-nuclide total sentinel
}

// Catalog is the reaction indexer's output (§4.4): the ordered column
// list, per-nuclide AWR/temp, and the cumulative retained-reaction
// counts required by the downstream consumer contract (§6).
type Catalog struct {
	N int // number of nuclides
	R int // number of retained reactions

	Entries []CatalogEntry // length N+R
	AWR     []float32      // length N
	Temp    []float32      // length N

	// CumRetained is the per-nuclide cumulative retained-reaction count
	// with a leading zero, length N+1 (§3, §8 invariant 5).
	CumRetained []uint32
}

// BuildCatalog enumerates the retained reactions per nuclide (filtered by
// MT), assigns each a column, and computes per-nuclide cumulative
// offsets. Column order is nuclide-major, ascending MT within a nuclide —
// the source's dictionary iteration order is unspecified, so ascending MT
// is fixed here to make column assignment reproducible (§4.4, §9b).
func BuildCatalog(tables []*Table) *Catalog {
	n := len(tables)
	cat := &Catalog{
		N:           n,
		AWR:         make([]float32, n),
		Temp:        make([]float32, n),
		CumRetained: make([]uint32, n+1),
	}

	for k, t := range tables {
		cat.AWR[k] = t.AWR
		cat.Temp[k] = t.Temp
		cat.Entries = append(cat.Entries, CatalogEntry{NuclideIndex: k, MT: 1, Q: 0})
	}

	for k, t := range tables {
		mts := make([]uint32, 0, len(t.Reactions))
		for mt := range t.Reactions {
			if retentionFilter(mt) {
				mts = append(mts, mt)
			}
		}
		sort.Slice(mts, func(i, j int) bool { return mts[i] < mts[j] })

		for _, mt := range mts {
			rxn := t.Reactions[mt]
			cat.Entries = append(cat.Entries, CatalogEntry{
				NuclideIndex: k,
				MT:           mt,
				Q:            rxn.Q,
				Reaction:     rxn,
			})
		}
		cat.R += len(mts)
		cat.CumRetained[k+1] = cat.CumRetained[k] + uint32(len(mts))
	}
	return cat
}

// ReactionNumbers returns the MT-remapped reaction-number vector for
// emission to the downstream consumer (§4.6). The sentinel MT=1 total
// entries are not transformed.
func (c *Catalog) ReactionNumbers() []uint32 {
	out := make([]uint32, len(c.Entries))
	for i, e := range c.Entries {
		out[i] = remapMT(e.MT)
	}
	return out
}

// remapMT applies the fixed MT relabeling table used by the downstream
// consumer (§4.6):
//   - MT == 2          -> 50   (elastic)
//   - MT in {18,19,20,21,38} -> MT+800 (fission channels)
//   - MT > 100         -> MT+1000 (captures)
//   - otherwise unchanged (this includes the sentinel MT=1 totals).
func remapMT(mt uint32) uint32 {
	switch {
	case mt == 2:
		return 50
	case mt == 18 || mt == 19 || mt == 20 || mt == 21 || mt == 38:
		return mt + 800
	case mt > 100:
		return mt + 1000
	default:
		return mt
	}
}

// Qs returns the per-column Q-value vector, length N+R.
func (c *Catalog) Qs() []float32 {
	out := make([]float32, len(c.Entries))
	for i, e := range c.Entries {
		out[i] = e.Q
	}
	return out
}

// ReactionAt maps a dense-table column back to its owning nuclide, MT,
// and Reaction (nil for a per-nuclide total column). This is the Go
// rendering of the original implementation's internal
// argmax((col-N) < cumsum(reaction_numbers_total)) isotope lookup (see
// SPEC_FULL.md §11), exposed as a first-class helper.
func (c *Catalog) ReactionAt(col int) (nuclideIndex int, mt uint32, rxn *Reaction) {
	e := c.Entries[col]
	return e.NuclideIndex, e.MT, e.Reaction
}
