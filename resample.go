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

import "gonum.org/v1/gonum/interp"

// XSTable is the dense cross-section table σ (§3): shape Eu x (N+R),
// row-major. Columns [0,N) hold per-nuclide totals; columns [N,N+R) hold
// each retained reaction's cross section in catalog order.
type XSTable struct {
	Grid    []float64
	Catalog *Catalog
	Data    []float32 // len(Grid) * (N+R), row-major
}

func (x *XSTable) cols() int { return x.Catalog.N + x.Catalog.R }

// At returns σ[row,col].
func (x *XSTable) At(row, col int) float32 {
	return x.Data[row*x.cols()+col]
}

// Resample builds the dense σ table by linearly interpolating every
// nuclide's total cross section, and every retained reaction's cross
// section, onto the union grid (§4.5). Values below a source's first
// tabulated abscissa are forced to zero (the threshold contract);
// values above the last tabulated abscissa hold the last value (flat
// extrapolation, not extended linearly).
func Resample(grid []float64, tables []*Table, cat *Catalog) *XSTable {
	xs := &XSTable{Grid: grid, Catalog: cat}
	cols := cat.N + cat.R
	xs.Data = make([]float32, len(grid)*cols)

	for k, t := range tables {
		col := linInterpLeftZero(grid, t.Energy, t.SigmaT)
		for i, v := range col {
			xs.Data[i*cols+k] = float32(v)
		}
	}

	for ci, e := range cat.Entries {
		if e.Reaction == nil {
			continue
		}
		t := tables[e.NuclideIndex]
		srcX := t.Energy[e.Reaction.IE:]
		col := linInterpLeftZero(grid, srcX, e.Reaction.Sigma)
		for i, v := range col {
			xs.Data[i*cols+ci] = float32(v)
		}
	}
	return xs
}

// linInterpLeftZero linearly interpolates (srcX,srcY) onto dstX. dstX
// points strictly below srcX[0] evaluate to 0 ("left=0" in the original
// numpy.interp call); points at or above srcX[len-1] hold srcY[len-1]
// (flat extrapolation).
func linInterpLeftZero(dstX, srcX, srcY []float64) []float64 {
	out := make([]float64, len(dstX))
	if len(srcX) == 0 {
		return out
	}
	if len(srcX) == 1 {
		for i, x := range dstX {
			if x < srcX[0] {
				out[i] = 0
			} else {
				out[i] = srcY[0]
			}
		}
		return out
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(srcX, srcY); err != nil {
		panic(err) // srcX is guaranteed strictly increasing by the parser contract
	}

	first, last := srcX[0], srcX[len(srcX)-1]
	lastY := srcY[len(srcY)-1]
	for i, x := range dstX {
		switch {
		case x < first:
			out[i] = 0
		case x >= last:
			out[i] = lastY
		default:
			out[i] = pl.Predict(x)
		}
	}
	return out
}
