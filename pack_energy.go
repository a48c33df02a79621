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

import (
	"sort"

	"gonum.org/v1/gonum/interp"
)

// resolveLaw11 performs the §4.7 energy-record pre-processing step for
// law-11-style reactions: if energy_dist carries separate EnergyAIn/
// EnergyBIn axes (rather than a single EnergyIn), compute their union and
// resample the a/b parameters onto it. Run once per table during
// assembly so that Energy stays a pure function of immutable state (§5).
func resolveLaw11(t *Table) {
	for _, rxn := range t.Reactions {
		ed := rxn.EnergyDist
		if ed == nil || ed.resampled || ed.EnergyAIn == nil {
			continue
		}
		union := sortedUnion(ed.EnergyAIn, ed.EnergyBIn)
		ed.A = plainInterp(union, ed.EnergyAIn, ed.A)
		ed.B = plainInterp(union, ed.EnergyBIn, ed.B)
		ed.EnergyIn = union
		ed.resampled = true
	}
}

func sortedUnion(a, b []float64) []float64 {
	seen := make(map[float64]struct{}, len(a)+len(b))
	for _, x := range a {
		seen[x] = struct{}{}
	}
	for _, x := range b {
		seen[x] = struct{}{}
	}
	out := make([]float64, 0, len(seen))
	for x := range seen {
		out = append(out, x)
	}
	sort.Float64s(out)
	return out
}

// plainInterp linearly interpolates (srcX,srcY) onto dstX with flat
// extrapolation on both ends (ordinary numpy.interp semantics, unlike the
// resampler's left=0 threshold contract).
func plainInterp(dstX, srcX, srcY []float64) []float64 {
	out := make([]float64, len(dstX))
	if len(srcX) == 0 {
		return out
	}
	if len(srcX) == 1 {
		for i := range dstX {
			out[i] = srcY[0]
		}
		return out
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(srcX, srcY); err != nil {
		panic(err)
	}
	first, last := srcX[0], srcX[len(srcX)-1]
	lastY, firstY := srcY[len(srcY)-1], srcY[0]
	for i, x := range dstX {
		switch {
		case x <= first:
			out[i] = firstY
		case x >= last:
			out[i] = lastY
		default:
			out[i] = pl.Predict(x)
		}
	}
	return out
}

// Energy emits the energy record for (row, col), col >= Catalog.N
// (§4.7). Unlike Scatter, only two shapes of content are produced: a
// tabulated/parametric branch (when the reaction's energy distribution
// carries an energy axis) and a no-distribution fallback with zeroed
// vector fields.
func (p *Packer) Energy(row, col int) (Record, error) {
	nuclideIndex, mt, rxn := p.Catalog.ReactionAt(col)
	table := p.Tables[nuclideIndex]
	ed := rxn.EnergyDist

	if ed != nil && (ed.EnergyIn != nil || ed.EnergyAIn != nil) {
		rec, err := p.energyTabulated(row, table, rxn, ed)
		if err != nil {
			return Record{}, recordError(err, nuclideIndex, mt, row, col)
		}
		return rec, nil
	}
	return p.energyFallback(ed), nil
}

func (p *Packer) energyTabulated(row int, table *Table, rxn *Reaction, ed *EnergyDist) (Record, error) {
	E := p.Grid[row]
	lower, upper, aboveLast := bracketIndices(ed.EnergyIn, E)
	if lower < 0 {
		threshold := rxn.Threshold(table.Energy)
		nd := thresholdNextDex(p.Grid, threshold, ed.EnergyIn[0])
		return zeroRecord(0, nd), nil
	}

	law := float32(ed.Law)
	intt := func(idx int) float64 {
		if ed.Intt != nil {
			return float64(ed.Intt[idx])
		}
		return 2
	}

	var lowerVar, upperVar, lowerPDF, upperPDF, lowerCDF, upperCDF []float64
	switch {
	case ed.EnergyOut != nil:
		lowerVar, upperVar = ed.EnergyOut[lower], ed.EnergyOut[upper]
		lowerPDF, upperPDF = ed.PDF[lower], ed.PDF[upper]
		lowerCDF, upperCDF = ed.CDF[lower], ed.CDF[upper]
	case ed.T != nil:
		lowerVar, upperVar = []float64{ed.T[lower]}, []float64{ed.T[upper]}
		lowerCDF, upperCDF = []float64{ed.U}, []float64{ed.U}
		lowerPDF, upperPDF = []float64{0}, []float64{0}
	case ed.A != nil:
		lowerVar, upperVar = []float64{ed.A[lower]}, []float64{ed.A[upper]}
		lowerCDF, upperCDF = []float64{ed.B[lower]}, []float64{ed.B[upper]}
		lowerPDF, upperPDF = []float64{ed.U}, []float64{ed.U}
	default:
		return Record{}, ErrUnhandledEnergyDist
	}

	nextDex := len(p.Grid)
	if !aboveLast {
		nextDex = nextRowAtOrAfter(p.Grid, ed.EnergyIn[upper])
	}

	return Record{
		LowerErg: float32(ed.EnergyIn[lower]), LowerLaw: law, LowerIntt: float32(intt(lower)),
		LowerLen: []float32{float32(len(lowerVar))},
		LowerVar: f32(lowerVar), LowerPDF: f32(lowerPDF), LowerCDF: f32(lowerCDF),

		UpperErg: float32(ed.EnergyIn[upper]), UpperLaw: law, UpperIntt: float32(intt(upper)),
		UpperLen: []float32{float32(len(upperVar))},
		UpperVar: f32(upperVar), UpperPDF: f32(upperPDF), UpperCDF: f32(upperCDF),

		NextDex: float32(nextDex),
	}, nil
}

// energyFallback is the energy record's no-distribution branch: zeroed
// vector fields (not the scatter record's isotropic triple), spanning
// the full grid.
func (p *Packer) energyFallback(ed *EnergyDist) Record {
	var law float32
	if ed != nil {
		law = float32(ed.Law)
	}
	first := float32(p.Grid[0])
	last := float32(p.Grid[len(p.Grid)-1])

	return Record{
		LowerErg: first, LowerLaw: law, LowerIntt: 1,
		LowerLen: []float32{1},
		LowerVar: []float32{0}, LowerPDF: []float32{0}, LowerCDF: []float32{0},

		UpperErg: last, UpperLaw: law, UpperIntt: 1,
		UpperLen: []float32{1},
		UpperVar: []float32{0}, UpperPDF: []float32{0}, UpperCDF: []float32{0},

		NextDex: float32(len(p.Grid)),
	}
}
