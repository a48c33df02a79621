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

import "math"

// Packer holds the immutable post-resample state the two record-emission
// operations read from (§5: pure functions, safe to call concurrently).
type Packer struct {
	Grid         []float64
	Catalog      *Catalog
	Tables       []*Table
	IsotropicTol float64 // default 1e-5 (§6)
}

// NewPacker returns a Packer with the default isotropic tolerance.
func NewPacker(grid []float64, cat *Catalog, tables []*Table) *Packer {
	return &Packer{Grid: grid, Catalog: cat, Tables: tables, IsotropicTol: 1e-5}
}

// Scatter emits the scatter record for (row, col), col >= Catalog.N
// (§4.7). The packer evaluates five branches in a fixed order, because
// they are not mutually exclusive by attribute alone: fission-like (B1),
// tabulated angular (B2), joint angle-energy / law 61 (B3), outgoing-
// energy only (B4), no distributions (B5).
func (p *Packer) Scatter(row, col int) (Record, error) {
	nuclideIndex, mt, rxn := p.Catalog.ReactionAt(col)
	table := p.Tables[nuclideIndex]

	switch {
	case table.NuTEnergy != nil && rxn.Multiplicity > 10:
		return p.scatterFission(row, table, rxn), nil
	case rxn.Angular != nil:
		return p.scatterAngular(row, table, rxn), nil
	case rxn.EnergyDist != nil && rxn.EnergyDist.Kind == KindJointAngleEnergy:
		rec, err := p.scatterJointAngleEnergy(row, table, rxn)
		if err != nil {
			return Record{}, recordError(err, nuclideIndex, mt, row, col)
		}
		return rec, nil
	case rxn.EnergyDist != nil && rxn.EnergyDist.EnergyIn != nil:
		return p.scatterOutgoingEnergyOnly(row, table, rxn), nil
	default:
		return p.scatterFallback(rxn), nil
	}
}

// scatterFission implements B1. table.NuTEnergy is guaranteed non-nil by
// the caller's dispatch guard.
func (p *Packer) scatterFission(row int, table *Table, rxn *Reaction) Record {
	E := p.Grid[row]
	tLower, tUpper, tAboveLast := bracketIndices(table.NuTEnergy, E)

	if tLower < 0 {
		threshold := rxn.Threshold(table.Energy)
		nd := thresholdNextDex(p.Grid, threshold, table.NuTEnergy[0])
		return zeroRecord(0, nd)
	}
	dLower, dUpper, dAboveLast := bracketIndices(table.NuDEnergy, E)
	if dLower < 0 {
		// E is at or above NuTEnergy[0] but below NuDEnergy[0]: the
		// delayed-nu axis starts above the total-nu axis. Clamp to the
		// last index, mirroring the original's negative-index wraparound
		// (nu_d_value[-1]) rather than panicking on an out-of-range index.
		dLower = len(table.NuDEnergy) - 1
		dUpper = dLower
	}

	lowerET, upperET := table.NuTEnergy[tLower], table.NuTEnergy[tUpper]
	lowerED, upperED := table.NuDEnergy[dLower], table.NuDEnergy[dUpper]
	lowerNuTGrid, upperNuTGrid := table.NuTValue[tLower], table.NuTValue[tUpper]
	lowerNuDGrid, upperNuDGrid := table.NuDValue[dLower], table.NuDValue[dUpper]

	lowerErg := math.Max(lowerET, lowerED)
	upperErg := math.Min(upperET, upperED)

	var lowerNuT, upperNuT float64
	if tAboveLast {
		lowerNuT, upperNuT = upperNuTGrid, upperNuTGrid
	} else {
		lowerNuT = lowerNuTGrid + (lowerErg-lowerET)/(upperET-lowerET)*(upperNuTGrid-lowerNuTGrid)
		upperNuT = lowerNuTGrid + (upperErg-lowerET)/(upperET-lowerET)*(upperNuTGrid-lowerNuTGrid)
	}
	var lowerNuD, upperNuD float64
	if dAboveLast {
		lowerNuD, upperNuD = upperNuDGrid, upperNuDGrid
	} else {
		lowerNuD = lowerNuDGrid + (lowerErg-lowerED)/(upperED-lowerED)*(upperNuDGrid-lowerNuDGrid)
		upperNuD = lowerNuDGrid + (upperErg-lowerED)/(upperED-lowerED)*(upperNuDGrid-lowerNuDGrid)
	}

	lowerTIntt := table.NuTIntt.At(tLower)
	upperTIntt := table.NuTIntt.At(tUpper)
	lowerDIntt := table.NuDIntt.At(dLower)
	upperDIntt := table.NuDIntt.At(dUpper)
	preLowerIntt := table.NuDEnergyDist[0].Intt[0]
	preUpperIntt := table.NuDEnergyDist[0].Intt[1]
	preLaw := table.NuDEnergyDist[0].Law

	lowerIntt := lowerTIntt + 10*lowerDIntt + 100*preLowerIntt + 1000*preLaw
	upperIntt := upperTIntt + 10*upperDIntt + 100*preUpperIntt + 1000*preLaw

	lowerVar := make([]float64, 6)
	upperVar := make([]float64, 6)
	sumL, sumU := 0.0, 0.0
	for g := 0; g < 6; g++ {
		sumL += table.NuDPrecursorProb[g][0]
		sumU += table.NuDPrecursorProb[g][1]
		lowerVar[g] = sumL
		upperVar[g] = sumU
	}

	var lowerCDF, upperCDF []float64
	lowerPDF := []float64{0}
	upperPDF := []float64{0}
	for g := 0; g < 6; g++ {
		lowerCDF = append(lowerCDF, table.NuDEnergyDist[g].EnergyOut[0]...)
		upperCDF = append(upperCDF, table.NuDEnergyDist[g].EnergyOut[1]...)
		lowerPDF = append(lowerPDF, float64(len(lowerCDF)))
		upperPDF = append(upperPDF, float64(len(upperCDF)))
	}
	for g := 0; g < 6; g++ {
		lowerCDF = append(lowerCDF, table.NuDEnergyDist[g].CDF[0]...)
		upperCDF = append(upperCDF, table.NuDEnergyDist[g].CDF[1]...)
	}
	for g := 0; g < 6; g++ {
		lowerCDF = append(lowerCDF, table.NuDEnergyDist[g].PDF[0]...)
		upperCDF = append(upperCDF, table.NuDEnergyDist[g].PDF[1]...)
	}

	nextDex := len(p.Grid)
	if !(tAboveLast && dAboveLast) {
		nextDex = nextRowAtOrAfter(p.Grid, upperErg)
	}

	return Record{
		LowerErg: float32(lowerErg), LowerLaw: -1, LowerIntt: float32(lowerIntt),
		LowerLen: []float32{float32(lowerNuT), float32(lowerNuD)},
		LowerVar: f32(lowerVar), LowerPDF: f32(lowerPDF), LowerCDF: f32(lowerCDF),

		UpperErg: float32(upperErg), UpperLaw: -1, UpperIntt: float32(upperIntt),
		UpperLen: []float32{float32(upperNuT), float32(upperNuD)},
		UpperVar: f32(upperVar), UpperPDF: f32(upperPDF), UpperCDF: f32(upperCDF),

		NextDex: float32(nextDex),
	}
}

// scatterAngular implements B2.
func (p *Packer) scatterAngular(row int, table *Table, rxn *Reaction) Record {
	E := p.Grid[row]
	ang := rxn.Angular
	lower, upper, aboveLast := bracketIndices(ang.EnergyIn, E)
	if lower < 0 {
		threshold := rxn.Threshold(table.Energy)
		nd := thresholdNextDex(p.Grid, threshold, ang.EnergyIn[0])
		return zeroRecord(-2, nd)
	}

	lowerLaw, upperLaw := float32(3), float32(3)
	lowerVar, upperVar := ang.Cos[lower], ang.Cos[upper]
	lowerCDF, upperCDF := ang.CDF[lower], ang.CDF[upper]
	lowerPDF, upperPDF := ang.PDF[lower], ang.PDF[upper]

	if len(lowerVar) == 3 && math.Abs(lowerCDF[1]-0.5) <= p.IsotropicTol {
		lowerLaw = 0
	}
	if len(upperVar) == 3 && math.Abs(upperCDF[1]-0.5) <= p.IsotropicTol {
		upperLaw = 0
	}

	nextDex := len(p.Grid)
	if !aboveLast {
		nextDex = nextRowAtOrAfter(p.Grid, ang.EnergyIn[upper])
	}

	return Record{
		LowerErg: float32(ang.EnergyIn[lower]), LowerLaw: lowerLaw, LowerIntt: float32(ang.Intt[lower]),
		LowerLen: []float32{float32(len(lowerVar))},
		LowerVar: f32(lowerVar), LowerPDF: f32(lowerPDF), LowerCDF: f32(lowerCDF),

		UpperErg: float32(ang.EnergyIn[upper]), UpperLaw: upperLaw, UpperIntt: float32(ang.Intt[upper]),
		UpperLen: []float32{float32(len(upperVar))},
		UpperVar: f32(upperVar), UpperPDF: f32(upperPDF), UpperCDF: f32(upperCDF),

		NextDex: float32(nextDex),
	}
}

// scatterJointAngleEnergy implements B3 (law 61-like joint angle-energy).
func (p *Packer) scatterJointAngleEnergy(row int, table *Table, rxn *Reaction) (Record, error) {
	E := p.Grid[row]
	ed := rxn.EnergyDist
	lower, upper, aboveLast := bracketIndices(ed.EnergyIn, E)
	if lower < 0 {
		threshold := rxn.Threshold(table.Energy)
		nd := thresholdNextDex(p.Grid, threshold, ed.EnergyIn[0])
		return zeroRecord(-2, nd), nil
	}

	for _, idx := range [2]int{lower, upper} {
		if len(ed.ADistMuOut[idx]) != len(ed.EnergyOut[idx]) {
			return Record{}, ErrLengthMismatch
		}
	}

	law := float32(ed.Law)
	lowerIntt, upperIntt := 2.0, 2.0
	if ed.ADistIntt != nil {
		lowerIntt = float64(ed.ADistIntt[lower][0])
		upperIntt = float64(ed.ADistIntt[upper][0])
	}

	muxSide := func(idx int) (cdf, pdf []float64) {
		n := len(ed.ADistMuOut[idx])
		cdf = append(cdf, ed.ADistMuOut[idx]...)
		cdf = append(cdf, ed.ADistCDF[idx]...)
		cdf = append(cdf, ed.ADistPDF[idx]...)
		pdf = []float64{0, float64(n), float64(2 * n)}
		return cdf, pdf
	}
	lowerCDF, lowerPDF := muxSide(lower)
	upperCDF, upperPDF := muxSide(upper)
	lowerLen := float32(len(lowerCDF)) / 3
	upperLen := float32(len(upperCDF)) / 3

	nextDex := len(p.Grid)
	if !aboveLast {
		nextDex = nextRowAtOrAfter(p.Grid, ed.EnergyIn[upper])
	}

	return Record{
		LowerErg: float32(ed.EnergyIn[lower]), LowerLaw: law, LowerIntt: float32(lowerIntt),
		LowerLen: []float32{lowerLen},
		LowerVar: []float32{0}, LowerPDF: f32(lowerPDF), LowerCDF: f32(lowerCDF),

		UpperErg: float32(ed.EnergyIn[upper]), UpperLaw: law, UpperIntt: float32(upperIntt),
		UpperLen: []float32{upperLen},
		UpperVar: []float32{0}, UpperPDF: f32(upperPDF), UpperCDF: f32(upperCDF),

		NextDex: float32(nextDex),
	}, nil
}

// scatterOutgoingEnergyOnly implements B4.
func (p *Packer) scatterOutgoingEnergyOnly(row int, table *Table, rxn *Reaction) Record {
	E := p.Grid[row]
	ed := rxn.EnergyDist
	lower, upper, aboveLast := bracketIndices(ed.EnergyIn, E)
	if lower < 0 {
		threshold := rxn.Threshold(table.Energy)
		nd := thresholdNextDex(p.Grid, threshold, ed.EnergyIn[0])
		return zeroRecord(-2, nd)
	}

	law := float32(ed.Law)
	intt := func(idx int) float64 {
		if ed.Intt != nil {
			return float64(ed.Intt[idx])
		}
		return 2
	}
	varAt := func(idx int) []float64 {
		switch {
		case ed.Ang != nil:
			return ed.Ang[idx]
		case ed.Var != nil:
			return make([]float64, len(ed.Var[idx]))
		default:
			return []float64{0}
		}
	}
	cdfAt := func(idx int) []float64 {
		switch {
		case ed.Frac != nil:
			return ed.Frac[idx]
		case ed.CDF != nil:
			return make([]float64, len(ed.CDF[idx]))
		default:
			return []float64{0}
		}
	}
	pdfAt := func(idx int) []float64 {
		if ed.PDF != nil {
			return make([]float64, len(ed.PDF[idx]))
		}
		return []float64{0}
	}

	lowerVar, upperVar := varAt(lower), varAt(upper)
	lowerCDF, upperCDF := cdfAt(lower), cdfAt(upper)
	lowerPDF, upperPDF := pdfAt(lower), pdfAt(upper)

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
	}
}

// scatterFallback implements B5: the isotropic fallback for a reaction
// with no distributions at all.
func (p *Packer) scatterFallback(rxn *Reaction) Record {
	var law float32
	if rxn.EnergyDist != nil {
		law = float32(rxn.EnergyDist.Law)
	}
	first := float32(p.Grid[0])
	last := float32(p.Grid[len(p.Grid)-1])

	return Record{
		LowerErg: first, LowerLaw: law, LowerIntt: 1,
		LowerLen: []float32{3},
		LowerVar: []float32{-1, 0, 1}, LowerPDF: []float32{0.5, 0.5, 0.5}, LowerCDF: []float32{0, 0.5, 1},

		UpperErg: last, UpperLaw: law, UpperIntt: 1,
		UpperLen: []float32{3},
		UpperVar: []float32{-1, 0, 1}, UpperPDF: []float32{0.5, 0.5, 0.5}, UpperCDF: []float32{0, 0.5, 1},

		NextDex: float32(len(p.Grid)),
	}
}
