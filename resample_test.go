package warp

import (
	"math"
	"testing"
)

func approxEqual(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestLinInterpLeftZeroBelowThreshold(t *testing.T) {
	srcX := []float64{2, 4, 6}
	srcY := []float64{10, 20, 30}
	got := linInterpLeftZero([]float64{1, 2, 3, 4, 5, 6, 7}, srcX, srcY)
	want := []float64{0, 10, 15, 20, 25, 30, 30}
	for i := range want {
		if !approxEqual(got[i], want[i], 1e-9) {
			t.Errorf("index %d: want %g but have %g", i, want[i], got[i])
		}
	}
}

func TestResampleProducesZeroBelowThreshold(t *testing.T) {
	tables := []*Table{
		{
			AWR: 1, Energy: []float64{1, 2, 3}, SigmaT: []float64{10, 20, 30},
			Reactions: map[uint32]*Reaction{
				16: {MT: 16, IE: 1, Sigma: []float64{5, 8}}, // threshold at Energy[1]=2
			},
		},
	}
	grid := UnionGrid(tables)
	cat := BuildCatalog(tables)
	xs := Resample(grid, tables, cat)

	rxnCol := -1
	for i, e := range cat.Entries {
		if e.MT == 16 {
			rxnCol = i
		}
	}
	if rxnCol < 0 {
		t.Fatal("reaction column not found")
	}

	for row, e := range grid {
		v := xs.At(row, rxnCol)
		threshold := tables[0].Energy[1]
		if e < threshold && v != 0 {
			t.Errorf("row %d (E=%g < threshold %g): want 0 but have %g", row, e, threshold, v)
		}
	}
}

func TestXSTableShape(t *testing.T) {
	tables := []*Table{
		{AWR: 1, Energy: []float64{1, 2}, SigmaT: []float64{1, 2}},
	}
	grid := UnionGrid(tables)
	cat := BuildCatalog(tables)
	xs := Resample(grid, tables, cat)

	wantLen := len(grid) * (cat.N + cat.R)
	if len(xs.Data) != wantLen {
		t.Errorf("want data length %d but have %d", wantLen, len(xs.Data))
	}
}
