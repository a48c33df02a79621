package warp

import (
	"reflect"
	"testing"
)

func TestRetentionFilter(t *testing.T) {
	cases := []struct {
		mt   uint32
		want bool
	}{
		{2, true},
		{3, false},
		{4, false},
		{5, false},
		{10, false},
		{16, true},
		{27, false},
		{102, true},
		{199, true},
		{200, false},
		{207, false},
	}
	for _, c := range cases {
		if got := retentionFilter(c.mt); got != c.want {
			t.Errorf("retentionFilter(%d): want %v but have %v", c.mt, c.want, got)
		}
	}
}

func TestRemapMT(t *testing.T) {
	cases := []struct {
		mt   uint32
		want uint32
	}{
		{2, 50},
		{18, 818},
		{19, 819},
		{20, 820},
		{21, 821},
		{38, 838},
		{102, 1102},
		{207, 1207},
		{16, 16},
		{1, 1},
	}
	for _, c := range cases {
		if got := remapMT(c.mt); got != c.want {
			t.Errorf("remapMT(%d): want %d but have %d", c.mt, c.want, got)
		}
	}
}

func TestBuildCatalogOrderingAndCumulative(t *testing.T) {
	tables := []*Table{
		{
			AWR: 1, Temp: 300,
			Reactions: map[uint32]*Reaction{
				102: {MT: 102, Q: 1},
				16:  {MT: 16, Q: 2},
				4:   {MT: 4, Q: 3}, // filtered out
			},
		},
		{
			AWR: 2, Temp: 600,
			Reactions: map[uint32]*Reaction{
				2: {MT: 2, Q: 4},
			},
		},
	}
	cat := BuildCatalog(tables)

	if cat.N != 2 || cat.R != 3 {
		t.Fatalf("want N=2 R=3 but have N=%d R=%d", cat.N, cat.R)
	}
	wantMTs := []uint32{1, 1, 16, 102, 2}
	wantNucl := []int{0, 1, 0, 0, 1}
	for i, e := range cat.Entries {
		if e.MT != wantMTs[i] || e.NuclideIndex != wantNucl[i] {
			t.Errorf("entry %d: want (nuclide %d, mt %d) but have (nuclide %d, mt %d)",
				i, wantNucl[i], wantMTs[i], e.NuclideIndex, e.MT)
		}
	}

	wantCum := []uint32{0, 2, 3}
	if !reflect.DeepEqual(wantCum, cat.CumRetained) {
		t.Errorf("want CumRetained %v but have %v", wantCum, cat.CumRetained)
	}
	if cat.CumRetained[0] != 0 {
		t.Errorf("CumRetained[0] must be 0, have %d", cat.CumRetained[0])
	}
	if int(cat.CumRetained[cat.N]) != cat.R {
		t.Errorf("CumRetained[N] must equal R=%d, have %d", cat.R, cat.CumRetained[cat.N])
	}
}

func TestReactionAt(t *testing.T) {
	tables := []*Table{
		{AWR: 1, Reactions: map[uint32]*Reaction{16: {MT: 16, Q: 5}}},
	}
	cat := BuildCatalog(tables)

	nuclideIndex, mt, rxn := cat.ReactionAt(0)
	if nuclideIndex != 0 || mt != 1 || rxn != nil {
		t.Errorf("column 0: want (0, 1, nil) but have (%d, %d, %v)", nuclideIndex, mt, rxn)
	}
	nuclideIndex, mt, rxn = cat.ReactionAt(1)
	if nuclideIndex != 0 || mt != 16 || rxn == nil || rxn.Q != 5 {
		t.Errorf("column 1: want (0, 16, Q=5) but have (%d, %d, %v)", nuclideIndex, mt, rxn)
	}
}
