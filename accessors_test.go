package warp

import (
	"fmt"
	"path/filepath"
	"testing"
)

// fakeLibrary is a minimal in-memory stand-in for the external ACE parser,
// used only to exercise Assemble/Prepare's wiring.
type fakeLibrary struct {
	tables map[string]*Table
}

func (f *fakeLibrary) Read() error { return nil }

func (f *fakeLibrary) FindTable(id string) (*Table, error) {
	t, ok := f.tables[id]
	if !ok {
		return nil, fmt.Errorf("no such table: %s", id)
	}
	return t, nil
}

func fakeOpener(tables map[string]*Table) LibraryOpener {
	return func(path string) (Library, error) {
		return &fakeLibrary{tables: tables}, nil
	}
}

func TestPrepareTwoNuclideDisjointGridUnion(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "xsdir"),
		"h1 1.0 0.0 lib/h1lib\no16 16.0 0.0 lib/o16lib\n")

	h1 := &Table{ID: "h1", AWR: 1, Energy: []float64{1, 2, 3}, SigmaT: []float64{1, 2, 3}}
	o16 := &Table{ID: "o16", AWR: 16, Energy: []float64{2, 4, 6}, SigmaT: []float64{10, 20, 30}}
	opener := fakeOpener(map[string]*Table{"h1": h1, "o16": o16})

	prepared, err := Prepare(dir, []string{"h1", "o16"}, opener)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantGrid := []float64{1, 2, 3, 4, 6}
	if len(prepared.Grid) != len(wantGrid) {
		t.Fatalf("want grid length %d but have %d (%v)", len(wantGrid), len(prepared.Grid), prepared.Grid)
	}
	for i, e := range wantGrid {
		if prepared.Grid[i] != e {
			t.Errorf("grid[%d]: want %g but have %g", i, e, prepared.Grid[i])
		}
	}

	lengths := prepared.Lengths()
	if lengths[0] != 2 {
		t.Errorf("want N=2 but have %d", lengths[0])
	}

	// h1's total at E=4 should hold its last tabulated value (flat
	// extrapolation); o16's total at E=1 should be zero (below threshold).
	h1Col, o16Col := 0, 1
	row4 := -1
	for i, e := range prepared.Grid {
		if e == 4 {
			row4 = i
		}
	}
	if got := prepared.XS.At(row4, h1Col); got != 3 {
		t.Errorf("h1 total at E=4: want flat-extrapolated 3 but have %g", got)
	}
	row1 := 0
	if got := prepared.XS.At(row1, o16Col); got != 0 {
		t.Errorf("o16 total at E=1 (below threshold 2): want 0 but have %g", got)
	}
}

func TestPrepareRetentionAndMTRemap(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "xsdir"), "u235 235.0 0.0 lib/u235lib\n")

	u235 := &Table{
		ID: "u235", AWR: 235, Energy: []float64{1, 2}, SigmaT: []float64{1, 2},
		Reactions: map[uint32]*Reaction{
			2:   {MT: 2, IE: 0, Sigma: []float64{1, 2}},
			3:   {MT: 3, IE: 0, Sigma: []float64{1, 2}}, // filtered
			4:   {MT: 4, IE: 0, Sigma: []float64{1, 2}}, // filtered
			16:  {MT: 16, IE: 0, Sigma: []float64{1, 2}},
			102: {MT: 102, IE: 0, Sigma: []float64{1, 2}},
		},
	}
	opener := fakeOpener(map[string]*Table{"u235": u235})

	prepared, err := Prepare(dir, []string{"u235"}, opener)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantMTs := map[uint32]bool{50: false, 16: false, 1102: false}
	for _, mt := range prepared.ReactionNumbers()[1:] { // skip the N=1 sentinel total
		if _, ok := wantMTs[mt]; ok {
			wantMTs[mt] = true
		} else {
			t.Errorf("unexpected remapped MT %d in reaction numbers", mt)
		}
	}
	for mt, seen := range wantMTs {
		if !seen {
			t.Errorf("expected remapped MT %d to appear, it did not", mt)
		}
	}
	if n := len(prepared.ReactionNumbers()); n != 1+3 {
		t.Errorf("want %d total reaction-number entries (retention filter drops MT 3,4) but have %d", 1+3, n)
	}
}
