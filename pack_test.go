package warp

import (
	"reflect"
	"testing"
)

func TestBracketIndices(t *testing.T) {
	axis := []float64{2, 4, 6, 8}

	lower, upper, aboveLast := bracketIndices(axis, 1)
	if lower != -1 || aboveLast {
		t.Errorf("below axis: want lower=-1 aboveLast=false but have lower=%d aboveLast=%v", lower, aboveLast)
	}

	lower, upper, aboveLast = bracketIndices(axis, 5)
	if lower != 1 || upper != 2 || aboveLast {
		t.Errorf("mid-axis: want (1,2,false) but have (%d,%d,%v)", lower, upper, aboveLast)
	}
	if !(axis[lower] <= 5 && 5 <= axis[upper]) {
		t.Errorf("bracket does not contain target energy: [%g,%g] vs 5", axis[lower], axis[upper])
	}

	lower, upper, aboveLast = bracketIndices(axis, 100)
	if lower != 3 || upper != 3 || !aboveLast {
		t.Errorf("above last: want (3,3,true) but have (%d,%d,%v)", lower, upper, aboveLast)
	}
}

func TestZeroRecordFields(t *testing.T) {
	rec := zeroRecord(-2, 7)
	if rec.LowerLaw != -2 || rec.UpperLaw != -2 {
		t.Errorf("want law -2 on both sides, have lower=%g upper=%g", rec.LowerLaw, rec.UpperLaw)
	}
	if rec.NextDex != 7 {
		t.Errorf("want NextDex=7 but have %g", rec.NextDex)
	}
	for _, v := range [][]float32{rec.LowerVar, rec.LowerPDF, rec.LowerCDF, rec.UpperVar, rec.UpperPDF, rec.UpperCDF} {
		if !reflect.DeepEqual(v, []float32{0}) {
			t.Errorf("want vector field [0] but have %v", v)
		}
	}
}

func TestThresholdNextDex(t *testing.T) {
	grid := []float64{1, 2, 3, 4, 5}
	if got := thresholdNextDex(grid, 2.5, 1); got != 2 {
		t.Errorf("want 2 but have %d", got)
	}
	if got := thresholdNextDex(grid, 0, 3); got != 2 {
		t.Errorf("axisFirst should win when larger: want 2 but have %d", got)
	}
}

func TestF32(t *testing.T) {
	got := f32([]float64{1.5, -2, 3})
	want := []float32{1.5, -2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("want %v but have %v", want, got)
	}
}
