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

// Prepared is the immutable result of the prepare phase (§5: resolve ->
// load -> union -> index -> allocate -> resample). Once built it is
// read-only; the pack phase (Scatter/Energy) runs on demand and may be
// called concurrently from multiple goroutines.
type Prepared struct {
	Grid    []float64
	Tables  []*Table
	Catalog *Catalog
	XS      *XSTable
	Packer  *Packer
}

// Prepare runs the full pipeline for an ordered nuclide list against a
// datapath, up through cross-section resampling. Distribution packing
// happens lazily via Scatter/Energy.
func Prepare(datapath string, nuclideIDs []string, opener LibraryOpener) (*Prepared, error) {
	asm := &Assembler{Datapath: datapath, Open: opener}
	tables, err := asm.Assemble(nuclideIDs)
	if err != nil {
		return nil, err
	}

	grid := UnionGrid(tables)
	cat := BuildCatalog(tables)
	xs := Resample(grid, tables, cat)

	return &Prepared{
		Grid:    grid,
		Tables:  tables,
		Catalog: cat,
		XS:      xs,
		Packer:  NewPacker(grid, cat, tables),
	}, nil
}

// GridBuffer returns the union energy grid E* as a contiguous float32
// buffer, length Eu (§6).
func (p *Prepared) GridBuffer() []float32 { return f32(p.Grid) }

// ReactionNumbers returns the MT-remapped reaction-number vector,
// length N+R (§4.6, §6).
func (p *Prepared) ReactionNumbers() []uint32 { return p.Catalog.ReactionNumbers() }

// AWR returns the per-nuclide atomic weight ratio vector, length N.
func (p *Prepared) AWR() []float32 { return p.Catalog.AWR }

// Temp returns the per-nuclide temperature vector, length N.
func (p *Prepared) Temp() []float32 { return p.Catalog.Temp }

// Q returns the per-column Q-value vector, length N+R.
func (p *Prepared) Q() []float32 { return p.Catalog.Qs() }

// XSBuffer returns the dense cross-section table as a contiguous
// row-major float32 buffer, shape Eu x (N+R).
func (p *Prepared) XSBuffer() []float32 { return p.XS.Data }

// Lengths returns the (N, Eu, R) length triple (§6).
func (p *Prepared) Lengths() [3]uint32 {
	return [3]uint32{uint32(p.Catalog.N), uint32(len(p.Grid)), uint32(p.Catalog.R)}
}

// CumRetained returns the per-nuclide cumulative retained-reaction
// counts with a leading zero, length N+1 (§3, §8 invariant 5).
func (p *Prepared) CumRetained() []uint32 { return p.Catalog.CumRetained }

// Scatter emits the scatter record for (row, col); col must be >= N.
func (p *Prepared) Scatter(row, col int) (Record, error) { return p.Packer.Scatter(row, col) }

// Energy emits the energy record for (row, col); col must be >= N.
func (p *Prepared) Energy(row, col int) (Record, error) { return p.Packer.Energy(row, col) }
