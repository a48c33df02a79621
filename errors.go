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
	"errors"
	"fmt"
)

// Sentinel errors, matching the teacher's "pkgname: message" convention
// (see spatialmodel/inmap's vargrid.go and emissions/aep error strings).
// Use errors.Is to discriminate.
var (
	// ErrXsdirNotFound means the datapath neither names an xsdir file nor
	// contains one.
	ErrXsdirNotFound = errors.New("warp: xsdir not found")

	// ErrNuclideNotFound means the identifier is absent from the xsdir.
	ErrNuclideNotFound = errors.New("warp: nuclide not found in xsdir")

	// ErrTableNotFound means the xsdir points at a file but the ACE
	// parser could not locate the identifier within it.
	ErrTableNotFound = errors.New("warp: table not found in library")

	// ErrLengthMismatch is the law-61 invariant violation:
	// len(ADistMuOut[i]) != len(EnergyOut[i]).
	ErrLengthMismatch = errors.New("warp: law-61 mu/energy length mismatch")

	// ErrUnhandledEnergyDist means the energy-record branch was reached
	// with no recognized payload (no energy_out, T, or a/b fields).
	ErrUnhandledEnergyDist = errors.New("warp: unhandled energy distribution payload")
)

// recordError wraps a record-emission-time sentinel with the
// (nuclide, MT, row, col) context required by §7 of the spec.
func recordError(base error, nuclideIndex int, mt uint32, row, col int) error {
	return fmt.Errorf("%w: nuclide %d mt %d row %d col %d", base, nuclideIndex, mt, row, col)
}
