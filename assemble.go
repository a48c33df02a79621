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

import "fmt"

// Library is the external ACE-parser contract (§6): a library file opened
// and read once, from which individual nuclide tables are retrieved by
// identifier. The core never implements this itself — it is produced by
// an external collaborator and consumed only through this interface.
type Library interface {
	Read() error
	FindTable(id string) (*Table, error)
}

// LibraryOpener opens the ACE library file at path. It does not read it;
// call Read on the result before FindTable.
type LibraryOpener func(path string) (Library, error)

// Assembler groups a user-supplied ordered nuclide list by source
// library, loads each unique library at most once, and returns the
// tables in the user's original order (§4.2).
type Assembler struct {
	Datapath string
	Open     LibraryOpener
}

// Assemble resolves, loads, and classifies the tables for nuclideIDs.
// tables[k] corresponds to nuclideIDs[k]; duplicate identifiers are
// permitted and produce independent table entries.
func (a *Assembler) Assemble(nuclideIDs []string) ([]*Table, error) {
	paths := make([]string, len(nuclideIDs))
	var loadOrder []string
	seen := make(map[string]bool)
	for i, id := range nuclideIDs {
		path, err := ResolveLibraryPath(id, a.Datapath)
		if err != nil {
			return nil, err
		}
		paths[i] = path
		if !seen[path] {
			seen[path] = true
			loadOrder = append(loadOrder, path)
		}
	}

	libs := make(map[string]Library, len(loadOrder))
	for _, path := range loadOrder {
		lib, err := a.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: opening %s: %v", ErrTableNotFound, path, err)
		}
		if err := lib.Read(); err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", ErrTableNotFound, path, err)
		}
		libs[path] = lib
	}

	tables := make([]*Table, len(nuclideIDs))
	for i, id := range nuclideIDs {
		table, err := libs[paths[i]].FindTable(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %s in %s: %v", ErrTableNotFound, id, paths[i], err)
		}
		Classify(table)
		resolveLaw11(table)
		tables[i] = table
	}
	return tables, nil
}

// Classify tags every reaction's energy distribution with the variant it
// carries, so the packer dispatches on a tag instead of repeatedly
// probing which payload fields are non-nil.
func Classify(t *Table) {
	for _, rxn := range t.Reactions {
		ed := rxn.EnergyDist
		if ed == nil {
			continue
		}
		switch {
		case ed.EnergyIn != nil && ed.ADistCDF != nil:
			ed.Kind = KindJointAngleEnergy
		case ed.EnergyIn != nil:
			ed.Kind = KindOutgoingEnergyTabulated
		case ed.T != nil || ed.A != nil:
			ed.Kind = KindParametric
		default:
			// May still carry EnergyAIn/EnergyBIn (law-11 style), which
			// Assemble resamples into EnergyIn right after classification;
			// see resolveLaw11.
			ed.Kind = KindNone
		}
	}
}
