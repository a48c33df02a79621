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

package cmd

import (
	"errors"

	"github.com/makeclean/warp"
)

// aceLoader is the registered ACE parser implementation. The core package
// never parses ACE files itself (that is an external collaborator's job);
// a concrete parser registers itself here, analogous to how database/sql
// drivers register themselves with sql.Register, so that xsprep can be
// linked against whichever parser the deployment provides via a blank
// import of its registering package.
var aceLoader warp.LibraryOpener

// RegisterACELoader installs the ACE parser implementation that the
// prepare and inspect commands use to open library files. Called from the
// init function of a parser package, imported blank by the xsprep binary
// that needs it.
func RegisterACELoader(opener warp.LibraryOpener) {
	aceLoader = opener
}

var errNoACELoader = errors.New("xsprep: no ACE parser registered; link one in with a blank import")

// prepare runs warp.Prepare for the configured datapath and nuclide list,
// applying the configured isotropic tolerance override, if any.
func prepare(cfg *ConfigData, opener warp.LibraryOpener) (*warp.Prepared, error) {
	prepared, err := warp.Prepare(cfg.Datapath, cfg.Nuclides, opener)
	if err != nil {
		return nil, err
	}
	if cfg.IsotropicTol != 0 {
		prepared.Packer.IsotropicTol = cfg.IsotropicTol
	}
	return prepared, nil
}
