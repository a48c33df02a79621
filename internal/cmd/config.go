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
	"bufio"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/BurntSushi/toml"
)

// ConfigData holds the contents of an xsprep TOML configuration file.
type ConfigData struct {
	// Datapath is the directory (or xsdir file) used to resolve nuclide
	// identifiers to library paths.
	Datapath string

	// Nuclides is the ordered list of nuclide identifiers to prepare.
	Nuclides []string

	// RetainReactions, if non-empty, is a govaluate expression that the
	// inspect command evaluates against each catalog reaction; only
	// reactions for which it evaluates true are printed. It does not
	// change which reactions the catalog retains.
	RetainReactions string

	// IsotropicTol overrides the B2 isotropy-shortcut tolerance (§6
	// default 1e-5) when non-zero.
	IsotropicTol float64
}

// ReadConfigFile reads and parses a TOML configuration file.
func ReadConfigFile(filename string) (*ConfigData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("the configuration file you have specified, %v, does not "+
			"appear to exist. Please check the file name and location and try again", filename)
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	bytes, err := ioutil.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("problem reading configuration file: %v", err)
	}

	config := new(ConfigData)
	if _, err := toml.Decode(string(bytes), config); err != nil {
		return nil, fmt.Errorf("there has been an error parsing the configuration file: %v", err)
	}
	config.Datapath = os.ExpandEnv(config.Datapath)
	return config, nil
}
