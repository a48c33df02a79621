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

// Package cmd contains commands and subcommands for the xsprep
// command-line interface.
package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

var (
	configFile string

	// Config holds the parsed configuration for the current run.
	Config *ConfigData
)

// Root is the main command.
var Root = &cobra.Command{
	Use:   "xsprep",
	Short: "Prepares neutron cross-section and distribution data for a transport engine.",
	Long: `xsprep resolves a nuclide list against an ACE data library, builds a union
energy grid, resamples cross sections onto it, and packs angular and
outgoing-energy distribution records for a downstream transport engine.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		Config, err = ReadConfigFile(configFile)
		return err
	},
}

func init() {
	Root.AddCommand(versionCmd)
	Root.AddCommand(prepareCmd)
	Root.AddCommand(inspectCmd)

	Root.PersistentFlags().StringVar(&configFile, "config", "./xsprep.toml", "configuration file location")
}

// version is set at build time via -ldflags; it is "dev" otherwise.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		log.Printf("xsprep version %s\n", version)
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
}
