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

// Command xsprep is a command-line interface for the warp cross-section
// and distribution preparation pipeline.
package main

import (
	"fmt"
	"os"

	"github.com/makeclean/warp/internal/cmd"
)

func main() {
	if err := cmd.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
