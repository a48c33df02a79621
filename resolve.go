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
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// datapathDirective matches a "datapath=<path>" directive on the first
// line of an xsdir file, case-insensitively, mirroring the original
// Python's re.match('(datapath=)*(/[a-zA-Z0-9/_.+-]+)', firstline, re.I).
var datapathDirective = regexp.MustCompile(`(?i)^\s*(?:datapath\s*=\s*)?(/[a-zA-Z0-9/_.+\-]+)`)

// ResolveLibraryPath maps a nuclide identifier to the filesystem path of
// the ACE library file that contains it, per §4.1. D may be a directory
// containing an xsdir file, or the path to an xsdir file itself.
func ResolveLibraryPath(nuclideID, datapath string) (string, error) {
	d := datapath
	xsdirPath := filepath.Join(d, "xsdir")
	selfIsXsdir := strings.Contains(filepath.Base(d), "xsdir")
	if selfIsXsdir {
		xsdirPath = d
	}

	f, err := os.Open(xsdirPath)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrXsdirNotFound, xsdirPath, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	var body strings.Builder
	for scanner.Scan() {
		line := scanner.Text()
		if lineNum == 0 && selfIsXsdir {
			if m := datapathDirective.FindStringSubmatch(line); m != nil {
				d = m[1]
			} else {
				d = ""
			}
			lineNum++
			continue
		}
		body.WriteString(line)
		body.WriteByte('\n')
		lineNum++
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("%w: reading %s: %v", ErrXsdirNotFound, xsdirPath, err)
	}

	pattern := regexp.MustCompile(regexp.QuoteMeta(nuclideID) + ` +[0-9. a-z]+ ([a-zA-Z0-9/_.+\-]+)`)
	m := pattern.FindStringSubmatch(body.String())
	if m == nil {
		return "", fmt.Errorf("%w: %s", ErrNuclideNotFound, nuclideID)
	}
	rel := m[1]
	if d == "" {
		return rel, nil
	}
	return filepath.Join(d, rel), nil
}
