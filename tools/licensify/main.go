// postwork-OpenColorIO-Configs - camera input color spaces for OpenColorIO
// Copyright (C) 2025  PostWork.io Developers
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Licensify adds the license header to all Go source files below the
// current directory.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const header = `// postwork-OpenColorIO-Configs - camera input color spaces for OpenColorIO
// Copyright (C) 2025  PostWork.io Developers
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

`

var checkOnly = flag.Bool("n", false, "only list the files which need a header")

func main() {
	flag.Parse()

	var missing []string
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != "." && (strings.HasPrefix(d.Name(), "_") || strings.HasPrefix(d.Name(), ".")) {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		switch needsHeader(body) {
		case headerPresent:
			return nil
		case headerUnknown:
			fmt.Println("ATTENTION " + path)
			return nil
		}

		missing = append(missing, path)
		if *checkOnly {
			fmt.Println(path)
			return nil
		}
		fmt.Println("updating " + path)
		return os.WriteFile(path, append([]byte(header), body...), 0o644)
	})
	if err != nil {
		log.Fatal(err)
	}
	if *checkOnly && len(missing) > 0 {
		os.Exit(1)
	}
}

type headerState int

const (
	headerPresent headerState = iota
	headerMissing
	headerUnknown
)

// needsHeader classifies a source file.  Files which start with some other
// comment are reported as unknown, so that they can be fixed by hand.
func needsHeader(body []byte) headerState {
	switch {
	case bytes.HasPrefix(body, []byte(header)):
		return headerPresent
	case bytes.HasPrefix(body, []byte("package ")):
		return headerMissing
	default:
		return headerUnknown
	}
}
