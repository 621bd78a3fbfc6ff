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

// Package memfs provides an in-memory store for generated LUT files.
//
// This is used for dry runs and in tests, where generated files must not
// touch the file system.
package memfs

import (
	"bytes"
	"slices"
	"sync"

	"github.com/postwork-io/postwork-OpenColorIO-Configs/lut"
)

// FS is an in-memory file store.
//
// This type implements the [lut.Writer] interface.
// An FS is safe for concurrent use.
type FS struct {
	// Err, if non-nil, is returned by all writes.
	Err error

	mu     sync.Mutex
	files  map[string][]byte
	writes int
}

// New creates a new, empty FS.
func New() *FS {
	return &FS{files: make(map[string][]byte)}
}

// WriteLUT1D stores l in SPI 1D format.
// This implements the [lut.Writer] interface.
func (fs *FS) WriteLUT1D(path string, l *lut.LUT1D) error {
	if fs.Err != nil {
		return fs.Err
	}
	buf := &bytes.Buffer{}
	err := lut.Encode(buf, l)
	if err != nil {
		return err
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.files[path] = buf.Bytes()
	fs.writes++
	return nil
}

// ReadFile returns the contents of the given file.
func (fs *FS) ReadFile(path string) ([]byte, bool) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	data, ok := fs.files[path]
	return data, ok
}

// Open returns the decoded contents of the given file.
func (fs *FS) Open(path string) (*lut.LUT1D, bool, error) {
	data, ok := fs.ReadFile(path)
	if !ok {
		return nil, false, nil
	}
	l, err := lut.Decode(bytes.NewReader(data))
	return l, true, err
}

// Names returns the names of all stored files in sorted order.
func (fs *FS) Names() []string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	names := make([]string, 0, len(fs.files))
	for name := range fs.files {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Writes returns the number of successful writes, including overwrites.
func (fs *FS) Writes() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.writes
}
