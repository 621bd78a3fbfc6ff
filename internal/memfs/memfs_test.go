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

package memfs

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/postwork-io/postwork-OpenColorIO-Configs/lut"
)

func TestWriteRead(t *testing.T) {
	fs := New()
	l := &lut.LUT1D{From: [2]float64{0, 1}, Components: 1, Samples: []float32{0, 0.5, 1}}
	if err := fs.WriteLUT1D("b/x.spi1d", l); err != nil {
		t.Fatal(err)
	}
	if err := fs.WriteLUT1D("a/y.spi1d", l); err != nil {
		t.Fatal(err)
	}

	if d := cmp.Diff([]string{"a/y.spi1d", "b/x.spi1d"}, fs.Names()); d != "" {
		t.Errorf("unexpected names (-want +got):\n%s", d)
	}
	got, ok, err := fs.Open("b/x.spi1d")
	if err != nil || !ok {
		t.Fatalf("Open: %v %v", ok, err)
	}
	if d := cmp.Diff(l, got); d != "" {
		t.Errorf("unexpected table (-want +got):\n%s", d)
	}
	if _, ok := fs.ReadFile("missing"); ok {
		t.Error("missing file found")
	}
	if fs.Writes() != 2 {
		t.Errorf("got %d writes", fs.Writes())
	}
}

func TestErr(t *testing.T) {
	fs := New()
	fs.Err = errors.New("disk full")
	err := fs.WriteLUT1D("x", &lut.LUT1D{Components: 1, Samples: []float32{0, 1}})
	if err != fs.Err {
		t.Errorf("got %v", err)
	}
	if len(fs.Names()) != 0 {
		t.Error("failed write stored a file")
	}
}
