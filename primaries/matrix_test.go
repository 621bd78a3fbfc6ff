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

package primaries

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/image/math/f64"
)

func TestMat44FromMat33(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 100 {
		var m f64.Mat3
		for i := range m {
			m[i] = rng.NormFloat64()
		}
		M := Mat44FromMat33(m)
		for r := range 3 {
			for c := range 3 {
				if M[4*r+c] != m[3*r+c] {
					t.Fatalf("M[%d][%d] = %g, want %g", r, c, M[4*r+c], m[3*r+c])
				}
			}
			if M[4*r+3] != 0 {
				t.Errorf("M[%d][3] = %g, want 0", r, M[4*r+3])
			}
		}
		if lastRow := [4]float64(M[12:]); lastRow != [4]float64{0, 0, 0, 1} {
			t.Errorf("last row is %v", lastRow)
		}
	}
}

func TestMat44FromMat33Layout(t *testing.T) {
	got := Mat44FromMat33(f64.Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9})
	want := f64.Mat4{
		1, 2, 3, 0,
		4, 5, 6, 0,
		7, 8, 9, 0,
		0, 0, 0, 1,
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected matrix (-want +got):\n%s", d)
	}
}

func TestFGamutWhite(t *testing.T) {
	// The matrix includes the white point adaptation, so neutral stays neutral.
	white := Apply(FGamutToAP0, f64.Vec3{1, 1, 1})
	want := f64.Vec3{1, 1, 1}
	if d := cmp.Diff(want, white, cmpopts.EquateApprox(0, 1e-6)); d != "" {
		t.Errorf("white is not preserved (-want +got):\n%s", d)
	}
}

func TestApply(t *testing.T) {
	v := f64.Vec3{0.25, -2, 8}
	if got := Apply(f64.Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}, v); got != v {
		t.Errorf("identity changed %v to %v", v, got)
	}
	got := Apply(f64.Mat3{0, 1, 0, 0, 0, 1, 1, 0, 0}, v)
	if got != (f64.Vec3{-2, 8, 0.25}) {
		t.Errorf("permutation gives %v", got)
	}
}

func TestRegistry(t *testing.T) {
	m, ok := Default.Lookup("F-Gamut")
	if !ok {
		t.Fatal("F-Gamut not registered")
	}
	if m != FGamutToAP0 {
		t.Error("wrong matrix registered")
	}
	if _, ok := Default.Lookup("FGamut"); ok {
		t.Error("unexpected match for misspelled name")
	}

	r := NewRegistry()
	r.Register("B", f64.Mat3{})
	r.Register("A", f64.Mat3{})
	if d := cmp.Diff([]string{"A", "B"}, r.Names()); d != "" {
		t.Errorf("unexpected names (-want +got):\n%s", d)
	}
	for _, x := range FGamutToAP0 {
		if math.IsNaN(x) {
			t.Fatal("NaN in matrix")
		}
	}
}
