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

package colorspace

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/math/f64"
)

func TestTransformTypes(t *testing.T) {
	chain := []Transform{
		&LutFile{Path: "F-Log_to_linear.spi1d"},
		&Matrix{},
	}
	var types []string
	for _, tr := range chain {
		types = append(types, tr.TransformType())
	}
	if d := cmp.Diff([]string{"lutFile", "matrix"}, types); d != "" {
		t.Errorf("unexpected types (-want +got):\n%s", d)
	}
}

func TestStrings(t *testing.T) {
	cases := []struct {
		got, want string
	}{
		{Forward.String(), "forward"},
		{Inverse.String(), "inverse"},
		{Direction(7).String(), "Direction(7)"},
		{Linear.String(), "linear"},
		{Nearest.String(), "nearest"},
		{Best.String(), "best"},
		{Uniform.String(), "uniform"},
		{AllocationType(3).String(), "AllocationType(3)"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("got %q, want %q", c.got, c.want)
		}
	}
}

func TestJSON(t *testing.T) {
	cs := &ColorSpace{
		Name:        "Linear - F-Gamut",
		Description: "Linear - F-Gamut",
		Aliases:     []string{"lin_fgamut"},
		Family:      "Input/Fujifilm",
		Allocation:  UniformUnit(),
		ToReference: []Transform{
			&LutFile{Path: "x.spi1d", Interpolation: Linear, Direction: Forward},
			&Matrix{Matrix: f64.Mat4{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}, Direction: Inverse},
		},
		FromReference: []Transform{},
	}
	data, err := json.Marshal(cs)
	if err != nil {
		t.Fatal(err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"name":           "Linear - F-Gamut",
		"description":    "Linear - F-Gamut",
		"aliases":        []any{"lin_fgamut"},
		"family":         "Input/Fujifilm",
		"equality_group": "",
		"is_data":        false,
		"allocation": map[string]any{
			"type": "uniform",
			"vars": []any{0.0, 1.0},
		},
		"to_reference": []any{
			map[string]any{
				"type":          "lutFile",
				"path":          "x.spi1d",
				"interpolation": "linear",
				"direction":     "forward",
			},
			map[string]any{
				"type":      "matrix",
				"matrix":    []any{1.0, 0.0, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, 0.0, 0.0, 1.0},
				"direction": "inverse",
			},
		},
		"from_reference": []any{},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected JSON (-want +got):\n%s", d)
	}
}
