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
	"strconv"

	"golang.org/x/image/math/f64"
)

// Transform is one step of a conversion chain.
//
// The possible transforms are [*LutFile] and [*Matrix].
type Transform interface {
	// TransformType returns the name of the transform type,
	// as used in OpenColorIO configuration files.
	TransformType() string

	isTransform()
}

// Direction selects whether a transform is applied as given or inverted.
type Direction int

// Possible values for Direction.
const (
	Forward Direction = iota
	Inverse
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Inverse:
		return "inverse"
	default:
		return "Direction(" + itoa(int(d)) + ")"
	}
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Interpolation selects how the engine interpolates between LUT entries.
type Interpolation int

// Possible values for Interpolation.
const (
	Linear Interpolation = iota
	Nearest
	Best
)

func (i Interpolation) String() string {
	switch i {
	case Linear:
		return "linear"
	case Nearest:
		return "nearest"
	case Best:
		return "best"
	default:
		return "Interpolation(" + itoa(int(i)) + ")"
	}
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Interpolation) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// LutFile applies a lookup table stored in an external file.
type LutFile struct {
	// Path is the file name, relative to the LUT directory of the
	// configuration.
	Path          string
	Interpolation Interpolation
	Direction     Direction
}

// TransformType implements the [Transform] interface.
func (*LutFile) TransformType() string { return "lutFile" }

func (*LutFile) isTransform() {}

// MarshalJSON implements the [json.Marshaler] interface.
func (t *LutFile) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type          string        `json:"type"`
		Path          string        `json:"path"`
		Interpolation Interpolation `json:"interpolation"`
		Direction     Direction     `json:"direction"`
	}{t.TransformType(), t.Path, t.Interpolation, t.Direction})
}

// Matrix applies a 4x4 matrix to homogeneous RGB values.
type Matrix struct {
	// Matrix holds the matrix in row-major order.
	Matrix    f64.Mat4
	Direction Direction
}

// TransformType implements the [Transform] interface.
func (*Matrix) TransformType() string { return "matrix" }

func (*Matrix) isTransform() {}

// MarshalJSON implements the [json.Marshaler] interface.
func (t *Matrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      string    `json:"type"`
		Matrix    f64.Mat4  `json:"matrix"`
		Direction Direction `json:"direction"`
	}{t.TransformType(), t.Matrix, t.Direction})
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
