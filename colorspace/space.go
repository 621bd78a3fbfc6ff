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

// Package colorspace describes color spaces for a color management engine
// such as OpenColorIO.
//
// A [ColorSpace] does not convert colors itself.  It lists the transforms
// which the engine applies to convert pixel values to and from the
// reference space.
package colorspace

// ColorSpace describes one color space of a configuration.
//
// Values are built by a generator and are not modified afterwards.
type ColorSpace struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Aliases     []string `json:"aliases,omitempty"`

	// Family groups related color spaces, for example "Input/Fujifilm".
	Family        string `json:"family"`
	EqualityGroup string `json:"equality_group"`

	// IsData is set for spaces which hold non-color data.
	IsData bool `json:"is_data"`

	// TransformID is the ACES transform identifier.  The empty string
	// means that the space has no identifier.
	TransformID string `json:"aces_transform_id,omitempty"`

	// Allocation, if non-nil, tells the engine how to distribute precision
	// when it needs to approximate transforms.
	Allocation *Allocation `json:"allocation,omitempty"`

	// ToReference converts from this space to the reference space.
	// The transforms are applied in order.
	ToReference []Transform `json:"to_reference"`

	// FromReference converts from the reference space to this space.
	FromReference []Transform `json:"from_reference"`
}

// AllocationType selects how allocation variables are interpreted.
type AllocationType int

// Uniform allocates values evenly over the range given by the variables.
const Uniform AllocationType = 0

func (t AllocationType) String() string {
	switch t {
	case Uniform:
		return "uniform"
	default:
		return "AllocationType(" + itoa(int(t)) + ")"
	}
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (t AllocationType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Allocation describes the range of values used by a color space.
type Allocation struct {
	Type AllocationType `json:"type"`
	Vars []float64      `json:"vars"`
}

// UniformUnit is the allocation for data which is already scaled linearly
// to the unit interval.
func UniformUnit() *Allocation {
	return &Allocation{Type: Uniform, Vars: []float64{0, 1}}
}
