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
	"slices"
	"sync"

	"golang.org/x/image/math/f64"
	"golang.org/x/text/unicode/norm"
)

// FGamutName is the name of the Fujifilm F-Gamut encoding gamut.
const FGamutName = "F-Gamut"

// FGamutToAP0 converts linear F-Gamut RGB to ACES 2065-1 (AP0) RGB.
var FGamutToAP0 = f64.Mat3{
	0.678891150633901, 0.1588684223720231, 0.16224042703694286,
	0.04557083089802189, 0.8607127720288463, 0.09371639707888578,
	-0.00048571035183551524, 0.025060195736249565, 0.9754255146150821,
}

// Registry maps gamut names to the matrices which convert linear RGB in
// that gamut to the reference primaries.
//
// Names are compared after Unicode NFC normalization.
// A Registry is safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	mats map[string]f64.Mat3
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{mats: make(map[string]f64.Mat3)}
}

// Register adds a gamut.  An existing entry with the same name is replaced.
func (r *Registry) Register(name string, toReference f64.Mat3) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mats[norm.NFC.String(name)] = toReference
}

// Lookup returns the matrix registered for the given gamut.
func (r *Registry) Lookup(name string) (f64.Mat3, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.mats[norm.NFC.String(name)]
	return m, ok
}

// Names returns the registered gamut names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.mats))
	for name := range r.mats {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Default contains the gamuts built into this module.
var Default = func() *Registry {
	r := NewRegistry()
	r.Register(FGamutName, FGamutToAP0)
	return r
}()
