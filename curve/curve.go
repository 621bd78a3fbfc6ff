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

package curve

import (
	"slices"
	"sync"

	"golang.org/x/text/unicode/norm"
)

// Func maps an encoded sample to scene-linear light.
//
// Functions are total on the finite reals.  No clamping is applied, inputs
// outside the unit interval are extrapolated.
type Func func(x float64) float64

// Registry maps transfer function names to their decoding functions.
//
// Names are compared after Unicode NFC normalization.
// A Registry is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]Func
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]Func)}
}

// Register adds a transfer function under the given name.
// An existing entry with the same name is replaced.
func (r *Registry) Register(name string, fn Func) {
	if fn == nil {
		panic("curve: nil function for " + name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[norm.NFC.String(name)] = fn
}

// Lookup returns the transfer function registered under name.
func (r *Registry) Lookup(name string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.funcs[norm.NFC.String(name)]
	return fn, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Clone returns a copy of the registry.
// Later changes to either registry do not affect the other one.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := NewRegistry()
	for name, fn := range r.funcs {
		res.funcs[name] = fn
	}
	return res
}

// Default contains the transfer functions built into this module.
var Default = func() *Registry {
	r := NewRegistry()
	r.Register(FLogName, FLogToLinear)
	return r
}()
