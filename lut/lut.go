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

package lut

import "math"

// LUT1D is a one-dimensional lookup table.
//
// The input domain [From[0], From[1]] is divided into Len()-1 equal
// intervals.  For each grid point, Samples holds Components consecutive
// output values.
type LUT1D struct {
	From       [2]float64
	Components int
	Samples    []float32
}

// New1D samples fn over the unit interval at the given resolution.
// The result has a single component, which the consuming engine applies
// to every color channel.
//
// New1D panics if resolution < 2.
func New1D(fn func(float64) float64, resolution int) *LUT1D {
	return &LUT1D{
		From:       [2]float64{0, 1},
		Components: 1,
		Samples:    Sample[float32](fn, resolution),
	}
}

// Len returns the number of grid points in the table.
func (l *LUT1D) Len() int {
	if l.Components <= 0 {
		return 0
	}
	return len(l.Samples) / l.Components
}

// Apply looks up x in the first component of the table, using linear
// interpolation between grid points.  Inputs outside the domain are
// clamped to the domain.
func (l *LUT1D) Apply(x float64) float64 {
	n := l.Len()
	if n == 0 {
		return 0
	}
	if n == 1 {
		return float64(l.Samples[0])
	}

	x = clip(x, l.From[0], l.From[1])
	idx := interpolate(x, l.From[0], l.From[1], 0, float64(n-1))
	i0 := int(math.Floor(idx))
	if i0 >= n-1 {
		i0 = n - 2
	}
	frac := idx - float64(i0)

	c := l.Components
	y0 := float64(l.Samples[i0*c])
	y1 := float64(l.Samples[(i0+1)*c])
	return y0 + frac*(y1-y0)
}

// clip clips a value to the given range [min, max].
func clip(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// interpolate performs linear interpolation.
func interpolate(x, xMin, xMax, yMin, yMax float64) float64 {
	if xMax <= xMin {
		return yMin
	}
	return yMin + (x-xMin)*(yMax-yMin)/(xMax-xMin)
}
