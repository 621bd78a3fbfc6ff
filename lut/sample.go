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

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sample evaluates fn at n equally spaced points covering the closed unit
// interval.  Sample i is taken at i/(n-1).
//
// Sample panics if n < 2.
func Sample[T constraints.Float](fn func(float64) float64, n int) []T {
	if n < 2 {
		panic(fmt.Sprintf("lut: invalid resolution %d", n))
	}
	res := make([]T, n)
	for i := range res {
		res[i] = T(fn(float64(i) / float64(n-1)))
	}
	return res
}
