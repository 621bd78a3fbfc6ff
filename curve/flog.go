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

import "math"

// LogParams holds the coefficients of a two-segment log encoding.
//
// On the linear side the curve switches from the straight segment to the
// log segment at Cut1; on the encoded side the same point is at Cut2.
//
// Encoding (linear y to code value x):
//
//	x = C*log10(A*y + B) + D   for y >= Cut1
//	x = E*y + F                otherwise
type LogParams struct {
	A, B, C, D, E, F float64
	Cut1, Cut2       float64
}

// FLogName is the name of the Fujifilm F-Log transfer function.
const FLogName = "F-Log"

// FLog contains the coefficients of Fujifilm F-Log.
var FLog = LogParams{
	A:    0.555556,
	B:    0.009468,
	C:    0.344676,
	D:    0.790453,
	E:    8.735631,
	F:    0.092864,
	Cut1: 0.00089,
	Cut2: 0.100537775223865,
}

// ToLinear converts a code value to scene-linear light.
func (p LogParams) ToLinear(x float64) float64 {
	if x >= p.Cut2 {
		return math.Pow(10, (x-p.D)/p.C)/p.A - p.B/p.A
	}
	return (x - p.F) / p.E
}

// FromLinear converts scene-linear light to a code value.
// This is the inverse of [LogParams.ToLinear].
func (p LogParams) FromLinear(y float64) float64 {
	if y >= p.Cut1 {
		return p.C*math.Log10(p.A*y+p.B) + p.D
	}
	return p.E*y + p.F
}

// FLogToLinear decodes an F-Log code value to scene-linear light.
func FLogToLinear(x float64) float64 {
	return FLog.ToLinear(x)
}
