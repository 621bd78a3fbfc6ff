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

// Package primaries builds the matrices which convert linear camera RGB
// into the reference primaries.
package primaries

import "golang.org/x/image/math/f64"

// Mat44FromMat33 embeds a 3x3 matrix into a 4x4 homogeneous matrix.
//
// The 3x3 matrix is copied into the top-left corner.  The last row is
// [0 0 0 1] and the first three entries of the last column are 0.
// Both matrices are in row-major order.
func Mat44FromMat33(m f64.Mat3) f64.Mat4 {
	return f64.Mat4{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
		0, 0, 0, 1,
	}
}

// Apply applies the matrix to a column vector.
func Apply(M f64.Mat3, v f64.Vec3) f64.Vec3 {
	return f64.Vec3{
		M[0]*v[0] + M[1]*v[1] + M[2]*v[2],
		M[3]*v[0] + M[4]*v[1] + M[5]*v[2],
		M[6]*v[0] + M[7]*v[1] + M[8]*v[2],
	}
}
