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

// Package curve implements the transfer functions which map encoded camera
// values to scene-linear light.
//
// A transfer function is represented by a [Func].  Functions are looked up
// by name in a [Registry]; the [Default] registry knows about all curves
// built into this module:
//
//   - "F-Log": Fujifilm F-Log, see [FLog]
//
// Additional curves can be registered at run time, either as Go functions
// or as JavaScript expressions compiled by [Script].
package curve
