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

// Package lut samples transfer functions into one-dimensional lookup tables
// and reads and writes them as SPI 1D files.
//
// The SPI 1D format is a small text format understood by OpenColorIO:
//
//	Version 1
//	From 0.000000 1.000000
//	Length 4096
//	Components 1
//	{
//	        -0.007296
//	        ...
//	}
package lut
