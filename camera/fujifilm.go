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

package camera

import (
	"github.com/postwork-io/postwork-OpenColorIO-Configs/curve"
	"github.com/postwork-io/postwork-OpenColorIO-Configs/primaries"
)

// Fujifilm describes the F-Log encoding and F-Gamut primaries used by
// Fujifilm cameras.
var Fujifilm = &Vendor{
	Name:   "Fujifilm",
	Family: "Input/Fujifilm",
	Curves: curve.Default,
	Gamuts: primaries.Default,
	Catalog: []Entry{
		{Gamut: primaries.FGamutName, Transfer: curve.FLogName, Aliases: []string{"flog_fgamut"}},

		// linearization only
		{Gamut: "", Transfer: curve.FLogName, Aliases: []string{"crv_flog"}},
	},
}
