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

// Package camera generates the input color spaces for digital cinema
// cameras.
//
// Each camera vendor is described by a [Vendor], which knows the vendor's
// transfer functions and encoding gamuts.  [Vendor.Create] combines a
// transfer function and a gamut into a [colorspace.ColorSpace] which
// converts camera-native values to ACES 2065-1.  The transfer function is
// sampled into a 1D LUT file, the gamut conversion becomes a matrix.
package camera

import (
	"path/filepath"
	"strings"

	"github.com/postwork-io/postwork-OpenColorIO-Configs/colorspace"
	"github.com/postwork-io/postwork-OpenColorIO-Configs/curve"
	"github.com/postwork-io/postwork-OpenColorIO-Configs/lut"
	"github.com/postwork-io/postwork-OpenColorIO-Configs/primaries"
)

// Vendor describes the color encodings of one camera manufacturer.
type Vendor struct {
	// Name is used in ACES transform IDs, for example "Fujifilm".
	Name string

	// Family is the color space family, for example "Input/Fujifilm".
	Family string

	// Curves maps transfer function names to decoding functions.
	Curves *curve.Registry

	// Gamuts maps gamut names to matrices into the ACES primaries.
	Gamuts *primaries.Registry

	// Catalog lists the color spaces generated by [Vendor.CreateCatalog].
	Catalog []Entry
}

// Entry is one color space in a vendor catalog.
type Entry struct {
	Gamut    string
	Transfer string
	Aliases  []string
}

// Request describes a color space to generate.
//
// Either Gamut or Transfer may be empty.  Names which are not known to the
// vendor are ignored: the corresponding transform is left out of the
// conversion chain.
type Request struct {
	Gamut    string
	Transfer string

	// LUTDir is the directory where LUT files are written.
	LUTDir string

	// Resolution is the number of entries of generated 1D LUTs.
	// This must be at least 2 if a LUT is generated.
	Resolution int

	// Aliases are stored in the color space unchanged.
	Aliases []string
}

// Create generates the color space for the given request.
//
// If the request has a known transfer function, the function is sampled
// and written using w.  If w is nil, the LUT is written to the file system.
// Errors from w are returned unchanged.
//
// Create panics if a LUT is needed and req.Resolution is less than 2.
func (v *Vendor) Create(req *Request, w lut.Writer) (*colorspace.ColorSpace, error) {
	if w == nil {
		w = lut.FileWriter{}
	}

	name := SpaceName(req.Gamut, req.Transfer)
	cs := &colorspace.ColorSpace{
		Name:          name,
		Description:   name,
		Aliases:       req.Aliases,
		Family:        v.Family,
		EqualityGroup: "",
		IsData:        false,
		ToReference:   []colorspace.Transform{},
		FromReference: []colorspace.Transform{},
	}

	if req.Gamut != "" && req.Transfer != "" {
		cs.TransformID = v.TransformID(req.Gamut, req.Transfer)
	}

	// A linear space needs allocation variables.
	if req.Transfer == "" {
		cs.Allocation = colorspace.UniformUnit()
	}

	if fn, ok := v.Curves.Lookup(req.Transfer); ok && req.Transfer != "" {
		table := lut.New1D(fn, req.Resolution)
		fname := LUTName(req.Transfer)
		err := w.WriteLUT1D(filepath.Join(req.LUTDir, fname), table)
		if err != nil {
			return nil, err
		}
		cs.ToReference = append(cs.ToReference, &colorspace.LutFile{
			Path:          fname,
			Interpolation: colorspace.Linear,
			Direction:     colorspace.Forward,
		})
	}

	if m, ok := v.Gamuts.Lookup(req.Gamut); ok && req.Gamut != "" {
		cs.ToReference = append(cs.ToReference, &colorspace.Matrix{
			Matrix:    primaries.Mat44FromMat33(m),
			Direction: colorspace.Forward,
		})
	}

	return cs, nil
}

// CreateCatalog generates all color spaces listed in the vendor catalog,
// in catalog order.
func (v *Vendor) CreateCatalog(lutDir string, resolution int, w lut.Writer) ([]*colorspace.ColorSpace, error) {
	res := make([]*colorspace.ColorSpace, 0, len(v.Catalog))
	for _, e := range v.Catalog {
		cs, err := v.Create(&Request{
			Gamut:      e.Gamut,
			Transfer:   e.Transfer,
			LUTDir:     lutDir,
			Resolution: resolution,
			Aliases:    e.Aliases,
		}, w)
		if err != nil {
			return nil, err
		}
		res = append(res, cs)
	}
	return res, nil
}

// Known reports whether the vendor knows the given gamut and transfer
// function.  Empty names count as known.
func (v *Vendor) Known(gamut, transfer string) (gamutOK, transferOK bool) {
	gamutOK = gamut == ""
	if !gamutOK {
		_, gamutOK = v.Gamuts.Lookup(gamut)
	}
	transferOK = transfer == ""
	if !transferOK {
		_, transferOK = v.Curves.Lookup(transfer)
	}
	return gamutOK, transferOK
}

// SpaceName returns the name of the color space combining the given gamut
// and transfer function.
func SpaceName(gamut, transfer string) string {
	switch {
	case gamut == "":
		return "Curve - " + transfer
	case transfer == "":
		return "Linear - " + gamut
	default:
		return transfer + " - " + gamut
	}
}

// TransformID returns the ACES input transform ID for the given gamut and
// transfer function, for example "IDT.Fujifilm.FLog_FGamut_10i.a1.v1".
func (v *Vendor) TransformID(gamut, transfer string) string {
	t := strings.ReplaceAll(transfer, "-", "")
	g := strings.ReplaceAll(strings.ReplaceAll(gamut, "-", ""), " ", "_")
	return "IDT." + v.Name + "." + t + "_" + g + "_10i.a1.v1"
}

// LUTName returns the file name of the LUT which linearizes the given
// transfer function.
func LUTName(transfer string) string {
	return transfer + "_to_linear.spi1d"
}
