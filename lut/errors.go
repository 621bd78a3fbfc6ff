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

import "fmt"

// FormatError is returned when an SPI 1D file cannot be parsed.
type FormatError struct {
	Line    int
	Message string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("spi1d: line %d: %s", e.Line, e.Message)
	}
	return "spi1d: " + e.Message
}

func (e *FormatError) Is(target error) bool {
	_, ok := target.(*FormatError)
	return ok
}

func newFormatError(line int, format string, args ...any) *FormatError {
	return &FormatError{
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	}
}
