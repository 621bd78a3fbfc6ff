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

import "fmt"

// ScriptError is returned by [Script] when a curve expression cannot be
// used as a transfer function.
type ScriptError struct {
	Source  string
	Message string
	Err     error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("curve %q: %s", e.Source, e.Message)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}

func (e *ScriptError) Is(target error) bool {
	_, ok := target.(*ScriptError)
	return ok
}

// newScriptError creates a new ScriptError.
func newScriptError(src string, err error, format string, args ...any) *ScriptError {
	return &ScriptError{
		Source:  src,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}
