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

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/dop251/goja"
)

// scriptPrelude makes the common Math functions available without the
// "Math." prefix.
const scriptPrelude = `var pow = Math.pow, log = Math.log, log10 = Math.log10,
	log2 = Math.log2, exp = Math.exp, sqrt = Math.sqrt, abs = Math.abs,
	min = Math.min, max = Math.max;`

// ScriptTimeout limits the time a single evaluation of a curve
// expression may take.
var ScriptTimeout = time.Second

// ErrTimeout is wrapped by the [ScriptError] for an expression which
// did not finish within [ScriptTimeout].
var ErrTimeout = errors.New("curve expression timed out")

// Script compiles a JavaScript expression in the variable x into a
// transfer function.  For example, the expression
//
//	x < 0.100537775223865 ? (x - 0.092864) / 8.735631 : pow(10, (x - 0.790453) / 0.344676) / 0.555556 - 0.009468 / 0.555556
//
// gives the same curve as [FLogToLinear].
//
// The expression is evaluated once at x=0 and x=1 to check that it
// produces numbers.  Each evaluation is stopped after [ScriptTimeout].
// If evaluation later fails, the returned function returns NaN.
// The returned function is safe for concurrent use.
func Script(src string) (Func, error) {
	vm := goja.New()
	if _, err := vm.RunString(scriptPrelude); err != nil {
		return nil, newScriptError(src, err, "cannot initialize interpreter")
	}

	v, err := vm.RunString("(function(x) { return (" + src + "\n); })")
	if err != nil {
		return nil, newScriptError(src, err, "syntax error")
	}
	call, ok := goja.AssertFunction(v)
	if !ok {
		return nil, newScriptError(src, nil, "not a function")
	}

	eval := func(x float64) (float64, error) {
		fired := make(chan struct{})
		timer := time.AfterFunc(ScriptTimeout, func() {
			vm.Interrupt(ErrTimeout)
			close(fired)
		})
		res, err := call(goja.Undefined(), vm.ToValue(x))
		if !timer.Stop() {
			<-fired
		}
		vm.ClearInterrupt()

		var interrupted *goja.InterruptedError
		if errors.As(err, &interrupted) {
			return 0, newScriptError(src, ErrTimeout, "evaluation at x=%g took longer than %v", x, ScriptTimeout)
		} else if err != nil {
			return 0, err
		}
		switch y := res.Export().(type) {
		case float64:
			return y, nil
		case int64:
			return float64(y), nil
		default:
			return 0, newScriptError(src, nil, "expected a number, got %s", res.String())
		}
	}
	for _, x := range []float64{0, 1} {
		if _, err := eval(x); err != nil {
			if se, ok := err.(*ScriptError); ok {
				return nil, se
			}
			return nil, newScriptError(src, err, "evaluation failed at x=%g", x)
		}
	}

	var mu sync.Mutex
	fn := func(x float64) float64 {
		mu.Lock()
		defer mu.Unlock()
		y, err := eval(x)
		if err != nil {
			return math.NaN()
		}
		return y
	}
	return fn, nil
}
