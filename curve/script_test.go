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
	"testing"
	"time"
)

const flogScript = `x >= 0.100537775223865
	? pow(10, (x - 0.790453) / 0.344676) / 0.555556 - 0.009468 / 0.555556
	: (x - 0.092864) / 8.735631`

func TestScriptFLog(t *testing.T) {
	fn, err := Script(flogScript)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i <= 64; i++ {
		x := float64(i) / 64
		got := fn(x)
		want := FLogToLinear(x)
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("script(%g) = %g, want %g", x, got, want)
		}
	}
	// Points just below the cut use the linear segment.
	for _, x := range []float64{0.1, 0.1003, 0.100537775223865} {
		got := fn(x)
		want := FLogToLinear(x)
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("script(%g) = %g, want %g", x, got, want)
		}
	}
}

func TestScriptInteger(t *testing.T) {
	fn, err := Script("2*x")
	if err != nil {
		t.Fatal(err)
	}
	if y := fn(3); y != 6 {
		t.Errorf("got %g, want 6", y)
	}
}

func TestScriptErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"syntax", "x +* 2"},
		{"string", "'abc'"},
		{"undefined", "undefined"},
		{"throws", "(function() { throw new Error('boom') })()"},
		{"unknown", "noSuchFunction(x)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Script(c.src)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, &ScriptError{}) {
				t.Errorf("expected ScriptError, got %T", err)
			}
		})
	}
}

func TestScriptTimeout(t *testing.T) {
	start := time.Now()
	_, err := Script("(function() { for (;;) {} })()")
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
	if !errors.Is(err, &ScriptError{}) {
		t.Errorf("expected ScriptError, got %T", err)
	}
	if d := time.Since(start); d > 10*ScriptTimeout {
		t.Errorf("Script took %v", d)
	}

	fn, err := Script("x <= 1 ? x : (function() { for (;;) {} })()")
	if err != nil {
		t.Fatal(err)
	}
	if y := fn(2); !math.IsNaN(y) {
		t.Errorf("fn(2) = %g, want NaN", y)
	}
	if y := fn(0.5); y != 0.5 {
		t.Errorf("fn(0.5) = %g after timeout, want 0.5", y)
	}
}

func TestScriptConcurrent(t *testing.T) {
	fn, err := Script("x*x")
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			x := float64(i)
			if y := fn(x); y != x*x {
				t.Errorf("fn(%g) = %g", x, y)
			}
		}(i)
	}
	wg.Wait()
}
