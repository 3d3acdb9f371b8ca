// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// testFunc2 checks f at each point of want.
func testFunc2(t *testing.T, name string, f func(x, y float64) float64, want map[[2]float64]float64) {
	t.Helper()
	for pt, w := range want {
		if g := f(pt[0], pt[1]); !aeq(w, g) {
			t.Errorf("%s(%v, %v): want %v, got %v", name, pt[0], pt[1], w, g)
		}
	}
}
