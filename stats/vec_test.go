// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "testing"

func TestLinspace(t *testing.T) {
	check := func(lo, hi float64, num int, want ...float64) {
		t.Helper()
		got := Linspace(lo, hi, num)
		if len(got) != len(want) {
			t.Errorf("Linspace(%v, %v, %d): want %v, got %v", lo, hi, num, want, got)
			return
		}
		for i := range want {
			if !aeq(want[i], got[i]) {
				t.Errorf("Linspace(%v, %v, %d): want %v, got %v", lo, hi, num, want, got)
				return
			}
		}
	}
	check(18, 22, 5, 18, 19, 20, 21, 22)
	check(1, 7, 7, 1, 2, 3, 4, 5, 6, 7)
	check(0, 1, 3, 0, 0.5, 1)
	check(58, 58, 1, 58)
	check(58, 58, 3, 58, 58, 58)
}

type planeDist struct{}

func (planeDist) PDF(x, y float64) float64 {
	return 10*x + y
}

func (planeDist) Bounds() (low, high [2]float64) {
	return
}

func TestGrid(t *testing.T) {
	g := Grid(planeDist{}, []float64{1, 2, 3}, []float64{4, 5})
	r, c := g.Dims()
	if r != 3 || c != 2 {
		t.Fatalf("want 3×2 grid, got %d×%d", r, c)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if want := float64(10*(i+1) + 4 + j); g.At(i, j) != want {
				t.Errorf("grid[%d][%d]: want %v, got %v", i, j, want, g.At(i, j))
			}
		}
	}
}
