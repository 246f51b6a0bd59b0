// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"slices"
	"strings"
	"testing"
)

func TestCompareHeights(t *testing.T) {
	steps := 0
	rows := compareHeights([]int{1, 100, 2000}, 9, func() { steps++ })

	if len(rows) != 9 || steps != 9 {
		t.Fatalf("got %d rows and %d steps; want 9 and 9", len(rows), steps)
	}
	for _, r := range rows {
		if float64(r.AVLHeight) > r.Bound {
			t.Errorf("%s/%d: avl height %d above bound %.2f", r.Workload, r.Size, r.AVLHeight, r.Bound)
		}
		if r.BSTHeight < r.AVLHeight {
			t.Errorf("%s/%d: bst height %d below avl height %d", r.Workload, r.Size, r.BSTHeight, r.AVLHeight)
		}
		if r.Workload != "random" && r.BSTHeight != r.Size {
			t.Errorf("%s/%d: bst height %d; want a list of %d", r.Workload, r.Size, r.BSTHeight, r.Size)
		}
	}
}

func TestRenderComparison(t *testing.T) {
	out := renderComparison([]heightComparison{{Workload: "sequential", Size: 7, AVLHeight: 3, BSTHeight: 7, Rotations: 4, Bound: 4.24}})
	for _, want := range []string{"workload", "sequential", "4.2"} {
		if !strings.Contains(out, want) {
			t.Errorf("renderComparison() missing %q:\n%s", want, out)
		}
	}
}

func TestClampSizes(t *testing.T) {
	got := clampSizes([]int{0, 10, maxBSTSize, maxBSTSize + 1, -3})
	if !slices.Equal(got, []int{10, maxBSTSize}) {
		t.Errorf("clampSizes() = %v", got)
	}
}

func TestRunBench(t *testing.T) {
	steps := 0
	results := runBench([]int{50, 500}, 3, func() { steps++ })
	if len(results) != 6 || steps != 18 {
		t.Fatalf("got %d results and %d steps; want 6 and 18", len(results), steps)
	}
	for _, r := range results {
		if r.Height == 0 || float64(r.Height) > avlHeightBound(r.Size) {
			t.Errorf("%s/%d: height %d", r.Workload, r.Size, r.Height)
		}
		if r.Workload == "sequential" && r.Rotations == 0 {
			t.Errorf("sequential/%d recorded no rotations", r.Size)
		}
	}
	if out := renderBench(results); !strings.Contains(out, "insert/op") {
		t.Errorf("renderBench() missing header:\n%s", out)
	}
}

func TestRunBenchSkipsNonPositiveSizes(t *testing.T) {
	steps := 0
	results := runBench([]int{-5, 0, 20}, 3, func() { steps++ })
	if len(results) != 3 || steps != 9 {
		t.Fatalf("got %d results and %d steps; want 3 and 9", len(results), steps)
	}
	for _, r := range results {
		if r.Size != 20 {
			t.Errorf("%s: size %d; want 20", r.Workload, r.Size)
		}
	}

	if got := positiveSizes([]int{-5, 0}); len(got) != 0 {
		t.Errorf("positiveSizes(-5, 0) = %v; want empty", got)
	}
	if got := positiveSizes([]int{3, -1, 7}); !slices.Equal(got, []int{3, 7}) {
		t.Errorf("positiveSizes(3, -1, 7) = %v; want [3 7]", got)
	}
}

func TestPerOp(t *testing.T) {
	if perOp(0, 0) != "-" {
		t.Error("perOp with zero keys should be -")
	}
	if got := perOp(1000, 10); got != "100ns" {
		t.Errorf("perOp(1000, 10) = %q", got)
	}
}
