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
	"fmt"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/cybrota/arbor/avl"
	"github.com/cybrota/arbor/bst"
)

// maxBSTSize caps the plain tree in compare: sorted input makes every BST
// insert walk the whole list.
const maxBSTSize = 20_000

// heightComparison is one row of the AVL vs BST report. Heights count nodes.
type heightComparison struct {
	Workload  string
	Size      int
	AVLHeight int
	BSTHeight int
	Rotations int
	Bound     float64
}

// avlHeightBound is the worst-case node-count height of an AVL tree with n keys.
func avlHeightBound(n int) float64 {
	return 1.4405*math.Log2(float64(n+2)) - 0.3277
}

// compareHeights builds both trees for every workload and size. onStep runs
// once per finished workload and may be nil.
func compareHeights(sizes []int, seed uint64, onStep func()) []heightComparison {
	var rows []heightComparison
	for _, n := range sizes {
		for _, w := range workloadsFor(n, seed) {
			rotations := 0
			at := avl.New(avl.WithRotationHook(func(avl.Rotation[int]) { rotations++ }))
			bt := bst.New[int]()
			for _, k := range w.Keys {
				at.Insert(k)
				bt.Insert(k)
			}
			rows = append(rows, heightComparison{
				Workload:  w.Name,
				Size:      n,
				AVLHeight: at.Height(),
				BSTHeight: bt.Height(),
				Rotations: rotations,
				Bound:     avlHeightBound(n),
			})
			if onStep != nil {
				onStep()
			}
		}
	}
	return rows
}

func renderComparison(rows []heightComparison) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("workload", "keys", "avl height", "bst height", "rotations", "avl bound")
	for _, r := range rows {
		t.Row(r.Workload, strconv.Itoa(r.Size), strconv.Itoa(r.AVLHeight),
			strconv.Itoa(r.BSTHeight), strconv.Itoa(r.Rotations), fmt.Sprintf("%.1f", r.Bound))
	}
	return t.String()
}

// clampSizes drops sizes the plain tree cannot build in reasonable time.
func clampSizes(sizes []int) []int {
	var out []int
	for _, s := range sizes {
		if s > 0 && s <= maxBSTSize {
			out = append(out, s)
		}
	}
	return out
}
