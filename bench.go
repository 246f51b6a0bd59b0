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
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/cybrota/arbor/avl"
)

type benchResult struct {
	Workload  string
	Size      int
	Insert    time.Duration
	Search    time.Duration
	Delete    time.Duration
	Rotations int
	Height    int
}

// positiveSizes drops sizes no workload can be built for.
func positiveSizes(sizes []int) []int {
	var out []int
	for _, s := range sizes {
		if s > 0 {
			out = append(out, s)
		}
	}
	return out
}

// runBench times insert, search and delete over every workload. onStep runs
// once per finished phase (three per workload) and may be nil. Sizes below
// one are skipped.
func runBench(sizes []int, seed uint64, onStep func()) []benchResult {
	step := func() {
		if onStep != nil {
			onStep()
		}
	}

	var results []benchResult
	for _, n := range positiveSizes(sizes) {
		for _, w := range workloadsFor(n, seed) {
			res := benchResult{Workload: w.Name, Size: n}
			tree := avl.New(avl.WithRotationHook(func(avl.Rotation[int]) { res.Rotations++ }))

			start := time.Now()
			for _, k := range w.Keys {
				tree.Insert(k)
			}
			res.Insert = time.Since(start)
			res.Height = tree.Height()
			step()

			start = time.Now()
			for _, k := range w.Keys {
				tree.Search(k)
			}
			res.Search = time.Since(start)
			step()

			start = time.Now()
			for _, k := range w.Keys {
				tree.Delete(k)
			}
			res.Delete = time.Since(start)
			step()

			results = append(results, res)
		}
	}
	return results
}

func perOp(d time.Duration, n int) string {
	if n == 0 {
		return "-"
	}
	return (d / time.Duration(n)).String()
}

func renderBench(results []benchResult) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("workload", "keys", "insert/op", "search/op", "delete/op", "rotations", "height")
	for _, r := range results {
		t.Row(r.Workload, strconv.Itoa(r.Size), perOp(r.Insert, r.Size), perOp(r.Search, r.Size),
			perOp(r.Delete, r.Size), strconv.Itoa(r.Rotations), strconv.Itoa(r.Height))
	}
	return t.String()
}
