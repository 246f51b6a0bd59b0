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

package avl_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/cybrota/arbor/avl"
)

var benchSizes = []int{1_000, 100_000}

func BenchmarkInsert(b *testing.B) {
	for _, n := range benchSizes {
		keys := rand.New(rand.NewPCG(1, 2)).Perm(n)
		b.Run(fmt.Sprintf("random/%d", n), func(b *testing.B) {
			for b.Loop() {
				tree := avl.New[int]()
				for _, k := range keys {
					tree.Insert(k)
				}
			}
		})
		b.Run(fmt.Sprintf("sequential/%d", n), func(b *testing.B) {
			for b.Loop() {
				tree := avl.New[int]()
				for k := range n {
					tree.Insert(k)
				}
			}
		})
	}
}

func BenchmarkSearch(b *testing.B) {
	for _, n := range benchSizes {
		tree := avl.New[int]()
		for k := range n {
			tree.Insert(k)
		}
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			i := 0
			for b.Loop() {
				tree.Search(i % (2 * n))
				i++
			}
		})
	}
}

func BenchmarkDelete(b *testing.B) {
	for _, n := range benchSizes {
		keys := rand.New(rand.NewPCG(3, 4)).Perm(n)
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			for b.Loop() {
				b.StopTimer()
				tree := avl.New[int]()
				for _, k := range keys {
					tree.Insert(k)
				}
				b.StartTimer()
				for _, k := range keys {
					tree.Delete(k)
				}
			}
		})
	}
}
