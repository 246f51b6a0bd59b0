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
	"encoding/binary"
	"math/rand/v2"

	"github.com/willf/bloom"
)

const (
	// false positive rate of the dedupe filter; a false positive only costs
	// one extra draw
	workloadFalsePositive = 0.01
	// random keys are drawn from [0, n*keySpread)
	keySpread = 8
)

// Workload is a named key sequence fed to the trees.
type Workload struct {
	Name string
	Keys []int
}

func sequentialKeys(n int) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i
	}
	return keys
}

func reverseKeys(n int) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = n - 1 - i
	}
	return keys
}

// randomDistinctKeys returns n distinct keys in random order. A Bloom filter
// has no false negatives, so every key it has not seen is new; keys it
// wrongly reports as seen are simply skipped.
func randomDistinctKeys(n int, seed uint64) []int {
	if n <= 0 {
		return []int{}
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x5bd1e995))
	filter := bloom.NewWithEstimates(uint(n), workloadFalsePositive)

	keys := make([]int, 0, n)
	var buf [8]byte
	for len(keys) < n {
		key := rng.IntN(n * keySpread)
		binary.BigEndian.PutUint64(buf[:], uint64(key))
		if filter.TestAndAdd(buf[:]) {
			continue
		}
		keys = append(keys, key)
	}
	return keys
}

// workloadsFor returns the standard workloads of size n.
func workloadsFor(n int, seed uint64) []Workload {
	return []Workload{
		{Name: "sequential", Keys: sequentialKeys(n)},
		{Name: "reverse", Keys: reverseKeys(n)},
		{Name: "random", Keys: randomDistinctKeys(n, seed)},
	}
}
