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

package avl

import (
	"cmp"
	"iter"
)

// Predecessor returns the largest key smaller than key. The boolean is false
// when key is not in the tree or is already the smallest key.
func (t *Tree[K]) Predecessor(key K) (K, bool) {
	var (
		zero      K
		candidate *node[K] // deepest ancestor we left by going right
	)
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			candidate = n
			n = n.right
		default:
			if n.left != nil {
				return maxNode(n.left).key, true
			}
			if candidate == nil {
				return zero, false
			}
			return candidate.key, true
		}
	}
	return zero, false
}

// Successor returns the smallest key larger than key. The boolean is false
// when key is not in the tree or is already the largest key.
func (t *Tree[K]) Successor(key K) (K, bool) {
	var (
		zero      K
		candidate *node[K] // deepest ancestor we left by going left
	)
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			candidate = n
			n = n.left
		case key > n.key:
			n = n.right
		default:
			if n.right != nil {
				return minNode(n.right).key, true
			}
			if candidate == nil {
				return zero, false
			}
			return candidate.key, true
		}
	}
	return zero, false
}

// Range returns the keys k with low <= k < high in ascending order. Subtrees
// that cannot hold such keys are skipped.
func (t *Tree[K]) Range(low, high K) iter.Seq[K] {
	return func(yield func(K) bool) {
		rangeSearch(t.root, low, high, yield)
	}
}

// rangeSearch reports false once yield asks to stop.
func rangeSearch[K cmp.Ordered](n *node[K], low, high K, yield func(K) bool) bool {
	if n == nil {
		return true
	}

	// n.key can still be >= low, so the left subtree may hold matches
	if n.key >= low {
		if !rangeSearch(n.left, low, high, yield) {
			return false
		}
	}

	if n.key >= low && n.key < high {
		if !yield(n.key) {
			return false
		}
	}

	if n.key < high {
		return rangeSearch(n.right, low, high, yield)
	}
	return true
}
