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

// All returns the keys in ascending order. The sequence is computed fresh on
// every range over it and must not be used while the tree is being modified.
func (t *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		inOrder(t.root, yield)
	}
}

// Backward returns the keys in descending order.
func (t *Tree[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		reverseOrder(t.root, yield)
	}
}

// Keys returns a new slice with the keys in ascending order.
func (t *Tree[K]) Keys() []K {
	keys := make([]K, 0, t.size)
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}

// PreOrder returns the keys root first, then the left and right subtrees.
func (t *Tree[K]) PreOrder() []K {
	keys := make([]K, 0, t.size)
	preOrder(t.root, &keys)
	return keys
}

// PostOrder returns the keys of both subtrees before their root.
func (t *Tree[K]) PostOrder() []K {
	keys := make([]K, 0, t.size)
	postOrder(t.root, &keys)
	return keys
}

// LevelOrder returns the keys level by level, left to right.
func (t *Tree[K]) LevelOrder() []K {
	keys := make([]K, 0, t.size)
	if t.root == nil {
		return keys
	}
	queue := []*node[K]{t.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		keys = append(keys, n.key)
		if n.left != nil {
			queue = append(queue, n.left)
		}
		if n.right != nil {
			queue = append(queue, n.right)
		}
	}
	return keys
}

func inOrder[K cmp.Ordered](n *node[K], yield func(K) bool) bool {
	if n == nil {
		return true
	}
	return inOrder(n.left, yield) && yield(n.key) && inOrder(n.right, yield)
}

func reverseOrder[K cmp.Ordered](n *node[K], yield func(K) bool) bool {
	if n == nil {
		return true
	}
	return reverseOrder(n.right, yield) && yield(n.key) && reverseOrder(n.left, yield)
}

func preOrder[K cmp.Ordered](n *node[K], result *[]K) {
	if n == nil {
		return
	}
	*result = append(*result, n.key)
	preOrder(n.left, result)
	preOrder(n.right, result)
}

func postOrder[K cmp.Ordered](n *node[K], result *[]K) {
	if n == nil {
		return
	}
	postOrder(n.left, result)
	postOrder(n.right, result)
	*result = append(*result, n.key)
}
