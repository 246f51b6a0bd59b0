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

import "cmp"

// Tree is an AVL tree holding a set of distinct keys.
//
// The zero value is not usable; create trees with New. A Tree is not safe for
// concurrent use.
type Tree[K cmp.Ordered] struct {
	root     *node[K]
	size     int
	onRotate func(Rotation[K])
}

// New returns an empty tree.
func New[K cmp.Ordered](opts ...Option[K]) *Tree[K] {
	t := &Tree[K]{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Insert adds key to the tree. It returns false, leaving the tree untouched,
// when the key is already present.
func (t *Tree[K]) Insert(key K) bool {
	var inserted bool
	t.root = t.insertRecursive(t.root, key, &inserted)
	if inserted {
		t.size++
	}
	return inserted
}

func (t *Tree[K]) insertRecursive(n *node[K], key K, inserted *bool) *node[K] {
	if n == nil {
		*inserted = true
		return newNode(key)
	}

	switch {
	case key < n.key:
		n.left = t.insertRecursive(n.left, key, inserted)
	case key > n.key:
		n.right = t.insertRecursive(n.right, key, inserted)
	default:
		return n
	}

	if !*inserted {
		return n
	}

	n.updateHeight()
	return t.rebalance(n)
}

// Delete removes key from the tree and reports whether it was present.
func (t *Tree[K]) Delete(key K) bool {
	var deleted bool
	t.root = t.deleteRecursive(t.root, key, &deleted)
	if deleted {
		t.size--
	}
	return deleted
}

func (t *Tree[K]) deleteRecursive(n *node[K], key K, deleted *bool) *node[K] {
	if n == nil {
		return nil
	}

	switch {
	case key < n.key:
		n.left = t.deleteRecursive(n.left, key, deleted)
	case key > n.key:
		n.right = t.deleteRecursive(n.right, key, deleted)
	default:
		*deleted = true
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}
		// Two children: take the in-order successor's key, then remove the
		// successor, which has no left child.
		successor := minNode(n.right)
		n.key = successor.key
		var removed bool
		n.right = t.deleteRecursive(n.right, successor.key, &removed)
	}

	if !*deleted {
		return n
	}

	// Every ancestor of a removed node may need a rotation, so keep going
	// all the way back to the root.
	n.updateHeight()
	return t.rebalance(n)
}

// Search reports whether key is in the tree.
func (t *Tree[K]) Search(key K) bool {
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Min returns the smallest key, or ErrEmptyTree.
func (t *Tree[K]) Min() (K, error) {
	if t.root == nil {
		var zero K
		return zero, ErrEmptyTree
	}
	return minNode(t.root).key, nil
}

// Max returns the largest key, or ErrEmptyTree.
func (t *Tree[K]) Max() (K, error) {
	if t.root == nil {
		var zero K
		return zero, ErrEmptyTree
	}
	return maxNode(t.root).key, nil
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	return t.size
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t.root == nil
}

// Height returns the number of nodes on the longest root-to-leaf path:
// 0 for an empty tree and 1 for a single node.
func (t *Tree[K]) Height() int {
	return height(t.root)
}

// Depth returns the number of edges on the longest root-to-leaf path:
// -1 for an empty tree and 0 for a single node.
func (t *Tree[K]) Depth() int {
	return height(t.root) - 1
}

// Clear removes every key. Registered options are kept.
func (t *Tree[K]) Clear() {
	t.root = nil
	t.size = 0
}
