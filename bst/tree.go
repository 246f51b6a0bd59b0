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

// Package bst is a plain binary search tree with no rebalancing. arbor keeps
// it next to the AVL tree to show how tall a tree grows without rotations.
package bst

import "cmp"

type node[K cmp.Ordered] struct {
	key         K
	left, right *node[K]
}

// Tree is a basic unbalanced Binary Search Tree.
type Tree[K cmp.Ordered] struct {
	root *node[K]
	size int
}

// New returns a new, empty Tree.
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{}
}

// Insert adds key and reports whether it was new. Duplicates are ignored.
// The descent is iterative so that a sorted run degrading the tree into a
// list does not grow the call stack.
func (bt *Tree[K]) Insert(key K) bool {
	newNode := &node[K]{key: key}
	if bt.root == nil {
		bt.root = newNode
		bt.size++
		return true
	}

	current := bt.root
	for {
		switch {
		case key < current.key:
			if current.left == nil {
				current.left = newNode
				bt.size++
				return true
			}
			current = current.left
		case key > current.key:
			if current.right == nil {
				current.right = newNode
				bt.size++
				return true
			}
			current = current.right
		default:
			return false
		}
	}
}

// Search reports whether key is in the tree.
func (bt *Tree[K]) Search(key K) bool {
	current := bt.root
	for current != nil {
		switch {
		case key < current.key:
			current = current.left
		case key > current.key:
			current = current.right
		default:
			return true
		}
	}
	return false
}

func (bt *Tree[K]) Len() int {
	return bt.size
}

// Height counts nodes on the longest root-to-leaf path; an empty tree is 0.
// It walks level by level, so degenerate trees are fine.
func (bt *Tree[K]) Height() int {
	if bt.root == nil {
		return 0
	}
	height := 0
	level := []*node[K]{bt.root}
	for len(level) > 0 {
		height++
		var next []*node[K]
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return height
}

// Keys returns the keys in ascending order.
func (bt *Tree[K]) Keys() []K {
	keys := make([]K, 0, bt.size)
	var stack []*node[K]
	current := bt.root
	for current != nil || len(stack) > 0 {
		for current != nil {
			stack = append(stack, current)
			current = current.left
		}
		current = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		keys = append(keys, current.key)
		current = current.right
	}
	return keys
}
