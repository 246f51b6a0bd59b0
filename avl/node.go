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

// node is one key in the tree. Children are owned by their parent only.
type node[K cmp.Ordered] struct {
	key    K
	left   *node[K]
	right  *node[K]
	height int // leaf = 1
}

func newNode[K cmp.Ordered](key K) *node[K] {
	return &node[K]{key: key, height: 1}
}

func height[K cmp.Ordered](n *node[K]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *node[K]) updateHeight() {
	n.height = max(height(n.left), height(n.right)) + 1
}

func balanceFactor[K cmp.Ordered](n *node[K]) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

// rotateRight lifts y.left into y's place and returns it.
//
//	    y            x
//	   / \          / \
//	  x   C   =>   A   y
//	 / \              / \
//	A   T2           T2  C
func rotateRight[K cmp.Ordered](y *node[K]) *node[K] {
	x := y.left
	y.left = x.right
	x.right = y

	// y is now below x, so its height must be settled first
	y.updateHeight()
	x.updateHeight()
	return x
}

// rotateLeft is the mirror image of rotateRight.
func rotateLeft[K cmp.Ordered](x *node[K]) *node[K] {
	y := x.right
	x.right = y.left
	y.left = x

	x.updateHeight()
	y.updateHeight()
	return y
}

// rebalance restores the AVL property at n, assuming both subtrees already
// satisfy it and n.height is current. It returns the new subtree root.
func (t *Tree[K]) rebalance(n *node[K]) *node[K] {
	balance := balanceFactor(n)

	// Left-heavy
	if balance > 1 {
		if balanceFactor(n.left) >= 0 {
			t.trace(LeftLeft, n.key)
			return rotateRight(n)
		}
		t.trace(LeftRight, n.key)
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	}

	// Right-heavy
	if balance < -1 {
		if balanceFactor(n.right) <= 0 {
			t.trace(RightRight, n.key)
			return rotateLeft(n)
		}
		t.trace(RightLeft, n.key)
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}

	return n
}

func minNode[K cmp.Ordered](n *node[K]) *node[K] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func maxNode[K cmp.Ordered](n *node[K]) *node[K] {
	for n.right != nil {
		n = n.right
	}
	return n
}
