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
	"fmt"
)

// IsBalanced recomputes every subtree height from scratch, ignoring the cached
// heights, and reports whether each node's balance factor is within [-1, 1].
func (t *Tree[K]) IsBalanced() bool {
	_, ok := measure(t.root)
	return ok
}

// measure returns the real height of n and whether every node below is balanced.
func measure[K cmp.Ordered](n *node[K]) (int, bool) {
	if n == nil {
		return 0, true
	}
	lh, ok := measure(n.left)
	if !ok {
		return 0, false
	}
	rh, ok := measure(n.right)
	if !ok {
		return 0, false
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, false
	}
	return max(lh, rh) + 1, true
}

// IsValidBST reports whether the keys obey the strict binary search order.
func (t *Tree[K]) IsValidBST() bool {
	return checkOrder(t.root, nil, nil) == nil
}

// Verify checks every structural invariant and returns the first violation
// found, wrapping one of the Err*Violation / Err*Mismatch errors.
func (t *Tree[K]) Verify() error {
	if err := checkOrder(t.root, nil, nil); err != nil {
		return err
	}
	count, err := checkShape(t.root)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: counted %d keys, tree reports %d", ErrCountMismatch, count, t.size)
	}
	return nil
}

// checkOrder makes sure n.key lies strictly between the bounds, nil meaning
// unbounded.
func checkOrder[K cmp.Ordered](n *node[K], low, high *K) error {
	if n == nil {
		return nil
	}
	if low != nil && n.key <= *low {
		return fmt.Errorf("%w: key %v is not greater than %v", ErrOrderViolation, n.key, *low)
	}
	if high != nil && n.key >= *high {
		return fmt.Errorf("%w: key %v is not less than %v", ErrOrderViolation, n.key, *high)
	}
	if err := checkOrder(n.left, low, &n.key); err != nil {
		return err
	}
	return checkOrder(n.right, &n.key, high)
}

// checkShape validates cached heights and balance factors and counts the nodes.
func checkShape[K cmp.Ordered](n *node[K]) (int, error) {
	if n == nil {
		return 0, nil
	}
	lc, err := checkShape(n.left)
	if err != nil {
		return 0, err
	}
	rc, err := checkShape(n.right)
	if err != nil {
		return 0, err
	}
	want := max(height(n.left), height(n.right)) + 1
	if n.height != want {
		return 0, fmt.Errorf("%w: node %v has height %d, expected %d", ErrHeightMismatch, n.key, n.height, want)
	}
	if bf := balanceFactor(n); bf > 1 || bf < -1 {
		return 0, fmt.Errorf("%w: node %v has balance %+d", ErrBalanceViolation, n.key, bf)
	}
	return lc + rc + 1, nil
}
