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

// Case identifies which of the four imbalance shapes a rebalancing step fixed.
type Case int

const (
	// LeftLeft is fixed by a single right rotation.
	LeftLeft Case = iota
	// LeftRight is fixed by a left rotation at the left child, then a right rotation.
	LeftRight
	// RightRight is fixed by a single left rotation.
	RightRight
	// RightLeft is fixed by a right rotation at the right child, then a left rotation.
	RightLeft
)

func (c Case) String() string {
	switch c {
	case LeftLeft:
		return "LL"
	case LeftRight:
		return "LR"
	case RightRight:
		return "RR"
	case RightLeft:
		return "RL"
	default:
		return fmt.Sprintf("Case(%d)", int(c))
	}
}

// Double reports whether the case needs two rotations.
func (c Case) Double() bool {
	return c == LeftRight || c == RightLeft
}

// Rotation describes one rebalancing step: the case and the key of the
// unbalanced node the step was applied at.
type Rotation[K cmp.Ordered] struct {
	Case  Case
	Pivot K
}

func (r Rotation[K]) String() string {
	return fmt.Sprintf("%s at %v", r.Case, r.Pivot)
}

// Option configures a Tree.
type Option[K cmp.Ordered] func(*Tree[K])

// WithRotationHook registers fn to be called for every rebalancing step, in the
// order the steps happen (deepest node first).
func WithRotationHook[K cmp.Ordered](fn func(Rotation[K])) Option[K] {
	return func(t *Tree[K]) {
		t.onRotate = fn
	}
}

func (t *Tree[K]) trace(c Case, pivot K) {
	if t.onRotate != nil {
		t.onRotate(Rotation[K]{Case: c, Pivot: pivot})
	}
}
