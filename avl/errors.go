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

import "errors"

var (
	// ErrEmptyTree is returned by Min and Max when the tree holds no keys.
	ErrEmptyTree = errors.New("avl: tree is empty")

	// The errors below are only reported by Verify. A tree built through the
	// public API never produces them.

	// ErrOrderViolation means a key sits on the wrong side of an ancestor.
	ErrOrderViolation = errors.New("avl: binary search order violated")
	// ErrBalanceViolation means a node's subtree heights differ by more than one.
	ErrBalanceViolation = errors.New("avl: balance factor out of range")
	// ErrHeightMismatch means a cached height disagrees with the subtree.
	ErrHeightMismatch = errors.New("avl: cached height is stale")
	// ErrCountMismatch means the element count disagrees with the reachable keys.
	ErrCountMismatch = errors.New("avl: element count is wrong")
)
