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
	"math/rand"
)

var tips = []string{
	"Every node caches its height; a leaf has height 1",
	"Balance factor = height(left) - height(right), always -1, 0 or +1",
	"Insert repairs at most one node; delete may rotate all the way up",
	"A rotation keeps the in-order sequence of keys intact",
	"LR and RL are double rotations: fix the child first, then the node",
	"The height of an AVL tree stays under 1.44 log2(n + 2)",
	"Sorted input turns a plain BST into a linked list. Try 'seq 1 50'",
	"Deleting a node with two children borrows its in-order successor",
	"Pre-order output is enough to rebuild the exact shape of the tree",
	"Level order is breadth first: one level at a time, left to right",
	"Min is the leftmost node, max the rightmost",
	"Duplicate keys are ignored: the tree is a set",
	"Type 'help rotation lr' to see a double rotation replayed",
	"Press ctrl+y to copy the keys in order",
}

// pickRandomString returns a random string from the provided slice.
// If the slice is empty, it returns an empty string.
func pickRandomString(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[rand.Intn(len(list))]
}

func GetRandomTip() string {
	return pickRandomString(tips)
}
