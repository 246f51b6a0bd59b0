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

/*
Package avl provides an ordered set backed by an AVL tree, a binary search
tree that rebalances itself on every insertion and deletion.

	Space   O(n)
	Search  O(log n)
	Insert  O(log n)   at most one single or double rotation
	Delete  O(log n)   may rotate at every ancestor of the removed node
	Min/Max O(log n)

Every node caches the height of its subtree (a leaf has height 1). After a
change, the recursion that performed it walks back towards the root, refreshes
the cached heights and applies one of four rotation cases (LL, LR, RR, RL)
wherever the two subtree heights differ by more than one. Nodes only point
at their children; there are no parent links.

Keys are never handed out by reference. Traversals such as All, Keys and
PreOrder build fresh results on every call.

Min and Max return ErrEmptyTree on an empty tree. Verify, IsBalanced and
IsValidBST recompute the invariants from scratch and exist for tests and
diagnostics.
*/
package avl
