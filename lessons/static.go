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

package lessons

import "slices"

// StaticStrategy serves a fixed markdown lesson for a set of topic names.
type StaticStrategy struct {
	names    []string
	priority int
	body     string
}

func (s *StaticStrategy) Names() []string { return s.names }

func (s *StaticStrategy) SupportsTopic(base string) bool {
	return slices.Contains(s.names, base)
}

func (s *StaticStrategy) Priority() int {
	return s.priority
}

func (s *StaticStrategy) GetLesson(parts []string) (string, error) {
	return s.body, nil
}

var builtinLessons = []*StaticStrategy{
	{
		names:    []string{"insert", "add"},
		priority: 1,
		body: `# Insert

Walk down from the root as in any binary search tree: smaller keys go left,
larger keys go right. An equal key is already present and nothing changes.

The new key becomes a leaf with **height 1**. On the way back up, every
ancestor recomputes

    height = 1 + max(height(left), height(right))
    balance = height(left) - height(right)

The first ancestor whose balance leaves the range **-1..+1** is repaired with a
single or double rotation. After that one repair the subtree is as tall as it
was before the insert, so no node further up needs to rotate.

Cost: **O(log n)**, at most one rotation (two for a double case).
`,
	},
	{
		names:    []string{"delete", "del", "rm"},
		priority: 1,
		body: `# Delete

Find the node first. Then:

* **Leaf**: remove it.
* **One child**: the child takes its place.
* **Two children**: copy the smallest key of the right subtree (the in-order
  successor) into the node, then delete that successor from the right subtree.
  It has no left child, so that second removal is one of the easy cases.

Heights are refreshed and balance checked on every node back to the root.
Unlike insertion, a rotation can shorten a subtree, so a single delete may
rotate at several ancestors.

Deleting a key that is not present leaves the tree untouched.

Cost: **O(log n)**, up to O(log n) rotations.
`,
	},
	{
		names:    []string{"search", "find"},
		priority: 1,
		body: `# Search

Compare with the current node and move left or right until the key is found or
the path runs out. No state changes.

Because the height of an AVL tree with n keys is at most about
**1.44 log2(n + 2)**, a search never visits more than that many nodes, whatever
order the keys arrived in.
`,
	},
	{
		names:    []string{"minmax", "min", "max"},
		priority: 1,
		body: `# Min and Max

The smallest key is the **leftmost** node: follow left children from the root
until there is none. The largest is the **rightmost** node.

On an empty tree there is no answer and arbor reports an error instead of a
made-up value.
`,
	},
	{
		names:    []string{"neighbours", "neighbors", "pred", "succ"},
		priority: 1,
		body: `# Predecessor and Successor

The **successor** of a key is the next larger key in the tree.

* If the node has a right subtree, it is the minimum of that subtree.
* Otherwise it is the closest ancestor that was reached by going **left**.

The **predecessor** mirrors this with the left subtree and right turns.

arbor answers only for keys that are in the tree. The smallest key has no
predecessor and the largest has no successor.
`,
	},
	{
		names:    []string{"balance", "height"},
		priority: 1,
		body: `# Height and Balance

Every node caches the height of its subtree. A leaf has height 1, an empty
subtree height 0.

    balance factor = height(left) - height(right)

The AVL invariant: every node has a balance factor of **-1, 0 or +1**. That
keeps the tree height within about 1.44 log2(n + 2), so every operation is
logarithmic.

A plain BST fed sorted keys turns into a list of height n. Try
**arbor compare** to watch the difference.
`,
	},
}
