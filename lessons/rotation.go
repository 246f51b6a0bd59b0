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

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cybrota/arbor/avl"
)

type rotationCase struct {
	c      avl.Case
	keys   []int
	shape  string
	remedy string
}

var rotationCases = map[string]rotationCase{
	"ll": {
		c:      avl.LeftLeft,
		keys:   []int{30, 20, 10},
		shape:  "the left child of the unbalanced node is left-heavy or even",
		remedy: "one **right rotation** at the unbalanced node",
	},
	"lr": {
		c:      avl.LeftRight,
		keys:   []int{30, 10, 20},
		shape:  "the left child of the unbalanced node is right-heavy",
		remedy: "a **left rotation** at the left child, then a **right rotation** at the node",
	},
	"rr": {
		c:      avl.RightRight,
		keys:   []int{10, 20, 30},
		shape:  "the right child of the unbalanced node is right-heavy or even",
		remedy: "one **left rotation** at the unbalanced node",
	},
	"rl": {
		c:      avl.RightLeft,
		keys:   []int{10, 30, 20},
		shape:  "the right child of the unbalanced node is left-heavy",
		remedy: "a **right rotation** at the right child, then a **left rotation** at the node",
	},
}

// RotationStrategy explains the four rebalancing cases. With a case argument
// ("rotation lr") it replays a three-key example through a real tree.
type RotationStrategy struct{}

func (r *RotationStrategy) Names() []string { return []string{"rotation", "rotations", "rotate"} }

func (r *RotationStrategy) SupportsTopic(base string) bool {
	return slices.Contains(r.Names(), base)
}

func (r *RotationStrategy) Priority() int {
	return 1
}

func (r *RotationStrategy) GetLesson(parts []string) (string, error) {
	topic := NewTopic(parts)
	if !topic.HasArg(1) {
		return rotationOverview, nil
	}

	rc, ok := rotationCases[topic.Arg(0)]
	if !ok {
		return "", fmt.Errorf("unknown rotation case %q (want ll, lr, rr or rl)", topic.Arg(0))
	}

	var steps []string
	tree := avl.New(avl.WithRotationHook(func(rot avl.Rotation[int]) {
		steps = append(steps, rot.String())
	}))
	for _, k := range rc.keys {
		tree.Insert(k)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s rotation\n\n", rc.c)
	fmt.Fprintf(&sb, "Happens when %s.\n\nFix: %s.\n\n", rc.shape, rc.remedy)
	fmt.Fprintf(&sb, "Inserting %v into an empty tree triggers **%s**. Result:\n\n", rc.keys, strings.Join(steps, ", "))
	for _, line := range strings.Split(strings.TrimRight(tree.String(), "\n"), "\n") {
		sb.WriteString("    " + line + "\n")
	}
	return sb.String(), nil
}

const rotationOverview = `# Rotations

A rotation turns a parent and child around each other while keeping the
in-order sequence of keys. Only the two nodes (and the middle subtree that
changes hands) are touched, so it runs in O(1).

    right rotation at y          left rotation at x
          y        x                 x          y
         / \      / \               / \        / \
        x   C -> A   y             A   y  ->  x   C
       / \          / \               / \    / \
      A   B        B   C             B   C  A   B

When a node's balance factor reaches +2 or -2 the heavier child decides the
case:

* **LL**: left child is left-heavy or even. Rotate right.
* **LR**: left child is right-heavy. Rotate the child left, then the node right.
* **RR**: right child is right-heavy or even. Rotate left.
* **RL**: right child is left-heavy. Rotate the child right, then the node left.

Ask for **help rotation ll** (or lr, rr, rl) to see one replayed.
`
