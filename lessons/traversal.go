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

var sampleKeys = []int{4, 2, 6, 1, 3, 5, 7}

type traversal struct {
	rule  string
	order func(t *avl.Tree[int]) []int
}

var traversals = map[string]traversal{
	"inorder":    {rule: "left subtree, node, right subtree. Yields the keys sorted.", order: (*avl.Tree[int]).Keys},
	"preorder":   {rule: "node, left subtree, right subtree. Pins down the shape of the tree.", order: (*avl.Tree[int]).PreOrder},
	"postorder":  {rule: "left subtree, right subtree, node. Children are visited before their parent.", order: (*avl.Tree[int]).PostOrder},
	"levelorder": {rule: "breadth first, top level to bottom, left to right.", order: (*avl.Tree[int]).LevelOrder},
}

// TraversalStrategy explains the four visiting orders on a small sample tree.
type TraversalStrategy struct{}

func (s *TraversalStrategy) Names() []string {
	return []string{"traversal", "traversals", "inorder", "preorder", "postorder", "levelorder"}
}

func (s *TraversalStrategy) SupportsTopic(base string) bool {
	return slices.Contains(s.Names(), base)
}

func (s *TraversalStrategy) Priority() int {
	return 1
}

func (s *TraversalStrategy) GetLesson(parts []string) (string, error) {
	topic := NewTopic(parts)

	names := []string{"inorder", "preorder", "postorder", "levelorder"}
	if _, ok := traversals[topic.Base]; ok {
		names = []string{topic.Base}
	} else if topic.HasArg(1) {
		if _, ok := traversals[topic.Arg(0)]; !ok {
			return "", fmt.Errorf("unknown traversal %q", topic.Arg(0))
		}
		names = []string{topic.Arg(0)}
	}

	tree := avl.New[int]()
	for _, k := range sampleKeys {
		tree.Insert(k)
	}

	var sb strings.Builder
	sb.WriteString("# Traversals\n\nSample tree:\n\n")
	for _, line := range strings.Split(strings.TrimRight(tree.String(), "\n"), "\n") {
		sb.WriteString("    " + line + "\n")
	}
	sb.WriteString("\n")
	for _, name := range names {
		tr := traversals[name]
		fmt.Fprintf(&sb, "* **%s**: %s\n\n      %v\n\n", name, tr.rule, tr.order(tree))
	}
	return sb.String(), nil
}
