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
	"io"
	"strings"
)

type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Render writes a sideways drawing of the tree to w, right subtree on top, so
// that reading the page rotated clockwise shows the usual picture. Each node
// is printed with its height and balance factor.
//
//	       /------+ 30 h=1 bf=+0
//	|------+ 20 h=2 bf=+0
//	       \------+ 10 h=1 bf=+0
func (t *Tree[K]) Render(w io.Writer) error {
	if t.root == nil {
		_, err := fmt.Fprintln(w, "(empty)")
		return err
	}
	return render(w, t.root, "", rootBranch)
}

// String returns the drawing produced by Render.
func (t *Tree[K]) String() string {
	var sb strings.Builder
	_ = t.Render(&sb)
	return sb.String()
}

func render[K cmp.Ordered](w io.Writer, n *node[K], prefix string, br branch) error {
	if n.right != nil {
		pad := "       "
		if br == leftBranch {
			pad = "|      "
		}
		if err := render(w, n.right, prefix+pad, rightBranch); err != nil {
			return err
		}
	}

	var edge string
	switch br {
	case rootBranch:
		edge = "|------+ "
	case leftBranch:
		edge = "\\------+ "
	case rightBranch:
		edge = "/------+ "
	}
	if _, err := fmt.Fprintf(w, "%s%s%v h=%d bf=%+d\n", prefix, edge, n.key, n.height, balanceFactor(n)); err != nil {
		return err
	}

	if n.left != nil {
		pad := "       "
		if br == rightBranch {
			pad = "|      "
		}
		if err := render(w, n.left, prefix+pad, leftBranch); err != nil {
			return err
		}
	}
	return nil
}
