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
	"fmt"
	"io"
	"strings"

	"github.com/cybrota/arbor/avl"
)

// runDemo inserts keys one at a time and narrates each step.
func runDemo(w io.Writer, keys []int, showHeights bool) error {
	var rotations []string
	tree := avl.New(avl.WithRotationHook(func(r avl.Rotation[int]) {
		rotations = append(rotations, r.String())
	}))

	for step, k := range keys {
		rotations = rotations[:0]
		inserted := tree.Insert(k)

		fmt.Fprintf(w, "%sStep %d: insert %d%s", Green, step+1, k, Reset)
		switch {
		case !inserted:
			fmt.Fprintf(w, " (already present)\n\n")
			continue
		case len(rotations) > 0:
			fmt.Fprintf(w, "  %s⟳ %s%s", Warning, strings.Join(rotations, ", "), Reset)
		}
		fmt.Fprintf(w, "  height %d  balanced %t\n", tree.Height(), tree.IsBalanced())

		if showHeights {
			if err := tree.Render(w); err != nil {
				return err
			}
		} else {
			fmt.Fprintln(w, tree.Keys())
		}
		fmt.Fprintln(w)
	}

	if err := tree.Verify(); err != nil {
		return fmt.Errorf("demo tree failed verification: %w", err)
	}
	fmt.Fprintf(w, "Final in-order: %v\n", tree.Keys())
	return nil
}

// runCheck builds a tree from keys, verifies it and prints every traversal.
func runCheck(w io.Writer, keys []int) error {
	tree := avl.New[int]()
	duplicates := 0
	for _, k := range keys {
		if !tree.Insert(k) {
			duplicates++
		}
	}

	fmt.Fprintf(w, "keys %d (duplicates skipped %d)  height %d\n\n", tree.Len(), duplicates, tree.Height())
	if err := tree.Render(w); err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "in-order:    %v\n", tree.Keys())
	fmt.Fprintf(w, "pre-order:   %v\n", tree.PreOrder())
	fmt.Fprintf(w, "post-order:  %v\n", tree.PostOrder())
	fmt.Fprintf(w, "level-order: %v\n", tree.LevelOrder())

	if err := tree.Verify(); err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}
	fmt.Fprintf(w, "\n%s✔ AVL invariants hold%s\n", Green, Reset)
	return nil
}
