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

package avl_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cybrota/arbor/avl"
)

func TestRender(t *testing.T) {
	testCases := []struct {
		Name     string
		Keys     []int
		Expected string
	}{
		{
			Name:     "Empty",
			Expected: "(empty)\n",
		},
		{
			Name: "Three Keys",
			Keys: []int{2, 1, 3},
			Expected: "       /------+ 3 h=1 bf=+0\n" +
				"|------+ 2 h=2 bf=+0\n" +
				"       \\------+ 1 h=1 bf=+0\n",
		},
		{
			Name: "Left Heavy",
			Keys: []int{3, 2, 4, 1},
			Expected: "       /------+ 4 h=1 bf=+0\n" +
				"|------+ 3 h=3 bf=+1\n" +
				"       \\------+ 2 h=2 bf=+1\n" +
				"              \\------+ 1 h=1 bf=+0\n",
		},
		{
			Name: "Inner Branches",
			Keys: []int{4, 2, 6, 3, 5},
			Expected: "       /------+ 6 h=2 bf=+1\n" +
				"       |      \\------+ 5 h=1 bf=+0\n" +
				"|------+ 4 h=3 bf=+0\n" +
				"       |      /------+ 3 h=1 bf=+0\n" +
				"       \\------+ 2 h=2 bf=-1\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := avl.New[int]()
			for _, k := range tc.Keys {
				tree.Insert(k)
			}
			var buf bytes.Buffer
			if err := tree.Render(&buf); err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if buf.String() != tc.Expected {
				t.Errorf("Render() =\n%s\nwant\n%s", buf.String(), tc.Expected)
			}
			if tree.String() != tc.Expected {
				t.Errorf("String() differs from Render()")
			}
		})
	}
}

type failingWriter struct{}

var errWrite = errors.New("disk full")

func (failingWriter) Write(p []byte) (int, error) { return 0, errWrite }

func TestRenderReportsWriteErrors(t *testing.T) {
	tree := avl.New[string]()
	tree.Insert("a")
	if err := tree.Render(failingWriter{}); !errors.Is(err, errWrite) {
		t.Errorf("Render() error = %v; want %v", err, errWrite)
	}
	if err := avl.New[string]().Render(failingWriter{}); !errors.Is(err, errWrite) {
		t.Errorf("Render() on empty tree error = %v; want %v", err, errWrite)
	}
	if !strings.Contains(tree.String(), "a h=1") {
		t.Errorf("String() = %q", tree.String())
	}
}
