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
	"bytes"
	"strings"
	"testing"
)

func TestRunDemo(t *testing.T) {
	var buf bytes.Buffer
	if err := runDemo(&buf, []int{1, 2, 3, 3}, true); err != nil {
		t.Fatalf("runDemo() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Step 3: insert 3",
		"RR at 1",
		"height 2  balanced true",
		"Step 4: insert 3" + Reset + " (already present)",
		"|------+ 2 h=2 bf=+0",
		"Final in-order: [1 2 3]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("demo output missing %q:\n%s", want, out)
		}
	}
}

func TestRunDemoWithoutHeights(t *testing.T) {
	var buf bytes.Buffer
	if err := runDemo(&buf, []int{5, 4}, false); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "h=") {
		t.Errorf("heights shown:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "[4 5]") {
		t.Errorf("keys missing:\n%s", buf.String())
	}
}

func TestRunCheck(t *testing.T) {
	var buf bytes.Buffer
	if err := runCheck(&buf, []int{4, 2, 6, 1, 3, 5, 7, 7}); err != nil {
		t.Fatalf("runCheck() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"keys 7 (duplicates skipped 1)  height 3",
		"pre-order:   [4 2 1 3 6 5 7]",
		"post-order:  [1 3 2 5 7 6 4]",
		"level-order: [4 2 6 1 3 5 7]",
		"AVL invariants hold",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("check output missing %q:\n%s", want, out)
		}
	}
}

func TestRunCheckEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := runCheck(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "(empty)") {
		t.Errorf("empty check output:\n%s", buf.String())
	}
}
