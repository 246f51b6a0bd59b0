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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage(lineWidth int) string {
	message := fmt.Sprintf(`

 **Arbor %s**

Watch a self-balancing AVL tree at work. Insert and delete keys, see every
rotation as it happens and compare against a plain binary search tree.

Built with Go %s

# 1. Commands
* **arbor** or **arbor run**: interactive tree explorer
* **arbor demo**: replay a key sequence step by step
* **arbor compare**: AVL vs plain BST heights for sorted and random input
* **arbor bench**: timed insert, search and delete workloads
* **arbor check 5 3 8**: build a tree from keys (or --file) and verify it
* **arbor settings**: show or create ~/.arbor.yaml

# 2. Explorer commands
* insert 5 3 8 (also add)
* delete 3 (also del, rm)
* search 5 (also find)
* min, max, pred 5, succ 5
* range 10 20 lists keys in [10, 20)
* seq 1 100 inserts a run, random 50 inserts random keys
* inorder, preorder, postorder, levelorder
* check, clear
* help, help rotation lr

# 3. Keys files
One or more integers per line. Lines starting with # are comments.

# Please be aware
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, lineWidth, 3)
	return string(result)
}
