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
)

// GenericStrategy lists the available topics
type GenericStrategy struct {
	manager *Manager
}

func (g *GenericStrategy) SupportsTopic(base string) bool {
	return slices.Contains([]string{"help", "topics", "?"}, base)
}

func (g *GenericStrategy) Priority() int {
	return 8 // Lower priority than specific lessons
}

func (g *GenericStrategy) GetLesson(parts []string) (string, error) {
	var sb strings.Builder
	sb.WriteString("# Topics\n\n")
	for _, name := range g.manager.Topics() {
		fmt.Fprintf(&sb, "* %s\n", name)
	}
	sb.WriteString("\nType **help TOPIC** to read one.\n")
	return sb.String(), nil
}
