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

// Package lessons holds the short markdown explanations arbor shows next to
// the tree. Each topic is served by a LessonStrategy; the Manager picks one.
package lessons

import "strings"

// LessonStrategy defines the interface for the different lesson sources
type LessonStrategy interface {
	GetLesson(parts []string) (string, error)
	SupportsTopic(base string) bool
	Priority() int // Lower number = higher priority
}

// Topic represents a parsed lesson request such as "rotation lr"
type Topic struct {
	Parts    []string
	Base     string
	Args     []string
	FullName string
}

// NewTopic creates a Topic from request parts. The base is lower-cased so
// "Rotation" and "rotation" select the same lesson.
func NewTopic(parts []string) *Topic {
	if len(parts) == 0 {
		return &Topic{Parts: parts}
	}

	return &Topic{
		Parts:    parts,
		Base:     strings.ToLower(parts[0]),
		Args:     parts[1:],
		FullName: strings.Join(parts, " "),
	}
}

// HasArg checks if the topic has at least n arguments
func (t *Topic) HasArg(n int) bool {
	return len(t.Args) >= n
}

// Arg returns the nth argument (0-indexed), lower-cased
func (t *Topic) Arg(n int) string {
	if n >= len(t.Args) {
		return ""
	}
	return strings.ToLower(t.Args[n])
}
