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
	"errors"
	"fmt"
	"slices"
)

// ErrNoTopic is returned when a lesson is requested without a topic.
var ErrNoTopic = errors.New("no topic provided")

type named interface {
	Names() []string
}

// Manager manages the registered lesson strategies
type Manager struct {
	strategies []LessonStrategy
}

// NewManager creates a manager with every built-in lesson registered
func NewManager() *Manager {
	m := &Manager{}
	for _, l := range builtinLessons {
		m.RegisterStrategy(l)
	}
	m.RegisterStrategy(&RotationStrategy{})
	m.RegisterStrategy(&TraversalStrategy{})
	m.RegisterStrategy(&GenericStrategy{manager: m})
	return m
}

// RegisterStrategy registers a new lesson strategy
func (m *Manager) RegisterStrategy(strategy LessonStrategy) {
	m.strategies = append(m.strategies, strategy)
	slices.SortStableFunc(m.strategies, func(a, b LessonStrategy) int {
		return a.Priority() - b.Priority()
	})
}

// GetLesson returns the lesson for parts using the best available strategy
func (m *Manager) GetLesson(parts []string) (string, error) {
	if len(parts) == 0 {
		return "", ErrNoTopic
	}

	topic := NewTopic(parts)

	var lastErr error
	tried := 0
	for _, strategy := range m.strategies {
		if !strategy.SupportsTopic(topic.Base) {
			continue
		}
		tried++
		lesson, err := strategy.GetLesson(parts)
		if err == nil && lesson != "" {
			return lesson, nil
		}
		if err == nil {
			err = errors.New("empty lesson")
		}
		lastErr = err
	}

	if tried == 0 {
		return "", fmt.Errorf("no lesson found for topic %q", topic.FullName)
	}
	return "", fmt.Errorf("failed to get lesson for topic %q: %w", topic.FullName, lastErr)
}

// Topics lists the base names of all static and dynamic lessons
func (m *Manager) Topics() []string {
	var names []string
	for _, s := range m.strategies {
		if n, ok := s.(named); ok {
			names = append(names, n.Names()[0])
		}
	}
	slices.Sort(names)
	return names
}
