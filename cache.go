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
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/cybrota/arbor/lessons"
)

const (
	// Rotation and traversal lessons are generated; keep them for the session
	lessonCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	lessonCacheCleanup = 5 * time.Minute
)

// NewLessonCache creates a cache for lesson markdown keyed by topic
func NewLessonCache() *cache.Cache {
	return cache.New(lessonCacheExpiration, lessonCacheCleanup)
}

func CacheLesson(c *cache.Cache, topic string, lesson string) {
	c.Set(topic, lesson, lessonCacheExpiration)
}

func GetCachedLesson(c *cache.Cache, topic string) string {
	val, ok := c.Get(topic)
	if !ok {
		return ""
	}
	return val.(string)
}

// GetOrFillLesson returns the lesson for topic, asking the manager on a miss.
// Failures are cached too, as a short note, so a bad topic is not retried on
// every keystroke.
func GetOrFillLesson(c *cache.Cache, m *lessons.Manager, topic string) string {
	parts, err := splitCommand(topic)
	if err != nil || len(parts) == 0 {
		return ""
	}
	key := strings.ToLower(strings.Join(parts, " "))

	if lesson := GetCachedLesson(c, key); lesson != "" {
		return lesson
	}

	lesson, err := m.GetLesson(parts)
	if err != nil {
		lesson = fmt.Sprintf("Nothing to read about %q yet.\n\n%s", topic, err.Error())
	}
	CacheLesson(c, key, lesson)
	return lesson
}
