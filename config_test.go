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
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestLoadConfigFrom(t *testing.T) {
	testCases := []struct {
		Name     string
		Content  *string // nil means no file
		Sequence []int
		Sizes    []int
		Seed     uint64
		Heights  bool
		Wrap     int
	}{
		{
			Name:     "Missing File",
			Sequence: []int{1, 2, 3, 4, 5, 6, 7},
			Sizes:    []int{1_000, 10_000, 100_000},
			Seed:     42,
			Heights:  true,
			Wrap:     80,
		},
		{
			Name:     "Partial File",
			Content:  ptr("demo:\n  sequence: [5, 3, 8]\nui:\n  show_heights: false\n"),
			Sequence: []int{5, 3, 8},
			Sizes:    []int{1_000, 10_000, 100_000},
			Seed:     42,
			Heights:  false,
			Wrap:     80,
		},
		{
			Name:     "Bad Sizes Dropped",
			Content:  ptr("bench:\n  sizes: [0, -5, 500]\n  seed: 7\nui:\n  word_wrap: -1\n"),
			Sequence: []int{1, 2, 3, 4, 5, 6, 7},
			Sizes:    []int{500},
			Seed:     7,
			Heights:  true,
			Wrap:     80,
		},
		{
			Name:     "Broken YAML",
			Content:  ptr("demo: [unclosed\n"),
			Sequence: []int{1, 2, 3, 4, 5, 6, 7},
			Sizes:    []int{1_000, 10_000, 100_000},
			Seed:     42,
			Heights:  true,
			Wrap:     80,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), configFileName)
			if tc.Content != nil {
				if err := os.WriteFile(path, []byte(*tc.Content), 0644); err != nil {
					t.Fatal(err)
				}
			}

			config := loadConfigFrom(path)
			if !slices.Equal(config.Demo.Sequence, tc.Sequence) {
				t.Errorf("Demo.Sequence = %v; want %v", config.Demo.Sequence, tc.Sequence)
			}
			if !slices.Equal(config.Bench.Sizes, tc.Sizes) {
				t.Errorf("Bench.Sizes = %v; want %v", config.Bench.Sizes, tc.Sizes)
			}
			if config.Bench.Seed != tc.Seed {
				t.Errorf("Bench.Seed = %d; want %d", config.Bench.Seed, tc.Seed)
			}
			if config.UI.ShowHeights != tc.Heights {
				t.Errorf("UI.ShowHeights = %v; want %v", config.UI.ShowHeights, tc.Heights)
			}
			if config.UI.WordWrap != tc.Wrap {
				t.Errorf("UI.WordWrap = %d; want %d", config.UI.WordWrap, tc.Wrap)
			}
		})
	}
}

func TestWriteConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	config := defaults()
	config.Demo.Sequence = []int{9, 8, 7}
	config.UI.TipInterval = 3

	if err := writeConfigFile(path, config); err != nil {
		t.Fatalf("writeConfigFile() error = %v", err)
	}
	got := loadConfigFrom(path)
	if !slices.Equal(got.Demo.Sequence, []int{9, 8, 7}) || got.UI.TipInterval != 3 {
		t.Errorf("reloaded config = %+v", got)
	}
}

func TestDefaultsAreIndependent(t *testing.T) {
	a := defaults()
	a.Demo.Sequence[0] = 100
	if defaults().Demo.Sequence[0] != 1 {
		t.Error("defaults() shares its slices")
	}
}

func ptr(s string) *string { return &s }
