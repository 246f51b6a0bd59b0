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
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cybrota/arbor/avl"
)

func TestSessionExec(t *testing.T) {
	testCases := []struct {
		Name      string
		Setup     []string
		Line      string
		Output    string
		WantErr   error  // checked with errors.Is when set
		ErrText   string // checked with strings.Contains when set
		Keys      []int
		Rotations []string
	}{
		{Name: "Insert", Line: "insert 2 1 3", Output: "inserted 2 1 3", Keys: []int{1, 2, 3}},
		{Name: "Insert Alias Rotates", Line: "add 10 20 30", Output: "inserted 10 20 30", Keys: []int{10, 20, 30}, Rotations: []string{"RR at 10"}},
		{Name: "Insert Duplicates", Setup: []string{"insert 5"}, Line: "insert 5 6", Output: "inserted 6; already present 5", Keys: []int{5, 6}},
		{Name: "Insert Bad Key Leaves Tree", Setup: []string{"insert 1"}, Line: "insert 2 x 3", WantErr: errBadKey, Keys: []int{1}},
		{Name: "Insert Nothing", Line: "insert", WantErr: errUsage, Keys: []int{}},
		{Name: "Delete", Setup: []string{"insert 2 1 4 3 5"}, Line: "rm 1 9", Output: "deleted 1; not found 9", Keys: []int{2, 3, 4, 5}, Rotations: []string{"RR at 2"}},
		{Name: "Search Hit", Setup: []string{"insert 4"}, Line: "find 4", Output: "4 found", Keys: []int{4}},
		{Name: "Search Miss", Setup: []string{"insert 4"}, Line: "search 7", Output: "7 not found", Keys: []int{4}},
		{Name: "Search Arity", Line: "search 1 2", WantErr: errUsage, Keys: []int{}},
		{Name: "Min", Setup: []string{"insert 8 3 9"}, Line: "min", Output: "min = 3", Keys: []int{3, 8, 9}},
		{Name: "Max", Setup: []string{"insert 8 3 9"}, Line: "MAX", Output: "max = 9", Keys: []int{3, 8, 9}},
		{Name: "Min Empty", Line: "min", WantErr: avl.ErrEmptyTree, Keys: []int{}},
		{Name: "Pred", Setup: []string{"insert 1 2 3"}, Line: "pred 3", Output: "pred(3) = 2", Keys: []int{1, 2, 3}},
		{Name: "Succ Of Max", Setup: []string{"insert 1 2 3"}, Line: "succ 3", Output: "3 has no successor", Keys: []int{1, 2, 3}},
		{Name: "Pred Absent", Setup: []string{"insert 1 2 3"}, Line: "pred 7", ErrText: "not in the tree", Keys: []int{1, 2, 3}},
		{Name: "Range", Setup: []string{"seq 1 10"}, Line: "range 3 6", Output: "[3, 6): [3 4 5]", Keys: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{Name: "Range Inverted", Setup: []string{"insert 1"}, Line: "range 6 3", WantErr: errUsage, Keys: []int{1}},
		{Name: "Seq Down", Line: "seq 3 1", Output: "inserted 3 keys from 3 to 1", Keys: []int{1, 2, 3}, Rotations: []string{"LL at 3"}},
		{Name: "Seq Too Long", Line: "seq 0 100000", WantErr: errUsage, Keys: []int{}},
		{Name: "Seq Overflow", Line: "seq 0 9223372036854775807", WantErr: errUsage, Keys: []int{}},
		{Name: "Seq Full Range", Line: "seq -9223372036854775808 9223372036854775807", WantErr: errUsage, Keys: []int{}},
		{Name: "Random Bad Count", Line: "random 0", WantErr: errUsage, Keys: []int{}},
		{Name: "Preorder", Setup: []string{"insert 10 20 30 40 50 25"}, Line: "preorder", Output: "[30 20 10 25 40 50]", Keys: []int{10, 20, 25, 30, 40, 50}},
		{Name: "Postorder", Setup: []string{"insert 2 1 3"}, Line: "postorder", Output: "[1 3 2]", Keys: []int{1, 2, 3}},
		{Name: "Levelorder Empty", Line: "levelorder", Output: "[]", Keys: []int{}},
		{Name: "Check", Setup: []string{"seq 1 7"}, Line: "check", Output: "ok: 7 keys, height 3", Keys: []int{1, 2, 3, 4, 5, 6, 7}},
		{Name: "Clear", Setup: []string{"insert 1 2"}, Line: "clear", Output: "cleared 2 keys", Keys: []int{}},
		{Name: "Quoted Args", Line: `insert "4" '5'`, Output: "inserted 4 5", Keys: []int{4, 5}},
		{Name: "Unbalanced Quote", Line: `insert "4`, ErrText: "failed to parse", Keys: []int{}},
		{Name: "Unknown", Setup: []string{"insert 1"}, Line: "splay 1", WantErr: errUnknownCommand, Keys: []int{1}},
		{Name: "Help Unknown Topic", Line: "help splay", ErrText: "no lesson found", Keys: []int{}},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			s := NewSession(NewLessonCache(), 1)
			for _, line := range tc.Setup {
				_, err := s.Exec(line)
				require.NoError(t, err, "setup %q", line)
			}

			res, err := s.Exec(tc.Line)
			switch {
			case tc.WantErr != nil:
				require.True(t, errors.Is(err, tc.WantErr), "Exec(%q) error = %v; want %v", tc.Line, err, tc.WantErr)
			case tc.ErrText != "":
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.ErrText)
			default:
				require.NoError(t, err)
				require.Equal(t, tc.Output, res.Output)
			}

			var rots []string
			for _, r := range res.Rotations {
				rots = append(rots, r.String())
			}
			require.Equal(t, tc.Rotations, rots)
			require.Equal(t, tc.Keys, s.Tree().Keys())
			require.NoError(t, s.Tree().Verify())
		})
	}
}

func TestSessionSeqLimit(t *testing.T) {
	s := NewSession(nil, 1)
	res, err := s.Exec("seq 99999 0")
	require.NoError(t, err)
	require.Equal(t, "inserted 100000 keys from 99999 to 0", res.Output)
	require.Equal(t, maxRunLength, s.Tree().Len())

	_, err = s.Exec("seq 1 -9223372036854775808")
	require.ErrorIs(t, err, errUsage)
	require.Equal(t, maxRunLength, s.Tree().Len())
}

func TestSessionRandom(t *testing.T) {
	s := NewSession(nil, 5)
	_, err := s.Exec("insert 1 2 3")
	require.NoError(t, err)

	res, err := s.Exec("random 15")
	require.NoError(t, err)
	require.Equal(t, 18, s.Tree().Len())
	require.True(t, strings.HasPrefix(res.Output, "inserted "))

	res, err = s.Exec("random 500")
	require.NoError(t, err)
	require.Equal(t, "inserted 500 random keys", res.Output)
	require.Equal(t, 518, s.Tree().Len())
	require.NoError(t, s.Tree().Verify())
}

func TestSessionLessons(t *testing.T) {
	s := NewSession(NewLessonCache(), 1)

	res, err := s.Exec("insert 5")
	require.NoError(t, err)
	require.Contains(t, res.Lesson, "# Insert")

	res, err = s.Exec("insert 3 4")
	require.NoError(t, err)
	require.Equal(t, []string{"LR at 5"}, rotationStrings(res.Rotations))
	require.Contains(t, res.Lesson, "# LR rotation")

	res, err = s.Exec("help rotation rr")
	require.NoError(t, err)
	require.Contains(t, res.Lesson, "RR at 10")

	res, err = s.Exec("help")
	require.NoError(t, err)
	require.Contains(t, res.Lesson, "# Topics")
}

func TestSessionLog(t *testing.T) {
	s := NewSession(nil, 1)
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	for _, line := range []string{"insert 1 2 3", "  ", "bogus", "delete 2"} {
		_, _ = s.Exec(line)
	}

	log := s.Log()
	require.Len(t, log, 3)
	require.Equal(t, "insert 1 2 3", log[0].Command)
	require.Equal(t, []string{"RR at 1"}, rotationStrings(log[0].Rotations))
	require.Equal(t, clock, log[0].Time)
	require.True(t, strings.HasPrefix(log[1].Outcome(), "error: unknown command"))
	require.Equal(t, "deleted 2", log[2].Outcome())
}

func TestSessionLogIsBounded(t *testing.T) {
	s := NewSession(nil, 1)
	for i := range maxLogSize + 10 {
		_, _ = s.Exec("search " + strings.Repeat("1", 1+i%3))
	}
	require.Len(t, s.Log(), maxLogSize)
}

func rotationStrings(rs []avl.Rotation[int]) []string {
	var out []string
	for _, r := range rs {
		out = append(out, r.String())
	}
	return out
}

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"insert 1 2", []string{"insert", "1", "2"}},
		{`help "rotation lr"`, []string{"help", "rotation lr"}},
		{"  seq   1   5 ", []string{"seq", "1", "5"}},
		{"", []string{}},
	}

	for _, tc := range tests {
		parts, err := splitCommand(tc.input)
		if err != nil {
			t.Errorf("splitCommand(%q) returned error: %v", tc.input, err)
			continue
		}
		if len(parts) != len(tc.expected) || (len(parts) > 0 && !slices.Equal(parts, tc.expected)) {
			t.Errorf("splitCommand(%q): expected %v, got %v", tc.input, tc.expected, parts)
		}
	}
}
