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
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/arbor/avl"
	"github.com/cybrota/arbor/lessons"
)

const (
	maxRunLength = 100_000 // keys accepted by one seq or random command
	maxLogSize   = 500
)

var (
	errUnknownCommand = errors.New("unknown command")
	errUsage          = errors.New("usage")
	errBadKey         = errors.New("invalid key")
)

// LogEntry records one executed command.
type LogEntry struct {
	Time      time.Time
	Command   string
	Output    string
	Err       error
	Rotations []avl.Rotation[int]
}

// Outcome is the short status shown in the operation log.
func (e LogEntry) Outcome() string {
	if e.Err != nil {
		return "error: " + e.Err.Error()
	}
	return e.Output
}

// Result is what one command produced.
type Result struct {
	Output    string
	Lesson    string // markdown for the lesson pane
	Rotations []avl.Rotation[int]
}

// Session owns one tree and interprets explorer command lines against it.
// It is not safe for concurrent use.
type Session struct {
	tree    *avl.Tree[int]
	pending []avl.Rotation[int]
	log     []LogEntry
	lessons *lessons.Manager
	cache   *cache.Cache
	rng     *rand.Rand
	now     func() time.Time
}

func NewSession(lessonCache *cache.Cache, seed uint64) *Session {
	s := &Session{
		lessons: lessons.NewManager(),
		cache:   lessonCache,
		rng:     rand.New(rand.NewPCG(seed, seed+1)),
		now:     time.Now,
	}
	s.tree = avl.New(avl.WithRotationHook(func(r avl.Rotation[int]) {
		s.pending = append(s.pending, r)
	}))
	return s
}

func (s *Session) Tree() *avl.Tree[int] { return s.tree }

// Log returns the executed commands, oldest first.
func (s *Session) Log() []LogEntry { return s.log }

// splitCommand splits a full command string into parts.
func splitCommand(fullCmd string) ([]string, error) {
	args, err := shellwords.Parse(fullCmd)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %w", fullCmd, err)
	}
	return args, nil
}

// Exec runs one command line. A failing command leaves the tree as it was.
// Blank lines do nothing and are not logged.
func (s *Session) Exec(line string) (Result, error) {
	parts, err := splitCommand(line)
	if err != nil {
		s.record(line, Result{}, err)
		return Result{}, err
	}
	if len(parts) == 0 {
		return Result{}, nil
	}

	s.pending = nil
	res, err := s.dispatch(strings.ToLower(parts[0]), parts[1:])
	res.Rotations = s.pending
	s.pending = nil

	// a rotation is the more interesting thing to read about
	if err == nil && len(res.Rotations) > 0 {
		if l := s.lesson("rotation " + strings.ToLower(res.Rotations[0].Case.String())); l != "" {
			res.Lesson = l
		}
	}
	s.record(strings.Join(parts, " "), res, err)
	return res, err
}

func (s *Session) record(command string, res Result, err error) {
	s.log = append(s.log, LogEntry{
		Time:      s.now(),
		Command:   command,
		Output:    res.Output,
		Err:       err,
		Rotations: res.Rotations,
	})
	if len(s.log) > maxLogSize {
		s.log = s.log[len(s.log)-maxLogSize:]
	}
}

func (s *Session) lesson(topic string) string {
	if s.cache == nil {
		return ""
	}
	return GetOrFillLesson(s.cache, s.lessons, topic)
}

func (s *Session) dispatch(cmd string, args []string) (Result, error) {
	switch cmd {
	case "insert", "add":
		return s.insert(args)
	case "delete", "del", "rm":
		return s.delete(args)
	case "search", "find":
		return s.search(args)
	case "min", "max":
		return s.extreme(cmd, args)
	case "pred", "succ":
		return s.neighbour(cmd, args)
	case "range":
		return s.keyRange(args)
	case "seq":
		return s.sequence(args)
	case "random":
		return s.random(args)
	case "inorder", "preorder", "postorder", "levelorder":
		return s.traverse(cmd, args)
	case "check":
		return s.check(args)
	case "clear":
		return s.clear(args)
	case "help":
		return s.help(args)
	default:
		return Result{}, fmt.Errorf("%w %q, type 'help' for the list", errUnknownCommand, cmd)
	}
}

func parseKey(arg string) (int, error) {
	k, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w %q: not an integer", errBadKey, arg)
	}
	return k, nil
}

// parseKeys parses all args before anything touches the tree.
func parseKeys(cmd string, args []string, atLeast int) ([]int, error) {
	if len(args) < atLeast {
		return nil, fmt.Errorf("%w: %s needs at least %d key(s)", errUsage, cmd, atLeast)
	}
	keys := make([]int, 0, len(args))
	for _, arg := range args {
		k, err := parseKey(arg)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func exactArgs(cmd string, args []string, n int, shape string) error {
	if len(args) != n {
		return fmt.Errorf("%w: %s %s", errUsage, cmd, shape)
	}
	return nil
}

func (s *Session) insert(args []string) (Result, error) {
	keys, err := parseKeys("insert", args, 1)
	if err != nil {
		return Result{}, err
	}
	var added, present []int
	for _, k := range keys {
		if s.tree.Insert(k) {
			added = append(added, k)
		} else {
			present = append(present, k)
		}
	}
	return Result{Output: summarize("inserted", added, "already present", present), Lesson: s.lesson("insert")}, nil
}

func (s *Session) delete(args []string) (Result, error) {
	keys, err := parseKeys("delete", args, 1)
	if err != nil {
		return Result{}, err
	}
	var removed, missing []int
	for _, k := range keys {
		if s.tree.Delete(k) {
			removed = append(removed, k)
		} else {
			missing = append(missing, k)
		}
	}
	return Result{Output: summarize("deleted", removed, "not found", missing), Lesson: s.lesson("delete")}, nil
}

func summarize(doneVerb string, done []int, skipVerb string, skipped []int) string {
	var out []string
	if len(done) > 0 {
		out = append(out, fmt.Sprintf("%s %s", doneVerb, joinKeys(done)))
	}
	if len(skipped) > 0 {
		out = append(out, fmt.Sprintf("%s %s", skipVerb, joinKeys(skipped)))
	}
	return strings.Join(out, "; ")
}

func joinKeys(keys []int) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Itoa(k)
	}
	return strings.Join(parts, " ")
}

func (s *Session) search(args []string) (Result, error) {
	if err := exactArgs("search", args, 1, "KEY"); err != nil {
		return Result{}, err
	}
	k, err := parseKey(args[0])
	if err != nil {
		return Result{}, err
	}
	out := fmt.Sprintf("%d not found", k)
	if s.tree.Search(k) {
		out = fmt.Sprintf("%d found", k)
	}
	return Result{Output: out, Lesson: s.lesson("search")}, nil
}

func (s *Session) extreme(cmd string, args []string) (Result, error) {
	if err := exactArgs(cmd, args, 0, "takes no arguments"); err != nil {
		return Result{}, err
	}
	get := s.tree.Min
	if cmd == "max" {
		get = s.tree.Max
	}
	k, err := get()
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", cmd, err)
	}
	return Result{Output: fmt.Sprintf("%s = %d", cmd, k), Lesson: s.lesson("minmax")}, nil
}

func (s *Session) neighbour(cmd string, args []string) (Result, error) {
	if err := exactArgs(cmd, args, 1, "KEY"); err != nil {
		return Result{}, err
	}
	k, err := parseKey(args[0])
	if err != nil {
		return Result{}, err
	}
	if !s.tree.Search(k) {
		return Result{}, fmt.Errorf("%s: key %d is not in the tree", cmd, k)
	}

	get, name := s.tree.Predecessor, "predecessor"
	if cmd == "succ" {
		get, name = s.tree.Successor, "successor"
	}
	out := fmt.Sprintf("%d has no %s", k, name)
	if n, ok := get(k); ok {
		out = fmt.Sprintf("%s(%d) = %d", cmd, k, n)
	}
	return Result{Output: out, Lesson: s.lesson("neighbours")}, nil
}

func (s *Session) keyRange(args []string) (Result, error) {
	if err := exactArgs("range", args, 2, "LOW HIGH"); err != nil {
		return Result{}, err
	}
	keys, err := parseKeys("range", args, 2)
	if err != nil {
		return Result{}, err
	}
	lo, hi := keys[0], keys[1]
	if lo > hi {
		return Result{}, fmt.Errorf("%w: range low %d is above high %d", errUsage, lo, hi)
	}
	var found []int
	for k := range s.tree.Range(lo, hi) {
		found = append(found, k)
	}
	return Result{Output: fmt.Sprintf("[%d, %d): [%s]", lo, hi, joinKeys(found)), Lesson: s.lesson("traversal inorder")}, nil
}

// sequence inserts lo..hi inclusive, counting down when lo > hi.
func (s *Session) sequence(args []string) (Result, error) {
	if err := exactArgs("seq", args, 2, "FROM TO"); err != nil {
		return Result{}, err
	}
	keys, err := parseKeys("seq", args, 2)
	if err != nil {
		return Result{}, err
	}
	from, to := keys[0], keys[1]
	step := 1
	if from > to {
		step = -1
	}
	// a negative span means hi-lo overflowed int
	if span := max(from, to) - min(from, to); span < 0 || span >= maxRunLength {
		return Result{}, fmt.Errorf("%w: seq is limited to %d keys", errUsage, maxRunLength)
	}

	added := 0
	for k := from; ; k += step {
		if s.tree.Insert(k) {
			added++
		}
		if k == to {
			break
		}
	}
	return Result{Output: fmt.Sprintf("inserted %d keys from %d to %d", added, from, to), Lesson: s.lesson("insert")}, nil
}

// random inserts n keys that were not in the tree yet.
func (s *Session) random(args []string) (Result, error) {
	if err := exactArgs("random", args, 1, "COUNT"); err != nil {
		return Result{}, err
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > maxRunLength {
		return Result{}, fmt.Errorf("%w: random COUNT must be between 1 and %d", errUsage, maxRunLength)
	}

	span := 10 * (s.tree.Len() + n)
	var added []int
	for len(added) < n {
		k := s.rng.IntN(span)
		if s.tree.Insert(k) {
			added = append(added, k)
		}
	}
	out := fmt.Sprintf("inserted %d random keys", n)
	if n <= 20 {
		out = "inserted " + joinKeys(added)
	}
	return Result{Output: out, Lesson: s.lesson("insert")}, nil
}

func (s *Session) traverse(cmd string, args []string) (Result, error) {
	if err := exactArgs(cmd, args, 0, "takes no arguments"); err != nil {
		return Result{}, err
	}
	var keys []int
	switch cmd {
	case "inorder":
		keys = s.tree.Keys()
	case "preorder":
		keys = s.tree.PreOrder()
	case "postorder":
		keys = s.tree.PostOrder()
	case "levelorder":
		keys = s.tree.LevelOrder()
	}
	return Result{Output: "[" + joinKeys(keys) + "]", Lesson: s.lesson("traversal " + cmd)}, nil
}

func (s *Session) check(args []string) (Result, error) {
	if err := exactArgs("check", args, 0, "takes no arguments"); err != nil {
		return Result{}, err
	}
	out := fmt.Sprintf("ok: %d keys, height %d", s.tree.Len(), s.tree.Height())
	if err := s.tree.Verify(); err != nil {
		out = "broken: " + err.Error()
	}
	return Result{Output: out, Lesson: s.lesson("balance")}, nil
}

func (s *Session) clear(args []string) (Result, error) {
	if err := exactArgs("clear", args, 0, "takes no arguments"); err != nil {
		return Result{}, err
	}
	n := s.tree.Len()
	s.tree.Clear()
	return Result{Output: fmt.Sprintf("cleared %d keys", n)}, nil
}

func (s *Session) help(args []string) (Result, error) {
	topic := "topics"
	if len(args) > 0 {
		topic = strings.Join(args, " ")
	}
	lesson, err := s.lessons.GetLesson(strings.Fields(topic))
	if err != nil {
		return Result{}, err
	}
	if s.cache != nil {
		CacheLesson(s.cache, strings.ToLower(topic), lesson)
	}
	return Result{Output: "help " + topic, Lesson: lesson}, nil
}
