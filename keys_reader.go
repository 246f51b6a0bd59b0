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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// readKeys parses integer keys, one or more per line separated by spaces or
// commas. Blank lines and lines starting with '#' are skipped; a '#' after
// keys starts a trailing comment.
func readKeys(r io.Reader) ([]int, error) {
	var keys []int

	scanner := bufio.NewScanner(r)
	// Generated key files can put everything on one very long line
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}

		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ' ' || r == '\t' || r == ','
		})
		for _, field := range fields {
			key, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid key %q", lineNo, field)
			}
			keys = append(keys, key)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

// readKeysFile reads keys from path, or from stdin when path is "-".
func readKeysFile(path string) ([]int, error) {
	if path == "-" {
		return readKeys(os.Stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("keys file %s not found", path)
		}
		return nil, err
	}
	defer file.Close()

	keys, err := readKeys(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return keys, nil
}

// parseKeyArgs converts command arguments into keys.
func parseKeyArgs(args []string) ([]int, error) {
	keys := make([]int, 0, len(args))
	for _, arg := range args {
		key, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid key %q: not an integer", arg)
		}
		keys = append(keys, key)
	}
	return keys, nil
}
