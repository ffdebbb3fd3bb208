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

package replay

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-shellwords"
	"gopkg.in/yaml.v3"
)

// Kind is the tree operation an Op performs.
type Kind string

const (
	KindInsert Kind = "insert"
	KindDelete Kind = "delete"
	KindSearch Kind = "search"
)

// Key modes understood by Open.
const (
	KeyModeInt    = "int"
	KeyModeString = "string"
)

func parseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(s)); k {
	case KindInsert, KindDelete, KindSearch:
		return k, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownOp)
}

// Op is a single operation on one key. Keys stay textual until a Session
// parses them for its key mode.
type Op struct {
	Kind Kind
	Key  string
}

func (op Op) String() string {
	return fmt.Sprintf("%s %s", op.Kind, op.Key)
}

// Expect describes the state a script should leave the tree in.
// Nil fields are not checked.
type Expect struct {
	InOrder []string `yaml:"inorder"`
	Height  *int     `yaml:"height"`
	Root    *string  `yaml:"root"`
	Size    *int     `yaml:"size"`
}

// Script is an ordered list of operations plus optional expectations.
type Script struct {
	Name    string
	KeyMode string
	Ops     []Op
	Expect  *Expect
}

type scriptFile struct {
	Name    string    `yaml:"name"`
	KeyMode string    `yaml:"key_mode"`
	Ops     []opEntry `yaml:"ops"`
	Expect  *Expect   `yaml:"expect"`
}

// opEntry is one item of the ops list: a mapping from verb to a key or a
// list of keys. Several verbs in one item run in the order written.
type opEntry []Op

func (e *opEntry) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: op must be a mapping like {insert: [1, 2]}", value.Line)
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		verb, keys := value.Content[i], value.Content[i+1]
		kind, err := parseKind(verb.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", verb.Line, err)
		}

		var values []string
		switch keys.Kind {
		case yaml.ScalarNode:
			if keys.Tag != "!!null" {
				values = []string{keys.Value}
			}
		case yaml.SequenceNode:
			for _, k := range keys.Content {
				if k.Kind != yaml.ScalarNode {
					return fmt.Errorf("line %d: key must be a scalar: %w", k.Line, ErrBadKey)
				}
				values = append(values, k.Value)
			}
		}
		if len(values) == 0 {
			return fmt.Errorf("line %d: %s: %w", verb.Line, kind, ErrNoKeys)
		}
		for _, v := range values {
			*e = append(*e, Op{Kind: kind, Key: v})
		}
	}
	return nil
}

// ParseYAML decodes a YAML script.
func ParseYAML(data []byte) (*Script, error) {
	var file scriptFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode script: %w", err)
	}

	script := &Script{
		Name:    file.Name,
		KeyMode: file.KeyMode,
		Expect:  file.Expect,
	}
	for _, entry := range file.Ops {
		script.Ops = append(script.Ops, entry...)
	}
	return script, nil
}

// ParseLine tokenises one command such as `insert 3 10 8` or
// `delete "two words"` into operations.
func ParseLine(line string) ([]Op, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %w", line, err)
	}
	if len(args) == 0 {
		return nil, nil
	}

	kind, err := parseKind(args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		return nil, fmt.Errorf("%s: %w", kind, ErrNoKeys)
	}

	ops := make([]Op, 0, len(args)-1)
	for _, key := range args[1:] {
		ops = append(ops, Op{Kind: kind, Key: key})
	}
	return ops, nil
}

// ParseText reads a plain script: one command per line, blank lines and
// lines starting with # ignored. A `mode <int|string>` line sets the key mode.
func ParseText(r io.Reader) (*Script, error) {
	script := &Script{}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if fields := strings.Fields(line); fields[0] == "mode" {
			if len(fields) != 2 {
				return nil, fmt.Errorf("line %d: mode takes one argument: %w", lineNo, ErrKeyMode)
			}
			script.KeyMode = fields[1]
			continue
		}

		ops, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		script.Ops = append(script.Ops, ops...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return script, nil
}

// Load reads a script file. Files ending in .yaml or .yml are YAML, anything
// else is the plain line format. A missing name defaults to the file name.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var script *Script
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		script, err = ParseYAML(data)
	default:
		script, err = ParseText(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if script.Name == "" {
		script.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return script, nil
}
