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
	"cmp"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cybrota/balancedtree/avl"
	"github.com/patrickmn/go-cache"
	"github.com/willf/bloom"
)

const (
	// Renders are keyed by revision, so an entry never goes stale; expiry
	// only bounds memory for long interactive sessions.
	renderCacheExpiration = 10 * time.Minute
	renderCacheCleanup    = 2 * time.Minute
)

// Options tune a Session.
type Options struct {
	CheckEachStep bool // run Tree.Check after every operation
	FilterSize    uint // bits in the search prefilter
	FilterHashes  uint // hash functions in the search prefilter
}

func DefaultOptions() Options {
	return Options{
		CheckEachStep: true,
		FilterSize:    1 << 16,
		FilterHashes:  4,
	}
}

// Step is the outcome of one applied operation.
type Step struct {
	Index  int
	Op     Op
	Result bool // inserted, removed or found
	Height int
	Size   int
}

func (s Step) String() string {
	return fmt.Sprintf("#%d %-6s %-8s -> %-5t height=%d size=%d", s.Index, s.Op.Kind, s.Op.Key, s.Result, s.Height, s.Size)
}

// Summary is the tree state with keys in their textual form.
type Summary struct {
	InOrder []string
	Height  int
	Size    int
	Root    string
	HasRoot bool
}

// Runner is what callers need from a Session regardless of its key type.
type Runner interface {
	Apply(op Op) (Step, error)
	Run(ctx context.Context, ops []Op, onStep func(Step)) error
	Verify(expect *Expect) error
	Summary() Summary
	Render() string
	PrefilterHits() int
}

// Session replays operations against a tree of K. Searches first consult a
// bloom filter of every key ever inserted; deletes leave keys in the filter,
// which only makes it answer "maybe" more often.
type Session[K any] struct {
	tree    *avl.Tree[K]
	parse   func(string) (K, error)
	format  func(K) string
	filter  *bloom.BloomFilter
	renders *cache.Cache
	opts    Options

	steps         int
	revision      uint64
	prefilterHits int
}

// NewSession builds a session from a key order and the conversions between
// keys and their text form.
func NewSession[K any](compare avl.Compare[K], parse func(string) (K, error), format func(K) string, opts Options) *Session[K] {
	return &Session[K]{
		tree:    avl.New(compare),
		parse:   parse,
		format:  format,
		filter:  bloom.New(opts.FilterSize, opts.FilterHashes),
		renders: cache.New(renderCacheExpiration, renderCacheCleanup),
		opts:    opts,
	}
}

// NewIntSession orders keys numerically.
func NewIntSession(opts Options) *Session[int] {
	parse := func(s string) (int, error) {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, fmt.Errorf("%q: %w", s, ErrBadKey)
		}
		return n, nil
	}
	return NewSession[int](cmp.Compare[int], parse, strconv.Itoa, opts)
}

// NewStringSession orders keys lexicographically.
func NewStringSession(opts Options) *Session[string] {
	parse := func(s string) (string, error) { return s, nil }
	format := func(s string) string { return s }
	return NewSession[string](strings.Compare, parse, format, opts)
}

// Open returns a session for the script's key mode; an empty mode means int.
func Open(script *Script, opts Options) (Runner, error) {
	switch script.KeyMode {
	case "", KeyModeInt:
		return NewIntSession(opts), nil
	case KeyModeString:
		return NewStringSession(opts), nil
	}
	return nil, fmt.Errorf("%q: %w", script.KeyMode, ErrKeyMode)
}

// Tree exposes the underlying tree for read-only inspection.
func (s *Session[K]) Tree() *avl.Tree[K] {
	return s.tree
}

// Apply runs one operation.
func (s *Session[K]) Apply(op Op) (Step, error) {
	key, err := s.parse(op.Key)
	if err != nil {
		return Step{}, fmt.Errorf("%s: %w", op, err)
	}
	canonical := s.format(key)

	var result bool
	switch op.Kind {
	case KindInsert:
		before := s.tree.Len()
		s.tree.Insert(key)
		result = s.tree.Len() != before
		if result {
			s.filter.AddString(canonical)
			s.revision++
		}
	case KindDelete:
		result = s.tree.Delete(key)
		if result {
			s.revision++
		}
	case KindSearch:
		if !s.filter.TestString(canonical) {
			s.prefilterHits++
			break
		}
		result = s.tree.Search(key)
	default:
		return Step{}, fmt.Errorf("%q: %w", op.Kind, ErrUnknownOp)
	}

	s.steps++
	step := Step{
		Index:  s.steps,
		Op:     op,
		Result: result,
		Height: s.tree.Height(),
		Size:   s.tree.Len(),
	}

	if s.opts.CheckEachStep {
		if err := s.tree.Check(); err != nil {
			return step, fmt.Errorf("step %d (%s): %w", step.Index, op, err)
		}
	}
	return step, nil
}

// Run applies ops in order, calling onStep after each one. It stops at the
// first error or when ctx is done.
func (s *Session[K]) Run(ctx context.Context, ops []Op, onStep func(Step)) error {
	for _, op := range ops {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		step, err := s.Apply(op)
		if err != nil {
			return err
		}
		if onStep != nil {
			onStep(step)
		}
	}
	return nil
}

func (s *Session[K]) Summary() Summary {
	summary := Summary{
		InOrder: make([]string, 0, s.tree.Len()),
		Height:  s.tree.Height(),
		Size:    s.tree.Len(),
	}
	for key := range s.tree.InOrder() {
		summary.InOrder = append(summary.InOrder, s.format(key))
	}
	if root, ok := s.tree.Root(); ok {
		summary.Root = s.format(root)
		summary.HasRoot = true
	}
	return summary
}

// Render returns the tree drawing for the current revision, reusing the
// previous drawing when nothing changed since.
func (s *Session[K]) Render() string {
	key := strconv.FormatUint(s.revision, 10)
	if val, ok := s.renders.Get(key); ok {
		return val.(string)
	}
	drawing := s.tree.String()
	s.renders.Set(key, drawing, cache.DefaultExpiration)
	return drawing
}

// PrefilterHits counts searches answered by the bloom filter alone.
func (s *Session[K]) PrefilterHits() int {
	return s.prefilterHits
}
