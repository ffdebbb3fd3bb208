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

package avl

import "cmp"

// Compare is a three-way comparison: negative when a < b, zero when they are
// equal and positive when a > b. It must be a total order; a relation that is
// not transitive or antisymmetric leaves the tree shape undefined.
type Compare[K any] func(a, b K) int

// Tree holds the root node and the number of stored keys.
type Tree[K any] struct {
	root *node[K]
	size int
	cmp  Compare[K]
}

// New returns an empty tree ordered by cmp.
func New[K any](cmp Compare[K]) *Tree[K] {
	if cmp == nil {
		panic("avl: nil compare function")
	}
	return &Tree[K]{cmp: cmp}
}

// NewOrdered returns an empty tree using the natural ordering of K.
func NewOrdered[K cmp.Ordered]() *Tree[K] {
	return New[K](cmp.Compare[K])
}

// Len returns the number of keys in the tree.
func (tree *Tree[K]) Len() int {
	return tree.size
}

// IsEmpty reports whether the tree holds no keys.
func (tree *Tree[K]) IsEmpty() bool {
	return tree.root == nil
}

// Height returns the height of the root, 0 for an empty tree.
func (tree *Tree[K]) Height() int {
	return height(tree.root)
}

// Root returns the key stored at the root.
func (tree *Tree[K]) Root() (K, bool) {
	if tree.root == nil {
		var zero K
		return zero, false
	}
	return tree.root.key, true
}

// Min returns the lowest key.
func (tree *Tree[K]) Min() (K, bool) {
	if tree.root == nil {
		var zero K
		return zero, false
	}
	return tree.root.first().key, true
}

// Max returns the highest key.
func (tree *Tree[K]) Max() (K, bool) {
	if tree.root == nil {
		var zero K
		return zero, false
	}
	return tree.root.last().key, true
}
