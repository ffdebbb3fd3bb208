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

// a node owns its two subtrees outright
type node[K any] struct {
	key    K
	height int // 1 for a leaf
	left   *node[K]
	right  *node[K]
}

func newNode[K any](key K) *node[K] {
	return &node[K]{key: key, height: 1}
}

func height[K any](n *node[K]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *node[K]) updateHeight() {
	n.height = max(height(n.left), height(n.right)) + 1
}

// balanceFactor is height(left) - height(right); an absent node counts as balanced.
func balanceFactor[K any](n *node[K]) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

// lowest node in a sub-tree
func (n *node[K]) first() *node[K] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// highest node in a sub-tree
func (n *node[K]) last() *node[K] {
	for n.right != nil {
		n = n.right
	}
	return n
}
