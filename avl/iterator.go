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

import "iter"

// InOrder returns the keys in ascending order. Each call starts a fresh
// walk; the tree must not be modified while a walk is in progress.
func (tree *Tree[K]) InOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		inOrder(tree.root, yield)
	}
}

// returns false once yield asks to stop
func inOrder[K any](node *node[K], yield func(K) bool) bool {
	if node == nil {
		return true
	}
	return inOrder(node.left, yield) && yield(node.key) && inOrder(node.right, yield)
}

// Keys returns all keys in ascending order.
func (tree *Tree[K]) Keys() []K {
	keys := make([]K, 0, tree.size)
	for key := range tree.InOrder() {
		keys = append(keys, key)
	}
	return keys
}
