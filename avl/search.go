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

// Search reports whether key is stored in the tree.
func (tree *Tree[K]) Search(key K) bool {
	return tree.searchNode(tree.root, key)
}

func (tree *Tree[K]) searchNode(node *node[K], key K) bool {
	if node == nil {
		return false
	}

	switch c := tree.cmp(key, node.key); {
	case c < 0:
		return tree.searchNode(node.left, key)
	case c > 0:
		return tree.searchNode(node.right, key)
	default:
		return true
	}
}
