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

// Insert adds key to the tree. Inserting a key that is already present
// leaves the tree unchanged.
func (tree *Tree[K]) Insert(key K) {
	tree.root = tree.insertRecursive(tree.root, key)
}

func (tree *Tree[K]) insertRecursive(node *node[K], key K) *node[K] {
	if node == nil {
		tree.size++
		return newNode(key)
	}

	switch c := tree.cmp(key, node.key); {
	case c < 0:
		node.left = tree.insertRecursive(node.left, key)
	case c > 0:
		node.right = tree.insertRecursive(node.right, key)
	default:
		// duplicate: nothing below changed, the checks below are no-ops
	}

	node.updateHeight()

	// Only the side the key went down can have grown, so the direction of
	// the key relative to the heavy child picks the single or double case.
	balance := balanceFactor(node)
	switch {
	case balance > 1 && tree.cmp(key, node.left.key) < 0:
		return rotateRight(node)
	case balance < -1 && tree.cmp(key, node.right.key) > 0:
		return rotateLeft(node)
	case balance > 1 && tree.cmp(key, node.left.key) > 0:
		// Left-Right case
		node.left = rotateLeft(node.left)
		return rotateRight(node)
	case balance < -1 && tree.cmp(key, node.right.key) < 0:
		// Right-Left case
		node.right = rotateRight(node.right)
		return rotateLeft(node)
	}

	return node
}
