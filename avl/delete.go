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

// Delete removes key from the tree and reports whether it was present.
func (tree *Tree[K]) Delete(key K) bool {
	before := tree.size
	tree.root = tree.deleteRecursive(tree.root, key)
	return tree.size != before
}

func (tree *Tree[K]) deleteRecursive(node *node[K], key K) *node[K] {
	if node == nil {
		return nil // key not found
	}

	switch c := tree.cmp(key, node.key); {
	case c < 0:
		node.left = tree.deleteRecursive(node.left, key)
	case c > 0:
		node.right = tree.deleteRecursive(node.right, key)
	default:
		if node.left == nil {
			tree.size--
			return node.right
		}
		if node.right == nil {
			tree.size--
			return node.left
		}
		// Two children: move the predecessor's key up and remove it from
		// the left subtree, which splices out a node with no right child.
		pred := node.left.last()
		node.key = pred.key
		node.left = tree.deleteRecursive(node.left, pred.key)
	}

	node.updateHeight()
	return rebalance(node)
}

// rebalance restores the height invariant at node after a removal below it.
// The shrunken side says nothing about which grandchild is heavy, so the
// heavy child's own balance factor chooses between single and double rotation.
func rebalance[K any](node *node[K]) *node[K] {
	balance := balanceFactor(node)

	// Left-heavy
	if balance > 1 {
		if balanceFactor(node.left) >= 0 {
			return rotateRight(node)
		}
		node.left = rotateLeft(node.left)
		return rotateRight(node)
	}

	// Right-heavy
	if balance < -1 {
		if balanceFactor(node.right) <= 0 {
			return rotateLeft(node)
		}
		node.right = rotateRight(node.right)
		return rotateLeft(node)
	}

	return node
}
