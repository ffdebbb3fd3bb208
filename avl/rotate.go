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

// rotateLeft turns (n a (p b c)) into (p (n a b) c) and returns p.
// Only n and p change their subtree sets, so only their heights are recomputed.
func rotateLeft[K any](n *node[K]) *node[K] {
	pivot := n.right

	n.right = pivot.left
	pivot.left = n

	n.updateHeight()
	pivot.updateHeight()

	return pivot
}

// rotateRight turns (n (p a b) c) into (p a (n b c)) and returns p.
func rotateRight[K any](n *node[K]) *node[K] {
	pivot := n.left

	n.left = pivot.right
	pivot.right = n

	n.updateHeight()
	pivot.updateHeight()

	return pivot
}
