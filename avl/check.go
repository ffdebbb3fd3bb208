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

import "fmt"

// Check walks the whole tree and verifies key order, stored heights, the
// balance condition and the size counter. It returns the first violation
// found, wrapping one of ErrOrder, ErrHeight, ErrBalance or ErrSize.
func (tree *Tree[K]) Check() error {
	count, err := tree.checkNode(tree.root, nil, nil)
	if err != nil {
		return err
	}
	if count != tree.size {
		return fmt.Errorf("counted %d nodes, size is %d: %w", count, tree.size, ErrSize)
	}
	return nil
}

// lo and hi are the exclusive bounds inherited from the ancestors, nil when open
func (tree *Tree[K]) checkNode(node *node[K], lo, hi *K) (int, error) {
	if node == nil {
		return 0, nil
	}
	if lo != nil && tree.cmp(node.key, *lo) <= 0 {
		return 0, fmt.Errorf("key %v not above %v: %w", node.key, *lo, ErrOrder)
	}
	if hi != nil && tree.cmp(node.key, *hi) >= 0 {
		return 0, fmt.Errorf("key %v not below %v: %w", node.key, *hi, ErrOrder)
	}

	nl, err := tree.checkNode(node.left, lo, &node.key)
	if err != nil {
		return 0, err
	}
	nr, err := tree.checkNode(node.right, &node.key, hi)
	if err != nil {
		return 0, err
	}

	if want := max(height(node.left), height(node.right)) + 1; node.height != want {
		return 0, fmt.Errorf("key %v has height %d, want %d: %w", node.key, node.height, want, ErrHeight)
	}
	if balance := balanceFactor(node); balance > 1 || balance < -1 {
		return 0, fmt.Errorf("key %v has balance %+d: %w", node.key, balance, ErrBalance)
	}
	return nl + nr + 1, nil
}
