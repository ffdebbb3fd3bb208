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

import (
	"fmt"
	"strings"
)

const indentWidth = 4

// String renders the shape of the tree sideways: the right subtree above a
// node, the left subtree below it, each level indented by four spaces.
// Reading the lines top to bottom gives the keys in descending order.
func (tree *Tree[K]) String() string {
	var sb strings.Builder
	printTree(&sb, tree.root, 0)
	return sb.String()
}

func printTree[K any](sb *strings.Builder, node *node[K], level int) {
	if node == nil {
		return
	}
	printTree(sb, node.right, level+1)
	sb.WriteString(strings.Repeat(" ", indentWidth*level))
	fmt.Fprintf(sb, "%v\n", node.key)
	printTree(sb, node.left, level+1)
}
