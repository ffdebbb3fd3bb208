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

// Package avl is a height balanced binary search tree of unique keys.
//
// Keys are ordered by a caller supplied three-way comparison. Every node
// stores the height of its subtree (a leaf has height 1, an absent subtree
// height 0) and after each insert or delete the heights of both children of
// every node differ by at most one, so the tree height stays O(log n).
//
// Nodes have no parent pointers. Mutations descend recursively and each call
// returns the possibly rotated root of its subtree for the caller to reattach.
//
// A Tree is not safe for concurrent use. Callers that share a tree between
// goroutines must hold a mutex across every call.
package avl
