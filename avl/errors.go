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

import "errors"

// Errors reported by Check. Insert, Delete and Search never fail.
var (
	ErrOrder   = errors.New("avl: keys out of order")
	ErrBalance = errors.New("avl: subtree heights differ by more than one")
	ErrHeight  = errors.New("avl: stored height is stale")
	ErrSize    = errors.New("avl: size does not match node count")
)
