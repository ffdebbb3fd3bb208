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
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// worst case AVL height for n keys
func heightBound(n int) float64 {
	return 1.44 * math.Log2(float64(n+2))
}

func TestRandomOperationsKeepInvariants(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3, 42, 1337} {
		rng := rand.New(rand.NewPCG(seed, seed))
		tree := NewOrdered[int]()
		reference := make(map[int]struct{})

		for i := 0; i < 2000; i++ {
			key := rng.IntN(500)
			if rng.IntN(3) == 0 {
				_, present := reference[key]
				before := tree.Keys()
				removed := tree.Delete(key)
				require.Equal(t, present, removed, "seed %d step %d: Delete(%d)", seed, i, key)
				if !removed {
					require.Equal(t, before, tree.Keys(), "absent delete changed the tree")
				}
				delete(reference, key)
			} else {
				tree.Insert(key)
				reference[key] = struct{}{}
			}

			require.NoError(t, tree.Check(), "seed %d step %d", seed, i)
			require.Equal(t, len(reference), tree.Len())
			require.LessOrEqual(t, float64(tree.Height()), heightBound(tree.Len()))
		}

		want := make([]int, 0, len(reference))
		for key := range reference {
			want = append(want, key)
		}
		slices.Sort(want)
		assert.Equal(t, want, tree.Keys())
		assert.Len(t, slices.Collect(tree.InOrder()), tree.Len())
	}
}

func TestHeightBoundAscending(t *testing.T) {
	tree := NewOrdered[int]()
	for n := 1; n <= 4096; n++ {
		tree.Insert(n)
		require.LessOrEqual(t, float64(tree.Height()), heightBound(n), "after %d inserts", n)
	}
	// a full tree of 2^12-1 keys plus one
	assert.Equal(t, 13, tree.Height())
	require.NoError(t, tree.Check())
}

func TestDeleteEveryPrefix(t *testing.T) {
	keys := []int{8133, 2136, 9651, 4079, 1042, 3579, 3630, 1427, 5843, 9549,
		5433, 1274, 9034, 4724, 6179, 5072, 9272, 4030, 4205, 3363}

	for i := 0; i <= len(keys); i++ {
		tree := NewOrdered[int]()
		for _, key := range keys {
			tree.Insert(key)
		}
		for _, key := range keys[:i] {
			require.True(t, tree.Delete(key))
			require.NoError(t, tree.Check())
		}
		for _, key := range keys[:i] {
			assert.False(t, tree.Search(key))
		}
		for _, key := range keys[i:] {
			assert.True(t, tree.Search(key))
		}
		for _, key := range keys[i:] {
			require.True(t, tree.Delete(key))
		}
		assert.True(t, tree.IsEmpty())
		assert.Zero(t, tree.Len())
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	build := func() *Tree[int] {
		tree := NewOrdered[int]()
		for key := 1; key <= 7; key++ {
			tree.Insert(key)
		}
		return tree
	}

	tree := build()
	tree.root.left.key = 100
	assert.True(t, errors.Is(tree.Check(), ErrOrder))

	tree = build()
	tree.root.height = 9
	assert.True(t, errors.Is(tree.Check(), ErrHeight))

	tree = build()
	tree.size = 3
	assert.True(t, errors.Is(tree.Check(), ErrSize))

	// a left chain with correct heights but no balance
	chain := &node[int]{key: 3, height: 3, left: &node[int]{key: 2, height: 2, left: newNode(1)}}
	tree = &Tree[int]{root: chain, size: 3, cmp: tree.cmp}
	assert.True(t, errors.Is(tree.Check(), ErrBalance))
}

func TestRotationsRecomputeHeights(t *testing.T) {
	// (1 a (2 b (3)))
	n := &node[int]{key: 1, height: 3, right: &node[int]{key: 2, height: 2, right: newNode(3)}}
	top := rotateLeft(n)
	require.Equal(t, 2, top.key)
	assert.Equal(t, 2, top.height)
	assert.Equal(t, 1, top.left.height)
	assert.Equal(t, 1, top.right.height)

	back := rotateRight(top)
	require.Equal(t, 1, back.key)
	assert.Equal(t, 3, back.height)
	assert.Equal(t, 2, back.right.height)
}
