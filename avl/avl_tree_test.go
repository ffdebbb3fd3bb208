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
	"slices"
	"strings"
	"testing"
)

type AVLTestCase struct {
	Name           string
	InitialKeys    []string
	KeysToInsert   []string
	KeysToDelete   []string
	ExpectedOrder  []string // In-order traversal expectation after operations
	ExpectedRoot   string
	ExpectedHeight int
}

func TestAVLTreeOperations(t *testing.T) {
	testCases := []AVLTestCase{
		{
			Name:           "Simple Insertion",
			KeysToInsert:   []string{"apple", "banana", "cherry"},
			ExpectedOrder:  []string{"apple", "banana", "cherry"},
			ExpectedRoot:   "banana",
			ExpectedHeight: 2,
		},
		{
			Name:           "Insertion with Balancing (Left-Heavy)",
			InitialKeys:    []string{"cherry"},
			KeysToInsert:   []string{"banana", "apple"},
			ExpectedOrder:  []string{"apple", "banana", "cherry"},
			ExpectedRoot:   "banana",
			ExpectedHeight: 2,
		},
		{
			Name:           "Insertion with Balancing (Left-Right)",
			InitialKeys:    []string{"cherry"},
			KeysToInsert:   []string{"apple", "banana"},
			ExpectedOrder:  []string{"apple", "banana", "cherry"},
			ExpectedRoot:   "banana",
			ExpectedHeight: 2,
		},
		{
			Name:           "Deletion with Balancing (Right-Heavy)",
			InitialKeys:    []string{"banana", "apple", "cherry", "date"},
			KeysToDelete:   []string{"apple"},
			ExpectedOrder:  []string{"banana", "cherry", "date"},
			ExpectedRoot:   "cherry",
			ExpectedHeight: 2,
		},
		{
			Name:           "Deletion with Balancing (Right-Left)",
			InitialKeys:    []string{"banana", "apple", "date", "cherry"},
			KeysToDelete:   []string{"apple"},
			ExpectedOrder:  []string{"banana", "cherry", "date"},
			ExpectedRoot:   "cherry",
			ExpectedHeight: 2,
		},
		{
			Name:           "Mixed Operations",
			InitialKeys:    []string{"dog", "cat"},
			KeysToInsert:   []string{"elephant", "bird"},
			KeysToDelete:   []string{"cat"},
			ExpectedOrder:  []string{"bird", "dog", "elephant"},
			ExpectedRoot:   "dog",
			ExpectedHeight: 2,
		},
		{
			Name:           "Delete Root With Two Children",
			InitialKeys:    []string{"dog", "cat", "elephant"},
			KeysToDelete:   []string{"dog"},
			ExpectedOrder:  []string{"cat", "elephant"},
			ExpectedRoot:   "cat",
			ExpectedHeight: 2,
		},
		{
			Name:           "Delete Everything",
			InitialKeys:    []string{"dog", "cat", "elephant"},
			KeysToDelete:   []string{"elephant", "cat", "dog"},
			ExpectedOrder:  []string{},
			ExpectedHeight: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := NewOrdered[string]()
			for _, key := range tc.InitialKeys {
				tree.Insert(key)
			}
			for _, key := range tc.KeysToInsert {
				tree.Insert(key)
			}
			for _, key := range tc.KeysToDelete {
				if !tree.Delete(key) {
					t.Errorf("Delete(%q) = false; want true", key)
				}
			}

			if !verifyInOrderTraversal(t, tree, tc.ExpectedOrder) {
				t.Errorf("In-order traversal mismatch for test case '%s'", tc.Name)
			}
			if root, ok := tree.Root(); ok && root != tc.ExpectedRoot {
				t.Errorf("Root() = %q; want %q", root, tc.ExpectedRoot)
			}
			if got := tree.Height(); got != tc.ExpectedHeight {
				t.Errorf("Height() = %d; want %d", got, tc.ExpectedHeight)
			}
			if err := tree.Check(); err != nil {
				t.Errorf("Check() = %v", err)
			}
		})
	}
}

func verifyInOrderTraversal(t *testing.T, tree *Tree[string], expected []string) bool {
	t.Helper()
	actual := tree.Keys()
	if len(actual) != len(expected) {
		t.Logf("Length mismatch. Expected %d elements, got %d", len(expected), len(actual))
		return false
	}
	for i := range expected {
		if actual[i] != expected[i] {
			t.Logf("Mismatch at index %d. Expected '%s', got '%s'", i, expected[i], actual[i])
			return false
		}
	}
	return true
}

func TestRightLeftScenario(t *testing.T) {
	tree := NewOrdered[int]()
	for _, key := range []int{3, 10, 8} {
		tree.Insert(key)
	}

	if got := tree.Keys(); !slices.Equal(got, []int{3, 8, 10}) {
		t.Fatalf("Keys() = %v; want [3 8 10]", got)
	}
	if root, _ := tree.Root(); root != 8 {
		t.Errorf("Root() = %d; want 8", root)
	}
	if tree.root.left.key != 3 || tree.root.right.key != 10 {
		t.Errorf("children = %d, %d; want 3, 10", tree.root.left.key, tree.root.right.key)
	}
	if got := tree.Height(); got != 2 {
		t.Errorf("Height() = %d; want 2", got)
	}

	t.Run("delete absent", func(t *testing.T) {
		before := tree.String()
		if tree.Delete(99) {
			t.Errorf("Delete(99) = true; want false")
		}
		if after := tree.String(); after != before {
			t.Errorf("tree changed after absent delete:\n%s\nwas:\n%s", after, before)
		}
		if tree.Len() != 3 {
			t.Errorf("Len() = %d; want 3", tree.Len())
		}
	})

	t.Run("delete root", func(t *testing.T) {
		if !tree.Delete(8) {
			t.Fatalf("Delete(8) = false; want true")
		}
		if got := tree.Keys(); !slices.Equal(got, []int{3, 10}) {
			t.Errorf("Keys() = %v; want [3 10]", got)
		}
		if tree.Len() != 2 {
			t.Errorf("Len() = %d; want 2", tree.Len())
		}
		if err := tree.Check(); err != nil {
			t.Errorf("Check() = %v", err)
		}
	})
}

func TestAscendingInsertBalances(t *testing.T) {
	tree := NewOrdered[int]()
	for key := 1; key <= 7; key++ {
		tree.Insert(key)
	}
	if got := tree.Height(); got != 3 {
		t.Errorf("Height() = %d; want 3", got)
	}
	if root, _ := tree.Root(); root != 4 {
		t.Errorf("Root() = %d; want 4", root)
	}
}

func TestDuplicateInsert(t *testing.T) {
	tree := NewOrdered[int]()
	for _, key := range []int{5, 2, 8, 1, 9} {
		tree.Insert(key)
	}
	shape := tree.String()
	for _, key := range []int{5, 2, 8, 1, 9} {
		tree.Insert(key)
	}
	if tree.Len() != 5 {
		t.Errorf("Len() = %d; want 5", tree.Len())
	}
	if got := tree.String(); got != shape {
		t.Errorf("shape changed after duplicate inserts:\n%s\nwas:\n%s", got, shape)
	}
}

func TestSearch(t *testing.T) {
	tree := NewOrdered[int]()
	for _, key := range []int{50, 30, 70, 20, 40, 60, 80} {
		tree.Insert(key)
	}
	for _, key := range []int{50, 30, 70, 20, 40, 60, 80} {
		if !tree.Search(key) {
			t.Errorf("Search(%d) = false; want true", key)
		}
	}
	for _, key := range []int{0, 25, 55, 90} {
		if tree.Search(key) {
			t.Errorf("Search(%d) = true; want false", key)
		}
	}
	if NewOrdered[int]().Search(1) {
		t.Errorf("Search on empty tree = true")
	}
}

func TestCustomCompare(t *testing.T) {
	// descending order
	tree := New[int](func(a, b int) int { return b - a })
	for _, key := range []int{1, 2, 3, 4, 5} {
		tree.Insert(key)
	}
	if got := tree.Keys(); !slices.Equal(got, []int{5, 4, 3, 2, 1}) {
		t.Errorf("Keys() = %v; want [5 4 3 2 1]", got)
	}

	// case-insensitive strings treat "Go" and "go" as the same key
	folded := New[string](func(a, b string) int { return strings.Compare(strings.ToLower(a), strings.ToLower(b)) })
	folded.Insert("Go")
	folded.Insert("go")
	if folded.Len() != 1 {
		t.Errorf("Len() = %d; want 1", folded.Len())
	}
	if !folded.Search("GO") {
		t.Errorf(`Search("GO") = false; want true`)
	}
}

func TestNewNilCompare(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("New(nil) did not panic")
		}
	}()
	New[int](nil)
}

func TestMinMax(t *testing.T) {
	tree := NewOrdered[int]()
	if _, ok := tree.Min(); ok {
		t.Errorf("Min() on empty tree reported a key")
	}
	if _, ok := tree.Max(); ok {
		t.Errorf("Max() on empty tree reported a key")
	}
	for _, key := range []int{42, 7, 99, 13} {
		tree.Insert(key)
	}
	if got, _ := tree.Min(); got != 7 {
		t.Errorf("Min() = %d; want 7", got)
	}
	if got, _ := tree.Max(); got != 99 {
		t.Errorf("Max() = %d; want 99", got)
	}
}

func TestInOrderEarlyStop(t *testing.T) {
	tree := NewOrdered[int]()
	for key := 1; key <= 20; key++ {
		tree.Insert(key)
	}
	var got []int
	for key := range tree.InOrder() {
		if key > 5 {
			break
		}
		got = append(got, key)
	}
	if !slices.Equal(got, []int{1, 2, 3, 4, 5}) {
		t.Errorf("early stop collected %v", got)
	}

	// restartable
	if n := len(slices.Collect(tree.InOrder())); n != 20 {
		t.Errorf("second walk saw %d keys; want 20", n)
	}
}

func TestString(t *testing.T) {
	tree := NewOrdered[int]()
	for _, key := range []int{2, 1, 3} {
		tree.Insert(key)
	}
	want := "    3\n2\n    1\n"
	if got := tree.String(); got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
	if got := NewOrdered[int]().String(); got != "" {
		t.Errorf("String() on empty tree = %q", got)
	}
}
