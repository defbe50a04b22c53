package bst

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_PutGet(t *testing.T) {
	t.Run("Get returns the value that was put", func(t *testing.T) {
		// Given: a tree with a few keys
		tree := New[int, string]()
		tree.Put(5, "five")
		tree.Put(2, "two")
		tree.Put(8, "eight")

		// When: looking a key up
		val, ok := tree.Get(2)

		// Then: the stored value is returned
		require.True(t, ok)
		assert.Equal(t, "two", val)
		assert.Equal(t, 3, tree.Len())
	})

	t.Run("Put overwrites an existing key", func(t *testing.T) {
		// Given: a tree holding key 1
		tree := New[int, string]()
		tree.Put(1, "old")

		// When: the same key is put again
		tree.Put(1, "new")

		// Then: the value is replaced and the size does not grow
		val, ok := tree.Get(1)
		require.True(t, ok)
		assert.Equal(t, "new", val)
		assert.Equal(t, 1, tree.Len())
	})

	t.Run("Get reports absence", func(t *testing.T) {
		// Given: an empty tree
		tree := New[int, []string]()

		// When: looking a key up
		val, ok := tree.Get(42)

		// Then: nothing is found
		assert.False(t, ok)
		assert.Nil(t, val)
		assert.False(t, tree.Contains(42))
	})
}

func TestTree_Delete(t *testing.T) {
	build := func(keys ...int) *Tree[int, int] {
		tree := New[int, int]()
		for _, k := range keys {
			tree.Put(k, k*10)
		}
		return tree
	}

	t.Run("Deletes a leaf", func(t *testing.T) {
		tree := build(5, 3, 7)

		tree.Delete(3)

		assert.Equal(t, []int{5, 7}, tree.Keys())
		assert.False(t, tree.Contains(3))
	})

	t.Run("Deletes a node with one child", func(t *testing.T) {
		tree := build(5, 3, 2)

		tree.Delete(3)

		assert.Equal(t, []int{2, 5}, tree.Keys())
		val, ok := tree.Get(2)
		require.True(t, ok)
		assert.Equal(t, 20, val)
	})

	t.Run("Deletes a node with two children using its successor", func(t *testing.T) {
		// Given: a root with two subtrees, the successor 6 has a right child
		tree := build(5, 3, 8, 6, 9, 7)

		// When: the root is deleted
		tree.Delete(5)

		// Then: order and values survive
		assert.Equal(t, []int{3, 6, 7, 8, 9}, tree.Keys())
		assert.Equal(t, 5, tree.Len())
		for _, k := range []int{3, 6, 7, 8, 9} {
			val, ok := tree.Get(k)
			require.True(t, ok)
			assert.Equal(t, k*10, val)
		}
	})

	t.Run("Deleting an absent key is a no-op", func(t *testing.T) {
		tree := build(1, 2)

		tree.Delete(3)
		New[int, int]().Delete(3)

		assert.Equal(t, []int{1, 2}, tree.Keys())
		assert.Equal(t, 2, tree.Len())
	})
}

func TestTree_Ceiling(t *testing.T) {
	// Given: keys 10, 20, 30
	tree := New[int, struct{}]()
	for _, k := range []int{20, 10, 30} {
		tree.Put(k, struct{}{})
	}

	tests := []struct {
		name  string
		key   int
		want  int
		found bool
	}{
		{name: "exact match", key: 20, want: 20, found: true},
		{name: "between keys", key: 11, want: 20, found: true},
		{name: "below minimum", key: -5, want: 10, found: true},
		{name: "above maximum", key: 31, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tree.Ceiling(tt.key)

			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTree_KeysStayOrdered(t *testing.T) {
	// Given: a random sequence of puts and deletes
	rnd := rand.New(rand.NewSource(7))
	tree := New[int, int]()
	present := map[int]bool{}

	for i := 0; i < 2000; i++ {
		k := rnd.Intn(64)
		if rnd.Intn(3) == 0 {
			tree.Delete(k)
			delete(present, k)
		} else {
			tree.Put(k, i)
			present[k] = true
		}

		// Then: keys are strictly ascending and match the reference set
		keys := tree.Keys()
		require.True(t, slices.IsSorted(keys))
		for j := 1; j < len(keys); j++ {
			require.Less(t, keys[j-1], keys[j])
		}
		require.Len(t, keys, len(present))
		require.Equal(t, len(present), tree.Len())
	}
}

func TestTree_KeysIsSnapshot(t *testing.T) {
	tree := New[int, int]()
	tree.Put(1, 1)
	tree.Put(2, 2)

	keys := tree.Keys()
	tree.Put(3, 3)
	tree.Delete(1)

	assert.Equal(t, []int{1, 2}, keys)
}
