package bst

import "cmp"

type node[K cmp.Ordered, V any] struct {
	key         K
	val         V
	left, right *node[K, V]
}

// Tree maps ordered keys to values. It is never rebalanced, so every
// operation is O(depth), which is O(n) in the worst case.
// The zero value is an empty tree; it is not safe for concurrent use.
type Tree[K cmp.Ordered, V any] struct {
	root *node[K, V]
	size int
}

// New returns an empty tree.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// Len returns the number of keys in the tree.
func (that *Tree[K, V]) Len() int {
	return that.size
}

// Put inserts key with val, replacing the value when key is already present.
func (that *Tree[K, V]) Put(key K, val V) {
	that.root = that.put(that.root, key, val)
}

func (that *Tree[K, V]) put(x *node[K, V], key K, val V) *node[K, V] {
	if x == nil {
		that.size++
		return &node[K, V]{key: key, val: val}
	}

	switch c := cmp.Compare(key, x.key); {
	case c < 0:
		x.left = that.put(x.left, key, val)
	case c > 0:
		x.right = that.put(x.right, key, val)
	default:
		x.val = val
	}

	return x
}

// Get returns the value stored under key and whether it was found.
func (that *Tree[K, V]) Get(key K) (V, bool) {
	x := that.root
	for x != nil {
		switch c := cmp.Compare(key, x.key); {
		case c < 0:
			x = x.left
		case c > 0:
			x = x.right
		default:
			return x.val, true
		}
	}

	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (that *Tree[K, V]) Contains(key K) bool {
	_, ok := that.Get(key)
	return ok
}

// Delete removes key from the tree. Deleting an absent key is a no-op.
// A node with two children is replaced by its in-order successor.
func (that *Tree[K, V]) Delete(key K) {
	that.root = that.delete(that.root, key)
}

func (that *Tree[K, V]) delete(x *node[K, V], key K) *node[K, V] {
	if x == nil {
		return nil
	}

	switch c := cmp.Compare(key, x.key); {
	case c < 0:
		x.left = that.delete(x.left, key)
		return x
	case c > 0:
		x.right = that.delete(x.right, key)
		return x
	}

	that.size--

	if x.right == nil {
		return x.left
	}
	if x.left == nil {
		return x.right
	}

	t := x
	x = minNode(t.right)
	x.right = deleteMin(t.right)
	x.left = t.left

	return x
}

func minNode[K cmp.Ordered, V any](x *node[K, V]) *node[K, V] {
	for x.left != nil {
		x = x.left
	}
	return x
}

// deleteMin unlinks the smallest node of the subtree rooted at x.
func deleteMin[K cmp.Ordered, V any](x *node[K, V]) *node[K, V] {
	if x.left == nil {
		return x.right
	}
	x.left = deleteMin(x.left)
	return x
}

// Ceiling returns the smallest key greater than or equal to key.
func (that *Tree[K, V]) Ceiling(key K) (K, bool) {
	var (
		best  K
		found bool
	)

	x := that.root
	for x != nil {
		switch c := cmp.Compare(key, x.key); {
		case c == 0:
			return x.key, true
		case c > 0:
			x = x.right
		default:
			best, found = x.key, true
			x = x.left
		}
	}

	return best, found
}

// Keys returns all keys in ascending order. The slice is a snapshot and is
// not affected by later mutations.
func (that *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, that.size)
	return inorder(that.root, keys)
}

func inorder[K cmp.Ordered, V any](x *node[K, V], keys []K) []K {
	if x == nil {
		return keys
	}
	keys = inorder(x.left, keys)
	keys = append(keys, x.key)
	return inorder(x.right, keys)
}
