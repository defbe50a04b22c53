package hashtable

import "github.com/cespare/xxhash/v2"

const DefaultBuckets = 16

type entry[K ~string, V any] struct {
	key  K
	val  V
	next *entry[K, V]
}

// Table is a separate-chaining hash table. The bucket count is fixed at
// construction and never grows, so it only suits small key sets.
// A Table is not safe for concurrent use.
type Table[K ~string, V any] struct {
	buckets []*entry[K, V]
	size    int
}

// New returns a table with the given number of buckets. A non-positive count
// falls back to DefaultBuckets.
func New[K ~string, V any](buckets int) *Table[K, V] {
	if buckets <= 0 {
		buckets = DefaultBuckets
	}

	return &Table[K, V]{
		buckets: make([]*entry[K, V], buckets),
	}
}

func (that *Table[K, V]) index(key K) int {
	return int(xxhash.Sum64String(string(key)) % uint64(len(that.buckets)))
}

// Put stores val under key, overwriting an existing value in place.
// The empty key is ignored.
func (that *Table[K, V]) Put(key K, val V) {
	if key == "" {
		return
	}

	i := that.index(key)
	for x := that.buckets[i]; x != nil; x = x.next {
		if x.key == key {
			x.val = val
			return
		}
	}

	that.buckets[i] = &entry[K, V]{key: key, val: val, next: that.buckets[i]}
	that.size++
}

// Get returns the value stored under key and whether it was found.
func (that *Table[K, V]) Get(key K) (V, bool) {
	if key != "" {
		for x := that.buckets[that.index(key)]; x != nil; x = x.next {
			if x.key == key {
				return x.val, true
			}
		}
	}

	var zero V
	return zero, false
}

func (that *Table[K, V]) Contains(key K) bool {
	_, ok := that.Get(key)
	return ok
}

func (that *Table[K, V]) Len() int {
	return that.size
}

// Keys returns every key, bucket by bucket in chain order.
func (that *Table[K, V]) Keys() []K {
	keys := make([]K, 0, that.size)
	for _, head := range that.buckets {
		for x := head; x != nil; x = x.next {
			keys = append(keys, x.key)
		}
	}
	return keys
}
