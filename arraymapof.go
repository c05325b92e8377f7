package chainmap

import (
	"fmt"
	"iter"
	"strings"
)

// DefaultArrayMapCapacity is the number of slots a zero-value ArrayMapOf
// allocates on its first insertion.
const DefaultArrayMapCapacity = 11

// ArrayMapOf is a map backed by a single growable array of entries.
//
// Lookups scan the populated prefix of the array, so every operation is
// O(n) in the number of entries. ChainedMapOf uses it as the chain for one
// hash slot, where n stays small.
//
// Properties:
//   - The first Size() slots are populated, the rest hold the zero entry.
//   - Storage doubles when an insertion finds it full; existing entries keep
//     their positions.
//   - Removal moves the last entry into the freed slot. Physical order is
//     therefore insertion order only until the first removal.
//
// The zero value is an empty map ready to use.
// ArrayMapOf is not safe for concurrent use.
type ArrayMapOf[K comparable, V any] struct {
	entries []EntryOf[K, V]
	size    int
	initCap int
}

// NewArrayMapOf creates an ArrayMapOf with room for capacity entries
// before its first growth.
func NewArrayMapOf[K comparable, V any](capacity int) (*ArrayMapOf[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: array map capacity must be positive, got %d",
			ErrInvalidArgument, capacity)
	}
	return newArrayMapOf[K, V](capacity), nil
}

// newArrayMapOf skips validation; callers pass an already checked capacity.
func newArrayMapOf[K comparable, V any](capacity int) *ArrayMapOf[K, V] {
	return &ArrayMapOf[K, V]{
		entries: make([]EntryOf[K, V], capacity),
		initCap: capacity,
	}
}

func (a *ArrayMapOf[K, V]) indexOf(key K) int {
	for i := 0; i < a.size; i++ {
		if a.entries[i].key == key {
			return i
		}
	}
	return -1
}

// Load returns the value stored for key.
// ok reports whether the key is present.
func (a *ArrayMapOf[K, V]) Load(key K) (value V, ok bool) {
	if i := a.indexOf(key); i >= 0 {
		return a.entries[i].value, true
	}
	return
}

// HasKey reports whether key is present.
func (a *ArrayMapOf[K, V]) HasKey(key K) bool {
	return a.indexOf(key) >= 0
}

// Swap stores value for key and returns the previous value if any.
// The loaded result reports whether the key was present.
func (a *ArrayMapOf[K, V]) Swap(key K, value V) (previous V, loaded bool) {
	if i := a.indexOf(key); i >= 0 {
		previous = a.entries[i].value
		a.entries[i].value = value
		return previous, true
	}
	a.append(EntryOf[K, V]{key: key, value: value})
	return
}

// Store sets the value for a key.
func (a *ArrayMapOf[K, V]) Store(key K, value V) {
	a.Swap(key, value)
}

// append adds e at the end of the populated prefix without checking for
// duplicates.
func (a *ArrayMapOf[K, V]) append(e EntryOf[K, V]) {
	if a.entries == nil {
		if a.initCap <= 0 {
			a.initCap = DefaultArrayMapCapacity
		}
		a.entries = make([]EntryOf[K, V], a.initCap)
	}
	if a.size == len(a.entries) {
		a.grow()
	}
	a.entries[a.size] = e
	a.size++
}

func (a *ArrayMapOf[K, V]) grow() {
	entries := make([]EntryOf[K, V], len(a.entries)*2)
	copy(entries, a.entries[:a.size])
	a.entries = entries
}

// LoadAndDelete deletes the value for a key, returning the previous value
// if any. The loaded result reports whether the key was present.
//
// The last entry is moved into the freed slot.
func (a *ArrayMapOf[K, V]) LoadAndDelete(key K) (value V, loaded bool) {
	i := a.indexOf(key)
	if i < 0 {
		return
	}
	value = a.entries[i].value
	last := a.size - 1
	a.entries[i] = a.entries[last]
	a.entries[last] = EntryOf[K, V]{}
	a.size = last
	return value, true
}

// Delete deletes the value for a key.
func (a *ArrayMapOf[K, V]) Delete(key K) {
	a.LoadAndDelete(key)
}

// Clear removes all entries and shrinks storage back to the capacity the
// map was created with.
func (a *ArrayMapOf[K, V]) Clear() {
	if a.initCap <= 0 {
		a.initCap = DefaultArrayMapCapacity
	}
	a.entries = make([]EntryOf[K, V], a.initCap)
	a.size = 0
}

// Size returns the number of entries.
func (a *ArrayMapOf[K, V]) Size() int {
	return a.size
}

// IsZero reports whether the map is empty.
func (a *ArrayMapOf[K, V]) IsZero() bool {
	return a.size == 0
}

// Cap returns the number of slots currently allocated.
func (a *ArrayMapOf[K, V]) Cap() int {
	return len(a.entries)
}

// Iterator returns a cursor over the entries in physical order.
func (a *ArrayMapOf[K, V]) Iterator() *ArrayIterator[K, V] {
	return &ArrayIterator[K, V]{m: a}
}

// Range calls yield for each entry in physical order until yield returns
// false.
func (a *ArrayMapOf[K, V]) Range(yield func(key K, value V) bool) {
	for i := 0; i < a.size; i++ {
		e := &a.entries[i]
		if !yield(e.key, e.value) {
			return
		}
	}
}

// All returns an iterator for use with range-over-func.
func (a *ArrayMapOf[K, V]) All() iter.Seq2[K, V] {
	return a.Range
}

// String implements fmt.Stringer. Entries appear in physical order.
func (a *ArrayMapOf[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("ArrayMapOf[")
	for i := 0; i < a.size; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v:%v", a.entries[i].key, a.entries[i].value)
	}
	sb.WriteByte(']')
	return sb.String()
}

// ArrayIterator walks an ArrayMapOf from index 0 to Size()-1.
// A fresh Iterator call starts over.
type ArrayIterator[K comparable, V any] struct {
	m   *ArrayMapOf[K, V]
	idx int
}

// HasNext reports whether Next will return another entry.
func (it *ArrayIterator[K, V]) HasNext() bool {
	return it.idx < it.m.size
}

// Next returns the next entry.
// It panics with ErrNoMoreElements when the iterator is exhausted.
func (it *ArrayIterator[K, V]) Next() EntryOf[K, V] {
	if !it.HasNext() {
		panic(ErrNoMoreElements)
	}
	e := it.m.entries[it.idx]
	it.idx++
	return e
}
