package chainmap

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"strings"
	"unsafe"
)

// ChainedMapOf is a hash map that resolves collisions by separate chaining.
//
// Each key is routed to one slot of a chain array; the slot holds an
// ArrayMapOf with every entry that hashed there, or nil when no key did.
// Chains are created on the first insertion into a slot and dropped as soon
// as their last entry is removed, so memory follows live data.
//
// When an insertion pushes Size()/ChainCount() above the configured load
// factor, the chain array doubles and all entries are rehashed. Use
// WithFixedChainCount to keep the initial chain count for the lifetime of
// the map.
//
// Nil keys (nil pointers, nil interfaces, nil channels) are ordinary keys
// that always live in chain 0.
//
// The zero value is an empty map with the default configuration.
// ChainedMapOf is not safe for concurrent use, and mutating it while an
// iteration is in progress gives undefined results.
type ChainedMapOf[K comparable, V any] struct {
	//lint:ignore U1000 prevents false sharing
	pad [chainedMapPadSize]byte

	chains        []*ArrayMapOf[K, V]
	size          int
	cfg           MapConfig
	seed          uint64
	keyHash       hashFunc[K]
	nilable       bool
	totalGrowths  uint32
	totalClears   uint32
	initChainsLen int
}

// chainedMapHeader mirrors the ChainedMapOf field layout for padding
// calculations.
type chainedMapHeader struct {
	chains        []unsafe.Pointer
	size          int
	cfg           MapConfig
	seed          uint64
	keyHash       unsafe.Pointer
	nilable       bool
	totalGrowths  uint32
	totalClears   uint32
	initChainsLen int
}

// NewChainedMapOf creates a new ChainedMapOf.
//
// Parameters:
//   - WithLoadFactor, WithChainCount, WithChainCapacity to size the map
//   - WithPresize option for initial capacity
//   - WithFixedChainCount to disable resizing
//   - WithKeyHasher for a custom hash function
//
// A non-positive load factor, chain count or chain capacity, or a key
// hasher for a different key type, fails with ErrInvalidArgument.
func NewChainedMapOf[K comparable, V any](
	options ...func(*MapConfig),
) (*ChainedMapOf[K, V], error) {
	cfg := defaultMapConfig()
	for _, o := range options {
		o(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	m := &ChainedMapOf[K, V]{}
	if err := m.init(cfg); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *ChainedMapOf[K, V]) init(cfg MapConfig) error {
	m.cfg = cfg
	m.seed = rand.Uint64()
	m.nilable = isNilable[K]()
	m.keyHash = defaultHasher[K]()
	if cfg.keyHash != nil {
		fn, ok := cfg.keyHash.(func(K, uint64) uint64)
		if !ok {
			return fmt.Errorf("%w: key hasher %T does not accept the map key type",
				ErrInvalidArgument, cfg.keyHash)
		}
		m.keyHash = fn
	}
	m.initChainsLen = cfg.initialChainCount()
	m.chains = make([]*ArrayMapOf[K, V], m.initChainsLen)
	return nil
}

// lazyInit prepares a zero-value map for its first write.
func (m *ChainedMapOf[K, V]) lazyInit() {
	if m.chains == nil {
		// The default configuration always validates.
		_ = m.init(defaultMapConfig())
	}
}

func (m *ChainedMapOf[K, V]) indexFor(key K, chainCount int) int {
	if m.nilable && key == *new(K) {
		return 0
	}
	return chainIndex(m.keyHash(key, m.seed), chainCount)
}

// chainFor returns the chain key routes to, or nil.
func (m *ChainedMapOf[K, V]) chainFor(key K) *ArrayMapOf[K, V] {
	if len(m.chains) == 0 {
		return nil
	}
	return m.chains[m.indexFor(key, len(m.chains))]
}

// Load returns the value stored in the map for a key.
// The ok result indicates whether the value was found in the map.
func (m *ChainedMapOf[K, V]) Load(key K) (value V, ok bool) {
	if c := m.chainFor(key); c != nil {
		return c.Load(key)
	}
	return
}

// HasKey reports whether key is present.
func (m *ChainedMapOf[K, V]) HasKey(key K) bool {
	c := m.chainFor(key)
	return c != nil && c.HasKey(key)
}

// Swap stores a key-value pair and returns the previous value if any.
// The loaded result reports whether the key was present.
func (m *ChainedMapOf[K, V]) Swap(key K, value V) (previous V, loaded bool) {
	m.lazyInit()
	idx := m.indexFor(key, len(m.chains))
	c := m.chains[idx]
	if c == nil {
		c = newArrayMapOf[K, V](m.cfg.chainCapacity)
		c.append(EntryOf[K, V]{key: key, value: value})
		m.chains[idx] = c
	} else if previous, loaded = c.Swap(key, value); loaded {
		return previous, true
	}
	m.size++
	if !m.cfg.fixed && float64(m.size)/float64(len(m.chains)) > m.cfg.loadFactor {
		m.resize(len(m.chains) * 2)
	}
	return
}

// Store sets the value for a key.
func (m *ChainedMapOf[K, V]) Store(key K, value V) {
	m.Swap(key, value)
}

// LoadAndDelete deletes the value for a key, returning the previous value
// if any. The loaded result reports whether the key was present.
func (m *ChainedMapOf[K, V]) LoadAndDelete(key K) (value V, loaded bool) {
	if len(m.chains) == 0 {
		return
	}
	idx := m.indexFor(key, len(m.chains))
	c := m.chains[idx]
	if c == nil {
		return
	}
	if value, loaded = c.LoadAndDelete(key); !loaded {
		return
	}
	m.size--
	if c.IsZero() {
		m.chains[idx] = nil
	}
	return value, true
}

// Delete deletes the value for a key.
func (m *ChainedMapOf[K, V]) Delete(key K) {
	m.LoadAndDelete(key)
}

// resize rebuilds the chain array with newLen chains and moves every entry
// into the chain it now hashes to. Chains are rebuilt from scratch, so
// their physical order may change.
func (m *ChainedMapOf[K, V]) resize(newLen int) {
	chains := make([]*ArrayMapOf[K, V], newLen)
	for _, old := range m.chains {
		if old == nil {
			continue
		}
		for i := 0; i < old.size; i++ {
			e := old.entries[i]
			idx := m.indexFor(e.key, newLen)
			c := chains[idx]
			if c == nil {
				c = newArrayMapOf[K, V](m.cfg.chainCapacity)
				chains[idx] = c
			}
			// keys are already unique
			c.append(e)
		}
	}
	m.chains = chains
	m.totalGrowths++
}

// Clear removes all entries and restores the initial chain count.
func (m *ChainedMapOf[K, V]) Clear() {
	if m.chains == nil {
		return
	}
	m.chains = make([]*ArrayMapOf[K, V], m.initChainsLen)
	m.size = 0
	m.totalClears++
}

// Size returns the number of key-value pairs in the map.
// This is an O(1) operation.
func (m *ChainedMapOf[K, V]) Size() int {
	return m.size
}

// IsZero reports whether the map is empty.
func (m *ChainedMapOf[K, V]) IsZero() bool {
	return m.size == 0
}

// ChainCount returns the current length of the chain array.
func (m *ChainedMapOf[K, V]) ChainCount() int {
	return len(m.chains)
}

// LoadFactor returns the current ratio of entries to chains.
func (m *ChainedMapOf[K, V]) LoadFactor() float64 {
	if len(m.chains) == 0 {
		return 0
	}
	return float64(m.size) / float64(len(m.chains))
}

// Iterator returns a cursor over all entries.
func (m *ChainedMapOf[K, V]) Iterator() *ChainIterator[K, V] {
	return &ChainIterator[K, V]{m: m}
}

// Range calls yield for each entry until yield returns false.
// Order follows the chain array, then each chain's physical order.
func (m *ChainedMapOf[K, V]) Range(yield func(key K, value V) bool) {
	for it := m.Iterator(); it.HasNext(); {
		e := it.Next()
		if !yield(e.key, e.value) {
			return
		}
	}
}

// All returns an iterator for use with range-over-func.
func (m *ChainedMapOf[K, V]) All() iter.Seq2[K, V] {
	return m.Range
}

// String implements fmt.Stringer. At most 1024 entries are printed.
func (m *ChainedMapOf[K, V]) String() string {
	const limit = 1024
	a := make(map[K]V, min(m.size, limit))
	n := 0
	m.Range(func(k K, v V) bool {
		a[k] = v
		n++
		return n < limit
	})
	return strings.Replace(fmt.Sprint(a), "map[", "ChainedMapOf[", 1)
}
