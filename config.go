package chainmap

import (
	"fmt"
	"math"
)

const (
	// DefaultLoadFactor is the entries-per-chain ratio above which the
	// chain array doubles.
	DefaultLoadFactor = 0.75
	// DefaultChainCount is the initial length of the chain array.
	DefaultChainCount = 5
	// DefaultChainCapacity is the initial capacity of each chain.
	DefaultChainCapacity = 5
)

// MapConfig defines configurable ChainedMapOf options.
// Every map copies its configuration at construction; nothing is shared
// between instances.
type MapConfig struct {
	loadFactor    float64
	chainCount    int
	chainCapacity int
	sizeHint      int
	fixed         bool
	keyHash       any // func(K, uint64) uint64
}

func defaultMapConfig() MapConfig {
	return MapConfig{
		loadFactor:    DefaultLoadFactor,
		chainCount:    DefaultChainCount,
		chainCapacity: DefaultChainCapacity,
	}
}

// WithLoadFactor sets the ratio of entries to chains that triggers a
// resize. It must be positive.
func WithLoadFactor(loadFactor float64) func(*MapConfig) {
	return func(c *MapConfig) {
		c.loadFactor = loadFactor
	}
}

// WithChainCount sets the initial number of chains. It must be positive.
// Clear restores this length.
func WithChainCount(chainCount int) func(*MapConfig) {
	return func(c *MapConfig) {
		c.chainCount = chainCount
	}
}

// WithChainCapacity sets the capacity of every newly created chain.
// It must be positive.
func WithChainCapacity(chainCapacity int) func(*MapConfig) {
	return func(c *MapConfig) {
		c.chainCapacity = chainCapacity
	}
}

// WithPresize configures new ChainedMapOf instance with enough chains to
// hold sizeHint entries without resizing. If sizeHint is zero or negative,
// the value is ignored.
func WithPresize(sizeHint int) func(*MapConfig) {
	return func(c *MapConfig) {
		c.sizeHint = sizeHint
	}
}

// WithFixedChainCount disables resizing. The chain array keeps its initial
// length and chains simply get longer.
func WithFixedChainCount() func(*MapConfig) {
	return func(c *MapConfig) {
		c.fixed = true
	}
}

// WithKeyHasher sets a custom key hash function. seed is a per-map random
// value the function may mix in. K must match the key type of the map
// being constructed, otherwise construction fails.
func WithKeyHasher[K comparable](keyHash func(key K, seed uint64) uint64) func(*MapConfig) {
	return func(c *MapConfig) {
		if keyHash != nil {
			c.keyHash = keyHash
		}
	}
}

func (c *MapConfig) validate() error {
	if !(c.loadFactor > 0) || math.IsInf(c.loadFactor, 0) {
		return fmt.Errorf("%w: load factor must be positive, got %v",
			ErrInvalidArgument, c.loadFactor)
	}
	if c.chainCount <= 0 {
		return fmt.Errorf("%w: chain count must be positive, got %d",
			ErrInvalidArgument, c.chainCount)
	}
	if c.chainCapacity <= 0 {
		return fmt.Errorf("%w: chain capacity must be positive, got %d",
			ErrInvalidArgument, c.chainCapacity)
	}
	return nil
}

// initialChainCount returns the chain array length for a new or cleared
// map, taking the size hint into account.
func (c *MapConfig) initialChainCount() int {
	n := c.chainCount
	if c.sizeHint > 0 {
		n = max(n, calcChainCount(c.sizeHint, c.loadFactor))
	}
	return n
}

// calcChainCount computes the smallest chain count that keeps sizeHint
// entries at or below loadFactor.
func calcChainCount(sizeHint int, loadFactor float64) int {
	n := math.Ceil(float64(sizeHint) / loadFactor)
	if n >= math.MaxInt32 {
		return math.MaxInt32
	}
	return max(1, int(n))
}
