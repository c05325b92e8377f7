package chainmap

// EntryOf is a key-value pair stored in a map.
// The key never changes once the entry is created.
type EntryOf[K comparable, V any] struct {
	key   K
	value V
}

// Key returns the entry key.
func (e EntryOf[K, V]) Key() K { return e.key }

// Value returns the entry value.
func (e EntryOf[K, V]) Value() V { return e.value }
