package chainmap

type iterState uint8

const (
	iterBeforeFirst iterState = iota
	iterInChain
	iterExhausted
)

// ChainIterator walks every chain of a ChainedMapOf from index 0 to the
// last index and yields each chain's entries in physical order. Empty
// slots are skipped without producing anything.
//
// The cursor keeps the current chain index and the inner ArrayIterator, so
// a full traversal costs O(chains + entries). Once exhausted it stays
// exhausted until Reset.
type ChainIterator[K comparable, V any] struct {
	m      *ChainedMapOf[K, V]
	chains []*ArrayMapOf[K, V]
	idx    int
	inner  *ArrayIterator[K, V]
	state  iterState
}

// HasNext reports whether Next will return another entry.
func (it *ChainIterator[K, V]) HasNext() bool {
	switch it.state {
	case iterExhausted:
		return false
	case iterInChain:
		if it.inner.HasNext() {
			return true
		}
		it.idx++
	case iterBeforeFirst:
		it.chains = it.m.chains
		it.idx = 0
	}
	for ; it.idx < len(it.chains); it.idx++ {
		if c := it.chains[it.idx]; c != nil && c.size > 0 {
			it.inner = c.Iterator()
			it.state = iterInChain
			return true
		}
	}
	it.inner = nil
	it.state = iterExhausted
	return false
}

// Next returns the next entry.
// It panics with ErrNoMoreElements when the iterator is exhausted.
func (it *ChainIterator[K, V]) Next() EntryOf[K, V] {
	if !it.HasNext() {
		panic(ErrNoMoreElements)
	}
	return it.inner.Next()
}

// Reset rewinds the iterator to before the first entry. The next HasNext
// call picks up the map's current chain array.
func (it *ChainIterator[K, V]) Reset() {
	it.chains = nil
	it.idx = 0
	it.inner = nil
	it.state = iterBeforeFirst
}
