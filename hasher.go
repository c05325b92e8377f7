package chainmap

import (
	"hash/maphash"
	"reflect"
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

// IHashCode lets a key type supply its own hash, the same way a custom
// hasher passed through WithKeyHasher would. Keys that are equal must
// return equal hash codes.
type IHashCode interface {
	HashCode(seed uint64) uint64
}

type hashFunc[K comparable] func(key K, seed uint64) uint64

// defaultHasher selects the hash function for K.
//
//   - Integer keys hash to themselves, which spreads sequential keys evenly
//     across chains.
//   - Strings use xxhash.
//   - Types implementing IHashCode use their own method.
//   - Anything else falls back to maphash.Comparable.
func defaultHasher[K comparable]() hashFunc[K] {
	switch any(*new(K)).(type) {
	case uint, int, uintptr:
		return func(key K, _ uint64) uint64 {
			return uint64(*(*uintptr)(unsafe.Pointer(&key)))
		}

	case uint64, int64:
		return func(key K, _ uint64) uint64 {
			return *(*uint64)(unsafe.Pointer(&key))
		}

	case uint32, int32:
		return func(key K, _ uint64) uint64 {
			return uint64(*(*uint32)(unsafe.Pointer(&key)))
		}

	case uint16, int16:
		return func(key K, _ uint64) uint64 {
			return uint64(*(*uint16)(unsafe.Pointer(&key)))
		}

	case uint8, int8:
		return func(key K, _ uint64) uint64 {
			return uint64(*(*uint8)(unsafe.Pointer(&key)))
		}

	case string:
		return func(key K, _ uint64) uint64 {
			return xxhash.Sum64String(*(*string)(unsafe.Pointer(&key)))
		}
	}

	t := reflect.TypeFor[K]()
	hc := reflect.TypeFor[IHashCode]()
	switch {
	case t.Implements(hc):
		return func(key K, seed uint64) uint64 {
			return any(key).(IHashCode).HashCode(seed)
		}
	case t.Kind() != reflect.Interface && reflect.PointerTo(t).Implements(hc):
		return func(key K, seed uint64) uint64 {
			return any(&key).(IHashCode).HashCode(seed)
		}
	}

	mseed := maphash.MakeSeed()
	return func(key K, _ uint64) uint64 {
		return maphash.Comparable(mseed, key)
	}
}

// isNilable reports whether the zero value of K is nil. Only those key
// types have a nil-key sentinel.
func isNilable[K comparable]() bool {
	switch reflect.TypeFor[K]().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

// chainIndex maps a hash onto [0, chainCount).
//
// The hash is treated as unsigned, so no absolute value is needed.
func chainIndex(hash uint64, chainCount int) int {
	return int(hash % uint64(chainCount))
}
