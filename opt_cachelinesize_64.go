//go:build chainmap_opt_cachelinesize_64

package chainmap

// CacheLineSize is fixed by the chainmap_opt_cachelinesize_64 build tag.
const CacheLineSize uintptr = 64
