//go:build chainmap_opt_enablepadding

package chainmap

import "unsafe"

// chainedMapPadSize rounds the ChainedMapOf header up to a whole cache line,
// so maps allocated next to each other and owned by different goroutines do
// not share a line.
const chainedMapPadSize = (CacheLineSize - unsafe.Sizeof(chainedMapHeader{})%CacheLineSize) % CacheLineSize
