package chainmap

import (
	"fmt"
	"math"
	"strings"
)

// Stats returns statistics for the ChainedMapOf. It walks every chain, so
// it is an O(N) operation meant for diagnostics or debugging.
func (m *ChainedMapOf[K, V]) Stats() *MapStats {
	stats := &MapStats{
		Chains:          len(m.chains),
		Counter:         m.size,
		LoadFactor:      m.LoadFactor(),
		ResizeThreshold: m.cfg.loadFactor,
		FixedChainCount: m.cfg.fixed,
		TotalGrowths:    m.totalGrowths,
		TotalClears:     m.totalClears,
		MinEntries:      math.MaxInt,
	}
	for _, c := range m.chains {
		n := 0
		if c != nil {
			stats.LiveChains++
			stats.Capacity += c.Cap()
			n = c.Size()
			stats.Size += n
		}
		stats.MinEntries = min(stats.MinEntries, n)
		stats.MaxEntries = max(stats.MaxEntries, n)
	}
	stats.EmptyChains = stats.Chains - stats.LiveChains
	if stats.Chains == 0 {
		stats.MinEntries = 0
	}
	return stats
}

// MapStats is ChainedMapOf statistics.
//
// Warning: map statistics are intended to be used for diagnostic
// purposes, not for production code. This means that breaking changes
// may be introduced into this struct even between minor releases.
type MapStats struct {
	// Chains is the length of the chain array.
	Chains int
	// LiveChains is the number of slots holding a chain.
	LiveChains int
	// EmptyChains is the number of slots without a chain.
	EmptyChains int
	// Capacity is the total number of entry slots allocated by all
	// chains.
	Capacity int
	// Size is the number of entries counted by walking the chains.
	Size int
	// Counter is the number of entries according to the map's running
	// total. It always equals Size.
	Counter int
	// MinEntries is the minimum number of entries in a slot.
	MinEntries int
	// MaxEntries is the maximum number of entries in a slot.
	MaxEntries int
	// LoadFactor is Counter divided by Chains.
	LoadFactor float64
	// ResizeThreshold is the configured load factor.
	ResizeThreshold float64
	// FixedChainCount reports whether resizing is disabled.
	FixedChainCount bool
	// TotalGrowths is the number of times the chain array doubled.
	TotalGrowths uint32
	// TotalClears is the number of times Clear reset the chain array.
	TotalClears uint32
}

// ToString returns string representation of map stats.
func (s *MapStats) ToString() string {
	var sb strings.Builder
	sb.WriteString("MapStats{\n")
	sb.WriteString(fmt.Sprintf("Chains:          %d\n", s.Chains))
	sb.WriteString(fmt.Sprintf("LiveChains:      %d\n", s.LiveChains))
	sb.WriteString(fmt.Sprintf("EmptyChains:     %d\n", s.EmptyChains))
	sb.WriteString(fmt.Sprintf("Capacity:        %d\n", s.Capacity))
	sb.WriteString(fmt.Sprintf("Size:            %d\n", s.Size))
	sb.WriteString(fmt.Sprintf("Counter:         %d\n", s.Counter))
	sb.WriteString(fmt.Sprintf("MinEntries:      %d\n", s.MinEntries))
	sb.WriteString(fmt.Sprintf("MaxEntries:      %d\n", s.MaxEntries))
	sb.WriteString(fmt.Sprintf("LoadFactor:      %.3f\n", s.LoadFactor))
	sb.WriteString(fmt.Sprintf("ResizeThreshold: %.3f\n", s.ResizeThreshold))
	sb.WriteString(fmt.Sprintf("FixedChainCount: %t\n", s.FixedChainCount))
	sb.WriteString(fmt.Sprintf("TotalGrowths:    %d\n", s.TotalGrowths))
	sb.WriteString(fmt.Sprintf("TotalClears:     %d\n", s.TotalClears))
	sb.WriteString("}\n")
	return sb.String()
}
