package navigation

import "slices"

// DefaultTopK is the size of the frequently visited list.
const DefaultTopK = 5

// TopFrequent returns up to k locations, most visited first. Locations with
// equal counts keep the order in which they were first visited.
func (s *State) TopFrequent(k int) []Location {
	s.mu.Lock()
	defer s.mu.Unlock()

	if k <= 0 || len(s.order) == 0 {
		return []Location{}
	}

	ranked := slices.Clone(s.order)
	slices.SortStableFunc(ranked, func(a, b Location) int {
		return s.counts[b] - s.counts[a]
	})

	return ranked[:min(k, len(ranked))]
}
