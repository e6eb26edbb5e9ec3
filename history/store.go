// Package history maintains bounded rolling sample series for the
// dashboard sparklines. The bound is recomputed from terminal geometry
// every tick, so a series can shrink (oldest-first eviction) or be allowed
// to grow without the store itself knowing anything about terminals.
package history

// Store holds one bounded series of [0,1] samples per tracked metric.
// It is owned by a single control loop and is not safe for concurrent use.
type Store struct {
	series map[string][]float64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{series: make(map[string][]float64)}
}

// Append clamps value into [0,1] and appends it to the named series,
// creating the series on first use.
func (s *Store) Append(name string, value float64) {
	if value < 0 {
		value = 0
	} else if value > 1 {
		value = 1
	}
	s.series[name] = append(s.series[name], value)
}

// Resize bounds the named series to length. When the series is longer,
// exactly len−length oldest entries are evicted. Growing the bound never
// discards data; the series simply has room to grow.
func (s *Store) Resize(name string, length int) {
	if length < 0 {
		length = 0
	}
	samples, ok := s.series[name]
	if !ok || len(samples) <= length {
		return
	}
	// Re-slice from the front; append keeps amortized growth behavior on
	// the shared backing array.
	s.series[name] = samples[len(samples)-length:]
}

// ResizeAll bounds every series to length.
func (s *Store) ResizeAll(length int) {
	for name := range s.series {
		s.Resize(name, length)
	}
}

// Window returns a copy of the named series, oldest first. Unknown series
// yield an empty window.
func (s *Store) Window(name string) []float64 {
	samples := s.series[name]
	out := make([]float64, len(samples))
	copy(out, samples)
	return out
}

// Len returns the current length of the named series.
func (s *Store) Len(name string) int {
	return len(s.series[name])
}
