// Package modset provides the deduplicated set of module names a scan
// collects. Iteration follows first-insertion order so results are stable
// for a given traversal.
package modset

// Set is an insertion-ordered set of module names. The zero value is ready
// to use.
type Set struct {
	index map[string]struct{}
	order []string
}

// New returns a set holding names, deduplicated.
func New(names ...string) *Set {
	s := &Set{}
	s.Add(names...)
	return s
}

// Add inserts names that are not already present.
func (s *Set) Add(names ...string) {
	if s.index == nil {
		s.index = make(map[string]struct{}, len(names))
	}
	for _, name := range names {
		if _, ok := s.index[name]; ok {
			continue
		}
		s.index[name] = struct{}{}
		s.order = append(s.order, name)
	}
}

// Merge adds every name of other, keeping other's order for new names.
func (s *Set) Merge(other *Set) {
	if other == nil {
		return
	}
	s.Add(other.order...)
}

// Has reports whether name is in the set.
func (s *Set) Has(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[name]
	return ok
}

// Len returns the number of names.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Names returns a copy of the names in insertion order.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
