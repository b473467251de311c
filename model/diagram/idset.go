package diagram

// IDSet represents insertion ordered set of identifiers
type IDSet struct {
	IDs   []string
	index map[string]int // Map of ids for quick lookup
}

// NewIDSet creates a set with the supplied ids, duplicates are skipped
func NewIDSet(ids ...string) *IDSet {
	ret := &IDSet{}
	for _, id := range ids {
		ret.Add(id)
	}
	return ret
}

// Add adds id, returns false if it was already present
func (s *IDSet) Add(id string) bool {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if _, ok := s.index[id]; ok {
		return false
	}
	s.IDs = append(s.IDs, id)
	s.index[id] = len(s.IDs) - 1
	return true
}

// Remove removes id, returns false if it was absent
func (s *IDSet) Remove(id string) bool {
	idx, ok := s.index[id]
	if !ok {
		return false
	}
	s.IDs = append(s.IDs[:idx], s.IDs[idx+1:]...)
	// Rebuild the index
	delete(s.index, id)
	for i := idx; i < len(s.IDs); i++ {
		s.index[s.IDs[i]] = i
	}
	return true
}

// Contains returns true if id is in the set
func (s *IDSet) Contains(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Len returns set size
func (s *IDSet) Len() int {
	return len(s.IDs)
}

// Values returns a copy of set ids in insertion order
func (s *IDSet) Values() []string {
	return append([]string(nil), s.IDs...)
}

// Reversed returns a copy of set ids in reverse insertion order
func (s *IDSet) Reversed() []string {
	ret := make([]string, 0, len(s.IDs))
	for i := len(s.IDs) - 1; i >= 0; i-- {
		ret = append(ret, s.IDs[i])
	}
	return ret
}
