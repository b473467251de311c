package project

// collection represents insertion ordered mapping keyed by id
type collection[T any] struct {
	keys  []string
	items []T
	index map[string]int // Map of keys for quick lookup
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{index: make(map[string]int)}
}

// put inserts or replaces an item, replaced items keep their position
func (c *collection[T]) put(id string, item T) {
	if idx, ok := c.index[id]; ok {
		c.items[idx] = item
		return
	}
	c.keys = append(c.keys, id)
	c.items = append(c.items, item)
	c.index[id] = len(c.items) - 1
}

func (c *collection[T]) get(id string) (T, bool) {
	if idx, ok := c.index[id]; ok {
		return c.items[idx], true
	}
	var zero T
	return zero, false
}

func (c *collection[T]) has(id string) bool {
	_, ok := c.index[id]
	return ok
}

// remove removes an item by id, returns false if it was absent
func (c *collection[T]) remove(id string) bool {
	idx, ok := c.index[id]
	if !ok {
		return false
	}
	c.keys = append(c.keys[:idx], c.keys[idx+1:]...)
	c.items = append(c.items[:idx], c.items[idx+1:]...)
	// Rebuild the index map
	delete(c.index, id)
	for i := idx; i < len(c.keys); i++ {
		c.index[c.keys[i]] = i
	}
	return true
}

func (c *collection[T]) len() int {
	return len(c.items)
}

// values returns a copy of items in insertion order, safe to mutate the collection while iterating
func (c *collection[T]) values() []T {
	return append([]T(nil), c.items...)
}

func (c *collection[T]) ids() []string {
	return append([]string(nil), c.keys...)
}
