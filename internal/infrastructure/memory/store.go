// Package memory provides in-memory adapters for every repository port. The
// backend is selected with STORE_BACKEND=memory and backs local development and
// the application-layer tests; data lives for the life of the process.
package memory

import "sync"

// table is a mutex-guarded map with remembered insertion order. Values are
// copied on the way in and out so callers never share memory with the store.
type table[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
	order []string
}

func newTable[T any]() *table[T] {
	return &table[T]{items: make(map[string]*T)}
}

// list returns all values, newest insertion first.
func (t *table[T]) list() []*T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]*T, 0, len(t.order))
	for i := len(t.order) - 1; i >= 0; i-- {
		cp := *t.items[t.order[i]]
		out = append(out, &cp)
	}
	return out
}

// get returns a copy of the value, or nil when absent.
func (t *table[T]) get(id string) *T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.items[id]
	if !ok {
		return nil
	}
	cp := *v
	return &cp
}

// put inserts or replaces the value under id. Inserts extend the order;
// replacements keep the original position.
func (t *table[T]) put(id string, v *T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	cp := *v
	if _, ok := t.items[id]; !ok {
		t.order = append(t.order, id)
	}
	t.items[id] = &cp
}

// del removes the value under id. Removing an absent id is a no-op.
func (t *table[T]) del(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.items[id]; !ok {
		return
	}
	delete(t.items, id)
	for i, o := range t.order {
		if o == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// snapshot copies the table state for later restore.
func (t *table[T]) snapshot() (map[string]*T, []string) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	items := make(map[string]*T, len(t.items))
	for k, v := range t.items {
		cp := *v
		items[k] = &cp
	}
	order := make([]string, len(t.order))
	copy(order, t.order)
	return items, order
}

// restore rewinds the table to a snapshot.
func (t *table[T]) restore(items map[string]*T, order []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.items = items
	t.order = order
}
