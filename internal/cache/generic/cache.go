package generic

import "slices"

// Ordered is a map that remembers insertion order.
// K is the key type (must be comparable), V is the value type.
//
// It is not safe for concurrent use; callers serialize access.
// Iteration (Keys, Values, Range) follows insertion order, and re-setting an
// existing key keeps its original position.
type Ordered[K comparable, V any] struct {
	items map[K]V
	order []K
}

// NewOrdered creates an empty ordered map.
func NewOrdered[K comparable, V any]() *Ordered[K, V] {
	return &Ordered[K, V]{items: make(map[K]V)}
}

// Get retrieves a value. Returns (value, true) if found,
// or (zero value, false) if not found.
func (o *Ordered[K, V]) Get(key K) (V, bool) {
	v, ok := o.items[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Ordered[K, V]) Has(key K) bool {
	_, ok := o.items[key]
	return ok
}

// Set inserts or replaces a value.
func (o *Ordered[K, V]) Set(key K, value V) {
	if o.items == nil {
		o.items = make(map[K]V)
	}
	if _, exists := o.items[key]; !exists {
		o.order = append(o.order, key)
	}
	o.items[key] = value
}

// Delete removes key and returns the value it held.
func (o *Ordered[K, V]) Delete(key K) (V, bool) {
	v, ok := o.items[key]
	if !ok {
		return v, false
	}
	delete(o.items, key)
	if i := slices.Index(o.order, key); i >= 0 {
		o.order = slices.Delete(o.order, i, i+1)
	}
	return v, true
}

// Len returns the number of entries.
func (o *Ordered[K, V]) Len() int {
	return len(o.items)
}

// Keys returns a copy of the keys in insertion order.
func (o *Ordered[K, V]) Keys() []K {
	return slices.Clone(o.order)
}

// Values returns the values in insertion order.
func (o *Ordered[K, V]) Values() []V {
	values := make([]V, 0, len(o.order))
	for _, k := range o.order {
		values = append(values, o.items[k])
	}
	return values
}

// Range calls fn for each entry in insertion order over a snapshot of the
// keys, so fn may delete entries. Returns early if fn returns false.
func (o *Ordered[K, V]) Range(fn func(key K, value V) bool) {
	for _, k := range o.Keys() {
		v, ok := o.items[k]
		if !ok {
			continue
		}
		if !fn(k, v) {
			return
		}
	}
}
