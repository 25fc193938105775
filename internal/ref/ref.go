// Package ref provides a mutable handle to a node that may not exist yet.
//
// UI code hands a Ref to a consumer before the underlying node is rendered;
// the consumer looks the node up at use time instead of holding a direct
// reference that could go stale.
package ref

// Ref is a mutable handle to a value of type T.
// The zero value is an empty handle.
type Ref[T any] struct {
	current T
	set     bool
}

// New returns an empty handle.
func New[T any]() *Ref[T] {
	return &Ref[T]{}
}

// Set points the handle at v.
func (r *Ref[T]) Set(v T) {
	r.current = v
	r.set = true
}

// Clear empties the handle.
func (r *Ref[T]) Clear() {
	var zero T
	r.current = zero
	r.set = false
}

// Current returns the referenced value and whether one is set.
func (r *Ref[T]) Current() (T, bool) {
	return r.current, r.set
}
