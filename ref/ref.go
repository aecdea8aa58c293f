// Package ref provides a reference-counted shared handle, used to share
// base-table ownership between the table registry and the reference
// segments that point back into it.
package ref

import (
	"sync/atomic"

	"github.com/v2pro/plz/countlog"
)

// Counted is a shared, reference-counted handle to a value. Unlike the
// disk-backed resources this type was originally built to dispose of,
// the underlying value here needs no explicit close: the garbage
// collector reclaims it once the last handle is dropped. The refcount
// only disambiguates whether a handle is still live enough to Acquire
// another reference from.
type Counted[T any] struct {
	name     string
	value    T
	refCount atomic.Uint32
}

// New wraps value in a shared handle with an initial reference count of 1.
func New[T any](name string, value T) *Counted[T] {
	c := &Counted[T]{name: name, value: value}
	c.refCount.Store(1)
	return c
}

// Value returns the wrapped value. Valid for as long as the caller holds
// a reference acquired via New or Acquire.
func (c *Counted[T]) Value() T {
	return c.value
}

// Acquire takes out a new reference, returning false if the handle has
// already been fully released (refcount dropped to zero).
func (c *Counted[T]) Acquire() bool {
	for {
		n := c.refCount.Load()
		if n == 0 {
			return false
		}
		if c.refCount.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// Release drops one reference. It reports whether this was the last
// outstanding reference.
func (c *Counted[T]) Release() bool {
	for {
		n := c.refCount.Load()
		if n == 0 {
			return true
		}
		if c.refCount.CompareAndSwap(n, n-1) {
			if n == 1 {
				countlog.Trace("event!ref.released last reference", "name", c.name)
				return true
			}
			return false
		}
	}
}

// Count returns the current outstanding reference count, for tests.
func (c *Counted[T]) Count() uint32 {
	return c.refCount.Load()
}
