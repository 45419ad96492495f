package app

import (
	"sync"
	"sync/atomic"
)

// lazy is a component built on first use. The constructor runs exactly once; later calls
// return the same value or the same error.
type lazy[T any] struct {
	once  sync.Once
	built atomic.Bool
	value T
	err   error
}

// get builds the component with build on the first call and returns the cached result.
func (l *lazy[T]) get(build func() (T, error)) (T, error) {
	l.once.Do(func() {
		l.value, l.err = build()
		l.built.Store(true)
	})
	return l.value, l.err
}

// set installs value as if it had been built, unless the component was already built.
func (l *lazy[T]) set(value T) {
	l.once.Do(func() {
		l.value = value
		l.built.Store(true)
	})
}

// peek returns the component only when it was built successfully, without building it.
func (l *lazy[T]) peek() (T, bool) {
	var zero T
	if !l.built.Load() || l.err != nil {
		return zero, false
	}
	return l.value, true
}
