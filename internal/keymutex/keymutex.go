// Package keymutex provides exclusive locks scoped to string keys. The
// admission services take one lock per seller, product or rater so that a
// check-then-act sequence on a shared aggregate cannot interleave with a
// concurrent one for the same key.
package keymutex

import "sync"

// KeyMutex hands out one mutex per key. Mutexes are retained for the
// lifetime of the process; the key space is bounded by the number of
// sellers, products and raters seen.
type KeyMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates an empty KeyMutex.
func New() *KeyMutex {
	return &KeyMutex{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the lock for key and returns the matching unlock function.
func (k *KeyMutex) Lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
