package screening

import "sync"

// keyLocks serializes screening runs per request key. Two concurrent requests
// for the same key must not both run the comparison pass: the second waits
// for the first, then hits the idempotency fast path. Entries are refcounted
// and removed once the last holder releases, so the registry stays bounded by
// the number of in-flight keys.
type keyLocks struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

func newKeyLocks() *keyLocks {
	return &keyLocks{locks: make(map[string]*keyLock)}
}

// Acquire blocks until the caller holds the exclusive lock for key and
// returns the release function.
func (k *keyLocks) Acquire(key string) func() {
	k.mu.Lock()
	entry, ok := k.locks[key]
	if !ok {
		entry = &keyLock{}
		k.locks[key] = entry
	}
	entry.refs++
	k.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		k.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
