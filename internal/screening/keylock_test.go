package screening

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyLocksSerializeSameKey(t *testing.T) {
	locks := newKeyLocks()

	const goroutines = 16
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := locks.Acquire("user/request")
			defer release()
			// counter is only safe to touch if the lock is exclusive.
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines, counter)
}

func TestKeyLocksIndependentKeys(t *testing.T) {
	locks := newKeyLocks()

	releaseA := locks.Acquire("a")
	// A different key must not block.
	releaseB := locks.Acquire("b")
	releaseB()
	releaseA()
}

func TestKeyLocksRegistryShrinks(t *testing.T) {
	locks := newKeyLocks()

	release := locks.Acquire("a")
	release()

	locks.mu.Lock()
	defer locks.mu.Unlock()
	assert.Empty(t, locks.locks, "released keys must not accumulate")
}
