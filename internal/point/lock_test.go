package point

import (
	"sync"
	"testing"
)

func TestLockRegistry_OneLockPerAccount(t *testing.T) {
	t.Parallel()

	r := NewLockRegistry()

	// Many goroutines racing the first reference must all land on the same
	// mutex object.
	const n = 64
	results := make(chan *sync.Mutex, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- r.lockFor(42)
		}()
	}
	wg.Wait()
	close(results)

	first := <-results
	for l := range results {
		if l != first {
			t.Fatal("two distinct lock objects installed for one account")
		}
	}

	if r.lockFor(42) == r.lockFor(43) {
		t.Fatal("different accounts share a lock")
	}
}

func TestLockRegistry_MutualExclusion(t *testing.T) {
	t.Parallel()

	r := NewLockRegistry()

	// Unsynchronized counter; the per-account lock is the only thing keeping
	// the increments from racing.
	var counter int
	const n = 200
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := r.Acquire(7)
			defer release()
			counter++
		}()
	}
	wg.Wait()

	if counter != n {
		t.Fatalf("counter = %d, want %d (lost increments)", counter, n)
	}
}
