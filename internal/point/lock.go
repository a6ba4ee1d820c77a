package point

import "sync"

// LockRegistry hands out one mutex per account id. The first caller to
// reference an id installs the mutex; every later caller gets the same one.
// Entries are never removed, so the registry grows by one mutex per distinct
// account ever seen.
type LockRegistry struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewLockRegistry() *LockRegistry {
	return &LockRegistry{locks: make(map[int64]*sync.Mutex)}
}

// lockFor returns the account's mutex, creating it under the registry mutex
// so two concurrent first references still end up sharing one object.
func (r *LockRegistry) lockFor(accountID int64) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locks[accountID]
	if !ok {
		l = &sync.Mutex{}
		r.locks[accountID] = l
	}
	return l
}

// Acquire blocks until the caller holds the account's exclusive lock and
// returns the release function. Callers for different accounts never block
// each other.
func (r *LockRegistry) Acquire(accountID int64) (release func()) {
	l := r.lockFor(accountID)
	l.Lock()
	return l.Unlock
}
