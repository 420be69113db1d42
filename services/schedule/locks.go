package schedule

import "sync"

// ProfileLocks serializes schedule writes per profile: MergeDay is a
// last-writer-wins replace and a booking flips slot state, so two concurrent
// writers for the same profile must never interleave. Calendars for
// different profiles stay fully independent.
type ProfileLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewProfileLocks() *ProfileLocks {
	return &ProfileLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the lock for a profile and returns the unlock func.
func (l *ProfileLocks) Lock(profileID string) func() {
	l.mu.Lock()
	lock, exists := l.locks[profileID]
	if !exists {
		lock = &sync.Mutex{}
		l.locks[profileID] = lock
	}
	l.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
