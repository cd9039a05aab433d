package services

import "sync"

// slotLocker hands out one mutex per (date, time) key so the
// read-sum-insert sequence in CreateBooking is serialized per slot.
// Locks are never discarded; the key space is bounded by dates seen
// times seven slots.
type slotLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newSlotLocker() *slotLocker {
	return &slotLocker{
		locks: make(map[string]*sync.Mutex),
	}
}

// Lock acquires the mutex for key and returns its unlock func.
func (sl *slotLocker) Lock(key string) func() {
	sl.mu.Lock()
	lock, ok := sl.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		sl.locks[key] = lock
	}
	sl.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
