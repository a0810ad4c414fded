//go:build !ftmalloc_nolock

package malloc

import "sync"

// heapLock serializes every entry point against the shared zoneManager
// state. This is the default build: a process embedding the allocator from
// multiple goroutines gets correct behavior without doing anything.
type heapLock struct {
	mu sync.Mutex
}

func (l *heapLock) Lock()   { l.mu.Lock() }
func (l *heapLock) Unlock() { l.mu.Unlock() }

const lockingEnabled = true
