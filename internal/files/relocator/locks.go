package relocator

import (
	"path/filepath"
	"sync"
)

// RootLocks hands out one mutex per cleaned root path.
// The zero value is ready to use.
type RootLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Lock blocks until the caller owns root and returns the matching unlock.
func (l *RootLocks) Lock(root string) func() {
	m := l.get(filepath.Clean(root))
	m.Lock()
	return m.Unlock
}

func (l *RootLocks) get(key string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.locks == nil {
		l.locks = make(map[string]*sync.Mutex)
	}
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	return m
}
