// Use of this software is governed by an Apache 2.0
// licence which can be found in the license file

// This file implements a locker interface and a super simple in-memory
// implementation of the locker interface using mutex.
// Snapshots themselves never need a lock; the locker only serializes the
// writers that publish a new snapshot into a Catalog.

package cowtrie

import (
	"sync"
)

// Locker - This is the locker interface. The clients of the library
// may fill in their own implementation for the catalog to use. The context to
// the lock/unlock calls is the set of trie keys a batch operates on. Lock and
// Unlock take the set of keys for which lock needs to be acquired as well as
// whether it is a readonly lock vs. a read-write lock.
type Locker interface {
	Init()
	Lock(readSet []string, writeSet []string)
	Unlock(readSet []string, writeSet []string)
}

// defaultLock - A default locker implementation using sync.RWMutex.
type defaultLock struct {
	mux *sync.RWMutex
}

func (lck *defaultLock) Init() {
	lck.mux = &sync.RWMutex{}
}
func (lck *defaultLock) Lock(readSet []string, writeSet []string) {
	if len(writeSet) == 0 {
		lck.mux.RLock()
	} else {
		lck.mux.Lock()
	}
}
func (lck *defaultLock) Unlock(readSet []string, writeSet []string) {
	if len(writeSet) == 0 {
		lck.mux.RUnlock()
	} else {
		lck.mux.Unlock()
	}
}
