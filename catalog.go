// Use of this software is governed by an Apache 2.0
// licence which can be found in the license file

// This file implements the catalog: a metadata store whose source of truth
// is a single Trie snapshot. Every change builds a new snapshot from the
// current one and publishes it with a compare-and-swap, so readers always
// see either all of a batch or none of it, and never take a lock.

package cowtrie

import (
	"fmt"
	"sync/atomic"

	"cowtrie/common"

	"github.com/golang/glog"
)

// CatalogOp -- A given catalog operation.
// Op  - is the type of operation (store/delete)
// K   - is the trie key on which operation needs to be done.
// E   - boxed value for the key (nil if operation is delete). Build store ops
//       with NewStoreOp so the box carries the right type.
type CatalogOp struct {
	Op common.OpType
	K  string
	E  interface{}
}

// NewStoreOp -- op storing value at key.
func NewStoreOp[T any](key string, value T) CatalogOp {
	box := new(T)
	*box = value
	return CatalogOp{Op: common.OpStore, K: key, E: box}
}

// NewDeleteOp -- op removing the value at key.
func NewDeleteOp(key string) CatalogOp {
	return CatalogOp{Op: common.OpDelete, K: key}
}

// Catalog -- holds the current snapshot.
// name    -- name used in log lines.
// lockMgr -- serializes writers. Readers never lock.
// current -- the published snapshot.
// version -- # of successful publishes.
type Catalog struct {
	name    string
	lockMgr Locker
	current atomic.Pointer[Trie]
	version atomic.Uint64
}

// NewCatalog -- instantiates an empty catalog. If lockMgr is nil, a mutex
// based locker is used.
func NewCatalog(name string, lockMgr Locker) *Catalog {
	if lockMgr == nil {
		glog.Infof("No locker specified for catalog %s. Using default locker using mutex", name)
		lockMgr = new(defaultLock)
		lockMgr.Init()
	}
	c := &Catalog{name: name, lockMgr: lockMgr}
	c.current.Store(&Trie{})
	return c
}

// Policy -- Get the policy name for this catalog.
func (c *Catalog) Policy() string {
	return common.CatalogPolicyLocal
}

// Snapshot -- the current snapshot. It stays valid and unchanged no matter
// what is published afterwards.
func (c *Catalog) Snapshot() Trie {
	return *c.current.Load()
}

// Version -- number of snapshots published so far.
func (c *Catalog) Version() uint64 {
	return c.version.Load()
}

// CatalogGet -- value of type T at key in the current snapshot.
func CatalogGet[T any](c *Catalog, key string) *T {
	return Get[T](c.Snapshot(), key)
}

// update -- builds a new snapshot with fn and publishes it. fn may be called
// more than once if another writer published in between, so it must only
// depend on the trie it is given.
func (c *Catalog) update(writeSet []string, fn func(Trie) (Trie, error)) error {
	c.lockMgr.Lock(nil, writeSet)
	defer c.lockMgr.Unlock(nil, writeSet)

	for {
		base := c.current.Load()
		next, err := fn(*base)
		if err != nil {
			return err
		}
		if TestPointExecute(testPointFailPublish) {
			glog.Errorf("catalog %s: publish of %v failed (testpoint)", c.name, writeSet)
			return fmt.Errorf("%w: catalog %s", common.ErrPublishFailed, c.name)
		}
		if c.current.CompareAndSwap(base, &next) {
			v := c.version.Add(1)
			glog.V(1).Infof("catalog %s: published version %d for %v", c.name, v, writeSet)
			return nil
		}
		glog.V(1).Infof("catalog %s: lost publish race for %v, retrying", c.name, writeSet)
	}
}

// applyOps -- applies ops in order on top of t.
func applyOps(t Trie, ops []CatalogOp) (Trie, error) {
	for i := 0; i < len(ops); i++ {
		switch ops[i].Op {
		case common.OpStore:
			if ops[i].E == nil {
				glog.Errorf("store op for %q carries no value", ops[i].K)
				return t, fmt.Errorf("%w: store of %q without value", common.ErrInvalidParam, ops[i].K)
			}
			t = t.putBox(ops[i].K, ops[i].E)
		case common.OpDelete:
			t = t.Remove(ops[i].K)
		default:
			glog.Errorf("unknown op %v for %q", ops[i].Op, ops[i].K)
			return t, fmt.Errorf("%w: op %v", common.ErrInvalidParam, ops[i].Op)
		}
	}
	return t, nil
}

// AtomicUpdate -- applies ops to the current snapshot and publishes the
// result as one snapshot. On error nothing is published.
func (c *Catalog) AtomicUpdate(ops []CatalogOp) error {
	keys := make([]string, 0, len(ops))
	for _, op := range ops {
		keys = append(keys, op.K)
	}
	return c.update(keys, func(t Trie) (Trie, error) {
		return applyOps(t, ops)
	})
}

// Store -- single key store.
func Store[T any](c *Catalog, key string, value T) error {
	return c.AtomicUpdate([]CatalogOp{NewStoreOp(key, value)})
}

// Delete -- single key delete. Deleting a missing key is not an error.
func (c *Catalog) Delete(key string) error {
	return c.AtomicUpdate([]CatalogOp{NewDeleteOp(key)})
}

// LogAllKeys -- Prints the content of the current snapshot.
func (c *Catalog) LogAllKeys() {
	snap := c.Snapshot()
	glog.Infof("catalog %s version %d", c.name, c.Version())
	snap.Walk(func(key string, node *Node) bool {
		glog.Infof("%q: %s", key, boxString(node.value))
		return true
	})
}
