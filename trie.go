package cowtrie

import (
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/golang/glog"
)

// Trie - one immutable snapshot of a copy-on-write trie. The zero value is
// the empty trie. Put and Remove never modify the receiver, they return a
// new snapshot that shares every untouched subtree with the old one, so
// snapshots can be read from any number of goroutines without locking.
//
// Keys are strings and every byte of a key is one key unit. The empty key
// addresses the root's own value.
type Trie struct {
	root *Node
}

// NewTrie - returns a trie rooted at root. A nil root is the empty trie.
func NewTrie(root *Node) Trie {
	return Trie{root: root}
}

// Root - root node of the snapshot, nil for the empty trie.
func (t Trie) Root() *Node {
	return t.root
}

// IsEmpty - whether the snapshot has no nodes at all.
func (t Trie) IsEmpty() bool {
	return t.root == nil
}

// find - node at the full key path, nil if the path does not exist.
func (t Trie) find(key string) *Node {
	node := t.root
	for i := 0; i < len(key) && node != nil; i++ {
		node = node.children[key[i]]
	}
	return node
}

// Get - value stored at key as a *T. Returns nil if the key is missing or if
// the stored value is not a T; the two cases are indistinguishable.
// The returned pointer is shared with every snapshot holding the same value
// node and must be treated as read-only. Use Lookup for a private copy.
func Get[T any](t Trie, key string) *T {
	node := t.find(key)
	if node == nil || node.value == nil {
		return nil
	}
	val, ok := node.value.(*T)
	if !ok {
		if glog.V(2) {
			glog.Infof("type mismatch at %q: stored %T, requested %T", key,
				node.value, val)
		}
		return nil
	}
	return val
}

// Lookup - copy of the T stored at key and whether it was found.
func Lookup[T any](t Trie, key string) (T, bool) {
	val := Get[T](t, key)
	if val == nil {
		var zero T
		return zero, false
	}
	return *val, true
}

// Put - returns a new trie in which key maps to value. value is boxed once
// and the box is owned by the new value node.
func Put[T any](t Trie, key string, value T) Trie {
	box := new(T)
	*box = value
	return t.putBox(key, box)
}

// putBox - Put with an already boxed value.
func (t Trie) putBox(key string, box interface{}) Trie {
	var tracker Tracker
	tracker.Init("put", t.root, key)
	defer tracker.Reset()

	// The terminal node keeps the children of the node it replaces.
	var terminal *Node
	if tracker.Found() {
		terminal = tracker.tail.clone()
		terminal.value = box
	} else {
		terminal = newNode(make(map[byte]*Node), box)
	}

	root := tracker.Rebuild(terminal)
	glog.V(2).Infof("put %q (%T): new root %p, old root %p", key, box, root, t.root)
	return Trie{root: root}
}

// Remove - returns a trie without the value at key. If there is no value at
// key the receiver itself is returned. Nodes left with neither a value nor
// children are pruned, up to and including the root.
func (t Trie) Remove(key string) Trie {
	var tracker Tracker
	tracker.Init("remove", t.root, key)
	defer tracker.Reset()

	if !tracker.Found() || tracker.tail.value == nil {
		glog.V(2).Infof("remove %q: no value, returning same trie", key)
		return t
	}

	var terminal *Node
	if len(tracker.tail.children) > 0 {
		terminal = tracker.tail.clone()
		terminal.value = nil
	}

	root := tracker.Rebuild(terminal)
	glog.V(2).Infof("remove %q: new root %p, old root %p", key, root, t.root)
	return Trie{root: root}
}

// Walk - visits every value node in ascending key order. Stops early when
// fn returns false.
func (t Trie) Walk(fn func(key string, node *Node) bool) {
	t.WalkPrefix("", fn)
}

// WalkPrefix - like Walk, restricted to keys starting with prefix.
func (t Trie) WalkPrefix(prefix string, fn func(key string, node *Node) bool) {
	start := t.find(prefix)
	if start == nil {
		return
	}
	walk([]byte(prefix), start, fn)
}

func walk(path []byte, node *Node, fn func(string, *Node) bool) bool {
	if node.value != nil && !fn(string(path), node) {
		return false
	}
	for _, unit := range node.sortedUnits() {
		if !walk(append(path, unit), node.children[unit], fn) {
			return false
		}
	}
	return true
}

// Keys - all keys with a value, in ascending order.
func (t Trie) Keys() []string {
	var keys []string
	t.Walk(func(key string, _ *Node) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Len - number of keys with a value. O(number of nodes).
func (t Trie) Len() int {
	n := 0
	t.Walk(func(string, *Node) bool {
		n++
		return true
	})
	return n
}

// WriteTree - dumps every value node with its key and value to writer.
func (t Trie) WriteTree(writer io.Writer) error {
	if t.root == nil {
		_, err := fmt.Fprintln(writer, "Trie is empty")
		return err
	}
	var err error
	t.Walk(func(key string, node *Node) bool {
		_, err = fmt.Fprintf(writer, "%q: %v\n", key, boxString(node.value))
		return err == nil
	})
	return err
}

// Print - WriteTree to stdout.
func (t Trie) Print() error {
	return t.WriteTree(os.Stdout)
}

// boxString - printable form of the boxed value.
func boxString(box interface{}) string {
	return fmt.Sprintf("%v (%T)", reflect.Indirect(reflect.ValueOf(box)), box)
}
