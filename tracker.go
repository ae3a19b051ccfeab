package cowtrie

import (
	"github.com/golang/glog"
)

// pathStep -- one consumed key unit and the node it was consumed from. parent
// is nil once the walk has fallen off the existing structure.
type pathStep struct {
	unit   byte
	parent *Node
}

// Tracker -- book keeping of the path walked for a single Put/Remove.
// steps -- one entry per key unit, root first.
// tail  -- node found at the full key path, nil if the path does not exist.
// tag   -- name used in log lines.
type Tracker struct {
	steps []pathStep
	tail  *Node
	tag   string
}

// Init -- walk key from root, recording the parent of every unit.
func (m *Tracker) Init(tag string, root *Node, key string) {
	m.tag = tag
	m.steps = make([]pathStep, 0, len(key))
	curr := root
	for i := 0; i < len(key); i++ {
		m.steps = append(m.steps, pathStep{unit: key[i], parent: curr})
		if curr != nil {
			curr = curr.children[key[i]]
		}
	}
	m.tail = curr
	glog.V(2).Infof("%s: tracked %d steps for %q (found: %v)", m.tag,
		len(m.steps), key, m.tail != nil)
}

// Found -- whether the whole key path exists.
func (m *Tracker) Found() bool {
	return m.tail != nil
}

// Rebuild -- clone the recorded ancestors bottom-up on top of subtree. A nil
// subtree drops the unit from its parent, and a parent left with nothing is
// dropped in turn. Returns the new root, nil if everything was pruned.
func (m *Tracker) Rebuild(subtree *Node) *Node {
	curr := subtree
	for i := len(m.steps) - 1; i >= 0; i-- {
		step := m.steps[i]
		var cloned *Node
		if step.parent != nil {
			cloned = step.parent.clone()
		} else {
			cloned = newNode(make(map[byte]*Node, 1), nil)
		}
		if curr != nil {
			cloned.children[step.unit] = curr
		} else {
			delete(cloned.children, step.unit)
			if cloned.isPrunable() {
				glog.V(2).Infof("%s: pruning empty node at depth %d", m.tag, i)
				curr = nil
				continue
			}
		}
		curr = cloned
	}
	return curr
}

// Reset -- drop references to the tracked nodes.
func (m *Tracker) Reset() {
	m.steps = nil
	m.tail = nil
}
