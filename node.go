package cowtrie

import (
	"fmt"
	"strings"
)

// Node - one position in the key space of a trie. Each node is represented
// by the following data:
// 'children' maps the next key unit to the child node. Child nodes are
//            shared by every snapshot that reaches them.
// 'value'    is nil for a plain node, otherwise it holds a *T box for the
//            stored value. The dynamic type of the box is the type tag that
//            typed lookups compare against.
//
// A node is never modified once a Trie can reach it. All changes go through
// clone().
type Node struct {
	children map[byte]*Node
	value    interface{}
}

func newNode(children map[byte]*Node, value interface{}) *Node {
	return &Node{children: children, value: value}
}

// clone - shallow copy of the node. The children map is copied so the clone
// can be rewired, the child nodes and the value box are shared.
func (node *Node) clone() *Node {
	children := make(map[byte]*Node, len(node.children)+1)
	for unit, child := range node.children {
		children[unit] = child
	}
	return &Node{children: children, value: node.value}
}

// HasValue - whether this node carries a value.
func (node *Node) HasValue() bool {
	return node != nil && node.value != nil
}

// Child - child for the given key unit, nil if there is none.
func (node *Node) Child(unit byte) *Node {
	if node == nil {
		return nil
	}
	return node.children[unit]
}

// NumChildren - number of children of the node.
func (node *Node) NumChildren() int {
	if node == nil {
		return 0
	}
	return len(node.children)
}

// isPrunable - a node with neither value nor children holds nothing.
func (node *Node) isPrunable() bool {
	return node.value == nil && len(node.children) == 0
}

// String - stringify the node
// Returns the units of the children and the type of the value box.
func (node *Node) String() string {
	if node == nil {
		return "{nil}"
	}
	var units []string
	for _, unit := range node.sortedUnits() {
		units = append(units, fmt.Sprintf("%q", unit))
	}
	valStr := "none"
	if node.value != nil {
		valStr = fmt.Sprintf("%T", node.value)
	}
	return fmt.Sprintf("{%p [children (len:%d): %s, value: %s]}",
		node, len(node.children), strings.Join(units, " "), valStr)
}
