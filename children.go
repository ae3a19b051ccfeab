package cowtrie

import "sort"

// units - the key units of a node's children. Kept sorted so that walks over
// a snapshot are deterministic.
type units []byte

func (u units) Len() int           { return len(u) }
func (u units) Less(i, j int) bool { return u[i] < u[j] }
func (u units) Swap(i, j int)      { u[i], u[j] = u[j], u[i] }

// sortedUnits - the child units of the node in ascending order.
func (node *Node) sortedUnits() units {
	u := make(units, 0, len(node.children))
	for unit := range node.children {
		u = append(u, unit)
	}
	sort.Sort(u)
	return u
}
