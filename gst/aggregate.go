package gst

import (
	"sort"

	"github.com/samber/lo"
)

// Aggregate populates every node's AggregatedIDs as the union of its own ids
// and those of every node reachable below it, and records the breadth-first
// node ordering returned by Nodes. It must run after the last Insert and
// before any call to Search or Similar; any subsequent Insert invalidates
// the result.
func (t *Tree) Aggregate() {
	order := t.bfsOrder()

	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		ids := append([]int{}, n.OwnIDs()...)
		for _, e := range n.Edges() {
			ids = append(ids, e.Dest().AggregatedIDs()...)
		}
		ids = lo.Uniq(ids)
		sort.Ints(ids)
		n.setAggregatedIDs(ids)
	}

	t.nodeOrder = order
	t.aggregationValid = true
}

// bfsOrder enumerates the tree's nodes breadth-first from the root. Reverse
// iteration over the result visits every child before its parent along tree
// edges, which Aggregate relies on.
func (t *Tree) bfsOrder() []*Node {
	order := make([]*Node, 0)
	queue := []*Node{t.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		order = append(order, n)
		for _, e := range n.Edges() {
			queue = append(queue, e.Dest())
		}
	}
	return order
}
