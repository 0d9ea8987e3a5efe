package gst

import "sort"

// edgeMapSortThreshold is the fan-out above which edgeMap switches from a
// linear scan over an unsorted slice to a sorted slice probed with binary
// search. Node fan-out is overwhelmingly small (bounded by the alphabet seen
// at that point in the corpus), so most nodes never cross it.
const edgeMapSortThreshold = 6

// edgeMap is a compact mapping from a single byte to an outgoing edge. It
// favors memory footprint over asymptotics: two parallel slices instead of a
// map[byte]*Edge, which would carry a large constant overhead per node for
// the fan-outs actually seen in practice.
type edgeMap struct {
	keys   []byte
	edges  []*Edge
	sorted bool
}

func (m *edgeMap) get(c byte) *Edge {
	if m.sorted {
		i := sort.Search(len(m.keys), func(i int) bool { return m.keys[i] >= c })
		if i < len(m.keys) && m.keys[i] == c {
			return m.edges[i]
		}
		return nil
	}
	for i, k := range m.keys {
		if k == c {
			return m.edges[i]
		}
	}
	return nil
}

// put inserts or replaces the edge under c, returning the previous edge if
// any was present.
func (m *edgeMap) put(c byte, e *Edge) *Edge {
	if m.sorted {
		i := sort.Search(len(m.keys), func(i int) bool { return m.keys[i] >= c })
		if i < len(m.keys) && m.keys[i] == c {
			prev := m.edges[i]
			m.edges[i] = e
			return prev
		}
		m.keys = append(m.keys, 0)
		m.edges = append(m.edges, nil)
		copy(m.keys[i+1:], m.keys[i:len(m.keys)-1])
		copy(m.edges[i+1:], m.edges[i:len(m.edges)-1])
		m.keys[i] = c
		m.edges[i] = e
		return nil
	}

	for i, k := range m.keys {
		if k == c {
			prev := m.edges[i]
			m.edges[i] = e
			return prev
		}
	}
	m.keys = append(m.keys, c)
	m.edges = append(m.edges, e)
	if len(m.keys) > edgeMapSortThreshold {
		m.sort()
	}
	return nil
}

func (m *edgeMap) sort() {
	idx := make([]int, len(m.keys))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return m.keys[idx[i]] < m.keys[idx[j]] })

	keys := make([]byte, len(m.keys))
	edges := make([]*Edge, len(m.edges))
	for i, j := range idx {
		keys[i] = m.keys[j]
		edges[i] = m.edges[j]
	}
	m.keys, m.edges = keys, edges
	m.sorted = true
}

// values enumerates the edges in the map's current (arbitrary but stable)
// order.
func (m *edgeMap) values() []*Edge {
	return m.edges
}

func (m *edgeMap) size() int {
	return len(m.keys)
}

func (m *edgeMap) isEmpty() bool {
	return len(m.keys) == 0
}
