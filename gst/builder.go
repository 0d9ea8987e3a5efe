package gst

import "strings"

// cutLast returns str with its last character removed, or "" if str is
// already empty. The Ukkonen pseudocode this builder follows writes
// "stringPart[:-1]" freely, including at points where stringPart has just
// been shortened to empty; cutLast gives that operation a defined value
// instead of panicking on a negative slice bound.
func cutLast(str string) string {
	if len(str) == 0 {
		return ""
	}
	return str[:len(str)-1]
}

// Insert adds key to the tree under document id, extending every suffix of
// key through the generalized, on-line Ukkonen construction. ids must be
// non-decreasing across calls; the same id may be reused across calls to
// append key's suffixes to an existing document's id set.
//
// Insert invalidates any previous call to Aggregate: Search and Similar will
// fail with ErrNotAggregated until Aggregate runs again.
func (t *Tree) Insert(key string, id int) error {
	if t.hasInserts && id < t.last {
		return orderingError(id, t.last)
	}
	t.last = id
	t.hasInserts = true
	if _, ok := t.documents[id]; !ok {
		t.documents[id] = key
	}
	t.aggregationValid = false

	t.activeLeaf = t.root
	s := t.root
	var text string
	for i := 0; i < len(key); i++ {
		text = text + string(key[i])
		rest := key[i:]
		var remainder string
		s, remainder = t.update(s, text, rest, id)
		s, text = t.canonize(s, remainder)
	}

	if t.activeLeaf.suffix() == nil && t.activeLeaf != t.root && t.activeLeaf != s {
		t.activeLeaf.setSuffix(s)
	}
	return nil
}

// update implements the inner loop of Ukkonen's algorithm, generalized to
// recognize and reuse a transition that a previously inserted document
// already created at the active point, rather than always allocating a new
// leaf.
func (t *Tree) update(s *Node, stringPart, rest string, id int) (*Node, string) {
	newChar := stringPart[len(stringPart)-1]
	oldroot := t.root

	endpoint, r := t.testAndSplit(s, cutLast(stringPart), newChar, rest, id)
	for !endpoint {
		var leaf *Node
		if e := r.edge(newChar); e != nil {
			// The only way r can already have a newChar transition here is
			// that testAndSplit just created it while splitting an edge
			// below s (which also deposited id on its destination) — reuse
			// it instead of allocating a second leaf at the same position.
			leaf = e.Dest()
		} else {
			leaf = newNode()
			leaf.addOwnID(id)
			leaf.setSubstringLength(r.SubstringLength() + len(rest))
			e := newEdge(rest, r, leaf)
			r.addEdge(newChar, e)
		}

		if t.activeLeaf != t.root {
			t.activeLeaf.setSuffix(leaf)
		}
		t.activeLeaf = leaf

		if oldroot != t.root {
			oldroot.setSuffix(r)
		}
		oldroot = r

		if s.suffix() == nil {
			stringPart = stringPart[1:]
		} else {
			s, stringPart = t.canonize(s.suffix(), cutLast(stringPart))
			stringPart = stringPart + string(newChar)
		}
		endpoint, r = t.testAndSplit(s, cutLast(stringPart), newChar, rest, id)
	}

	if oldroot != t.root {
		oldroot.setSuffix(r)
	}
	return s, stringPart
}

// canonize normalizes a (node, string) reference by descending from s for as
// long as str starts with the whole label of the edge under its first
// character.
func (t *Tree) canonize(s *Node, str string) (*Node, string) {
	if str == "" {
		return s, ""
	}
	cur := s
	for len(str) > 0 {
		e := cur.edge(str[0])
		if e == nil {
			break
		}
		label := e.Label()
		if len(str) < len(label) || str[:len(label)] != label {
			break
		}
		str = str[len(label):]
		cur = e.Dest()
	}
	return cur, str
}

// testAndSplit decides whether the path stringPart+t already exists below s,
// splitting an edge at an implicit position when it partially does.
func (t *Tree) testAndSplit(s *Node, stringPart string, newChar byte, rest string, id int) (bool, *Node) {
	s2, tail := t.canonize(s, stringPart)

	if tail != "" {
		g := s2.edge(tail[0])
		label := g.Label()
		if label[len(tail)] == newChar {
			return true, s2
		}

		r := newNode()
		newLabel := label[len(tail):]
		e1 := newEdge(tail, s2, r)
		s2.addEdge(tail[0], e1)

		g.setLabel(newLabel)
		g.setSource(r)
		r.addEdge(newLabel[0], g)
		r.setSubstringLength(s2.SubstringLength() + len(tail))
		return false, r
	}

	e := s2.edge(newChar)
	if e == nil {
		return false, s2
	}
	switch {
	case rest == e.Label():
		e.Dest().addOwnID(id)
		return true, s2
	case strings.HasPrefix(rest, e.Label()):
		return true, s2
	case strings.HasPrefix(e.Label(), rest):
		n := newNode()
		n.addOwnID(id)
		n.setSubstringLength(s2.SubstringLength() + len(rest))
		e2 := newEdge(rest, s2, n)
		s2.addEdge(newChar, e2)

		remainder := e.Label()[len(rest):]
		e.setLabel(remainder)
		e.setSource(n)
		n.addEdge(remainder[0], e)
		return false, s2
	default:
		return true, s2
	}
}
