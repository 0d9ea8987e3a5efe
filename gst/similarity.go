package gst

import (
	"math"
	"sort"
)

// Similar returns the ids of documents whose indexed string s satisfies
// 2*|LCSubstr(q,s)| / (|q|+|s|) > ratio, approximated by walking suffix
// links and parent back-edges from q's terminal node rather than scanning
// the corpus. Only a query that occurs as a substring of some indexed
// document has a terminal node to start from; any other query returns an
// empty result. Each candidate is scored with the length of the part of q
// that the visited node actually shares, so every returned id satisfies the
// inequality. It requires a valid aggregation. A tree with no inserts at
// all has nothing to aggregate and returns an empty result instead of
// ErrNotAggregated.
func (t *Tree) Similar(q string, ratio float64) ([]int, error) {
	if ratio <= 0 || ratio >= 1 {
		return nil, invalidRatioError(ratio)
	}
	if !t.aggregationValid {
		if !t.hasInserts {
			return []int{}, nil
		}
		return nil, ErrNotAggregated
	}

	n := t.searchNode(q)
	if n == nil {
		return []int{}, nil
	}

	minLen := int(math.Floor(float64(len(q)) * ratio / 2))
	result := make(map[int]struct{})

	// After k suffix-link steps, q[k:] is a prefix of current's path, which
	// may run past the end of q; only min(depth, len(q)-k) characters are
	// shared with q.
	for current, k := n, 0; current != nil && current.SubstringLength() > minLen; current, k = current.suffix(), k+1 {
		for a := current; a != nil && a.SubstringLength() > minLen; a = a.SourceNode() {
			shared := min(a.SubstringLength(), len(q)-k)
			for _, id := range a.AggregatedIDs() {
				doc, ok := t.documents[id]
				if !ok {
					continue
				}
				sim := 2 * float64(shared) / float64(len(q)+len(doc))
				if sim > ratio {
					result[id] = struct{}{}
				}
			}
		}
	}

	ids := make([]int, 0, len(result))
	for id := range result {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}
