package gst

import (
	"strings"
	"testing"
	"testing/quick"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

// buildTree inserts docs under increasing ids 0..len(docs)-1 and aggregates.
func buildTree(t *testing.T, docs []string) (*Tree, []string) {
	t.Helper()
	cleaned := make([]string, 0, len(docs))
	for _, d := range docs {
		if d == "" {
			d = "x"
		}
		cleaned = append(cleaned, d)
	}
	tr := New()
	for id, d := range cleaned {
		require.NoError(t, tr.Insert(d, id))
	}
	tr.Aggregate()
	return tr, cleaned
}

func allSubstrings(s string) []string {
	var out []string
	for i := 0; i < len(s); i++ {
		for j := i + 1; j <= len(s); j++ {
			out = append(out, s[i:j])
		}
	}
	return out
}

func TestUniqueFirstCharInvariant(t *testing.T) {
	fn := func(words []smallWord) bool {
		docs := make([]string, len(words))
		for i, w := range words {
			docs[i] = string(w)
		}
		if len(docs) == 0 {
			return true
		}
		tr, _ := buildTree(t, docs)
		for _, n := range tr.Nodes() {
			seen := map[byte]int{}
			for _, e := range n.Edges() {
				seen[e.Label()[0]]++
			}
			for _, count := range seen {
				if count > 1 {
					return false
				}
			}
		}
		return true
	}
	require.NoError(t, quick.Check(fn, nil))
}

func TestNonEmptyLabelsInvariant(t *testing.T) {
	fn := func(words []smallWord) bool {
		docs := make([]string, len(words))
		for i, w := range words {
			docs[i] = string(w)
		}
		if len(docs) == 0 {
			return true
		}
		tr, _ := buildTree(t, docs)
		for _, n := range tr.Nodes() {
			for _, e := range n.Edges() {
				if len(e.Label()) == 0 {
					return false
				}
			}
		}
		return true
	}
	require.NoError(t, quick.Check(fn, nil))
}

func TestDepthConsistencyInvariant(t *testing.T) {
	fn := func(words []smallWord) bool {
		docs := make([]string, len(words))
		for i, w := range words {
			docs[i] = string(w)
		}
		if len(docs) == 0 {
			return true
		}
		tr, _ := buildTree(t, docs)
		for _, n := range tr.Nodes() {
			for _, e := range n.Edges() {
				child := e.Dest()
				if child.SubstringLength() != n.SubstringLength()+len(e.Label()) {
					return false
				}
			}
		}
		return true
	}
	require.NoError(t, quick.Check(fn, nil))
}

func TestSubstringSoundnessInvariant(t *testing.T) {
	// Invariant 4: for any inserted (key, id) and any non-empty substring w
	// of key, searchNode(w) is non-nil and, after aggregation, id is in its
	// aggregated ids.
	fn := func(words []smallWord) bool {
		docs := make([]string, len(words))
		for i, w := range words {
			docs[i] = string(w)
		}
		if len(docs) == 0 {
			return true
		}
		tr, cleaned := buildTree(t, docs)
		for id, d := range cleaned {
			for _, w := range allSubstrings(d) {
				n := tr.searchNode(w)
				if n == nil {
					return false
				}
				if !lo.Contains(n.AggregatedIDs(), id) {
					return false
				}
			}
		}
		return true
	}
	require.NoError(t, quick.Check(fn, nil))
}

func TestSubstringCompletenessInvariant(t *testing.T) {
	// Invariant 5: id is in search(q) iff q is a substring of the document
	// inserted with that id.
	fn := func(words []smallWord, qw smallWord) bool {
		docs := make([]string, len(words))
		for i, w := range words {
			docs[i] = string(w)
		}
		if len(docs) == 0 {
			return true
		}
		tr, cleaned := buildTree(t, docs)
		q := string(qw)

		got, err := tr.Search(q)
		if err != nil {
			return false
		}
		gotSet := map[int]struct{}{}
		for _, id := range got {
			gotSet[id] = struct{}{}
		}

		for id, d := range cleaned {
			_, found := gotSet[id]
			isSubstring := q == "" || strings.Contains(d, q)
			if found != isSubstring {
				return false
			}
		}
		return true
	}
	require.NoError(t, quick.Check(fn, nil))
}

func TestMonotonicIDsInvariant(t *testing.T) {
	fn := func(ids []uint8) bool {
		tr := New()
		last := -1
		seenFirst := false
		for _, u := range ids {
			id := int(u)
			err := tr.Insert("a", id)
			if seenFirst && id < last {
				if err == nil {
					return false
				}
				continue
			}
			if err != nil {
				return false
			}
			last = id
			seenFirst = true
		}
		return true
	}
	require.NoError(t, quick.Check(fn, nil))
}
