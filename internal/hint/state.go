// Package hint implements the cost-bounded, layered shortest-path
// search over the dictionary's trie driven by its rewrite rule set: the
// centerpiece the rest of this module's components exist to serve.
//
// Grounded on spec.md §4.5's state-space description; there is no
// teacher analogue for the search itself (Zubayear/ryushin's trie has
// no rule-driven correction), so the search is hand-built in the
// teacher's idiom, reusing internal/queue as the Expand-closure
// worklist and internal/pqueue as the hint-cap top-K selector, exactly
// as those packages' doc comments describe.
package hint

import (
	"github.com/mzalewska/spellkeep/internal/deque"
	"github.com/mzalewska/spellkeep/internal/trie"
)

// State is one vertex of the search: the unread suffix of the input
// word, the trie node reached so far, the candidate output built so
// far, and the cumulative rule-application cost paid to reach it.
type State struct {
	Suffix []rune
	Node   *trie.Node
	Acc    []rune
	Cost   int
	Split  bool
	Prev   *State
}

// key identifies a state for the search's at-most-once filter: two
// states with the same remaining suffix and the same accumulated
// output are redundant regardless of how they were reached, and only
// the cheaper of the two needs to survive.
func (s *State) key() string {
	return string(s.Suffix) + "\x00" + string(s.Acc)
}

// Path returns the chain of states from the search's root to s, in
// forward order. It exists for debug tracing, not for the search
// itself, and is built with internal/deque the way its doc comment
// describes: predecessors pushed to the front as the chain unwinds.
func (s *State) Path() []*State {
	d := deque.New[*State]()
	for cur := s; cur != nil; cur = cur.Prev {
		d.PushFront(cur)
	}
	return d.Values()
}
