package hint

import (
	"github.com/mzalewska/spellkeep/internal/pqueue"
	"github.com/mzalewska/spellkeep/internal/queue"
	"github.com/mzalewska/spellkeep/internal/rules"
	"github.com/mzalewska/spellkeep/internal/trie"
	"github.com/mzalewska/spellkeep/internal/wordlist"
)

func isPlaceholder(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

// expandFrom runs Expand-closure starting from s: it follows free
// expansion edges as far as the trie has them, admitting every state
// along the way that survives the global at-most-once filter, and
// returns every admitted state (including s itself, if s survives).
// seen maps a state's key to the cheapest cost at which it has been
// admitted so far; because layers are built in non-decreasing cost
// order, the first admission of a key is always its cheapest, so a
// plain "already seen" check implements the sort-and-keep-cheapest
// filter spec.md describes without re-sorting every layer.
//
// A free-expansion step is taken whenever the current node has a child
// on the next suffix character, full stop — it is not additionally
// gated on that child being Terminal. Whether a landing node is
// Terminal matters for *emission* (Search's final top-K scan) and for
// which states later get a rule applied to them (Search's skip
// condition), both handled independently downstream; gating the walk
// itself on Terminal-ness as well would make it structurally
// impossible to ever admit a (Suffix: "", Node: non-Terminal) state —
// exactly the state an end-of-word insert rule needs to fire from, to
// append the character that turns the walk's landing node into a real
// word. The trie is finite and acyclic, so walking every matching edge
// this way cannot loop or explode.
func expandFrom(start *State, seen map[string]int) []*State {
	var admitted []*State
	work := queue.New[*State]()
	work.Enqueue(start)
	for {
		s, ok := work.Dequeue()
		if !ok {
			break
		}
		k := s.key()
		if _, already := seen[k]; already {
			continue
		}
		seen[k] = s.Cost
		admitted = append(admitted, s)
		if len(s.Suffix) == 0 {
			continue
		}
		ch := s.Suffix[0]
		child, ok := s.Node.Children.Lookup(ch)
		if !ok {
			continue
		}
		work.Enqueue(&State{
			Suffix: s.Suffix[1:],
			Node:   child,
			Acc:    append(append([]rune(nil), s.Acc...), ch),
			Cost:   s.Cost,
			Split:  s.Split,
			Prev:   s,
		})
	}
	return admitted
}

// walkStep is one candidate (node reached, characters substituted so
// far) while walking a rule's right-hand side through the trie.
type walkStep struct {
	node        *trie.Node
	substituted []rune
}

// walkRight substitutes bound placeholders directly and, at the single
// right-hand position (if any) whose placeholder does not appear on
// the left, branches over every child of the current trie node, as
// spec.md §4.5 describes. It returns every way the walk can complete;
// most rules have exactly one.
func walkRight(right []rune, start *trie.Node, bound map[rune]rune) []walkStep {
	results := []walkStep{{node: start}}
	for _, ch := range right {
		var next []walkStep
		for _, r := range results {
			if isPlaceholder(ch) {
				if boundCh, ok := bound[ch]; ok {
					if child, ok := r.node.Children.Lookup(boundCh); ok {
						next = append(next, walkStep{node: child, substituted: append(append([]rune(nil), r.substituted...), boundCh)})
					}
					continue
				}
				r.node.Children.All(func(c rune, child *trie.Node) bool {
					next = append(next, walkStep{node: child, substituted: append(append([]rune(nil), r.substituted...), c)})
					return true
				})
				continue
			}
			if child, ok := r.node.Children.Lookup(ch); ok {
				next = append(next, walkStep{node: child, substituted: append(append([]rune(nil), r.substituted...), ch)})
			}
		}
		results = next
		if len(results) == 0 {
			return nil
		}
	}
	return results
}

// applyRule produces every successor state reachable from s by
// applying r at suffix position pos, honoring r.Flag's scope
// predicate. root is the search's trie root and pos is s's position in
// the input word; both are needed to check Begin.
func applyRule(s *State, r *rules.Rule, pos int, root *trie.Node) []*State {
	if r.Flag == rules.Begin && (s.Node != root || pos != 0) {
		return nil
	}
	if r.Flag == rules.End && len(s.Suffix) != len(r.Left) {
		return nil
	}

	bound := make(map[rune]rune, len(r.Left))
	for j, ch := range r.Left {
		if isPlaceholder(ch) {
			bound[ch] = s.Suffix[j]
		}
	}

	steps := walkRight(r.Right, s.Node, bound)
	successors := make([]*State, 0, len(steps))
	for _, step := range steps {
		node := step.node
		acc := append(append([]rune(nil), s.Acc...), step.substituted...)
		split := s.Split
		switch r.Flag {
		case rules.End:
			if node.Kind != trie.Terminal {
				continue
			}
		case rules.Split:
			if node.Kind != trie.Terminal {
				continue
			}
			acc = append(acc, ' ')
			node = root
			split = true
		}
		successors = append(successors, &State{
			Suffix: s.Suffix[len(r.Left):],
			Node:   node,
			Acc:    acc,
			Cost:   s.Cost + r.Cost,
			Split:  split,
			Prev:   s,
		})
	}
	return successors
}

// candidate is one emitted hint awaiting the hint-cap top-K cut.
type candidate struct {
	word string
	cost int
}

// Search runs the layered, cost-bounded hint search for word against
// root using rule set rs, up to costMax, and writes at most maxHints
// results into out (in whatever order out.Add leaves them; out is
// responsible for final collation ordering and deduplication).
func Search(word []rune, root *trie.Node, rs *rules.Set, costMax, maxHints int, out *wordlist.List) {
	pre := rs.Preprocess(word)
	seen := make(map[string]int)

	layers := make([][]*State, costMax+1)
	layers[0] = expandFrom(&State{Suffix: word, Node: root, Acc: nil, Cost: 0}, seen)

	for k := 1; k <= costMax; k++ {
		var produced []*State
		for i := 1; i <= k; i++ {
			for _, s := range layers[k-i] {
				if len(s.Suffix) == 0 && s.Node.Kind == trie.Terminal {
					continue // already a complete emission; nothing left to correct
				}
				pos := len(word) - len(s.Suffix)
				for _, r := range pre[pos] {
					if r.Cost != i {
						continue
					}
					for _, succ := range applyRule(s, r, pos, root) {
						produced = append(produced, expandFrom(succ, seen)...)
					}
				}
			}
		}
		layers[k] = produced
	}

	top := pqueue.New[candidate](func(a, b candidate) bool {
		if a.cost != b.cost {
			return a.cost > b.cost
		}
		return a.word > b.word
	})
	for _, layer := range layers {
		for _, s := range layer {
			if s.Node.Kind != trie.Terminal || len(s.Suffix) != 0 {
				continue
			}
			c := candidate{word: string(s.Acc), cost: s.Cost}
			if top.Len() < maxHints {
				top.Push(c)
				continue
			}
			if worst, ok := top.Peek(); ok && c.cost < worst.cost {
				top.Pop()
				top.Push(c)
			}
		}
	}
	for _, c := range top.Values() {
		out.Add(c.word)
	}
}
