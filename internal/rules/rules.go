// Package rules implements the rewrite-rule set the hint search walks:
// an insertion-ordered collection of (left, right, cost, flag) records,
// each possibly containing decimal-digit placeholders, together with
// the per-suffix-position preprocessing that the search uses to avoid
// scanning the whole rule set at every trie step.
//
// This has no direct analogue in Zubayear/ryushin's collections; it is
// grounded on the well-formedness and matching predicates of
// spec.md §3/§4.4, and adapted to the module's symtab/set idiom for
// tracking which placeholder digits a rule binds.
package rules

import (
	"fmt"
	"unicode"

	"github.com/mzalewska/spellkeep/internal/set"
	"github.com/mzalewska/spellkeep/internal/spellerr"
)

// Flag scopes where a rule may apply.
type Flag int

const (
	// Normal imposes no positional constraint.
	Normal Flag = iota
	// Begin requires the state's trie position to be Root and the
	// remaining suffix to equal the original input word.
	Begin
	// End requires the resulting trie position to be Terminal and the
	// consumed suffix to be exactly the rule's left side.
	End
	// Split requires the resulting trie position to be Terminal; on
	// success it appends a space to the accumulated output and resets
	// the trie position to Root.
	Split
)

func (f Flag) String() string {
	switch f {
	case Begin:
		return "Begin"
	case End:
		return "End"
	case Split:
		return "Split"
	default:
		return "Normal"
	}
}

// Rule is one rewrite rule. Left and Right may contain decimal-digit
// placeholder runes ('0'-'9'); an empty Left or Right is the always-
// applicable or always-inserting side and is spelled as the empty
// slice internally ('*' is only the external, textual notation).
type Rule struct {
	Left  []rune
	Right []rune
	Cost  int
	Flag  Flag
}

// isPlaceholder reports whether ch is one of the ten digit placeholder
// symbols a rule may use.
func isPlaceholder(ch rune) bool {
	return unicode.IsDigit(ch) && ch >= '0' && ch <= '9'
}

// wellFormed checks spec.md §3's rule validity constraint: the multiset
// of placeholder digits appearing on the right but not on the left has
// size at most one, and same-length zero-length rules are rejected
// unless flag is Split.
func wellFormed(left, right []rune, flag Flag) bool {
	var onLeft set.Runes
	for _, ch := range left {
		if isPlaceholder(ch) {
			onLeft.Insert(ch)
		}
	}
	unboundOccurrences := 0
	for _, ch := range right {
		if isPlaceholder(ch) && !onLeft.Contains(ch) {
			unboundOccurrences++
		}
	}
	if unboundOccurrences > 1 {
		return false
	}
	if len(left) == 0 && len(right) == 0 && flag != Split {
		return false
	}
	return true
}

// Set stores rules in insertion order.
type Set struct {
	rules []*Rule
}

// New returns an empty rule set.
func New() *Set {
	return &Set{}
}

// Add validates and appends a rule. It returns spellerr.ErrMalformedRule
// wrapped with context if the rule fails well-formedness, in which case
// the set is left unmodified.
func (s *Set) Add(left, right []rune, cost int, flag Flag) (*Rule, error) {
	if !wellFormed(left, right, flag) {
		return nil, fmt.Errorf("rules: add %q -> %q: %w", string(left), string(right), spellerr.ErrMalformedRule)
	}
	r := &Rule{
		Left:  append([]rune(nil), left...),
		Right: append([]rune(nil), right...),
		Cost:  cost,
		Flag:  flag,
	}
	s.rules = append(s.rules, r)
	return r, nil
}

// AddBidirectional is a convenience for rule_add's bidirectional flag:
// it adds (left, right, cost, flag) and, if the reverse rule is also
// well-formed, (right, left, cost, flag). It returns both rules added;
// the second is nil if only the forward direction was added (reverse
// rejected by well-formedness is not itself an error, since the
// bidirectional request may legitimately only make sense one way for
// Begin/End/Split scoped rules).
func (s *Set) AddBidirectional(left, right []rune, cost int, flag Flag) (forward, reverse *Rule, err error) {
	forward, err = s.Add(left, right, cost, flag)
	if err != nil {
		return nil, nil, err
	}
	reverse, _ = s.Add(right, left, cost, flag)
	return forward, reverse, nil
}

// Clear removes every rule.
func (s *Set) Clear() {
	s.rules = nil
}

// Len reports the number of rules stored.
func (s *Set) Len() int {
	return len(s.rules)
}

// All calls fn for every rule in insertion order.
func (s *Set) All(fn func(r *Rule) bool) {
	for _, r := range s.rules {
		if !fn(r) {
			return
		}
	}
}

// matches reports whether r.Left can match word starting at position i,
// per spec.md §4.4: empty left always matches; otherwise every position
// of left must either be a placeholder or equal the corresponding
// character of word, and there must be enough characters remaining.
func matches(r *Rule, word []rune, i int) bool {
	if len(r.Left) == 0 {
		return true
	}
	if i+len(r.Left) > len(word) {
		return false
	}
	for j, ch := range r.Left {
		if isPlaceholder(ch) {
			continue
		}
		if ch != word[i+j] {
			return false
		}
	}
	return true
}

// Preprocess returns, for each suffix-start index i in [0, len(word)],
// the list of rules whose left side matches word at i. This mirrors
// spec.md §4.4's per-position rule index, built once per search so the
// hint search's inner loop only ever scans the applicable subset.
//
// The result has len(word)+1 entries so that the empty suffix (i ==
// len(word)) is also indexable; only always-applicable (empty-left)
// rules can match there.
func (s *Set) Preprocess(word []rune) [][]*Rule {
	byPosition := make([][]*Rule, len(word)+1)
	for i := range byPosition {
		for _, r := range s.rules {
			if matches(r, word, i) {
				byPosition[i] = append(byPosition[i], r)
			}
		}
	}
	return byPosition
}
