// Package wordlist implements the sorted, duplicate-free word list used
// as the hint engine's output container: a lexicographically ordered
// append-only list of words, kept in locale collation order via
// internal/collate.
//
// Growth is geometric — double on fill — mirroring the capacity
// doubling in Zubayear/ryushin's stack and queue packages, which this
// module adapts throughout for its own growable-array needs.
package wordlist

import "github.com/mzalewska/spellkeep/internal/collate"

// List is a sorted, duplicate-free slice of words.
type List struct {
	order *collate.Order
	words []string
}

// New returns an empty word list ordered by order.
func New(order *collate.Order) *List {
	return &List{order: order, words: make([]string, 0, 8)}
}

// Size returns the number of words stored.
func (l *List) Size() int {
	return len(l.words)
}

// Get returns the word at index i in collation order.
func (l *List) Get(i int) string {
	return l.words[i]
}

// Words returns the underlying sorted slice. Callers must not mutate it.
func (l *List) Words() []string {
	return l.words
}

// Clear empties the list.
func (l *List) Clear() {
	l.words = l.words[:0]
}

// lowerBound returns the index of the first word >= w, and whether that
// word equals w exactly.
func (l *List) lowerBound(w string) (int, bool) {
	lo, hi := 0, len(l.words)
	for lo < hi {
		mid := (lo + hi) / 2
		if l.order.CompareString(l.words[mid], w) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, lo < len(l.words) && l.words[lo] == w
}

// Add inserts w at its lower-bound position. If w is already present
// the call is a no-op. Add reports whether w was newly inserted.
func (l *List) Add(w string) bool {
	idx, found := l.lowerBound(w)
	if found {
		return false
	}
	if len(l.words) == cap(l.words) {
		grown := make([]string, len(l.words), max(cap(l.words)*2, 8))
		copy(grown, l.words)
		l.words = grown
	}
	l.words = append(l.words, "")
	copy(l.words[idx+1:], l.words[idx:])
	l.words[idx] = w
	return true
}
