// Package set provides the small unordered set internal/rules uses to
// track which placeholder digits (0-9) appear on a rule's left-hand
// side while checking well-formedness. It is adapted from
// Zubayear/ryushin's set package, specialized from an any-keyed map to
// a rune-keyed one since the domain here — decimal placeholder digits —
// is a fixed, tiny alphabet.
package set

// Runes is a set of runes. The zero value is ready to use.
type Runes struct {
	items map[rune]struct{}
}

// Insert adds ch to the set. Duplicate insertions are ignored.
func (s *Runes) Insert(ch rune) {
	if s.items == nil {
		s.items = make(map[rune]struct{})
	}
	s.items[ch] = struct{}{}
}

// Contains reports whether ch is in the set.
func (s *Runes) Contains(ch rune) bool {
	_, ok := s.items[ch]
	return ok
}

// Size returns the number of elements in the set.
func (s *Runes) Size() int {
	return len(s.items)
}
