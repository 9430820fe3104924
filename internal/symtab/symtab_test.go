package symtab

import (
	"testing"

	"github.com/mzalewska/spellkeep/internal/collate"
	"golang.org/x/text/language"
)

func newOrder() *collate.Order {
	return collate.New(language.Und)
}

func TestInsertSortedKeepsOrder(t *testing.T) {
	tab := New[int](newOrder())
	for i, ch := range []rune{'d', 'b', 'a', 'c'} {
		if !tab.InsertSorted(ch, i) {
			t.Fatalf("InsertSorted(%q) = false, want true", ch)
		}
	}
	var got []rune
	tab.All(func(ch rune, _ int) bool {
		got = append(got, ch)
		return true
	})
	want := []rune{'a', 'b', 'c', 'd'}
	for i, ch := range want {
		if got[i] != ch {
			t.Errorf("position %d: got %q, want %q", i, got[i], ch)
		}
	}
}

func TestInsertSortedDuplicateIsNoOp(t *testing.T) {
	tab := New[int](newOrder())
	if !tab.InsertSorted('a', 1) {
		t.Fatalf("first insert should succeed")
	}
	if tab.InsertSorted('a', 2) {
		t.Fatalf("duplicate insert should report false")
	}
	val, ok := tab.Lookup('a')
	if !ok || val != 1 {
		t.Errorf("Lookup('a') = %v, %v; want 1, true", val, ok)
	}
}

func TestRemoveShrinks(t *testing.T) {
	tab := New[int](newOrder())
	for i := 0; i < 20; i++ {
		tab.InsertSorted(rune('a'+i), i)
	}
	for i := 0; i < 18; i++ {
		if !tab.Remove(rune('a' + i)) {
			t.Fatalf("Remove(%q) = false", rune('a'+i))
		}
	}
	if tab.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tab.Len())
	}
	if _, ok := tab.Lookup('a'); ok {
		t.Errorf("expected 'a' to be gone")
	}
}

func TestLookupMissing(t *testing.T) {
	tab := New[string](newOrder())
	tab.InsertSorted('x', "ex")
	if _, ok := tab.Lookup('y'); ok {
		t.Errorf("Lookup('y') should report false on a table without 'y'")
	}
}
