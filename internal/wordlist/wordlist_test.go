package wordlist

import (
	"testing"

	"github.com/mzalewska/spellkeep/internal/collate"
	"golang.org/x/text/language"
)

func TestAddSortsAndDeduplicates(t *testing.T) {
	l := New(collate.New(language.Und))
	for _, w := range []string{"cherry", "apple", "banana", "apple"} {
		l.Add(w)
	}
	if l.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", l.Size())
	}
	want := []string{"apple", "banana", "cherry"}
	for i, w := range want {
		if l.Get(i) != w {
			t.Errorf("Get(%d) = %q, want %q", i, l.Get(i), w)
		}
	}
}

func TestClear(t *testing.T) {
	l := New(collate.New(language.Und))
	l.Add("one")
	l.Add("two")
	l.Clear()
	if l.Size() != 0 {
		t.Errorf("Size() after Clear() = %d, want 0", l.Size())
	}
}

func TestAddReportsWhetherNew(t *testing.T) {
	l := New(collate.New(language.Und))
	if !l.Add("x") {
		t.Errorf("first Add should return true")
	}
	if l.Add("x") {
		t.Errorf("duplicate Add should return false")
	}
}
