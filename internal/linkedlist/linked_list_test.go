package linkedlist

import "testing"

func TestAddFirstAddLastOrder(t *testing.T) {
	l := New[int]()
	l.AddLast(2)
	l.AddLast(3)
	l.AddFirst(1)

	got := l.Values()
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Values()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestPeekOnEmptyReturnsErrEmpty(t *testing.T) {
	l := New[string]()
	if _, err := l.PeekFirst(); err != ErrEmpty {
		t.Errorf("PeekFirst() on empty: err = %v, want ErrEmpty", err)
	}
	if _, err := l.PeekLast(); err != ErrEmpty {
		t.Errorf("PeekLast() on empty: err = %v, want ErrEmpty", err)
	}
}

func TestRemoveFirstAndLast(t *testing.T) {
	l := New[int]()
	l.AddLast(1)
	l.AddLast(2)
	l.AddLast(3)

	first, err := l.RemoveFirst()
	if err != nil || first != 1 {
		t.Fatalf("RemoveFirst() = (%d, %v), want (1, nil)", first, err)
	}
	last, err := l.RemoveLast()
	if err != nil || last != 3 {
		t.Fatalf("RemoveLast() = (%d, %v), want (3, nil)", last, err)
	}
	if l.Size() != 1 {
		t.Errorf("Size() = %d, want 1", l.Size())
	}
}

func TestRemoveDownToEmptyClearsHeadAndTail(t *testing.T) {
	l := New[int]()
	l.AddLast(1)
	l.RemoveFirst()
	if !l.IsEmpty() {
		t.Errorf("expected list to be empty after removing its only element")
	}
	if _, err := l.PeekFirst(); err != ErrEmpty {
		t.Errorf("PeekFirst() after emptying: err = %v, want ErrEmpty", err)
	}
	l.AddLast(9)
	if got, _ := l.PeekFirst(); got != 9 {
		t.Errorf("list should be reusable after being emptied, got PeekFirst() = %d", got)
	}
}
