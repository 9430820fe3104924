package treemap

import "testing"

func TestPutAndGet(t *testing.T) {
	m := New[string, int]()
	m.Put("b", 2)
	m.Put("a", 1)
	m.Put("c", 3)

	for k, want := range map[string]int{"a": 1, "b": 2, "c": 3} {
		got, ok := m.Get(k)
		if !ok || got != want {
			t.Errorf("Get(%q) = (%d, %v), want (%d, true)", k, got, ok, want)
		}
	}
}

func TestPutOverwritesExistingKey(t *testing.T) {
	m := New[string, int]()
	m.Put("a", 1)
	m.Put("a", 2)
	if got, _ := m.Get("a"); got != 2 {
		t.Errorf("Get(%q) = %d, want 2", "a", got)
	}
	if m.Size() != 1 {
		t.Errorf("Size() = %d, want 1", m.Size())
	}
}

func TestGetMissingKey(t *testing.T) {
	m := New[string, int]()
	if _, ok := m.Get("missing"); ok {
		t.Errorf("Get on missing key reported ok = true")
	}
	if m.ContainsKey("missing") {
		t.Errorf("ContainsKey on missing key reported true")
	}
}

func TestKeysAscendingAfterManyInserts(t *testing.T) {
	m := New[int, struct{}]()
	inserted := []int{5, 3, 8, 1, 4, 7, 9, 2, 6, 0}
	for _, k := range inserted {
		m.Put(k, struct{}{})
	}
	keys := m.Keys()
	if len(keys) != len(inserted) {
		t.Fatalf("Keys() has %d entries, want %d", len(keys), len(inserted))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Errorf("Keys() not ascending at %d: %d >= %d", i, keys[i-1], keys[i])
		}
	}
}

func TestRemoveDeletesAndShrinks(t *testing.T) {
	m := New[string, int]()
	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("c", 3)

	val, ok := m.Remove("b")
	if !ok || val != 2 {
		t.Fatalf("Remove(%q) = (%d, %v), want (2, true)", "b", val, ok)
	}
	if m.ContainsKey("b") {
		t.Errorf("%q should no longer be present after Remove", "b")
	}
	if m.Size() != 2 {
		t.Errorf("Size() = %d, want 2", m.Size())
	}
}

func TestRemoveEveryKeyLeavesTreeEmpty(t *testing.T) {
	m := New[int, struct{}]()
	keys := []int{5, 3, 8, 1, 4, 7, 9, 2, 6, 0}
	for _, k := range keys {
		m.Put(k, struct{}{})
	}
	for _, k := range keys {
		if _, ok := m.Remove(k); !ok {
			t.Fatalf("Remove(%d) reported not found", k)
		}
	}
	if m.Size() != 0 {
		t.Errorf("Size() = %d, want 0 after removing every key", m.Size())
	}
	if len(m.Keys()) != 0 {
		t.Errorf("Keys() = %v, want empty", m.Keys())
	}
}

func TestRemoveMissingKeyReportsFalse(t *testing.T) {
	m := New[string, int]()
	m.Put("a", 1)
	if _, ok := m.Remove("z"); ok {
		t.Errorf("Remove on missing key reported ok = true")
	}
}
