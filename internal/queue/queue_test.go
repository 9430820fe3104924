package queue

import "testing"

func TestEnqueueDequeueOrder(t *testing.T) {
	q := New[int]()
	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)

	for _, want := range []int{1, 2, 3} {
		got, ok := q.Dequeue()
		if !ok || got != want {
			t.Fatalf("Dequeue() = (%v, %v), want (%v, true)", got, ok, want)
		}
	}
}

func TestDequeueEmptyReportsFalse(t *testing.T) {
	q := New[int]()
	if _, ok := q.Dequeue(); ok {
		t.Errorf("Dequeue() on empty queue reported ok = true")
	}
}

func TestGrowsPastInitialCapacity(t *testing.T) {
	q := New[int]()
	for i := 0; i < 100; i++ {
		q.Enqueue(i)
	}
	if q.Size() != 100 {
		t.Fatalf("Size() = %d, want 100", q.Size())
	}
	for i := 0; i < 100; i++ {
		got, ok := q.Dequeue()
		if !ok || got != i {
			t.Fatalf("Dequeue() = (%v, %v), want (%v, true)", got, ok, i)
		}
	}
}

func TestIsEmpty(t *testing.T) {
	q := New[string]()
	if !q.IsEmpty() {
		t.Errorf("new queue should be empty")
	}
	q.Enqueue("a")
	if q.IsEmpty() {
		t.Errorf("queue with an element should not be empty")
	}
}

func TestWrapsAroundCircularBuffer(t *testing.T) {
	q := New[int]()
	for i := 0; i < 10; i++ {
		q.Enqueue(i)
	}
	for i := 0; i < 8; i++ {
		q.Dequeue()
	}
	for i := 10; i < 20; i++ {
		q.Enqueue(i)
	}
	want := 8
	for q.Size() > 0 {
		got, _ := q.Dequeue()
		if got != want {
			t.Fatalf("Dequeue() = %d, want %d", got, want)
		}
		want++
	}
}
