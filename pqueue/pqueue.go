package pqueue

import "container/heap"

// Ordered is satisfied by element types that define a total order over
// themselves. Compare returns a negative number when the receiver sorts
// before other, zero when both are equivalent, and a positive number otherwise.
type Ordered[T any] interface {
	Compare(other T) int
}

// Nilable is the optional nil-detection hook. Pointer element types that
// implement it let Enqueue drop typed-nil values without reflection.
type Nilable interface {
	IsNil() bool
}

// Queue is a minimum-first priority queue over T.
// The zero value is not usable; construct with New.
// Queue is not safe for concurrent use.
type Queue[T Ordered[T]] struct {
	items entries[T]
	seq   uint64 // next insertion sequence number
}

// New returns an empty queue with room for capacity elements before the
// backing array grows. A negative capacity is treated as zero.
func New[T Ordered[T]](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue[T]{items: make(entries[T], 0, capacity)}
}

// Enqueue inserts x. Absent values (nil interfaces, or values whose IsNil
// reports true) are ignored.
func (q *Queue[T]) Enqueue(x T) {
	if absent(x) {
		return
	}
	heap.Push(&q.items, entry[T]{value: x, seq: q.seq})
	q.seq++
}

// Dequeue removes and returns the minimum element.
// The boolean is false when the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	e := heap.Pop(&q.items).(entry[T])

	return e.value, true
}

// Peek returns the minimum element without removing it.
// The boolean is false when the queue is empty.
func (q *Queue[T]) Peek() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}

	return q.items[0].value, true
}

// Len reports the number of queued elements.
func (q *Queue[T]) Len() int { return len(q.items) }

// Clear drops every element. Insertion sequence numbering restarts.
func (q *Queue[T]) Clear() {
	var zero entry[T]
	for i := range q.items {
		q.items[i] = zero // release references held by the backing array
	}
	q.items = q.items[:0]
	q.seq = 0
}

func absent[T any](x T) bool {
	v := any(x)
	if v == nil {
		return true
	}
	if n, ok := v.(Nilable); ok {
		return n.IsNil()
	}

	return false
}

// entry pairs a value with its insertion sequence; seq breaks ties so that
// equal elements come out first-in first-out.
type entry[T Ordered[T]] struct {
	value T
	seq   uint64
}

// entries implements heap.Interface.
type entries[T Ordered[T]] []entry[T]

func (h entries[T]) Len() int { return len(h) }

func (h entries[T]) Less(i, j int) bool {
	if c := h[i].value.Compare(h[j].value); c != 0 {
		return c < 0
	}

	return h[i].seq < h[j].seq
}

func (h entries[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entries[T]) Push(x interface{}) { *h = append(*h, x.(entry[T])) }

func (h *entries[T]) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	var zero entry[T]
	old[n-1] = zero
	*h = old[:n-1]

	return e
}
