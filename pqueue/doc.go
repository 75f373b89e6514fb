// Package pqueue provides a generic minimum-first priority queue.
//
// What:
//
//   - Queue[T] keeps elements of any type that knows how to compare itself
//     with another value of the same type (the Ordered[T] constraint).
//   - Dequeue and Peek always observe the minimum element.
//   - Elements that compare equal leave the queue in insertion order (FIFO),
//     so two runs over the same input produce the same output.
//
// Why:
//
//   - The shortest-path tree builder keeps a frontier of candidate edges.
//   - The path ranker keeps sidetrack sequences keyed by their excess cost.
//     Both need "give me the cheapest pending thing" with reproducible ties.
//
// The ordering capability is a compile-time bound: a type without a
// Compare(T) int method cannot instantiate Queue.
//
// Complexity:
//
//   - Enqueue: O(log n)
//   - Dequeue: O(log n)
//   - Peek:    O(1)
//   - Clear:   O(1) (the backing array is kept for reuse)
//
// Example:
//
//	q := pqueue.New[*job](16)
//	q.Enqueue(&job{cost: 3})
//	q.Enqueue(&job{cost: 1})
//	j, ok := q.Dequeue() // j.cost == 1, ok == true
package pqueue
