// SPDX-License-Identifier: GPL-3.0-or-later

// Package spscqueue implements the lock-free single-producer/single-consumer
// queue that carries events between the I/O producer and the worker
// consumer running the debug pipeline.
//
// Cardinality is a hard precondition: exactly one goroutine may call
// the producer operations ([Queue.Push], [Queue.PushBatch]) and
// exactly one goroutine may call the consumer operations
// ([Queue.Pop], [Queue.PopBatch], [Queue.Empty]). Violating this is
// undefined behavior, same as the source this package is modeled on.
package spscqueue

import "sync/atomic"

// node is a singly linked list cell. The sentinel node (the one head
// initially points to) carries no data; it exists purely to simplify
// the empty/non-empty boundary.
type node[T any] struct {
	next atomic.Pointer[node[T]]
	data T
}

// Queue is an unbounded FIFO with exactly one producer and one
// consumer. The zero value is not ready to use; construct with [New].
type Queue[T any] struct {
	head atomic.Pointer[node[T]] // consumer-owned: points at the sentinel preceding the next item
	tail atomic.Pointer[node[T]] // producer-owned: points at the last enqueued node
}

// New returns an empty [*Queue].
func New[T any]() *Queue[T] {
	sentinel := &node[T]{}
	q := &Queue[T]{}
	q.head.Store(sentinel)
	q.tail.Store(sentinel)
	return q
}

// Push enqueues item by move (producer only). Never blocks.
//
// The publishing protocol is the crux of the algorithm: first the
// new node is linked into the list with a release
// store on the old tail's next pointer (the publish point); only then
// is q.tail itself advanced, with relaxed ordering, since only the
// producer ever reads it.
func (q *Queue[T]) Push(item T) {
	n := &node[T]{data: item}
	tail := q.tail.Load()
	tail.next.Store(n) // release: publish point
	q.tail.Store(n)    // relaxed: producer-only bookkeeping
}

// PushBatch enqueues a contiguous sequence of items in one publish
// step (producer only): the new nodes are chained together first,
// then linked into the list with a single release store from the old
// tail. A consumer traversing next with acquire loads therefore either
// sees none of the new items or sees them all, in FIFO order, starting
// from the batch head — though it may observe them arriving node by
// node as it walks the chain, not as one atomic block.
func (q *Queue[T]) PushBatch(items []T) {
	if len(items) == 0 {
		return
	}

	first := &node[T]{data: items[0]}
	last := first
	for _, item := range items[1:] {
		n := &node[T]{data: item}
		last.next.Store(n) // relaxed: private chain, not yet visible
		last = n
	}

	tail := q.tail.Load()
	tail.next.Store(first) // release: publish point for the whole batch
	q.tail.Store(last)     // relaxed
}

// Pop dequeues into out (consumer only). Returns true if an item was
// popped, false if the queue was empty.
func (q *Queue[T]) Pop(out *T) bool {
	head := q.head.Load()
	next := head.next.Load() // acquire: pairs with the release in Push/PushBatch
	if next == nil {
		return false
	}
	*out = next.data
	var zero T
	next.data = zero // drop the reference so Push's caller's value can be GC'd
	q.head.Store(next)
	return true
}

// PopBatch pops up to max items into out, returning the count popped
// (consumer only).
func (q *Queue[T]) PopBatch(out []T, max int) int {
	count := 0
	for count < max && count < len(out) {
		if !q.Pop(&out[count]) {
			break
		}
		count++
	}
	return count
}

// Empty is a best-effort snapshot check (consumer only): it may
// return true immediately before the producer publishes an item, or
// false immediately before the consumer drains the only item present.
func (q *Queue[T]) Empty() bool {
	head := q.head.Load()
	return head.next.Load() == nil
}
