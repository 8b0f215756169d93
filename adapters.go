package dbg

import (
	"container/heap"
	"slices"
)

// The standard library has no stack or queue adapters, so the package
// ships minimal generic ones. They exist so adapter-shaped rendering has
// first-class citizens, but any user type satisfying [Stacker], [Queuer],
// or [PriorityQueuer] renders identically.

// Stack is a LIFO adapter. The zero value is an empty stack ready to use.
type Stack[T any] struct {
	items []T
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) { s.items = append(s.items, v) }

// Pop removes and returns the top element. It panics on an empty stack.
func (s *Stack[T]) Pop() T {
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v
}

// Top returns the top element without removing it. It panics on an empty
// stack.
func (s Stack[T]) Top() T { return s.items[len(s.items)-1] }

// Len returns the number of stacked elements.
func (s Stack[T]) Len() int { return len(s.items) }

// Empty reports whether the stack holds no elements.
func (s Stack[T]) Empty() bool { return len(s.items) == 0 }

// PopOrder drains a copy by repeated Top and Pop and returns the elements
// top first. The receiver is unchanged.
func (s Stack[T]) PopOrder() []any {
	cp := Stack[T]{items: slices.Clone(s.items)}
	out := make([]any, 0, cp.Len())
	for !cp.Empty() {
		out = append(out, cp.Pop())
	}
	return out
}

// Queue is a FIFO adapter. The zero value is an empty queue ready to use.
type Queue[T any] struct {
	items []T
}

// Push places v at the back of the queue.
func (q *Queue[T]) Push(v T) { q.items = append(q.items, v) }

// Pop removes and returns the front element. It panics on an empty queue.
func (q *Queue[T]) Pop() T {
	v := q.items[0]
	q.items = q.items[1:]
	return v
}

// Front returns the front element without removing it. It panics on an
// empty queue.
func (q Queue[T]) Front() T { return q.items[0] }

// Len returns the number of queued elements.
func (q Queue[T]) Len() int { return len(q.items) }

// Empty reports whether the queue holds no elements.
func (q Queue[T]) Empty() bool { return len(q.items) == 0 }

// FrontOrder drains a copy by repeated Front and Pop and returns the
// elements in FIFO order. The receiver is unchanged.
func (q Queue[T]) FrontOrder() []any {
	cp := Queue[T]{items: slices.Clone(q.items)}
	out := make([]any, 0, cp.Len())
	for !cp.Empty() {
		out = append(out, cp.Pop())
	}
	return out
}

// PriorityQueue is an ordered adapter on container/heap. Use
// [NewPriorityQueue]; the zero value has no comparator and cannot accept
// elements.
type PriorityQueue[T any] struct {
	h *pqHeap[T]
}

// NewPriorityQueue returns an empty priority queue. less reports whether a
// pops before b.
func NewPriorityQueue[T any](less func(a, b T) bool) PriorityQueue[T] {
	return PriorityQueue[T]{h: &pqHeap[T]{less: less}}
}

// Push adds v to the queue.
func (q PriorityQueue[T]) Push(v T) { heap.Push(q.h, v) }

// Pop removes and returns the highest-priority element. It panics on an
// empty queue.
func (q PriorityQueue[T]) Pop() T { return heap.Pop(q.h).(T) }

// Top returns the highest-priority element without removing it. It panics
// on an empty queue.
func (q PriorityQueue[T]) Top() T { return q.h.items[0] }

// Len returns the number of queued elements.
func (q PriorityQueue[T]) Len() int {
	if q.h == nil {
		return 0
	}
	return len(q.h.items)
}

// Empty reports whether the queue holds no elements.
func (q PriorityQueue[T]) Empty() bool { return q.Len() == 0 }

// PriorityOrder drains a copy by repeated Top and Pop and returns the
// elements in pop-by-priority order. The receiver is unchanged.
func (q PriorityQueue[T]) PriorityOrder() []any {
	if q.h == nil {
		return nil
	}
	cp := PriorityQueue[T]{h: &pqHeap[T]{items: slices.Clone(q.h.items), less: q.h.less}}
	out := make([]any, 0, cp.Len())
	for !cp.Empty() {
		out = append(out, cp.Pop())
	}
	return out
}

type pqHeap[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (h *pqHeap[T]) Len() int           { return len(h.items) }
func (h *pqHeap[T]) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }
func (h *pqHeap[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *pqHeap[T]) Push(x any)         { h.items = append(h.items, x.(T)) }

func (h *pqHeap[T]) Pop() any {
	n := len(h.items) - 1
	v := h.items[n]
	h.items = h.items[:n]
	return v
}
