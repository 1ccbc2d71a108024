// Package frontier holds the containers that order discovered-but-unexpanded
// search nodes. Each discipline of the search package picks one of them.
package frontier

// Frontier is a container of items with a discipline-defined pop order.
type Frontier[T any] interface {
	Push(item T, priority float64)
	Pop() T
	Len() int
	IsEmpty() bool
}

// Stack pops the most recently pushed item first. Priorities are ignored.
type Stack[T any] struct {
	items []T
}

func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

func (s *Stack[T]) Push(item T, _ float64) {
	s.items = append(s.items, item)
}

func (s *Stack[T]) Pop() T {
	if len(s.items) == 0 {
		panic("pop from empty stack")
	}
	n := len(s.items) - 1
	item := s.items[n]
	var zero T
	s.items[n] = zero
	s.items = s.items[:n]
	return item
}

func (s *Stack[T]) Len() int      { return len(s.items) }
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// Queue pops the first pushed item first. Priorities are ignored.
type Queue[T any] struct {
	items []T
	head  int
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

func (q *Queue[T]) Push(item T, _ float64) {
	q.items = append(q.items, item)
}

func (q *Queue[T]) Pop() T {
	if q.head == len(q.items) {
		panic("pop from empty queue")
	}
	item := q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++
	// Reclaim the consumed prefix once it dominates the buffer
	if q.head > 32 && q.head*2 >= len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return item
}

func (q *Queue[T]) Len() int      { return len(q.items) - q.head }
func (q *Queue[T]) IsEmpty() bool { return q.Len() == 0 }
