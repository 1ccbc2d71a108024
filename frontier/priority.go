package frontier

import "container/heap"

type priorityItem[T any] struct {
	item     T
	priority float64
	sequence uint64 // Insertion order, breaks ties between equal priorities
}

type priorityHeap[T any] []priorityItem[T]

func (h priorityHeap[T]) Len() int { return len(h) }

func (h priorityHeap[T]) Less(i, j int) bool {
	if h[i].priority == h[j].priority {
		return h[i].sequence < h[j].sequence
	}
	return h[i].priority < h[j].priority
}

func (h priorityHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *priorityHeap[T]) Push(x any) {
	*h = append(*h, x.(priorityItem[T]))
}

func (h *priorityHeap[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = priorityItem[T]{}
	*h = old[:n-1]
	return item
}

// PriorityQueue pops the item with the minimum priority. Items pushed with equal
// priorities pop in the order they were pushed. The priority is fixed at push time.
type PriorityQueue[T any] struct {
	heap     priorityHeap[T]
	sequence uint64
}

func NewPriorityQueue[T any]() *PriorityQueue[T] {
	return &PriorityQueue[T]{}
}

func (pq *PriorityQueue[T]) Push(item T, priority float64) {
	heap.Push(&pq.heap, priorityItem[T]{item: item, priority: priority, sequence: pq.sequence})
	pq.sequence++
}

func (pq *PriorityQueue[T]) Pop() T {
	if len(pq.heap) == 0 {
		panic("pop from empty priority queue")
	}
	return heap.Pop(&pq.heap).(priorityItem[T]).item
}

// Peek returns the minimum priority without removing its item.
func (pq *PriorityQueue[T]) Peek() (float64, bool) {
	if len(pq.heap) == 0 {
		return 0, false
	}
	return pq.heap[0].priority, true
}

func (pq *PriorityQueue[T]) Len() int      { return len(pq.heap) }
func (pq *PriorityQueue[T]) IsEmpty() bool { return len(pq.heap) == 0 }
