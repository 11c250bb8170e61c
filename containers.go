package aoc

import (
	"container/heap"
	"slices"
)

// Stack is a LIFO stack. The zero value is ready to use.
type Stack[T any] struct {
	s []T
}

func (s *Stack[T]) Push(v T) {
	s.s = append(s.s, v)
}

// PushN pushes vs in order, so the last element ends up on top.
func (s *Stack[T]) PushN(vs ...T) {
	s.s = append(s.s, vs...)
}

func (s *Stack[T]) Pop() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	v := s.s[len(s.s)-1]
	s.s = s.s[:len(s.s)-1]
	return v, true
}

// PopN removes the top n elements and returns them bottom first, so that
// PushN(PopN(n)...) moves them without changing their order.
func (s *Stack[T]) PopN(n int) ([]T, bool) {
	if n < 0 || n > len(s.s) {
		return nil, false
	}
	i := len(s.s) - n
	out := slices.Clone(s.s[i:])
	s.s = s.s[:i]
	return out, true
}

func (s *Stack[T]) Peek() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	return s.s[len(s.s)-1], true
}

func (s *Stack[T]) Len() int {
	return len(s.s)
}

// Slice returns a copy of the stack contents, bottom first.
func (s *Stack[T]) Slice() []T {
	return slices.Clone(s.s)
}

type PQI[T any] struct {
	V  T
	P  int
	ix int
}

// Index reports the position of i in its queue, or -1 once it has been
// popped.
func (i *PQI[T]) Index() int {
	return i.ix
}

// MinQueue returns a priority queue that pops the lowest priority first.
func MinQueue[T any]() *PQ[T] {
	return &PQ[T]{
		pq: pq[T]{
			min: true,
		},
	}
}

// MaxQueue returns a priority queue that pops the highest priority first.
func MaxQueue[T any]() *PQ[T] {
	return &PQ[T]{}
}

type PQ[T any] struct {
	pq pq[T]
}

func (pq *PQ[T]) Push(v *PQI[T]) {
	heap.Push(&pq.pq, v)
}

func (pq *PQ[T]) Pop() *PQI[T] {
	return heap.Pop(&pq.pq).(*PQI[T])
}

// Update restores the heap order after v.P changed.
func (pq *PQ[T]) Update(v *PQI[T]) {
	heap.Fix(&pq.pq, v.ix)
}

func (pq *PQ[T]) Len() int {
	return pq.pq.Len()
}

type pq[T any] struct {
	q   []*PQI[T]
	min bool
}

func (pq pq[T]) Len() int { return len(pq.q) }

func (pq pq[T]) Less(i, j int) bool {
	if pq.min {
		return pq.q[i].P < pq.q[j].P
	}
	return pq.q[i].P > pq.q[j].P
}

func (pq pq[T]) Swap(i, j int) {
	q := pq.q
	q[i], q[j] = q[j], q[i]
	q[i].ix = i
	q[j].ix = j
}

func (pq *pq[T]) Push(x any) {
	n := len(pq.q)
	i := x.(*PQI[T])
	i.ix = n
	pq.q = append(pq.q, i)
}

func (pq *pq[T]) Pop() any {
	old := pq.q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // avoid memory leak
	item.ix = -1   // for safety

	pq.q = old[0 : n-1]
	return item
}

// TopN returns the n largest values, largest first. It returns fewer than n
// values if vals is shorter.
func TopN(vals []int, n int) []int {
	q := MaxQueue[int]()
	for _, v := range vals {
		q.Push(&PQI[int]{V: v, P: v})
	}
	var out []int
	for len(out) < n && q.Len() > 0 {
		out = append(out, q.Pop().V)
	}
	return out
}

func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{
		q: in,
	}
}

// Queue is a FIFO queue. The zero value is ready to use.
type Queue[T any] struct {
	q []T
}

func (q *Queue[T]) Len() int {
	return len(q.q)
}

func (q *Queue[T]) Push(v T) {
	q.q = append(q.q, v)
}

func (q *Queue[T]) Pop() (T, bool) {
	if len(q.q) == 0 {
		var zero T
		return zero, false
	}
	v := q.q[0]
	q.q = q.q[1:]
	return v, true
}

func (q *Queue[T]) While(f func(T) bool) {
	for {
		v, ok := q.Pop()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}
