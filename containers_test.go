package aoc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	var s Stack[byte]
	_, ok := s.Pop()
	require.False(t, ok)

	s.PushN('Z', 'N')
	s.Push('D')
	top, ok := s.Peek()
	require.True(t, ok)
	require.Equal(t, byte('D'), top)

	got, ok := s.PopN(2)
	require.True(t, ok)
	require.Equal(t, []byte{'N', 'D'}, got)
	require.Equal(t, []byte{'Z'}, s.Slice())

	_, ok = s.PopN(2)
	require.False(t, ok)
	require.Equal(t, 1, s.Len())
}

func TestTopN(t *testing.T) {
	tests := []struct {
		vals []int
		n    int
		want []int
	}{
		{[]int{6000, 4000, 11000, 24000, 10000}, 3, []int{24000, 11000, 10000}},
		{[]int{5, 1, 9, 3}, 1, []int{9}},
		{[]int{5, 1}, 3, []int{5, 1}},
		{nil, 2, nil},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, TopN(tt.vals, tt.n), "TopN(%v, %d)", tt.vals, tt.n)
	}
}

func TestMinQueueUpdate(t *testing.T) {
	q := MinQueue[string]()
	a := &PQI[string]{V: "a", P: 5}
	b := &PQI[string]{V: "b", P: 3}
	c := &PQI[string]{V: "c", P: 4}
	q.Push(a)
	q.Push(b)
	q.Push(c)

	a.P = 1
	q.Update(a)

	var got []string
	for q.Len() > 0 {
		it := q.Pop()
		require.Equal(t, -1, it.Index())
		got = append(got, it.V)
	}
	require.Equal(t, []string{"a", "b", "c"}, got)
}

func TestQueueWhile(t *testing.T) {
	q := NewQueue(1, 2, 3)
	var got []int
	q.While(func(v int) bool {
		got = append(got, v)
		if v == 1 {
			q.Push(4)
		}
		return true
	})
	require.Equal(t, []int{1, 2, 3, 4}, got)
	require.Zero(t, q.Len())
}
