package Queues

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArrayQueue_Order(t *testing.T) {
	re := require.New(t)
	for _, initCap := range []uint{0, 1, 2, 7} {
		q := MakeArrayQueue[int](initCap)
		re.True(q.Empty())
		for i := range 10 {
			q.Push(i)
		}
		re.Equal(uint(10), q.Size())
		re.Equal(0, q.Peek())
		for i := range 5 {
			v, err := q.Pop()
			re.NoError(err)
			re.Equal(i, v)
		}
		// wrap around the backing array before growing again.
		for i := 10; i < 20; i++ {
			q.Push(i)
		}
		for i := 5; i < 20; i++ {
			v, err := q.Pop()
			re.NoError(err)
			re.Equal(i, v)
		}
		re.True(q.Empty())
	}
}

func TestArrayQueue_Empty(t *testing.T) {
	re := require.New(t)
	q := MakeArrayQueue[string](4)
	_, err := q.Pop()
	var eqe *EmptyQueueError
	re.ErrorAs(err, &eqe)
	re.Equal("", q.Peek())
	q.Push("a")
	q.Push("b")
	q.Clear()
	re.True(q.Empty())
	re.Zero(q.Size())
	_, err = q.Pop()
	re.ErrorAs(err, &eqe)
}

func TestArrayQueue_Shrink(t *testing.T) {
	re := require.New(t)
	q := MakeArrayQueue[int](64)
	for i := range 40 {
		q.Push(i)
	}
	for range 30 {
		_, _ = q.Pop()
	}
	q.Shrink()
	re.Equal(uint(10), q.Size())
	for i := 40; i < 45; i++ {
		q.Push(i)
	}
	for i := 30; i < 45; i++ {
		v, err := q.Pop()
		re.NoError(err)
		re.Equal(i, v)
	}
}
