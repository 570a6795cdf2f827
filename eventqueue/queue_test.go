package eventqueue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyclip-go/martinez/event"
)

func TestQueue_PopsInOrder(t *testing.T) {
	a := event.NewArena()
	q := New()

	left1, right1 := a.NewPair(event.Point{X: 2, Y: 0}, event.Point{X: 3, Y: 0}, event.Subject)
	left2, right2 := a.NewPair(event.Point{X: 0, Y: 0}, event.Point{X: 1, Y: 0}, event.Subject)
	left3, right3 := a.NewPair(event.Point{X: 1, Y: 0}, event.Point{X: 2, Y: 0}, event.Subject)

	for _, e := range []*event.Event{left1, right1, left2, right2, left3, right3} {
		q.Push(e)
	}
	require.Equal(t, 6, q.Len())

	var order []float64
	for !q.Empty() {
		order = append(order, q.Pop().Point.X)
	}
	assert.Equal(t, []float64{0, 1, 1, 2, 2, 3}, order)
}

func TestQueue_EmptyPeek(t *testing.T) {
	q := New()
	_, ok := q.Peek()
	assert.False(t, ok)
	assert.True(t, q.Empty())
}
