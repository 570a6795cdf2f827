package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArena_NewPair_OrdersLeftByXThenY(t *testing.T) {
	a := NewArena()

	left, right := a.NewPair(Point{X: 3, Y: 0}, Point{X: 1, Y: 0}, Subject)
	assert.True(t, left.Left)
	assert.False(t, right.Left)
	assert.Equal(t, Point{X: 1, Y: 0}, left.Point)
	assert.Equal(t, Point{X: 3, Y: 0}, right.Point)
	assert.Same(t, right, left.Twin)
	assert.Same(t, left, right.Twin)
}

func TestArena_NewPair_VerticalEdgeBottomIsLeft(t *testing.T) {
	a := NewArena()
	left, right := a.NewPair(Point{X: 0, Y: 5}, Point{X: 0, Y: 1}, Subject)
	assert.True(t, left.Left)
	assert.Equal(t, Point{X: 0, Y: 1}, left.Point)
	assert.Equal(t, Point{X: 0, Y: 5}, right.Point)
}

func TestArena_Divide_SplitsAndRewiresTwins(t *testing.T) {
	a := NewArena()
	left, right := a.NewPair(Point{X: 0, Y: 0}, Point{X: 10, Y: 0}, Subject)

	newLeft, newRight, repaired, degenerate := a.Divide(left, Point{X: 5, Y: 0})
	assert.False(t, repaired)
	assert.False(t, degenerate)

	require.Same(t, newRight, left.Twin)
	require.Same(t, left, newRight.Twin)
	require.Same(t, newLeft, right.Twin)
	require.Same(t, right, newLeft.Twin)

	assert.Equal(t, Point{X: 5, Y: 0}, newRight.Point)
	assert.Equal(t, Point{X: 5, Y: 0}, newLeft.Point)
	assert.False(t, newRight.Left)
	assert.True(t, newLeft.Left)
}

func TestArena_Seq_Increases(t *testing.T) {
	a := NewArena()
	left1, right1 := a.NewPair(Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, Subject)
	left2, right2 := a.NewPair(Point{X: 2, Y: 0}, Point{X: 3, Y: 0}, Subject)
	assert.Less(t, Seq(left1), Seq(right1))
	assert.Less(t, Seq(right1), Seq(left2))
	assert.Less(t, Seq(left2), Seq(right2))
}
