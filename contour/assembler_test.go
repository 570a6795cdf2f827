package contour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(x, y float64) Point { return Point{X: x, Y: y} }

func TestAssembler_ClosesSingleSquare(t *testing.T) {
	a := NewAssembler()
	a.Add(pt(0, 0), pt(2, 0), false)
	a.Add(pt(2, 0), pt(2, 2), false)
	a.Add(pt(2, 2), pt(0, 2), false)
	a.Add(pt(0, 2), pt(0, 0), false)

	results := a.Assemble()
	require.Len(t, results, 1)
	assert.False(t, results[0].Hole)
	assert.Equal(t, 0, results[0].Depth)
	assert.Equal(t, -1, results[0].ParentIndex)
	assert.ElementsMatch(t, []Point{pt(0, 0), pt(2, 0), pt(2, 2), pt(0, 2)}, results[0].Points)
}

func TestAssembler_OutOfOrderSegmentsStillClose(t *testing.T) {
	a := NewAssembler()
	a.Add(pt(2, 2), pt(0, 2), false)
	a.Add(pt(0, 0), pt(2, 0), false)
	a.Add(pt(0, 2), pt(0, 0), false)
	a.Add(pt(2, 0), pt(2, 2), false)

	results := a.Assemble()
	require.Len(t, results, 1)
	assert.Len(t, results[0].Points, 4)
}

func TestAssembler_BoundaryWithHole(t *testing.T) {
	a := NewAssembler()
	// Outer boundary.
	a.Add(pt(0, 0), pt(10, 0), false)
	a.Add(pt(10, 0), pt(10, 10), false)
	a.Add(pt(10, 10), pt(0, 10), false)
	a.Add(pt(0, 10), pt(0, 0), true) // closes outer; transition true but no prior chain, so still a boundary

	// Hole inside it.
	a.Add(pt(3, 3), pt(3, 7), false)
	a.Add(pt(3, 7), pt(7, 7), false)
	a.Add(pt(7, 7), pt(7, 3), false)
	a.Add(pt(7, 3), pt(3, 3), true) // closing edge transitioned outside->inside: a hole

	results := a.Assemble()
	require.Len(t, results, 2)

	outer := results[0]
	assert.False(t, outer.Hole)
	assert.Equal(t, 0, outer.Depth)
	assert.Equal(t, []int{1}, outer.ChildIndices)

	hole := results[1]
	assert.True(t, hole.Hole)
	assert.Equal(t, 1, hole.Depth)
	assert.Equal(t, 0, hole.ParentIndex)
}

func TestAssembler_MergesTwoOpenChainsIntoOne(t *testing.T) {
	a := NewAssembler()
	// Two open chains that only later get bridged by a middle segment.
	a.Add(pt(0, 0), pt(1, 0), false)
	a.Add(pt(3, 0), pt(3, 3), false)
	a.Add(pt(1, 0), pt(3, 0), false) // bridges the two open chains
	a.Add(pt(3, 3), pt(0, 3), false)
	a.Add(pt(0, 3), pt(0, 0), false) // closes the merged chain

	results := a.Assemble()
	require.Len(t, results, 1)
	assert.Len(t, results[0].Points, 4)
}
