package rectpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectRegion(t *testing.T) {
	regions := []Rect{
		NewRect(0, 0, 10, 10),
		NewRect(10, 0, 40, 40),
		NewRect(0, 40, 20, 20),
	}
	score := BestAreaFit.score()

	assert.Equal(t, 0, selectRegion(regions, NewSize(5, 5), score), "smallest leftover wins")
	assert.Equal(t, 2, selectRegion(regions, NewSize(15, 15), score))
	assert.Equal(t, 1, selectRegion(regions, NewSize(30, 10), score))
	assert.Equal(t, -1, selectRegion(regions, NewSize(41, 1), score))
	assert.Equal(t, -1, selectRegion(nil, NewSize(1, 1), score))
}

func TestSelectRegion_TieBreak(t *testing.T) {
	regions := []Rect{
		NewRect(50, 20, 10, 10),
		NewRect(30, 20, 10, 10),
		NewRect(90, 0, 10, 10),
	}
	score := BestAreaFit.score()

	assert.Equal(t, 2, selectRegion(regions, NewSize(10, 10), score), "topmost first")
	assert.Equal(t, 1, selectRegion(regions[:2], NewSize(10, 10), score), "then leftmost")
}

func TestSelectRegion_Heuristics(t *testing.T) {
	regions := []Rect{
		NewRect(0, 0, 12, 100),
		NewRect(20, 0, 30, 30),
	}
	size := NewSize(10, 25)

	// leftover area 950 vs 650
	assert.Equal(t, 1, selectRegion(regions, size, BestAreaFit.score()))
	// shorter leftover side 2 vs 5
	assert.Equal(t, 0, selectRegion(regions, size, BestShortSideFit.score()))
	// longer leftover side 75 vs 20
	assert.Equal(t, 1, selectRegion(regions, size, BestLongSideFit.score()))
}

func TestFreeList_GrowAndSplit(t *testing.T) {
	f := newFreeList(100, false)
	score := BestAreaFit.score()

	first := f.insert(NewSize(40, 30), score)
	assert.Equal(t, NewRect(0, 0, 40, 30), first)
	assert.Equal(t, 30, f.height)
	assert.Equal(t, []Rect{NewRect(40, 0, 60, 30)}, f.regions)

	second := f.insert(NewSize(60, 10), score)
	assert.Equal(t, NewRect(40, 0, 60, 10), second)
	assert.Equal(t, []Rect{NewRect(40, 10, 60, 20)}, f.regions)

	third := f.insert(NewSize(70, 5), score)
	assert.Equal(t, NewRect(0, 30, 70, 5), third, "nothing fits so a new row is opened")
	assert.Equal(t, 35, f.height)
	assert.Equal(t, []Rect{NewRect(40, 10, 60, 20), NewRect(70, 30, 30, 5)}, f.regions)
}

func TestFreeList_Merge(t *testing.T) {
	f := newFreeList(100, true)
	f.regions = []Rect{
		NewRect(0, 0, 10, 10),
		NewRect(20, 0, 10, 10),
		NewRect(0, 10, 10, 5),
		NewRect(10, 0, 10, 10),
	}
	f.mergeRegions()

	require.Len(t, f.regions, 2)
	assert.Equal(t, NewRect(0, 0, 10, 15), f.regions[0], "stacked regions join first")
	assert.Equal(t, NewRect(10, 0, 20, 10), f.regions[1])
}

func TestAdjacent(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	assert.True(t, adjacent(a, NewRect(0, 10, 10, 3)))
	assert.True(t, adjacent(NewRect(0, 10, 10, 3), a))
	assert.True(t, adjacent(a, NewRect(10, 0, 4, 10)))
	assert.False(t, adjacent(a, NewRect(10, 0, 4, 9)), "partial edge")
	assert.False(t, adjacent(a, NewRect(0, 11, 10, 3)), "gap")
	assert.False(t, adjacent(a, NewRect(11, 0, 4, 10)))
}
