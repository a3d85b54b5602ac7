package rectpack

import (
	"math"
	"slices"
)

// freeList is the packing state: the fixed bin width, the height grown so
// far and the unoccupied regions inside it. Regions never overlap each other
// or any placed rectangle.
type freeList struct {
	width   int
	height  int
	regions []Rect
	merge   bool
}

func newFreeList(width int, merge bool) *freeList {
	return &freeList{width: width, merge: merge}
}

// selectRegion returns the index of the region that best fits size under
// score, or -1 when no region is large enough. Ties go to the topmost, then
// leftmost region.
func selectRegion(regions []Rect, size Size, score scoreFunc) int {
	best := -1
	bestScore := math.MaxInt
	for i, region := range regions {
		if !region.Fits(size) {
			continue
		}
		s := score(size, region)
		if best < 0 || s < bestScore || (s == bestScore && before(region.Point, regions[best].Point)) {
			best = i
			bestScore = s
		}
	}
	return best
}

// before orders points top to bottom, then left to right.
func before(a, b Point) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// grow adds a full-width row of the given height below everything placed so
// far and returns its index.
func (f *freeList) grow(height int) int {
	f.regions = append(f.regions, NewRect(0, f.height, f.width, height))
	f.height += height
	return len(f.regions) - 1
}

// insert places size into the best region, growing the bin when nothing fits.
func (f *freeList) insert(size Size, score scoreFunc) Rect {
	idx := selectRegion(f.regions, size, score)
	if idx < 0 {
		idx = f.grow(size.Height)
	}
	return f.place(idx, size)
}

// place puts size at the top-left corner of region idx and splits what is
// left of the region.
func (f *freeList) place(idx int, size Size) Rect {
	region := f.regions[idx]
	placed := Rect{Point: region.Point, Size: size}
	f.regions = slices.Delete(f.regions, idx, idx+1)
	f.splitAround(region, placed)
	if f.merge {
		f.mergeRegions()
	}
	return placed
}

// splitAround keeps the part of region to the right of placed (full region
// height) and the part below it (placed width). Empty parts are dropped.
func (f *freeList) splitAround(region, placed Rect) {
	right := NewRect(placed.Right(), region.Y, region.Right()-placed.Right(), region.Height)
	bottom := NewRect(region.X, placed.Bottom(), placed.Width, region.Bottom()-placed.Bottom())
	if !right.IsEmpty() {
		f.regions = append(f.regions, right)
	}
	if !bottom.IsEmpty() {
		f.regions = append(f.regions, bottom)
	}
}

// mergeRegions joins pairs of regions that share a full edge until no such
// pair is left.
func (f *freeList) mergeRegions() {
	for merged := true; merged; {
		merged = false
		for i := 0; i < len(f.regions); i++ {
			for j := i + 1; j < len(f.regions); j++ {
				a, b := f.regions[i], f.regions[j]
				if !adjacent(a, b) {
					continue
				}
				f.regions[i] = a.Union(b)
				f.regions = slices.Delete(f.regions, j, j+1)
				merged = true
				j--
			}
		}
	}
}

// adjacent reports whether a and b share a complete edge, so that their
// union is exactly a rectangle.
func adjacent(a, b Rect) bool {
	if a.X == b.X && a.Width == b.Width {
		return a.Bottom() == b.Y || b.Bottom() == a.Y
	}
	if a.Y == b.Y && a.Height == b.Height {
		return a.Right() == b.X || b.Right() == a.X
	}
	return false
}
