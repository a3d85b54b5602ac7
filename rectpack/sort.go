package rectpack

import (
	"cmp"
	"fmt"
	"slices"
)

// SortFunc defines the prototype of a size comparison function. It follows
// the slices.SortFunc convention: negative when a sorts before b.
type SortFunc func(a, b Size) int

// SortHeight sorts by height descending, then width descending.
func SortHeight(a, b Size) int {
	if c := cmp.Compare(b.Height, a.Height); c != 0 {
		return c
	}
	return cmp.Compare(b.Width, a.Width)
}

// SortArea sorts by area descending (largest first).
func SortArea(a, b Size) int {
	return cmp.Compare(b.Area(), a.Area())
}

// SortPerimeter sorts by perimeter descending.
func SortPerimeter(a, b Size) int {
	return cmp.Compare(b.Perimeter(), a.Perimeter())
}

// SortMaxSide sorts by the longest side descending.
func SortMaxSide(a, b Size) int {
	return cmp.Compare(b.MaxSide(), a.MaxSide())
}

// ResolveOrder maps a command line name onto a SortFunc.
func ResolveOrder(name string) (SortFunc, error) {
	switch name {
	case "", "height":
		return SortHeight, nil
	case "area":
		return SortArea, nil
	case "perimeter":
		return SortPerimeter, nil
	case "maxside":
		return SortMaxSide, nil
	}
	return nil, fmt.Errorf("unknown order %q (height, area, perimeter, maxside)", name)
}

// placementOrder returns the indices of set in the order they are placed.
// Equal keys keep their input order, so identical input always yields the
// same sequence.
func placementOrder(set RectangleSet, compare SortFunc) []int {
	order := make([]int, len(set))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(i, j int) int {
		if c := compare(set[i].Size(), set[j].Size()); c != 0 {
			return c
		}
		return cmp.Compare(i, j)
	})
	return order
}
