package rectpack

import "fmt"

// Heuristic selects how free regions are scored against a rectangle. Lower
// scores are better.
type Heuristic uint8

const (
	BestAreaFit Heuristic = iota
	BestShortSideFit
	BestLongSideFit
)

func (h Heuristic) String() string {
	switch h {
	case BestAreaFit:
		return "BestAreaFit"
	case BestShortSideFit:
		return "BestShortSideFit"
	case BestLongSideFit:
		return "BestLongSideFit"
	}
	return fmt.Sprintf("Heuristic(%d)", uint8(h))
}

// scoreFunc rates placing a rectangle of the given size into freeRect.
type scoreFunc func(size Size, freeRect Rect) int

func (h Heuristic) score() scoreFunc {
	switch h {
	case BestShortSideFit:
		return scoreBestShort
	case BestLongSideFit:
		return scoreBestLong
	default:
		return scoreBestArea
	}
}

// scoreBestArea is the area left over in freeRect after placement.
func scoreBestArea(size Size, freeRect Rect) int {
	return freeRect.Area() - size.Area()
}

func scoreBestShort(size Size, freeRect Rect) int {
	return min(freeRect.Width-size.Width, freeRect.Height-size.Height)
}

func scoreBestLong(size Size, freeRect Rect) int {
	return max(freeRect.Width-size.Width, freeRect.Height-size.Height)
}

// ResolveHeuristic maps a command line name onto a Heuristic.
func ResolveHeuristic(name string) (Heuristic, error) {
	switch name {
	case "", "BestAreaFit":
		return BestAreaFit, nil
	case "BestShortSideFit":
		return BestShortSideFit, nil
	case "BestLongSideFit":
		return BestLongSideFit, nil
	}
	return 0, fmt.Errorf("unknown heuristic %q (BestAreaFit, BestShortSideFit, BestLongSideFit)", name)
}
