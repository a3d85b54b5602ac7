package rectpack

import "fmt"

// Rectangle is one input to the packer: an identifier and its dimensions.
type Rectangle struct {
	ID     string
	Width  int
	Height int
}

// NewRectangle creates a rectangle with the given identifier and size.
func NewRectangle(id string, width, height int) Rectangle {
	return Rectangle{ID: id, Width: width, Height: height}
}

// Size returns the dimensions of the rectangle.
func (r Rectangle) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// RectangleSet is an ordered collection of rectangles. The packer only reads it.
type RectangleSet []Rectangle

// Validate checks that every rectangle has a positive size and that
// identifiers are unique and non-empty.
func (s RectangleSet) Validate() error {
	seen := make(map[string]struct{}, len(s))
	for i, r := range s {
		if r.ID == "" {
			return invalid("", "rectangle #%d has an empty id", i)
		}
		if _, dup := seen[r.ID]; dup {
			return invalid(r.ID, "duplicate id")
		}
		seen[r.ID] = struct{}{}
		if r.Width <= 0 || r.Height <= 0 {
			return invalid(r.ID, "size %dx%d must be positive", r.Width, r.Height)
		}
	}
	return nil
}

// MaxWidth returns the width of the widest rectangle, or 0 for an empty set.
func (s RectangleSet) MaxWidth() int {
	w := 0
	for _, r := range s {
		w = max(w, r.Width)
	}
	return w
}

// Placement is the resolved position of one rectangle.
type Placement struct {
	ID string
	Rect
}

// NewPlacement creates a placement for id at (x, y) with the given size.
func NewPlacement(id string, x, y, w, h int) Placement {
	return Placement{ID: id, Rect: NewRect(x, y, w, h)}
}

func (p Placement) String() string {
	return fmt.Sprintf("%s%s", p.ID, p.Rect.String())
}

// Result is the output of a packing or arranging call. Placements are in
// input order, not geometric order.
type Result struct {
	Placements []Placement
	Bin        Size
}

// Map creates a mapping of placement id to placement.
func (r *Result) Map() map[string]Placement {
	mapping := make(map[string]Placement, len(r.Placements))
	for _, p := range r.Placements {
		mapping[p.ID] = p
	}
	return mapping
}

// Used returns the fraction of the bin covered by placements, between 0.0
// and 1.0. Overlapping placements are counted twice.
func (r *Result) Used() float64 {
	if r.Bin.Area() == 0 {
		return 0
	}
	used := 0
	for _, p := range r.Placements {
		used += p.Area()
	}
	return float64(used) / float64(r.Bin.Area())
}

// Overlaps returns the index pairs of every two placements that overlap.
func (r *Result) Overlaps() [][2]int {
	var pairs [][2]int
	for i := 0; i < len(r.Placements)-1; i++ {
		for j := i + 1; j < len(r.Placements); j++ {
			if r.Placements[i].Intersects(r.Placements[j].Rect) {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}

// Validate checks that every placement lies inside the bin and that no two
// placements overlap.
func (r *Result) Validate() error {
	bin := NewRect(0, 0, r.Bin.Width, r.Bin.Height)
	for _, p := range r.Placements {
		if p.IsEmpty() {
			return invalid(p.ID, "size %s must be positive", p.Size)
		}
		if !bin.ContainsRect(p.Rect) {
			return invalid(p.ID, "%s lies outside the %s bin", p.Rect, r.Bin)
		}
	}
	if pairs := r.Overlaps(); len(pairs) > 0 {
		a, b := r.Placements[pairs[0][0]], r.Placements[pairs[0][1]]
		return invalid(a.ID, "%s overlaps %q %s", a.Rect, b.ID, b.Rect)
	}
	return nil
}
