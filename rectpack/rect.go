package rectpack

import "fmt"

// Point describes a position in 2D space.
type Point struct {
	// X is the position on the horizontal x-axis.
	X int `json:"x"`
	// Y is the position on the vertical y-axis.
	Y int `json:"y"`
}

// NewPoint initializes a new point with the specified coordinates.
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("[%v, %v]", p.X, p.Y)
}

// Size describes the dimensions of an entity in 2D space.
type Size struct {
	// Width is the dimension on the horizontal x-axis.
	Width int `json:"width"`
	// Height is the dimension on the vertical y-axis.
	Height int `json:"height"`
}

// NewSize creates a new size with the specified dimensions.
func NewSize(width, height int) Size {
	return Size{Width: width, Height: height}
}

// String returns a string representation of the size.
func (sz Size) String() string {
	return fmt.Sprintf("%vx%v", sz.Width, sz.Height)
}

// Area returns the total area (width * height).
func (sz Size) Area() int {
	return sz.Width * sz.Height
}

// Perimeter returns the total length of all sides.
func (sz Size) Perimeter() int {
	return (sz.Width + sz.Height) << 1
}

// MaxSide returns the value of the larger side.
func (sz Size) MaxSide() int {
	return max(sz.Width, sz.Height)
}

// MinSide returns the value of the smaller side.
func (sz Size) MinSide() int {
	return min(sz.Width, sz.Height)
}

// Fits reports whether other fits inside sz without rotation.
func (sz Size) Fits(other Size) bool {
	return other.Width <= sz.Width && other.Height <= sz.Height
}

// Rect describes a location (top-left corner) and size in 2D space.
type Rect struct {
	Point
	Size
}

// NewRect initializes a new rectangle using the specified point and size values.
func NewRect(x, y, w, h int) Rect {
	return Rect{
		Point: Point{X: x, Y: y},
		Size:  Size{Width: w, Height: h},
	}
}

// NewRectLTRB initializes a new rectangle using the specified left/top/right/bottom values.
func NewRectLTRB(l, t, r, b int) Rect {
	return Rect{
		Point: Point{X: l, Y: t},
		Size:  Size{Width: r - l, Height: b - t},
	}
}

// String returns a string describing the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("[%v, %v, %v, %v]", r.X, r.Y, r.Width, r.Height)
}

// Right returns the coordinate of the right edge on the x-axis.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the coordinate of the bottom edge on the y-axis.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// ContainsRect tests whether rect lies within the bounds of the receiver.
func (r Rect) ContainsRect(rect Rect) bool {
	return r.X <= rect.X &&
		rect.Right() <= r.Right() &&
		r.Y <= rect.Y &&
		rect.Bottom() <= r.Bottom()
}

// IsEmpty tests whether the rectangle has a width or height less than 1.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersects tests whether the receiver has any overlap with rect. Rectangles
// that only share an edge do not intersect.
func (r Rect) Intersects(rect Rect) bool {
	return rect.X < r.Right() &&
		r.X < rect.Right() &&
		rect.Y < r.Bottom() &&
		r.Y < rect.Bottom()
}

// Union returns the smallest rectangle containing both the receiver and rect.
func (r Rect) Union(rect Rect) Rect {
	x1 := min(r.X, rect.X)
	x2 := max(r.Right(), rect.Right())
	y1 := min(r.Y, rect.Y)
	y2 := max(r.Bottom(), rect.Bottom())
	return NewRectLTRB(x1, y1, x2, y2)
}
