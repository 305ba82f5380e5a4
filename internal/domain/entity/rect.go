package entity

import "math"

type Point struct {
	X float64
	Y float64
}

// Rect is an axis aligned rectangle in CSS pixels, in the coordinate space of
// the document it was read from.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func RectFromEdges(left, top, right, bottom float64) Rect {
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Intersects uses strict edges: rects that only touch do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.Top() < o.Bottom() && r.Bottom() > o.Top() &&
		r.Left() < o.Right() && r.Right() > o.Left()
}

// Intersect returns the overlapping area, or a zero sized rect anchored at
// the clipped origin when the rects do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	left := math.Max(r.Left(), o.Left())
	top := math.Max(r.Top(), o.Top())
	right := math.Min(r.Right(), o.Right())
	bottom := math.Min(r.Bottom(), o.Bottom())
	if right < left {
		right = left
	}
	if bottom < top {
		bottom = top
	}
	return RectFromEdges(left, top, right, bottom)
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X < r.Right() && p.Y >= r.Top() && p.Y < r.Bottom()
}

// Encloses reports whether o lies entirely within r, edges included.
func (r Rect) Encloses(o Rect) bool {
	return o.Left() >= r.Left() && o.Right() <= r.Right() &&
		o.Top() >= r.Top() && o.Bottom() <= r.Bottom()
}
