package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Intersects(t *testing.T) {
	view := Rect{Width: 800, Height: 600}

	assert.True(t, Rect{X: 10, Y: 10, Width: 50, Height: 20}.Intersects(view))
	assert.True(t, Rect{X: -10, Y: 590, Width: 50, Height: 20}.Intersects(view))
	assert.False(t, Rect{X: 10, Y: 600, Width: 50, Height: 20}.Intersects(view), "touching edges")
	assert.False(t, Rect{X: 10, Y: -20, Width: 50, Height: 20}.Intersects(view))
	assert.True(t, Rect{X: 10, Y: 10}.Intersects(view), "zero sized inside")
}

func TestRect_Intersect(t *testing.T) {
	a := Rect{X: -100, Y: -500, Width: 800, Height: 600}
	b := Rect{Width: 300, Height: 200}

	assert.Equal(t, Rect{Width: 300, Height: 100}, a.Intersect(b))

	clipped := Rect{X: 900, Y: 10, Width: 10, Height: 10}.Intersect(b)
	assert.True(t, clipped.Empty())
}

func TestRect_Geometry(t *testing.T) {
	r := RectFromEdges(10, 20, 30, 60)

	assert.Equal(t, Rect{X: 10, Y: 20, Width: 20, Height: 40}, r)
	assert.Equal(t, Point{X: 20, Y: 40}, r.Center())
	assert.Equal(t, Rect{X: 15, Y: 15, Width: 20, Height: 40}, r.Translate(5, -5))
	assert.True(t, r.Contains(Point{X: 10, Y: 20}))
	assert.False(t, r.Contains(Point{X: 30, Y: 20}))
}

func TestRect_Encloses(t *testing.T) {
	visible := Rect{Width: 300, Height: 100}

	assert.True(t, visible.Encloses(Rect{X: 10, Y: 10, Width: 50, Height: 20}))
	assert.True(t, visible.Encloses(Rect{X: 10, Y: 80, Width: 50, Height: 20}), "touching the bottom edge")
	assert.False(t, visible.Encloses(Rect{X: 10, Y: 90, Width: 50, Height: 20}))
	assert.False(t, visible.Encloses(Rect{X: -5, Y: 10, Width: 50, Height: 20}))
	assert.True(t, visible.Encloses(Rect{X: 10, Y: 10}), "zero sized inside")
}
