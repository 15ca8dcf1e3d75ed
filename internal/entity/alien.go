package entity

import "image"

// Alien is a single member of the fleet.
type Alien struct {
	X    float64
	rect image.Rectangle
}

// NewAlien creates an alien with its top-left corner at (x, y).
func NewAlien(x, y, width, height int) *Alien {
	return &Alien{
		X:    float64(x),
		rect: image.Rect(x, y, x+width, y+height),
	}
}

// Rect returns the alien's bounding rectangle.
func (a *Alien) Rect() image.Rectangle {
	return a.rect
}

// Update moves the alien sideways; direction is +1 or -1.
func (a *Alien) Update(speed float64, direction int) {
	a.X += speed * float64(direction)
	a.rect = a.rect.Add(image.Pt(int(a.X)-a.rect.Min.X, 0))
}

// CheckEdges reports whether the alien touches or passes either side of
// bounds.
func (a *Alien) CheckEdges(bounds image.Rectangle) bool {
	return a.rect.Max.X >= bounds.Max.X || a.rect.Min.X <= bounds.Min.X
}

// Drop moves the alien down by dy pixels.
func (a *Alien) Drop(dy int) {
	a.rect = a.rect.Add(image.Pt(0, dy))
}
