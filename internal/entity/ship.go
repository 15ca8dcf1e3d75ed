// Package entity contains the moving objects of the game: the player's ship,
// its bullets and the aliens of the fleet. Entities only know their own
// geometry and the screen bounds they were given.
package entity

import "image"

// Ship is the player's ship, anchored to the bottom of the screen.
type Ship struct {
	X           float64 // Left edge, kept as float for sub-pixel movement
	MovingLeft  bool
	MovingRight bool

	rect   image.Rectangle
	bounds image.Rectangle
}

// NewShip creates a ship of the given size centred on the bottom edge of
// bounds.
func NewShip(bounds image.Rectangle, width, height int) *Ship {
	s := &Ship{
		bounds: bounds,
		rect:   image.Rect(0, 0, width, height),
	}
	s.Center()
	return s
}

// Rect returns the ship's bounding rectangle.
func (s *Ship) Rect() image.Rectangle {
	return s.rect
}

// Update moves the ship according to its movement flags. Holding both
// directions cancels out. The ship never leaves the screen.
func (s *Ship) Update(speed float64) {
	if s.MovingRight && s.rect.Max.X < s.bounds.Max.X {
		s.X += speed
	}
	if s.MovingLeft && s.rect.Min.X > s.bounds.Min.X {
		s.X -= speed
	}

	maxX := float64(s.bounds.Max.X - s.rect.Dx())
	if s.X > maxX {
		s.X = maxX
	}
	if s.X < float64(s.bounds.Min.X) {
		s.X = float64(s.bounds.Min.X)
	}
	s.rect = s.rect.Add(image.Pt(int(s.X)-s.rect.Min.X, 0))
}

// Center puts the ship back in the middle of the bottom edge.
func (s *Ship) Center() {
	w, h := s.rect.Dx(), s.rect.Dy()
	x := s.bounds.Min.X + (s.bounds.Dx()-w)/2
	s.rect = image.Rect(x, s.bounds.Max.Y-h, x+w, s.bounds.Max.Y)
	s.X = float64(x)
}

// Nose returns the mid-top point of the ship, where bullets leave from.
func (s *Ship) Nose() image.Point {
	return image.Pt(s.rect.Min.X+s.rect.Dx()/2, s.rect.Min.Y)
}
