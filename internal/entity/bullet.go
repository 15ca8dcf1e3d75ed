package entity

import "image"

// Bullet is a projectile fired upward by the ship.
type Bullet struct {
	Y    float64
	rect image.Rectangle
}

// NewBullet creates a bullet whose mid-top sits on nose.
func NewBullet(nose image.Point, width, height int) *Bullet {
	x := nose.X - width/2
	return &Bullet{
		Y:    float64(nose.Y),
		rect: image.Rect(x, nose.Y, x+width, nose.Y+height),
	}
}

// Rect returns the bullet's bounding rectangle.
func (b *Bullet) Rect() image.Rectangle {
	return b.rect
}

// Update moves the bullet up the screen.
func (b *Bullet) Update(speed float64) {
	b.Y -= speed
	b.rect = b.rect.Add(image.Pt(0, int(b.Y)-b.rect.Min.Y))
}

// OffScreen reports whether the bullet has left the top of the screen.
func (b *Bullet) OffScreen() bool {
	return b.rect.Max.Y <= 0
}
