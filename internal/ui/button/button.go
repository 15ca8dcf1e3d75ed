// Package button provides the clickable Play button.
package button

import (
	"image"
	"image/color"

	"chosenoffset.com/alieninvasion/internal/render"
)

// Default button geometry and colours.
const (
	Width    = 200
	Height   = 50
	FontSize = 32
)

// Button is a static labelled rectangle centred on the screen.
type Button struct {
	Label     string
	Rect      image.Rectangle
	Color     color.Color
	TextColor color.Color
	FontSize  float64
}

// New creates a button centred in screen.
func New(screen image.Rectangle, label string) *Button {
	x := screen.Min.X + (screen.Dx()-Width)/2
	y := screen.Min.Y + (screen.Dy()-Height)/2
	return &Button{
		Label:     label,
		Rect:      image.Rect(x, y, x+Width, y+Height),
		Color:     color.RGBA{0, 135, 0, 255},
		TextColor: color.RGBA{255, 255, 255, 255},
		FontSize:  FontSize,
	}
}

// Contains reports whether the point (x, y) lies on the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw renders the button with its label centred.
func (b *Button) Draw(dst render.Image, r render.Renderer) {
	r.FillRect(dst, b.Rect, b.Color)

	w, h := r.MeasureText(b.Label, b.FontSize)
	x := b.Rect.Min.X + (b.Rect.Dx()-w)/2
	y := b.Rect.Min.Y + (b.Rect.Dy()-h)/2
	r.DrawText(dst, b.Label, x, y, b.TextColor, b.FontSize)
}
