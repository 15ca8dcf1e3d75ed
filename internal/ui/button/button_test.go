package button

import (
	"image"
	"testing"
)

func TestNewIsCentred(t *testing.T) {
	b := New(image.Rect(0, 0, 1200, 800), "Play")
	want := image.Rect(500, 375, 700, 425)
	if b.Rect != want {
		t.Errorf("Expected %v, got %v", want, b.Rect)
	}
	if b.Label != "Play" {
		t.Errorf("Expected label 'Play', got '%s'", b.Label)
	}
}

func TestContains(t *testing.T) {
	b := New(image.Rect(0, 0, 1200, 800), "Play")

	inside := []image.Point{{500, 375}, {600, 400}, {699, 424}}
	for _, p := range inside {
		if !b.Contains(p.X, p.Y) {
			t.Errorf("Expected %v to be on the button", p)
		}
	}

	outside := []image.Point{{499, 400}, {700, 400}, {600, 425}, {0, 0}}
	for _, p := range outside {
		if b.Contains(p.X, p.Y) {
			t.Errorf("Expected %v to be off the button", p)
		}
	}
}
