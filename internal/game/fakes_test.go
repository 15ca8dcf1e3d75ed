package game

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"chosenoffset.com/alieninvasion/internal/render"
	"chosenoffset.com/alieninvasion/internal/settings"
)

func init() {
	render.NewGeoM = func() render.GeoM { return &fakeGeoM{} }
}

type fakeGeoM struct{ tx, ty float64 }

func (m *fakeGeoM) Translate(tx, ty float64) { m.tx += tx; m.ty += ty }
func (m *fakeGeoM) Scale(sx, sy float64)     {}
func (m *fakeGeoM) Reset()                   { m.tx, m.ty = 0, 0 }

type fakeImage struct {
	bounds image.Rectangle
	draws  int
}

func (i *fakeImage) Bounds() image.Rectangle { return i.bounds }
func (i *fakeImage) Size() (int, int)        { return i.bounds.Dx(), i.bounds.Dy() }
func (i *fakeImage) Fill(clr color.Color)    {}
func (i *fakeImage) Clear()                  {}
func (i *fakeImage) Dispose()                {}
func (i *fakeImage) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	i.draws++
}

type fakeRenderer struct {
	texts []string
	rects int
}

func (r *fakeRenderer) NewImage(w, h int) render.Image {
	return &fakeImage{bounds: image.Rect(0, 0, w, h)}
}

func (r *fakeRenderer) NewImageFromImage(src image.Image) render.Image {
	return &fakeImage{bounds: src.Bounds()}
}

func (r *fakeRenderer) FillRect(dst render.Image, rect image.Rectangle, clr color.Color) {
	r.rects++
}

func (r *fakeRenderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, size float64) {
	r.texts = append(r.texts, text)
}

func (r *fakeRenderer) MeasureText(text string, size float64) (int, int) {
	return 10 * len(text), int(size)
}

// fakeInput reports the keys set for the current tick. Call next to move
// on to the following tick.
type fakeInput struct {
	held     map[render.Key]bool
	pressed  map[render.Key]bool
	released map[render.Key]bool
	click    bool
	cursor   image.Point
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		held:     map[render.Key]bool{},
		pressed:  map[render.Key]bool{},
		released: map[render.Key]bool{},
	}
}

func (in *fakeInput) press(k render.Key) {
	in.held[k] = true
	in.pressed[k] = true
}

func (in *fakeInput) release(k render.Key) {
	delete(in.held, k)
	in.released[k] = true
}

func (in *fakeInput) clickAt(x, y int) {
	in.click = true
	in.cursor = image.Pt(x, y)
}

func (in *fakeInput) next() {
	in.pressed = map[render.Key]bool{}
	in.released = map[render.Key]bool{}
	in.click = false
}

func (in *fakeInput) IsKeyPressed(k render.Key) bool      { return in.held[k] }
func (in *fakeInput) IsKeyJustPressed(k render.Key) bool  { return in.pressed[k] }
func (in *fakeInput) IsKeyJustReleased(k render.Key) bool { return in.released[k] }
func (in *fakeInput) GetCursorPosition() (int, int)       { return in.cursor.X, in.cursor.Y }
func (in *fakeInput) IsMouseButtonJustPressed(b render.MouseButton) bool {
	return b == render.MouseButtonLeft && in.click
}

type fakeCursor struct{ visible bool }

func (c *fakeCursor) SetCursorVisible(v bool) { c.visible = v }

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type harness struct {
	game   *Game
	input  *fakeInput
	cursor *fakeCursor
	clock  *fakeClock
	render *fakeRenderer
}

func newHarness(t *testing.T, configure ...func(*settings.Settings)) *harness {
	t.Helper()

	s := settings.Default()
	for _, fn := range configure {
		fn(s)
	}
	s.ResetDifficulty()

	h := &harness{
		input:  newFakeInput(),
		cursor: &fakeCursor{},
		clock:  &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		render: &fakeRenderer{},
	}

	g, err := New(s, Deps{
		Renderer: h.render,
		Input:    h.input,
		Cursor:   h.cursor,
		Logger:   zerolog.Nop(),
		Clock:    h.clock.Now,
	})
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	h.game = g
	return h
}

// tick runs one update and clears the per-tick input edges.
func (h *harness) tick(t *testing.T) {
	t.Helper()
	if err := h.game.Update(); err != nil {
		t.Fatalf("Unexpected update error: %v", err)
	}
	h.input.next()
}

// start presses P and runs the tick that starts the game.
func (h *harness) start(t *testing.T) {
	t.Helper()
	h.input.press(render.KeyP)
	h.tick(t)
	h.input.release(render.KeyP)
	h.input.next()
}
