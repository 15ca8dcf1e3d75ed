package game

import (
	"fmt"
	"image"
	"time"

	"github.com/rs/zerolog"

	"chosenoffset.com/alieninvasion/internal/entity"
	"chosenoffset.com/alieninvasion/internal/render"
	"chosenoffset.com/alieninvasion/internal/settings"
	"chosenoffset.com/alieninvasion/internal/sprite"
	"chosenoffset.com/alieninvasion/internal/sprites"
	"chosenoffset.com/alieninvasion/internal/stats"
	"chosenoffset.com/alieninvasion/internal/ui/button"
	"chosenoffset.com/alieninvasion/internal/ui/scoreboard"
)

// Deps bundles the platform services the game runs on.
type Deps struct {
	Renderer render.Renderer
	Input    render.InputManager
	Cursor   render.Cursor
	Loader   render.ResourceLoader // Only needed when image paths are configured
	Logger   zerolog.Logger
	Clock    Clock // Defaults to time.Now
}

// New creates a game waiting for the player to press Play. The fleet is
// already on screen behind the button.
func New(s *settings.Settings, d Deps) (*Game, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if d.Clock == nil {
		d.Clock = time.Now
	}

	g := &Game{
		Settings: s,
		Renderer: d.Renderer,
		InputMgr: d.Input,
		Cursor:   d.Cursor,
		Log:      d.Logger,
		now:      d.Clock,
		bounds:   image.Rect(0, 0, s.ScreenWidth, s.ScreenHeight),
	}

	var err error
	g.ShipImg, err = g.loadImage(d.Loader, s.ShipImage, sprites.Ship)
	if err != nil {
		return nil, fmt.Errorf("failed to load ship image: %w", err)
	}
	g.AlienImg, err = g.loadImage(d.Loader, s.AlienImage, sprites.Alien)
	if err != nil {
		return nil, fmt.Errorf("failed to load alien image: %w", err)
	}

	shipW, shipH := g.ShipImg.Size()
	g.Ship = entity.NewShip(g.bounds, shipW, shipH)
	g.Bullets = sprite.NewGroup[*entity.Bullet]()
	g.Aliens = sprite.NewGroup[*entity.Alien]()

	g.Stats = stats.New(s.ShipLimit)
	g.Scoreboard = scoreboard.New(g.Stats, g.Renderer, g.bounds, image.Pt(shipW, shipH))
	g.PlayButton = button.New(g.bounds, "Play")

	g.createFleet()
	if g.Cursor != nil {
		g.Cursor.SetCursorVisible(true)
	}

	g.Log.Info().
		Int("width", s.ScreenWidth).
		Int("height", s.ScreenHeight).
		Int("aliens", g.Aliens.Len()).
		Msg("game ready")
	return g, nil
}

// loadImage loads path through loader, or builds the built-in sprite when
// no path is configured.
func (g *Game) loadImage(loader render.ResourceLoader, path string, builtin func() *image.RGBA) (render.Image, error) {
	if path == "" {
		return g.Renderer.NewImageFromImage(builtin()), nil
	}
	if loader == nil {
		return nil, fmt.Errorf("no resource loader for %s", path)
	}
	img, err := loader.LoadImage(path)
	if err != nil {
		return nil, err
	}
	g.Log.Debug().Str("path", path).Msg("loaded image")
	return img, nil
}
