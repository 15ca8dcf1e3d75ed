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
	"chosenoffset.com/alieninvasion/internal/stats"
	"chosenoffset.com/alieninvasion/internal/ui/button"
	"chosenoffset.com/alieninvasion/internal/ui/scoreboard"
)

// Game holds all game state and logic. It is the only place where entities
// interact with each other.
type Game struct {
	Settings   *settings.Settings
	Stats      *stats.GameStats
	Ship       *entity.Ship
	Bullets    *sprite.Group[*entity.Bullet]
	Aliens     *sprite.Group[*entity.Alien]
	Scoreboard *scoreboard.Scoreboard
	PlayButton *button.Button

	Renderer render.Renderer
	InputMgr render.InputManager
	Cursor   render.Cursor
	ShipImg  render.Image
	AlienImg render.Image

	// UI state
	Messages []Message

	Log zerolog.Logger

	now    Clock
	bounds image.Rectangle

	// frozenUntil is the end of the pause after losing a ship; zero when
	// not paused.
	frozenUntil time.Time
}

// Update handles game logic updates.
func (g *Game) Update() error {
	// Delta time for timers (assuming 60 FPS)
	dt := 1.0 / 60.0
	g.updateMessages(dt)

	if err := g.checkEvents(); err != nil {
		return err
	}

	if g.Stats.Active && !g.Frozen() {
		g.Ship.Update(g.Settings.Current.ShipSpeed)
		g.updateBullets()
		g.updateAliens()
	}
	return nil
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Settings.ScreenWidth, g.Settings.ScreenHeight
}

// Phase returns whether the game is being played.
func (g *Game) Phase() Phase {
	if g.Stats.Active {
		return PhaseActive
	}
	return PhaseInactive
}

// Frozen reports whether the game is in the pause that follows a lost ship.
func (g *Game) Frozen() bool {
	return !g.frozenUntil.IsZero() && g.now().Before(g.frozenUntil)
}

// checkEvents reacts to keyboard and mouse input. While frozen only the
// quit keys are honoured.
func (g *Game) checkEvents() error {
	in := g.InputMgr
	if in.IsKeyJustPressed(render.KeyQ) || in.IsKeyJustPressed(render.KeyEscape) {
		g.Log.Info().Int("score", g.Stats.Score).Int("high_score", g.Stats.HighScore).Msg("quit requested")
		return render.ErrTerminated
	}

	if g.Frozen() {
		return nil
	}
	if !g.frozenUntil.IsZero() {
		// Pause is over; keys may have changed while nobody listened.
		g.frozenUntil = time.Time{}
		g.syncMovement()
	}

	if !g.Stats.Active {
		if in.IsKeyJustPressed(render.KeyP) {
			g.StartGame()
			return nil
		}
		if in.IsMouseButtonJustPressed(render.MouseButtonLeft) {
			g.checkPlayButton(in.GetCursorPosition())
		}
		return nil
	}

	g.checkKeydownEvents()
	g.checkKeyupEvents()
	return nil
}

func (g *Game) checkKeydownEvents() {
	in := g.InputMgr
	if in.IsKeyJustPressed(render.KeyRight) {
		g.Ship.MovingRight = true
	}
	if in.IsKeyJustPressed(render.KeyLeft) {
		g.Ship.MovingLeft = true
	}
	if in.IsKeyJustPressed(render.KeySpace) {
		g.fireBullet()
	}
}

func (g *Game) checkKeyupEvents() {
	in := g.InputMgr
	if in.IsKeyJustReleased(render.KeyRight) {
		g.Ship.MovingRight = false
	}
	if in.IsKeyJustReleased(render.KeyLeft) {
		g.Ship.MovingLeft = false
	}
}

// syncMovement sets the movement flags from the keys currently held.
func (g *Game) syncMovement() {
	g.Ship.MovingLeft = g.InputMgr.IsKeyPressed(render.KeyLeft)
	g.Ship.MovingRight = g.InputMgr.IsKeyPressed(render.KeyRight)
}

// checkPlayButton starts a new game when the click lands on Play.
func (g *Game) checkPlayButton(x, y int) {
	if !g.Stats.Active && g.PlayButton.Contains(x, y) {
		g.StartGame()
	}
}

// StartGame resets the session and puts a fresh fleet on screen.
func (g *Game) StartGame() {
	g.Settings.ResetDifficulty()
	g.Stats.Reset(g.Settings.ShipLimit)
	g.Stats.Active = true
	g.Scoreboard.PrepAll()

	g.Bullets.Empty()
	g.Aliens.Empty()
	g.createFleet()
	g.Ship.Center()
	g.syncMovement()

	g.frozenUntil = time.Time{}
	g.Messages = nil
	if g.Cursor != nil {
		g.Cursor.SetCursorVisible(false)
	}

	g.Log.Info().Int("ships", g.Stats.ShipsLeft).Int("aliens", g.Aliens.Len()).Msg("game started")
}

// fireBullet adds a bullet at the ship's nose unless the limit of bullets
// in flight is reached. It reports whether a bullet was fired.
func (g *Game) fireBullet() bool {
	if g.Bullets.Len() >= g.Settings.BulletAllow {
		return false
	}
	g.Bullets.Add(entity.NewBullet(g.Ship.Nose(), g.Settings.BulletWidth, g.Settings.BulletHeight))
	return true
}

// updateBullets moves the bullets, drops those gone off the top and
// resolves hits on the fleet.
func (g *Game) updateBullets() {
	speed := g.Settings.Current.BulletSpeed
	g.Bullets.Each(func(b *entity.Bullet) {
		b.Update(speed)
	})
	g.Bullets.RemoveFunc(func(b *entity.Bullet) bool {
		return b.OffScreen()
	})

	g.checkBulletAlienCollisions()
}

// checkBulletAlienCollisions removes every bullet that hit an alien along
// with that alien, scores them, and starts the next level when the fleet is
// gone.
func (g *Game) checkBulletAlienCollisions() {
	pairs := sprite.Collide(g.Bullets, g.Aliens, true, true)
	if len(pairs) == 0 {
		return
	}

	g.Stats.AddScore(g.Settings.Current.AlienPoints * len(pairs))
	g.Scoreboard.PrepScore()
	g.Scoreboard.CheckHighScore()

	if g.Aliens.Len() == 0 {
		g.startNewLevel()
	}
}

// startNewLevel replaces the destroyed fleet and raises the difficulty.
func (g *Game) startNewLevel() {
	g.Bullets.Empty()
	g.createFleet()
	g.Settings.IncreaseSpeed()

	g.Stats.Level++
	g.Scoreboard.PrepLevel()
	g.ShowMessage(fmt.Sprintf("Level %d", g.Stats.Level))

	g.Log.Info().
		Int("level", g.Stats.Level).
		Int("score", g.Stats.Score).
		Float64("alien_speed", g.Settings.Current.AlienSpeed).
		Msg("fleet cleared")
}

// updateAliens moves the fleet and checks whether it reached the ship.
func (g *Game) updateAliens() {
	g.checkFleetEdges()

	speed, dir := g.Settings.Current.AlienSpeed, g.Settings.Current.FleetDirection
	g.Aliens.Each(func(a *entity.Alien) {
		a.Update(speed, dir)
	})

	if _, hit := sprite.CollideAny(g.Ship, g.Aliens); hit {
		g.shipHit("collision")
		return
	}
	g.checkAliensBottom()
}

// checkFleetEdges turns the fleet around once if any alien touches a side.
func (g *Game) checkFleetEdges() {
	for _, a := range g.Aliens.Sprites() {
		if a.CheckEdges(g.bounds) {
			g.changeFleetDirection()
			break
		}
	}
}

// changeFleetDirection drops the whole fleet and reverses its direction.
func (g *Game) changeFleetDirection() {
	drop := g.Settings.FleetDropSpeed
	g.Aliens.Each(func(a *entity.Alien) {
		a.Drop(drop)
	})
	g.Settings.ReverseFleet()
}

// checkAliensBottom treats an alien reaching the bottom like a hit ship.
func (g *Game) checkAliensBottom() {
	for _, a := range g.Aliens.Sprites() {
		if a.Rect().Max.Y >= g.bounds.Max.Y {
			g.shipHit("landed")
			return
		}
	}
}

// shipHit spends a ship. With ships left the board is reset and the game
// pauses briefly; otherwise the game is over.
func (g *Game) shipHit(cause string) {
	if g.Stats.LoseShip() {
		g.Scoreboard.PrepShips()

		g.Bullets.Empty()
		g.Aliens.Empty()
		g.createFleet()
		g.Ship.Center()

		g.frozenUntil = g.now().Add(g.Settings.HitPause)
		g.Log.Info().Str("cause", cause).Int("ships_left", g.Stats.ShipsLeft).Msg("ship hit")
		return
	}

	g.Scoreboard.PrepShips()
	g.Stats.Active = false
	if g.Cursor != nil {
		g.Cursor.SetCursorVisible(true)
	}
	g.ShowMessage("Game Over")
	g.Log.Info().
		Str("cause", cause).
		Int("score", g.Stats.Score).
		Int("high_score", g.Stats.HighScore).
		Int("level", g.Stats.Level).
		Msg("game over")
}

// createFleet fills the fleet with its starting grid. The fleet always
// starts moving in the configured direction.
func (g *Game) createFleet() {
	alienW, alienH := g.AlienImg.Size()
	points := entity.FleetLayout(g.bounds, alienW, alienH, g.Ship.Rect().Dy(), g.Settings.FleetRows)
	for _, p := range points {
		g.Aliens.Add(entity.NewAlien(p.X, p.Y, alienW, alienH))
	}
	g.Settings.Current.FleetDirection = g.Settings.Base.FleetDirection
}

func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: 2.0,
		MaxTime:  2.0,
	})
	g.Log.Debug().Str("text", text).Msg("message")
}
