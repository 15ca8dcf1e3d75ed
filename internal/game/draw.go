package game

import (
	"image/color"

	"chosenoffset.com/alieninvasion/internal/entity"
	"chosenoffset.com/alieninvasion/internal/render"
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(g.Settings.BgColor)

	g.drawShip(screen)
	g.drawBullets(screen)
	g.drawAliens(screen)

	g.Scoreboard.Draw(screen, g.Renderer, g.ShipImg)

	// The Play button only shows while waiting for a game
	if !g.Stats.Active {
		g.PlayButton.Draw(screen, g.Renderer)
	}

	g.drawUI(screen)
}

func (g *Game) drawShip(screen render.Image) {
	r := g.Ship.Rect()
	opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
	opts.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	screen.DrawImage(g.ShipImg, opts)
}

func (g *Game) drawBullets(screen render.Image) {
	g.Bullets.Each(func(b *entity.Bullet) {
		g.Renderer.FillRect(screen, b.Rect(), g.Settings.BulletColor)
	})
}

func (g *Game) drawAliens(screen render.Image) {
	opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
	g.Aliens.Each(func(a *entity.Alien) {
		r := a.Rect()
		opts.GeoM.Reset()
		opts.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
		screen.DrawImage(g.AlienImg, opts)
	})
}

func (g *Game) drawUI(screen render.Image) {
	// Draw on-screen messages, centred in the upper third
	const size = 40
	y := g.bounds.Dy() / 3
	for _, msg := range g.Messages {
		alpha := uint8(255 * (msg.TimeLeft / msg.MaxTime))
		w, h := g.Renderer.MeasureText(msg.Text, size)
		x := (g.bounds.Dx() - w) / 2
		g.Renderer.DrawText(screen, msg.Text, x, y, color.NRGBA{30, 30, 30, alpha}, size)
		y += h + 10
	}
}
