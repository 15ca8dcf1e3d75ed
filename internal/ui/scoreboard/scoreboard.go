// Package scoreboard renders the score, high score, level and remaining
// ships. It keeps a cached layout derived from the game stats; callers must
// call the matching Prep method after changing the stats.
package scoreboard

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"chosenoffset.com/alieninvasion/internal/render"
	"chosenoffset.com/alieninvasion/internal/stats"
)

// Margin is the distance of the labels from the screen edges.
const Margin = 20

// Measurer reports the pixel size of a text at a font size.
type Measurer interface {
	MeasureText(text string, size float64) (width, height int)
}

// Label is a cached piece of text and its top-left position.
type Label struct {
	Text string
	Pos  image.Point
	Size image.Point
}

// Scoreboard holds the prepared labels for the stats it reports on.
type Scoreboard struct {
	TextColor color.Color
	FontSize  float64

	Score     Label
	HighScore Label
	Level     Label
	Ships     []image.Point // Top-left of one ship icon per remaining life

	stats    *stats.GameStats
	measurer Measurer
	screen   image.Rectangle
	shipSize image.Point
	printer  *message.Printer
}

// New creates a scoreboard and prepares every label.
func New(gs *stats.GameStats, m Measurer, screen image.Rectangle, shipSize image.Point) *Scoreboard {
	sb := &Scoreboard{
		TextColor: color.RGBA{30, 30, 30, 255},
		FontSize:  32,
		stats:     gs,
		measurer:  m,
		screen:    screen,
		shipSize:  shipSize,
		printer:   message.NewPrinter(language.English),
	}
	sb.PrepAll()
	return sb
}

// PrepAll refreshes every label.
func (sb *Scoreboard) PrepAll() {
	sb.PrepScore()
	sb.PrepHighScore()
	sb.PrepLevel()
	sb.PrepShips()
}

// PrepScore lays out the score, rounded to tens, at the top right.
func (sb *Scoreboard) PrepScore() {
	sb.Score = sb.label(sb.formatScore(sb.stats.Score))
	sb.Score.Pos = image.Pt(sb.screen.Max.X-Margin-sb.Score.Size.X, sb.screen.Min.Y+Margin)
}

// PrepHighScore lays out the high score centred at the top.
func (sb *Scoreboard) PrepHighScore() {
	sb.HighScore = sb.label(sb.formatScore(sb.stats.HighScore))
	sb.HighScore.Pos = image.Pt(
		sb.screen.Min.X+(sb.screen.Dx()-sb.HighScore.Size.X)/2,
		sb.screen.Min.Y+Margin,
	)
}

// PrepLevel lays out the level right-aligned below the score.
func (sb *Scoreboard) PrepLevel() {
	sb.Level = sb.label(sb.printer.Sprintf("%d", sb.stats.Level))
	sb.Level.Pos = image.Pt(
		sb.screen.Max.X-Margin-sb.Level.Size.X,
		sb.Score.Pos.Y+sb.Score.Size.Y+10,
	)
}

// PrepShips lays out one ship icon per remaining life at the top left.
func (sb *Scoreboard) PrepShips() {
	sb.Ships = sb.Ships[:0]
	for i := 0; i < sb.stats.ShipsLeft; i++ {
		sb.Ships = append(sb.Ships, image.Pt(sb.screen.Min.X+10+i*sb.shipSize.X, sb.screen.Min.Y+10))
	}
}

// CheckHighScore records a new high score and refreshes its label.
func (sb *Scoreboard) CheckHighScore() {
	if sb.stats.UpdateHighScore() {
		sb.PrepHighScore()
	}
}

// Draw renders the labels and ship icons. shipIcon may be nil.
func (sb *Scoreboard) Draw(dst render.Image, r render.Renderer, shipIcon render.Image) {
	for _, l := range []Label{sb.Score, sb.HighScore, sb.Level} {
		r.DrawText(dst, l.Text, l.Pos.X, l.Pos.Y, sb.TextColor, sb.FontSize)
	}

	if shipIcon == nil {
		return
	}
	for _, p := range sb.Ships {
		opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
		opts.GeoM.Translate(float64(p.X), float64(p.Y))
		dst.DrawImage(shipIcon, opts)
	}
}

func (sb *Scoreboard) label(text string) Label {
	w, h := sb.measurer.MeasureText(text, sb.FontSize)
	return Label{Text: text, Size: image.Pt(w, h)}
}

// formatScore rounds to the nearest ten, halves to even, and groups
// thousands.
func (sb *Scoreboard) formatScore(score int) string {
	rounded := int(math.RoundToEven(float64(score)/10) * 10)
	return sb.printer.Sprintf("%d", rounded)
}
