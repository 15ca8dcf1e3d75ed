package scoreboard

import (
	"image"
	"testing"

	"chosenoffset.com/alieninvasion/internal/stats"
)

// fixedMeasurer pretends every glyph is 10x20 pixels.
type fixedMeasurer struct{}

func (fixedMeasurer) MeasureText(text string, size float64) (int, int) {
	return 10 * len(text), 20
}

var screen = image.Rect(0, 0, 1200, 800)

func newBoard(gs *stats.GameStats) *Scoreboard {
	return New(gs, fixedMeasurer{}, screen, image.Pt(60, 48))
}

func TestScoreIsRoundedAndGrouped(t *testing.T) {
	gs := stats.New(3)
	gs.Score = 12345
	sb := newBoard(gs)

	if sb.Score.Text != "12,340" {
		t.Errorf("Expected '12,340', got '%s'", sb.Score.Text)
	}

	gs.Score = 75
	sb.PrepScore()
	if sb.Score.Text != "80" {
		t.Errorf("Expected '80', got '%s'", sb.Score.Text)
	}

	gs.Score = 25
	sb.PrepScore()
	if sb.Score.Text != "20" {
		t.Errorf("Expected half to round to even '20', got '%s'", sb.Score.Text)
	}
}

func TestLayout(t *testing.T) {
	gs := stats.New(3)
	gs.Score = 1500
	gs.Level = 2
	sb := newBoard(gs)

	// "1,500" is 5 glyphs wide
	if sb.Score.Pos != image.Pt(1200-20-50, 20) {
		t.Errorf("Unexpected score position %v", sb.Score.Pos)
	}
	if sb.HighScore.Pos != image.Pt((1200-10)/2, 20) {
		t.Errorf("Unexpected high score position %v", sb.HighScore.Pos)
	}
	if sb.Level.Text != "2" || sb.Level.Pos != image.Pt(1200-20-10, 50) {
		t.Errorf("Unexpected level label %+v", sb.Level)
	}
}

func TestPrepShips(t *testing.T) {
	gs := stats.New(3)
	sb := newBoard(gs)
	if len(sb.Ships) != 3 {
		t.Fatalf("Expected 3 ship icons, got %d", len(sb.Ships))
	}
	if sb.Ships[2] != image.Pt(130, 10) {
		t.Errorf("Expected third icon at (130,10), got %v", sb.Ships[2])
	}

	gs.LoseShip()
	sb.PrepShips()
	if len(sb.Ships) != 2 {
		t.Errorf("Expected 2 ship icons, got %d", len(sb.Ships))
	}
}

func TestLabelsAreCachedUntilPrep(t *testing.T) {
	gs := stats.New(3)
	sb := newBoard(gs)

	gs.Score = 500
	if sb.Score.Text != "0" {
		t.Errorf("Expected cached '0' before prep, got '%s'", sb.Score.Text)
	}
	sb.PrepScore()
	if sb.Score.Text != "500" {
		t.Errorf("Expected '500' after prep, got '%s'", sb.Score.Text)
	}
}

func TestCheckHighScore(t *testing.T) {
	gs := stats.New(3)
	sb := newBoard(gs)

	gs.Score = 300
	sb.CheckHighScore()
	if gs.HighScore != 300 || sb.HighScore.Text != "300" {
		t.Errorf("Expected high score 300, got %d / '%s'", gs.HighScore, sb.HighScore.Text)
	}

	gs.Score = 100
	sb.CheckHighScore()
	if gs.HighScore != 300 {
		t.Errorf("Expected high score to stay 300, got %d", gs.HighScore)
	}
}
