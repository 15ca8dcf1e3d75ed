package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	s := Default()
	if err := s.Validate(); err != nil {
		t.Fatalf("Expected default settings to be valid, got %v", err)
	}
	if s.Current != s.Base {
		t.Errorf("Expected current difficulty to start at base, got %+v", s.Current)
	}
	if s.HitPause != 500*time.Millisecond {
		t.Errorf("Expected hit pause 500ms, got %s", s.HitPause)
	}
}

func TestIncreaseSpeedAndReset(t *testing.T) {
	s := Default()
	s.IncreaseSpeed()

	if got, want := s.Current.AlienSpeed, s.Base.AlienSpeed*s.SpeedupScale; got != want {
		t.Errorf("Expected alien speed %g, got %g", want, got)
	}
	if got, want := s.Current.AlienPoints, 75; got != want {
		t.Errorf("Expected alien points %d, got %d", want, got)
	}

	s.ReverseFleet()
	if s.Current.FleetDirection != -1 {
		t.Errorf("Expected fleet direction -1, got %d", s.Current.FleetDirection)
	}

	s.ResetDifficulty()
	if s.Current != s.Base {
		t.Errorf("Expected reset to restore base difficulty, got %+v", s.Current)
	}
}

func TestDifficultyNextIsPure(t *testing.T) {
	d := Difficulty{ShipSpeed: 2, BulletSpeed: 4, AlienSpeed: 1, AlienPoints: 10, FleetDirection: -1}
	next := d.Next(2, 1.5)

	if d.ShipSpeed != 2 {
		t.Errorf("Expected receiver to be unchanged, got ship speed %g", d.ShipSpeed)
	}
	if next.ShipSpeed != 4 || next.BulletSpeed != 8 || next.AlienSpeed != 2 {
		t.Errorf("Unexpected speeds after Next: %+v", next)
	}
	if next.AlienPoints != 15 {
		t.Errorf("Expected 15 points, got %d", next.AlienPoints)
	}
	if next.FleetDirection != -1 {
		t.Errorf("Expected direction to be kept, got %d", next.FleetDirection)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if s.ScreenWidth != Default().ScreenWidth {
		t.Errorf("Expected default width, got %d", s.ScreenWidth)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	data := `
screen_width: 800
bg_color: "#102030"
bullet_color: [255, 0, 10]
bullet_allow: 5
hit_pause: 250ms
difficulty:
  ship_speed: 3
  bullet_speed: 5
  alien_speed: 2
  alien_points: 20
  fleet_direction: -1
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load settings: %v", err)
	}

	if s.ScreenWidth != 800 {
		t.Errorf("Expected width 800, got %d", s.ScreenWidth)
	}
	if s.ScreenHeight != 800 {
		t.Errorf("Expected default height 800, got %d", s.ScreenHeight)
	}
	if s.BgColor != (Color{0x10, 0x20, 0x30}) {
		t.Errorf("Unexpected bg colour %+v", s.BgColor)
	}
	if s.BulletColor != (Color{255, 0, 10}) {
		t.Errorf("Unexpected bullet colour %+v", s.BulletColor)
	}
	if s.BulletAllow != 5 {
		t.Errorf("Expected bullet_allow 5, got %d", s.BulletAllow)
	}
	if s.HitPause != 250*time.Millisecond {
		t.Errorf("Expected hit pause 250ms, got %s", s.HitPause)
	}
	if s.Current.AlienPoints != 20 || s.Current.FleetDirection != -1 {
		t.Errorf("Expected current difficulty to follow loaded base, got %+v", s.Current)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("bullet_allow: 0\n"), 0o644); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid, got %v", err)
	}
}

func TestLoadRejectsBadColour(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("bg_color: \"#12\"\n"), 0o644); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected an error for a short hex colour")
	}
}
