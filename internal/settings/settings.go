// Package settings holds the tunable values of the game: screen geometry,
// entity sizes and colours, fleet behaviour and the difficulty curve.
// Values are loaded once from a YAML file at start-up; only the difficulty
// changes while the game runs.
package settings

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned by Validate when a setting is out of range.
var ErrInvalid = errors.New("invalid settings")

// Difficulty is the part of the settings that scales as levels are cleared.
type Difficulty struct {
	ShipSpeed      float64 `yaml:"ship_speed"`      // Pixels per tick
	BulletSpeed    float64 `yaml:"bullet_speed"`    // Pixels per tick
	AlienSpeed     float64 `yaml:"alien_speed"`     // Pixels per tick
	AlienPoints    int     `yaml:"alien_points"`    // Score per alien shot down
	FleetDirection int     `yaml:"fleet_direction"` // 1 moves right, -1 moves left
}

// Next returns the difficulty of the following level. Speeds grow by
// speedup and the alien score by scoreScale; the direction is untouched.
func (d Difficulty) Next(speedup, scoreScale float64) Difficulty {
	return Difficulty{
		ShipSpeed:      d.ShipSpeed * speedup,
		BulletSpeed:    d.BulletSpeed * speedup,
		AlienSpeed:     d.AlienSpeed * speedup,
		AlienPoints:    int(float64(d.AlienPoints) * scoreScale),
		FleetDirection: d.FleetDirection,
	}
}

// Settings holds every configurable value of the game.
type Settings struct {
	// Screen
	Title        string        `yaml:"title"`
	ScreenWidth  int           `yaml:"screen_width"`
	ScreenHeight int           `yaml:"screen_height"`
	Fullscreen   bool          `yaml:"fullscreen"` // Adopt the monitor size when true
	BgColor      Color         `yaml:"bg_color"`
	HitPause     time.Duration `yaml:"hit_pause"` // Freeze after losing a ship

	// Ship
	ShipLimit int    `yaml:"ship_limit"`
	ShipImage string `yaml:"ship_image"` // Optional bitmap; built-in pixel art when empty

	// Bullets
	BulletWidth  int   `yaml:"bullet_width"`
	BulletHeight int   `yaml:"bullet_height"`
	BulletColor  Color `yaml:"bullet_color"`
	BulletAllow  int   `yaml:"bullet_allow"` // Max bullets in flight

	// Fleet
	AlienImage     string `yaml:"alien_image"`
	FleetDropSpeed int    `yaml:"fleet_drop_speed"`
	FleetRows      int    `yaml:"fleet_rows"` // 0 fills the available space

	// Difficulty curve
	SpeedupScale float64    `yaml:"speedup_scale"`
	ScoreScale   float64    `yaml:"score_scale"`
	Base         Difficulty `yaml:"difficulty"`

	// Current is the live difficulty, reset from Base on every new game.
	Current Difficulty `yaml:"-"`
}

// Default returns the stock settings.
func Default() *Settings {
	s := &Settings{
		Title:        "Alien Invasion",
		ScreenWidth:  1200,
		ScreenHeight: 800,
		BgColor:      Color{230, 230, 230},
		HitPause:     500 * time.Millisecond,

		ShipLimit: 3,

		BulletWidth:  3,
		BulletHeight: 15,
		BulletColor:  Color{60, 60, 60},
		BulletAllow:  3,

		FleetDropSpeed: 10,

		SpeedupScale: 1.1,
		ScoreScale:   1.5,
		Base: Difficulty{
			ShipSpeed:      4.5,
			BulletSpeed:    6.0,
			AlienSpeed:     1.5,
			AlienPoints:    50,
			FleetDirection: 1,
		},
	}
	s.ResetDifficulty()
	return s
}

// Load reads settings from a YAML file on top of the defaults.
// A missing file is not an error; the defaults are returned.
func Load(path string) (*Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	s.ResetDifficulty()
	return s, nil
}

// Validate checks that the settings describe a playable game.
func (s *Settings) Validate() error {
	switch {
	case s.ScreenWidth <= 0 || s.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, s.ScreenWidth, s.ScreenHeight)
	case s.ShipLimit < 1:
		return fmt.Errorf("%w: ship_limit %d", ErrInvalid, s.ShipLimit)
	case s.BulletWidth <= 0 || s.BulletHeight <= 0:
		return fmt.Errorf("%w: bullet size %dx%d", ErrInvalid, s.BulletWidth, s.BulletHeight)
	case s.BulletAllow < 1:
		return fmt.Errorf("%w: bullet_allow %d", ErrInvalid, s.BulletAllow)
	case s.FleetDropSpeed < 0 || s.FleetRows < 0:
		return fmt.Errorf("%w: fleet_drop_speed %d, fleet_rows %d", ErrInvalid, s.FleetDropSpeed, s.FleetRows)
	case s.SpeedupScale <= 0 || s.ScoreScale <= 0:
		return fmt.Errorf("%w: speedup_scale %g, score_scale %g", ErrInvalid, s.SpeedupScale, s.ScoreScale)
	case s.Base.ShipSpeed <= 0 || s.Base.BulletSpeed <= 0 || s.Base.AlienSpeed <= 0:
		return fmt.Errorf("%w: speeds must be positive", ErrInvalid)
	case s.Base.FleetDirection != 1 && s.Base.FleetDirection != -1:
		return fmt.Errorf("%w: fleet_direction %d", ErrInvalid, s.Base.FleetDirection)
	case s.HitPause < 0:
		return fmt.Errorf("%w: hit_pause %s", ErrInvalid, s.HitPause)
	}
	return nil
}

// ResetDifficulty restores the starting difficulty.
func (s *Settings) ResetDifficulty() {
	s.Current = s.Base
}

// IncreaseSpeed moves the live difficulty to the next level.
func (s *Settings) IncreaseSpeed() {
	s.Current = s.Current.Next(s.SpeedupScale, s.ScoreScale)
}

// ReverseFleet flips the horizontal direction of the fleet.
func (s *Settings) ReverseFleet() {
	s.Current.FleetDirection *= -1
}
