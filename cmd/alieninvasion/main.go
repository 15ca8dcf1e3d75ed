package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"

	"chosenoffset.com/alieninvasion/internal/game"
	ebitenrender "chosenoffset.com/alieninvasion/internal/render/ebiten"
	"chosenoffset.com/alieninvasion/internal/settings"
)

func main() {
	configPath := flag.String("config", "alien_invasion.yaml", "path to the settings file")
	fullscreen := flag.Bool("fullscreen", false, "play fullscreen at the monitor's resolution")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(*logLevel); err == nil {
		log = log.Level(lvl)
	} else {
		log.Warn().Str("level", *logLevel).Msg("unknown log level, using info")
		log = log.Level(zerolog.InfoLevel)
	}

	s, err := settings.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *configPath).Msg("failed to load settings")
	}
	if *fullscreen {
		s.Fullscreen = true
	}

	// Initialize the renderer backend (ebiten)
	renderer, err := ebitenrender.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create renderer")
	}
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	if s.Fullscreen {
		if w, h := engine.MonitorSize(); w > 0 && h > 0 {
			s.ScreenWidth, s.ScreenHeight = w, h
		}
	}

	g, err := game.New(s, game.Deps{
		Renderer: renderer,
		Input:    inputMgr,
		Cursor:   engine,
		Loader:   loader,
		Logger:   log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game")
	}

	// Set up the window
	engine.SetWindowSize(s.ScreenWidth, s.ScreenHeight)
	engine.SetWindowTitle(s.Title)
	engine.SetFullscreen(s.Fullscreen)

	log.Info().Bool("fullscreen", s.Fullscreen).Msg("starting game")
	if err := engine.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("game loop failed")
	}
	log.Info().Int("high_score", g.Stats.HighScore).Msg("bye")
}
