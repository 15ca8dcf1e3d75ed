package main

import (
	"flag"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"chosenoffset.com/alieninvasion/internal/sprites"
)

func main() {
	dir := flag.String("out", "images", "directory to write the sprites to")
	ext := flag.String("format", "bmp", "image format: bmp or png")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	paths, err := sprites.GenerateAndSave(*dir, "."+strings.TrimPrefix(*ext, "."))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to generate sprites")
	}
	for _, p := range paths {
		log.Info().Str("path", p).Msg("wrote sprite")
	}
	log.Info().Msg("set ship_image and alien_image in the settings file to use them")
}
