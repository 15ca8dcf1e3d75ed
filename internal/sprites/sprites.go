// Package sprites builds the built-in pixel-art images for the ship and the
// aliens, used when no bitmap assets are configured.
package sprites

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

// Scale is the size in screen pixels of one pattern pixel.
const Scale = 4

// Palette holds the colours of the built-in sprites.
var Palette = struct {
	Ship      color.RGBA
	ShipTrim  color.RGBA
	Alien     color.RGBA
	AlienEyes color.RGBA
}{
	Ship:      color.RGBA{40, 60, 160, 255},  // Navy hull
	ShipTrim:  color.RGBA{230, 90, 40, 255},  // Engine glow
	Alien:     color.RGBA{50, 160, 60, 255},  // Green
	AlienEyes: color.RGBA{250, 250, 250, 255}, // White
}

// Pattern rows use '#' for the body colour, 'o' for the accent colour and
// anything else for transparency.
var (
	ShipPattern = []string{
		"       #       ",
		"      ###      ",
		"      ###      ",
		"     #####     ",
		"  #  #####  #  ",
		"  # ####### #  ",
		"  ###########  ",
		" ############# ",
		"###############",
		"###############",
		"### oo   oo ###",
		"##           ##",
	}

	AlienPattern = []string{
		"  #      #  ",
		"   #    #   ",
		"  ########  ",
		" ## #### ## ",
		" #o######o# ",
		"############",
		"# ######## #",
		"# #      # #",
		"   ##  ##   ",
		"  ##    ##  ",
	}
)

// Rasterize turns a pattern into an image, each pattern pixel becoming a
// scale x scale block.
func Rasterize(pattern []string, scale int, body, accent color.Color) *image.RGBA {
	width := 0
	for _, row := range pattern {
		width = max(width, len(row))
	}

	src := image.NewRGBA(image.Rect(0, 0, width, len(pattern)))
	for y, row := range pattern {
		for x, ch := range row {
			switch ch {
			case '#':
				src.Set(x, y, body)
			case 'o':
				src.Set(x, y, accent)
			}
		}
	}

	if scale <= 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, width*scale, len(pattern)*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// Ship returns the built-in ship image.
func Ship() *image.RGBA {
	return Rasterize(ShipPattern, Scale, Palette.Ship, Palette.ShipTrim)
}

// Alien returns the built-in alien image.
func Alien() *image.RGBA {
	return Rasterize(AlienPattern, Scale, Palette.Alien, Palette.AlienEyes)
}

// Save writes img to path, choosing PNG or BMP from the file extension.
func Save(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return bmp.Encode(file, img)
	case ".png":
		return png.Encode(file, img)
	default:
		return fmt.Errorf("unsupported image format %q", filepath.Ext(path))
	}
}

// GenerateAndSave writes ship and alien images into dir using the given
// extension (".png" or ".bmp") and returns the written paths.
func GenerateAndSave(dir, ext string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	images := []struct {
		name string
		img  image.Image
	}{
		{"ship", Ship()},
		{"alien", Alien()},
	}

	var paths []string
	for _, entry := range images {
		path := filepath.Join(dir, entry.name+ext)
		if err := Save(entry.img, path); err != nil {
			return paths, fmt.Errorf("failed to save %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
