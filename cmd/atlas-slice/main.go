package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	tile "github.com/voidshard/tile2d"
	"github.com/voidshard/tile2d/asset"
	"github.com/voidshard/tile2d/render"
)

const desc = `Prints the frame grid of an atlas image, ie. which tile id draws which pixels.

Optionally writes every frame out as it's own png (named <name>.<tile id>.png) to check an atlas
lines up with the tile size a map expects.`

var cli struct {
	Input string `short:"i" help:"input atlas image"`

	TileWidth  int `default:"32" help:"width of each tile in px"`
	TileHeight int `default:"32" help:"height of each tile in px"`

	// write frames out
	Name      string `short:"n" help:"write each frame to <name>.<id>.png"`
	Overwrite bool   `help:"overwrite existing file(s) if found"`
}

func main() {
	kong.Parse(&cli, kong.Name("atlas-slice"), kong.Description(desc))
	if cli.TileWidth <= 0 || cli.TileHeight <= 0 {
		panic(fmt.Sprintf("tile size must be positive, got %dx%d", cli.TileWidth, cli.TileHeight))
	}

	tex, err := asset.ReadTexture(cli.Input)
	if err != nil {
		panic(err)
	}

	w, h := tex.Size()
	frames := tile.SliceAtlas(tex, cli.TileWidth, cli.TileHeight)
	fmt.Printf("%s is %dx%d px: %d frames of %dx%d\n", cli.Input, w, h, len(frames), cli.TileWidth, cli.TileHeight)
	if w%cli.TileWidth != 0 || h%cli.TileHeight != 0 {
		fmt.Printf("warning: %dx%d px at the right/bottom edge are not in any frame\n", w%cli.TileWidth, h%cli.TileHeight)
	}

	for i, f := range frames {
		line := fmt.Sprintf("id %d: (%g,%g) %gx%g", i+1, f.X, f.Y, f.Width, f.Height)
		if cli.Name == "" {
			fmt.Println(line)
			continue
		}

		fname := fmt.Sprintf("%s.%d.png", cli.Name, i+1)
		if fileExists(fname) && !cli.Overwrite {
			fmt.Println(line, "skipping", fname, "exists")
			continue
		}
		err = render.SavePNG(fname, tex.Region(f))
		if err != nil {
			panic(err)
		}
		fmt.Println(line, "->", strings.TrimPrefix(fname, filepath.Dir(fname)+"/"))
	}
}

// fileExists checks if file exists
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return !info.IsDir()
}
