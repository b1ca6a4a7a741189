package main

import (
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/nfnt/resize"

	tile "github.com/voidshard/tile2d"
	"github.com/voidshard/tile2d/asset"
	"github.com/voidshard/tile2d/render"
)

const desc = `Renders a tmx map to a png.

By default the whole map is drawn at 1:1. Given a screen size the map is instead framed around a
focus point exactly as the game would frame it around the player.`

var cli struct {
	Input  string `short:"i" help:"input .tmx map (required)"`
	Atlas  string `short:"a" help:"atlas image. Defaults to the map's tileset image (relative to the map)"`
	Output string `short:"o" help:"where to write the png. Defaults to input + .png. Overwrites output file if it exists."`

	// frame the map like the game does
	ScreenWidth  int     `help:"screen width in px (0: draw the whole map)"`
	ScreenHeight int     `help:"screen height in px (0: draw the whole map)"`
	FocusX       float32 `help:"x coord (map px) to frame the view on"`
	FocusY       float32 `help:"y coord (map px) to frame the view on"`

	Objects bool    `help:"outline objects"`
	Scale   float64 `default:"1" help:"scale the final image by this"`
}

func main() {
	kong.Parse(&cli, kong.Name("tmx-render"), kong.Description(desc))

	if cli.Output == "" {
		cli.Output = fmt.Sprintf("%s.png", cli.Input)
	}

	doc, err := tile.Open(cli.Input)
	if err != nil {
		panic(err)
	}

	atlasPath := cli.Atlas
	if atlasPath == "" {
		if doc.TilesetImage == "" {
			panic(fmt.Sprintf("%s declares no tileset image, --atlas is required", cli.Input))
		}
		atlasPath = filepath.Join(filepath.Dir(cli.Input), doc.TilesetImage)
	}

	assets := asset.NewRegistry("")
	err = assets.Load(atlasPath)
	if err != nil {
		panic(err)
	}
	atlas := assets.MustTexture(atlasPath)

	m, err := tile.New(doc, atlas)
	if err != nil {
		panic(err)
	}

	size := m.Bounds()
	ctx := tile.Context{ScreenWidth: size.X(), ScreenHeight: size.Y(), Atlas: atlas}
	view := mgl32.Ident4()
	if cli.ScreenWidth > 0 && cli.ScreenHeight > 0 {
		ctx.ScreenWidth = float32(cli.ScreenWidth)
		ctx.ScreenHeight = float32(cli.ScreenHeight)
		m.SetViewport(mgl32.Vec2{cli.FocusX, cli.FocusY}, ctx)
		view = m.Viewport().View()
	}

	canvas := render.NewCanvas(int(ctx.ScreenWidth), int(ctx.ScreenHeight))
	canvas.Clear(color.Black)
	for _, l := range m.Layers() {
		if !l.Visible {
			fmt.Printf("skipping hidden layer %q\n", l.Name)
			continue
		}
		canvas.DrawLayer(atlas, l.Batch, view)
		fmt.Printf("layer %q: %d tiles\n", l.Name, l.Batch.Tiles())
	}

	if cli.Objects {
		for _, o := range m.Objects().All() {
			canvas.Outline(o.Bounds, view, color.RGBA{R: 255, G: 0, B: 255, A: 255})
		}
		fmt.Printf("outlined %d objects\n", m.Objects().Len())
	}

	if cli.Scale == 1 || cli.Scale <= 0 {
		err = canvas.SavePNG(cli.Output)
	} else {
		out := resize.Resize(
			uint(float64(ctx.ScreenWidth)*cli.Scale),
			uint(float64(ctx.ScreenHeight)*cli.Scale),
			canvas.Image(),
			resize.NearestNeighbor,
		)
		err = render.SavePNG(cli.Output, out)
	}
	if err != nil {
		panic(err)
	}

	fmt.Printf("wrote %s\n", cli.Output)
}
