package main

import (
	"log"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/hajimehoshi/ebiten/v2"

	tile "github.com/voidshard/tile2d"
	"github.com/voidshard/tile2d/asset"
	"github.com/voidshard/tile2d/sprite"
)

// direction keys & the clip they play
var moves = []struct {
	key    ebiten.Key
	dx, dy float32
	clip   string
}{
	{ebiten.KeyA, -1, 0, "walk left"},
	{ebiten.KeyD, 1, 0, "walk right"},
	{ebiten.KeyW, 0, -1, "walk up"},
	{ebiten.KeyS, 0, 1, "walk down"},
}

type game struct {
	cfg      *tile.Config
	ctx      tile.Context
	level    *tile.TileMap
	player   *sprite.Sprite
	clips    *sprite.NamedClips
	renderer *ebitenRenderer
}

func newGame(cfg *tile.Config, root string) (*game, error) {
	assets := asset.NewRegistry(root)
	if err := assets.Load(cfg.Atlas, cfg.Sprite.Sheet); err != nil {
		return nil, err
	}
	atlas := assets.MustTexture(cfg.Atlas)

	mapPath := cfg.Map
	if !filepath.IsAbs(mapPath) {
		mapPath = filepath.Join(root, mapPath)
	}
	level, err := tile.Load(mapPath, atlas)
	if err != nil {
		return nil, err
	}

	player := sprite.New(assets.MustTexture(cfg.Sprite.Sheet))
	clips := player.Clips()
	for _, c := range cfg.Sprite.Clips {
		if err := clips.Add(c.Name, tile.NewFrame(c.X, c.Y, c.Width, c.Height), c.Frames, c.Delay); err != nil {
			return nil, err
		}
	}
	if cfg.Sprite.Idle != "" {
		if err := clips.SetActive(cfg.Sprite.Idle); err != nil {
			return nil, err
		}
	}
	player.Transform.SetPosition(cfg.Sprite.X, cfg.Sprite.Y)

	return &game{
		cfg:   cfg,
		level: level,
		ctx: tile.Context{
			ScreenWidth:  float32(cfg.ScreenWidth),
			ScreenHeight: float32(cfg.ScreenHeight),
			Atlas:        atlas,
		},
		player:   player,
		clips:    clips,
		renderer: newEbitenRenderer(),
	}, nil
}

func (g *game) Update() error {
	g.clips.Pause()

	for _, m := range moves {
		if !ebiten.IsKeyPressed(m.key) {
			continue
		}
		g.player.Transform.Move(m.dx*g.cfg.Sprite.Speed, m.dy*g.cfg.Sprite.Speed)
		if err := g.clips.SetActive(m.clip); err != nil {
			return err
		}
		g.clips.Play()
	}

	dt := 1 / float64(ebiten.TPS())
	g.player.Update(dt * g.cfg.Sprite.TimeScale)

	g.level.SetViewport(g.player.Transform.Position(), g.ctx)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.renderer.screen = screen
	g.level.Render(g.renderer, g.ctx)
	g.player.Render(g.renderer)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}

const desc = `Walks a sprite around a tmx map (WASD) in a window.`

var cli struct {
	Config string `short:"c" help:"yaml scene config (defaults built in)"`
	Root   string `short:"r" default:"." help:"directory asset & map paths are relative to"`
}

func main() {
	kong.Parse(&cli, kong.Name("viewer"), kong.Description(desc))

	cfg := tile.DefaultConfig()
	if cli.Config != "" {
		var err error
		cfg, err = tile.LoadConfig(cli.Config)
		if err != nil {
			log.Fatal(err)
		}
	}

	g, err := newGame(cfg, cli.Root)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("tile2d viewer")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
