package tile

import (
	"fmt"
	"io/ioutil"

	"github.com/go-yaml/yaml"
	"github.com/mitchellh/go-homedir"
)

// Config includes settings for a scene: a map, it's atlas and a player sprite
type Config struct {
	// in pixels
	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`

	// paths
	Map   string `yaml:"map"`
	Atlas string `yaml:"atlas"`

	Sprite SpriteConfig `yaml:"sprite"`
}

// SpriteConfig describes the player sprite
type SpriteConfig struct {
	Sheet string  `yaml:"sheet"`
	X     float32 `yaml:"x"`
	Y     float32 `yaml:"y"`

	// pixels moved per update while a key is held
	Speed float32 `yaml:"speed"`

	// multiplier applied to frame time before ticking animations
	TimeScale float64 `yaml:"time_scale"`

	// clip played when nothing else is
	Idle  string       `yaml:"idle"`
	Clips []ClipConfig `yaml:"clips"`
}

// ClipConfig is one horizontal strip of animation frames on the sheet
type ClipConfig struct {
	Name   string  `yaml:"name"`
	X      float32 `yaml:"x"`
	Y      float32 `yaml:"y"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
	Frames int     `yaml:"frames"`
	Delay  float64 `yaml:"delay"` // seconds per frame
}

// DefaultConfig returns a config with default settings.
func DefaultConfig() *Config {
	walk := func(name string, y float32) ClipConfig {
		return ClipConfig{Name: name, X: 0, Y: y, Width: 32, Height: 48, Frames: 3, Delay: 0.5}
	}
	return &Config{
		ScreenWidth:  1200,
		ScreenHeight: 800,
		Map:          "Levels/Map_1.tmx",
		Atlas:        "main_tileset.png",
		Sprite: SpriteConfig{
			Sheet:     "Characters_1.png",
			X:         1180,
			Y:         520,
			Speed:     2,
			TimeScale: 5,
			Idle:      "walk left",
			Clips: []ClipConfig{
				walk("walk down", 192),
				walk("walk left", 240),
				walk("walk right", 288),
				walk("walk up", 336),
			},
		},
	}
}

// LoadConfig reads a yaml config over the defaults.
// Paths may start with ~ for the user's home dir.
func LoadConfig(fname string) (*Config, error) {
	path, err := homedir.Expand(fname)
	if err != nil {
		return nil, err
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileNotFound, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", fname, err)
	}

	return cfg, cfg.expand()
}

// expand resolves ~ in all paths
func (c *Config) expand() error {
	for _, p := range []*string{&c.Map, &c.Atlas, &c.Sprite.Sheet} {
		full, err := homedir.Expand(*p)
		if err != nil {
			return err
		}
		*p = full
	}
	return nil
}
