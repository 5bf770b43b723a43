// Package config loads and saves the emulator's JSON configuration file:
// window scale, audio sample rate, and keyboard bindings.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the settings the cmd/gones executable needs beyond what's
// baked into the emulation core.
type Config struct {
	Window WindowConfig `json:"window"`
	Audio  AudioConfig  `json:"audio"`
	Input  InputConfig  `json:"input"`

	path string
}

// WindowConfig controls the display surface.
type WindowConfig struct {
	Scale int `json:"scale"` // NES resolution (256x240) multiplier
}

// AudioConfig controls the PCM output stream.
type AudioConfig struct {
	Enabled    bool `json:"enabled"`
	SampleRate int  `json:"sample_rate"`
}

// InputConfig maps ebiten key names to each port's buttons.
type InputConfig struct {
	Player1 KeyMapping `json:"player1"`
	Player2 KeyMapping `json:"player2"`
}

// KeyMapping names one controller port's keys by ebiten.Key identifier
// string (e.g. "ArrowUp", "KeyJ", "Enter").
type KeyMapping struct {
	Up     string `json:"up"`
	Down   string `json:"down"`
	Left   string `json:"left"`
	Right  string `json:"right"`
	A      string `json:"a"`
	B      string `json:"b"`
	Start  string `json:"start"`
	Select string `json:"select"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Window: WindowConfig{Scale: 2},
		Audio:  AudioConfig{Enabled: true, SampleRate: 44100},
		Input: InputConfig{
			Player1: KeyMapping{
				Up: "ArrowUp", Down: "ArrowDown", Left: "ArrowLeft", Right: "ArrowRight",
				A: "KeyJ", B: "KeyK", Start: "Enter", Select: "Space",
			},
			Player2: KeyMapping{
				Up: "KeyW", Down: "KeyS", Left: "KeyA", Right: "KeyD",
				A: "KeyN", B: "KeyM", Start: "KeyU", Select: "KeyI",
			},
		},
	}
}

// Load reads a JSON config file, writing out the default config if path
// doesn't exist yet.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		c := Default()
		c.path = path
		if err := c.Save(); err != nil {
			return nil, err
		}
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	c := Default()
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	c.path = path
	c.validate()
	return c, nil
}

// Save writes the configuration back to its loaded path.
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", c.path, err)
	}
	return nil
}

func (c *Config) validate() {
	if c.Window.Scale <= 0 {
		c.Window.Scale = 2
	}
	if c.Audio.SampleRate <= 0 {
		c.Audio.SampleRate = 44100
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string { return "./config/gones.json" }
