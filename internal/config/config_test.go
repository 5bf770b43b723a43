package config

import (
	"path/filepath"
	"testing"
)

func TestLoadWritesDefaultsWhenFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gones.json")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Scale != 2 {
		t.Errorf("Window.Scale = %d, want 2 (default)", cfg.Window.Scale)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load after default write: %v", err)
	}
	if reloaded.Audio.SampleRate != cfg.Audio.SampleRate {
		t.Errorf("SampleRate = %d after reload, want %d", reloaded.Audio.SampleRate, cfg.Audio.SampleRate)
	}
}

func TestSaveRoundTripsCustomValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "gones.json")
	cfg := Default()
	cfg.Window.Scale = 4
	cfg.path = path
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if reloaded.Window.Scale != 4 {
		t.Errorf("Window.Scale = %d after round trip, want 4", reloaded.Window.Scale)
	}
}

func TestValidateRejectsNonPositiveValues(t *testing.T) {
	cfg := &Config{Window: WindowConfig{Scale: -1}, Audio: AudioConfig{SampleRate: 0}}
	cfg.validate()
	if cfg.Window.Scale <= 0 {
		t.Errorf("Window.Scale = %d after validate, want a positive default", cfg.Window.Scale)
	}
	if cfg.Audio.SampleRate <= 0 {
		t.Errorf("Audio.SampleRate = %d after validate, want a positive default", cfg.Audio.SampleRate)
	}
}
