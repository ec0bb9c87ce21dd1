package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hubastard/ember/engine/colors"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("missing file is not an error, got %v", err)
	}
	def := DefaultConfig()
	if cfg.Title != def.Title || cfg.Width != def.Width || cfg.Height != def.Height {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, def)
	}
	if !cfg.VSync {
		t.Error("vsync should default on")
	}
	if cfg.ClearColor != colors.DarkGray {
		t.Errorf("clear color = %v, want %v", cfg.ClearColor, colors.DarkGray)
	}
}

func TestLoadConfig_OverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ember.yml")
	data := "title: Pong\nwidth: 640\nheight: 480\nvsync: false\nclear_color: [0.2, 0.3, 0.4, 1]\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Title != "Pong" || cfg.Width != 640 || cfg.Height != 480 || cfg.VSync {
		t.Errorf("cfg = %+v", cfg)
	}
	want := colors.Color{0.2, 0.3, 0.4, 1}
	if cfg.ClearColor != want {
		t.Errorf("clear color = %v, want %v", cfg.ClearColor, want)
	}
}

func TestLoadConfig_PartialOverlayKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ember.yml")
	if err := os.WriteFile(path, []byte("title: Snake\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Title != "Snake" {
		t.Errorf("title = %q", cfg.Title)
	}
	if cfg.Width != 1280 || cfg.Height != 720 {
		t.Errorf("size = %dx%d, want defaults", cfg.Width, cfg.Height)
	}
}

func TestLoadConfig_BadYAMLIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ember.yml")
	if err := os.WriteFile(path, []byte("width: [not a number\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("malformed config parsed without error")
	}
}
