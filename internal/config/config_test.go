package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}

	again, err := Load(path)
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if *again != *cfg {
		t.Errorf("reloaded cfg = %+v, want %+v", again, cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"board_width": 20, "tick_ms": 150, "watch_sounds": false}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	game := cfg.GameConfig()
	if game.Width != 20 || game.Height != Default().BoardHeight {
		t.Errorf("board = %dx%d", game.Width, game.Height)
	}
	if game.TickInterval != 150*time.Millisecond {
		t.Errorf("tick = %v, want 150ms", game.TickInterval)
	}
	if cfg.WatchSounds {
		t.Error("watch_sounds override ignored")
	}
	if cfg.HighScorePath != "highscore.txt" {
		t.Errorf("highscore path = %q", cfg.HighScorePath)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"tiny board", `{"board_width": 2}`, "board width"},
		{"fast tick", `{"tick_ms": 1}`, "tick interval"},
		{"empty score path", `{"highscore_path": ""}`, "highscore_path"},
		{"not json", `board_width=10`, "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestSoundPath(t *testing.T) {
	cfg := Default()
	if got := cfg.SoundPath("EatApple.wav"); got != filepath.Join("sounds", "EatApple.wav") {
		t.Errorf("SoundPath = %q", got)
	}
	abs := filepath.Join(t.TempDir(), "x.wav")
	if got := cfg.SoundPath(abs); got != abs {
		t.Errorf("SoundPath(abs) = %q, want %q", got, abs)
	}
}
