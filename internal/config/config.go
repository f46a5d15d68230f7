package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"classic-snake/internal/domain"
)

// Config holds the settings read from config.json.
type Config struct {
	BoardWidth  int32 `json:"board_width"`
	BoardHeight int32 `json:"board_height"`
	CellWidth   int   `json:"cell_width"`
	CellHeight  int   `json:"cell_height"`
	TickMs      int   `json:"tick_ms"`

	HighScorePath string `json:"highscore_path"`
	HistoryPath   string `json:"history_path"`

	SoundsDir     string `json:"sounds_dir"`
	MoveSound     string `json:"move_sound"`
	EatSound      string `json:"eat_sound"`
	GameOverSound string `json:"game_over_sound"`
	WatchSounds   bool   `json:"watch_sounds"`

	ScreenshotsDir string `json:"screenshots_dir"`
}

func Default() *Config {
	game := domain.DefaultGameConfig()
	return &Config{
		BoardWidth:     game.Width,
		BoardHeight:    game.Height,
		CellWidth:      game.CellWidth,
		CellHeight:     game.CellHeight,
		TickMs:         int(game.TickInterval / time.Millisecond),
		HighScorePath:  "highscore.txt",
		HistoryPath:    filepath.Join("data", "history.db"),
		SoundsDir:      "sounds",
		MoveSound:      "Movement.wav",
		EatSound:       "EatApple.wav",
		GameOverSound:  "GameOver.wav",
		WatchSounds:    true,
		ScreenshotsDir: "screenshots",
	}
}

// Load reads the config file. When it does not exist yet, the defaults are
// written to it and returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := Save(path, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	if err := c.GameConfig().Validate(); err != nil {
		return err
	}
	if c.HighScorePath == "" {
		return errors.New("highscore_path is empty")
	}
	return nil
}

func (c *Config) GameConfig() *domain.GameConfig {
	return &domain.GameConfig{
		Width:        c.BoardWidth,
		Height:       c.BoardHeight,
		CellWidth:    c.CellWidth,
		CellHeight:   c.CellHeight,
		TickInterval: time.Duration(c.TickMs) * time.Millisecond,
	}
}

func (c *Config) SoundPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.SoundsDir, name)
}
