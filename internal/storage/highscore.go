package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// HighScoreFile keeps the high score as a decimal integer in a text file.
type HighScoreFile struct {
	Path string
}

func NewHighScoreFile(path string) *HighScoreFile {
	return &HighScoreFile{Path: path}
}

// Load returns the stored high score. A missing or unreadable record counts
// as no record at all.
func (h *HighScoreFile) Load() int {
	data, err := os.ReadFile(h.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0
	}
	if err != nil {
		log.Printf("HighScore: failed to read %s: %v", h.Path, err)
		return 0
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return 0
	}

	score, err := strconv.Atoi(text)
	if err != nil || score < 0 {
		log.Printf("HighScore: ignoring malformed record %q in %s", text, h.Path)
		return 0
	}
	return score
}

func (h *HighScoreFile) Save(score int) error {
	if score < 0 {
		return fmt.Errorf("negative high score %d", score)
	}

	dir := filepath.Dir(h.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".highscore-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(strconv.Itoa(score)); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), h.Path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", h.Path, err)
	}
	return nil
}
