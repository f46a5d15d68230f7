package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHighScoreLoadMissingFile(t *testing.T) {
	store := NewHighScoreFile(filepath.Join(t.TempDir(), "highscore.txt"))
	if got := store.Load(); got != 0 {
		t.Errorf("Load() = %d, want 0", got)
	}
}

func TestHighScoreLoadCorruptFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"garbage", "twelve"},
		{"negative", "-4"},
		{"float", "3.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "highscore.txt")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if got := NewHighScoreFile(path).Load(); got != 0 {
				t.Errorf("Load() = %d, want 0", got)
			}
		})
	}
}

func TestHighScoreLoadTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	if err := os.WriteFile(path, []byte("17\r\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := NewHighScoreFile(path).Load(); got != 17 {
		t.Errorf("Load() = %d, want 17", got)
	}
}

func TestHighScoreSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "highscore.txt")
	store := NewHighScoreFile(path)

	if err := store.Save(12); err != nil {
		t.Fatalf("Save(12): %v", err)
	}
	if err := store.Save(5); err != nil {
		t.Fatalf("Save(5): %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "5" {
		t.Errorf("file contents = %q, want %q", data, "5")
	}
	if got := store.Load(); got != 5 {
		t.Errorf("Load() = %d, want 5", got)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, temp file left behind", len(entries))
	}
}

func TestHighScoreSaveRejectsNegative(t *testing.T) {
	store := NewHighScoreFile(filepath.Join(t.TempDir(), "highscore.txt"))
	if err := store.Save(-1); err == nil {
		t.Error("Save(-1) succeeded")
	}
}
