package domain

import (
	"fmt"
	"image"
	"time"
)

// GameConfig carries the board geometry and timing. It replaces any
// process-wide settings and is handed to the game state and the renderers.
type GameConfig struct {
	Width        int32
	Height       int32
	CellWidth    int
	CellHeight   int
	TickInterval time.Duration
}

func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Width:        40,
		Height:       30,
		CellWidth:    20,
		CellHeight:   20,
		TickInterval: 200 * time.Millisecond,
	}
}

func (c *GameConfig) Validate() error {
	if c.Width < 5 || c.Width > 200 {
		return fmt.Errorf("board width %d out of range [5, 200]", c.Width)
	}
	if c.Height < 5 || c.Height > 200 {
		return fmt.Errorf("board height %d out of range [5, 200]", c.Height)
	}
	if c.CellWidth < 4 || c.CellWidth > 64 {
		return fmt.Errorf("cell width %d out of range [4, 64]", c.CellWidth)
	}
	if c.CellHeight < 4 || c.CellHeight > 64 {
		return fmt.Errorf("cell height %d out of range [4, 64]", c.CellHeight)
	}
	if c.TickInterval < 20*time.Millisecond || c.TickInterval > 5*time.Second {
		return fmt.Errorf("tick interval %v out of range [20ms, 5s]", c.TickInterval)
	}
	return nil
}

func (c *GameConfig) Copy() *GameConfig {
	return &GameConfig{
		Width:        c.Width,
		Height:       c.Height,
		CellWidth:    c.CellWidth,
		CellHeight:   c.CellHeight,
		TickInterval: c.TickInterval,
	}
}

// PixelSize is the size of the whole board in pixels.
func (c *GameConfig) PixelSize() (int, int) {
	return int(c.Width) * c.CellWidth, int(c.Height) * c.CellHeight
}

// CellRect converts a grid coordinate into its pixel rectangle.
func (c *GameConfig) CellRect(pos Coord) image.Rectangle {
	x := int(pos.X) * c.CellWidth
	y := int(pos.Y) * c.CellHeight
	return image.Rect(x, y, x+c.CellWidth, y+c.CellHeight)
}
