// Package snapshot renders the board off screen. The images back the blurred
// game-over backdrop and the screenshot export.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"classic-snake/internal/domain"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

type Palette struct {
	Background color.Color
	Grid       color.Color
	Head       color.Color
	Body       color.Color
	Food       color.Color
	Text       color.Color
}

func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{40, 40, 45, 255},
		Grid:       color.RGBA{60, 60, 65, 255},
		Head:       color.RGBA{20, 20, 20, 255},
		Body:       color.RGBA{0, 100, 0, 255},
		Food:       color.RGBA{255, 80, 80, 255},
		Text:       color.RGBA{220, 220, 220, 255},
	}
}

// Render draws the board of state at the cell size of cfg.
func Render(state *domain.GameState, cfg *domain.GameConfig, p Palette) image.Image {
	w, h := cfg.PixelSize()
	dc := gg.NewContext(w, h)

	dc.SetColor(p.Background)
	dc.Clear()

	dc.SetColor(p.Grid)
	dc.SetLineWidth(1)
	for x := 0; x <= w; x += cfg.CellWidth {
		dc.DrawLine(float64(x), 0, float64(x), float64(h))
	}
	for y := 0; y <= h; y += cfg.CellHeight {
		dc.DrawLine(0, float64(y), float64(w), float64(y))
	}
	dc.Stroke()

	// Tail first so the head ends up on top.
	body := state.Body()
	for i := len(body) - 1; i >= 0; i-- {
		r := cfg.CellRect(body[i])
		dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
		if i == 0 {
			dc.SetColor(p.Head)
		} else {
			dc.SetColor(p.Body)
		}
		dc.Fill()
	}

	food := cfg.CellRect(state.Food)
	dc.DrawEllipse(
		float64(food.Min.X)+float64(food.Dx())/2,
		float64(food.Min.Y)+float64(food.Dy())/2,
		float64(food.Dx())/2, float64(food.Dy())/2)
	dc.SetColor(p.Food)
	dc.Fill()

	dc.SetColor(p.Text)
	dc.DrawString(fmt.Sprintf("Direction: %v", state.Direction), 10, 20)

	return dc.Image()
}

// Backdrop blurs img for use behind a modal dialog.
func Backdrop(img image.Image, sigma float64) *image.NRGBA {
	return imaging.Blur(img, sigma)
}

// Save writes img as a timestamped PNG into dir and returns its path.
func Save(dir string, img image.Image, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}

	path := filepath.Join(dir, fmt.Sprintf("snake-%s.png", now.Format("20060102-150405.000")))
	if err := imaging.Save(img, path); err != nil {
		return "", fmt.Errorf("failed to save screenshot: %w", err)
	}
	return path, nil
}
