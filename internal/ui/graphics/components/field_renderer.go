package components

import (
	"fmt"

	"classic-snake/internal/domain"
	"classic-snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FieldRenderer draws the board at a fixed cell size. It only reads state.
type FieldRenderer struct {
	CellWidth  int
	CellHeight int
	OffsetX    int
	OffsetY    int
}

func NewFieldRenderer(cfg *domain.GameConfig, offsetX, offsetY int) *FieldRenderer {
	return &FieldRenderer{
		CellWidth:  cfg.CellWidth,
		CellHeight: cfg.CellHeight,
		OffsetX:    offsetX,
		OffsetY:    offsetY,
	}
}

func (fr *FieldRenderer) cellOrigin(c domain.Coord) (float32, float32) {
	return float32(fr.OffsetX + int(c.X)*fr.CellWidth), float32(fr.OffsetY + int(c.Y)*fr.CellHeight)
}

func (fr *FieldRenderer) DrawField(screen *ebiten.Image, field *domain.Field) {
	if field == nil {
		return
	}

	w := float32(int(field.Width) * fr.CellWidth)
	h := float32(int(field.Height) * fr.CellHeight)

	vector.DrawFilledRect(screen,
		float32(fr.OffsetX), float32(fr.OffsetY),
		w, h,
		types.ColorFieldBg, false)

	for x := int32(0); x <= field.Width; x++ {
		x1 := float32(fr.OffsetX + int(x)*fr.CellWidth)
		vector.StrokeLine(screen,
			x1, float32(fr.OffsetY),
			x1, float32(fr.OffsetY)+h,
			1, types.ColorGrid, false)
	}
	for y := int32(0); y <= field.Height; y++ {
		y1 := float32(fr.OffsetY + int(y)*fr.CellHeight)
		vector.StrokeLine(screen,
			float32(fr.OffsetX), y1,
			float32(fr.OffsetX)+w, y1,
			1, types.ColorGrid, false)
	}
}

func (fr *FieldRenderer) DrawFood(screen *ebiten.Image, food domain.Coord) {
	x, y := fr.cellOrigin(food)
	radius := float32(min(fr.CellWidth, fr.CellHeight)) / 2

	vector.DrawFilledCircle(screen,
		x+float32(fr.CellWidth)/2, y+float32(fr.CellHeight)/2,
		radius, types.ColorFood, true)
}

func (fr *FieldRenderer) DrawSnake(screen *ebiten.Image, body []domain.Coord) {
	// Tail first so the head is drawn on top of a duplicated segment.
	for i := len(body) - 1; i >= 0; i-- {
		x, y := fr.cellOrigin(body[i])

		cellColor := types.ColorSnakeBody
		if i == 0 {
			cellColor = types.ColorSnakeHead
		}

		vector.DrawFilledRect(screen,
			x+1, y+1,
			float32(fr.CellWidth-2), float32(fr.CellHeight-2),
			cellColor, false)
	}
}

func (fr *FieldRenderer) DrawDirection(screen *ebiten.Image, dir domain.Direction) {
	fonts := types.GetFonts()
	label := fmt.Sprintf("Direction: %v", dir)
	text.Draw(screen, label, fonts.Normal, fr.OffsetX+10, fr.OffsetY+20, types.ColorText)
}
