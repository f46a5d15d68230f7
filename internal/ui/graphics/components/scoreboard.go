package components

import (
	"fmt"

	"classic-snake/internal/domain"
	"classic-snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Scoreboard is the side panel with the score labels.
type Scoreboard struct {
	X, Y          int
	Width, Height int
}

func NewScoreboard(x, y, width, height int) *Scoreboard {
	return &Scoreboard{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

func (sb *Scoreboard) Draw(screen *ebiten.Image, state *domain.GameState, stats domain.HistoryStats) {
	vector.DrawFilledRect(screen,
		float32(sb.X), float32(sb.Y),
		float32(sb.Width), float32(sb.Height),
		types.Darken(types.ColorFieldBg, 0.8), false)

	vector.StrokeRect(screen,
		float32(sb.X), float32(sb.Y),
		float32(sb.Width), float32(sb.Height),
		1, types.ColorGrid, false)

	fonts := types.GetFonts()
	x := sb.X + 12
	y := sb.Y + 24

	text.Draw(screen, "SCORE", fonts.Small, x, y, types.ColorTextDim)
	text.Draw(screen, fmt.Sprintf("%d", state.Score), fonts.Normal, x, y+18, types.ColorTextHighlight)

	y += 50
	text.Draw(screen, "HIGH SCORE", fonts.Small, x, y, types.ColorTextDim)
	text.Draw(screen, fmt.Sprintf("%d", state.HighScore), fonts.Normal, x, y+18, types.ColorTextHighlight)

	y += 50
	text.Draw(screen, "LENGTH", fonts.Small, x, y, types.ColorTextDim)
	text.Draw(screen, fmt.Sprintf("%d", state.Len()), fonts.Normal, x, y+18, types.ColorText)

	y += 50
	text.Draw(screen, "GAMES PLAYED", fonts.Small, x, y, types.ColorTextDim)
	text.Draw(screen, fmt.Sprintf("%d", stats.Games), fonts.Normal, x, y+18, types.ColorText)

	if stats.Games > 0 {
		avg := float64(stats.TotalScore) / float64(stats.Games)
		text.Draw(screen, fmt.Sprintf("avg %.1f", avg), fonts.Small, x, y+36, types.ColorTextDim)
	}
}
