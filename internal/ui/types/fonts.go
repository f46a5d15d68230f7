package types

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type Fonts struct {
	Normal font.Face
	Small  font.Face
}

var defaultFonts *Fonts

func InitFonts() {
	defaultFonts = &Fonts{
		Normal: basicfont.Face7x13,
		Small:  basicfont.Face7x13,
	}
}

func GetFonts() *Fonts {
	if defaultFonts == nil {
		InitFonts()
	}
	return defaultFonts
}

// DrawCentered draws s horizontally centered on centerX with baseline y.
func DrawCentered(screen *ebiten.Image, s string, face font.Face, centerX, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, centerX-bounds.Dx()/2, y, clr)
}
