package components

import (
	"classic-snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	dialogWidth  = 300
	dialogHeight = 140
)

// Dialog is a modal acknowledgment box drawn over a backdrop image.
type Dialog struct {
	Title   string
	Message string
	Visible bool

	backdrop *ebiten.Image
	btnOK    *Button
}

func NewDialog() *Dialog {
	return &Dialog{
		btnOK: NewButton(0, 0, 100, 32, "OK"),
	}
}

func (d *Dialog) Show(title, message string, backdrop *ebiten.Image) {
	d.Title = title
	d.Message = message
	d.backdrop = backdrop
	d.Visible = true
}

func (d *Dialog) Hide() {
	d.Visible = false
	if d.backdrop != nil {
		d.backdrop.Deallocate()
		d.backdrop = nil
	}
}

// Update lays the dialog out centered on a w×h screen and reports whether OK
// was clicked.
func (d *Dialog) Update(w, h int) bool {
	if !d.Visible {
		return false
	}
	x, y := (w-dialogWidth)/2, (h-dialogHeight)/2
	d.btnOK.SetPosition(x+(dialogWidth-d.btnOK.Width)/2, y+dialogHeight-d.btnOK.Height-16)
	return d.btnOK.Update()
}

// Draw paints the backdrop at (bx, by) and the dialog centered on a w×h screen.
func (d *Dialog) Draw(screen *ebiten.Image, bx, by, w, h int) {
	if !d.Visible {
		return
	}

	if d.backdrop != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(bx), float64(by))
		screen.DrawImage(d.backdrop, op)
	}

	x, y := (w-dialogWidth)/2, (h-dialogHeight)/2
	vector.DrawFilledRect(screen,
		float32(x), float32(y),
		dialogWidth, dialogHeight,
		types.ColorDialogBg, false)
	vector.StrokeRect(screen,
		float32(x), float32(y),
		dialogWidth, dialogHeight,
		2, types.ColorBorder, false)

	fonts := types.GetFonts()
	centerX := x + dialogWidth/2
	types.DrawCentered(screen, d.Title, fonts.Normal, centerX, y+30, types.ColorTextHighlight)
	types.DrawCentered(screen, d.Message, fonts.Normal, centerX, y+60, types.ColorText)

	d.btnOK.Draw(screen)
}
