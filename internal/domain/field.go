package domain

// Field is the playable grid. Width and Height are cell counts, so the
// largest valid coordinate is (Width-1, Height-1).
type Field struct {
	Width  int32
	Height int32
}

func NewField(width, height int32) *Field {
	return &Field{
		Width:  width,
		Height: height,
	}
}

func (f *Field) MaxX() int32 {
	return f.Width - 1
}

func (f *Field) MaxY() int32 {
	return f.Height - 1
}

func (f *Field) Cells() int {
	return int(f.Width) * int(f.Height)
}

// Normalize wraps c onto the field: leaving one edge re-enters from the
// opposite one.
func (f *Field) Normalize(c Coord) Coord {
	x := c.X % f.Width
	if x < 0 {
		x += f.Width
	}
	y := c.Y % f.Height
	if y < 0 {
		y += f.Height
	}
	return Coord{X: x, Y: y}
}

func (f *Field) Move(c Coord, d Direction) Coord {
	return f.Normalize(c.Add(d.Delta()))
}
