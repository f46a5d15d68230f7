package domain

// Snake is the ordered list of occupied cells, head first.
type Snake struct {
	Points []Coord
}

func NewSnake(head Coord, tailDirection Direction, length int, field *Field) *Snake {
	points := make([]Coord, 0, length)
	current := head
	for i := 0; i < length; i++ {
		points = append(points, current)
		current = field.Move(current, tailDirection)
	}
	return &Snake{Points: points}
}

func (s *Snake) Head() Coord {
	if len(s.Points) == 0 {
		return Coord{}
	}
	return s.Points[0]
}

func (s *Snake) Tail() Coord {
	if len(s.Points) == 0 {
		return Coord{}
	}
	return s.Points[len(s.Points)-1]
}

func (s *Snake) Len() int {
	return len(s.Points)
}

func (s *Snake) Contains(c Coord) bool {
	for _, p := range s.Points {
		if p.Equals(c) {
			return true
		}
	}
	return false
}

// Move prepends newHead and drops the tail, keeping the length.
func (s *Snake) Move(newHead Coord) {
	if len(s.Points) == 0 {
		s.Points = append(s.Points, newHead)
		return
	}
	copy(s.Points[1:], s.Points[:len(s.Points)-1])
	s.Points[0] = newHead
}

// Grow duplicates the tail segment. The duplicate separates on the next Move.
func (s *Snake) Grow() {
	s.Points = append(s.Points, s.Tail())
}

func (s *Snake) Copy() *Snake {
	points := make([]Coord, len(s.Points))
	copy(points, s.Points)
	return &Snake{Points: points}
}
