package domain

import (
	"log"
	"math/rand"
	"time"
)

type Phase int

const (
	PhaseRunning  Phase = 0
	PhaseGameOver Phase = 1
	PhaseWon      Phase = 2
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game over"
	case PhaseWon:
		return "won"
	}
	return "unknown"
}

const (
	initialLength    = 3
	initialDirection = DirectionLeft
	foodSampleLimit  = 100
)

// GameState is owned by a single goroutine; it has no locking.
type GameState struct {
	Field     *Field
	Config    *GameConfig
	Snake     *Snake
	Direction Direction
	Food      Coord
	Score     int
	HighScore int
	Phase     Phase

	// heading is the direction applied by the last Advance. Reversal is
	// checked against it as well as Direction so two quick key presses
	// cannot fold the snake.
	heading Direction
	rng     *rand.Rand
}

func NewGameState(config *GameConfig, rng *rand.Rand) *GameState {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &GameState{
		Field:     NewField(config.Width, config.Height),
		Config:    config.Copy(),
		Snake:     &Snake{},
		Direction: initialDirection,
		heading:   initialDirection,
		Phase:     PhaseGameOver,
		rng:       rng,
	}
}

func (gs *GameState) StartNewGame(width, height int32) {
	gs.Field = NewField(width, height)
	gs.Config.Width = width
	gs.Config.Height = height

	gs.Score = 0
	gs.Phase = PhaseRunning

	start := Coord{X: gs.Field.MaxX() / 2, Y: gs.Field.MaxY() / 2}
	gs.Snake = NewSnake(start, initialDirection.Opposite(), initialLength, gs.Field)

	gs.Direction = initialDirection
	gs.heading = initialDirection

	gs.GenerateFood()
}

func (gs *GameState) Advance() Coord {
	newHead := gs.Field.Move(gs.Snake.Head(), gs.Direction)
	gs.Snake.Move(newHead)
	gs.heading = gs.Direction
	return newHead
}

func (gs *GameState) CheckSelfCollision() bool {
	head := gs.Snake.Head()
	for _, p := range gs.Snake.Points[1:] {
		if p.Equals(head) {
			return true
		}
	}
	return false
}

func (gs *GameState) TryEatFood() bool {
	if !gs.Snake.Head().Equals(gs.Food) {
		return false
	}

	gs.Snake.Grow()
	gs.Score++
	if gs.Score > gs.HighScore {
		gs.HighScore = gs.Score
	}

	// A snake as long as the board has nowhere left to go.
	if gs.Snake.Len() >= gs.Field.Cells() || !gs.GenerateFood() {
		gs.Phase = PhaseWon
	}
	return true
}

func (gs *GameState) SetDirection(requested Direction) bool {
	if !requested.Valid() || requested.IsOpposite(gs.Direction) || requested.IsOpposite(gs.heading) {
		return false
	}
	gs.Direction = requested
	return true
}

// GenerateFood places the food on a uniformly chosen free cell. It reports
// false when the snake covers the whole board.
func (gs *GameState) GenerateFood() bool {
	for attempts := 0; attempts < foodSampleLimit; attempts++ {
		pos := Coord{
			X: gs.rng.Int31n(gs.Field.Width),
			Y: gs.rng.Int31n(gs.Field.Height),
		}
		if !gs.Occupies(pos) {
			gs.Food = pos
			log.Printf("New food generated at: %v", pos)
			return true
		}
	}

	occupied := make(map[Coord]bool, gs.Snake.Len())
	for _, p := range gs.Snake.Points {
		occupied[p] = true
	}

	free := make([]Coord, 0, gs.Field.Cells()-len(occupied))
	for y := int32(0); y < gs.Field.Height; y++ {
		for x := int32(0); x < gs.Field.Width; x++ {
			if c := (Coord{x, y}); !occupied[c] {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return false
	}

	gs.Food = free[gs.rng.Intn(len(free))]
	log.Printf("New food generated at: %v", gs.Food)
	return true
}

func (gs *GameState) Head() Coord {
	return gs.Snake.Head()
}

func (gs *GameState) Len() int {
	return gs.Snake.Len()
}

func (gs *GameState) Body() []Coord {
	return gs.Snake.Copy().Points
}

func (gs *GameState) Occupies(c Coord) bool {
	return gs.Snake.Contains(c)
}

func (gs *GameState) Running() bool {
	return gs.Phase == PhaseRunning
}
