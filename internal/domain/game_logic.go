package domain

type TickResult struct {
	Head         Coord
	GameOver     bool
	Ate          bool
	NewHighScore bool
	Won          bool
}

// Step advances the running game by one tick. It returns nil when the game
// is not running.
func (gs *GameState) Step() *TickResult {
	if gs.Phase != PhaseRunning {
		return nil
	}

	result := &TickResult{}
	previousHigh := gs.HighScore

	result.Head = gs.Advance()

	if gs.CheckSelfCollision() {
		gs.Phase = PhaseGameOver
		result.GameOver = true
		return result
	}

	if gs.TryEatFood() {
		result.Ate = true
		result.NewHighScore = gs.HighScore > previousHigh
		result.Won = gs.Phase == PhaseWon
	}

	return result
}
