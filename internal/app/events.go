package app

type AppEvent struct {
	Type    AppEventType
	Payload interface{}
}

type AppEventType int

const (
	AppEventStateUpdated AppEventType = iota
	AppEventNewGame
	AppEventFoodEaten
	AppEventHighScore
	AppEventGameOver
	AppEventWon
	AppEventError
)

type GameOverPayload struct {
	Score     int
	HighScore int
	Length    int
}

type ErrorPayload struct {
	Message string
}
