package types

import (
	"classic-snake/internal/domain"
)

type UIEvent struct {
	Type    UIEventType
	Payload interface{}
}

type UIEventType int

const (
	UIEventNone UIEventType = iota
	UIEventSteer
	UIEventNewGame
	UIEventDismissDialog
	UIEventScreenshot
	UIEventQuit
)

type SteerData struct {
	Direction domain.Direction
}
