package interfaces

import (
	"go-knife-fight/internal/app"
	"go-knife-fight/internal/event"
)

// Game is what a frontend drives: a frame clock, taps, and a read-only view.
type Game interface {
	Update(deltaTime float64)
	HandleTap() app.TapResult
	Snapshot() app.Snapshot
	Subscribe(eventType event.EventType, listener event.Listener)
}

var _ Game = (*app.Game)(nil)
