package system

import (
	"go-knife-fight/internal/component"
	"go-knife-fight/internal/config"
	"go-knife-fight/internal/event"
)

// StateSystem owns the round: score, markers in placement order and the phase.
// All mutations go through SwitchToGameOver, AddPlacement and Reset.
type StateSystem struct {
	phase           component.GamePhase
	score           int
	placements      []component.Placement
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		phase:           component.Playing,
		eventDispatcher: eventDispatcher,
	}
}

// AddPlacement appends a marker and awards its points. It is a no-op once the
// round is over.
func (s *StateSystem) AddPlacement(p component.Placement) bool {
	if s.phase != component.Playing {
		return false
	}
	s.placements = append(s.placements, p)
	s.score += config.PointsPerPlacement
	s.dispatch(event.Event{Type: event.DotPlaced, Data: p})
	return true
}

func (s *StateSystem) SwitchToGameOver() {
	if s.phase == component.GameOver {
		return
	}
	s.phase = component.GameOver
	s.dispatch(event.Event{Type: event.GameOver, Data: s.score})
}

// Reset starts a fresh round.
func (s *StateSystem) Reset() {
	s.phase = component.Playing
	s.score = 0
	s.placements = nil
	s.dispatch(event.Event{Type: event.GameReset})
}

func (s *StateSystem) Current() component.GamePhase {
	return s.phase
}

func (s *StateSystem) Score() int {
	return s.score
}

// Placements exposes the live slice; callers must not modify it.
func (s *StateSystem) Placements() []component.Placement {
	return s.placements
}

func (s *StateSystem) dispatch(e event.Event) {
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(e)
	}
}
