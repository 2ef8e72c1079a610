// internal/state/pause_state.go
package state

import (
	"go-knife-fight/internal/config"
	"go-knife-fight/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the frame clock: the game under it gets no Update calls.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *PlayState
	renderer      *render.DiscRenderer
}

func NewPauseState(sm *StateMachine, prevState *PlayState, renderer *render.DiscRenderer) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		renderer:      renderer,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := pauseKeyPressed()
	if x, y, ok := justTapped(); ok && (x < 0 || s.previousState.pauseButton.IsClicked(x, y)) {
		unpause = true
	}
	if unpause {
		s.previousState.resume()
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, float32(config.ScreenWidth), float32(config.ScreenHeight), config.OverlayColor, false)
	s.renderer.DrawBanner(screen, "PAUSED", "Tap or press P to resume", config.TextLightColor)
}

func (s *PauseState) Exit() {}
