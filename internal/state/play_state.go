// internal/state/play_state.go
package state

import (
	"image/color"
	"time"

	"go-knife-fight/internal/config"
	"go-knife-fight/internal/event"
	"go-knife-fight/internal/interfaces"
	"go-knife-fight/internal/ui"
	"go-knife-fight/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// PlayState is the game screen.
type PlayState struct {
	sm          *StateMachine
	game        interfaces.Game
	renderer    *render.DiscRenderer
	indicator   *ui.StateIndicator
	pauseButton *ui.PauseButton
}

func NewPlayState(sm *StateMachine, game interfaces.Game, renderer *render.DiscRenderer) *PlayState {
	cx, cy := renderer.Center()
	indicator := ui.NewStateIndicator(
		float32(cx),
		float32(cy-renderer.BlockSize()/2-config.IndicatorGap),
		float32(config.IndicatorRadius),
	)
	pauseButton := ui.NewPauseButton(
		float32(config.PauseButtonX),
		float32(config.PauseButtonY),
		float32(config.PauseButtonSize),
		config.PauseColor,
		config.PlayColor,
	)

	ps := &PlayState{
		sm:          sm,
		game:        game,
		renderer:    renderer,
		indicator:   indicator,
		pauseButton: pauseButton,
	}

	feedback := &tapFeedback{indicator: indicator}
	game.Subscribe(event.DotPlaced, feedback)
	game.Subscribe(event.GameOver, feedback)
	return ps
}

func (p *PlayState) Enter() {}

func (p *PlayState) Update(deltaTime float64) {
	if pauseKeyPressed() {
		p.pause()
		return
	}

	p.game.Update(deltaTime)

	x, y, ok := justTapped()
	if !ok {
		return
	}
	if x >= 0 && p.pauseButton.IsClicked(x, y) {
		if time.Since(p.pauseButton.LastToggleTime) >= time.Duration(config.ClickCooldown)*time.Millisecond {
			p.pause()
		}
		return
	}
	p.game.HandleTap()
}

func (p *PlayState) pause() {
	p.pauseButton.TogglePause()
	p.sm.SetState(NewPauseState(p.sm, p, p.renderer))
}

func (p *PlayState) resume() {
	p.pauseButton.TogglePause()
	p.sm.SetState(p)
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	snap := p.game.Snapshot()
	p.renderer.Draw(screen, snap)

	var stateColor color.Color = config.PlayingColor
	if snap.IsOver() {
		stateColor = config.GameOverDotColor
	}
	p.indicator.Draw(screen, stateColor)
	p.pauseButton.Draw(screen)
}

func (p *PlayState) Exit() {}

// tapFeedback pulses the indicator whenever a tap lands.
type tapFeedback struct {
	indicator *ui.StateIndicator
}

func (f *tapFeedback) OnEvent(e event.Event) {
	f.indicator.HandleClick()
}
