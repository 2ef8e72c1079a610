// internal/state/menu_state.go
package state

import (
	"go-knife-fight/internal/app"
	"go-knife-fight/internal/component"
	"go-knife-fight/internal/config"
	"go-knife-fight/internal/defs"
	"go-knife-fight/internal/system"
	"go-knife-fight/internal/utils"
	"go-knife-fight/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MenuState is the title screen. A demo round plays itself behind the title.
type MenuState struct {
	sm       *StateMachine
	preset   defs.Preset
	renderer *render.DiscRenderer
	demo     *app.Game
	tapper   *system.AutoTapper
}

func NewMenuState(sm *StateMachine, preset defs.Preset, renderer *render.DiscRenderer) *MenuState {
	return &MenuState{
		sm:       sm,
		preset:   preset,
		renderer: renderer,
		demo:     app.NewGame(preset),
		tapper:   system.NewAutoTapper(utils.NewPRNGService(0), config.AutoTapMinDelay, config.AutoTapMaxDelay),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if _, _, ok := justTapped(); ok {
		m.sm.SetState(NewPlayState(m.sm, app.NewGame(m.preset), m.renderer))
		return
	}

	m.demo.Update(deltaTime)
	if m.tapper.Update(deltaTime) {
		m.demo.HandleTap()
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	snap := m.demo.Snapshot()
	// The demo never shows its own game over banner.
	snap.Phase = component.Playing
	m.renderer.Draw(screen, snap)
	vector.DrawFilledRect(screen, 0, 0, float32(config.ScreenWidth), float32(config.ScreenHeight), config.OverlayColor, false)
	m.renderer.DrawBanner(screen, "Knife Fight", "Tap to start", config.TextLightColor)
}

func (m *MenuState) Exit() {}
