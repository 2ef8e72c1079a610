// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-knife-fight/internal/app"
	"go-knife-fight/internal/config"
	"go-knife-fight/internal/defs"
	"go-knife-fight/internal/state"
	"go-knife-fight/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings, err := config.Load(".env")
	if err != nil {
		log.Fatal(err)
	}
	preset, err := defs.ResolvePreset(settings)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("preset %s: variant %s, %.2f rotations/s", preset.ID, preset.Variant, preset.RotationSpeed)

	if settings.PprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(settings.PprofAddr, nil))
		}()
	}

	renderer, err := render.NewDiscRenderer(
		float64(config.ScreenWidth)/2,
		float64(config.ScreenHeight)/2,
		preset.BlockSize,
		preset.DotSize,
		render.DefaultColors(),
	)
	if err != nil {
		log.Fatal(err)
	}

	sm := state.NewStateMachine()
	if settings.StartFromGame {
		game := app.NewGame(preset)
		game.Debug = settings.Debug
		sm.SetState(state.NewPlayState(sm, game, renderer))
	} else {
		sm.SetState(state.NewMenuState(sm, preset, renderer))
	}

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Knife Fight")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
