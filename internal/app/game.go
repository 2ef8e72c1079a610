// internal/app/game.go
package app

import (
	"fmt"
	"log"
	"sync"

	"go-knife-fight/internal/component"
	"go-knife-fight/internal/defs"
	"go-knife-fight/internal/event"
	"go-knife-fight/internal/system"
	"go-knife-fight/internal/utils"
)

// TapResult tells the frontend what a tap did.
type TapResult int

const (
	TapPlaced TapResult = iota
	TapCollided
	TapRestarted
)

func (r TapResult) String() string {
	switch r {
	case TapPlaced:
		return "placed"
	case TapCollided:
		return "collided"
	case TapRestarted:
		return "restarted"
	default:
		return fmt.Sprintf("TapResult(%d)", int(r))
	}
}

// Game binds the rotation clock, the placement rule, the collision test and
// the round state. Update, HandleTap and Snapshot are serialized by one lock,
// so a tap always sees a whole clock step and its check-then-append is atomic.
//
// Listeners on EventDispatcher run with the lock held and must not call back
// into Game.
type Game struct {
	mu sync.Mutex

	Preset          defs.Preset
	Clock           *system.RotationClock
	Placer          system.Placer
	Detector        system.Detector
	StateSystem     *system.StateSystem
	EventDispatcher *event.Dispatcher

	best    int
	elapsed float64
	Debug   bool
}

// NewGame builds a game from a preset. The preset must be valid.
func NewGame(preset defs.Preset) *Game {
	if err := preset.Validate(); err != nil {
		panic(fmt.Sprintf("invalid preset: %v", err))
	}

	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Preset:          preset,
		Clock:           system.NewRotationClock(preset.RotationSpeed, eventDispatcher),
		StateSystem:     system.NewStateSystem(eventDispatcher),
		EventDispatcher: eventDispatcher,
	}
	g.Placer, g.Detector = rulesFor(preset)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.GameOver, listener)
	eventDispatcher.Subscribe(event.DotPlaced, listener)
	eventDispatcher.Subscribe(event.GameReset, listener)

	return g
}

// rulesFor returns the placement rule and the collision test for a variant.
// They only ever come in these pairs.
func rulesFor(preset defs.Preset) (system.Placer, system.Detector) {
	switch preset.Variant {
	case defs.VariantClassic:
		return system.SimplePlacer{}, system.AngularDetector{Threshold: preset.AngleThreshold}
	default:
		return system.CorrectedPlacer{}, system.GeometricDetector{
			Radius:   preset.MarkerRadius(),
			Diameter: preset.DotSize,
		}
	}
}

// Update advances the disc by dt seconds. The disc keeps turning after game over.
func (g *Game) Update(deltaTime float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Clock.Advance(deltaTime)
	if utils.IsFinite(deltaTime) && deltaTime > 0 {
		g.elapsed += deltaTime
	}
}

// HandleTap is the single input entry point: place a marker while playing,
// restart when the round is over.
func (g *Game) HandleTap() TapResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.StateSystem.Current() == component.GameOver {
		g.StateSystem.Reset()
		return TapRestarted
	}

	angle := g.Clock.Angle()
	placement := g.Placer.Place(angle)
	if g.Detector.Collides(placement, g.StateSystem.Placements(), angle) {
		g.StateSystem.SwitchToGameOver()
		return TapCollided
	}
	g.StateSystem.AddPlacement(placement)
	return TapPlaced
}

// Snapshot copies everything a frontend needs to draw one frame.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	placements := g.StateSystem.Placements()
	return Snapshot{
		Angle:      g.Clock.Angle(),
		Placements: append([]component.Placement(nil), placements...),
		Score:      g.StateSystem.Score(),
		Best:       g.best,
		Phase:      g.StateSystem.Current(),
		Variant:    g.Preset.Variant,
		Elapsed:    g.elapsed,
	}
}

// Subscribe registers an observer on the game's dispatcher.
func (g *Game) Subscribe(eventType event.EventType, listener event.Listener) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.EventDispatcher.Subscribe(eventType, listener)
}

// GameEventListener keeps the session best score and the debug log.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.DotPlaced:
		if l.game.Debug {
			log.Printf("marker placed at %.1f", e.Data.(component.Placement).Angle)
		}
	case event.GameOver:
		score := e.Data.(int)
		if score > l.game.best {
			l.game.best = score
		}
		if l.game.Debug {
			log.Printf("game over, score %d (best %d)", score, l.game.best)
		}
	case event.GameReset:
		if l.game.Debug {
			log.Println("round restarted")
		}
	}
}
