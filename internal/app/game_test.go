package app

import (
	"math"
	"sync"
	"testing"

	"go-knife-fight/internal/component"
	"go-knife-fight/internal/defs"
	"go-knife-fight/internal/event"
	"go-knife-fight/internal/utils"
)

func preset(t *testing.T, id string) defs.Preset {
	t.Helper()
	p, ok := defs.BuiltinPresets()[id]
	if !ok {
		t.Fatalf("no builtin preset %q", id)
	}
	return p
}

// advanceTo turns the disc forward until it shows angle (degrees).
func advanceTo(g *Game, angle float64) {
	delta := utils.NormalizeDegrees(angle - g.Clock.Angle())
	g.Update(delta / 360 / g.Preset.RotationSpeed)
}

func TestFirstTapAtStart(t *testing.T) {
	for _, id := range []string{"classic", "corrected"} {
		g := NewGame(preset(t, id))
		g.Update(0)
		if res := g.HandleTap(); res != TapPlaced {
			t.Fatalf("%s: first tap = %v, want placed", id, res)
		}
		snap := g.Snapshot()
		if snap.Score != 10 || len(snap.Placements) != 1 {
			t.Fatalf("%s: score %d with %d placements", id, snap.Score, len(snap.Placements))
		}
		if snap.Placements[0].Angle != 0 {
			t.Fatalf("%s: placement angle %v, want 0", id, snap.Placements[0].Angle)
		}
	}
}

func TestClassicCloseTapEndsGame(t *testing.T) {
	g := NewGame(preset(t, "classic"))
	advanceTo(g, 10)
	g.HandleTap()
	advanceTo(g, 15)

	if res := g.HandleTap(); res != TapCollided {
		t.Fatalf("tap 5 degrees away = %v, want collided", res)
	}
	snap := g.Snapshot()
	if !snap.IsOver() {
		t.Fatalf("expected game over")
	}
	if snap.Score != 10 || len(snap.Placements) != 1 {
		t.Fatalf("colliding marker should not be recorded: score %d, %d placements", snap.Score, len(snap.Placements))
	}
}

func TestClassicFarTapScores(t *testing.T) {
	g := NewGame(preset(t, "classic"))
	advanceTo(g, 10)
	g.HandleTap()
	advanceTo(g, 200)

	if res := g.HandleTap(); res != TapPlaced {
		t.Fatalf("tap 190 degrees away = %v, want placed", res)
	}
	if snap := g.Snapshot(); snap.Score != 20 || snap.IsOver() {
		t.Fatalf("unexpected state: score %d over %v", snap.Score, snap.IsOver())
	}
}

func TestCorrectedHalfTurnApartScores(t *testing.T) {
	p := preset(t, "corrected")
	p.BlockSize, p.DotSize = 200, 10
	g := NewGame(p)

	g.HandleTap()
	g.Update(g.Clock.Period() / 2)
	if res := g.HandleTap(); res != TapPlaced {
		t.Fatalf("tap half a turn later = %v, want placed", res)
	}
	angles := g.Snapshot().MarkerAngles()
	if math.Abs(angles[0]-180) > 1e-9 || math.Abs(angles[1]) > 1e-9 {
		t.Fatalf("marker screen angles = %v, want [180 0]", angles)
	}
}

func TestCorrectedSameInstantEndsGame(t *testing.T) {
	g := NewGame(preset(t, "corrected"))
	g.Update(0.37)
	g.HandleTap()
	if res := g.HandleTap(); res != TapCollided {
		t.Fatalf("second tap at the same instant = %v, want collided", res)
	}
	if !g.Snapshot().IsOver() {
		t.Fatalf("expected game over")
	}
}

func TestCorrectedFullTurnEndsGame(t *testing.T) {
	g := NewGame(preset(t, "corrected"))
	g.Update(0.2)
	g.HandleTap()
	g.Update(g.Clock.Period())
	if res := g.HandleTap(); res != TapCollided {
		t.Fatalf("tap one full turn later = %v, want collided", res)
	}
}

func TestCorrectedMarkerLandsUnderIndicator(t *testing.T) {
	g := NewGame(preset(t, "corrected"))
	g.Update(0.83)
	g.HandleTap()
	angles := g.Snapshot().MarkerAngles()
	if utils.AngularSeparation(angles[0], 0) > 1e-9 {
		t.Fatalf("fresh marker drawn at %v, want 0", angles[0])
	}
}

func TestTapAfterGameOverResets(t *testing.T) {
	g := NewGame(preset(t, "corrected"))
	initial := g.Snapshot()

	g.HandleTap()
	g.HandleTap()
	if !g.Snapshot().IsOver() {
		t.Fatalf("expected game over")
	}
	if res := g.HandleTap(); res != TapRestarted {
		t.Fatalf("tap while over = %v, want restarted", res)
	}

	snap := g.Snapshot()
	if snap.Phase != initial.Phase || snap.Score != initial.Score || len(snap.Placements) != 0 {
		t.Fatalf("reset state %+v differs from initial %+v", snap, initial)
	}
	if snap.Best != 10 {
		t.Fatalf("best score = %d, want 10", snap.Best)
	}
}

func TestDiscKeepsTurningAfterGameOver(t *testing.T) {
	g := NewGame(preset(t, "corrected"))
	g.HandleTap()
	g.HandleTap()
	before := g.Snapshot().Angle
	g.Update(0.1)
	if after := g.Snapshot().Angle; after == before {
		t.Fatalf("disc stopped after game over at %v", after)
	}
}

func TestScoreInvariantUnderRandomPlay(t *testing.T) {
	for _, id := range []string{"classic", "corrected", "slow"} {
		g := NewGame(preset(t, id))
		rng := utils.NewPRNGService(int64(len(id)))
		restarts := 0
		for i := 0; i < 5000; i++ {
			g.Update(rng.Range(0, 0.06))
			if rng.Intn(4) == 0 {
				if g.HandleTap() == TapRestarted {
					restarts++
				}
			}
			snap := g.Snapshot()
			if snap.Angle < 0 || snap.Angle >= 360 {
				t.Fatalf("%s: angle %v out of range", id, snap.Angle)
			}
			if !snap.IsOver() && snap.Score != 10*len(snap.Placements) {
				t.Fatalf("%s: score %d with %d placements", id, snap.Score, len(snap.Placements))
			}
			if snap.Best < 0 || (snap.IsOver() && snap.Best < snap.Score) {
				t.Fatalf("%s: best %d below score %d", id, snap.Best, snap.Score)
			}
		}
		if restarts == 0 {
			t.Errorf("%s: random play never finished a round", id)
		}
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := NewGame(preset(t, "classic"))
	g.HandleTap()
	snap := g.Snapshot()
	snap.Placements[0].Angle = 99
	if g.Snapshot().Placements[0].Angle != 0 {
		t.Fatalf("snapshot shares storage with the game")
	}
}

func TestConcurrentTapsKeepInvariant(t *testing.T) {
	g := NewGame(preset(t, "corrected"))
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := utils.NewPRNGService(seed)
			for i := 0; i < 500; i++ {
				if rng.Intn(2) == 0 {
					g.Update(rng.Range(0, 0.05))
				} else {
					g.HandleTap()
				}
				snap := g.Snapshot()
				if !snap.IsOver() && snap.Score != 10*len(snap.Placements) {
					t.Errorf("score %d with %d placements", snap.Score, len(snap.Placements))
					return
				}
			}
		}(int64(w + 1))
	}
	wg.Wait()
}

type eventLog struct {
	types []event.EventType
}

func (l *eventLog) OnEvent(e event.Event) {
	l.types = append(l.types, e.Type)
}

func TestGamePublishesTransitions(t *testing.T) {
	g := NewGame(preset(t, "corrected"))
	log := &eventLog{}
	for _, et := range []event.EventType{event.DotPlaced, event.GameOver, event.GameReset} {
		g.Subscribe(et, log)
	}
	g.HandleTap()
	g.HandleTap()
	g.HandleTap()

	want := []event.EventType{event.DotPlaced, event.GameOver, event.GameReset}
	if len(log.types) != len(want) {
		t.Fatalf("events = %v, want %v", log.types, want)
	}
	for i := range want {
		if log.types[i] != want[i] {
			t.Fatalf("events = %v, want %v", log.types, want)
		}
	}
}

func TestRulesMatchVariant(t *testing.T) {
	classic := NewGame(preset(t, "classic"))
	if classic.Placer.Place(30).Angle != 30 {
		t.Errorf("classic should record the live angle")
	}
	corrected := NewGame(preset(t, "corrected"))
	if corrected.Placer.Place(30).Angle != -30 {
		t.Errorf("corrected should record the negated angle")
	}
	if classic.Snapshot().Variant != defs.VariantClassic {
		t.Errorf("snapshot variant wrong")
	}
}

func TestNewGamePanicsOnInvalidPreset(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	NewGame(defs.Preset{ID: "broken"})
}

func TestTapResultString(t *testing.T) {
	if TapPlaced.String() != "placed" || TapCollided.String() != "collided" || TapRestarted.String() != "restarted" {
		t.Fatalf("unexpected names")
	}
	if component.Playing.String() == "" {
		t.Fatalf("phase name empty")
	}
}
