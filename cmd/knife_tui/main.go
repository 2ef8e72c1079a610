// cmd/knife_tui/main.go
package main

import (
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"time"

	"go-knife-fight/internal/app"
	"go-knife-fight/internal/config"
	"go-knife-fight/internal/defs"
	"go-knife-fight/internal/event"
	"go-knife-fight/internal/system"

	"github.com/gdamore/tcell/v2"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS
	flashMs       = 400
	// Terminal cells are about twice as tall as they are wide.
	cellAspect = 2.0
)

type Terminal struct {
	screen        tcell.Screen
	width, height int
	game          *app.Game
	lastFlash     time.Time
	lastButtons   tcell.ButtonMask
}

// flash marks the moment of a hit so the rim can blink red.
type flash struct {
	t *Terminal
}

func (f *flash) OnEvent(e event.Event) {
	f.t.lastFlash = time.Now()
}

func NewTerminal(game *app.Game) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	t := &Terminal{screen: screen, game: game}
	t.width, t.height = screen.Size()
	game.Subscribe(event.GameOver, &flash{t: t})
	return t, nil
}

// radius returns the disc radius in columns that fits the terminal.
func (t *Terminal) radius() float64 {
	return math.Max(3, math.Min(float64(t.width)/2-2, (float64(t.height)/2-3)*cellAspect))
}

func (t *Terminal) put(cx, cy int, x, y float64, r rune, style tcell.Style) {
	col := cx + int(math.Round(x))
	row := cy + int(math.Round(y/cellAspect))
	if col >= 0 && col < t.width && row >= 0 && row < t.height {
		t.screen.SetContent(col, row, r, nil, style)
	}
}

func (t *Terminal) text(y int, s string, style tcell.Style) {
	x := t.width/2 - len([]rune(s))/2
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (t *Terminal) draw() {
	t.screen.Clear()
	snap := t.game.Snapshot()
	cx, cy := t.width/2, t.height/2
	radius := t.radius()

	rim := tcell.StyleDefault.Foreground(tcell.NewRGBColor(90, 90, 90))
	if snap.IsOver() || time.Since(t.lastFlash).Milliseconds() < flashMs {
		rim = tcell.StyleDefault.Foreground(tcell.ColorRed)
	}
	for a := 0.0; a < 360; a += 3 {
		x, y := system.PointOnCircle(a, radius)
		t.put(cx, cy, x, y, '·', rim)
	}

	// Notch: shows the spin.
	notch := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for f := 0.2; f < 0.9; f += 0.1 {
		x, y := system.PointOnCircle(snap.Angle, radius*f)
		t.put(cx, cy, x, y, '•', notch)
	}

	dot := tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 71, 87))
	for _, a := range snap.MarkerAngles() {
		x, y := system.PointOnCircle(a, radius-1)
		t.put(cx, cy, x, y, '●', dot)
	}
	t.put(cx, cy, 0, -(radius + 1.5*cellAspect), '▼', tcell.StyleDefault.Foreground(tcell.ColorSteelBlue))

	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	t.text(0, fmt.Sprintf("Score: %d   Best: %d   [%s]", snap.Score, snap.Best, snap.Variant), white)
	if snap.IsOver() {
		t.text(cy-1, "Game Over!", tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
		t.text(cy+1, "Tap to restart", white)
	}
	t.text(t.height-1, "space/enter/click: throw   q/esc: quit", tcell.StyleDefault.Foreground(tcell.ColorGray))
	t.screen.Show()
}

// handleInput returns false when the player quits.
func (t *Terminal) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return false
		case ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' '):
			t.game.HandleTap()
		}
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		if buttons&tcell.Button1 != 0 && t.lastButtons&tcell.Button1 == 0 {
			t.game.HandleTap()
		}
		t.lastButtons = buttons
	case *tcell.EventResize:
		t.width, t.height = t.screen.Size()
		t.screen.Sync()
	}
	return true
}

// run serializes frames and input on one goroutine.
func (t *Terminal) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !t.handleInput(ev) {
				return
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			if dt > config.MaxDeltaTime {
				dt = config.MaxDeltaTime
			}
			last = now
			t.game.Update(dt)
			t.draw()
		}
	}
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

	game := app.NewGame(preset)
	game.Debug = settings.Debug

	// Game logging would scribble over the terminal UI.
	if !settings.Debug {
		log.SetOutput(io.Discard)
	}

	term, err := NewTerminal(game)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer term.screen.Fini()

	term.run()
}
