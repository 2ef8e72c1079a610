// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator is the fixed mark above the disc where new markers land.
// It pulses briefly after every tap.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image, stateColor color.Color) {
	elapsed := time.Since(i.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)

	// Downward triangle pointing at the disc rim.
	fillTriangle(screen, i.X-r, i.Y-r, i.X+r, i.Y-r, i.X, i.Y+r, stateColor)
	vector.StrokeCircle(screen, i.X, i.Y-r*1.6, r*0.4, 1, color.White, true)
}

// HandleClick restarts the pulse.
func (i *StateIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}
