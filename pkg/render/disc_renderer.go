// pkg/render/disc_renderer.go
package render

import (
	"fmt"
	"image/color"

	"go-knife-fight/internal/app"
	"go-knife-fight/internal/config"
	"go-knife-fight/internal/system"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// DiscRenderer draws a game snapshot: the rotating disc, its markers, the
// score and the game over banner.
type DiscRenderer struct {
	centerX, centerY float64
	blockSize        float64
	dotSize          float64
	colors           *DiscColors
	faces            faces
}

func NewDiscRenderer(centerX, centerY, blockSize, dotSize float64, colors *DiscColors) (*DiscRenderer, error) {
	f, err := loadFaces(config.ScoreFontSize, config.TitleFontSize, config.SubtitleFontSize)
	if err != nil {
		return nil, err
	}
	return &DiscRenderer{
		centerX:   centerX,
		centerY:   centerY,
		blockSize: blockSize,
		dotSize:   dotSize,
		colors:    colors,
		faces:     f,
	}, nil
}

func (r *DiscRenderer) Center() (float64, float64) {
	return r.centerX, r.centerY
}

func (r *DiscRenderer) BlockSize() float64 {
	return r.blockSize
}

// MarkerRadius is the distance from the disc center to marker centers.
func (r *DiscRenderer) MarkerRadius() float64 {
	return r.blockSize/2 - r.dotSize
}

func (r *DiscRenderer) Draw(screen *ebiten.Image, snap app.Snapshot) {
	screen.Fill(r.colors.BackgroundColor)

	discColor, dotColor := r.colors.DiscColor, r.colors.DotColor
	if snap.IsOver() {
		discColor, dotColor = DarkenColor(discColor), DarkenColor(dotColor)
	}

	cx, cy := float32(r.centerX), float32(r.centerY)
	vector.DrawFilledCircle(screen, cx, cy, float32(r.blockSize/2), discColor, true)

	// A notch so the spin is visible on an empty disc.
	nx, ny := system.PointOnCircle(snap.Angle, r.blockSize/2-r.dotSize/2)
	vector.StrokeLine(screen, cx, cy, cx+float32(nx), cy+float32(ny), r.colors.StrokeWidth, r.colors.NotchColor, true)

	radius := r.MarkerRadius()
	for _, angle := range snap.MarkerAngles() {
		x, y := system.PointOnCircle(angle, radius)
		vector.DrawFilledCircle(screen, cx+float32(x), cy+float32(y), float32(r.dotSize/2), dotColor, true)
	}

	r.drawCentered(screen, fmt.Sprintf("Score: %d", snap.Score), r.faces.score, config.ScoreOffsetY, r.colors.TextColor)
	if snap.Best > 0 {
		r.drawCentered(screen, fmt.Sprintf("Best: %d", snap.Best), r.faces.subtitle, config.ScoreOffsetY+28, DarkenColor(r.colors.TextColor))
	}

	if snap.IsOver() {
		r.DrawBanner(screen, "Game Over!", "Tap to restart", r.colors.GameOverColor)
	}
}

// DrawBanner prints a title with a subtitle under it at the disc center.
func (r *DiscRenderer) DrawBanner(screen *ebiten.Image, title, subtitle string, titleColor color.Color) {
	y := int(r.centerY)
	r.drawCentered(screen, title, r.faces.title, y, titleColor)
	r.drawCentered(screen, subtitle, r.faces.subtitle, y+10+config.SubtitleFontSize+4, r.colors.TextColor)
}

func (r *DiscRenderer) drawCentered(screen *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	x := int(r.centerX) - (bounds.Max.X-bounds.Min.X)/2
	text.Draw(screen, s, face, x, y, clr)
}

// DefaultColors builds the palette from config.
func DefaultColors() *DiscColors {
	return &DiscColors{
		BackgroundColor: config.BackgroundColor,
		DiscColor:       config.DiscColor,
		NotchColor:      config.DiscNotchColor,
		DotColor:        config.DotColor,
		TextColor:       config.TextLightColor,
		GameOverColor:   config.GameOverColor,
		StrokeWidth:     float32(config.StrokeWidth),
	}
}
