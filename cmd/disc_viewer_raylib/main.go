package main

import (
	"fmt"
	"image/color"
	"log"

	"go-knife-fight/internal/app"
	"go-knife-fight/internal/config"
	"go-knife-fight/internal/defs"
	"go-knife-fight/internal/event"
	"go-knife-fight/internal/system"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// discAngle follows the clock through AngleChanged instead of polling it.
type discAngle struct {
	value float64
}

func (d *discAngle) OnEvent(e event.Event) {
	d.value = e.Data.(float64)
}

// colorToRL преобразует стандартный color.Color в rl.Color
func colorToRL(c color.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}

func drawCentered(s string, y, size int32, c rl.Color) {
	w := rl.MeasureText(s, size)
	rl.DrawText(s, int32(config.ScreenWidth)/2-w/2, y, size, c)
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
	angle := &discAngle{}
	game.Subscribe(event.AngleChanged, angle)

	rl.InitWindow(int32(config.ScreenWidth), int32(config.ScreenHeight), "Knife Fight | Click or Space to throw")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	center := rl.NewVector2(float32(config.ScreenWidth)/2, float32(config.ScreenHeight)/2)
	markerRadius := preset.MarkerRadius()

	for !rl.WindowShouldClose() {
		// --- Update ---
		dt := float64(rl.GetFrameTime())
		if dt > config.MaxDeltaTime {
			dt = config.MaxDeltaTime
		}
		game.Update(dt)
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) || rl.IsKeyPressed(rl.KeySpace) {
			game.HandleTap()
		}
		snap := game.Snapshot()

		// --- Draw ---
		rl.BeginDrawing()
		rl.ClearBackground(colorToRL(config.BackgroundColor))

		discColor, dotColor := colorToRL(config.DiscColor), colorToRL(config.DotColor)
		if snap.IsOver() {
			discColor, dotColor = rl.ColorBrightness(discColor, -0.5), rl.ColorBrightness(dotColor, -0.5)
		}
		rl.DrawCircleV(center, float32(preset.BlockSize/2), discColor)

		nx, ny := system.PointOnCircle(angle.value, preset.BlockSize/2-preset.DotSize/2)
		rl.DrawLineEx(center, rl.NewVector2(center.X+float32(nx), center.Y+float32(ny)), float32(config.StrokeWidth), colorToRL(config.DiscNotchColor))

		for _, a := range snap.MarkerAngles() {
			x, y := system.PointOnCircle(a, markerRadius)
			rl.DrawCircleV(rl.NewVector2(center.X+float32(x), center.Y+float32(y)), float32(preset.DotSize/2), dotColor)
		}

		top := center.Y - float32(preset.BlockSize/2) - float32(config.IndicatorGap)
		r := float32(config.IndicatorRadius)
		rl.DrawTriangle(
			rl.NewVector2(center.X-r, top-r),
			rl.NewVector2(center.X, top+r),
			rl.NewVector2(center.X+r, top-r),
			colorToRL(config.PlayingColor),
		)

		text := colorToRL(config.TextLightColor)
		drawCentered(fmt.Sprintf("Score: %d", snap.Score), config.ScoreOffsetY, config.ScoreFontSize, text)
		if snap.Best > 0 {
			drawCentered(fmt.Sprintf("Best: %d", snap.Best), config.ScoreOffsetY+28, config.SubtitleFontSize, text)
		}
		if snap.IsOver() {
			drawCentered("Game Over!", int32(center.Y)-config.TitleFontSize/2, config.TitleFontSize, colorToRL(config.GameOverColor))
			drawCentered("Tap to restart", int32(center.Y)+config.TitleFontSize/2+10, config.SubtitleFontSize, text)
		}
		rl.EndDrawing()
	}
}
