// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 480
	ScreenHeight = 800
	MaxDeltaTime = 0.06

	// BlockSize is the disc diameter: half of the shorter screen side.
	BlockSize = float64(min(ScreenWidth, ScreenHeight)) * 0.5
	DotSize   = 10.0

	RotationSpeed      = 0.5  // rotations per second
	AngleThreshold     = 20.0 // degrees, angular collision check only
	PointsPerPlacement = 10

	ScoreOffsetY     = 50
	IndicatorGap     = 14.0 // distance between the disc rim and the top indicator
	IndicatorRadius  = 6.0
	PauseButtonX     = ScreenWidth - 30
	PauseButtonY     = 30
	PauseButtonSize  = 12.0
	ClickCooldown    = 300 // ms
	ScoreFontSize    = 24
	TitleFontSize    = 48
	SubtitleFontSize = 18

	// Menu attract mode taps at a random interval inside this window (seconds).
	AutoTapMinDelay = 0.4
	AutoTapMaxDelay = 1.6
)

var (
	BackgroundColor  = color.RGBA{26, 26, 26, 255}
	DiscColor        = color.RGBA{51, 51, 51, 255}
	DiscNotchColor   = color.RGBA{90, 90, 90, 255}
	DotColor         = color.RGBA{255, 71, 87, 255}
	TextLightColor   = color.RGBA{255, 255, 255, 255}
	GameOverColor    = color.RGBA{255, 71, 87, 255}
	OverlayColor     = color.RGBA{0, 0, 0, 128}
	PlayingColor     = color.RGBA{70, 130, 180, 220}
	GameOverDotColor = color.RGBA{220, 60, 60, 220}
	PauseColor       = color.RGBA{70, 130, 180, 220}
	PlayColor        = color.RGBA{50, 205, 50, 255}
	StrokeWidth      = 2.0
)
