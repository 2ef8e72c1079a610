package render

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// newFace parses an embedded TTF and opens a face at the given size.
func newFace(ttf []byte, size float64) (font.Face, error) {
	tt, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}

type faces struct {
	score, title, subtitle font.Face
}

func loadFaces(scoreSize, titleSize, subtitleSize float64) (faces, error) {
	var f faces
	var err error
	if f.score, err = newFace(goregular.TTF, scoreSize); err != nil {
		return faces{}, err
	}
	if f.title, err = newFace(gobold.TTF, titleSize); err != nil {
		return faces{}, err
	}
	if f.subtitle, err = newFace(goregular.TTF, subtitleSize); err != nil {
		return faces{}, err
	}
	return f, nil
}
