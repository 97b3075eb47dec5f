package window

import (
	"image/color"

	"github.com/vovakirdan/roborun/internal/core"
)

// palette maps the shared color vocabulary to RGBA values.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {R: 255, G: 255, B: 255, A: 255},
	core.ColorRed:           {R: 200, G: 0, B: 0, A: 255},
	core.ColorGreen:         {R: 0, G: 180, B: 0, A: 255},
	core.ColorYellow:        {R: 220, G: 200, B: 0, A: 255},
	core.ColorBlue:          {R: 0, G: 90, B: 220, A: 255},
	core.ColorMagenta:       {R: 180, G: 0, B: 180, A: 255},
	core.ColorCyan:          {R: 100, G: 200, B: 255, A: 255},
	core.ColorWhite:         {R: 255, G: 255, B: 255, A: 255},
	core.ColorBrightRed:     {R: 255, G: 0, B: 0, A: 255},
	core.ColorBrightGreen:   {R: 0, G: 255, B: 0, A: 255},
	core.ColorBrightYellow:  {R: 255, G: 215, B: 0, A: 255},
	core.ColorBrightBlue:    {R: 0, G: 162, B: 255, A: 255},
	core.ColorBrightMagenta: {R: 255, G: 0, B: 255, A: 255},
	core.ColorBrightCyan:    {R: 0, G: 255, B: 255, A: 255},
	core.ColorBrightWhite:   {R: 255, G: 255, B: 255, A: 255},
	core.ColorOrange:        {R: 255, G: 165, B: 0, A: 255},
	core.ColorGray:          {R: 150, G: 150, B: 150, A: 255},
	core.ColorDarkGray:      {R: 40, G: 40, B: 40, A: 255},
	core.ColorLightGray:     {R: 200, G: 200, B: 200, A: 255},
}

// Background grid colors, one pair per checkerboard phase.
var (
	gridDark  = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	gridLight = color.RGBA{R: 150, G: 150, B: 150, A: 255}
)

// RGBA returns the display color for c. Unknown colors render white.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorWhite]
}

// withAlpha returns c with its alpha scaled by a in [0, 1], premultiplied.
func withAlpha(c color.RGBA, a float64) color.RGBA {
	a = core.ClampF(a, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
