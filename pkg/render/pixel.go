package render

import (
	"image/color"

	"lumen/internal/util"
	"lumen/pkg/vmath"
)

// PackColour converts a float colour to the 8-bit RGBA pixel format,
// clamping components to [0, 1].
func PackColour(c vmath.Vec4) color.RGBA {
	return color.RGBA{
		R: uint8(util.Clamp(c.X, 0, 1)*255 + 0.5),
		G: uint8(util.Clamp(c.Y, 0, 1)*255 + 0.5),
		B: uint8(util.Clamp(c.Z, 0, 1)*255 + 0.5),
		A: uint8(util.Clamp(c.W, 0, 1)*255 + 0.5),
	}
}
