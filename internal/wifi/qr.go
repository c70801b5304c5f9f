package wifi

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/skip2/go-qrcode"
)

const (
	// ImageSize is the rendered side length in pixels.
	ImageSize = 200

	// quietModules is the width of the quiet zone around the symbol,
	// measured in modules.
	quietModules = 2
)

var (
	// darkSlate matches the portal page styling.
	darkSlate = color.RGBA{R: 0x33, G: 0x41, B: 0x55, A: 0xff}
	lightFill = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// EncodePNG renders the payload as a scannable 200x200 PNG with a two-module
// quiet zone, dark slate modules on white. go-qrcode's built-in border is a
// fixed four modules, so the module grid is rasterized here instead.
func EncodePNG(payload string) ([]byte, error) {
	qr, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	qr.DisableBorder = true

	grid := qr.Bitmap()
	modules := len(grid)
	total := modules + 2*quietModules

	scale := ImageSize / total
	if scale < 1 {
		scale = 1
	}
	side := ImageSize
	if total*scale > side {
		side = total * scale
	}
	// Center the symbol so leftover pixels pad the quiet zone evenly.
	offset := (side - modules*scale) / 2

	img := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Draw(img, img.Bounds(), image.NewUniform(lightFill), image.Point{}, draw.Src)

	for y, row := range grid {
		for x, dark := range row {
			if !dark {
				continue
			}
			r := image.Rect(
				offset+x*scale,
				offset+y*scale,
				offset+(x+1)*scale,
				offset+(y+1)*scale,
			)
			draw.Draw(img, r, image.NewUniform(darkSlate), image.Point{}, draw.Src)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
