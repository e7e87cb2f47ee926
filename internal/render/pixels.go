package render

import (
	"image"
	"image/color"
)

// Palette maps cell values to colours. Values past the end use the last entry.
type Palette []color.RGBA

// Binary is the two-colour palette for 0/1 sims.
func Binary(on, off color.Color) Palette {
	return Palette{rgba(off), rgba(on)}
}

// Ramp spreads n colours evenly from a to b.
func Ramp(a, b color.RGBA, n int) Palette {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return Palette{a}
	}
	p := make(Palette, n)
	lerp := func(x, y uint8, i int) uint8 {
		return uint8(int(x) + (int(y)-int(x))*i/(n-1))
	}
	for i := range p {
		p[i] = color.RGBA{lerp(a.R, b.R, i), lerp(a.G, b.G, i), lerp(a.B, b.B, i), lerp(a.A, b.A, i)}
	}
	return p
}

// PaletteFor picks the palette a registered sim is drawn with.
func PaletteFor(sim string) Palette {
	switch sim {
	case "briansbrain":
		return Palette{
			{0, 0, 0, 255},
			{255, 255, 255, 255},
			{40, 90, 200, 255},
		}
	case "erosion":
		// Shallow columns are bright, deep ones dark.
		return Ramp(color.RGBA{230, 200, 150, 255}, color.RGBA{30, 20, 10, 255}, 8)
	default:
		return Binary(color.White, color.Black)
	}
}

func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// FillRGBA converts cell values into RGBA pixels in buf. An empty palette
// clears the buffer to transparent black.
func FillRGBA(buf []byte, cells []uint8, palette Palette) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}
	last := len(palette) - 1
	for i, c := range cells {
		col := palette[min(int(c), last)]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Image renders a w x h row-major cell slice into a new image.
func Image(cells []uint8, w, h int, palette Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if len(cells) == w*h {
		FillRGBA(img.Pix, cells, palette)
	}
	return img
}
