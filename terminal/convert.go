// Copyright 2022~2024 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package terminal

// xtermColors is the reference 256-entry palette. Entries 0-15 are
// placeholders: the basic slots are terminal-defined and resolve through a
// Palette, never through this table. 16-231 form a 6x6x6 RGB cube in
// row-major R-G-B order, 232-255 a 24-step grayscale ramp.
//
// Built once, immutable afterwards, safe for concurrent reads.
var xtermColors = buildXtermColors()

// cubeLevels are the channel values of the 6x6x6 cube.
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

func buildXtermColors() [256]RGB {
	var table [256]RGB
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				table[16+36*r+6*g+b] = RGB{cubeLevels[r], cubeLevels[g], cubeLevels[b]}
			}
		}
	}
	for i := 0; i < 24; i++ {
		v := uint8(8 + 10*i)
		table[232+i] = RGB{v, v, v}
	}
	return table
}

// Distance is a square-root-free redmean-style color difference. The
// constants 512, 767 and 256 with their 2x/4x factors are load-bearing:
// every nearest-match search in this package depends on this exact
// weighting, bit for bit.
func Distance(c1, c2 RGB) int {
	rSum := int(c1.R) + int(c2.R)
	dr := int(c1.R) - int(c2.R)
	dg := int(c1.G) - int(c2.G)
	db := int(c1.B) - int(c2.B)
	return (2*512+rSum)*dr*dr + 4*256*dg*dg + (2*767-rSum)*db*db
}

// ColorToRGB resolves any color form to a concrete 24-bit value. Lossless
// for RGB input, palette-defined for the rest.
func ColorToRGB(c Color, p Palette) RGB {
	switch {
	case c.IsAnsi():
		return p.Resolve(c.Ansi())
	case c.IsXterm():
		return XtermToRGB(c.Xterm(), p)
	default:
		return c.RGB()
	}
}

// ColorToXterm downsamples any color form to a 256-palette index. Lossy
// for RGB input.
func ColorToXterm(c Color) uint8 {
	switch {
	case c.IsAnsi():
		// the 16 basic slots occupy indices 0-15
		return uint8(c.Ansi())
	case c.IsXterm():
		return c.Xterm()
	default:
		return RGBToXterm(c.RGB())
	}
}

// ColorToAnsi downsamples any color form to one of the 16 basic slots.
func ColorToAnsi(c Color, p Palette) AnsiColor {
	switch {
	case c.IsAnsi():
		return c.Ansi()
	case c.IsXterm():
		return XtermToAnsi(c.Xterm(), p)
	default:
		return RGBToAnsi(c.RGB(), p)
	}
}

// XtermToRGB resolves a 256-palette index. The low 16 indices defer to the
// palette override, falling back to the generic table entry; the cube and
// ramp read straight from the reference table.
func XtermToRGB(index uint8, p Palette) RGB {
	if index < 16 {
		if c, ok := p.IndexOverride(index); ok {
			return c
		}
		return p.Resolve(AnsiColor(index))
	}
	return xtermColors[index]
}

// XtermToAnsi downsamples a 256-palette index to a basic slot.
func XtermToAnsi(index uint8, p Palette) AnsiColor {
	if index < 16 {
		return AnsiColor(index)
	}
	return p.FindMatch(xtermColors[index])
}

// RGBToAnsi finds the nearest basic slot for a 24-bit color.
func RGBToAnsi(c RGB, p Palette) AnsiColor {
	return p.FindMatch(c)
}

// RGBToXterm finds the nearest cube or ramp entry for a 24-bit color. The
// 16 placeholder slots are excluded: they are terminal-defined and cannot
// be matched against. The scan replaces only on strictly smaller distance,
// so ties favor the lowest index.
func RGBToXterm(c RGB) uint8 {
	best := 16
	bestDist := Distance(xtermColors[16], c)
	for i := 17; i < 256; i++ {
		if d := Distance(xtermColors[i], c); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return uint8(best)
}
