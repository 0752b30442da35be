// Copyright 2022~2024 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package terminal

import "fmt"

// RGB is a 24-bit color, one byte per channel.
type RGB struct {
	R, G, B uint8
}

// Hex returns the packed R<<16 | G<<8 | B value.
func (c RGB) Hex() int32 {
	return int32(c.R)<<16 | int32(c.G)<<8 | int32(c.B)
}

// AnsiColor is one of the 16 basic color slots. The names follow ECMA-48
// order with the W3C color names xterm uses for them.
type AnsiColor uint8

const (
	ColorBlack AnsiColor = iota
	ColorMaroon
	ColorGreen
	ColorOlive
	ColorNavy
	ColorPurple
	ColorTeal
	ColorSilver
	ColorGray
	ColorRed
	ColorLime
	ColorYellow
	ColorBlue
	ColorFuchsia
	ColorAqua
	ColorWhite
)

var ansiColorNames = [16]string{
	"black", "maroon", "green", "olive",
	"navy", "purple", "teal", "silver",
	"gray", "red", "lime", "yellow",
	"blue", "fuchsia", "aqua", "white",
}

func (a AnsiColor) String() string {
	if a < 16 {
		return ansiColorNames[a]
	}
	return fmt.Sprintf("ansi-%d", uint8(a))
}

type colorKind uint8

const (
	kindAnsi colorKind = iota
	kindXterm
	kindRGB
)

// Color is one of the three forms a terminal color takes: a basic 16-slot
// color, an xterm 256-palette index, or a 24-bit RGB value. The set is
// closed; conversions switch on the kind exhaustively. Values are immutable
// and safe to copy.
type Color struct {
	kind  colorKind
	index uint8
	rgb   RGB
}

// NewAnsiColor wraps one of the 16 basic slots.
func NewAnsiColor(slot AnsiColor) Color {
	return Color{kind: kindAnsi, index: uint8(slot & 0x0f)}
}

// NewXtermColor wraps an xterm 256-palette index.
func NewXtermColor(index uint8) Color {
	return Color{kind: kindXterm, index: index}
}

// NewRGBColor wraps a 24-bit color.
func NewRGBColor(r, g, b uint8) Color {
	return Color{kind: kindRGB, rgb: RGB{r, g, b}}
}

// IsAnsi reports whether the color is a basic 16-slot color.
func (c Color) IsAnsi() bool { return c.kind == kindAnsi }

// IsXterm reports whether the color is a 256-palette index.
func (c Color) IsXterm() bool { return c.kind == kindXterm }

// IsRGB reports whether the color is a 24-bit value.
func (c Color) IsRGB() bool { return c.kind == kindRGB }

// Ansi returns the basic slot; only meaningful when IsAnsi.
func (c Color) Ansi() AnsiColor { return AnsiColor(c.index) }

// Xterm returns the palette index; only meaningful when IsXterm.
func (c Color) Xterm() uint8 { return c.index }

// RGB returns the channel values; only meaningful when IsRGB.
func (c Color) RGB() RGB { return c.rgb }

func (c Color) String() string {
	switch c.kind {
	case kindAnsi:
		return c.Ansi().String()
	case kindXterm:
		return fmt.Sprintf("colour-%d", c.index)
	default:
		// RGB specification as per XParseColor
		return fmt.Sprintf("rgb:%02x/%02x/%02x", c.rgb.R, c.rgb.G, c.rgb.B)
	}
}
