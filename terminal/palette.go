// Copyright 2022~2024 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package terminal

// Palette is the terminal- or user-defined mapping for the 16 basic color
// slots, supplied by the caller and shared read-only. The conversion
// functions never own or mutate it.
type Palette interface {
	// Resolve returns the concrete RGB value for a basic slot.
	Resolve(slot AnsiColor) RGB

	// FindMatch returns the basic slot nearest to the given RGB value.
	FindMatch(c RGB) AnsiColor

	// IndexOverride reports a caller-supplied value for a low palette
	// index, for terminals that redefine entries (OSC 4 and friends).
	IndexOverride(index uint8) (RGB, bool)
}

// xterm's default values for the 16 basic slots.
var defaultAnsiColors = [16]RGB{
	{0x00, 0x00, 0x00}, // black
	{0xcd, 0x00, 0x00}, // maroon
	{0x00, 0xcd, 0x00}, // green
	{0xcd, 0xcd, 0x00}, // olive
	{0x00, 0x00, 0xee}, // navy
	{0xcd, 0x00, 0xcd}, // purple
	{0x00, 0xcd, 0xcd}, // teal
	{0xe5, 0xe5, 0xe5}, // silver
	{0x7f, 0x7f, 0x7f}, // gray
	{0xff, 0x00, 0x00}, // red
	{0x00, 0xff, 0x00}, // lime
	{0xff, 0xff, 0x00}, // yellow
	{0x5c, 0x5c, 0xff}, // blue
	{0xff, 0x00, 0xff}, // fuchsia
	{0x00, 0xff, 0xff}, // aqua
	{0xff, 0xff, 0xff}, // white
}

type defaultPalette struct{}

// DefaultPalette resolves the 16 basic slots to xterm's default colors and
// carries no index overrides.
var DefaultPalette Palette = defaultPalette{}

func (defaultPalette) Resolve(slot AnsiColor) RGB {
	return defaultAnsiColors[slot&0x0f]
}

func (defaultPalette) FindMatch(c RGB) AnsiColor {
	return nearestSlot(defaultAnsiColors, c)
}

func (defaultPalette) IndexOverride(index uint8) (RGB, bool) {
	return RGB{}, false
}

// CustomPalette carries caller-defined slot colors plus optional overrides
// for indexed lookups, the way a terminal redefines palette entries from
// user configuration or OSC 4.
type CustomPalette struct {
	Slots     [16]RGB
	Overrides map[uint8]RGB
}

// NewCustomPalette starts from the default slot colors.
func NewCustomPalette() *CustomPalette {
	return &CustomPalette{Slots: defaultAnsiColors}
}

func (p *CustomPalette) Resolve(slot AnsiColor) RGB {
	return p.Slots[slot&0x0f]
}

func (p *CustomPalette) FindMatch(c RGB) AnsiColor {
	return nearestSlot(p.Slots, c)
}

func (p *CustomPalette) IndexOverride(index uint8) (RGB, bool) {
	c, ok := p.Overrides[index]
	return c, ok
}

// SetOverride redefines one palette index.
func (p *CustomPalette) SetOverride(index uint8, c RGB) {
	if p.Overrides == nil {
		p.Overrides = make(map[uint8]RGB)
	}
	p.Overrides[index] = c
}

// nearestSlot scans the 16 slots for the minimum distance. The scan only
// replaces on strictly smaller distance, so ties favor the lowest slot.
func nearestSlot(slots [16]RGB, c RGB) AnsiColor {
	best := 0
	bestDist := Distance(slots[0], c)
	for i := 1; i < len(slots); i++ {
		if d := Distance(slots[i], c); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return AnsiColor(best)
}
