// Copyright 2022~2024 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package terminal

import (
	"fmt"
	"os"
	"strings"

	"github.com/ericwq/terminfo"
	_ "github.com/ericwq/terminfo/base"
	"github.com/ericwq/terminfo/dynamic"
	"github.com/ericwq/vtparse/util"
	"golang.org/x/term"
)

// ColorTier is the color capability of the output terminal, the target the
// lossy conversions downsample for.
type ColorTier int

const (
	// TierAnsi covers terminals with the 16 basic slots (or fewer).
	TierAnsi ColorTier = iota
	// Tier256 covers xterm-256color class terminals.
	Tier256
	// TierTrueColor covers terminals accepting 24-bit SGR.
	TierTrueColor
)

func (t ColorTier) String() string {
	switch t {
	case TierTrueColor:
		return "truecolor"
	case Tier256:
		return "256color"
	default:
		return "ansi"
	}
}

// LookupTier determines the color tier for a TERM name from the terminfo
// database: the compiled-in entries first, then a dynamic load via infocmp
// for terminals the base set doesn't carry.
func LookupTier(name string) (ColorTier, error) {
	ti, err := terminfo.LookupTerminfo(name)
	if err != nil {
		ti, _, err = dynamic.LoadTerminfo(name)
		if err != nil {
			util.Logger.Warn("dynamic terminfo load failed", "term", name, "error", err)
			return TierAnsi, fmt.Errorf("lookup %s: %w", name, err)
		}
		terminfo.AddTerminfo(ti)
	}
	switch {
	case ti.Colors >= 1<<24:
		return TierTrueColor, nil
	case ti.Colors >= 256:
		return Tier256, nil
	}
	return TierAnsi, nil
}

// DetectTier inspects the process environment for the tier of the terminal
// on fd. COLORTERM wins over terminfo, matching how terminals advertise
// 24-bit support; a non-terminal fd gets the conservative TierAnsi.
func DetectTier(fd int) ColorTier {
	if !term.IsTerminal(fd) {
		return TierAnsi
	}
	switch strings.ToLower(os.Getenv("COLORTERM")) {
	case "truecolor", "24bit":
		return TierTrueColor
	}
	if name := os.Getenv("TERM"); name != "" {
		if tier, err := LookupTier(name); err == nil {
			return tier
		}
	}
	return TierAnsi
}

// Downsample normalizes a color for a terminal of the given tier, applying
// the lossy conversion the tier calls for. The result is always a form the
// target terminal can express.
func Downsample(c Color, tier ColorTier, p Palette) Color {
	switch tier {
	case TierTrueColor:
		rgb := ColorToRGB(c, p)
		return NewRGBColor(rgb.R, rgb.G, rgb.B)
	case Tier256:
		return NewXtermColor(ColorToXterm(c))
	default:
		return NewAnsiColor(ColorToAnsi(c, p))
	}
}
