// Copyright 2022~2024 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package terminal

import "github.com/ericwq/vtparse/util"

// SGR extended-color introducers.
const (
	sgrForeground = 38
	sgrBackground = 48
)

func channel(v uint16) uint8 {
	return uint8(util.Min(int(v), 255))
}

// ParseSGRColor decodes the extended color forms of SGR attributes 38 and
// 48 from dispatched parameter groups, the shape parser.Params.All()
// returns. Both the colon sub-parameter form (38:5:n, 38:2:r:g:b) and the
// legacy semicolon form (38;5;n, 38;2;r;g;b) are accepted; groups must
// start at the introducer. It returns the color, the number of groups
// consumed, and whether a color was recognized. Unrecognized modes consume
// the introducer group so the caller keeps scanning the remaining
// attributes.
func ParseSGRColor(groups [][]uint16) (Color, int, bool) {
	if len(groups) == 0 || len(groups[0]) == 0 {
		return Color{}, 0, false
	}
	head := groups[0]
	if head[0] != sgrForeground && head[0] != sgrBackground {
		return Color{}, 0, false
	}

	// colon form: the mode and channels are sub-parameters of one group
	if len(head) >= 2 {
		switch head[1] {
		case 5:
			if len(head) >= 3 {
				return NewXtermColor(channel(head[2])), 1, true
			}
		case 2:
			if len(head) >= 5 {
				return NewRGBColor(channel(head[2]), channel(head[3]), channel(head[4])), 1, true
			}
		}
		return Color{}, 1, false
	}

	// semicolon form: the mode and channels arrive as separate parameters
	if len(groups) >= 2 && len(groups[1]) > 0 {
		switch groups[1][0] {
		case 5:
			if len(groups) >= 3 && len(groups[2]) > 0 {
				return NewXtermColor(channel(groups[2][0])), 3, true
			}
		case 2:
			if len(groups) >= 5 {
				return NewRGBColor(channel(groups[2][0]), channel(groups[3][0]), channel(groups[4][0])), 5, true
			}
		}
	}
	return Color{}, 1, false
}
