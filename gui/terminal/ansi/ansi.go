// This file is part of SuperChocChip.
//
// SuperChocChip is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// SuperChocChip is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with SuperChocChip.  If not, see <https://www.gnu.org/licenses/>.

// Package ansi contains the escape sequences used to colour and position
// output on an ANSI compatible terminal.
package ansi

import (
	"fmt"
	"strings"
)

var colours = map[string]int{
	"BLACK":   0,
	"RED":     1,
	"GREEN":   2,
	"YELLOW":  3,
	"BLUE":    4,
	"MAGENTA": 5,
	"CYAN":    6,
	"WHITE":   7,
	"NORMAL":  9,
}

var attributes = map[string]int{
	"BOLD":      1,
	"UNDERLINE": 4,
	"INVERSE":   7,
	"STRIKE":    8,
}

const (
	targetPen         = 3
	targetPaper       = 4
	targetBrightPen   = 9
	targetBrightPaper = 10
)

// Pens is the set of bright pens, indexed by lower case colour name.
var Pens map[string]string

// DimPens is the set of dim pens, indexed by lower case colour name.
var DimPens map[string]string

// NormalPen resets the terminal to the default pen, paper and attributes.
var NormalPen string

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)

	NormalPen, _ = ColorBuild("", "", "", false, false)

	for _, c := range []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"} {
		Pens[c], _ = ColorBuild(c, "normal", "", true, false)
		DimPens[c], _ = ColorBuild(c, "normal", "", false, false)
	}
}

// ColorBuild creates the ANSI sequence to create the pen, paper and
// attribute combination. Any of the three strings can be empty.
func ColorBuild(pen, paper, attribute string, brightPen, brightPaper bool) (string, error) {
	var parts []string

	if pen != "" {
		c, ok := colours[strings.ToUpper(pen)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI pen (%s)", pen)
		}
		target := targetPen
		if brightPen {
			target = targetBrightPen
		}
		parts = append(parts, fmt.Sprintf("%d%d", target, c))
	}

	if paper != "" {
		c, ok := colours[strings.ToUpper(paper)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI paper (%s)", paper)
		}
		target := targetPaper
		if brightPaper {
			target = targetBrightPaper
		}
		parts = append(parts, fmt.Sprintf("%d%d", target, c))
	}

	if attribute != "" && strings.ToUpper(attribute) != "NORMAL" {
		a, ok := attributes[strings.ToUpper(attribute)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI attribute (%s)", attribute)
		}
		parts = append(parts, fmt.Sprintf("%d", a))
	}

	return fmt.Sprintf("\033[%sm", strings.Join(parts, ";")), nil
}

// TrueColour returns the 24-bit colour sequence for the pen and paper. The
// colours are packed as 0xRRGGBB.
func TrueColour(pen, paper uint32) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%d;48;2;%d;%d;%dm",
		(pen>>16)&0xff, (pen>>8)&0xff, pen&0xff,
		(paper>>16)&0xff, (paper>>8)&0xff, paper&0xff)
}

// ClearLine clears the current line.
const ClearLine = "\033[2K"

// ClearScreen clears the entire screen and moves the cursor to the top left.
const ClearScreen = "\033[2J\033[H"

// CursorHome moves the cursor to the top left of the screen.
const CursorHome = "\033[H"

// HideCursor and ShowCursor change the visibility of the terminal cursor.
const (
	HideCursor = "\033[?25l"
	ShowCursor = "\033[?25h"
)

// CursorPosition moves the cursor to the row and column. Both are one based.
func CursorPosition(row, col int) string {
	return fmt.Sprintf("\033[%d;%dH", row, col)
}

// CursorMove moves the cursor n places horizontally. Negative values move
// the cursor to the left.
func CursorMove(n int) string {
	if n < 0 {
		return fmt.Sprintf("\033[%dD", -n)
	} else if n > 0 {
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}

// BlinkingBlock and DefaultShape change the shape of the terminal cursor.
const (
	BlinkingBlock = "\033[1 q"
	DefaultShape  = "\033[0 q"
)
