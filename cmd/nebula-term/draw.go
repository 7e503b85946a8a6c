package main

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/nebula/field"
	"github.com/lixenwraith/nebula/interaction"
	"github.com/lixenwraith/nebula/parameter"
)

// Cell glyphs by particle size class. One cell is one "pixel"; size only
// picks the glyph weight.
const (
	glyphFine  = '·'
	glyphGrain = '•'
	glyphStar  = '✦'
)

// draw paints one frame onto the terminal: particles in set order so image
// particles land on top of ambient ones, then the pointer marker.
func draw(screen tcell.Screen, fld *field.Field, tracker *interaction.Tracker) {
	screen.Clear()
	w, h := screen.Size()

	fld.Each(func(x, y, size float64, color string) {
		col, row := int(x), int(y)
		if col < 0 || col >= w || row < 0 || row >= h {
			return
		}
		glyph := glyphFine
		switch {
		case color == parameter.ColorStar:
			glyph = glyphStar
		case size >= parameter.SquareThreshold:
			glyph = glyphGrain
		}
		style := tcell.StyleDefault.Foreground(hexColor(color))
		screen.SetContent(col, row, glyph, nil, style)
	})

	if point, active := tracker.Current(); active {
		col, row := int(point.X), int(point.Y)
		if col >= 0 && col < w && row >= 0 && row < h {
			style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
			screen.SetContent(col, row, '+', nil, style)
		}
	}

	screen.Show()
}

// hexColor converts "#RRGGBB" to a tcell color, defaulting to white.
func hexColor(s string) tcell.Color {
	if len(s) != 7 || s[0] != '#' {
		return tcell.ColorWhite
	}
	v, err := strconv.ParseInt(s[1:], 16, 32)
	if err != nil {
		return tcell.ColorWhite
	}
	return tcell.NewHexColor(int32(v))
}
