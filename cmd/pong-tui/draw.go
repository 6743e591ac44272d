package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/wvoliveira/pong-local/game"
	"github.com/wvoliveira/pong-local/geom"
)

var (
	fieldStyle = tcell.StyleDefault.Background(tcell.NewRGBColor(100, 149, 237)).Foreground(tcell.ColorWhite)
	blueStyle  = tcell.StyleDefault.Background(tcell.NewRGBColor(30, 58, 138))
	redStyle   = tcell.StyleDefault.Background(tcell.NewRGBColor(185, 28, 28))
	ballStyle  = tcell.StyleDefault.Background(tcell.ColorWhite)
)

// cells converte um retângulo do campo nas células que ele ocupa numa grade
// cols x rows. Toda entidade visível ocupa pelo menos uma célula.
func cells(r geom.Rect, fieldW, fieldH float64, cols, rows int) (x0, y0, x1, y1 int) {
	sx := float64(cols) / fieldW
	sy := float64(rows) / fieldH

	x0 = int(math.Floor(r.X * sx))
	y0 = int(math.Floor(r.Y * sy))
	x1 = int(math.Ceil(r.Right() * sx))
	y1 = int(math.Ceil(r.Bottom() * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return max(x0, 0), max(y0, 0), min(x1, cols), min(y1, rows)
}

func drawSnapshot(screen tcell.Screen, cols, rows int, s game.Snapshot) {
	fill(screen, 0, 0, cols, rows, fieldStyle)

	drawText(screen, 1, 0, fieldStyle, fmt.Sprintf("Blue: %d", s.LeftScore))
	red := fmt.Sprintf("Red: %d", s.RightScore)
	drawText(screen, cols-len(red)-1, 0, fieldStyle, red)

	if s.State == game.RoundOver {
		msg := "R to serve, Esc to quit"
		drawText(screen, (cols-len(msg))/2, rows/2, fieldStyle, msg)
		return
	}

	for _, e := range []struct {
		r     geom.Rect
		style tcell.Style
	}{
		{s.LeftPaddle, blueStyle},
		{s.RightPaddle, redStyle},
		{s.Ball, ballStyle},
	} {
		x0, y0, x1, y1 := cells(e.r, s.FieldWidth, s.FieldHeight, cols, rows)
		fill(screen, x0, y0, x1, y1, e.style)
	}
}

func fill(screen tcell.Screen, x0, y0, x1, y1 int, style tcell.Style) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	for i, r := range s {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
