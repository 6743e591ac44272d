package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// scoreLabel desenha o placar de um jogador. face é compartilhada e nunca muda.
type scoreLabel struct {
	face   text.Face
	prefix string
	x, y   float64
}

func (l scoreLabel) Text(score int) string {
	return fmt.Sprintf("%s: %d", l.prefix, score)
}

func (l scoreLabel) Draw(screen *ebiten.Image, score int) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(l.x, l.y)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, l.Text(score), l.face, op)
}
