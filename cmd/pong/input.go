package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/wvoliveira/pong-local/game"
)

// Keyboard liga as teclas à entrada da partida. Player 1 (azul) usa W/S e o
// player 2 (vermelho) as setas.
type Keyboard struct {
	LeftUp, LeftDown   ebiten.Key
	RightUp, RightDown ebiten.Key
	Restart            ebiten.Key
	Exit               ebiten.Key
}

func DefaultKeyboard() Keyboard {
	return Keyboard{
		LeftUp:    ebiten.KeyW,
		LeftDown:  ebiten.KeyS,
		RightUp:   ebiten.KeyArrowUp,
		RightDown: ebiten.KeyArrowDown,
		Restart:   ebiten.KeyR,
		Exit:      ebiten.KeyEscape,
	}
}

// Read lê o teclado uma vez para o tick atual.
func (k Keyboard) Read() game.Input {
	return game.Input{
		LeftUp:    ebiten.IsKeyPressed(k.LeftUp),
		LeftDown:  ebiten.IsKeyPressed(k.LeftDown),
		RightUp:   ebiten.IsKeyPressed(k.RightUp),
		RightDown: ebiten.IsKeyPressed(k.RightDown),
		Restart:   inpututil.IsKeyJustPressed(k.Restart),
	}
}

func (k Keyboard) Quit() bool {
	return inpututil.IsKeyJustPressed(k.Exit)
}
