package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/wvoliveira/pong-local/game"
)

// O terminal só manda eventos de tecla apertada, nunca de tecla solta.
// Cada tecla de movimento conta como segurada por holdFor depois do último
// evento; o auto-repeat do terminal renova o prazo enquanto o dedo está nela.
const holdFor = 150 * time.Millisecond

type action int

const (
	leftUp action = iota
	leftDown
	rightUp
	rightDown
	actionCount
)

type keyLatch struct {
	until   [actionCount]time.Time
	restart bool
}

// Handle registra uma tecla. Devolve false quando o jogador quer sair.
func (l *keyLatch) Handle(ev *tcell.EventKey, now time.Time) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		l.until[rightUp] = now.Add(holdFor)
	case tcell.KeyDown:
		l.until[rightDown] = now.Add(holdFor)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			l.until[leftUp] = now.Add(holdFor)
		case 's', 'S':
			l.until[leftDown] = now.Add(holdFor)
		case 'r', 'R':
			l.restart = true
		case 'q', 'Q':
			return false
		}
	}
	return true
}

// Input monta a entrada de um tick e consome o Restart.
func (l *keyLatch) Input(now time.Time) game.Input {
	in := game.Input{
		LeftUp:    now.Before(l.until[leftUp]),
		LeftDown:  now.Before(l.until[leftDown]),
		RightUp:   now.Before(l.until[rightUp]),
		RightDown: now.Before(l.until[rightDown]),
		Restart:   l.restart,
	}
	l.restart = false
	return in
}
