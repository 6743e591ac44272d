package main

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/wvoliveira/pong-local/game"
	"github.com/wvoliveira/pong-local/sound"
)

// Effects toca os sons da partida. Os players são criados uma vez e
// rebobinados a cada evento, assim o GC não coleta um som tocando.
type Effects struct {
	players map[sound.Kind]*audio.Player
}

func NewEffects(sampleRate int) (*Effects, error) {
	bank, err := sound.NewBank(sampleRate, 0.4)
	if err != nil {
		return nil, fmt.Errorf("build sound bank: %w", err)
	}

	ctx := audio.NewContext(bank.SampleRate())
	e := &Effects{players: make(map[sound.Kind]*audio.Player)}
	for _, k := range []sound.Kind{sound.Hit, sound.Wall, sound.Goal} {
		e.players[k] = ctx.NewPlayerFromBytes(bank.PCM(k))
	}
	return e, nil
}

func (e *Effects) Play(ev game.Events) {
	for _, k := range sound.For(ev) {
		p := e.players[k]
		if err := p.Rewind(); err != nil {
			slog.Warn("error to rewind sound", "sound", k, "error", err)
			continue
		}
		p.Play()
	}
}
