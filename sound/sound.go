// Package sound sintetiza os efeitos do jogo com beep e entrega PCM pronto
// para o player de áudio do shell.
package sound

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/wvoliveira/pong-local/game"
)

type Kind int

const (
	Hit Kind = iota
	Wall
	Goal
)

func (k Kind) String() string {
	switch k {
	case Hit:
		return "hit"
	case Wall:
		return "wall"
	case Goal:
		return "goal"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

type note struct {
	freq float64
	dur  time.Duration
}

var sheet = map[Kind][]note{
	Hit:  {{880, 60 * time.Millisecond}},
	Wall: {{440, 40 * time.Millisecond}},
	Goal: {{330, 120 * time.Millisecond}, {220, 200 * time.Millisecond}},
}

// Bank guarda cada efeito já renderizado em PCM estéreo de 16 bits (little-endian).
type Bank struct {
	rate  beep.SampleRate
	clips map[Kind][]byte
}

func NewBank(sampleRate int, volume float64) (*Bank, error) {
	b := &Bank{
		rate:  beep.SampleRate(sampleRate),
		clips: make(map[Kind][]byte, len(sheet)),
	}
	for kind, notes := range sheet {
		s, err := b.streamer(notes, volume)
		if err != nil {
			return nil, fmt.Errorf("build %s sound: %w", kind, err)
		}
		b.clips[kind] = Render(s)
	}
	return b, nil
}

func (b *Bank) SampleRate() int { return int(b.rate) }

// PCM devolve o clipe de k. O slice é compartilhado, não modifique.
func (b *Bank) PCM(k Kind) []byte {
	return b.clips[k]
}

func (b *Bank) streamer(notes []note, volume float64) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(b.rate, n.freq)
		if err != nil {
			return nil, err
		}
		samples := b.rate.N(n.dur)
		parts = append(parts, decay(beep.Take(samples, tone), samples))
	}
	// Gain multiplica cada amostra por 1+Gain: volume 1 é o tom puro, 0 é silêncio.
	return &effects.Gain{Streamer: beep.Seq(parts...), Gain: clampVolume(volume) - 1}, nil
}

func clampVolume(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// decay abaixa o volume linearmente até zero ao longo de total amostras,
// para o clipe não terminar com estalo.
func decay(s beep.Streamer, total int) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			g := 1 - float64(pos)/float64(total)
			if g < 0 {
				g = 0
			}
			samples[i][0] *= g
			samples[i][1] *= g
			pos++
		}
		return n, ok
	})
}

// Render consome um streamer finito e devolve PCM estéreo de 16 bits.
func Render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[1])))
		}
		if !ok {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(v * math.MaxInt16)
}

// For lista os sons de um tick da partida. Gol abafa todo o resto.
func For(ev game.Events) []Kind {
	if ev.Goal != game.NoSide {
		return []Kind{Goal}
	}
	var kinds []Kind
	if ev.Hit != game.NoSide {
		kinds = append(kinds, Hit)
	}
	if ev.WallBounce {
		kinds = append(kinds, Wall)
	}
	return kinds
}
