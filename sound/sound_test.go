package sound

import (
	"encoding/binary"
	"reflect"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/wvoliveira/pong-local/game"
)

func frames(pcm []byte) []int16 {
	out := make([]int16, 0, len(pcm)/2)
	for i := 0; i+1 < len(pcm); i += 2 {
		out = append(out, int16(binary.LittleEndian.Uint16(pcm[i:])))
	}
	return out
}

func TestBankClipLengths(t *testing.T) {
	bank, err := NewBank(44100, 0.5)
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}
	rate := beep.SampleRate(44100)

	tests := []struct {
		kind Kind
		want int
	}{
		{Hit, rate.N(60 * time.Millisecond)},
		{Wall, rate.N(40 * time.Millisecond)},
		{Goal, rate.N(120*time.Millisecond) + rate.N(200*time.Millisecond)},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			pcm := bank.PCM(tt.kind)
			// 2 canais x 2 bytes
			if got := len(pcm) / 4; got != tt.want {
				t.Errorf("frames = %d, want %d", got, tt.want)
			}
			if len(pcm)%4 != 0 {
				t.Errorf("PCM length %d is not whole stereo frames", len(pcm))
			}
		})
	}
}

func TestBankClipsAreAudible(t *testing.T) {
	bank, err := NewBank(44100, 1)
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}

	for _, kind := range []Kind{Hit, Wall, Goal} {
		if p := peak(bank.PCM(kind)); p < 1000 {
			t.Errorf("%s: peak %d, expected an audible clip", kind, p)
		}
	}
}

func TestBankMuted(t *testing.T) {
	bank, err := NewBank(44100, 0)
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}

	for i, v := range frames(bank.PCM(Hit)) {
		if v != 0 {
			t.Fatalf("sample %d = %d, want silence", i, v)
		}
	}
}

func peak(pcm []byte) int16 {
	var p int16
	for _, v := range frames(pcm) {
		if v < 0 {
			v = -v
		}
		if v > p {
			p = v
		}
	}
	return p
}

func TestBankVolumeScales(t *testing.T) {
	full, err := NewBank(44100, 1)
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}
	half, err := NewBank(44100, 0.5)
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}
	loud, err := NewBank(44100, 3)
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}

	pf, ph := float64(peak(full.PCM(Hit))), float64(peak(half.PCM(Hit)))
	if ratio := ph / pf; ratio < 0.45 || ratio > 0.55 {
		t.Errorf("half volume peak ratio = %.3f, want ~0.5", ratio)
	}
	if peak(loud.PCM(Hit)) != peak(full.PCM(Hit)) {
		t.Errorf("volume above 1 should be clamped to 1")
	}
}

func TestDecayEndsQuiet(t *testing.T) {
	rate := beep.SampleRate(8000)
	tone, err := generators.SineTone(rate, 440)
	if err != nil {
		t.Fatalf("SineTone: %v", err)
	}

	const total = 800
	pcm := frames(Render(decay(beep.Take(total, tone), total)))

	if len(pcm) != total*2 {
		t.Fatalf("samples = %d, want %d", len(pcm), total*2)
	}
	tail := pcm[len(pcm)-20:]
	for i, v := range tail {
		if v > 500 || v < -500 {
			t.Errorf("tail sample %d = %d, expected near silence", i, v)
		}
	}
}

func TestToInt16Clamps(t *testing.T) {
	if got := toInt16(2); got != 32767 {
		t.Errorf("toInt16(2) = %d, want 32767", got)
	}
	if got := toInt16(-2); got != -32767 {
		t.Errorf("toInt16(-2) = %d, want -32767", got)
	}
	if got := toInt16(0); got != 0 {
		t.Errorf("toInt16(0) = %d, want 0", got)
	}
}

func TestFor(t *testing.T) {
	tests := []struct {
		name string
		ev   game.Events
		want []Kind
	}{
		{"quiet tick", game.Events{}, nil},
		{"hit", game.Events{Hit: game.Left}, []Kind{Hit}},
		{"wall", game.Events{WallBounce: true}, []Kind{Wall}},
		{"hit and wall", game.Events{Hit: game.Right, WallBounce: true}, []Kind{Hit, Wall}},
		{"goal wins", game.Events{Hit: game.Left, WallBounce: true, Goal: game.Right}, []Kind{Goal}},
		{"restart is silent", game.Events{Restarted: true}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := For(tt.ev); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("For(%+v) = %v, want %v", tt.ev, got, tt.want)
			}
		})
	}
}
