package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/wvoliveira/pong-local/configs"
	"github.com/wvoliveira/pong-local/game"
	"github.com/wvoliveira/pong-local/geom"
)

func TestCells(t *testing.T) {
	tests := []struct {
		name           string
		r              geom.Rect
		x0, y0, x1, y1 int
	}{
		{"left paddle", geom.Rect{X: 16, Y: 210, W: 16, H: 60}, 2, 10, 4, 14},
		{"ball", geom.Rect{X: 312, Y: 232, W: 16, H: 16}, 39, 11, 41, 13},
		{"clipped left", geom.Rect{X: -8, Y: 0, W: 16, H: 16}, 0, 0, 1, 1},
		{"clipped right", geom.Rect{X: 632, Y: 470, W: 16, H: 16}, 79, 23, 80, 24},
		{"tiny", geom.Rect{X: 100, Y: 100, W: 0, H: 0}, 12, 5, 13, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x0, y0, x1, y1 := cells(tt.r, 640, 480, 80, 24)
			if x0 != tt.x0 || y0 != tt.y0 || x1 != tt.x1 || y1 != tt.y1 {
				t.Errorf("cells = (%d,%d)-(%d,%d), want (%d,%d)-(%d,%d)",
					x0, y0, x1, y1, tt.x0, tt.y0, tt.x1, tt.y1)
			}
		})
	}
}

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	s.SetSize(80, 24)
	t.Cleanup(s.Fini)
	return s
}

func TestDrawSnapshotScores(t *testing.T) {
	s := newSimScreen(t)
	m := game.NewMatch(configs.New())

	drawSnapshot(s, 80, 24, m.Snapshot())

	got := ""
	for x := 1; x < 8; x++ {
		r, _, _, _ := s.GetContent(x, 0)
		got += string(r)
	}
	if got != "Blue: 0" {
		t.Errorf("score row = %q, want %q", got, "Blue: 0")
	}

	_, _, style, _ := s.GetContent(40, 12)
	if style != ballStyle {
		t.Errorf("ball cell style = %v, want ball style", style)
	}
}
