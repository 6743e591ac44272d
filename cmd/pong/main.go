package main

import (
	"errors"
	"image/color"
	"log/slog"
	"os"

	"golang.org/x/image/font/basicfont"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/wvoliveira/pong-local/configs"
	"github.com/wvoliveira/pong-local/game"
	"github.com/wvoliveira/pong-local/geom"
)

var (
	background = color.RGBA{0x64, 0x95, 0xed, 0xff}
	blue       = color.RGBA{0x1e, 0x3a, 0x8a, 0xff}
	red        = color.RGBA{0xb9, 0x1c, 0x1c, 0xff}
)

type Game struct {
	cfg    configs.Config
	match  *game.Match
	keys   Keyboard
	sfx    *Effects
	scores [2]scoreLabel
}

func NewGame(cfg configs.Config, sfx *Effects) *Game {
	// Uma fonte só, compartilhada pelos dois placares.
	face := text.NewGoXFace(basicfont.Face7x13)

	return &Game{
		cfg:   cfg,
		match: game.NewMatch(cfg),
		keys:  DefaultKeyboard(),
		sfx:   sfx,
		scores: [2]scoreLabel{
			{face: face, prefix: "Blue", x: 10, y: 10},
			{face: face, prefix: "Red", x: cfg.FieldWidth - 100, y: 10},
		},
	}
}

func (g *Game) Update() error {
	if g.keys.Quit() {
		return ebiten.Termination
	}

	ev := g.match.Update(g.keys.Read())
	g.sfx.Play(ev)

	if ev.Goal != game.NoSide {
		s := g.match.Snapshot()
		slog.Info("goal", "scorer", ev.Goal, "blue", s.LeftScore, "red", s.RightScore)
	}
	if ev.Restarted {
		slog.Info("round restarted")
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	s := g.match.Snapshot()
	g.scores[0].Draw(screen, s.LeftScore)
	g.scores[1].Draw(screen, s.RightScore)

	// Com a rodada encerrada só o placar aparece.
	if s.State == game.RoundOver {
		return
	}
	fillRect(screen, s.LeftPaddle, blue)
	fillRect(screen, s.RightPaddle, red)
	fillRect(screen, s.Ball, color.White)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.FieldWidth), int(g.cfg.FieldHeight)
}

func fillRect(dst *ebiten.Image, r geom.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func main() {
	cfg := configs.New()
	if err := cfg.Validate(); err != nil {
		slog.Error("error to load config", "error", err)
		os.Exit(1)
	}

	sfx, err := NewEffects(44100)
	if err != nil {
		slog.Error("error to init audio", "error", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(int(cfg.FieldWidth), int(cfg.FieldHeight))
	ebiten.SetWindowTitle(cfg.Title)

	slog.Info("starting", "title", cfg.Title, "width", cfg.FieldWidth, "height", cfg.FieldHeight)
	if err := ebiten.RunGame(NewGame(cfg, sfx)); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("error to run game", "error", err)
		os.Exit(1)
	}
}
