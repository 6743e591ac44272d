package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/wvoliveira/pong-local/configs"
	"github.com/wvoliveira/pong-local/game"
)

const frame = time.Second / 60

type App struct {
	screen tcell.Screen
	match  *game.Match
	keys   keyLatch
	goals  int
}

func NewApp(cfg configs.Config) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()

	return &App{
		screen: screen,
		match:  game.NewMatch(cfg),
	}, nil
}

// Run bloqueia até o jogador sair. Só esta goroutine mexe na partida;
// a outra apenas repassa os eventos do tcell.
func (a *App) Run() {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go forward(a.screen.PollEvent, events, done)

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !a.keys.Handle(ev, time.Now()) {
					return
				}
			case *tcell.EventResize:
				a.screen.Sync()
			}

		case now := <-ticker.C:
			if ev := a.match.Update(a.keys.Input(now)); ev.Goal != game.NoSide {
				a.goals++
			}
			a.draw()
		}
	}
}

// forward repassa eventos de poll para events até poll devolver nil (tela
// finalizada) ou done fechar. Nunca fica preso num envio depois que Run sai.
func forward(poll func() tcell.Event, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (a *App) draw() {
	a.screen.Clear()
	w, h := a.screen.Size()
	drawSnapshot(a.screen, w, h, a.match.Snapshot())
	a.screen.Show()
}

func (a *App) Close() {
	a.screen.Fini()
}

func main() {
	cfg := configs.New()
	if err := cfg.Validate(); err != nil {
		slog.Error("error to load config", "error", err)
		os.Exit(1)
	}

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("error to start terminal", "error", err)
		os.Exit(1)
	}
	app.Run()
	app.Close()

	// Só depois do Fini: antes disso o stderr cai em cima da tela.
	s := app.match.Snapshot()
	slog.Info("match finished", "rounds", app.goals, "blue", s.LeftScore, "red", s.RightScore)
}
