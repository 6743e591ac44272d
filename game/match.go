package game

import (
	"github.com/wvoliveira/pong-local/configs"
	"github.com/wvoliveira/pong-local/geom"
)

type State int

const (
	Playing State = iota
	RoundOver
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case RoundOver:
		return "round over"
	}
	return "unknown"
}

type Side int

const (
	NoSide Side = iota
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// Input é o que o shell leu do teclado neste tick. Os movimentos valem
// enquanto a tecla está segurada; Restart só no frame em que foi apertada.
type Input struct {
	LeftUp    bool
	LeftDown  bool
	RightUp   bool
	RightDown bool
	Restart   bool
}

// Events diz o que aconteceu numa chamada de Update.
type Events struct {
	Hit        Side // raquete que rebateu
	WallBounce bool
	Goal       Side // quem fez o ponto
	Restarted  bool
}

// Snapshot é uma cópia do estado pronta para desenhar.
type Snapshot struct {
	FieldWidth  float64
	FieldHeight float64

	LeftPaddle  geom.Rect
	RightPaddle geom.Rect
	Ball        geom.Rect

	LeftScore  int
	RightScore int
	State      State
}

// Match é dona das raquetes e da bola. Só uma goroutine chama Update,
// uma vez por frame.
type Match struct {
	cfg   configs.Config
	left  *Paddle
	right *Paddle
	ball  *Ball
	state State
}

// NewMatch monta a partida na posição inicial. cfg já deve estar validada.
func NewMatch(cfg configs.Config) *Match {
	ball := NewBall(geom.Vec2{}, cfg.BallSize, geom.Vec2{})
	ball.Reset(cfg.BallSpeed, cfg.FieldWidth, cfg.FieldHeight)

	return &Match{
		cfg:   cfg,
		left:  NewPaddle(cfg.LeftPaddleX(), cfg.PaddleWidth, cfg.PaddleHeight, cfg.FieldHeight),
		right: NewPaddle(cfg.RightPaddleX(), cfg.PaddleWidth, cfg.PaddleHeight, cfg.FieldHeight),
		ball:  ball,
		state: Playing,
	}
}

func (m *Match) State() State { return m.state }

// Update avança a partida em um tick.
func (m *Match) Update(in Input) Events {
	var ev Events

	if m.state == RoundOver {
		if in.Restart {
			m.Restart()
			ev.Restarted = true
		}
		return ev
	}

	// 1. Raquetes
	if in.LeftUp {
		m.left.MoveUp(m.cfg.PaddleSpeed)
	}
	if in.LeftDown {
		m.left.MoveDown(m.cfg.PaddleSpeed)
	}
	if in.RightUp {
		m.right.MoveUp(m.cfg.PaddleSpeed)
	}
	if in.RightDown {
		m.right.MoveDown(m.cfg.PaddleSpeed)
	}

	// 2. Bola e teto/chão
	m.ball.Advance()
	ev.WallBounce = m.ball.BounceOffWalls(m.cfg.FieldHeight)

	// 3. Colisão com as raquetes, no máximo uma por tick
	switch {
	case m.ball.TryHit(m.left, m.cfg.BallAccel, m.cfg.Spin):
		ev.Hit = Left
	case m.ball.TryHit(m.right, m.cfg.BallAccel, m.cfg.Spin):
		ev.Hit = Right
	}

	// 4. Ponto
	switch {
	case m.ball.IsPastLeftEdge():
		m.right.ScorePoint()
		m.state = RoundOver
		ev.Goal = Right
	case m.ball.IsPastRightEdge(m.cfg.FieldWidth):
		m.left.ScorePoint()
		m.state = RoundOver
		ev.Goal = Left
	}

	return ev
}

// Restart começa uma nova rodada depois de um gol, mantendo o placar.
// Com a rodada em andamento não faz nada.
func (m *Match) Restart() {
	if m.state != RoundOver {
		return
	}
	m.ball.Reset(m.cfg.BallSpeed, m.cfg.FieldWidth, m.cfg.FieldHeight)
	m.left.ResetPosition()
	m.right.ResetPosition()
	m.state = Playing
}

func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		FieldWidth:  m.cfg.FieldWidth,
		FieldHeight: m.cfg.FieldHeight,
		LeftPaddle:  m.left.Bounds(),
		RightPaddle: m.right.Bounds(),
		Ball:        m.ball.Bounds(),
		LeftScore:   m.left.Score(),
		RightScore:  m.right.Score(),
		State:       m.state,
	}
}
