package configs

import (
	"errors"
	"fmt"
)

// Constantes do jogo. São fixas: o jogo não tem regras configuráveis,
// mas elas viajam num valor explícito em vez de variáveis globais.
type Config struct {
	Title string

	FieldWidth  float64
	FieldHeight float64

	PaddleWidth  float64
	PaddleHeight float64
	PaddleInset  float64
	PaddleSpeed  float64

	BallSize  float64
	BallSpeed float64
	BallAccel float64
	Spin      float64
}

func New() Config {
	return Config{
		Title: "Pong",

		FieldWidth:  640,
		FieldHeight: 480,

		PaddleWidth:  16,
		PaddleHeight: 60,
		PaddleInset:  16,
		PaddleSpeed:  8.0,

		BallSize:  16,
		BallSpeed: 5.0,
		BallAccel: 0.05,
		Spin:      4.0,
	}
}

var ErrInvalidConfig = errors.New("invalid config")

// Validate confere se tudo cabe no campo. Roda uma vez na inicialização.
func (c Config) Validate() error {
	switch {
	case c.FieldWidth <= 0 || c.FieldHeight <= 0:
		return fmt.Errorf("%w: field %vx%v", ErrInvalidConfig, c.FieldWidth, c.FieldHeight)
	case c.PaddleWidth <= 0 || c.PaddleHeight <= 0:
		return fmt.Errorf("%w: paddle %vx%v", ErrInvalidConfig, c.PaddleWidth, c.PaddleHeight)
	case c.BallSize <= 0:
		return fmt.Errorf("%w: ball size %v", ErrInvalidConfig, c.BallSize)
	case c.PaddleHeight > c.FieldHeight:
		return fmt.Errorf("%w: paddle taller than field", ErrInvalidConfig)
	case c.BallSize >= c.FieldHeight || c.BallSize >= c.FieldWidth:
		return fmt.Errorf("%w: ball does not fit the field", ErrInvalidConfig)
	case c.PaddleInset < 0 || 2*(c.PaddleInset+c.PaddleWidth) >= c.FieldWidth:
		return fmt.Errorf("%w: paddles do not fit horizontally", ErrInvalidConfig)
	case c.PaddleSpeed < 0 || c.BallSpeed < 0 || c.BallAccel < 0:
		return fmt.Errorf("%w: negative speed", ErrInvalidConfig)
	case c.Spin < 0:
		return fmt.Errorf("%w: negative spin %v", ErrInvalidConfig, c.Spin)
	}
	return nil
}

// Posição inicial das raquetes (x da esquerda, x da direita, y comum).
func (c Config) LeftPaddleX() float64  { return c.PaddleInset }
func (c Config) RightPaddleX() float64 { return c.FieldWidth - c.PaddleWidth - c.PaddleInset }
func (c Config) PaddleStartY() float64 { return (c.FieldHeight - c.PaddleHeight) / 2 }
