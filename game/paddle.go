package game

import "github.com/wvoliveira/pong-local/geom"

// Paddle é a raquete de um jogador. Só anda na vertical e guarda o placar.
type Paddle struct {
	Entity
	score       int
	fieldHeight float64
}

// NewPaddle coloca a raquete na coluna x, centralizada na vertical num
// campo de altura fieldHeight.
func NewPaddle(x, width, height, fieldHeight float64) *Paddle {
	p := &Paddle{
		Entity:      newEntity(geom.V(x, 0), width, height),
		fieldHeight: fieldHeight,
	}
	p.ResetPosition()
	return p
}

func (p *Paddle) MoveUp(speed float64) {
	p.pos.Y -= speed
	if p.pos.Y < 0 {
		p.pos.Y = 0
	}
}

func (p *Paddle) MoveDown(speed float64) {
	p.pos.Y += speed
	if maxY := p.fieldHeight - p.height; p.pos.Y > maxY {
		p.pos.Y = maxY
	}
}

func (p *Paddle) ScorePoint() {
	p.score++
}

func (p *Paddle) Score() int {
	return p.score
}

// ResetPosition centraliza a raquete na vertical. X e placar não mudam.
func (p *Paddle) ResetPosition() {
	p.pos.Y = (p.fieldHeight - p.height) / 2
}
