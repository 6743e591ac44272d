package game

import (
	"math"

	"github.com/wvoliveira/pong-local/geom"
)

type Ball struct {
	Entity
	velocity geom.Vec2
}

func NewBall(pos geom.Vec2, size float64, velocity geom.Vec2) *Ball {
	return &Ball{
		Entity:   newEntity(pos, size, size),
		velocity: velocity,
	}
}

func (b *Ball) Velocity() geom.Vec2 { return b.velocity }

func (b *Ball) Advance() {
	b.pos = b.pos.Add(b.velocity)
}

// BounceOffWalls inverte a velocidade vertical quando a bola toca o teto ou
// o chão. A posição não é corrigida: uma bola muito rápida pode atravessar
// a parede num único tick.
func (b *Ball) BounceOffWalls(fieldHeight float64) bool {
	if b.pos.Y <= 0 || b.pos.Y+b.height >= fieldHeight {
		b.velocity.Y = -b.velocity.Y
		return true
	}
	return false
}

// TryHit rebate a bola se ela estiver sobre p. Cada rebatida acelera um
// pouco na horizontal e dá efeito conforme a distância do centro da raquete.
// A velocidade não tem limite.
func (b *Ball) TryHit(p *Paddle, accel, spin float64) bool {
	if !b.Bounds().Intersects(p.Bounds()) {
		return false
	}

	b.velocity.X = -(b.velocity.X + math.Copysign(accel, b.velocity.X))

	// Fica em [-1, 1] quando o centro da bola está sobre a raquete; não é limitado.
	offset := (p.Center().Y - b.Center().Y) / p.Height()
	b.velocity.Y += spin * -offset
	return true
}

// IsPastLeftEdge e IsPastRightEdge indicam gol assim que qualquer parte da
// bola sai do campo.
func (b *Ball) IsPastLeftEdge() bool {
	return b.pos.X < 0
}

func (b *Ball) IsPastRightEdge(fieldWidth float64) bool {
	return b.pos.X+b.width > fieldWidth
}

// Reset centraliza a bola e saca para a direita.
func (b *Ball) Reset(speed, fieldWidth, fieldHeight float64) {
	b.pos = geom.V((fieldWidth-b.width)/2, (fieldHeight-b.height)/2)
	b.velocity = geom.V(speed, 0)
}
