// Package game contém a simulação do Pong: raquetes, bola e a partida.
// Não faz I/O; quem chama Update uma vez por frame é o shell (ebiten ou terminal).
package game

import "github.com/wvoliveira/pong-local/geom"

// Entity é um retângulo de tamanho fixo que pode ser movido.
type Entity struct {
	pos    geom.Vec2
	width  float64
	height float64
}

func newEntity(pos geom.Vec2, width, height float64) Entity {
	return Entity{pos: pos, width: width, height: height}
}

func (e Entity) Position() geom.Vec2 { return e.pos }
func (e Entity) Width() float64      { return e.width }
func (e Entity) Height() float64     { return e.height }

func (e Entity) Bounds() geom.Rect {
	return geom.R(e.pos, e.width, e.height)
}

func (e Entity) Center() geom.Vec2 {
	return e.pos.Add(geom.V(e.width/2, e.height/2))
}
