package brickgame

import (
	"fmt"
	"math/rand"
)

type PieceType int

const (
	PieceI PieceType = iota
	PieceO
	PieceJ
	PieceL
	PieceZ
	PieceS
	PieceT
)

// PieceCount is the number of shapes in the catalog.
const PieceCount = 7

func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	case PieceZ:
		return "Z"
	case PieceS:
		return "S"
	case PieceT:
		return "T"
	}
	return fmt.Sprintf("PieceType(%d)", int(t))
}

// Shape is a 4x4 occupancy grid indexed as Shape[row][col].
type Shape [4][4]bool

type Piece struct {
	Type  PieceType
	Shape Shape
}

var catalog = [PieceCount]Shape{
	PieceI: {{false, true, false, false}, {false, true, false, false}, {false, true, false, false}, {false, true, false, false}},
	PieceO: {{true, true, false, false}, {true, true, false, false}},
	PieceJ: {{true, false, false, false}, {true, true, true, false}},
	PieceL: {{false, false, true, false}, {true, true, true, false}},
	PieceZ: {{true, true, false, false}, {false, true, true, false}},
	PieceS: {{false, true, true, false}, {true, true, false, false}},
	PieceT: {{false, true, false, false}, {true, true, true, false}},
}

// NewPiece returns the spawn geometry for t. It panics when t is not in the catalog.
func NewPiece(t PieceType) Piece {
	if t < 0 || int(t) >= PieceCount {
		panic(fmt.Errorf("piece type %d out of range [0,%d)", int(t), PieceCount))
	}
	return Piece{Type: t, Shape: catalog[t]}
}

// rotationSize is the side of the window a piece rotates in. The bar turns
// inside the whole box, everything else inside the top-left 3x3.
func (p Piece) rotationSize() int {
	if p.Type == PieceI {
		return 4
	}
	return 3
}

// Rotated returns the piece turned by 90 degrees inside its rotation window.
// The square is returned as is. Cells outside the window are discarded.
func (p Piece) Rotated() Piece {
	if p.Type == PieceO {
		return p
	}
	size := p.rotationSize()
	rotated := Piece{Type: p.Type}
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if p.Shape[r][c] {
				rotated.Shape[c][size-1-r] = true
			}
		}
	}
	return rotated
}

// Cells returns the (col, row) offsets of the occupied cells.
func (s Shape) Cells() [][2]int {
	cells := make([][2]int, 0, 4)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if s[r][c] {
				cells = append(cells, [2]int{c, r})
			}
		}
	}
	return cells
}

type PieceSource interface {
	Next() Piece
}

type RandomSource struct {
	randomizer *rand.Rand
}

func NewRandomSource(seed int64) *RandomSource {
	return &RandomSource{randomizer: rand.New(rand.NewSource(seed))}
}

func (r *RandomSource) Next() Piece {
	return NewPiece(PieceType(r.randomizer.Intn(PieceCount)))
}

// QueueSource hands out queued pieces first and defers to its fallback once
// the queue is drained.
type QueueSource struct {
	queue    []Piece
	fallback PieceSource
}

func NewQueueSource(fallback PieceSource) *QueueSource {
	return &QueueSource{queue: make([]Piece, 0), fallback: fallback}
}

func (q *QueueSource) Next() Piece {
	if len(q.queue) == 0 {
		if q.fallback == nil {
			return NewPiece(PieceO)
		}
		return q.fallback.Next()
	}
	p := q.queue[0]
	q.queue = q.queue[1:]
	return p
}

func (q *QueueSource) Push(types ...PieceType) {
	for _, t := range types {
		q.queue = append(q.queue, NewPiece(t))
	}
}
