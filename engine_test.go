package brickgame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMovesInOpenField(t *testing.T) {
	g := newTestGame(t, nil)
	place(g, PieceT, 4, 5)

	assert.True(t, g.MoveLeft())
	assert.Equal(t, 3, g.Snapshot().X)
	assert.True(t, g.MoveRight())
	assert.True(t, g.MoveRight())
	assert.Equal(t, 5, g.Snapshot().X)
	assert.True(t, g.MoveDown())
	assert.Equal(t, 6, g.Snapshot().Y)
}

func TestMovesBlockedByWalls(t *testing.T) {
	g := newTestGame(t, nil)

	place(g, PieceI, -1, 3)
	assert.True(t, g.CheckMove(ActionLeft))
	assert.False(t, g.MoveLeft())
	assert.Equal(t, -1, g.Snapshot().X)

	place(g, PieceI, 8, 3)
	assert.True(t, g.CheckMove(ActionRight))
	assert.False(t, g.MoveRight())
	assert.Equal(t, 8, g.Snapshot().X)

	place(g, PieceI, 8, 17)
	assert.True(t, g.CheckMove(ActionDown))
	assert.False(t, g.MoveDown())
	assert.Equal(t, 17, g.Snapshot().Y)
}

func TestSidewaysMovesProbeCurrentRows(t *testing.T) {
	g := newTestGame(t, nil)
	place(g, PieceO, 4, 5)

	// the square covers rows 4 and 5
	g.stats.Field.Fill(3, 6)
	assert.False(t, g.CheckMove(ActionLeft))
	g.stats.Field.Fill(3, 5)
	assert.True(t, g.CheckMove(ActionLeft))

	g.stats.Field.Fill(6, 4)
	assert.True(t, g.CheckMove(ActionRight))
}

func TestCheckMoveNonMovement(t *testing.T) {
	g := newTestGame(t, nil)
	place(g, PieceT, 4, 5)

	for _, a := range []Action{ActionNone, ActionStart, ActionPause, ActionTerminate, ActionUp, ActionRotate} {
		assert.True(t, g.CheckMove(a), "action %s", a)
	}
}

func TestRotateApplied(t *testing.T) {
	g := newTestGame(t, nil)
	place(g, PieceJ, 4, 5)

	assert.True(t, g.Rotate())
	assert.True(t, g.Snapshot().Current.Shape[0][2])
}

func TestRotateFourTimesInOpenField(t *testing.T) {
	for i := 0; i < PieceCount; i++ {
		g := newTestGame(t, nil)
		place(g, PieceType(i), 3, 6)
		before := g.Snapshot().Current

		for n := 0; n < 4; n++ {
			applied := g.Rotate()
			assert.Equal(t, PieceType(i) != PieceO, applied)
		}
		assert.Equal(t, before, g.Snapshot().Current)
	}
}

func TestRotateRejected(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		fill [][2]int
	}{
		{name: "left wall", x: -1, y: 3},
		{name: "right wall", x: 8, y: 3},
		{name: "right wall low", x: 8, y: 16},
		{name: "locked cell", x: 4, y: 9, fill: [][2]int{{5, 10}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, nil)
			for _, cell := range tt.fill {
				g.stats.Field.Fill(cell[0], cell[1])
			}
			place(g, PieceI, tt.x, tt.y)
			before := g.Snapshot().Current

			assert.True(t, g.CheckRotated(before.Rotated().Shape))
			assert.False(t, g.Rotate())
			assert.Equal(t, before, g.Snapshot().Current)

			state := g.Apply(StateMoving, ActionRotate)
			assert.Equal(t, StateMoving, state)
			assert.Equal(t, before, g.Snapshot().Current)
		})
	}
}
