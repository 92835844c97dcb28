package main

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/JoelOtter/termloop"
	"github.com/jauhararifin/brickgame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestBoard(t *testing.T) (*boardPlayer, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	source := brickgame.NewQueueSource(brickgame.NewRandomSource(1))
	source.Push(brickgame.PieceT, brickgame.PieceO)

	b := newBoardPlayer(0, 0, slog.New(slog.NewTextHandler(io.Discard, nil)),
		brickgame.WithSource(source),
		brickgame.WithStore(brickgame.NewMemoryStore(0)),
	)
	b.now = clock.now
	b.lastDrop = clock.now()
	return b, clock
}

func keyEvent(key termloop.Key) termloop.Event {
	return termloop.Event{Type: termloop.EventKey, Key: key}
}

func runeEvent(ch rune) termloop.Event {
	return termloop.Event{Type: termloop.EventKey, Ch: ch}
}

func TestKeyCode(t *testing.T) {
	tests := []struct {
		name   string
		event  termloop.Event
		action brickgame.Action
	}{
		{"up", keyEvent(termloop.KeyArrowUp), brickgame.ActionUp},
		{"down", keyEvent(termloop.KeyArrowDown), brickgame.ActionDown},
		{"left", keyEvent(termloop.KeyArrowLeft), brickgame.ActionLeft},
		{"right", keyEvent(termloop.KeyArrowRight), brickgame.ActionRight},
		{"enter", keyEvent(termloop.KeyEnter), brickgame.ActionStart},
		{"space", keyEvent(termloop.KeySpace), brickgame.ActionRotate},
		{"q", runeEvent('q'), brickgame.ActionTerminate},
		{"P", runeEvent('P'), brickgame.ActionPause},
		{"other", runeEvent('z'), brickgame.ActionNone},
		{"escape", keyEvent(termloop.KeyEsc), brickgame.ActionNone},
		{"rune at down code", runeEvent('\u0102'), brickgame.ActionNone},
		{"rune at right code", runeEvent('\u0105'), brickgame.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.action, brickgame.ActionFromKey(keyCode(tt.event)))
		})
	}
}

func TestBoardStartsOnEnter(t *testing.T) {
	b, _ := newTestBoard(t)

	b.Tick(termloop.Event{Type: termloop.EventNone})
	assert.Equal(t, brickgame.StateStart, b.state)

	b.Tick(keyEvent(termloop.KeyEnter))
	assert.Equal(t, brickgame.StateSpawn, b.state)

	b.Tick(termloop.Event{Type: termloop.EventNone})
	assert.Equal(t, brickgame.StateMoving, b.state)
	assert.Equal(t, brickgame.PieceT, b.game.Snapshot().Current.Type)
}

func TestBoardGravity(t *testing.T) {
	b, clock := newTestBoard(t)
	b.Tick(keyEvent(termloop.KeyEnter))
	b.Tick(termloop.Event{Type: termloop.EventNone})
	require.Equal(t, brickgame.StateMoving, b.state)

	clock.advance(700 * time.Millisecond)
	b.Tick(termloop.Event{Type: termloop.EventNone})
	assert.Equal(t, brickgame.SpawnY, b.game.Snapshot().Y)

	clock.advance(time.Millisecond)
	b.Tick(termloop.Event{Type: termloop.EventNone})
	assert.Equal(t, brickgame.SpawnY+1, b.game.Snapshot().Y)

	b.Tick(termloop.Event{Type: termloop.EventNone})
	assert.Equal(t, brickgame.SpawnY+1, b.game.Snapshot().Y)
}

func TestBoardHoldsAfterLock(t *testing.T) {
	b, clock := newTestBoard(t)
	b.Tick(keyEvent(termloop.KeyEnter))
	b.Tick(termloop.Event{Type: termloop.EventNone})

	for i := 0; i < brickgame.FieldHeight+2 && b.state == brickgame.StateMoving; i++ {
		b.Tick(keyEvent(termloop.KeyArrowDown))
	}
	require.Equal(t, brickgame.StateAttaching, b.state)

	b.Tick(termloop.Event{Type: termloop.EventNone})
	require.Equal(t, brickgame.StateSpawn, b.state)

	clock.advance(100 * time.Millisecond)
	b.Tick(keyEvent(termloop.KeyEnter))
	assert.Equal(t, brickgame.StateSpawn, b.state)

	clock.advance(50 * time.Millisecond)
	b.Tick(termloop.Event{Type: termloop.EventNone})
	assert.Equal(t, brickgame.StateMoving, b.state)
	assert.Equal(t, brickgame.PieceO, b.game.Snapshot().Current.Type)
}

func TestBoardKeepsKeyPressedDuringHold(t *testing.T) {
	b, clock := newTestBoard(t)
	exited := 0
	b.onExit = func() { exited++ }
	b.Tick(keyEvent(termloop.KeyEnter))
	b.Tick(termloop.Event{Type: termloop.EventNone})

	for i := 0; i < brickgame.FieldHeight+2 && b.state == brickgame.StateMoving; i++ {
		b.Tick(keyEvent(termloop.KeyArrowDown))
	}
	b.Tick(termloop.Event{Type: termloop.EventNone})
	require.Equal(t, brickgame.StateSpawn, b.state)

	b.Tick(runeEvent('q'))
	b.Tick(termloop.Event{Type: termloop.EventNone})
	assert.Equal(t, brickgame.StateSpawn, b.state)

	clock.advance(150 * time.Millisecond)
	b.Tick(termloop.Event{Type: termloop.EventNone})
	assert.Equal(t, brickgame.StateMoving, b.state)
	b.Tick(termloop.Event{Type: termloop.EventNone})
	assert.Equal(t, brickgame.StateExit, b.state)
	assert.Equal(t, 1, exited)
}

func TestBoardKeepsKeyGivenToSpawn(t *testing.T) {
	b, _ := newTestBoard(t)
	b.Tick(keyEvent(termloop.KeyEnter))
	require.Equal(t, brickgame.StateSpawn, b.state)

	b.Tick(keyEvent(termloop.KeyArrowLeft))
	require.Equal(t, brickgame.StateMoving, b.state)
	assert.Equal(t, brickgame.SpawnX, b.game.Snapshot().X)

	b.Tick(termloop.Event{Type: termloop.EventNone})
	assert.Equal(t, brickgame.SpawnX-1, b.game.Snapshot().X)

	b.Tick(termloop.Event{Type: termloop.EventNone})
	assert.Equal(t, brickgame.SpawnX-1, b.game.Snapshot().X)
}

func TestBoardPauseStopsGravity(t *testing.T) {
	b, clock := newTestBoard(t)
	b.Tick(keyEvent(termloop.KeyEnter))
	b.Tick(termloop.Event{Type: termloop.EventNone})
	b.Tick(runeEvent('p'))
	require.Equal(t, brickgame.StatePause, b.state)

	clock.advance(5 * time.Second)
	b.Tick(termloop.Event{Type: termloop.EventNone})
	assert.Equal(t, brickgame.StatePause, b.state)
	assert.Equal(t, brickgame.SpawnY, b.game.Snapshot().Y)
}

func TestBoardExit(t *testing.T) {
	b, _ := newTestBoard(t)
	exited := 0
	b.onExit = func() { exited++ }

	b.Tick(runeEvent('q'))
	assert.Equal(t, brickgame.StateExit, b.state)
	assert.Equal(t, 1, exited)
}

func TestBanner(t *testing.T) {
	assert.Contains(t, banner(brickgame.StateStart), "ENTER to start")
	assert.Contains(t, banner(brickgame.StateGameOver), "GAME OVER")
	assert.Contains(t, banner(brickgame.StatePause), "PAUSED")
	assert.Empty(t, banner(brickgame.StateMoving))
}
