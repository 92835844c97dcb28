package brickgame

import (
	"io"
	"log/slog"
	"sync"
	"time"
)

const (
	SpawnX = 4
	SpawnY = 1
)

type Tile int

const (
	TileEmpty Tile = iota
	TileLocked
	TilePiece
)

// Frame is the field as a renderer sees it, with the active piece drawn in.
type Frame [FieldHeight][FieldWidth]Tile

// Stats is the whole mutable state of one game.
type Stats struct {
	Field         Field
	Current, Next Piece
	Score         int
	HighScore     int
	Level         int
	Speed         int
	// Pause counts actions received while paused.
	Pause int
	// X and Y anchor the current piece's box; the box's first row is drawn on Y-1.
	X, Y int
}

// LockHandler is notified after a piece locks, with the number of rows cleared.
type LockHandler interface {
	OnLocked(rows int)
}

type LockHandlerFunc func(rows int)

func (f LockHandlerFunc) OnLocked(rows int) {
	f(rows)
}

type Game struct {
	source      PieceSource
	store       ScoreStore
	lockHandler LockHandler
	logger      *slog.Logger

	stats Stats
	m     *sync.RWMutex

	// set by the ATTACHING transition for Apply to report once unlocked
	locked     bool
	lockedRows int
}

type Option func(*Game)

func WithSource(source PieceSource) Option {
	return func(g *Game) {
		g.source = source
	}
}

func WithStore(store ScoreStore) Option {
	return func(g *Game) {
		g.store = store
	}
}

func WithLockHandler(handler LockHandler) Option {
	return func(g *Game) {
		g.lockHandler = handler
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// NewGame builds a game and initializes its state. Without options it draws
// pieces from a time-seeded source and keeps the high score in memory.
func NewGame(options ...Option) *Game {
	g := &Game{
		source: NewRandomSource(time.Now().UnixNano()),
		store:  NewMemoryStore(0),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		m:      &sync.RWMutex{},
	}
	for _, opt := range options {
		opt(g)
	}
	g.Reset()
	return g
}

// Reset starts a fresh round: empty field, zero score, a new next piece and
// the high score reloaded from the store.
func (g *Game) Reset() {
	g.m.Lock()
	defer g.m.Unlock()
	g.reset()
}

func (g *Game) reset() {
	g.stats.Field.Clear()
	g.stats.Current = Piece{}
	g.stats.Next = g.source.Next()
	g.stats.Score = 0
	g.stats.Level = 0
	g.stats.Speed = InitialSpeed
	g.stats.Pause = 0
	g.stats.X = SpawnX
	g.stats.Y = SpawnY

	highScore, err := g.store.Load()
	if err != nil {
		g.logger.Warn("cannot load high score, starting from zero", "err", err)
		highScore = 0
	}
	g.stats.HighScore = highScore
	g.logger.Info("game reset", "high_score", highScore, "next", g.stats.Next.Type)
}

// Snapshot returns a copy of the game state that is safe to read while the
// game keeps running.
func (g *Game) Snapshot() Stats {
	g.m.RLock()
	defer g.m.RUnlock()
	return g.stats
}

func (g *Game) SetState(stats Stats) {
	g.m.Lock()
	defer g.m.Unlock()
	g.stats = stats
}

func (g *Game) Render() Frame {
	g.m.RLock()
	defer g.m.RUnlock()

	var frame Frame
	rows := g.stats.Field.Rows()
	for y := 0; y < FieldHeight; y++ {
		for x := 0; x < FieldWidth; x++ {
			if rows[y][x] {
				frame[y][x] = TileLocked
			}
		}
	}
	for _, cell := range g.stats.Current.Shape.Cells() {
		x := g.stats.X + cell[0]
		y := g.stats.Y + cell[1] - 1
		if inWindow(x, y) {
			frame[y][x] = TilePiece
		}
	}
	return frame
}

// persistHighScore saves the score when it beats the known high score and
// raises the high score so the same value is not written twice. A failed
// write is logged and not retried.
func (g *Game) persistHighScore() {
	if g.stats.Score <= g.stats.HighScore {
		return
	}
	if err := g.store.Save(g.stats.Score); err != nil {
		g.logger.Warn("cannot persist high score", "score", g.stats.Score, "err", err)
	} else {
		g.logger.Info("new high score", "score", g.stats.Score, "previous", g.stats.HighScore)
	}
	g.stats.HighScore = g.stats.Score
}
