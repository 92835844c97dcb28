package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/JoelOtter/termloop"
	"github.com/jauhararifin/brickgame"
	"github.com/mattn/go-runewidth"
)

// every field cell is drawn two terminal columns wide
const cellWidth = 2

type boardPlayer struct {
	game   *brickgame.Game
	state  brickgame.State
	logger *slog.Logger

	x, y          int
	width, height int

	now       func() time.Time
	lastDrop  time.Time
	holdUntil time.Time
	onExit    func()

	// last key seen while input could not be applied
	pending brickgame.Action

	scoreText *termloop.Text
	bestText  *termloop.Text
	levelText *termloop.Text
	speedText *termloop.Text
}

func newBoardPlayer(x, y int, logger *slog.Logger, options ...brickgame.Option) *boardPlayer {
	width := brickgame.FieldWidth * cellWidth
	height := brickgame.FieldHeight
	side := x + width + 4

	b := &boardPlayer{
		state:  brickgame.StateStart,
		logger: logger,
		x:      x,
		y:      y,
		width:  width,
		height: height,
		now:    time.Now,
		onExit: func() {},

		scoreText: termloop.NewText(side, y+8, "", termloop.ColorWhite, termloop.ColorDefault),
		bestText:  termloop.NewText(side, y+10, "", termloop.ColorWhite, termloop.ColorDefault),
		levelText: termloop.NewText(side, y+12, "", termloop.ColorWhite, termloop.ColorDefault),
		speedText: termloop.NewText(side, y+14, "", termloop.ColorWhite, termloop.ColorDefault),
	}

	options = append(options,
		brickgame.WithLogger(logger),
		brickgame.WithLockHandler(brickgame.LockHandlerFunc(func(rows int) {
			b.holdUntil = b.now().Add(brickgame.LockDelay(rows))
		})),
	)
	b.game = brickgame.NewGame(options...)
	b.lastDrop = b.now()
	return b
}

// keyCode translates a terminal event into the key code the game understands.
func keyCode(ev termloop.Event) int {
	switch ev.Key {
	case termloop.KeyArrowUp:
		return brickgame.KeyUp
	case termloop.KeyArrowDown:
		return brickgame.KeyDown
	case termloop.KeyArrowLeft:
		return brickgame.KeyLeft
	case termloop.KeyArrowRight:
		return brickgame.KeyRight
	case termloop.KeyEnter:
		return '\n'
	case termloop.KeySpace:
		return ' '
	}
	// runes from 0400 up would collide with the arrow codes
	if ev.Ch < 0400 {
		return int(ev.Ch)
	}
	return 0
}

func (b *boardPlayer) Tick(ev termloop.Event) {
	action := brickgame.ActionNone
	if ev.Type == termloop.EventKey {
		action = brickgame.ActionFromKey(keyCode(ev))
	}
	b.step(action)
}

// step advances the game by one frame. Nothing is applied while the hold
// after a lock is running; the last key pressed meanwhile is kept, and so is a
// key given to SPAWN or ATTACHING, which ignore their input.
func (b *boardPlayer) step(action brickgame.Action) {
	now := b.now()
	if now.Before(b.holdUntil) {
		if action != brickgame.ActionNone {
			b.pending = action
		}
		return
	}

	if action == brickgame.ActionNone {
		action = b.pending
	}
	b.pending = brickgame.ActionNone

	prev := b.state
	b.state = b.game.Apply(b.state, action)
	if prev == brickgame.StateSpawn || prev == brickgame.StateAttaching {
		b.pending = action
	}
	if b.state == brickgame.StateMoving && prev != brickgame.StateMoving {
		b.lastDrop = now
	}

	if b.state == brickgame.StateMoving {
		speed := time.Duration(b.game.Snapshot().Speed) * time.Millisecond
		if now.Sub(b.lastDrop) > speed {
			b.state = b.game.Apply(b.state, brickgame.ActionDown)
			b.lastDrop = now
		}
	}

	if b.state == brickgame.StateExit {
		stats := b.game.Snapshot()
		b.logger.Info("player left", "score", stats.Score, "high_score", stats.HighScore)
		b.onExit()
	}
}

func (b *boardPlayer) Draw(s *termloop.Screen) {
	stats := b.game.Snapshot()

	b.drawBox(s, b.x, b.y, b.width+2, b.height+2)
	b.drawBox(s, b.x+b.width+3, b.y, 4*cellWidth+2, 6)

	frame := b.game.Render()
	for y := 0; y < brickgame.FieldHeight; y++ {
		for x := 0; x < brickgame.FieldWidth; x++ {
			switch frame[y][x] {
			case brickgame.TilePiece:
				b.drawCell(s, b.x+1+x*cellWidth, b.y+1+y, termloop.ColorYellow)
			case brickgame.TileLocked:
				b.drawCell(s, b.x+1+x*cellWidth, b.y+1+y, termloop.ColorWhite)
			default:
				b.clearCell(s, b.x+1+x*cellWidth, b.y+1+y)
			}
		}
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			px := b.x + b.width + 4 + x*cellWidth
			if stats.Next.Shape[y][x] {
				b.drawCell(s, px, b.y+1+y, termloop.ColorCyan)
			} else {
				b.clearCell(s, px, b.y+1+y)
			}
		}
	}

	b.scoreText.SetText(fmt.Sprintf("SCORE %d", stats.Score))
	b.scoreText.Draw(s)
	b.bestText.SetText(fmt.Sprintf("BEST  %d", stats.HighScore))
	b.bestText.Draw(s)
	b.levelText.SetText(fmt.Sprintf("LEVEL %d", stats.Level))
	b.levelText.Draw(s)
	b.speedText.SetText(fmt.Sprintf("SPEED %d", stats.Speed))
	b.speedText.Draw(s)

	for i, line := range banner(b.state) {
		b.drawCentered(s, b.y+b.height/2-1+i, line)
	}
}

func banner(state brickgame.State) []string {
	switch state {
	case brickgame.StateStart:
		return []string{"BRICK GAME", "ENTER to start", "Q to quit"}
	case brickgame.StatePause:
		return []string{"PAUSED", "P to resume"}
	case brickgame.StateGameOver:
		return []string{"GAME OVER", "ENTER to retry", "Q to quit"}
	}
	return nil
}

func (b *boardPlayer) drawCentered(s *termloop.Screen, y int, text string) {
	x := b.x + 1 + (b.width-runewidth.StringWidth(text))/2
	for _, r := range text {
		s.RenderCell(x, y, &termloop.Cell{
			Fg: termloop.ColorBlack,
			Bg: termloop.ColorWhite,
			Ch: r,
		})
		x += runewidth.RuneWidth(r)
	}
}

func (b *boardPlayer) drawBox(s *termloop.Screen, x, y, width, height int) {
	border := &termloop.Cell{
		Fg: termloop.ColorWhite,
		Bg: termloop.ColorBlack,
		Ch: '+',
	}
	for i := 0; i < width; i++ {
		s.RenderCell(x+i, y, border)
		s.RenderCell(x+i, y+height-1, border)
	}
	for i := 0; i < height; i++ {
		s.RenderCell(x, y+i, border)
		s.RenderCell(x+width-1, y+i, border)
	}
}

func (b *boardPlayer) drawCell(s *termloop.Screen, x, y int, fg termloop.Attr) {
	s.RenderCell(x, y, &termloop.Cell{Fg: fg, Bg: termloop.ColorBlack, Ch: '['})
	s.RenderCell(x+1, y, &termloop.Cell{Fg: fg, Bg: termloop.ColorBlack, Ch: ']'})
}

func (b *boardPlayer) clearCell(s *termloop.Screen, x, y int) {
	s.RenderCell(x, y, &termloop.Cell{Fg: termloop.ColorWhite, Bg: termloop.ColorBlack, Ch: ' '})
	s.RenderCell(x+1, y, &termloop.Cell{Fg: termloop.ColorWhite, Bg: termloop.ColorBlack, Ch: ' '})
}
