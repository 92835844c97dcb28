package brickgame

import "fmt"

type State int

const (
	StateStart State = iota
	StateSpawn
	StateMoving
	StatePause
	StateAttaching
	StateGameOver
	StateExit
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateSpawn:
		return "spawn"
	case StateMoving:
		return "moving"
	case StatePause:
		return "pause"
	case StateAttaching:
		return "attaching"
	case StateGameOver:
		return "game_over"
	case StateExit:
		return "exit"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionPause
	ActionTerminate
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionRotate
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionStart:
		return "start"
	case ActionPause:
		return "pause"
	case ActionTerminate:
		return "terminate"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionRotate:
		return "rotate"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

type transition func(g *Game, a Action) State

// transitions holds one handler per state. SPAWN and ATTACHING ignore the
// action they are given; they only need a call to make progress.
var transitions = map[State]transition{
	StateStart:     (*Game).onStart,
	StateSpawn:     (*Game).onSpawn,
	StateMoving:    (*Game).onMoving,
	StatePause:     (*Game).onPause,
	StateAttaching: (*Game).onAttaching,
	StateGameOver:  (*Game).onGameOver,
	StateExit:      (*Game).onExit,
}

// Apply feeds one action into the state machine and returns the new state.
// The lock handler, if any, runs after the game state is unlocked.
func (g *Game) Apply(state State, a Action) State {
	g.m.Lock()
	handle, ok := transitions[state]
	if !ok {
		g.m.Unlock()
		g.logger.Error("no transition for state", "state", state, "action", a)
		return state
	}
	g.locked = false
	next := handle(g, a)
	locked, rows := g.locked, g.lockedRows
	g.m.Unlock()

	if next != state {
		g.logger.Debug("state changed", "from", state, "to", next, "action", a)
	}
	if locked && g.lockHandler != nil {
		g.lockHandler.OnLocked(rows)
	}
	return next
}

func (g *Game) onStart(a Action) State {
	switch a {
	case ActionStart:
		return StateSpawn
	case ActionTerminate:
		return StateExit
	}
	return StateStart
}

func (g *Game) onSpawn(Action) State {
	s := &g.stats
	s.Current = s.Next
	s.Next = g.source.Next()
	s.X = SpawnX
	s.Y = SpawnY

	if !g.checkMove(ActionDown) {
		return StateMoving
	}
	if s.Current.Type != PieceI {
		g.logger.Info("spawn blocked", "piece", s.Current.Type, "score", s.Score)
		return StateGameOver
	}

	// The bar spawns upright; lying down it may still fit, shifted into
	// the top row.
	if g.rotate() && s.Current.Shape[1][3] {
		s.X = SpawnX - 1
		s.Y = SpawnY - 1
	}
	if g.checkMove(ActionDown) {
		g.logger.Info("spawn blocked", "piece", s.Current.Type, "score", s.Score)
		return StateGameOver
	}
	return StateMoving
}

func (g *Game) onMoving(a Action) State {
	switch a {
	case ActionRotate:
		g.rotate()
	case ActionLeft:
		g.moveLeft()
	case ActionRight:
		g.moveRight()
	case ActionDown:
		if !g.moveDown() {
			return StateAttaching
		}
	case ActionTerminate:
		return StateExit
	case ActionPause:
		return g.onPause(a)
	}
	return StateMoving
}

// onPause counts every action it sees. A pause request resumes only once the
// counter has moved past the action that paused the game.
func (g *Game) onPause(a Action) State {
	g.stats.Pause++
	switch {
	case a == ActionTerminate:
		return StateExit
	case a == ActionPause && g.stats.Pause > 1:
		g.stats.Pause = 0
		return StateMoving
	}
	return StatePause
}

func (g *Game) onAttaching(Action) State {
	s := &g.stats
	s.Field.Lock(s.Current, s.X, s.Y)
	rows := s.Field.ClearCompletedRows()

	s.Score += ScoreForRows(rows)
	s.Level = LevelForScore(s.Score)
	s.Speed = SpeedForLevel(s.Level)
	g.persistHighScore()

	g.locked = true
	g.lockedRows = rows
	if rows > 0 {
		g.logger.Debug("rows cleared", "rows", rows, "score", s.Score, "level", s.Level)
	}
	return StateSpawn
}

func (g *Game) onGameOver(a Action) State {
	g.persistHighScore()
	switch a {
	case ActionStart:
		g.reset()
		return StateSpawn
	case ActionTerminate:
		return StateExit
	}
	return StateGameOver
}

func (g *Game) onExit(Action) State {
	return StateExit
}
