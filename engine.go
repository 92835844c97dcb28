package brickgame

// The anchor row sits one below the piece's top row. Sideways moves probe the
// rows the piece occupies now (Y-1); Down and rotation probe one row lower,
// at the anchor itself.

// CheckMove reports whether moving the current piece in the direction of a
// is blocked. Only Left, Right and Down are movements; anything else is
// reported as blocked.
func (g *Game) CheckMove(a Action) bool {
	g.m.RLock()
	defer g.m.RUnlock()
	return g.checkMove(a)
}

func (g *Game) checkMove(a Action) bool {
	s := &g.stats
	switch a {
	case ActionLeft:
		return s.Field.Blocked(s.Current.Shape, s.X-1, s.Y-1)
	case ActionRight:
		return s.Field.Blocked(s.Current.Shape, s.X+1, s.Y-1)
	case ActionDown:
		return s.Field.Blocked(s.Current.Shape, s.X, s.Y)
	}
	return true
}

// CheckRotated reports whether the candidate shape is blocked at the current anchor.
func (g *Game) CheckRotated(candidate Shape) bool {
	g.m.RLock()
	defer g.m.RUnlock()
	return g.checkRotated(candidate)
}

func (g *Game) checkRotated(candidate Shape) bool {
	return g.stats.Field.Blocked(candidate, g.stats.X, g.stats.Y)
}

// Rotate turns the current piece when the result is not blocked and reports
// whether it did. The square never turns.
func (g *Game) Rotate() bool {
	g.m.Lock()
	defer g.m.Unlock()
	return g.rotate()
}

func (g *Game) rotate() bool {
	if g.stats.Current.Type == PieceO {
		return false
	}
	candidate := g.stats.Current.Rotated()
	if g.checkRotated(candidate.Shape) {
		return false
	}
	g.stats.Current = candidate
	return true
}

func (g *Game) MoveLeft() bool {
	g.m.Lock()
	defer g.m.Unlock()
	return g.moveLeft()
}

func (g *Game) moveLeft() bool {
	if g.checkMove(ActionLeft) {
		return false
	}
	g.stats.X--
	return true
}

func (g *Game) MoveRight() bool {
	g.m.Lock()
	defer g.m.Unlock()
	return g.moveRight()
}

func (g *Game) moveRight() bool {
	if g.checkMove(ActionRight) {
		return false
	}
	g.stats.X++
	return true
}

// MoveDown steps the piece one row down. It returns false when the piece rests
// on something; the caller decides whether that means locking.
func (g *Game) MoveDown() bool {
	g.m.Lock()
	defer g.m.Unlock()
	return g.moveDown()
}

func (g *Game) moveDown() bool {
	if g.checkMove(ActionDown) {
		return false
	}
	g.stats.Y++
	return true
}
