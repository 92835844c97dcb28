package brickgame

// Raw key codes. Arrow keys use the curses numbering.
const (
	KeyDown  = 0402
	KeyUp    = 0403
	KeyLeft  = 0404
	KeyRight = 0405
)

// ActionFromKey classifies a raw key code. Unknown codes yield ActionNone.
func ActionFromKey(code int) Action {
	switch code {
	case KeyUp:
		return ActionUp
	case KeyDown:
		return ActionDown
	case KeyLeft:
		return ActionLeft
	case KeyRight:
		return ActionRight
	case 'q', 'Q':
		return ActionTerminate
	case 'p', 'P':
		return ActionPause
	case '\n':
		return ActionStart
	case ' ':
		return ActionRotate
	}
	return ActionNone
}
