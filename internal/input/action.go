package input

import "github.com/gdamore/tcell/v2"

// Action is a game intent decoupled from the key that produced it
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionConfirm
	ActionPause
	ActionCycleDifficulty
	ActionExit
	numActions
)

func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionConfirm:
		return "confirm"
	case ActionPause:
		return "pause"
	case ActionCycleDifficulty:
		return "difficulty"
	case ActionExit:
		return "exit"
	}
	return "none"
}

// KeyToAction converts a key event to a game action
func KeyToAction(key tcell.Key, r rune) Action {
	switch key {
	case tcell.KeyUp:
		return ActionUp
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyEnter:
		return ActionConfirm
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionExit
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return ActionUp
		case 's', 'S':
			return ActionDown
		case 'p', 'P':
			return ActionPause
		case 'd', 'D':
			return ActionCycleDifficulty
		case 'q', 'Q':
			return ActionExit
		}
	}
	return ActionNone
}
