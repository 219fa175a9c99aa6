package core

// Action represents a semantic puzzle action, abstracted from physical key presses.
type Action int

const (
	ActionNone Action = iota

	// Cursor movement on the board.
	ActionUp
	ActionDown
	ActionLeft
	ActionRight

	ActionPlace     // place or move the selected piece at the cursor
	ActionRemove    // return the selected piece to the tray
	ActionRotate    // rotate the selected piece clockwise
	ActionFlipH     // mirror left-right
	ActionFlipV     // mirror top-bottom
	ActionNextPiece // select the next piece
	ActionPrevPiece // select the previous piece
	ActionUndo      // revert the last move
	ActionHint      // ask for a hint
	ActionPause     // pause/unpause
	ActionReset     // clear the board
	ActionShare     // show the share code
	ActionHelp      // toggle full help
	ActionBack      // back to menu
	ActionQuit      // exit
)

var actionNames = [...]string{
	ActionNone:      "None",
	ActionUp:        "Up",
	ActionDown:      "Down",
	ActionLeft:      "Left",
	ActionRight:     "Right",
	ActionPlace:     "Place",
	ActionRemove:    "Remove",
	ActionRotate:    "Rotate",
	ActionFlipH:     "FlipH",
	ActionFlipV:     "FlipV",
	ActionNextPiece: "NextPiece",
	ActionPrevPiece: "PrevPiece",
	ActionUndo:      "Undo",
	ActionHint:      "Hint",
	ActionPause:     "Pause",
	ActionReset:     "Reset",
	ActionShare:     "Share",
	ActionHelp:      "Help",
	ActionBack:      "Back",
	ActionQuit:      "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// Direction returns the row and column delta of a cursor action.
func (a Action) Direction() (dr, dc int, ok bool) {
	switch a {
	case ActionUp:
		return -1, 0, true
	case ActionDown:
		return 1, 0, true
	case ActionLeft:
		return 0, -1, true
	case ActionRight:
		return 0, 1, true
	}
	return 0, 0, false
}

// Mutates reports whether the action can change the board.
func (a Action) Mutates() bool {
	switch a {
	case ActionPlace, ActionRemove, ActionRotate, ActionFlipH, ActionFlipV, ActionUndo, ActionReset:
		return true
	}
	return false
}
