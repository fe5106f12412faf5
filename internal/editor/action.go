package editor

import "fmt"

// Action is an abstract editor command. The harness maps keys to actions;
// the engine never sees key codes.
type Action int

const (
	ActionNone Action = iota

	// Mode switches
	ActionIdle
	ActionInsert
	ActionTranslate
	ActionDelete
	ActionColorize
	ActionAnimate
	ActionBezier
	ActionQuit

	// Selected triangle transforms
	ActionRotateCW
	ActionRotateCCW
	ActionScaleUp
	ActionScaleDown

	// View
	ActionPanUp
	ActionPanDown
	ActionPanLeft
	ActionPanRight
	ActionZoomIn
	ActionZoomOut

	ActionSnapshot
	ActionDump
	// ActionExportAs asks the harness for a file name; the engine ignores it.
	ActionExportAs

	// Digits; ActionDigit1+n-1 is digit n.
	ActionDigit1
	ActionDigit2
	ActionDigit3
	ActionDigit4
	ActionDigit5
	ActionDigit6
	ActionDigit7
	ActionDigit8
	ActionDigit9
)

var actionNames = map[Action]string{
	ActionIdle:      "idle",
	ActionInsert:    "insert",
	ActionTranslate: "translate",
	ActionDelete:    "delete",
	ActionColorize:  "colorize",
	ActionAnimate:   "animate",
	ActionBezier:    "bezier",
	ActionQuit:      "quit",
	ActionRotateCW:  "rotate_cw",
	ActionRotateCCW: "rotate_ccw",
	ActionScaleUp:   "scale_up",
	ActionScaleDown: "scale_down",
	ActionPanUp:     "pan_up",
	ActionPanDown:   "pan_down",
	ActionPanLeft:   "pan_left",
	ActionPanRight:  "pan_right",
	ActionZoomIn:    "zoom_in",
	ActionZoomOut:   "zoom_out",
	ActionSnapshot:  "snapshot",
	ActionDump:      "dump",
	ActionExportAs:  "export_as",
	ActionDigit1:    "digit1",
	ActionDigit2:    "digit2",
	ActionDigit3:    "digit3",
	ActionDigit4:    "digit4",
	ActionDigit5:    "digit5",
	ActionDigit6:    "digit6",
	ActionDigit7:    "digit7",
	ActionDigit8:    "digit8",
	ActionDigit9:    "digit9",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// ParseAction returns the action with the given configuration name.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}

// Digit returns the digit carried by a digit action, or 0.
func (a Action) Digit() int {
	if a < ActionDigit1 || a > ActionDigit9 {
		return 0
	}
	return int(a-ActionDigit1) + 1
}

// modeFor returns the mode a mode-switch action selects.
func (a Action) modeFor() (Mode, bool) {
	switch a {
	case ActionIdle:
		return ModeIdle, true
	case ActionInsert:
		return ModeInsert, true
	case ActionTranslate:
		return ModeTranslate, true
	case ActionDelete:
		return ModeDelete, true
	case ActionColorize:
		return ModeColorize, true
	case ActionAnimate:
		return ModeAnimate, true
	case ActionBezier:
		return ModeBezier, true
	case ActionQuit:
		return ModeQuit, true
	}
	return 0, false
}
