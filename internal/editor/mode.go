package editor

// Mode is the interaction mode of the editor.
type Mode int

const (
	ModeIdle Mode = iota
	ModeInsert
	ModeTranslate
	ModeDelete
	ModeColorize
	ModeAnimate
	ModeBezier
	ModeQuit
)

var modeNames = [...]string{
	ModeIdle:      "idle",
	ModeInsert:    "insert",
	ModeTranslate: "translate",
	ModeDelete:    "delete",
	ModeColorize:  "colorize",
	ModeAnimate:   "animate",
	ModeBezier:    "bezier",
	ModeQuit:      "quit",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}
