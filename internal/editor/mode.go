package editor

// Mode is the editing mode. Completion is only ever shown in insert
// mode; every mode switch away from insert cancels the session.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeVisual
	ModeCommand
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInsert:
		return "insert"
	case ModeVisual:
		return "visual"
	case ModeCommand:
		return "command"
	default:
		return "unknown"
	}
}
