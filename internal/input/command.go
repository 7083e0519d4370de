// Package input defines the editor commands observed by the completion
// orchestrator.
package input

// Command identifies an executed editor command. Only the commands the
// completion session machine reacts to are distinguished; every other
// command collapses into CmdOther and is treated conservatively as an
// unknown editing operation.
type Command int

const (
	// CmdOther is any command without special completion handling.
	CmdOther Command = iota

	// CmdDeleteCharBackward deletes the character before the cursor.
	CmdDeleteCharBackward

	// CmdDeleteCharForward deletes the character under the cursor.
	CmdDeleteCharForward

	// CmdDeleteWordForward deletes the word after the cursor.
	CmdDeleteWordForward

	// CmdCompletion explicitly invokes completion.
	CmdCompletion

	// CmdInsertMode enters insert mode before the cursor.
	CmdInsertMode

	// CmdAppendMode enters insert mode after the cursor.
	CmdAppendMode
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CmdDeleteCharBackward:
		return "delete_char_backward"
	case CmdDeleteCharForward:
		return "delete_char_forward"
	case CmdDeleteWordForward:
		return "delete_word_forward"
	case CmdCompletion:
		return "completion"
	case CmdInsertMode:
		return "insert_mode"
	case CmdAppendMode:
		return "append_mode"
	default:
		return "other"
	}
}
