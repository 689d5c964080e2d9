package vim

// Action is a single buffer instruction returned by Engine.HandleKey.
// The set of implementations is closed; hosts apply them with a type switch.
type Action interface {
	isAction()
}

// NoOp means the key was consumed and nothing needs to change.
type NoOp struct{}

// InsertChar inserts Ch at the cursor.
type InsertChar struct {
	Ch rune
}

// InsertNewline splits the line at the cursor.
type InsertNewline struct{}

// Backspace deletes the character before the cursor (joining lines at column 0).
type Backspace struct{}

// DeleteRange deletes the half-open range [Start, End). End may be on a later row.
type DeleteRange struct {
	StartRow int
	StartCol int
	EndRow   int
	EndCol   int
}

// DeleteLine removes the whole line at Row.
type DeleteLine struct {
	Row int
}

// MoveCursor places the cursor at (Row, Col).
type MoveCursor struct {
	Row int
	Col int
}

// ChangeMode reports that the engine switched to Mode.
type ChangeMode struct {
	Mode Mode
}

// ReplaceChar replaces the character at (Row, Col) with Ch.
type ReplaceChar struct {
	Row int
	Col int
	Ch  rune
}

// PasteAfter pastes Text after the cursor (below the current line when Linewise).
type PasteAfter struct {
	Text     string
	Linewise bool
}

// PasteBefore pastes Text before the cursor (above the current line when Linewise).
type PasteBefore struct {
	Text     string
	Linewise bool
}

// Submit asks the host to submit the input.
type Submit struct{}

// ClearInput asks the host to clear the input buffer.
type ClearInput struct{}

// Undo asks the host to undo the last change.
type Undo struct{}

// Redo asks the host to redo the last undone change.
type Redo struct{}

// CommandOutput is an informational message produced by a ":" command.
type CommandOutput struct {
	Message string
}

// Batch holds actions that must be applied in order, as one unit.
type Batch struct {
	Actions []Action
}

func (NoOp) isAction()          {}
func (InsertChar) isAction()    {}
func (InsertNewline) isAction() {}
func (Backspace) isAction()     {}
func (DeleteRange) isAction()   {}
func (DeleteLine) isAction()    {}
func (MoveCursor) isAction()    {}
func (ChangeMode) isAction()    {}
func (ReplaceChar) isAction()   {}
func (PasteAfter) isAction()    {}
func (PasteBefore) isAction()   {}
func (Submit) isAction()        {}
func (ClearInput) isAction()    {}
func (Undo) isAction()          {}
func (Redo) isAction()          {}
func (CommandOutput) isAction() {}
func (Batch) isAction()         {}

// batch wraps actions in a Batch. A single action is returned as is and an
// empty list becomes NoOp.
func batch(actions ...Action) Action {
	switch len(actions) {
	case 0:
		return NoOp{}
	case 1:
		return actions[0]
	default:
		return Batch{Actions: actions}
	}
}

// Flatten expands nested batches into a flat, ordered list of actions.
func Flatten(a Action) []Action {
	b, ok := a.(Batch)
	if !ok {
		return []Action{a}
	}
	var out []Action
	for _, inner := range b.Actions {
		out = append(out, Flatten(inner)...)
	}
	return out
}

// ChangesContent reports whether applying a may modify the buffer text.
func ChangesContent(a Action) bool {
	switch a := a.(type) {
	case InsertChar, InsertNewline, Backspace, DeleteRange, DeleteLine,
		ReplaceChar, PasteAfter, PasteBefore, ClearInput:
		return true
	case Batch:
		for _, inner := range a.Actions {
			if ChangesContent(inner) {
				return true
			}
		}
	}
	return false
}
