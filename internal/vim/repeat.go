package vim

import "github.com/zjrosen/vimcore/internal/log"

type recordKind int

const (
	recordOperator recordKind = iota // d, c or y with a motion
	recordInsert                     // i, a, A, I, o or O with the typed text
	recordSimple                     // x, r, p or P
)

// recordedCommand is the last buffer-changing command, kept for dot-repeat.
type recordedCommand struct {
	kind     recordKind
	operator Operator
	count    int
	keys     []rune // motion keys for operators, the command key otherwise
	inserted []rune // text typed in the Insert session that followed, if any
}

func (e *Engine) record(rec *recordedCommand) {
	e.last = rec
}

// repeatLast replays the last change at the cursor. A non-zero count replaces
// the recorded one and is remembered for the next repeat.
func (e *Engine) repeatLast(count int, lines []string, row, col int) Action {
	if e.last == nil {
		log.Debug(log.CatVim, "nothing to repeat")
		return NoOp{}
	}
	rec := *e.last
	if count > 0 {
		rec.count = count
	}

	var actions []Action
	switch rec.kind {
	case recordOperator:
		edit, ok := e.operatorEdit(rec.operator, rec.count, string(rec.keys), lines, row, col)
		if !ok {
			return NoOp{}
		}
		actions = append(edit, typedActions(rec.inserted)...)

	case recordInsert:
		entry := rec.keys[0]
		if entry != 'i' {
			actions = primeInsert(entry, lines, row, col)
		}
		for i := range rec.count {
			if i > 0 && (entry == 'o' || entry == 'O') {
				actions = append(actions, InsertNewline{})
			}
			actions = append(actions, typedActions(rec.inserted)...)
		}

	case recordSimple:
		var action Action
		switch rec.keys[0] {
		case 'x':
			action = e.deleteChars(rec.count, lines, row, col)
		case 'r':
			if col < len(lineAt(lines, row)) {
				action = ReplaceChar{Row: row, Col: col, Ch: rec.keys[1]}
			}
		case 'p', 'P':
			action = e.paste(rec.keys[0], rec.count)
		}
		if action != nil {
			actions = Flatten(action)
		}
	}

	e.last = &rec
	return batch(actions...)
}
