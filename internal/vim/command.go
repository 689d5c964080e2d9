package vim

import (
	"strings"

	"github.com/zjrosen/vimcore/internal/log"
)

// exCommands maps a command line (without the leading ':') to its handler.
var exCommands = map[string]func(e *Engine) Action{
	"w":  func(*Engine) Action { return Submit{} },
	"wq": func(*Engine) Action { return Submit{} },
	"q":  func(*Engine) Action { return ClearInput{} },
	"set paste": func(e *Engine) Action {
		e.pasteMode = true
		return CommandOutput{Message: "Paste mode ON"}
	},
	"set nopaste": func(e *Engine) Action {
		e.pasteMode = false
		return CommandOutput{Message: "Paste mode OFF"}
	},
}

func (e *Engine) handleCommand(key rune, ctrl bool) Action {
	if isEscape(key, ctrl) {
		e.cmdline = e.cmdline[:0]
		e.mode = ModeNormal
		return ChangeMode{Mode: ModeNormal}
	}
	if ctrl {
		return NoOp{}
	}

	switch key {
	case KeyEnter, KeyNewline:
		line := strings.TrimSpace(string(e.cmdline))
		e.cmdline = e.cmdline[:0]
		e.mode = ModeNormal
		return e.execute(line)
	case KeyBackspace, KeyDelete:
		if len(e.cmdline) == 0 {
			e.mode = ModeNormal
			return ChangeMode{Mode: ModeNormal}
		}
		e.cmdline = e.cmdline[:len(e.cmdline)-1]
		return NoOp{}
	}

	if isLiteral(key) {
		e.cmdline = append(e.cmdline, key)
	}
	return NoOp{}
}

// execute runs a submitted command line.
func (e *Engine) execute(line string) Action {
	if run, ok := exCommands[line]; ok {
		return run(e)
	}
	log.Debug(log.CatVim, "unknown command", "cmd", line)
	return CommandOutput{Message: "Unknown command: " + line}
}
