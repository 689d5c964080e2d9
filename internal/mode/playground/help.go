package playground

import (
	"context"

	"github.com/zjrosen/vimcore/internal/cachemanager"
	"github.com/zjrosen/vimcore/internal/ui/markdown"
)

type helpInput struct {
	width int
	style string
}

// helpCache keeps rendered help per style and width; glamour rendering is
// slow enough to notice on every resize.
var helpCache = cachemanager.NewReadThroughCache[string, string, helpInput](
	cachemanager.NewInMemoryCacheManager[string, string]("help", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval),
	renderCheatSheet,
	false,
)

func renderCheatSheet(_ context.Context, in helpInput) (string, error) {
	r, err := markdown.New(in.width, in.style)
	if err != nil {
		return "", err
	}
	return r.Render(cheatSheet)
}

// cheatSheet is the help panel content.
const cheatSheet = `# Vim keys

| Keys | Effect |
|---|---|
| ` + "`h j k l`" + ` | left, down, up, right |
| ` + "`w b e`" + ` | next word, previous word, end of word |
| ` + "`0 $ gg G`" + ` | line start, line end, first line, last line |
| ` + "`f{c} F{c}`" + ` | find character forward, backward |
| ` + "`i a I A o O`" + ` | enter Insert mode |
| ` + "`v`" + ` | Visual mode, then ` + "`d c y x`" + ` |
| ` + "`d c y` + motion" + ` | delete, change, yank (` + "`dd cc yy`" + ` for lines) |
| ` + "`x r p P`" + ` | delete char, replace char, paste after, paste before |
| ` + "`u` `ctrl+r`" + ` | undo, redo |
| ` + "`.`" + ` | repeat last change |
| ` + "`:w :q :wq`" + ` | submit, clear, submit |
| ` + "`:set paste`" + ` | toggle paste mode (` + "`:set nopaste`" + `) |

Counts multiply: ` + "`2d3w`" + ` deletes six words.
`
