package render

import (
	"fmt"

	"grid-roguelike/internal/world"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// logRows is how many recent messages fit under the status line.
const logRows = HUDRows - 2

var (
	ruleStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	newestStyle = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	olderStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkKhaki)
)

// DrawHUD renders the status line and the newest messages below the map,
// then shows the frame. Text is clipped to the screen width.
func (r *Renderer) DrawHUD(w *world.World, levelName string, messages []string) {
	screenW, screenH := r.screen.Size()
	top := screenH - HUDRows

	for x := range screenW {
		r.screen.SetContent(x, top, '─', nil, ruleStyle)
	}
	r.drawText(0, top+1, screenW, statusLine(w, levelName), statusStyle)

	recent := messages[max(0, len(messages)-logRows):]
	for i, msg := range recent {
		style := olderStyle
		if i == len(recent)-1 {
			style = newestStyle
		}
		r.drawText(0, top+2+i, screenW, msg, style)
	}

	r.screen.Show()
}

func statusLine(w *world.World, levelName string) string {
	where := "gone"
	if p, ok := w.PlayerPos(); ok {
		where = p.String()
	}
	hint := "(waiting)"
	if w.Phase() == world.PhaseExpectingInput {
		hint = "(your move)"
	}
	return fmt.Sprintf("[%s]  Turn: %d  Pos: %s  %s", levelName, w.TurnCounter(), where, hint)
}

// drawText writes text from column x, advancing by each rune's display
// width and stopping before limit.
func (r *Renderer) drawText(x, y, limit int, text string, style tcell.Style) {
	for _, ch := range text {
		width := max(1, runewidth.RuneWidth(ch))
		if x+width > limit {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += width
	}
}
