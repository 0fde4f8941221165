package terminal

import (
	"Dodgeball/core"

	"github.com/gdamore/tcell"
	"github.com/mattn/go-runewidth"
)

var (
	playerStyle       = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	opponentStyle     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	playerBeamStyle   = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	opponentBeamStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	textStyle         = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	highlightStyle    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Reverse(true)
	winStyle          = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	gameOverStyle     = tcell.StyleDefault.Foreground(tcell.ColorGray).Bold(true)
	hintStyle         = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

func (t *Terminal) drawView() {
	t.screen.Clear()

	if t.game.Phase == core.PhaseMenu {
		t.drawMenu()
	} else {
		t.drawPlayfield()
	}

	t.screen.Show()
}

// toCell 把遊戲座標換算成終端機的格子，至少佔一格
func (t *Terminal) toCell(r core.Rect) (row, col, width, height int) {
	cols, rows := t.screen.Size()
	s := t.game.Settings

	col = r.X * cols / s.ScreenWidth
	row = r.Y * rows / s.ScreenHeight
	width = r.Width * cols / s.ScreenWidth
	height = r.Height * rows / s.ScreenHeight
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return row, col, width, height
}

func (t *Terminal) drawPlayfield() {
	g := t.game
	cols, rows := t.screen.Size()

	t.drawRect(g.Player.Rect, BlockSymbol, playerStyle)
	if g.Opponent.Alive {
		t.drawRect(g.Opponent.Rect, BlockSymbol, opponentStyle)
	}
	for _, beam := range g.PlayerBeams {
		t.drawRect(beam.Rect, BeamSymbol, playerBeamStyle)
	}
	for _, beam := range g.OpponentBeams {
		t.drawRect(beam.Rect, BeamSymbol, opponentBeamStyle)
	}

	switch g.Cause() {
	case core.CauseOpponentDefeated:
		t.drawCentered(cols/2, rows/2-1, "You Win!", winStyle)
		t.drawCentered(cols/2, rows/2+1, "Press R to Restart", textStyle)
	case core.CausePlayerStruck:
		t.drawCentered(cols/2, rows/2-1, "Game Over!", gameOverStyle)
		t.drawCentered(cols/2, rows/2+1, "Press R to Restart", textStyle)
	}

	t.drawText(0, rows-1, "AI: "+g.Selected.Label, hintStyle)
}

func (t *Terminal) drawMenu() {
	menu := t.game.Menu
	cols, rows := t.screen.Size()

	t.drawCentered(cols/2, rows/4, "Dodgeball", winStyle)

	if menu.Mode == core.MenuShowingDescription {
		t.drawDescription(menu.Highlighted())
		return
	}

	t.drawCentered(cols/2, rows/2-4, "Choose the opponent's AI:", textStyle)
	for i, option := range menu.Options {
		style := textStyle
		if i == menu.Index {
			style = highlightStyle
		}
		t.drawCentered(cols/2, rows/2-2+i*2, " "+option.Label+" ", style)
	}
	t.drawCentered(cols/2, rows-2, "Up/Down to choose, Enter to select, Q to quit", hintStyle)
}

func (t *Terminal) drawDescription(option core.MenuOption) {
	cols, rows := t.screen.Size()

	width := cols - 8
	if width > 60 {
		width = 60
	}
	lines := core.WrapText(option.Description, width)

	top := rows/2 - len(lines)/2 - 2
	t.drawCentered(cols/2, top, option.Label, highlightStyle)
	for i, line := range lines {
		t.drawText(cols/2-width/2, top+2+i, line, textStyle)
	}
	t.drawCentered(cols/2, top+3+len(lines), "Enter to start, Esc to go back", hintStyle)
}

func (t *Terminal) drawRect(r core.Rect, ch rune, style tcell.Style) {
	row, col, width, height := t.toCell(r)
	Print(t.screen, row, col, width, height, ch, style)
}

func Print(screen tcell.Screen, row, col, width, height int, ch rune, style tcell.Style) {
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			screen.SetContent(col+c, row+r, ch, nil, style)
		}
	}
}

func (t *Terminal) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		t.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

func (t *Terminal) drawCentered(cx, y int, text string, style tcell.Style) {
	t.drawText(cx-core.TextWidth(text)/2, y, text, style)
}
