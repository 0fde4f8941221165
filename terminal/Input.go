package terminal

import (
	"Dodgeball/core"

	"github.com/gdamore/tcell"
)

const (
	holdNone  = 0
	holdLeft  = -1
	holdRight = 1
)

// translateKey 把 tcell 按鍵轉成遊戲動作，方向鍵另外回傳 hold 方向
func translateKey(ev *tcell.EventKey) (core.Action, int) {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.ActionUp, holdNone
	case tcell.KeyDown:
		return core.ActionDown, holdNone
	case tcell.KeyLeft:
		return core.ActionNone, holdLeft
	case tcell.KeyRight:
		return core.ActionNone, holdRight
	case tcell.KeyEnter:
		return core.ActionConfirm, holdNone
	case tcell.KeyEscape, tcell.KeyBackspace, tcell.KeyBackspace2:
		return core.ActionBack, holdNone
	case tcell.KeyCtrlC:
		return core.ActionQuit, holdNone
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return core.ActionFire, holdNone
		case 'r', 'R':
			return core.ActionRestart, holdNone
		case 'q', 'Q':
			return core.ActionQuit, holdNone
		case 'w', 'W':
			return core.ActionUp, holdNone
		case 's', 'S':
			return core.ActionDown, holdNone
		case 'a', 'A':
			return core.ActionNone, holdLeft
		case 'd', 'D':
			return core.ActionNone, holdRight
		}
	}
	return core.ActionNone, holdNone
}

// holdState 終端機沒有「按住」的狀態，只能靠按鍵重複事件推測。
// 最後一次收到方向鍵後 holdTicks 個 tick 內視為仍按住。
type holdState struct {
	direction int
	lastTick  int
}

func (h *holdState) press(direction, tick int) {
	h.direction = direction
	h.lastTick = tick
}

func (h *holdState) sample(tick, holdTicks int) core.Held {
	if h.direction == holdNone || tick-h.lastTick >= holdTicks {
		h.direction = holdNone
		return core.Held{}
	}
	return core.Held{
		Left:  h.direction == holdLeft,
		Right: h.direction == holdRight,
	}
}
