package core

// Action 離散的按鍵事件，按鍵對應由前端決定
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionConfirm
	ActionBack
	ActionFire
	ActionRestart
	ActionQuit
)

var actionNames = [...]string{"none", "up", "down", "confirm", "back", "fire", "restart", "quit"}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// Held 每個 tick 取樣一次的持續按鍵狀態
type Held struct {
	Left  bool
	Right bool
}
