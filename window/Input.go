package window

import (
	"Dodgeball/core"

	"github.com/hajimehoshi/ebiten/v2"
)

type keyAction struct {
	key    ebiten.Key
	action core.Action
}

var actionKeys = []keyAction{
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeyEnter, core.ActionConfirm},
	{ebiten.KeyNumpadEnter, core.ActionConfirm},
	{ebiten.KeyEscape, core.ActionBack},
	{ebiten.KeyBackspace, core.ActionBack},
	{ebiten.KeySpace, core.ActionFire},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyQ, core.ActionQuit},
}

var leftKeys = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
var rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}

// pollActions 這個 tick 剛按下的鍵，justPressed 通常是 inpututil.IsKeyJustPressed
func pollActions(justPressed func(ebiten.Key) bool) []core.Action {
	var actions []core.Action
	for _, ka := range actionKeys {
		if justPressed(ka.key) {
			actions = append(actions, ka.action)
		}
	}
	return actions
}

// pollHeld pressed 通常是 ebiten.IsKeyPressed
func pollHeld(pressed func(ebiten.Key) bool) core.Held {
	return core.Held{
		Left:  anyPressed(pressed, leftKeys),
		Right: anyPressed(pressed, rightKeys),
	}
}

func anyPressed(pressed func(ebiten.Key) bool, keys []ebiten.Key) bool {
	for _, k := range keys {
		if pressed(k) {
			return true
		}
	}
	return false
}
