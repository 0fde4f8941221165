package terminal

import (
	"Dodgeball/core"
	"fmt"
	"time"

	"github.com/gdamore/tcell"
)

const BlockSymbol = 0x2588 // 角色方塊符號
const BeamSymbol = '|'     // 光束符號

// Terminal 用 tcell 畫面執行遊戲
type Terminal struct {
	screen tcell.Screen
	game   *core.Game
	events chan tcell.Event
	held   holdState
	tick   int

	// AfterTick 每個 tick 模擬結束、繪圖之前呼叫
	AfterTick func(g *core.Game) error
}

func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal screen: %w", err)
	}

	defaultStyle := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	screen.SetStyle(defaultStyle)
	screen.HideCursor()
	return screen, nil
}

func New(screen tcell.Screen, game *core.Game) *Terminal {
	return &Terminal{
		screen: screen,
		game:   game,
		events: make(chan tcell.Event, 64),
	}
}

// Run 固定頻率的遊戲迴圈，收到離開指令時回傳
func (t *Terminal) Run() error {
	t.initUserInput()

	ticker := time.NewTicker(time.Second / time.Duration(t.game.Settings.TickRate))
	defer ticker.Stop()

	for {
		running, err := t.step()
		if err != nil || !running {
			return err
		}
		<-ticker.C
	}
}

// step 處理輸入、推進一個 tick、繪圖
func (t *Terminal) step() (bool, error) {
	actions := t.readInput()
	held := t.held.sample(t.tick, t.game.Settings.HoldTicks)

	if !t.game.Tick(actions, held) {
		return false, nil
	}
	if t.AfterTick != nil {
		if err := t.AfterTick(t.game); err != nil {
			return false, err
		}
	}

	t.drawView()
	t.tick++
	return true, nil
}

func (t *Terminal) initUserInput() {
	//建立一個goroutine去監聽鍵盤的事件，畫面關閉時 PollEvent 回傳 nil
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			t.events <- ev
		}
	}()
}

// readInput 取出這個 tick 之前累積的所有事件，不會阻塞
func (t *Terminal) readInput() []core.Action {
	var actions []core.Action
	for {
		select {
		case ev := <-t.events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				t.screen.Sync()
			case *tcell.EventKey:
				action, direction := translateKey(ev)
				if direction != holdNone {
					t.held.press(direction, t.tick)
				}
				if action != core.ActionNone {
					actions = append(actions, action)
				}
			}
		default:
			return actions
		}
	}
}
