package core

import (
	"Dodgeball/logger"
	"fmt"
)

type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseEnded:
		return "ended"
	default:
		return "menu"
	}
}

type EndCause int

const (
	CauseNone EndCause = iota
	CauseOpponentDefeated
	CausePlayerStruck
)

func (c EndCause) String() string {
	switch c {
	case CauseOpponentDefeated:
		return "opponent-defeated"
	case CausePlayerStruck:
		return "player-struck"
	default:
		return "none"
	}
}

// Game 整個遊戲狀態，只由主迴圈持有與修改，繪圖端只讀取
type Game struct {
	Settings Settings
	Phase    Phase
	Menu     *Menu
	Selected MenuOption

	Player        Player
	Opponent      Opponent
	PlayerBeams   []Projectile
	OpponentBeams []Projectile

	Round *Round
}

func NewGame(settings Settings) *Game {
	g := &Game{
		Settings: settings,
		Phase:    PhaseMenu,
		Menu:     NewMenu(OpponentBehaviors, settings.MenuDescribe),
	}
	g.resetEntities()
	return g
}

// Cause 目前這局的結束原因，還沒結束時為 CauseNone
func (g *Game) Cause() EndCause {
	if g.Round == nil {
		return CauseNone
	}
	return g.Round.Cause
}

// Tick 推進一個 frame：先處理這個 frame 收到的事件，再用按住的方向鍵更新模擬。
// 回傳 false 代表收到離開指令，呼叫端應立即結束迴圈（不再繪圖）。
func (g *Game) Tick(events []Action, held Held) bool {
	for _, action := range events {
		if !g.Handle(action) {
			return false
		}
	}
	g.Update(held)
	return true
}

// Handle 處理單一離散事件，回傳 false 代表離開
func (g *Game) Handle(action Action) bool {
	if action == ActionQuit {
		logger.Log.Info(fmt.Sprintf(logger.QuitMsg, g.Phase))
		return false
	}

	switch g.Phase {
	case PhaseMenu:
		switch action {
		case ActionUp:
			g.Menu.Up()
		case ActionDown:
			g.Menu.Down()
		case ActionBack:
			g.Menu.Back()
		case ActionConfirm:
			if g.Menu.Confirm() {
				g.selectBehavior(g.Menu.Highlighted())
				g.Restart()
			}
		}

	case PhasePlaying:
		if action == ActionFire {
			g.Fire()
		}

	case PhaseEnded:
		if action == ActionRestart {
			g.Restart()
		}
	}
	return true
}

func (g *Game) selectBehavior(option MenuOption) {
	g.Selected = option
	logger.Log.Info(fmt.Sprintf(logger.SelectedBehaviorMsg, option.Label))
	if option.Label != RuleBased {
		logger.Log.Warn(fmt.Sprintf(logger.BehaviorStubMsg, option.Label, RuleBased))
	}
}

// Restart 唯一的重置點，也用來開始第一局
func (g *Game) Restart() {
	previous := g.Round
	g.resetEntities()
	g.Round = newRound(g.Selected.Label)
	g.Phase = PhasePlaying

	if previous != nil {
		logger.Log.Info(fmt.Sprintf(logger.RoundRestartMsg, previous.RoundId, g.Round.RoundId))
	}
	logger.Log.WithRound(g.Round.RoundId).Info(fmt.Sprintf(logger.RoundStartMsg, g.Round.RoundId, g.Round.Behavior))
}

func (g *Game) resetEntities() {
	s := g.Settings

	g.Player = Player{
		Rect:  Rect{X: s.initialPlayerX(), Y: s.PlayerY, Width: s.PlayerWidth, Height: s.PlayerHeight},
		Speed: s.PlayerSpeed,
	}
	g.Opponent = Opponent{
		Rect:      Rect{X: s.initialOpponentX(), Y: s.OpponentY, Width: s.OpponentWidth, Height: s.OpponentHeight},
		Speed:     s.OpponentSpeed,
		Direction: DirectionRight,
		Alive:     true,
		ShotTimer: 0,
	}
	g.PlayerBeams = []Projectile{}
	g.OpponentBeams = []Projectile{}
}

// Fire 從玩家頂端中央發射一發光束
func (g *Game) Fire() {
	if g.Phase != PhasePlaying {
		return
	}
	s := g.Settings
	g.PlayerBeams = append(g.PlayerBeams, Projectile{
		Rect:  Rect{X: g.Player.CenterX() - s.BeamWidth/2, Y: g.Player.Top(), Width: s.BeamWidth, Height: s.BeamHeight},
		VelY:  s.PlayerBeamSpeed,
		Owner: OwnerPlayer,
	})
}

func (g *Game) opponentFire() {
	s := g.Settings
	g.OpponentBeams = append(g.OpponentBeams, Projectile{
		Rect:  Rect{X: g.Opponent.CenterX() - s.BeamWidth/2, Y: g.Opponent.Bottom(), Width: s.BeamWidth, Height: s.BeamHeight},
		VelY:  s.OpponentBeamSpeed,
		Owner: OwnerOpponent,
	})
}

// Update 模擬前進一個 tick，結束後不再移動或射擊
func (g *Game) Update(held Held) {
	if g.Phase != PhasePlaying {
		return
	}
	g.Round.Ticks++

	g.updatePlayer(held)
	g.updateOpponent()
	g.updatePlayerBeams()
	g.updateOpponentBeams()
}

func (g *Game) updatePlayer(held Held) {
	if held.Left {
		g.Player.MoveLeft()
	}
	if held.Right {
		g.Player.MoveRight()
	}
	g.Player.Clamp(g.Settings.ScreenWidth)
}

func (g *Game) updateOpponent() {
	if !g.Opponent.Alive {
		return
	}
	g.Opponent.Move(g.Settings.ScreenWidth)

	//射擊計時，以 tick 計算不是實際時間
	g.Opponent.ShotTimer += 1
	if g.Opponent.ShotTimer >= g.Settings.ShotInterval {
		g.Opponent.ShotTimer = 0
		g.opponentFire()
	}
}

func (g *Game) updatePlayerBeams() {
	kept := make([]Projectile, 0, len(g.PlayerBeams))
	for _, beam := range g.PlayerBeams {
		beam.Advance()

		if isTouchOpponent(beam, &g.Opponent) {
			g.Opponent.Alive = false
			g.end(CauseOpponentDefeated)
			continue
		}
		if beam.IsOutside(g.Settings.ScreenHeight) {
			continue
		}
		kept = append(kept, beam)
	}
	g.PlayerBeams = kept
}

func (g *Game) updateOpponentBeams() {
	kept := make([]Projectile, 0, len(g.OpponentBeams))
	for _, beam := range g.OpponentBeams {
		beam.Advance()

		if isTouchPlayer(beam, &g.Player) {
			g.end(CausePlayerStruck)
			continue
		}
		if beam.IsOutside(g.Settings.ScreenHeight) {
			continue
		}
		kept = append(kept, beam)
	}
	g.OpponentBeams = kept
}

// end 第一個結束原因為準，同一個 tick 內之後的碰撞不會覆蓋
func (g *Game) end(cause EndCause) {
	if g.Round.isOver() {
		return
	}
	g.Round.Cause = cause
	g.Phase = PhaseEnded

	entry := logger.Log.WithRound(g.Round.RoundId)
	if cause == CauseOpponentDefeated {
		entry.Info(fmt.Sprintf(logger.OpponentDefeatedMsg, g.Round.RoundId, g.Round.Ticks))
	} else {
		entry.Info(fmt.Sprintf(logger.PlayerStruckMsg, g.Round.RoundId, g.Round.Ticks))
	}
}
