package window

import (
	"Dodgeball/core"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const Title = "Dodgeball!"

var (
	white    = color.RGBA{255, 255, 255, 255}
	red      = color.RGBA{255, 0, 0, 255}
	blue     = color.RGBA{0, 0, 255, 255}
	green    = color.RGBA{0, 255, 0, 255}
	gray     = color.RGBA{150, 150, 150, 255}
	yellow   = color.RGBA{255, 255, 0, 255} // 選單目前選項
	darkGray = color.RGBA{50, 50, 50, 255}  // 選單選項背景
)

// Window 以 Ebitengine 視窗執行遊戲，ebiten 負責固定 TPS 的節奏
type Window struct {
	game        *core.Game
	playerImg   *ebiten.Image
	opponentImg *ebiten.Image
	faces       faces
	banner      banner
	debug       bool

	// AfterTick 每個 tick 模擬結束後呼叫
	AfterTick func(g *core.Game) error
}

func New(game *core.Game, debug bool) *Window {
	s := game.Settings
	return &Window{
		game:        game,
		playerImg:   loadSprite(s.PlayerSprite, s.PlayerWidth, s.PlayerHeight, green),
		opponentImg: loadSprite(s.OpponentSprite, s.OpponentWidth, s.OpponentHeight, red),
		faces:       loadFaces(),
		banner:      banner{y: bannerStartY},
		debug:       debug,
	}
}

func Run(w *Window) error {
	s := w.game.Settings
	ebiten.SetWindowSize(s.ScreenWidth, s.ScreenHeight)
	ebiten.SetWindowTitle(Title)
	ebiten.SetTPS(s.TickRate)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

func (w *Window) Update() error {
	actions := pollActions(inpututil.IsKeyJustPressed)
	held := pollHeld(ebiten.IsKeyPressed)

	if !w.game.Tick(actions, held) {
		return ebiten.Termination
	}
	if w.AfterTick != nil {
		if err := w.AfterTick(w.game); err != nil {
			return err
		}
	}

	s := w.game.Settings
	w.banner.update(w.game.Cause(), float32(s.ScreenHeight/2-30), 1/float32(s.TickRate))
	return nil
}

func (w *Window) Layout(_, _ int) (int, int) {
	return w.game.Settings.ScreenWidth, w.game.Settings.ScreenHeight
}

func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if w.game.Phase == core.PhaseMenu {
		w.drawMenu(screen)
	} else {
		w.drawPlayfield(screen)
	}

	if w.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), 4, 4)
	}
}

func drawImageAt(dst, img *ebiten.Image, x, y int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(img, op)
}

func drawRect(dst *ebiten.Image, r core.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), clr, false)
}

func (w *Window) drawPlayfield(screen *ebiten.Image) {
	g := w.game
	cx := g.Settings.ScreenWidth / 2

	drawImageAt(screen, w.playerImg, g.Player.X, g.Player.Y)
	if g.Opponent.Alive {
		drawImageAt(screen, w.opponentImg, g.Opponent.X, g.Opponent.Y)
	}

	switch g.Cause() {
	case core.CauseOpponentDefeated:
		drawCentered(screen, "You Win!", w.faces.banner, cx, int(w.banner.y), green)
		drawCentered(screen, "Press R to Restart", w.faces.small, cx, int(w.banner.y)+60, white)
	case core.CausePlayerStruck:
		drawCentered(screen, "Game Over!", w.faces.banner, cx, int(w.banner.y), gray)
		drawCentered(screen, "Press R to Restart", w.faces.small, cx, int(w.banner.y)+60, white)
	}

	for _, beam := range g.PlayerBeams {
		drawRect(screen, beam.Rect, blue)
	}
	for _, beam := range g.OpponentBeams {
		drawRect(screen, beam.Rect, red)
	}
}

func (w *Window) drawMenu(screen *ebiten.Image) {
	menu := w.game.Menu
	s := w.game.Settings
	cx, cy := s.ScreenWidth/2, s.ScreenHeight/2

	drawCentered(screen, "Dodgeball", w.faces.title, cx, s.ScreenHeight/4, white)

	if menu.Mode == core.MenuShowingDescription {
		w.drawDescription(screen, menu.Highlighted())
		return
	}

	drawCentered(screen, "Choose the opponent's AI:", w.faces.menu, cx, cy-80, white)

	for i, option := range menu.Options {
		y := cy - 20 + i*50
		clr := color.Color(white)
		if i == menu.Index {
			clr = yellow
			const padding = 10
			tw := measure(w.faces.menu, option.Label)
			th := lineHeight(w.faces.menu)
			vector.DrawFilledRect(screen, float32(cx-tw/2-padding), float32(y-th/2-padding),
				float32(tw+2*padding), float32(th+2*padding), darkGray, true)
		}
		drawCentered(screen, option.Label, w.faces.menu, cx, y, clr)
	}
}

func (w *Window) drawDescription(screen *ebiten.Image, option core.MenuOption) {
	s := w.game.Settings
	cx, cy := s.ScreenWidth/2, s.ScreenHeight/2

	columns := (s.ScreenWidth - 80) / max(1, measure(w.faces.small, "n"))
	lines := core.WrapText(option.Description, columns)
	lh := lineHeight(w.faces.small) + 4

	top := cy - len(lines)*lh/2
	drawCentered(screen, option.Label, w.faces.menu, cx, top-50, yellow)
	for i, line := range lines {
		drawCentered(screen, line, w.faces.small, cx, top+i*lh, white)
	}
	drawCentered(screen, "Enter to start, Esc to go back", w.faces.small, cx, top+len(lines)*lh+40, gray)
}
