package core

import "testing"

func newPlayingGame(t *testing.T) *Game {
	t.Helper()
	s := DefaultSettings()
	s.MenuDescribe = false
	g := NewGame(s)
	if !g.Handle(ActionConfirm) {
		t.Fatal("confirm should not quit")
	}
	if g.Phase != PhasePlaying {
		t.Fatalf("phase = %v, want playing", g.Phase)
	}
	return g
}

func TestMenuConfirmWithDescription(t *testing.T) {
	g := NewGame(DefaultSettings())
	g.Handle(ActionDown)
	g.Handle(ActionConfirm)

	if g.Phase != PhaseMenu || g.Menu.Mode != MenuShowingDescription {
		t.Fatalf("first confirm: phase=%v mode=%v, want menu/showing description", g.Phase, g.Menu.Mode)
	}

	g.Handle(ActionConfirm)
	if g.Phase != PhasePlaying {
		t.Fatalf("second confirm: phase = %v, want playing", g.Phase)
	}
	if g.Selected.Label != OpponentBehaviors[1].Label {
		t.Errorf("selected = %q, want %q", g.Selected.Label, OpponentBehaviors[1].Label)
	}
	if g.Round == nil || g.Round.RoundId == "" {
		t.Fatal("round should be started with an id")
	}
	if g.Round.Behavior != OpponentBehaviors[1].Label {
		t.Errorf("round behavior = %q", g.Round.Behavior)
	}
}

func TestMenuBackFromDescription(t *testing.T) {
	g := NewGame(DefaultSettings())
	g.Handle(ActionConfirm)
	g.Handle(ActionBack)

	if g.Menu.Mode != MenuBrowsing || g.Phase != PhaseMenu {
		t.Errorf("mode=%v phase=%v, want browsing/menu", g.Menu.Mode, g.Phase)
	}
}

func TestQuitStopsBeforeUpdate(t *testing.T) {
	for _, phase := range []string{"menu", "playing", "ended"} {
		t.Run(phase, func(t *testing.T) {
			var g *Game
			switch phase {
			case "menu":
				g = NewGame(DefaultSettings())
			case "playing":
				g = newPlayingGame(t)
			case "ended":
				g = newPlayingGame(t)
				g.end(CausePlayerStruck)
			}
			x := g.Player.X

			if g.Tick([]Action{ActionQuit}, Held{Right: true}) {
				t.Error("Tick should report quit")
			}
			if g.Player.X != x {
				t.Error("no simulation should run on the quit tick")
			}
		})
	}
}

func TestFireOnlyWhilePlaying(t *testing.T) {
	g := NewGame(DefaultSettings())
	g.Fire()
	if len(g.PlayerBeams) != 0 {
		t.Fatal("fire in menu should be ignored")
	}

	g = newPlayingGame(t)
	g.Handle(ActionFire)
	if len(g.PlayerBeams) != 1 {
		t.Fatalf("beams = %d, want 1", len(g.PlayerBeams))
	}
	beam := g.PlayerBeams[0]
	if beam.X != 318 || beam.Y != 500 || beam.Width != 5 || beam.Height != 20 || beam.Owner != OwnerPlayer {
		t.Errorf("beam = %+v, want centered on the player's top edge", beam)
	}

	g.end(CauseOpponentDefeated)
	g.Handle(ActionFire)
	if len(g.PlayerBeams) != 1 {
		t.Error("fire after the round ended should be ignored")
	}
}

func TestPlayerMovementStaysOnScreen(t *testing.T) {
	g := newPlayingGame(t)
	g.Opponent.Alive = false

	for i := 0; i < 100; i++ {
		g.Tick(nil, Held{Left: true})
		if g.Player.X < 0 || g.Player.Right() > g.Settings.ScreenWidth {
			t.Fatalf("tick %d: player x=%d off screen", i, g.Player.X)
		}
	}
	if g.Player.X != 0 {
		t.Errorf("X = %d, want 0", g.Player.X)
	}

	for i := 0; i < 100; i++ {
		g.Tick(nil, Held{Right: true})
	}
	if g.Player.X != 540 {
		t.Errorf("X = %d, want 540", g.Player.X)
	}

	g.Tick(nil, Held{Left: true, Right: true})
	if g.Player.X != 540 {
		t.Errorf("both held: X = %d, want 540", g.Player.X)
	}
}

func TestOpponentShotCadence(t *testing.T) {
	g := newPlayingGame(t)
	g.Player.Y = 10000 // out of the line of fire

	spawnY := g.Opponent.Bottom() + g.Settings.OpponentBeamSpeed
	var spawnTicks []int
	for tick := 1; tick <= 600; tick++ {
		before := len(g.OpponentBeams)
		g.Tick(nil, Held{})

		n := len(g.OpponentBeams)
		if n > 0 && g.OpponentBeams[n-1].Y == spawnY {
			spawnTicks = append(spawnTicks, tick)
			if n > before+1 {
				t.Fatalf("tick %d: more than one beam spawned", tick)
			}
		}
	}

	if len(spawnTicks) != 10 {
		t.Fatalf("spawned %d beams in 600 ticks, want 10: %v", len(spawnTicks), spawnTicks)
	}
	for i, tick := range spawnTicks {
		if want := (i + 1) * 60; tick != want {
			t.Errorf("shot %d at tick %d, want %d", i, tick, want)
		}
	}
}

func TestOpponentBeamSpawnsBelowOpponent(t *testing.T) {
	g := newPlayingGame(t)
	g.Player.Y = 10000

	for i := 0; i < 60; i++ {
		g.Tick(nil, Held{})
	}
	if len(g.OpponentBeams) != 1 {
		t.Fatalf("beams = %d, want 1", len(g.OpponentBeams))
	}
	beam := g.OpponentBeams[0]
	if beam.X != g.Opponent.CenterX()-2 {
		t.Errorf("beam x = %d, opponent center = %d", beam.X, g.Opponent.CenterX())
	}
	if beam.Y != g.Opponent.Bottom()+7 {
		t.Errorf("beam y = %d, want %d", beam.Y, g.Opponent.Bottom()+7)
	}
	if beam.Owner != OwnerOpponent || g.Opponent.ShotTimer != 0 {
		t.Errorf("owner=%v timer=%d", beam.Owner, g.Opponent.ShotTimer)
	}
}

func TestNoShotsWhenNotAliveOrNotPlaying(t *testing.T) {
	g := NewGame(DefaultSettings())
	for i := 0; i < 120; i++ {
		g.Tick(nil, Held{})
	}
	if len(g.OpponentBeams) != 0 || g.Opponent.ShotTimer != 0 || g.Opponent.X != 270 {
		t.Error("nothing should move or shoot in the menu")
	}

	g = newPlayingGame(t)
	g.Opponent.Alive = false
	for i := 0; i < 120; i++ {
		g.Tick(nil, Held{})
	}
	if len(g.OpponentBeams) != 0 || g.Opponent.ShotTimer != 0 || g.Opponent.X != 270 {
		t.Error("a defeated opponent should not move or shoot")
	}
}

func TestPlayerBeamRemovedAfterLeavingScreen(t *testing.T) {
	g := newPlayingGame(t)

	// fired on tick 0, start y 500, speed -10: gone by tick ceil(500/10) = 50
	g.Tick([]Action{ActionFire}, Held{})
	for tick := 1; tick < 50; tick++ {
		g.Tick(nil, Held{})
	}
	if len(g.PlayerBeams) != 1 || g.PlayerBeams[0].Y != 0 {
		t.Fatalf("after tick 49: beams = %+v, want one beam at y=0", g.PlayerBeams)
	}

	g.Tick(nil, Held{})
	if len(g.PlayerBeams) != 0 {
		t.Errorf("after tick 50: beams = %d, want 0", len(g.PlayerBeams))
	}
	if g.Phase != PhasePlaying {
		t.Errorf("phase = %v, want playing", g.Phase)
	}
}

func TestOpponentDefeated(t *testing.T) {
	g := newPlayingGame(t)
	g.Opponent.X = 270
	g.PlayerBeams = []Projectile{
		{Rect: Rect{X: 310, Y: 60, Width: 5, Height: 20}, VelY: -10, Owner: OwnerPlayer},
		{Rect: Rect{X: 10, Y: 300, Width: 5, Height: 20}, VelY: -10, Owner: OwnerPlayer},
	}

	g.Tick(nil, Held{})

	if g.Phase != PhaseEnded || g.Cause() != CauseOpponentDefeated {
		t.Fatalf("phase=%v cause=%v, want ended/opponent-defeated", g.Phase, g.Cause())
	}
	if g.Opponent.Alive {
		t.Error("opponent should be marked not alive")
	}
	if len(g.PlayerBeams) != 1 || g.PlayerBeams[0].X != 10 {
		t.Errorf("only the hitting beam should be removed, got %+v", g.PlayerBeams)
	}
}

func TestPlayerStruck(t *testing.T) {
	g := newPlayingGame(t)
	g.OpponentBeams = []Projectile{
		{Rect: Rect{X: 300, Y: 480, Width: 5, Height: 20}, VelY: 7, Owner: OwnerOpponent},
	}

	g.Tick(nil, Held{})

	if g.Phase != PhaseEnded || g.Cause() != CausePlayerStruck {
		t.Fatalf("phase=%v cause=%v, want ended/player-struck", g.Phase, g.Cause())
	}
	if len(g.OpponentBeams) != 0 {
		t.Error("the hitting beam should be removed")
	}
	if !g.Opponent.Alive {
		t.Error("opponent should still be alive")
	}
}

func TestFirstEndCauseWins(t *testing.T) {
	g := newPlayingGame(t)
	g.PlayerBeams = []Projectile{
		{Rect: Rect{X: 310, Y: 60, Width: 5, Height: 20}, VelY: -10, Owner: OwnerPlayer},
	}
	g.OpponentBeams = []Projectile{
		{Rect: Rect{X: 300, Y: 480, Width: 5, Height: 20}, VelY: 7, Owner: OwnerOpponent},
	}

	g.Tick(nil, Held{})

	if g.Cause() != CauseOpponentDefeated {
		t.Errorf("cause = %v, want opponent-defeated", g.Cause())
	}
	if len(g.PlayerBeams) != 0 || len(g.OpponentBeams) != 0 {
		t.Error("both hitting beams should be removed")
	}
}

func TestEndedFreezesSimulation(t *testing.T) {
	g := newPlayingGame(t)
	for i := 0; i < 30; i++ {
		g.Tick(nil, Held{})
	}
	g.end(CausePlayerStruck)

	playerX, opponentX, timer, ticks := g.Player.X, g.Opponent.X, g.Opponent.ShotTimer, g.Round.Ticks
	for i := 0; i < 120; i++ {
		g.Tick([]Action{ActionFire}, Held{Right: true})
	}

	if g.Player.X != playerX || g.Opponent.X != opponentX || g.Opponent.ShotTimer != timer {
		t.Error("entities moved after the round ended")
	}
	if len(g.PlayerBeams) != 0 || len(g.OpponentBeams) != 0 {
		t.Error("beams spawned after the round ended")
	}
	if g.Round.Ticks != ticks {
		t.Errorf("round ticks advanced from %d to %d", ticks, g.Round.Ticks)
	}
}

func TestRestart(t *testing.T) {
	g := newPlayingGame(t)
	for i := 0; i < 90; i++ {
		g.Tick([]Action{ActionFire}, Held{Left: true})
	}
	g.Opponent.Alive = false
	g.end(CauseOpponentDefeated)
	oldRound := g.Round.RoundId

	g.Handle(ActionRestart)

	if g.Phase != PhasePlaying || g.Cause() != CauseNone {
		t.Fatalf("phase=%v cause=%v, want playing/none", g.Phase, g.Cause())
	}
	if g.Player.X != 270 || g.Opponent.X != 270 {
		t.Errorf("player x=%d opponent x=%d, want 270/270", g.Player.X, g.Opponent.X)
	}
	if g.Opponent.Direction != DirectionRight || g.Opponent.ShotTimer != 0 || !g.Opponent.Alive {
		t.Errorf("opponent = %+v", g.Opponent)
	}
	if len(g.PlayerBeams) != 0 || len(g.OpponentBeams) != 0 {
		t.Error("projectile collections should be empty")
	}
	if g.Round.RoundId == oldRound || g.Round.Ticks != 0 {
		t.Error("restart should begin a fresh round")
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := newPlayingGame(t)
	g.Tick(nil, Held{Right: true})
	round := g.Round.RoundId

	g.Handle(ActionRestart)
	if g.Round.RoundId != round || g.Player.X == 270 {
		t.Error("restart should only be accepted after the round ended")
	}
}
