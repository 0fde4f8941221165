package core

// Overlaps 標準 AABB 判斷，只碰到邊不算重疊
func Overlaps(a, b Rect) bool {
	return a.Left() < b.Right() && a.Right() > b.Left() &&
		a.Top() < b.Bottom() && a.Bottom() > b.Top()
}

func isTouchOpponent(beam Projectile, opponent *Opponent) bool {
	return opponent.Alive && Overlaps(beam.Rect, opponent.Rect)
}

func isTouchPlayer(beam Projectile, player *Player) bool {
	return Overlaps(beam.Rect, player.Rect)
}
