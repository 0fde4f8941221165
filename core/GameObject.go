package core

// Rect 畫面座標的矩形，左上角為原點
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) Left() int { return r.X }
func (r Rect) Right() int { return r.X + r.Width }
func (r Rect) Top() int { return r.Y }
func (r Rect) Bottom() int { return r.Y + r.Height }
func (r Rect) CenterX() int { return r.X + r.Width/2 }

// SetLeft moves the rectangle so its left edge sits at x.
func (r *Rect) SetLeft(x int) {
	r.X = x
}

// SetRight moves the rectangle so its right edge sits at x.
func (r *Rect) SetRight(x int) {
	r.X = x - r.Width
}

type Player struct {
	Rect
	Speed int
}

// MoveLeft / MoveRight 兩個方向是獨立判斷，同時按住會互相抵銷
func (p *Player) MoveLeft() {
	p.X -= p.Speed
}

func (p *Player) MoveRight() {
	p.X += p.Speed
}

// Clamp keeps the player inside [0, screenWidth].
func (p *Player) Clamp(screenWidth int) {
	if p.Left() < 0 {
		p.SetLeft(0)
	}
	if p.Right() > screenWidth {
		p.SetRight(screenWidth)
	}
}

const DirectionRight = 1
const DirectionLeft = -1

type Opponent struct {
	Rect
	Speed     int
	Direction int // 1 往右, -1 往左
	Alive     bool
	ShotTimer int // 距離上一發經過的 tick 數
}

// Move advances the opponent one tick and bounces it off the screen edges.
// It reports whether the direction flipped.
func (o *Opponent) Move(screenWidth int) bool {
	o.X += o.Speed * o.Direction

	if o.Left() < 0 {
		o.SetLeft(0)
		o.Direction = DirectionRight
		return true
	} else if o.Right() > screenWidth {
		o.SetRight(screenWidth)
		o.Direction = DirectionLeft
		return true
	}
	return false
}

type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerOpponent
)

func (o Owner) String() string {
	if o == OwnerOpponent {
		return "opponent"
	}
	return "player"
}

type Projectile struct {
	Rect
	VelY  int
	Owner Owner
}

func (p *Projectile) Advance() {
	p.Y += p.VelY
}

// IsOutside reports whether the projectile has left the screen in its direction of travel.
func (p *Projectile) IsOutside(screenHeight int) bool {
	if p.VelY < 0 {
		return p.Y < 0
	}
	return p.Y > screenHeight
}
