package window

import (
	"Dodgeball/core"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const bannerStartY = -80
const bannerDuration = 0.6 // 秒

// banner 結束訊息從畫面上方掉下來
type banner struct {
	tween *gween.Tween
	cause core.EndCause
	y     float32
}

func (b *banner) update(cause core.EndCause, targetY, dt float32) {
	if cause == core.CauseNone {
		b.tween = nil
		b.cause = core.CauseNone
		b.y = bannerStartY
		return
	}
	if b.tween == nil || b.cause != cause {
		b.cause = cause
		b.tween = gween.New(bannerStartY, targetY, bannerDuration, ease.OutBounce)
	}
	b.y, _ = b.tween.Update(dt)
}
