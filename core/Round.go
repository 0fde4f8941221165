package core

import (
	"time"

	"github.com/google/uuid"
)

// Round 一局遊戲，從 restart 開始到有人被擊中為止
type Round struct {
	RoundId    string
	Behavior   string
	CreateDate string
	Ticks      int
	Cause      EndCause
}

func newRound(behavior string) *Round {
	return &Round{
		RoundId:    uuid.NewString(),
		Behavior:   behavior,
		CreateDate: time.Now().Format("2006-01-02 15:04"),
	}
}

func (r *Round) isOver() bool {
	return r.Cause != CauseNone
}
