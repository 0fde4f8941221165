package core

import (
	"fmt"
	"io"
)

// Recorder 把每個 tick 的狀態寫成 payload，一行一筆
type Recorder struct {
	w       io.Writer
	tick    int
	roundId string
	over    bool
}

func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{w: w}
}

func (r *Recorder) Record(g *Game) error {
	if g.Round != nil && g.Round.RoundId != r.roundId {
		r.roundId = g.Round.RoundId
		r.over = false
		if err := r.write(generateRoundStartPayload(g.Round)); err != nil {
			return err
		}
	}

	if err := r.write(generateFramePayload(Snapshot(r.tick, g))); err != nil {
		return err
	}
	r.tick++

	if g.Round != nil && g.Round.isOver() && !r.over {
		r.over = true
		return r.write(generateRoundOverPayload(g.Round))
	}
	return nil
}

func (r *Recorder) write(payload string) error {
	if _, err := fmt.Fprintln(r.w, payload); err != nil {
		return fmt.Errorf("record payload: %w", err)
	}
	return nil
}
