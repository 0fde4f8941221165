package core

import (
	"fmt"
	"strconv"
	"strings"
)

const PayloadTerminator = "~"

const FrameSnapshotHeader = "FS" // Frame Snapshot 每個 tick 的狀態
const RoundStartHeader = "RS"    // Round Start 新的一局
const RoundOverHeader = "RO"     // Round Over 一局結束

// FrameSnapshot 一個 tick 結束時的狀態摘要
type FrameSnapshot struct {
	Tick          int
	Phase         Phase
	PlayerX       int
	OpponentX     int
	Direction     int
	Alive         bool
	ShotTimer     int
	PlayerBeams   int
	OpponentBeams int
}

func Snapshot(tick int, g *Game) FrameSnapshot {
	return FrameSnapshot{
		Tick:          tick,
		Phase:         g.Phase,
		PlayerX:       g.Player.X,
		OpponentX:     g.Opponent.X,
		Direction:     g.Opponent.Direction,
		Alive:         g.Opponent.Alive,
		ShotTimer:     g.Opponent.ShotTimer,
		PlayerBeams:   len(g.PlayerBeams),
		OpponentBeams: len(g.OpponentBeams),
	}
}

//tick, phase, playerX, opponentX, direction, alive, shotTimer, playerBeams, opponentBeams
func generateFramePayload(f FrameSnapshot) string {
	payload := fmt.Sprintf("%d,%d,%d,%d,%d,%d,%d,%d,%d", f.Tick, f.Phase,
		f.PlayerX, f.OpponentX, f.Direction, boolToInt(f.Alive), f.ShotTimer,
		f.PlayerBeams, f.OpponentBeams)
	return FrameSnapshotHeader + payload + PayloadTerminator
}

func generateRoundStartPayload(round *Round) string {
	payload := fmt.Sprintf("%s,%s", round.RoundId, round.Behavior)
	return RoundStartHeader + payload + PayloadTerminator
}

func generateRoundOverPayload(round *Round) string {
	payload := fmt.Sprintf("%s,%s,%d", round.RoundId, round.Cause, round.Ticks)
	return RoundOverHeader + payload + PayloadTerminator
}

// ParseFramePayload 解析 FS payload
func ParseFramePayload(payload string) (FrameSnapshot, error) {
	if len(payload) < 3 || !strings.HasPrefix(payload, FrameSnapshotHeader) ||
		!strings.HasSuffix(payload, PayloadTerminator) {
		return FrameSnapshot{}, fmt.Errorf("not a frame payload: %q", payload)
	}

	split := strings.Split(removeHeaderTerminator(payload), ",")
	if len(split) != 9 {
		return FrameSnapshot{}, fmt.Errorf("frame payload has %d fields, want 9", len(split))
	}

	values := make([]int, len(split))
	for i, field := range split {
		v, err := strconv.Atoi(field)
		if err != nil {
			return FrameSnapshot{}, fmt.Errorf("frame payload field %d: %w", i, err)
		}
		values[i] = v
	}

	return FrameSnapshot{
		Tick:          values[0],
		Phase:         Phase(values[1]),
		PlayerX:       values[2],
		OpponentX:     values[3],
		Direction:     values[4],
		Alive:         values[5] != 0,
		ShotTimer:     values[6],
		PlayerBeams:   values[7],
		OpponentBeams: values[8],
	}, nil
}

func removeHeaderTerminator(payload string) string {
	return payload[2 : len(payload)-1]
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
