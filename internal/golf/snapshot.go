package golf

import "math"

// Snapshot captures session state for determinism testing and replay checks.
// Positions are stored as float bit patterns so equal snapshots hash equally.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Current   int
	Waiting   int
	Active    bool
	Over      bool
	BallMoves bool
	BallX     uint64
	BallY     uint64

	// Per player, 5 values: ID, CurrentHole, Total, X bits, Y bits.
	PlayerData []uint64
	// Per player, HoleCount stroke counts.
	StrokeData []int
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      s.tick,
		Phase:     s.phase,
		Current:   s.current,
		Waiting:   s.waiting,
		Active:    s.active,
		Over:      s.over,
		BallMoves: s.ball.Moving,
		BallX:     math.Float64bits(s.ball.Pos.X),
		BallY:     math.Float64bits(s.ball.Pos.Y),
	}
	for _, p := range s.players {
		pos := p.Position()
		snap.PlayerData = append(snap.PlayerData,
			uint64(p.ID), //#nosec G115 -- ids are positive
			uint64(p.CurrentHole),
			uint64(p.Total),
			math.Float64bits(pos.X),
			math.Float64bits(pos.Y),
		)
		snap.StrokeData = append(snap.StrokeData, p.Strokes[:]...)
	}
	return snap
}

// Hash folds the snapshot into a single value.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Current) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Waiting) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.Active)
	h = h*31 + boolBit(snap.Over)
	h = h*31 + boolBit(snap.BallMoves)
	h = h*31 + snap.BallX
	h = h*31 + snap.BallY
	for _, v := range snap.PlayerData {
		h = h*31 + v
	}
	for _, v := range snap.StrokeData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
