package golf

// Bounds is the playable rectangle with an inset used to clamp landings.
type Bounds struct {
	Width, Height float64
	Margin        float64
}

// Clamp pins p inside [Margin, Width-Margin] x [Margin, Height-Margin].
func (b Bounds) Clamp(p Vec) Vec {
	return V(
		clampF(p.X, b.Margin, b.Width-b.Margin),
		clampF(p.Y, b.Margin, b.Height-b.Margin),
	)
}

// Rules are the scoring constants for a round.
type Rules struct {
	CaptureRadius   float64 // landing within this distance of the cup holes out
	MercyStrokes    int     // strokes over par at which a hole is abandoned
	Margin          float64 // landing clamp inset from the course edge
	MaxShotDistance float64 // distance travelled at full power
}

// DefaultRules returns the stock scoring rules.
func DefaultRules() Rules {
	return Rules{
		CaptureRadius:   15,
		MercyStrokes:    3,
		Margin:          50,
		MaxShotDistance: 200,
	}
}

// Outcome is what a resolved shot did to the player's hole.
type Outcome int

const (
	OutcomeLie       Outcome = iota // ball at rest, hole still in play
	OutcomeHoled                    // captured by the cup
	OutcomeAbandoned                // mercy rule moved the player on
	OutcomeSkipped                  // player already finished; nothing happened
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLie:
		return "lie"
	case OutcomeHoled:
		return "holed"
	case OutcomeAbandoned:
		return "abandoned"
	case OutcomeSkipped:
		return "skipped"
	}
	return "unknown"
}

// ShotResult reports one resolved shot.
type ShotResult struct {
	Hole     int // zero-based index of the hole played
	From     Vec
	Landing  Vec
	Strokes  int // strokes on the hole after this shot
	Outcome  Outcome
	Finished bool // the player completed the round with this shot
}

// ApplyShot resolves an instant shot: the ball travels power*MaxShotDistance
// along shot.Angle, is clamped to bounds (walls stop, they do not bounce), a
// stroke is charged and the capture then mercy rules are checked.
func ApplyShot(p *Player, hole Hole, shot Shot, rules Rules, bounds Bounds) ShotResult {
	if p.Finished() {
		return ShotResult{Hole: p.CurrentHole, Outcome: OutcomeSkipped}
	}
	idx := p.CurrentHole
	from := p.Positions[idx]
	landing := bounds.Clamp(Toward(from, shot.Angle, shot.Power*rules.MaxShotDistance))

	p.chargeStroke()
	p.Positions[idx] = landing

	holed := Dist(landing, hole.Cup) <= rules.CaptureRadius
	res := settle(p, hole, rules, holed)
	res.From = from
	res.Landing = landing
	return res
}

// settle applies capture then mercy to a ball that has come to rest.
// Capture is checked first so one shot can never do both.
func settle(p *Player, hole Hole, rules Rules, holed bool) ShotResult {
	idx := p.CurrentHole
	res := ShotResult{Hole: idx, Strokes: p.Strokes[idx], Outcome: OutcomeLie}
	switch {
	case holed:
		res.Outcome = OutcomeHoled
		p.CurrentHole++
	case p.Strokes[idx] >= hole.Par+rules.MercyStrokes:
		res.Outcome = OutcomeAbandoned
		p.CurrentHole++
	}
	res.Finished = p.Finished()
	return res
}
