package golf

// PlayerView is the drawable state of one player.
type PlayerView struct {
	ID         int
	Name       string
	Color      string
	ColorIndex int
	Style      string
	Pos        Vec
	Hole       int // zero-based; HoleCount when finished
	Strokes    int // on the current hole
	Total      int
	Current    bool
	Finished   bool
}

// AimLine is the previewed shot direction.
type AimLine struct {
	From, To Vec
	Power    float64
}

// Frame is everything a renderer needs to draw one moment of a session.
type Frame struct {
	Tick      uint64
	Width     float64
	Height    float64
	HoleIndex int
	Hole      Hole
	Landscape []Obstacle
	Players   []PlayerView
	Ball      *Vec // rolling ball, physics variant only
	Aim       *AimLine
	Phase     Phase
	Variant   Variant
	Control   Control
	Message   string
	TotalPar  int
	Winner    string
}

// Renderer consumes frames. Implementations own the drawing surface.
type Renderer interface {
	Draw(f Frame)
}

// Render hands the current frame to r.
func (s *Session) Render(r Renderer) {
	r.Draw(s.Frame())
}

// Frame builds the drawable view of the current player's hole.
func (s *Session) Frame() Frame {
	f := Frame{
		Tick:      s.tick,
		Width:     s.course.Width,
		Height:    s.course.Height,
		Landscape: s.course.Landscape,
		Phase:     s.phase,
		Variant:   s.cfg.Variant,
		Control:   s.cfg.Control,
		Message:   s.message,
		TotalPar:  s.course.TotalPar(),
	}

	cur := s.Current()
	holeIdx := 0
	if cur != nil {
		holeIdx = min(cur.CurrentHole, HoleCount-1)
	}
	if holeIdx < len(s.course.Holes) {
		f.HoleIndex = holeIdx
		f.Hole = s.course.Holes[holeIdx]
	}

	for _, p := range s.players {
		v := PlayerView{
			ID:         p.ID,
			Name:       p.Name,
			Color:      p.Color,
			ColorIndex: p.ColorIndex,
			Style:      p.Skill.Name,
			Pos:        p.Position(),
			Hole:       p.CurrentHole,
			Total:      p.Total,
			Current:    p == cur,
			Finished:   p.Finished(),
		}
		if !v.Finished {
			v.Strokes = p.Strokes[p.CurrentHole]
		}
		f.Players = append(f.Players, v)
	}

	if s.phase == PhaseRolling {
		b := s.ball.Pos
		f.Ball = &b
	}
	if aim, ok := s.PlanPreview(); ok {
		f.Aim = &aim
	}
	if w, ok := s.Winner(); ok {
		f.Winner = w.Name
	}
	return f
}

// PlanPreview returns the line the current player is about to shoot along.
// For simulated players it is the noise-free planned aim.
func (s *Session) PlanPreview() (AimLine, bool) {
	p := s.Current()
	if p == nil || p.Finished() || s.phase != PhaseReady && s.phase != PhaseWaiting {
		return AimLine{}, false
	}
	if s.phase == PhaseWaiting && s.handoff {
		return AimLine{}, false
	}
	from := p.Position()
	if s.cfg.Control == ControlManual {
		return AimLine{
			From:  from,
			To:    Toward(from, s.aimAngle, s.aimPower*s.cfg.Rules.MaxShotDistance),
			Power: s.aimPower,
		}, true
	}
	hole := s.course.Holes[p.CurrentHole]
	aim, _ := s.planner.ChooseAim(from, hole.Cup, hole.Obstacles)
	return AimLine{From: from, To: aim}, true
}
