package golf

// PlayerSummary is one row of a finished or in-progress scorecard.
type PlayerSummary struct {
	ID       int
	Name     string
	Style    string
	Color    string
	Strokes  []int
	Total    int
	ToPar    int
	Finished bool
	Winner   bool
}

// Summary is the scorecard of a session.
type Summary struct {
	Variant  Variant
	Control  Control
	Par      []int
	TotalPar int
	Ticks    uint64
	Over     bool
	Players  []PlayerSummary
}

// Summary builds the scorecard.
func (s *Session) Summary() Summary {
	sum := Summary{
		Variant:  s.cfg.Variant,
		Control:  s.cfg.Control,
		TotalPar: s.course.TotalPar(),
		Ticks:    s.tick,
		Over:     s.over,
	}
	for _, h := range s.course.Holes {
		sum.Par = append(sum.Par, h.Par)
	}
	w, _ := s.Winner()
	for _, p := range s.players {
		sum.Players = append(sum.Players, PlayerSummary{
			ID:       p.ID,
			Name:     p.Name,
			Style:    p.Skill.Name,
			Color:    p.Color,
			Strokes:  append([]int(nil), p.Strokes[:]...),
			Total:    p.Total,
			ToPar:    p.ToPar(s.course),
			Finished: p.Finished(),
			Winner:   w != nil && w.ID == p.ID,
		})
	}
	return sum
}

// Winner returns the winning row, if the round has one.
func (sum Summary) Winner() (PlayerSummary, bool) {
	for _, p := range sum.Players {
		if p.Winner {
			return p, true
		}
	}
	return PlayerSummary{}, false
}
