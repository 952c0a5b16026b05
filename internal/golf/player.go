package golf

import (
	"strings"
	"unicode/utf8"
)

// MaxNameLength is the longest accepted player name, in characters.
const MaxNameLength = 12

// Player is one participant in a round.
type Player struct {
	ID          int
	Name        string
	Color       string // hex colour from Palette
	ColorIndex  int
	Skill       SkillProfile
	Strokes     [HoleCount]int
	Positions   [HoleCount]Vec
	CurrentHole int
	Total       int
}

// NewPlayer places a player's ball on every tee of the course.
func NewPlayer(id int, name string, course *Course) *Player {
	p := &Player{ID: id, Name: name}
	for i := 0; i < HoleCount && i < len(course.Holes); i++ {
		p.Positions[i] = course.Holes[i].Tee
	}
	return p
}

// ValidateName trims a name and checks it is non-empty and short enough.
func ValidateName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}

// Finished reports whether the player has completed all holes.
func (p *Player) Finished() bool {
	return p.CurrentHole >= HoleCount
}

// Position returns the ball position on the current hole.
func (p *Player) Position() Vec {
	if p.Finished() {
		return p.Positions[HoleCount-1]
	}
	return p.Positions[p.CurrentHole]
}

func (p *Player) chargeStroke() {
	p.Strokes[p.CurrentHole]++
	p.Total++
}

// ToPar returns strokes relative to par over the holes played so far.
func (p *Player) ToPar(course *Course) int {
	diff := 0
	for i := 0; i < p.CurrentHole && i < len(course.Holes); i++ {
		diff += p.Strokes[i] - course.Holes[i].Par
	}
	return diff
}
