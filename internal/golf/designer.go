package golf

import "fmt"

// Designer obstacle footprint and grab radius for tee/cup dragging.
const (
	DesignObstacleW = 100
	DesignObstacleH = 80
	GrabRadius      = 30
)

// FairwayPreset names a canned fairway shape.
type FairwayPreset string

const (
	PresetStraight    FairwayPreset = "straight"
	PresetDoglegLeft  FairwayPreset = "dogleg-left"
	PresetDoglegRight FairwayPreset = "dogleg-right"
	PresetSCurve      FairwayPreset = "s-curve"
	PresetSharpLeft   FairwayPreset = "sharp-left"
	PresetSharpRight  FairwayPreset = "sharp-right"
	PresetUTurn       FairwayPreset = "u-turn"
)

// Presets lists the fairway presets in menu order.
var Presets = []FairwayPreset{
	PresetStraight, PresetDoglegLeft, PresetDoglegRight, PresetSCurve,
	PresetSharpLeft, PresetSharpRight, PresetUTurn,
}

// SetPar changes a hole's par.
func (c *Course) SetPar(i, par int) error {
	h, err := c.Hole(i)
	if err != nil {
		return err
	}
	if par < 1 {
		return fmt.Errorf("%w: %d", ErrBadPar, par)
	}
	h.Par = par
	return nil
}

// MoveTee relocates a hole's tee.
func (c *Course) MoveTee(i int, p Vec) error {
	h, err := c.Hole(i)
	if err != nil {
		return err
	}
	h.Tee = p
	return nil
}

// MoveCup relocates a hole's cup.
func (c *Course) MoveCup(i int, p Vec) error {
	h, err := c.Hole(i)
	if err != nil {
		return err
	}
	h.Cup = p
	return nil
}

// AddObstacle drops a designer-sized obstacle centred on p.
func (c *Course) AddObstacle(i int, p Vec, kind ObstacleKind) error {
	h, err := c.Hole(i)
	if err != nil {
		return err
	}
	h.Obstacles = append(h.Obstacles, Obstacle{
		X:    p.X - DesignObstacleW/2,
		Y:    p.Y - DesignObstacleH/2,
		W:    DesignObstacleW,
		H:    DesignObstacleH,
		Kind: kind,
	})
	return nil
}

// RemoveObstacleAt deletes the most recently added obstacle under p.
// It reports whether anything was removed.
func (c *Course) RemoveObstacleAt(i int, p Vec) (bool, error) {
	h, err := c.Hole(i)
	if err != nil {
		return false, err
	}
	for k := len(h.Obstacles) - 1; k >= 0; k-- {
		if h.Obstacles[k].Contains(p) {
			h.Obstacles = append(h.Obstacles[:k], h.Obstacles[k+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ClearObstacles removes every obstacle from a hole.
func (c *Course) ClearObstacles(i int) error {
	h, err := c.Hole(i)
	if err != nil {
		return err
	}
	h.Obstacles = nil
	return nil
}

// Grab is what a designer pointer picked up.
type Grab int

const (
	GrabNone Grab = iota
	GrabTee
	GrabCup
)

// GrabAt returns which handle of hole i lies within GrabRadius of p.
// The tee wins when both are in reach.
func (c *Course) GrabAt(i int, p Vec) Grab {
	h, err := c.Hole(i)
	if err != nil {
		return GrabNone
	}
	switch {
	case Dist(p, h.Tee) <= GrabRadius:
		return GrabTee
	case Dist(p, h.Cup) <= GrabRadius:
		return GrabCup
	}
	return GrabNone
}

// ApplyFairwayPreset replaces a hole's fairway with a preset shape built from
// its current tee and cup.
func (c *Course) ApplyFairwayPreset(i int, preset FairwayPreset) error {
	h, err := c.Hole(i)
	if err != nil {
		return err
	}
	path, err := presetPath(h.Tee, h.Cup, preset)
	if err != nil {
		return err
	}
	h.Fairway = path
	return nil
}

// ClearFairway reverts a hole to a straight undesigned fairway.
func (c *Course) ClearFairway(i int) error {
	h, err := c.Hole(i)
	if err != nil {
		return err
	}
	h.Fairway = nil
	return nil
}

func presetPath(tee, cup Vec, preset FairwayPreset) ([]Vec, error) {
	mid := Lerp(tee, cup, 0.5)
	switch preset {
	case PresetStraight:
		return []Vec{tee, cup}, nil
	case PresetDoglegLeft:
		return []Vec{tee, V(mid.X-120, mid.Y), cup}, nil
	case PresetDoglegRight:
		return []Vec{tee, V(mid.X+120, mid.Y), cup}, nil
	case PresetSCurve:
		q1 := Lerp(tee, cup, 0.25)
		q3 := Lerp(tee, cup, 0.75)
		return []Vec{tee, V(q1.X-80, q1.Y), V(mid.X+80, mid.Y), V(q3.X-80, q3.Y), cup}, nil
	case PresetSharpLeft:
		return []Vec{tee, V(mid.X-200, mid.Y-50), cup}, nil
	case PresetSharpRight:
		return []Vec{tee, V(mid.X+200, mid.Y-50), cup}, nil
	case PresetUTurn:
		return []Vec{
			tee,
			V(mid.X-150, mid.Y-100),
			V(mid.X, mid.Y-150),
			V(mid.X+150, mid.Y-100),
			cup,
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
}
