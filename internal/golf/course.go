package golf

import (
	"fmt"
	"math"
)

const (
	// HoleCount is the number of holes in a round. A player whose current
	// hole index equals HoleCount has finished.
	HoleCount = 18

	DefaultCourseWidth  = 3000
	DefaultCourseHeight = 2000
	DefaultPar          = 4
)

// Hole is one tee-to-cup layout.
type Hole struct {
	ID        int // 1-based
	Tee       Vec
	Cup       Vec
	Par       int
	Obstacles []Obstacle
	// Fairway is a designed centre line from tee to cup; nil means straight.
	Fairway []Vec
}

// Length returns the straight-line tee to cup distance.
func (h Hole) Length() float64 {
	return Dist(h.Tee, h.Cup)
}

// Course is the full playing area with its holes.
type Course struct {
	Width, Height float64
	Holes         []Hole
	// Landscape holds decorative features. They are drawn but never collide.
	Landscape []Obstacle
}

// Hole returns the hole at a zero-based index.
func (c *Course) Hole(i int) (*Hole, error) {
	if i < 0 || i >= len(c.Holes) {
		return nil, fmt.Errorf("%w: %d", ErrHoleIndex, i)
	}
	return &c.Holes[i], nil
}

// TotalPar sums par over all holes.
func (c *Course) TotalPar() int {
	total := 0
	for _, h := range c.Holes {
		total += h.Par
	}
	return total
}

// Bounds returns the shot clamp for this course with the given inset.
func (c *Course) Bounds(margin float64) Bounds {
	return Bounds{Width: c.Width, Height: c.Height, Margin: margin}
}

// Clone returns a deep copy so designer edits never leak between sessions.
func (c *Course) Clone() *Course {
	out := &Course{Width: c.Width, Height: c.Height}
	out.Holes = make([]Hole, len(c.Holes))
	for i, h := range c.Holes {
		h.Obstacles = append([]Obstacle(nil), h.Obstacles...)
		if h.Fairway != nil {
			h.Fairway = append([]Vec(nil), h.Fairway...)
		}
		out.Holes[i] = h
	}
	out.Landscape = append([]Obstacle(nil), c.Landscape...)
	return out
}

// defaultLandscape is the decorative water and forest around the course.
func defaultLandscape() []Obstacle {
	return []Obstacle{
		{X: 700, Y: 700, W: 400, H: 200, Kind: KindWater},
		{X: 1000, Y: 650, W: 300, H: 150, Kind: KindWater},
		{X: 50, Y: 50, W: 200, H: 200, Kind: KindForest},
		{X: 2700, Y: 50, W: 250, H: 200, Kind: KindForest},
		{X: 50, Y: 1750, W: 200, H: 200, Kind: KindForest},
		{X: 2700, Y: 1750, W: 250, H: 200, Kind: KindForest},
	}
}

// DefaultCourse returns the blank designer layout: 18 par-4 holes in three
// rows of six with no obstacles.
func DefaultCourse() *Course {
	c := &Course{
		Width:     DefaultCourseWidth,
		Height:    DefaultCourseHeight,
		Landscape: defaultLandscape(),
	}
	for i := 0; i < HoleCount; i++ {
		row := float64(i / 6)
		c.Holes = append(c.Holes, Hole{
			ID:  i + 1,
			Tee: V(200+float64(i)*150, 200+row*500),
			Cup: V(300+float64(i)*150, 400+row*500),
			Par: DefaultPar,
		})
	}
	return c
}

// HoleTemplate describes a hole shape independent of its placement.
type HoleTemplate struct {
	Name      string
	Par       int
	Length    float64
	Obstacles []ObstacleSize
}

// ObstacleSize is an obstacle before it is placed on a hole.
type ObstacleSize struct {
	W, H float64
	Kind ObstacleKind
}

// Templates are the six hole shapes used by TemplateCourse and GenerateCourse.
var Templates = []HoleTemplate{
	{Name: "Short par 4", Par: 4, Length: 300, Obstacles: []ObstacleSize{
		{W: 120, H: 80, Kind: KindBunker},
		{W: 60, H: 100, Kind: KindTree},
	}},
	{Name: "Par 3 over water", Par: 3, Length: 200, Obstacles: []ObstacleSize{
		{W: 150, H: 60, Kind: KindWater},
	}},
	{Name: "Long par 5", Par: 5, Length: 500, Obstacles: []ObstacleSize{
		{W: 80, H: 120, Kind: KindTree},
		{W: 180, H: 80, Kind: KindBunker},
		{W: 100, H: 100, Kind: KindWater},
	}},
	{Name: "Par 4 with woods", Par: 4, Length: 350, Obstacles: []ObstacleSize{
		{W: 100, H: 100, Kind: KindWater},
		{W: 50, H: 80, Kind: KindTree},
	}},
	{Name: "Challenging par 3", Par: 3, Length: 180, Obstacles: []ObstacleSize{
		{W: 100, H: 80, Kind: KindBunker},
	}},
	{Name: "Strategic par 4", Par: 4, Length: 400, Obstacles: []ObstacleSize{
		{W: 150, H: 120, Kind: KindWater},
		{W: 60, H: 100, Kind: KindTree},
	}},
}

// TemplateCourse lays the six templates out deterministically, one hole per
// cell of a 6x3 grid. Odd holes play right to left.
func TemplateCourse() *Course {
	c := &Course{
		Width:     DefaultCourseWidth,
		Height:    DefaultCourseHeight,
		Landscape: defaultLandscape(),
	}
	cellW := c.Width / 6
	cellH := c.Height / 3
	for i := 0; i < HoleCount; i++ {
		t := Templates[i%len(Templates)]
		x0 := float64(i%6) * cellW
		y0 := float64(i/6) * cellH

		tee := V(x0+70, y0+100)
		angle := math.Pi / 4
		if i%2 == 1 {
			tee = V(x0+cellW-70, y0+100)
			angle = 3 * math.Pi / 4
		}
		cup := Toward(tee, angle, t.Length)
		c.Holes = append(c.Holes, Hole{
			ID:        i + 1,
			Tee:       tee,
			Cup:       cup,
			Par:       t.Par,
			Obstacles: placeAlongFairway(tee, cup, t.Obstacles, nil),
		})
	}
	return c
}

// placeAlongFairway spaces obstacles evenly between tee and cup. The jitter
// func, when non-nil, returns an offset added to each obstacle's corner;
// without it obstacles are centred on the line, alternating to either side.
func placeAlongFairway(tee, cup Vec, sizes []ObstacleSize, jitter func() Vec) []Obstacle {
	out := make([]Obstacle, 0, len(sizes))
	side := Heading(Bearing(tee, cup) + math.Pi/2)
	for k, s := range sizes {
		t := float64(k+1) / float64(len(sizes)+1)
		p := Lerp(tee, cup, t)
		var o Obstacle
		if jitter != nil {
			j := jitter()
			o = Obstacle{X: p.X + j.X, Y: p.Y + j.Y, W: s.W, H: s.H, Kind: s.Kind}
		} else {
			shift := 30.0
			if k%2 == 1 {
				shift = -30
			}
			o = Obstacle{
				X:    p.X + side.X*shift - s.W/2,
				Y:    p.Y + side.Y*shift - s.H/2,
				W:    s.W,
				H:    s.H,
				Kind: s.Kind,
			}
		}
		out = append(out, o)
	}
	return out
}

// HoleBounds returns the padded footprint of a hole: 200 units around tee and
// cup, 50 around each obstacle.
func HoleBounds(h Hole) Obstacle {
	minX := math.Min(h.Tee.X, h.Cup.X) - 200
	maxX := math.Max(h.Tee.X, h.Cup.X) + 200
	minY := math.Min(h.Tee.Y, h.Cup.Y) - 200
	maxY := math.Max(h.Tee.Y, h.Cup.Y) + 200
	for _, o := range h.Obstacles {
		minX = math.Min(minX, o.X-50)
		maxX = math.Max(maxX, o.X+o.W+50)
		minY = math.Min(minY, o.Y-50)
		maxY = math.Max(maxY, o.Y+o.H+50)
	}
	return Obstacle{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
