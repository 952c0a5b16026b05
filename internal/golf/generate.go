package golf

import (
	"math"
	"math/rand"
)

const (
	generateAttempts = 100
	generateMargin   = 100
)

// GenerateCourse builds a random course from Templates where no two holes'
// padded bounds overlap. A hole that cannot be placed after 100 attempts
// falls back to a fixed slot with a single bunker.
func GenerateCourse(rng *rand.Rand) *Course {
	c := &Course{
		Width:     DefaultCourseWidth,
		Height:    DefaultCourseHeight,
		Landscape: defaultLandscape(),
	}
	const sectionsX, sectionsY = 6, 3
	sectionW := c.Width / sectionsX
	sectionH := c.Height / sectionsY

	for i := 0; i < HoleCount; i++ {
		t := Templates[i%len(Templates)]
		placed := false

		for attempt := 0; attempt < generateAttempts && !placed; attempt++ {
			sx := float64(rng.Intn(sectionsX))
			sy := float64(rng.Intn(sectionsY))
			tee := V(
				sx*sectionW+generateMargin+rng.Float64()*(sectionW-2*generateMargin),
				sy*sectionH+generateMargin+rng.Float64()*(sectionH-2*generateMargin),
			)
			cup := Toward(tee, rng.Float64()*2*math.Pi, t.Length)
			if cup.X < generateMargin || cup.X > c.Width-generateMargin ||
				cup.Y < generateMargin || cup.Y > c.Height-generateMargin {
				continue
			}

			h := Hole{
				ID:  i + 1,
				Tee: tee,
				Cup: cup,
				Par: t.Par,
				Obstacles: placeAlongFairway(tee, cup, t.Obstacles, func() Vec {
					return V((rng.Float64()-0.5)*100, (rng.Float64()-0.5)*100)
				}),
			}
			if !overlapsAny(h, c.Holes) {
				c.Holes = append(c.Holes, h)
				placed = true
			}
		}

		if !placed {
			c.Holes = append(c.Holes, fallbackHole(i))
		}
	}
	return c
}

func fallbackHole(i int) Hole {
	x := 300 + float64(i%6)*400
	y := 300 + float64(i/6)*500
	return Hole{
		ID:  i + 1,
		Tee: V(x, y),
		Cup: V(x+200, y+200),
		Par: DefaultPar,
		Obstacles: []Obstacle{
			{X: x + 100, Y: y + 100, W: 80, H: 80, Kind: KindBunker},
		},
	}
}

func overlapsAny(h Hole, existing []Hole) bool {
	b := HoleBounds(h)
	for _, e := range existing {
		if b.Overlaps(HoleBounds(e)) {
			return true
		}
	}
	return false
}
