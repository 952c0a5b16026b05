package golf

import "fmt"

// ObstacleKind selects how an obstacle interacts with a rolling ball.
type ObstacleKind string

const (
	KindBunker ObstacleKind = "bunker"
	KindWater  ObstacleKind = "water"
	KindTree   ObstacleKind = "tree"
	KindRock   ObstacleKind = "rock"
	KindForest ObstacleKind = "forest"
)

// Kinds lists every obstacle kind in designer cycle order.
var Kinds = []ObstacleKind{KindBunker, KindWater, KindTree, KindRock, KindForest}

// ParseKind resolves a kind name.
func ParseKind(s string) (ObstacleKind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Hazard reports whether the kind sends the ball back to the tee.
func (k ObstacleKind) Hazard() bool {
	return k == KindWater
}

// Obstacle is an axis-aligned rectangle on a hole.
type Obstacle struct {
	X, Y float64
	W, H float64
	Kind ObstacleKind
}

// Contains reports whether p lies inside the rectangle. All four edges count
// as inside.
func (o Obstacle) Contains(p Vec) bool {
	return p.X >= o.X && p.X <= o.X+o.W &&
		p.Y >= o.Y && p.Y <= o.Y+o.H
}

// Center returns the midpoint of the rectangle.
func (o Obstacle) Center() Vec {
	return V(o.X+o.W/2, o.Y+o.H/2)
}

// Overlaps reports whether two rectangles touch or overlap.
func (o Obstacle) Overlaps(other Obstacle) bool {
	return !(o.X+o.W < other.X || other.X+other.W < o.X ||
		o.Y+o.H < other.Y || other.Y+other.H < o.Y)
}
