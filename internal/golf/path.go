package golf

// DefaultSampleSteps is the number of intervals a straight path is split into.
const DefaultSampleSteps = 20

// SamplePath returns steps+1 evenly spaced points from a to b, both ends
// included.
func SamplePath(a, b Vec, steps int) []Vec {
	if steps < 1 {
		steps = 1
	}
	pts := make([]Vec, 0, steps+1)
	for i := 0; i <= steps; i++ {
		pts = append(pts, Lerp(a, b, float64(i)/float64(steps)))
	}
	return pts
}

// PathBlocked reports whether any sampled point lies inside any obstacle.
func PathBlocked(path []Vec, obstacles []Obstacle) bool {
	_, hit := FirstHit(path, obstacles)
	return hit
}

// FirstHit returns the index of the first obstacle touched while walking the
// path in order.
func FirstHit(path []Vec, obstacles []Obstacle) (int, bool) {
	for _, p := range path {
		for i, o := range obstacles {
			if o.Contains(p) {
				return i, true
			}
		}
	}
	return -1, false
}

// SegmentBlocked samples a->b and checks it against obstacles.
func SegmentBlocked(a, b Vec, obstacles []Obstacle, steps int) bool {
	return PathBlocked(SamplePath(a, b, steps), obstacles)
}
