// Package golf contains the mini-golf simulation: course model, shot planning,
// shot resolution, rolling-ball physics and turn/score state.
//
// The package is pure logic. It performs no I/O, holds no goroutines and never
// draws anything; hosts drive it one tick at a time and read plain data back.
package golf

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec is a point or displacement in course units.
type Vec = r2.Vec

// V is shorthand for building a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Vec) float64 {
	return r2.Norm(r2.Sub(b, a))
}

// Bearing returns the angle in radians of the direction from a to b.
func Bearing(a, b Vec) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// Heading returns the unit vector for an angle in radians.
func Heading(angle float64) Vec {
	return Vec{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Toward returns the point at distance d from p along angle.
func Toward(p Vec, angle, d float64) Vec {
	return r2.Add(p, r2.Scale(d, Heading(angle)))
}

// Lerp interpolates between a and b.
func Lerp(a, b Vec, t float64) Vec {
	return r2.Add(a, r2.Scale(t, r2.Sub(b, a)))
}

func clampF(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
