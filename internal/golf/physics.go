package golf

import "math"

// PhysicsConfig tunes the rolling-ball model.
type PhysicsConfig struct {
	Friction    float64 // velocity multiplier per frame
	Restitution float64 // speed kept after a bounce
	StopEpsilon float64 // per-axis speed under which the ball stops
	CupRadius   float64
	LaunchSpeed float64 // speed at full power, units per frame
	MaxFrames   int     // safety bound for Simulate
}

// DefaultPhysicsConfig returns the stock rolling model. A full-power launch
// rolls roughly 200 units on open ground, matching the instant variant.
func DefaultPhysicsConfig() PhysicsConfig {
	return PhysicsConfig{
		Friction:    0.98,
		Restitution: 0.8,
		StopEpsilon: 0.1,
		CupRadius:   15,
		LaunchSpeed: 4.2,
		MaxFrames:   10000,
	}
}

// pushOut is how far outside an obstacle edge a bounced ball is placed.
const pushOut = 0.5

// Contact is what happened to the ball during one frame.
type Contact int

const (
	ContactNone Contact = iota
	ContactWall
	ContactObstacle
	ContactWater
	ContactCup
	ContactStopped
)

func (c Contact) String() string {
	switch c {
	case ContactNone:
		return "none"
	case ContactWall:
		return "wall"
	case ContactObstacle:
		return "obstacle"
	case ContactWater:
		return "water"
	case ContactCup:
		return "cup"
	case ContactStopped:
		return "stopped"
	}
	return "unknown"
}

// Terminal reports whether the contact left the ball at rest.
func (c Contact) Terminal() bool {
	return c == ContactWater || c == ContactCup || c == ContactStopped
}

// Ball is a rolling ball in the physics variant.
type Ball struct {
	Pos    Vec
	Vel    Vec
	Moving bool
}

// Launch starts the ball rolling along angle.
func (b *Ball) Launch(angle, power float64, cfg PhysicsConfig) {
	speed := power * cfg.LaunchSpeed
	b.Vel = V(math.Cos(angle)*speed, math.Sin(angle)*speed)
	b.Moving = true
}

func (b *Ball) stop() {
	b.Vel = Vec{}
	b.Moving = false
}

// Step advances one frame on a course of the given size. Walls and solid
// obstacles bounce, water returns the ball to the tee, the cup captures it.
func (b *Ball) Step(cfg PhysicsConfig, hole Hole, width, height float64) Contact {
	if !b.Moving {
		return ContactStopped
	}

	b.Pos.X += b.Vel.X
	b.Pos.Y += b.Vel.Y
	b.Vel.X *= cfg.Friction
	b.Vel.Y *= cfg.Friction

	contact := ContactNone
	if b.Pos.X < 0 || b.Pos.X > width {
		b.Vel.X *= -cfg.Restitution
		b.Pos.X = clampF(b.Pos.X, 0, width)
		contact = ContactWall
	}
	if b.Pos.Y < 0 || b.Pos.Y > height {
		b.Vel.Y *= -cfg.Restitution
		b.Pos.Y = clampF(b.Pos.Y, 0, height)
		contact = ContactWall
	}

	for _, o := range hole.Obstacles {
		if !o.Contains(b.Pos) {
			continue
		}
		if o.Kind.Hazard() {
			b.Pos = hole.Tee
			b.stop()
			return ContactWater
		}
		b.bounceOff(o, cfg.Restitution)
		contact = ContactObstacle
		break
	}

	if Dist(b.Pos, hole.Cup) < cfg.CupRadius {
		b.stop()
		return ContactCup
	}

	if math.Abs(b.Vel.X) < cfg.StopEpsilon && math.Abs(b.Vel.Y) < cfg.StopEpsilon {
		b.stop()
		return ContactStopped
	}
	return contact
}

// bounceOff reflects the dominant velocity axis and moves the ball just
// outside o on that axis only. A diagonal hit can leave the ball overlapping
// on the other axis.
func (b *Ball) bounceOff(o Obstacle, restitution float64) {
	if math.Abs(b.Vel.X) > math.Abs(b.Vel.Y) {
		if b.Vel.X > 0 {
			b.Pos.X = o.X - pushOut
		} else {
			b.Pos.X = o.X + o.W + pushOut
		}
		b.Vel.X *= -restitution
		return
	}
	if b.Vel.Y > 0 {
		b.Pos.Y = o.Y - pushOut
	} else {
		b.Pos.Y = o.Y + o.H + pushOut
	}
	b.Vel.Y *= -restitution
}

// Simulate steps until the ball rests or cfg.MaxFrames pass, returning the
// final contact and the number of frames used.
func (b *Ball) Simulate(cfg PhysicsConfig, hole Hole, width, height float64) (Contact, int) {
	limit := cfg.MaxFrames
	if limit <= 0 {
		limit = DefaultPhysicsConfig().MaxFrames
	}
	for frame := 1; frame <= limit; frame++ {
		if c := b.Step(cfg, hole, width, height); c.Terminal() {
			return c, frame
		}
	}
	b.stop()
	return ContactStopped, limit
}
