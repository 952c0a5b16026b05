package golf

import "math"

// Camera maps course coordinates to a view. Pan is in view units:
//
//	world = (screen - pan) / scale
//	screen = world*scale + pan
type Camera struct {
	PanX, PanY float64
	Scale      float64
	MinScale   float64
	MaxScale   float64
	Margin     float64 // how far past the course edge the view may drift
}

// DefaultCamera returns an unzoomed camera with the stock limits.
func DefaultCamera() Camera {
	return Camera{Scale: 1, MinScale: 0.2, MaxScale: 5, Margin: 300}
}

// ScreenToWorld converts a view point to course coordinates.
func (c *Camera) ScreenToWorld(s Vec) Vec {
	return V((s.X-c.PanX)/c.Scale, (s.Y-c.PanY)/c.Scale)
}

// WorldToScreen converts a course point to view coordinates.
func (c *Camera) WorldToScreen(w Vec) Vec {
	return V(w.X*c.Scale+c.PanX, w.Y*c.Scale+c.PanY)
}

// Pan shifts the view by a view-space delta.
func (c *Camera) Pan(dx, dy float64) {
	c.PanX += dx
	c.PanY += dy
}

// ZoomAt scales by factor while keeping the course point under s fixed.
func (c *Camera) ZoomAt(s Vec, factor float64, view, course Vec) {
	anchor := c.ScreenToWorld(s)
	scale := clampF(c.Scale*factor, c.MinScale, c.MaxScale)
	if scale == c.Scale {
		return
	}
	c.Scale = scale
	c.PanX = s.X - anchor.X*scale
	c.PanY = s.Y - anchor.Y*scale
	c.Constrain(view, course)
}

// Constrain keeps the course, plus Margin, within reach of the view.
func (c *Camera) Constrain(view, course Vec) {
	// Work in the course-space offset of the view's top-left corner.
	ox := -c.PanX / c.Scale
	oy := -c.PanY / c.Scale
	ox = clampF(ox, -c.Margin, course.X+c.Margin-view.X/c.Scale)
	oy = clampF(oy, -c.Margin, course.Y+c.Margin-view.Y/c.Scale)
	c.PanX = -ox * c.Scale
	c.PanY = -oy * c.Scale
}

// Center fits the whole course at 90% of the view.
func (c *Camera) Center(view, course Vec) {
	c.Scale = math.Min(view.X/course.X, view.Y/course.Y) * 0.9
	c.PanX = -(course.X - view.X/c.Scale) / 2 * c.Scale
	c.PanY = -(course.Y - view.Y/c.Scale) / 2 * c.Scale
	c.Constrain(view, course)
}

// Fit frames a course rectangle at 90% of the view, within the scale limits.
func (c *Camera) Fit(r Obstacle, view, course Vec) {
	w := math.Max(r.W, 1)
	h := math.Max(r.H, 1)
	c.Scale = clampF(math.Min(view.X/w, view.Y/h)*0.9, c.MinScale, c.MaxScale)
	mid := r.Center()
	c.PanX = view.X/2 - mid.X*c.Scale
	c.PanY = view.Y/2 - mid.Y*c.Scale
	c.Constrain(view, course)
}
