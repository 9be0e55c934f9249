package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OrbitCamera circles a target point. Dragging with the left mouse button
// orbits, the wheel zooms. Input is ignored while orbit is disabled.
type OrbitCamera struct {
	Position    rl.Vector3
	Target      rl.Vector3
	Fovy        float32 // Vertical field of view in degrees
	RotateSpeed float32 // Degrees per pixel of mouse movement
	ZoomSpeed   float32 // Fraction of distance per wheel step
	MinDistance float32
	MaxDistance float32
	MaxPolar    float32 // Max angle from straight up, degrees

	enabled bool
}

func New(pos, target rl.Vector3) *OrbitCamera {
	return &OrbitCamera{
		Position:    pos,
		Target:      target,
		Fovy:        70,
		RotateSpeed: 0.3,
		ZoomSpeed:   0.1,
		MinDistance: 1,
		MaxDistance: 500,
		MaxPolar:    89,
		enabled:     true,
	}
}

func (c *OrbitCamera) SetOrbitEnabled(enabled bool) {
	c.enabled = enabled
}

func (c *OrbitCamera) OrbitEnabled() bool {
	return c.enabled
}

// Update reads mouse input for this frame.
func (c *OrbitCamera) Update() {
	if !c.enabled {
		return
	}
	var dx, dy float32
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		dx, dy = delta.X, delta.Y
	}
	c.Orbit(dx, dy)
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		c.Zoom(wheel)
	}
}

// Orbit rotates the camera around the target by a mouse delta in pixels and
// re-applies the polar clamp.
func (c *OrbitCamera) Orbit(dx, dy float32) {
	if !c.enabled {
		return
	}
	offset := rl.Vector3Subtract(c.Position, c.Target)
	radius := rl.Vector3Length(offset)
	if radius == 0 {
		return
	}

	azimuth := math.Atan2(float64(offset.X), float64(offset.Z))
	polar := math.Acos(clamp64(float64(offset.Y/radius), -1, 1))

	azimuth -= float64(dx*c.RotateSpeed) * math.Pi / 180
	polar -= float64(dy*c.RotateSpeed) * math.Pi / 180

	// Keep away from the pole so the up vector stays valid
	maxPolar := float64(c.MaxPolar) * math.Pi / 180
	polar = clamp64(polar, 0.01, maxPolar)

	c.Position = rl.Vector3Add(c.Target, spherical(radius, polar, azimuth))
}

// Zoom moves toward the target for positive steps and away for negative ones.
func (c *OrbitCamera) Zoom(steps float32) {
	if !c.enabled {
		return
	}
	offset := rl.Vector3Subtract(c.Position, c.Target)
	radius := rl.Vector3Length(offset)
	if radius == 0 {
		return
	}
	next := radius * (1 - steps*c.ZoomSpeed)
	next = float32(clamp64(float64(next), float64(c.MinDistance), float64(c.MaxDistance)))
	c.Position = rl.Vector3Add(c.Target, rl.Vector3Scale(offset, next/radius))
}

func (c *OrbitCamera) Camera3D() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position,
		Target:     c.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}

func spherical(radius float32, polar, azimuth float64) rl.Vector3 {
	r := float64(radius)
	return rl.Vector3{
		X: float32(r * math.Sin(polar) * math.Sin(azimuth)),
		Y: float32(r * math.Cos(polar)),
		Z: float32(r * math.Sin(polar) * math.Cos(azimuth)),
	}
}

func clamp64(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
