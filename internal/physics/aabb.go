package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// EmptyAABB returns the degenerate box that contains nothing, not even a point.
func EmptyAABB() AABB {
	inf := float32(math.Inf(1))
	return AABB{
		Min: rl.Vector3{X: inf, Y: inf, Z: inf},
		Max: rl.Vector3{X: -inf, Y: -inf, Z: -inf},
	}
}

// AABBFromPoints returns the smallest box enclosing every point.
func AABBFromPoints(points ...rl.Vector3) AABB {
	box := EmptyAABB()
	for _, p := range points {
		box.Min = rl.Vector3Min(box.Min, p)
		box.Max = rl.Vector3Max(box.Max, p)
	}
	return box
}

func (a AABB) IsEmpty() bool {
	return a.Min.X > a.Max.X || a.Min.Y > a.Max.Y || a.Min.Z > a.Max.Z
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

func (a AABB) Size() rl.Vector3 {
	return rl.Vector3Subtract(a.Max, a.Min)
}

// Grow widens the box by size, split evenly between opposite faces.
// An empty box stays empty.
func (a AABB) Grow(size rl.Vector3) AABB {
	if a.IsEmpty() {
		return a
	}
	half := rl.Vector3Scale(size, 0.5)
	return AABB{
		Min: rl.Vector3Subtract(a.Min, half),
		Max: rl.Vector3Add(a.Max, half),
	}
}

// Contains reports whether b lies entirely inside a. Touching faces count as inside.
func (a AABB) Contains(b AABB) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return false
	}
	return b.Min.X >= a.Min.X && b.Max.X <= a.Max.X &&
		b.Min.Y >= a.Min.Y && b.Max.Y <= a.Max.Y &&
		b.Min.Z >= a.Min.Z && b.Max.Z <= a.Max.Z
}

// BoundingBox converts to the raylib type used for drawing.
func (a AABB) BoundingBox() rl.BoundingBox {
	return rl.NewBoundingBox(a.Min, a.Max)
}
