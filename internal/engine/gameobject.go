package engine

import (
	"math"
	"sync/atomic"

	"roomdrag/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var uidCounter atomic.Uint64

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

// GameObject is a box-shaped scene node. Tag names the snap surface it
// represents; Size is the full extent of its local bounding box, centered on
// the transform position.
type GameObject struct {
	UID       uint64
	Name      string
	Tag       string
	Transform Transform
	Size      rl.Vector3
	Color     rl.Color
	Draggable bool
	Active    bool
	Scene     *Scene
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    uidCounter.Add(1),
		Name:   name,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		Size:  rl.Vector3{X: 1, Y: 1, Z: 1},
		Color: rl.White,
	}
}

// NewBox creates a box of the given size at pos.
func NewBox(name, tag string, size, pos rl.Vector3, draggable bool) *GameObject {
	g := NewGameObject(name)
	g.Tag = tag
	g.Size = size
	g.Transform.Position = pos
	g.Draggable = draggable
	return g
}

// RotationMatrix applies X then Y then Z, the same order the renderer uses.
func (g *GameObject) RotationMatrix() rl.Matrix {
	rot := g.Transform.Rotation
	rx := float64(rot.X) * math.Pi / 180
	ry := float64(rot.Y) * math.Pi / 180
	rz := float64(rot.Z) * math.Pi / 180
	rotX := rl.MatrixRotateX(float32(rx))
	rotY := rl.MatrixRotateY(float32(ry))
	rotZ := rl.MatrixRotateZ(float32(rz))
	return rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)
}

// LocalBounds is the unrotated box around the origin, scaled.
func (g *GameObject) LocalBounds() physics.AABB {
	scale := g.Transform.Scale
	size := rl.Vector3{
		X: abs(g.Size.X * scale.X),
		Y: abs(g.Size.Y * scale.Y),
		Z: abs(g.Size.Z * scale.Z),
	}
	return physics.NewAABBFromCenter(rl.Vector3{}, size)
}

// WorldBounds returns the axis-aligned box enclosing the rotated local box at
// the current position.
func (g *GameObject) WorldBounds() physics.AABB {
	local := g.LocalBounds()
	if g.Transform.Rotation == (rl.Vector3{}) {
		return physics.AABB{
			Min: rl.Vector3Add(local.Min, g.Transform.Position),
			Max: rl.Vector3Add(local.Max, g.Transform.Position),
		}
	}

	rot := g.RotationMatrix()
	corners := make([]rl.Vector3, 0, 8)
	for i := 0; i < 8; i++ {
		c := local.Min
		if i&1 != 0 {
			c.X = local.Max.X
		}
		if i&2 != 0 {
			c.Y = local.Max.Y
		}
		if i&4 != 0 {
			c.Z = local.Max.Z
		}
		corners = append(corners, rl.Vector3Add(g.Transform.Position, rl.Vector3Transform(c, rot)))
	}
	return physics.AABBFromPoints(corners...)
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
