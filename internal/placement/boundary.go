package placement

import (
	"roomdrag/internal/engine"
	"roomdrag/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Boundary is the volume origin-zone placements must stay inside.
// The zero value is empty and rejects every box.
type Boundary struct {
	box   physics.AABB
	valid bool
}

// ComputeBoundary derives the boundary from the reference object's world box,
// widened by margin. A nil reference yields the empty boundary.
func ComputeBoundary(reference *engine.GameObject, margin rl.Vector3) Boundary {
	if reference == nil {
		return Boundary{box: physics.EmptyAABB()}
	}
	box := reference.WorldBounds().Grow(margin)
	return Boundary{box: box, valid: !box.IsEmpty()}
}

// Contains reports whether box lies fully inside the boundary, faces included.
func (b Boundary) Contains(box physics.AABB) bool {
	if !b.valid {
		return false
	}
	return b.box.Contains(box)
}

func (b Boundary) IsEmpty() bool {
	return !b.valid
}

func (b Boundary) Box() physics.AABB {
	if !b.valid {
		return physics.EmptyAABB()
	}
	return b.box
}
