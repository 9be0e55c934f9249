package placement

import (
	"roomdrag/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Orientations set by wall hits. They replace the rotation, never add to it.
var (
	facingDefault = rl.Vector3{}
	facingLeft    = rl.Vector3{Y: 90}
	facingRight   = rl.Vector3{Y: -90}
)

// SnapPolicy applies the rule of the nearest qualifying surface to the dragged object.
type SnapPolicy struct {
	RestingHeight float32
	Ceiling       CeilingPolicy
	Boundary      Boundary
}

// Outcome describes what a single Apply did.
type Outcome struct {
	Surface  SurfaceKind
	Hit      engine.RaycastResult
	Found    bool // a qualifying hit was selected
	Moved    bool // the transform changed
	Rejected bool // an origin placement failed containment and was rolled back
}

// Candidates drops hits on the dragged object, keeping distance order.
func Candidates(hits []engine.RaycastResult, dragged *engine.GameObject) []engine.RaycastResult {
	out := make([]engine.RaycastResult, 0, len(hits))
	for _, h := range hits {
		if h.GameObject == dragged {
			continue
		}
		out = append(out, h)
	}
	return out
}

// selectHit returns the first candidate whose rule fires.
func (p *SnapPolicy) selectHit(candidates []engine.RaycastResult) (engine.RaycastResult, SurfaceKind, bool) {
	for _, h := range candidates {
		kind := SurfaceOf(h.GameObject)
		if kind == SurfaceCeiling {
			if p.Ceiling == CeilingBlock {
				return h, kind, false
			}
			continue
		}
		return h, kind, true
	}
	return engine.RaycastResult{}, SurfaceOther, false
}

// Apply mutates dragged according to the first qualifying hit. Hits must be
// sorted by ascending distance.
func (p *SnapPolicy) Apply(hits []engine.RaycastResult, dragged *engine.GameObject) Outcome {
	hit, kind, ok := p.selectHit(Candidates(hits, dragged))
	out := Outcome{Surface: kind, Hit: hit, Found: ok}
	if !ok {
		return out
	}

	tr := &dragged.Transform
	before := *tr

	switch kind {
	case SurfaceFloor:
		tr.Position = rl.Vector3{X: hit.Point.X, Y: p.RestingHeight, Z: hit.Point.Z}
	case SurfaceOrigin:
		tr.Position = hit.Point
		if !p.Boundary.Contains(dragged.WorldBounds()) {
			tr.Position = before.Position
			out.Rejected = true
		}
	case SurfaceFront, SurfaceBack:
		tr.Rotation = facingDefault
	case SurfaceLeft:
		tr.Rotation = facingLeft
	case SurfaceRight:
		tr.Rotation = facingRight
	case SurfaceOther, SurfaceCeiling:
	}

	out.Moved = *tr != before
	return out
}
