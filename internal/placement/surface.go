package placement

import (
	"fmt"

	"roomdrag/internal/engine"
)

// SurfaceKind identifies which snap rule a hit surface selects.
type SurfaceKind int

const (
	SurfaceOther SurfaceKind = iota
	SurfaceFloor
	SurfaceOrigin
	SurfaceFront
	SurfaceBack
	SurfaceLeft
	SurfaceRight
	SurfaceCeiling
)

var surfaceNames = [...]string{
	SurfaceOther:   "other",
	SurfaceFloor:   "floor",
	SurfaceOrigin:  "origin",
	SurfaceFront:   "front",
	SurfaceBack:    "back",
	SurfaceLeft:    "left",
	SurfaceRight:   "right",
	SurfaceCeiling: "top",
}

func (k SurfaceKind) String() string {
	if k < 0 || int(k) >= len(surfaceNames) {
		return fmt.Sprintf("SurfaceKind(%d)", int(k))
	}
	return surfaceNames[k]
}

// ParseSurface maps a scene tag to its kind. The empty tag is the default floor.
func ParseSurface(tag string) SurfaceKind {
	switch tag {
	case "", "floor":
		return SurfaceFloor
	case "origin":
		return SurfaceOrigin
	case "front":
		return SurfaceFront
	case "back":
		return SurfaceBack
	case "left":
		return SurfaceLeft
	case "right":
		return SurfaceRight
	case "top":
		return SurfaceCeiling
	default:
		return SurfaceOther
	}
}

// SurfaceOf classifies a scene object. Draggable objects are never snap surfaces.
func SurfaceOf(g *engine.GameObject) SurfaceKind {
	if g.Draggable {
		return SurfaceOther
	}
	return ParseSurface(g.Tag)
}

// CeilingPolicy decides what a ceiling hit does to the candidate search.
type CeilingPolicy int

const (
	// CeilingSkip ignores ceiling hits and keeps looking at farther hits.
	CeilingSkip CeilingPolicy = iota
	// CeilingBlock stops the search at a ceiling hit; the object does not move.
	CeilingBlock
)

func (p CeilingPolicy) String() string {
	switch p {
	case CeilingSkip:
		return "skip"
	case CeilingBlock:
		return "block"
	default:
		return fmt.Sprintf("CeilingPolicy(%d)", int(p))
	}
}

func ParseCeilingPolicy(s string) (CeilingPolicy, error) {
	switch s {
	case "", "skip":
		return CeilingSkip, nil
	case "block":
		return CeilingBlock, nil
	default:
		return 0, fmt.Errorf("unknown ceiling policy %q", s)
	}
}
