package world

import (
	"roomdrag/internal/engine"
	"roomdrag/internal/placement"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// World is the built room: the scene graph plus the placement boundary
// derived from its reference object.
type World struct {
	Scene     *engine.Scene
	Reference *engine.GameObject
	Boundary  placement.Boundary
}

// New builds the scene from sf and computes the boundary once. A scene
// without its reference object gets the empty boundary, which rejects every
// origin placement.
func New(sf *SceneFile, margin rl.Vector3, logger *zap.Logger) (*World, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := sf.Validate(); err != nil {
		return nil, err
	}

	w := &World{Scene: engine.NewScene("Room")}
	for _, def := range sf.Objects {
		w.Scene.AddGameObject(newObject(def))
	}

	ref := sf.BoundaryReference
	if ref == "" {
		ref = DefaultReference
	}
	w.Reference = w.Scene.FindByName(ref)
	w.Boundary = placement.ComputeBoundary(w.Reference, margin)

	if w.Reference == nil {
		logger.Warn("boundary reference missing, origin placements will be rejected", zap.String("reference", ref))
	} else {
		box := w.Boundary.Box()
		logger.Info("boundary computed",
			zap.String("reference", ref),
			zap.Float32s("min", []float32{box.Min.X, box.Min.Y, box.Min.Z}),
			zap.Float32s("max", []float32{box.Max.X, box.Max.Y, box.Max.Z}),
		)
	}
	logger.Info("scene built", zap.Int("objects", len(w.Scene.GameObjects)))
	return w, nil
}

func newObject(def ObjectDef) *engine.GameObject {
	g := engine.NewBox(
		def.Name,
		def.Tag,
		rl.Vector3{X: def.Size[0], Y: def.Size[1], Z: def.Size[2]},
		rl.Vector3{X: def.Position[0], Y: def.Position[1], Z: def.Position[2]},
		def.Draggable,
	)
	g.Transform.Rotation = rl.Vector3{X: def.Rotation[0], Y: def.Rotation[1], Z: def.Rotation[2]}
	g.Color = lookupColor(def.Color)
	if def.Opacity != nil {
		g.Color.A = uint8(*def.Opacity * 255)
	}
	g.Active = !def.Hidden
	return g
}
