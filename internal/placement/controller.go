package placement

import (
	"roomdrag/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultMaxRayDistance matches the far clip plane.
const DefaultMaxRayDistance = cullFar

// Camera is the view pick rays are cast from. Orbit input is switched off for
// the length of a drag so the camera and the object do not fight over the pointer.
type Camera interface {
	Camera3D() rl.Camera3D
	SetOrbitEnabled(enabled bool)
}

// Controller owns the drag session and is the only writer of object
// transforms while a drag is in progress. It is not safe for concurrent use;
// feed it commands from the input thread.
type Controller struct {
	scene  *engine.Scene
	camera Camera
	policy SnapPolicy

	maxDistance float32
	logger      *zap.Logger

	state   DragState
	dragged *engine.GameObject
	session string
	slog    *zap.Logger
	pointer PointerSample
	aspect  float32
	last    Outcome

	// OnDragStart fires after a drag session begins.
	OnDragStart engine.EventWithArg[*engine.GameObject]
	// OnDragEnd fires after a drag session ends.
	OnDragEnd engine.EventWithArg[*engine.GameObject]
	// OnRejected fires when an origin placement is rolled back.
	OnRejected engine.EventWithArg[*engine.GameObject]
}

type Option func(*Controller)

func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithRestingHeight(h float32) Option {
	return func(c *Controller) { c.policy.RestingHeight = h }
}

func WithCeilingPolicy(p CeilingPolicy) Option {
	return func(c *Controller) { c.policy.Ceiling = p }
}

func WithMaxRayDistance(d float32) Option {
	return func(c *Controller) {
		if d > 0 {
			c.maxDistance = d
		}
	}
}

func NewController(scene *engine.Scene, cam Camera, boundary Boundary, opts ...Option) *Controller {
	c := &Controller{
		scene:       scene,
		camera:      cam,
		policy:      SnapPolicy{Boundary: boundary},
		maxDistance: DefaultMaxRayDistance,
		logger:      zap.NewNop(),
		aspect:      1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) State() DragState {
	return c.state
}

// Dragged returns the object being dragged, or nil when idle.
func (c *Controller) Dragged() *engine.GameObject {
	return c.dragged
}

func (c *Controller) Boundary() Boundary {
	return c.policy.Boundary
}

func (c *Controller) CeilingPolicy() CeilingPolicy {
	return c.policy.Ceiling
}

func (c *Controller) SetCeilingPolicy(p CeilingPolicy) {
	c.policy.Ceiling = p
}

// Session identifies the current drag in log output. Empty when idle.
func (c *Controller) Session() string {
	return c.session
}

// LastOutcome is the result of the most recent placement attempt.
func (c *Controller) LastOutcome() Outcome {
	return c.last
}

// Handle runs one pointer command to completion.
func (c *Controller) Handle(cmd Command) {
	x, y, vp := cmd.pointer()
	c.pointer = NormalizePointer(x, y, vp)
	c.aspect = vp.Aspect()

	switch cmd.(type) {
	case PointerDown:
		c.pointerDown()
	case PointerMove:
		c.pointerMove()
	case PointerUp:
		c.pointerUp()
	}
}

func (c *Controller) ray() rl.Ray {
	return PickRay(c.camera.Camera3D(), c.pointer, c.aspect)
}

func (c *Controller) pointerDown() {
	if c.state == Dragging {
		return
	}
	hits := c.scene.IntersectRay(c.ray(), c.maxDistance)
	if len(hits) == 0 || !hits[0].GameObject.Draggable {
		return
	}

	c.dragged = hits[0].GameObject
	c.state = Dragging
	c.session = uuid.NewString()
	c.slog = c.logger.With(zap.String("session", c.session))
	c.camera.SetOrbitEnabled(false)
	c.slog.Debug("drag started",
		zap.String("object", c.dragged.Name),
		zap.Uint64("uid", c.dragged.UID),
	)
	c.OnDragStart.Invoke(c.dragged)
}

func (c *Controller) pointerMove() {
	if c.state != Dragging {
		return
	}
	hits := c.scene.IntersectRay(c.ray(), c.maxDistance)
	c.last = c.policy.Apply(hits, c.dragged)

	switch {
	case c.last.Rejected:
		c.slog.Debug("placement rejected",
			zap.String("object", c.dragged.Name),
			zap.Float32("x", c.last.Hit.Point.X),
			zap.Float32("y", c.last.Hit.Point.Y),
			zap.Float32("z", c.last.Hit.Point.Z),
		)
		c.OnRejected.Invoke(c.dragged)
	case c.last.Found && c.last.Surface == SurfaceOther:
		c.slog.Debug("surface ignored", zap.String("tag", c.last.Hit.GameObject.Tag))
	}
}

func (c *Controller) pointerUp() {
	if c.state != Dragging {
		return
	}
	obj, slog := c.dragged, c.slog
	c.dragged, c.slog = nil, nil
	c.session = ""
	c.state = Idle
	c.camera.SetOrbitEnabled(true)
	slog.Debug("drag ended",
		zap.String("object", obj.Name),
		zap.Float32("x", obj.Transform.Position.X),
		zap.Float32("y", obj.Transform.Position.Y),
		zap.Float32("z", obj.Transform.Position.Z),
	)
	c.OnDragEnd.Invoke(obj)
}
