package game

import (
	"roomdrag/internal/camera"
	"roomdrag/internal/config"
	"roomdrag/internal/engine"
	"roomdrag/internal/placement"
	"roomdrag/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// rejectFlashSeconds is how long the HUD shows a rejected placement.
const rejectFlashSeconds = 0.6

type Game struct {
	Config     config.Config
	World      *world.World
	Camera     *camera.OrbitCamera
	Controller *placement.Controller

	logger     *zap.Logger
	visible    []*engine.GameObject
	lastMouse  rl.Vector2
	rejectedAt float64
	showBounds bool
	blockTop   bool
}

func New(cfg config.Config, w *world.World, logger *zap.Logger) *Game {
	cam := camera.New(cfg.Camera.Position.Vector3(), cfg.Camera.Target.Vector3())
	cam.Fovy = cfg.Camera.Fovy
	cam.MaxPolar = cfg.Camera.MaxPolarDeg
	cam.MinDistance = cfg.Camera.MinDistance
	cam.MaxDistance = cfg.Camera.MaxDistance

	ctrl := placement.NewController(w.Scene, cam, w.Boundary,
		placement.WithLogger(logger),
		placement.WithRestingHeight(cfg.Placement.RestingHeight),
		placement.WithCeilingPolicy(cfg.Placement.Ceiling()),
		placement.WithMaxRayDistance(cfg.Placement.MaxRayDistance),
	)

	g := &Game{
		Config:     cfg,
		World:      w,
		Camera:     cam,
		Controller: ctrl,
		logger:     logger,
		showBounds: true,
		blockTop:   cfg.Placement.Ceiling() == placement.CeilingBlock,
		rejectedAt: -rejectFlashSeconds,
	}

	ctrl.OnRejected.AddListener(func(*engine.GameObject) {
		g.rejectedAt = rl.GetTime()
	})
	ctrl.OnDragEnd.AddListener(func(obj *engine.GameObject) {
		pos := obj.Transform.Position
		logger.Info("object placed",
			zap.String("object", obj.Name),
			zap.Float32s("position", []float32{pos.X, pos.Y, pos.Z}),
			zap.Float32("yaw", obj.Transform.Rotation.Y),
		)
	})
	return g
}

func (g *Game) Run() {
	win := g.Config.Window
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(win.Width, win.Height, win.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(win.TargetFPS)
	initHUDStyle()

	g.lastMouse = rl.GetMousePosition()
	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

// Update turns this frame's mouse state into pointer commands, then lets the
// camera consume whatever input is left. Commands run first so a drag that
// starts this frame has already switched orbit off.
func (g *Game) Update() {
	mouse := rl.GetMousePosition()
	vp := placement.Viewport{
		Width:  float32(rl.GetScreenWidth()),
		Height: float32(rl.GetScreenHeight()),
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && !overHUD(mouse) {
		g.Controller.Handle(placement.PointerDown{ClientX: mouse.X, ClientY: mouse.Y, Viewport: vp})
	}
	if mouse != g.lastMouse {
		g.Controller.Handle(placement.PointerMove{ClientX: mouse.X, ClientY: mouse.Y, Viewport: vp})
		g.lastMouse = mouse
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		g.Controller.Handle(placement.PointerUp{ClientX: mouse.X, ClientY: mouse.Y, Viewport: vp})
	}

	if rl.IsKeyPressed(rl.KeyB) {
		g.showBounds = !g.showBounds
	}

	if !overHUD(mouse) {
		g.Camera.Update()
	}
}
