package game

import (
	"roomdrag/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorBackground = rl.NewColor(0x83, 0x82, 0x82, 255)
	colorBoundary   = rl.NewColor(60, 200, 120, 255)
	colorDragged    = rl.NewColor(255, 200, 40, 255)
	colorRejected   = rl.NewColor(230, 60, 60, 255)
)

// Draw renders one frame. It only reads transforms.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colorBackground)

	cam := g.Camera.Camera3D()
	aspect := float32(rl.GetScreenWidth()) / float32(max(rl.GetScreenHeight(), 1))
	view := viewFrustum(cam, aspect)

	rl.BeginMode3D(cam)

	visible := g.visible[:0]
	for _, obj := range g.World.Scene.GameObjects {
		if obj.Active && view.intersects(obj.WorldBounds()) {
			visible = append(visible, obj)
		}
	}
	g.visible = visible

	// Opaque first so translucent boxes blend over them
	for _, obj := range visible {
		if obj.Color.A == 255 {
			drawBox(obj)
		}
	}
	for _, obj := range visible {
		if obj.Color.A < 255 {
			drawBox(obj)
		}
	}

	if g.showBounds {
		g.drawBounds()
	}

	rl.EndMode3D()

	g.drawHUD()
	rl.EndDrawing()
}

func drawBox(obj *engine.GameObject) {
	pos := obj.Transform.Position
	rot := obj.Transform.Rotation
	size := obj.LocalBounds().Size()

	rl.PushMatrix()
	rl.Translatef(pos.X, pos.Y, pos.Z)
	// Reverse call order so X applies first, matching GameObject.RotationMatrix
	rl.Rotatef(rot.Z, 0, 0, 1)
	rl.Rotatef(rot.Y, 0, 1, 0)
	rl.Rotatef(rot.X, 1, 0, 0)
	rl.DrawCube(rl.Vector3{}, size.X, size.Y, size.Z, obj.Color)
	rl.DrawCubeWires(rl.Vector3{}, size.X, size.Y, size.Z, rl.Fade(rl.Black, 0.3))
	rl.PopMatrix()
}

func (g *Game) drawBounds() {
	boundary := g.Controller.Boundary()
	if !boundary.IsEmpty() {
		rl.DrawBoundingBox(boundary.Box().BoundingBox(), colorBoundary)
	}

	dragged := g.Controller.Dragged()
	if dragged == nil {
		return
	}
	color := colorDragged
	if g.recentlyRejected() {
		color = colorRejected
	}
	rl.DrawBoundingBox(dragged.WorldBounds().BoundingBox(), color)
}

func (g *Game) recentlyRejected() bool {
	return rl.GetTime()-g.rejectedAt < rejectFlashSeconds
}
