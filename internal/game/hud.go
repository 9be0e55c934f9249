package game

import (
	"fmt"

	"roomdrag/internal/placement"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var hudBounds = rl.Rectangle{X: 10, Y: 10, Width: 300, Height: 150}

func initHUDStyle() {
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(rl.RayWhite))
}

func overHUD(mouse rl.Vector2) bool {
	return rl.CheckCollisionPointRec(mouse, hudBounds)
}

func (g *Game) drawHUD() {
	rl.DrawRectangleRec(hudBounds, rl.Fade(rl.Black, 0.55))

	x, y := hudBounds.X+10, hudBounds.Y+8
	line := func(text string) {
		gui.Label(rl.Rectangle{X: x, Y: y, Width: hudBounds.Width - 20, Height: 20}, text)
		y += 22
	}

	ctrl := g.Controller
	line(fmt.Sprintf("State: %s", ctrl.State()))
	if obj := ctrl.Dragged(); obj != nil {
		p := obj.Transform.Position
		line(fmt.Sprintf("%s  (%.1f, %.1f, %.1f)  yaw %.0f", obj.Name, p.X, p.Y, p.Z, obj.Transform.Rotation.Y))
		line(fmt.Sprintf("Surface: %s", ctrl.LastOutcome().Surface))
	} else {
		line("Drag the red box; orbit with the mouse")
		line("")
	}
	if g.recentlyRejected() {
		line("Out of bounds: placement undone")
	} else {
		line("")
	}

	box := rl.Rectangle{X: x, Y: y + 2, Width: 16, Height: 16}
	block := gui.CheckBox(box, "Ceiling blocks movement", g.blockTop)
	if block != g.blockTop {
		g.blockTop = block
		policy := placement.CeilingSkip
		if block {
			policy = placement.CeilingBlock
		}
		ctrl.SetCeilingPolicy(policy)
		g.logger.Sugar().Infof("ceiling policy set to %s", policy)
	}
	y += 22

	box.Y = y + 2
	g.showBounds = gui.CheckBox(box, "Show bounds (B)", g.showBounds)
}
