package placement

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Clip planes used for unprojection, the same ones raylib draws with.
const (
	cullNear = 0.01
	cullFar  = 1000.0
)

// PointerSample is a pointer position in normalized device coordinates:
// x grows right, y grows up, both span [-1, 1] across the viewport.
type PointerSample struct {
	X float32
	Y float32
}

// Viewport is the drawable area size in the same units as client coordinates.
type Viewport struct {
	Width  float32
	Height float32
}

func (v Viewport) Aspect() float32 {
	if v.Height == 0 {
		return 1
	}
	return v.Width / v.Height
}

// NormalizePointer converts client coordinates (origin top-left, y down) to
// device coordinates. Points outside the viewport map outside [-1, 1].
func NormalizePointer(clientX, clientY float32, vp Viewport) PointerSample {
	return PointerSample{
		X: clientX/vp.Width*2 - 1,
		Y: -(clientY/vp.Height)*2 + 1,
	}
}

// PickRay casts a ray from the camera through p.
func PickRay(cam rl.Camera3D, p PointerSample, aspect float32) rl.Ray {
	view := rl.MatrixLookAt(cam.Position, cam.Target, cam.Up)

	var proj rl.Matrix
	if cam.Projection == rl.CameraOrthographic {
		top := cam.Fovy / 2
		right := top * aspect
		proj = rl.MatrixOrtho(-right, right, -top, top, cullNear, cullFar)
	} else {
		proj = rl.MatrixPerspective(cam.Fovy*rl.Deg2rad, aspect, cullNear, cullFar)
	}

	nearPoint := rl.Vector3Unproject(rl.Vector3{X: p.X, Y: p.Y, Z: 0}, proj, view)
	farPoint := rl.Vector3Unproject(rl.Vector3{X: p.X, Y: p.Y, Z: 1}, proj, view)
	direction := rl.Vector3Normalize(rl.Vector3Subtract(farPoint, nearPoint))

	origin := cam.Position
	if cam.Projection == rl.CameraOrthographic {
		origin = rl.Vector3Unproject(rl.Vector3{X: p.X, Y: p.Y, Z: -1}, proj, view)
	}
	return rl.Ray{Position: origin, Direction: direction}
}
