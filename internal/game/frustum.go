package game

import (
	"roomdrag/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	frustumNear = 0.01
	frustumFar  = 1000
)

type plane struct {
	normal rl.Vector3
	d      float32
}

// frustum holds the left, right, bottom, top, near and far clip planes with
// normals pointing inward.
type frustum [6]plane

// viewFrustum extracts the clip planes from the camera's view-projection
// matrix (Gribb/Hartmann).
func viewFrustum(cam rl.Camera3D, aspect float32) frustum {
	view := rl.MatrixLookAt(cam.Position, cam.Target, cam.Up)
	var proj rl.Matrix
	if cam.Projection == rl.CameraOrthographic {
		top := cam.Fovy / 2
		right := top * aspect
		proj = rl.MatrixOrtho(-right, right, -top, top, frustumNear, frustumFar)
	} else {
		proj = rl.MatrixPerspective(cam.Fovy*rl.Deg2rad, aspect, frustumNear, frustumFar)
	}
	m := rl.MatrixMultiply(view, proj)

	rows := [4][4]float32{
		{m.M0, m.M4, m.M8, m.M12},
		{m.M1, m.M5, m.M9, m.M13},
		{m.M2, m.M6, m.M10, m.M14},
		{m.M3, m.M7, m.M11, m.M15},
	}
	w := rows[3]

	var f frustum
	for i := 0; i < 3; i++ {
		r := rows[i]
		f[2*i] = newPlane(w[0]+r[0], w[1]+r[1], w[2]+r[2], w[3]+r[3])
		f[2*i+1] = newPlane(w[0]-r[0], w[1]-r[1], w[2]-r[2], w[3]-r[3])
	}
	return f
}

func newPlane(a, b, c, d float32) plane {
	n := rl.Vector3{X: a, Y: b, Z: c}
	length := rl.Vector3Length(n)
	if length == 0 {
		return plane{normal: n, d: d}
	}
	return plane{normal: rl.Vector3Scale(n, 1/length), d: d / length}
}

// intersects reports whether any part of box lies inside the frustum. It
// tests the box corner furthest along each plane normal.
func (f *frustum) intersects(box physics.AABB) bool {
	if box.IsEmpty() {
		return false
	}
	for _, p := range f {
		v := box.Min
		if p.normal.X >= 0 {
			v.X = box.Max.X
		}
		if p.normal.Y >= 0 {
			v.Y = box.Max.Y
		}
		if p.normal.Z >= 0 {
			v.Z = box.Max.Z
		}
		if rl.Vector3DotProduct(p.normal, v)+p.d < 0 {
			return false
		}
	}
	return true
}
