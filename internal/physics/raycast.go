package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// RayHit is the entry point of a ray into a box.
type RayHit struct {
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// RaycastAABB intersects a ray with box using the slab method. Direction must be
// normalized. A ray starting inside the box hits at its exit face.
func RaycastAABB(origin, direction rl.Vector3, box AABB, maxDistance float32) (RayHit, bool) {
	if box.IsEmpty() {
		return RayHit{}, false
	}

	tmin := float32(-1e30)
	tmax := float32(1e30)

	o := [3]float32{origin.X, origin.Y, origin.Z}
	d := [3]float32{direction.X, direction.Y, direction.Z}
	lo := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	for axis := 0; axis < 3; axis++ {
		if d[axis] == 0 {
			// Parallel to this slab: must already be between its planes
			if o[axis] < lo[axis] || o[axis] > hi[axis] {
				return RayHit{}, false
			}
			continue
		}
		t1 := (lo[axis] - o[axis]) / d[axis]
		t2 := (hi[axis] - o[axis]) / d[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return RayHit{}, false
		}
	}

	if tmax < 0 || tmin > maxDistance {
		return RayHit{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t > maxDistance {
		return RayHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	return RayHit{Point: point, Normal: faceNormal(point, box), Distance: t}, true
}

// faceNormal picks the outward normal of the face point lies on.
func faceNormal(point rl.Vector3, box AABB) rl.Vector3 {
	epsilon := float32(0.001)
	switch {
	case abs(point.X-box.Min.X) < epsilon:
		return rl.Vector3{X: -1}
	case abs(point.X-box.Max.X) < epsilon:
		return rl.Vector3{X: 1}
	case abs(point.Y-box.Min.Y) < epsilon:
		return rl.Vector3{Y: -1}
	case abs(point.Y-box.Max.Y) < epsilon:
		return rl.Vector3{Y: 1}
	case abs(point.Z-box.Min.Z) < epsilon:
		return rl.Vector3{Z: -1}
	default:
		return rl.Vector3{Z: 1}
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
