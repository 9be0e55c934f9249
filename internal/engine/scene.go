package engine

import (
	"cmp"
	"slices"

	"roomdrag/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaycastResult holds information about a raycast hit.
type RaycastResult struct {
	GameObject *GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

type Scene struct {
	Name        string
	GameObjects []*GameObject
	uidMap      map[uint64]*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[uint64]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.uidMap[g.UID] = g
}

func (s *Scene) RemoveGameObject(g *GameObject) {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			delete(s.uidMap, g.UID)
			g.Scene = nil
			return
		}
	}
}

func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.uidMap[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.Tag == tag {
			result = append(result, g)
		}
	}
	return result
}

// IntersectRay returns every active object the ray hits within maxDistance,
// nearest first. Objects hit at the same distance keep scene order.
func (s *Scene) IntersectRay(ray rl.Ray, maxDistance float32) []RaycastResult {
	direction := rl.Vector3Normalize(ray.Direction)

	var hits []RaycastResult
	for _, g := range s.GameObjects {
		if !g.Active {
			continue
		}
		hit, ok := physics.RaycastAABB(ray.Position, direction, g.WorldBounds(), maxDistance)
		if !ok {
			continue
		}
		hits = append(hits, RaycastResult{
			GameObject: g,
			Point:      hit.Point,
			Normal:     hit.Normal,
			Distance:   hit.Distance,
		})
	}

	slices.SortStableFunc(hits, func(a, b RaycastResult) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
	return hits
}
