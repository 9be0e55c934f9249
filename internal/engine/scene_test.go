package engine

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")

	scene.AddGameObject(obj)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject, got %d", len(scene.GameObjects))
	}

	if scene.GameObjects[0] != obj {
		t.Error("GameObject not added to scene")
	}

	if obj.Scene != scene {
		t.Error("GameObject.Scene not set")
	}
}

func TestSceneUIDLookup(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")

	scene.AddGameObject(obj)

	found := scene.FindByUID(obj.UID)
	if found != obj {
		t.Errorf("FindByUID failed: expected %v, got %v", obj, found)
	}

	notFound := scene.FindByUID(99999999)
	if notFound != nil {
		t.Error("FindByUID should return nil for non-existent UID")
	}
}

func TestSceneRemoveGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Player")
	obj2 := NewGameObject("Enemy")

	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)

	scene.RemoveGameObject(obj1)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject after removal, got %d", len(scene.GameObjects))
	}

	if scene.GameObjects[0] != obj2 {
		t.Error("Wrong GameObject removed")
	}

	if scene.FindByUID(obj1.UID) != nil {
		t.Error("Removed GameObject still in UID map")
	}

	if obj1.Scene != nil {
		t.Error("Removed GameObject still points at the scene")
	}
}

func TestSceneFindByName(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("UniquePlayer")

	scene.AddGameObject(obj)

	if scene.FindByName("UniquePlayer") != obj {
		t.Error("FindByName failed")
	}

	if scene.FindByName("DoesNotExist") != nil {
		t.Error("FindByName should return nil for non-existent name")
	}
}

func TestSceneFindByTag(t *testing.T) {
	scene := NewScene("Test")
	scene.AddGameObject(NewBox("wall-l", "left", rl.NewVector3(1, 1, 1), rl.Vector3{}, false))
	scene.AddGameObject(NewBox("wall-l2", "left", rl.NewVector3(1, 1, 1), rl.Vector3{}, false))
	scene.AddGameObject(NewBox("floor", "", rl.NewVector3(1, 1, 1), rl.Vector3{}, false))

	assert.Len(t, scene.FindByTag("left"), 2)
	assert.Len(t, scene.FindByTag(""), 1)
	assert.Empty(t, scene.FindByTag("nonexistent"))
}

func TestSceneUIDMapInitialization(t *testing.T) {
	scene := &Scene{Name: "Zero"}
	obj := NewGameObject("Test")
	scene.AddGameObject(obj) // Should not panic

	if scene.FindByUID(obj.UID) != obj {
		t.Error("uidMap should be initialized on first AddGameObject")
	}
}

func TestSceneIntersectRayOrdersByDistance(t *testing.T) {
	scene := NewScene("Test")
	far := NewBox("floor", "floor", rl.NewVector3(100, 2, 100), rl.NewVector3(0, -1, 0), false)
	near := NewBox("item", "item", rl.NewVector3(2, 2, 2), rl.NewVector3(0, 5, 0), true)
	off := NewBox("aside", "left", rl.NewVector3(1, 1, 1), rl.NewVector3(50, 5, 0), false)
	scene.AddGameObject(far)
	scene.AddGameObject(off)
	scene.AddGameObject(near)

	ray := rl.NewRay(rl.NewVector3(0, 20, 0), rl.NewVector3(0, -2, 0))
	hits := scene.IntersectRay(ray, 1000)

	require.Len(t, hits, 2)
	assert.Same(t, near, hits[0].GameObject)
	assert.InDelta(t, 14, hits[0].Distance, 1e-5)
	assert.Same(t, far, hits[1].GameObject)
	assert.InDelta(t, 20, hits[1].Distance, 1e-5)
	assert.Equal(t, rl.NewVector3(0, 0, 0), hits[1].Point)
}

func TestSceneIntersectRaySkipsInactive(t *testing.T) {
	scene := NewScene("Test")
	hidden := NewBox("hidden", "floor", rl.NewVector3(10, 1, 10), rl.Vector3{}, false)
	hidden.Active = false
	scene.AddGameObject(hidden)

	hits := scene.IntersectRay(rl.NewRay(rl.NewVector3(0, 10, 0), rl.NewVector3(0, -1, 0)), 1000)
	assert.Empty(t, hits)
}
