package engine

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if obj.UID == 0 {
		t.Error("UID should not be 0")
	}

	if obj.Transform.Scale != (rl.Vector3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("Expected unit scale, got %v", obj.Transform.Scale)
	}
}

func TestGameObjectUniqueUIDs(t *testing.T) {
	obj1 := NewGameObject("First")
	obj2 := NewGameObject("Second")
	obj3 := NewGameObject("Third")

	if obj1.UID == obj2.UID {
		t.Error("GameObjects should have unique UIDs")
	}
	if obj2.UID == obj3.UID {
		t.Error("GameObjects should have unique UIDs")
	}
	if obj1.UID == obj3.UID {
		t.Error("GameObjects should have unique UIDs")
	}
}

func TestWorldBoundsUnrotated(t *testing.T) {
	obj := NewBox("item", "item", rl.NewVector3(1, 3, 0.4), rl.NewVector3(10, 10, 10), true)

	box := obj.WorldBounds()
	assertVec(t, rl.NewVector3(9.5, 8.5, 9.8), box.Min)
	assertVec(t, rl.NewVector3(10.5, 11.5, 10.2), box.Max)
}

func TestWorldBoundsFollowsScale(t *testing.T) {
	obj := NewBox("item", "", rl.NewVector3(1, 1, 1), rl.Vector3{}, false)
	obj.Transform.Scale = rl.NewVector3(2, -4, 1)

	size := obj.WorldBounds().Size()
	assert.InDelta(t, 2, size.X, 1e-6)
	assert.InDelta(t, 4, size.Y, 1e-6)
	assert.InDelta(t, 1, size.Z, 1e-6)
}

func TestWorldBoundsQuarterTurnSwapsXZ(t *testing.T) {
	for _, yaw := range []float32{90, -90} {
		obj := NewBox("item", "item", rl.NewVector3(1, 3, 0.4), rl.NewVector3(0, 10, 0), true)
		obj.Transform.Rotation = rl.NewVector3(0, yaw, 0)

		size := obj.WorldBounds().Size()
		assert.InDelta(t, 0.4, size.X, 1e-5, "yaw %v", yaw)
		assert.InDelta(t, 3, size.Y, 1e-5, "yaw %v", yaw)
		assert.InDelta(t, 1, size.Z, 1e-5, "yaw %v", yaw)

		center := obj.WorldBounds().Center()
		assert.InDelta(t, 0, center.X, 1e-5)
		assert.InDelta(t, 10, center.Y, 1e-5)
		assert.InDelta(t, 0, center.Z, 1e-5)
	}
}

func assertVec(t *testing.T, want, got rl.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-5)
	assert.InDelta(t, want.Y, got.Y, 1e-5)
	assert.InDelta(t, want.Z, got.Z, 1e-5)
}
