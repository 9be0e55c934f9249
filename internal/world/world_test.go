package world

import (
	"os"
	"path/filepath"
	"testing"

	"roomdrag/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap/zapcore"
)

func TestNewDefaultScene(t *testing.T) {
	w, err := New(DefaultScene(), rl.NewVector3(0.4, 0, 0.4), nil)
	require.NoError(t, err)

	require.Len(t, w.Scene.GameObjects, 3)
	require.NotNil(t, w.Reference)
	assert.Equal(t, "origin", w.Reference.Name)

	item := w.Scene.FindByName("item")
	require.NotNil(t, item)
	assert.True(t, item.Draggable)
	assert.Equal(t, rl.NewVector3(10, 10, 10), item.Transform.Position)
	assert.Equal(t, rl.Red, item.Color)

	floor := w.Scene.FindByName("floor")
	require.NotNil(t, floor)
	assert.False(t, floor.Draggable)
	assert.Equal(t, "", floor.Tag)
	assert.Equal(t, rl.NewColor(0x83, 0x82, 0x82, 255), floor.Color)

	inside := physics.NewAABBFromCenter(rl.NewVector3(0, 10, 0), rl.NewVector3(1, 3, 0.4))
	assert.True(t, w.Boundary.Contains(inside))
	outside := physics.NewAABBFromCenter(rl.NewVector3(10, 10, 0), rl.NewVector3(1, 3, 0.4))
	assert.False(t, w.Boundary.Contains(outside))
}

func TestNewWithoutReferenceUsesEmptyBoundary(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	sf := DefaultScene()
	sf.BoundaryReference = "missing"

	w, err := New(sf, rl.Vector3{}, zap.New(core))
	require.NoError(t, err)

	assert.Nil(t, w.Reference)
	assert.True(t, w.Boundary.IsEmpty())
	assert.Equal(t, 1, logs.Len())
}

func TestHiddenReferenceStillBounds(t *testing.T) {
	sf := &SceneFile{
		BoundaryReference: "zone",
		Objects: []ObjectDef{
			{Name: "zone", Size: [3]float32{4, 4, 4}, Hidden: true},
		},
	}
	w, err := New(sf, rl.Vector3{}, nil)
	require.NoError(t, err)

	assert.False(t, w.Reference.Active)
	assert.False(t, w.Boundary.IsEmpty())
	assert.Empty(t, w.Scene.IntersectRay(rl.NewRay(rl.NewVector3(0, 10, 0), rl.NewVector3(0, -1, 0)), 100))
}

func TestLoadScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "room.json")
	body := `{
  "objects": [
    {"name": "floor", "size": [100, 1, 100], "color": "gray"},
    {"name": "origin", "tag": "origin", "size": [20, 10, 15], "position": [0, 10, 0], "opacity": 0.5},
    {"name": "west", "tag": "left", "size": [1, 20, 40], "position": [-30, 10, 0], "rotation": [0, 0, 0]},
    {"name": "item", "tag": "item", "size": [1, 3, 0.4], "position": [10, 10, 10], "color": "#ff000080", "draggable": true}
  ]
}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	sf, err := LoadScene(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultReference, sf.BoundaryReference)
	require.Len(t, sf.Objects, 4)

	w, err := New(sf, rl.Vector3{}, nil)
	require.NoError(t, err)

	assert.Equal(t, uint8(127), w.Scene.FindByName("origin").Color.A)
	assert.Equal(t, rl.NewColor(255, 0, 0, 128), w.Scene.FindByName("item").Color)
	assert.Len(t, w.Scene.FindByTag("left"), 1)
}

func TestLoadSceneErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadScene(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"objects": [`), 0644))
	_, err = LoadScene(bad)
	assert.Error(t, err)

	flat := filepath.Join(dir, "flat.json")
	require.NoError(t, os.WriteFile(flat, []byte(`{"objects": [{"name": "x", "size": [1, 0, 1]}]}`), 0644))
	_, err = LoadScene(flat)
	assert.ErrorIs(t, err, ErrInvalidScene)
}

func TestLookupColor(t *testing.T) {
	assert.Equal(t, rl.Red, lookupColor("Red"))
	assert.Equal(t, rl.NewColor(0x83, 0x82, 0x82, 255), lookupColor("#838282"))
	assert.Equal(t, rl.White, lookupColor("#zzzzzz"))
	assert.Equal(t, rl.White, lookupColor("chartreuse-ish"))
	assert.Equal(t, rl.White, lookupColor(""))
}
