package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaycastAABB(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{}, rl.NewVector3(2, 2, 2))

	tests := []struct {
		name      string
		origin    rl.Vector3
		direction rl.Vector3
		maxDist   float32
		wantHit   bool
		wantDist  float32
		wantNorm  rl.Vector3
	}{
		{"from above", rl.NewVector3(0, 10, 0), rl.NewVector3(0, -1, 0), 100, true, 9, rl.NewVector3(0, 1, 0)},
		{"from -x", rl.NewVector3(-5, 0, 0), rl.NewVector3(1, 0, 0), 100, true, 4, rl.NewVector3(-1, 0, 0)},
		{"from +z", rl.NewVector3(0.5, 0.5, 3), rl.NewVector3(0, 0, -1), 100, true, 2, rl.NewVector3(0, 0, 1)},
		{"pointing away", rl.NewVector3(0, 10, 0), rl.NewVector3(0, 1, 0), 100, false, 0, rl.Vector3{}},
		{"parallel miss", rl.NewVector3(0, 5, 0), rl.NewVector3(1, 0, 0), 100, false, 0, rl.Vector3{}},
		{"beyond max distance", rl.NewVector3(0, 10, 0), rl.NewVector3(0, -1, 0), 5, false, 0, rl.Vector3{}},
		{"inside hits exit face", rl.Vector3{}, rl.NewVector3(0, -1, 0), 100, true, 1, rl.NewVector3(0, -1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := RaycastAABB(tt.origin, tt.direction, box, tt.maxDist)
			require.Equal(t, tt.wantHit, ok)
			if !ok {
				return
			}
			assert.InDelta(t, tt.wantDist, hit.Distance, 1e-5)
			assert.Equal(t, tt.wantNorm, hit.Normal)
		})
	}
}

func TestRaycastAABBEmptyBox(t *testing.T) {
	_, ok := RaycastAABB(rl.NewVector3(0, 10, 0), rl.NewVector3(0, -1, 0), EmptyAABB(), 100)
	assert.False(t, ok)
}
