package world

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var ErrInvalidScene = errors.New("invalid scene")

// DefaultReference names the object the placement boundary is derived from.
const DefaultReference = "origin"

// --- JSON types ---

type SceneFile struct {
	BoundaryReference string      `json:"boundaryReference,omitempty"`
	Objects           []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	Name      string     `json:"name"`
	Tag       string     `json:"tag,omitempty"`
	Size      [3]float32 `json:"size"`
	Position  [3]float32 `json:"position"`
	Rotation  [3]float32 `json:"rotation,omitempty"`
	Color     string     `json:"color,omitempty"`
	Opacity   *float32   `json:"opacity,omitempty"`
	Draggable bool       `json:"draggable,omitempty"`
	Hidden    bool       `json:"hidden,omitempty"`
}

// DefaultScene is the original room: a wide floor slab, the origin zone and
// one draggable item.
func DefaultScene() *SceneFile {
	return &SceneFile{
		BoundaryReference: DefaultReference,
		Objects: []ObjectDef{
			{Name: "floor", Size: [3]float32{4000, 3, 4000}, Color: "#838282"},
			{Name: "origin", Tag: "origin", Size: [3]float32{20, 10, 15}, Position: [3]float32{0, 10, 0}, Color: "white"},
			{Name: "item", Tag: "item", Size: [3]float32{1, 3, 0.4}, Position: [3]float32{10, 10, 10}, Color: "red", Draggable: true},
		},
	}
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"red":       rl.Red,
	"blue":      rl.Blue,
	"green":     rl.Green,
	"purple":    rl.Purple,
	"orange":    rl.Orange,
	"yellow":    rl.Yellow,
	"pink":      rl.Pink,
	"skyblue":   rl.SkyBlue,
	"lime":      rl.Lime,
	"magenta":   rl.Magenta,
	"white":     rl.White,
	"lightgray": rl.LightGray,
	"gray":      rl.Gray,
	"darkgray":  rl.DarkGray,
	"black":     rl.Black,
	"brown":     rl.Brown,
	"beige":     rl.Beige,
	"maroon":    rl.Maroon,
	"gold":      rl.Gold,
}

// lookupColor accepts a color name or #rrggbb / #rrggbbaa. Unknown values are white.
func lookupColor(name string) rl.Color {
	if c, ok := colorByName[strings.ToLower(name)]; ok {
		return c
	}
	if raw, ok := strings.CutPrefix(name, "#"); ok && (len(raw) == 6 || len(raw) == 8) {
		b, err := hex.DecodeString(raw)
		if err == nil {
			c := rl.NewColor(b[0], b[1], b[2], 255)
			if len(b) == 4 {
				c.A = b[3]
			}
			return c
		}
	}
	return rl.White
}

// --- Loading ---

func LoadScene(path string) (*SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}

	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if sf.BoundaryReference == "" {
		sf.BoundaryReference = DefaultReference
	}
	if err := sf.Validate(); err != nil {
		return nil, err
	}
	return &sf, nil
}

func (sf *SceneFile) Validate() error {
	for i, def := range sf.Objects {
		if def.Name == "" {
			return fmt.Errorf("%w: object %d has no name", ErrInvalidScene, i)
		}
		for _, s := range def.Size {
			if s <= 0 {
				return fmt.Errorf("%w: object %q has non-positive size %v", ErrInvalidScene, def.Name, def.Size)
			}
		}
		if def.Opacity != nil && (*def.Opacity < 0 || *def.Opacity > 1) {
			return fmt.Errorf("%w: object %q opacity %v outside [0,1]", ErrInvalidScene, def.Name, *def.Opacity)
		}
	}
	return nil
}
