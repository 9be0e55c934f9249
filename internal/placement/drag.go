package placement

// DragState is the state of the drag session.
type DragState int

const (
	Idle DragState = iota
	Dragging
)

func (s DragState) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Command is a pointer event fed to the Controller.
type Command interface {
	pointer() (x, y float32, vp Viewport)
}

// PointerDown starts a drag when the nearest hit is draggable.
type PointerDown struct {
	ClientX, ClientY float32
	Viewport         Viewport
}

// PointerMove updates the pointer and, while dragging, places the object.
type PointerMove struct {
	ClientX, ClientY float32
	Viewport         Viewport
}

// PointerUp ends the drag session.
type PointerUp struct {
	ClientX, ClientY float32
	Viewport         Viewport
}

func (c PointerDown) pointer() (float32, float32, Viewport) { return c.ClientX, c.ClientY, c.Viewport }
func (c PointerMove) pointer() (float32, float32, Viewport) { return c.ClientX, c.ClientY, c.Viewport }
func (c PointerUp) pointer() (float32, float32, Viewport)   { return c.ClientX, c.ClientY, c.Viewport }
