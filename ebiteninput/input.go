// Package ebiteninput feeds Ebitengine mouse, touch, and wheel input to a
// panzoom.Controller.
//
// Call [Adapter.Update] once per tick from your game's Update method:
//
//	func (g *Game) Update() error {
//		g.input.Update()
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		op := &ebiten.DrawImageOptions{GeoM: ebiteninput.GeoM(g.view.Transform())}
//		screen.DrawImage(g.content, op)
//	}
//
// The left mouse button or a single touch drags. Two or more touches pinch
// using the two oldest contacts. The wheel zooms around the cursor.
package ebiteninput

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/panzoom"
)

const maxTouches = 9 // touch slots 1-9; slot 0 is reserved for the mouse

// Touch is one active touch contact.
type Touch struct {
	ID  ebiten.TouchID
	Pos panzoom.Vec2
}

// Frame is the input state polled for a single tick.
type Frame struct {
	Cursor    panzoom.Vec2
	MouseDown bool
	Touches   []Touch
	// WheelY follows ebiten.Wheel: positive when scrolled up (zoom in).
	WheelY float64
}

// mode is the gesture source the adapter is currently forwarding.
type mode uint8

const (
	modeNone mode = iota
	modeMouseDrag
	modeTouchDrag
	modePinch
)

// Adapter converts polled Ebitengine input into Controller events.
type Adapter struct {
	c *panzoom.Controller

	mode      mode
	mouseDown bool
	lastMouse panzoom.Vec2
	lastTouch panzoom.Vec2

	touchMap  [maxTouches + 1]ebiten.TouchID
	touchUsed [maxTouches + 1]bool
	touchPos  [maxTouches + 1]panzoom.Vec2

	touchIDs []ebiten.TouchID
	points   []panzoom.Vec2
}

// New returns an Adapter driving c.
func New(c *panzoom.Controller) *Adapter {
	return &Adapter{c: c}
}

// Controller returns the driven Controller.
func (a *Adapter) Controller() *panzoom.Controller {
	return a.c
}

// Update polls Ebitengine and processes the result. Call it from
// ebiten.Game.Update.
func (a *Adapter) Update() {
	a.Process(a.Poll())
}

// Poll reads the current mouse, touch, and wheel state from Ebitengine.
func (a *Adapter) Poll() Frame {
	mx, my := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()

	a.touchIDs = ebiten.AppendTouchIDs(a.touchIDs[:0])
	touches := make([]Touch, 0, len(a.touchIDs))
	for _, id := range a.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		touches = append(touches, Touch{ID: id, Pos: panzoom.Vec2{X: float64(tx), Y: float64(ty)}})
	}

	return Frame{
		Cursor:    panzoom.Vec2{X: float64(mx), Y: float64(my)},
		MouseDown: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Touches:   touches,
		WheelY:    wy,
	}
}

// Process runs one tick of the gesture state machine for f.
func (a *Adapter) Process(f Frame) {
	points := a.trackTouches(f.Touches)
	a.processTouches(points)
	a.processMouse(f.Cursor, f.MouseDown)

	if f.WheelY != 0 {
		// Ebitengine reports scroll-up as positive; the controller zooms out
		// on positive deltas.
		a.c.Wheel(f.Cursor, -f.WheelY)
	}
}

// trackTouches maps touch IDs to stable slots, releases slots whose touch
// ended, and returns the active positions in slot order.
func (a *Adapter) trackTouches(touches []Touch) []panzoom.Vec2 {
	var active [maxTouches + 1]bool
	for _, t := range touches {
		slot := a.touchSlot(t.ID)
		if slot < 0 {
			continue
		}
		active[slot] = true
		a.touchPos[slot] = t.Pos
	}

	for i := 1; i <= maxTouches; i++ {
		if a.touchUsed[i] && !active[i] {
			a.touchUsed[i] = false
			a.touchMap[i] = 0
		}
	}

	a.points = a.points[:0]
	for i := 1; i <= maxTouches; i++ {
		if a.touchUsed[i] {
			a.points = append(a.points, a.touchPos[i])
		}
	}
	return a.points
}

// touchSlot maps an ebiten.TouchID to a slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (a *Adapter) touchSlot(id ebiten.TouchID) int {
	for i := 1; i <= maxTouches; i++ {
		if a.touchUsed[i] && a.touchMap[i] == id {
			return i
		}
	}
	for i := 1; i <= maxTouches; i++ {
		if !a.touchUsed[i] {
			a.touchUsed[i] = true
			a.touchMap[i] = id
			return i
		}
	}
	return -1
}

func (a *Adapter) processTouches(points []panzoom.Vec2) {
	n := len(points)

	if a.mode == modePinch && n < 2 {
		a.c.MultiTouchEnd()
		a.mode = modeNone
	}

	switch {
	case n >= 2:
		if a.mode == modePinch {
			a.c.MultiTouchMove(points)
			return
		}
		// A pinch takes over from any drag in progress.
		a.c.MultiTouchStart(points)
		a.mode = modePinch
	case n == 1:
		p := points[0]
		switch a.mode {
		case modeNone:
			a.c.DragStart(p)
			a.mode = modeTouchDrag
			a.lastTouch = p
		case modeTouchDrag:
			if p != a.lastTouch {
				a.c.DragMove(p)
				a.lastTouch = p
			}
		}
	case n == 0:
		if a.mode == modeTouchDrag {
			a.c.DragEnd()
			a.mode = modeNone
		}
	}
}

func (a *Adapter) processMouse(cursor panzoom.Vec2, pressed bool) {
	switch {
	case pressed && !a.mouseDown:
		a.mouseDown = true
		a.lastMouse = cursor
		if a.mode == modeNone {
			a.c.DragStart(cursor)
			a.mode = modeMouseDrag
		}
	case pressed && a.mouseDown:
		if a.mode == modeMouseDrag && cursor != a.lastMouse {
			a.c.DragMove(cursor)
		}
		a.lastMouse = cursor
	case !pressed && a.mouseDown:
		a.mouseDown = false
		if a.mode == modeMouseDrag {
			a.c.DragEnd()
			a.mode = modeNone
		}
	}
}
