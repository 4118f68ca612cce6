package panzoom

import (
	"math"
	"slices"
)

// Owner holds the Transform a Controller drives. The host owns the value;
// the Controller reads it at the start of every event and writes the result
// back through SetTransform.
type Owner interface {
	Transform() Transform
	SetTransform(t Transform)
}

// Holder is a plain in-memory Owner.
type Holder struct {
	t Transform
}

// NewHolder returns a Holder initialized to t.
func NewHolder(t Transform) *Holder {
	return &Holder{t: t}
}

// Transform returns the held value.
func (h *Holder) Transform() Transform { return h.t }

// SetTransform replaces the held value.
func (h *Holder) SetTransform(t Transform) { h.t = t }

// --- Change callbacks ---

type changeHandler struct {
	id uint32
	fn func(Transform)
}

// CallbackHandle allows removing a registered change callback.
type CallbackHandle struct {
	id uint32
	c  *Controller
}

// Remove unregisters this callback so it no longer fires. It is safe to call
// from inside a change callback.
func (h CallbackHandle) Remove() {
	if h.c == nil {
		return
	}
	s := h.c.handlers
	for i := range s {
		if s[i].id == h.id {
			s[i].fn = nil
			h.c.handlers = append(s[:i:i], s[i+1:]...)
			return
		}
	}
}

// --- Controller ---

// Controller converts drag, pinch, and wheel events into Transform updates.
// It is not safe for concurrent use; deliver events from one goroutine.
type Controller struct {
	owner    Owner
	cfg      Config
	tracer   Tracer
	session  session
	handlers []*changeHandler
	nextID   uint32
}

// NewController creates a Controller driving owner. Zero or out-of-range
// fields of cfg are replaced by their defaults; use Config.Validate to
// detect them. A nil owner gets a Holder set to cfg.Initial.
func NewController(owner Owner, cfg Config) *Controller {
	cfg = cfg.withDefaults()
	if owner == nil {
		owner = NewHolder(cfg.Initial)
	}
	return &Controller{
		owner:  owner,
		cfg:    cfg,
		tracer: NoopTracer{},
	}
}

// Config returns the effective settings.
func (c *Controller) Config() Config {
	return c.cfg
}

// Owner returns the Owner this Controller drives.
func (c *Controller) Owner() Owner {
	return c.owner
}

// SetTracer installs a Tracer. Nil restores NoopTracer.
func (c *Controller) SetTracer(t Tracer) {
	if t == nil {
		t = NoopTracer{}
	}
	c.tracer = t
}

// OnChange registers a callback fired with the new Transform after every
// mutating event, after the Owner has been updated.
func (c *Controller) OnChange(fn func(Transform)) CallbackHandle {
	c.nextID++
	id := c.nextID
	c.handlers = append(c.handlers, &changeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, c: c}
}

// State reports the gesture in flight.
func (c *Controller) State() State {
	if c.session == nil {
		return StateIdle
	}
	return c.session.state()
}

// Transform returns the Owner's current transform, repaired if the host
// stored a non-positive or non-finite value: a bad scale falls back to
// Config.Initial's scale and a bad offset to zero.
func (c *Controller) Transform() Transform {
	t := c.owner.Transform()
	if t.Valid() {
		return t
	}
	if !(t.Scale > 0) || math.IsInf(t.Scale, 0) {
		t.Scale = c.cfg.Initial.Scale
	}
	if !t.Offset.finite() {
		t.Offset = Vec2{}
	}
	return t
}

// --- Drag ---

// DragStart begins a single-pointer pan at p. Ignored while a pinch is in
// flight.
func (c *Controller) DragStart(p Vec2) {
	t := c.Transform()
	switch c.session.(type) {
	case pinchSession, pendingPinch:
		c.trace(OpDragStart, t, t, false, 0, p)
		return
	}
	if !p.finite() {
		c.trace(OpDragStart, t, t, false, 0, p)
		return
	}
	c.session = dragSession{startPointer: p, startOffset: t.Offset}
	c.trace(OpDragStart, t, t, true, 0, p)
}

// DragMove pans so the content follows the pointer from its start position.
// Ignored without an active drag.
func (c *Controller) DragMove(p Vec2) {
	before := c.Transform()
	s, ok := c.session.(dragSession)
	if !ok || !p.finite() {
		c.trace(OpDragMove, before, before, false, 0, p)
		return
	}
	after := before
	after.Offset = s.offset(p)
	c.emit(OpDragMove, before, after, 0, p)
}

// DragEnd ends a drag. Ignored without an active drag.
func (c *Controller) DragEnd() {
	t := c.Transform()
	_, ok := c.session.(dragSession)
	if ok {
		c.session = nil
	}
	c.trace(OpDragEnd, t, t, ok, 0)
}

// --- Pinch ---

// MultiTouchStart begins a pinch from the first two points, cancelling any
// drag. Fewer than two points are ignored. If the points are closer than
// Config.MinPinchDistance the start is deferred to the next
// MultiTouchMove with enough separation.
func (c *Controller) MultiTouchStart(points []Vec2) {
	t := c.Transform()
	if len(points) < 2 || !points[0].finite() || !points[1].finite() {
		c.trace(OpMultiTouchStart, t, t, false, 0, points...)
		return
	}
	c.beginPinch(points[0], points[1], t)
	c.trace(OpMultiTouchStart, t, t, true, 0, points...)
}

// MultiTouchMove zooms around the pinch start center by the change in finger
// distance and pans by the movement of the center. Fewer than two points
// end the pinch.
func (c *Controller) MultiTouchMove(points []Vec2) {
	before := c.Transform()
	if len(points) < 2 {
		c.endPinch(OpMultiTouchMove, before, points)
		return
	}
	a, b := points[0], points[1]
	if !a.finite() || !b.finite() {
		c.trace(OpMultiTouchMove, before, before, false, 0, points...)
		return
	}

	switch s := c.session.(type) {
	case pinchSession:
		c.emit(OpMultiTouchMove, before, s.transform(a, b, c.cfg), 0, points...)
	case pendingPinch:
		c.beginPinch(a, b, before)
		c.trace(OpMultiTouchMove, before, before, true, 0, points...)
	default:
		c.trace(OpMultiTouchMove, before, before, false, 0, points...)
	}
}

// MultiTouchEnd ends a pinch. Ignored without one.
func (c *Controller) MultiTouchEnd() {
	c.endPinch(OpMultiTouchEnd, c.Transform(), nil)
}

func (c *Controller) beginPinch(a, b Vec2, t Transform) {
	if s, ok := newPinchSession(a, b, t, c.cfg.MinPinchDistance); ok {
		c.session = s
		return
	}
	c.session = pendingPinch{}
}

func (c *Controller) endPinch(op Op, t Transform, points []Vec2) {
	var ok bool
	switch c.session.(type) {
	case pinchSession, pendingPinch:
		c.session = nil
		ok = true
	}
	c.trace(op, t, t, ok, 0, points...)
}

// --- Wheel ---

// Wheel zooms one step around cursor: out when deltaY > 0, in when
// deltaY < 0. A zero delta is ignored. Wheel does not change the gesture
// state; an active drag is rebased on the zoomed offset so the next
// DragMove continues from where the content is now.
func (c *Controller) Wheel(cursor Vec2, deltaY float64) {
	before := c.Transform()
	if deltaY == 0 || math.IsNaN(deltaY) || !cursor.finite() {
		c.trace(OpWheel, before, before, false, deltaY, cursor)
		return
	}
	factor := 1 + c.cfg.WheelFactor
	if deltaY > 0 {
		factor = 1 - c.cfg.WheelFactor
	}
	newScale := c.cfg.clampScale(before.Scale * factor)
	after := ZoomAt(before, cursor, newScale)
	if s, ok := c.session.(dragSession); ok {
		c.session = s.rebase(after.Offset.Sub(before.Offset))
	}
	c.emit(OpWheel, before, after, deltaY, cursor)
}

// --- Reset / Cancel ---

// Reset drops any gesture and restores Config.Initial.
func (c *Controller) Reset() {
	c.session = nil
	c.emit(OpReset, c.Transform(), c.cfg.Initial, 0)
}

// Cancel drops any gesture without changing the transform.
func (c *Controller) Cancel() {
	t := c.Transform()
	ok := c.session != nil
	c.session = nil
	c.trace(OpCancel, t, t, ok, 0)
}

// emit stores after in the Owner, fires change callbacks, and traces.
func (c *Controller) emit(op Op, before, after Transform, deltaY float64, points ...Vec2) {
	c.owner.SetTransform(after)
	// Remove never mutates a slice in place, so hs is stable while callbacks
	// add or remove handlers. Handlers removed mid-dispatch have a nil fn.
	hs := c.handlers
	for _, h := range hs {
		if h.fn != nil {
			h.fn(after)
		}
	}
	c.trace(op, before, after, true, deltaY, points...)
}

func (c *Controller) trace(op Op, before, after Transform, applied bool, deltaY float64, points ...Vec2) {
	c.tracer.Trace(TraceEvent{
		Op:      op,
		Points:  slices.Clone(points),
		DeltaY:  deltaY,
		Before:  before,
		After:   after,
		State:   c.State(),
		Applied: applied,
	})
}
