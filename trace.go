package panzoom

import (
	"github.com/charmbracelet/log"
)

// Op identifies the Controller operation a TraceEvent describes.
type Op uint8

const (
	OpDragStart       Op = iota // single pointer pressed
	OpDragMove                  // single pointer moved
	OpDragEnd                   // single pointer released
	OpMultiTouchStart           // two or more contacts down
	OpMultiTouchMove            // contacts moved
	OpMultiTouchEnd             // contact count dropped below two
	OpWheel                     // scroll wheel step
	OpReset                     // Reset called
	OpCancel                    // Cancel called
)

var opNames = [...]string{
	OpDragStart:       "drag start",
	OpDragMove:        "drag move",
	OpDragEnd:         "drag end",
	OpMultiTouchStart: "multitouch start",
	OpMultiTouchMove:  "multitouch move",
	OpMultiTouchEnd:   "multitouch end",
	OpWheel:           "wheel",
	OpReset:           "reset",
	OpCancel:          "cancel",
}

// String returns a short human-readable name.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "unknown"
}

// TraceEvent describes one handled input event.
type TraceEvent struct {
	Op Op
	// Points holds the contact points or cursor the event carried.
	Points []Vec2
	// DeltaY is the wheel delta for OpWheel.
	DeltaY float64
	// Before and After are the transform around the event. They are equal
	// when the event did not change the transform.
	Before Transform
	After  Transform
	// State is the gesture state after the event.
	State State
	// Applied is false when the event was ignored (no matching session,
	// degenerate input, or a conflicting gesture).
	Applied bool
}

// Tracer observes every event a Controller handles. Implementations must not
// call back into the Controller.
type Tracer interface {
	Trace(ev TraceEvent)
}

// TracerFunc adapts a function to the Tracer interface.
type TracerFunc func(TraceEvent)

// Trace calls f(ev).
func (f TracerFunc) Trace(ev TraceEvent) { f(ev) }

// NoopTracer discards all events. It is the Controller default.
type NoopTracer struct{}

// Trace does nothing.
func (NoopTracer) Trace(TraceEvent) {}

type logTracer struct {
	logger *log.Logger
}

// LogTracer returns a Tracer that writes each event at debug level.
// A nil logger uses log.Default().
func LogTracer(l *log.Logger) Tracer {
	if l == nil {
		l = log.Default()
	}
	return logTracer{logger: l}
}

func (t logTracer) Trace(ev TraceEvent) {
	kv := []any{
		"state", ev.State,
		"scale", ev.After.Scale,
		"offset", ev.After.Offset,
	}
	if len(ev.Points) > 0 {
		kv = append(kv, "points", ev.Points)
	}
	if ev.Op == OpWheel {
		kv = append(kv, "deltaY", ev.DeltaY)
	}
	if !ev.Applied {
		kv = append(kv, "ignored", true)
	}
	t.logger.Debug(ev.Op.String(), kv...)
}
