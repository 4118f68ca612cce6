// Package panzoom is a pan-and-zoom viewport transform controller.
//
// It turns pointer, touch, and wheel input into a 2D scale-and-offset
// [Transform], the kind image viewers and canvas editors apply to their
// content:
//
//	screen = content*Scale + Offset
//
// The package owns no rendering and no event capture. A host delivers
// normalized events to a [Controller] and applies the resulting Transform to
// its scene. The [ebiteninput] sub-package adapts [Ebitengine] input polling to
// the Controller and converts a Transform into an ebiten.GeoM.
//
// # Quick start
//
//	view := panzoom.NewHolder(panzoom.Identity())
//	c := panzoom.NewController(view, panzoom.DefaultConfig())
//
//	c.DragStart(panzoom.Vec2{X: 50, Y: 50})
//	c.DragMove(panzoom.Vec2{X: 80, Y: 65})
//	c.DragEnd()
//	// view.Transform().Offset == {30, 15}
//
//	c.Wheel(panzoom.Vec2{X: 100, Y: 100}, 1)
//	// zoomed out 10% around (100, 100)
//
// # Gestures
//
// A Controller tracks at most one gesture at a time: a single-pointer drag
// or a two-finger pinch. Every update is computed against the snapshot taken
// when the gesture started, never chained from the previous move, so long
// gestures do not drift. A pinch start cancels an in-flight drag. Wheel
// events are independent of gesture state.
//
// Zoom keeps the content point under the cursor (or under the pinch center)
// fixed on screen. [ZoomAt] exposes the same math for zoom buttons and other
// host-driven changes.
//
// # Configuration and tracing
//
// [Config] holds the wheel step, scale limits, and the minimum finger
// distance needed to start a pinch. [LoadConfig] reads it from YAML or TOML.
// A [Tracer] observes every handled event; [LogTracer] writes them through
// charmbracelet/log.
//
// [ebiteninput]: https://pkg.go.dev/github.com/phanxgames/panzoom/ebiteninput
// [Ebitengine]: https://ebitengine.org
package panzoom
