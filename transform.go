package panzoom

import "math"

// Transform maps content-local coordinates to screen coordinates:
//
//	screen = content*Scale + Offset
//
// Scale is always positive for a Transform produced by a Controller.
type Transform struct {
	Scale  float64 `yaml:"scale" toml:"scale"`
	Offset Vec2    `yaml:"offset" toml:"offset"`
}

// Identity returns the transform with Scale 1 and no offset.
func Identity() Transform {
	return Transform{Scale: 1}
}

// Valid reports whether t has a positive, finite scale and a finite offset.
func (t Transform) Valid() bool {
	return t.Scale > 0 && !math.IsInf(t.Scale, 0) && t.Offset.finite()
}

// ContentToScreen converts a content-space point to screen space.
func (t Transform) ContentToScreen(p Vec2) Vec2 {
	return p.Mul(t.Scale).Add(t.Offset)
}

// ScreenToContent converts a screen-space point to content space.
// Returns p unchanged if the scale is not positive.
func (t Transform) ScreenToContent(p Vec2) Vec2 {
	if t.Scale <= 0 {
		return p
	}
	return p.Sub(t.Offset).Div(t.Scale)
}

// Matrix returns the transform as a 2D affine matrix [a, b, c, d, tx, ty].
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func (t Transform) Matrix() [6]float64 {
	return [6]float64{t.Scale, 0, 0, t.Scale, t.Offset.X, t.Offset.Y}
}

// VisibleBounds returns the content-space rectangle visible through the given
// screen-space viewport.
func (t Transform) VisibleBounds(viewport Rect) Rect {
	p0 := t.ScreenToContent(Vec2{viewport.X, viewport.Y})
	p1 := t.ScreenToContent(Vec2{viewport.X + viewport.Width, viewport.Y + viewport.Height})
	return Rect{
		X:      math.Min(p0.X, p1.X),
		Y:      math.Min(p0.Y, p1.Y),
		Width:  math.Abs(p1.X - p0.X),
		Height: math.Abs(p1.Y - p0.Y),
	}
}

// ZoomAt returns t rescaled to newScale such that the content point under
// focal (in screen space) stays under focal. The focal point is converted to
// content space with t itself, so t must be the transform in effect before
// the zoom step.
func ZoomAt(t Transform, focal Vec2, newScale float64) Transform {
	content := t.ScreenToContent(focal)
	projected := content.Mul(newScale).Add(t.Offset)
	return Transform{
		Scale:  newScale,
		Offset: t.Offset.Add(focal.Sub(projected)),
	}
}
