package panzoom

// session is the in-flight gesture. A nil session is idle. Exactly one
// concrete session exists at a time, so a drag and a pinch can never overlap.
type session interface {
	state() State
}

// dragSession is the snapshot taken when a single pointer goes down.
type dragSession struct {
	startPointer Vec2
	startOffset  Vec2
}

func (dragSession) state() State { return StateDragging }

// offset returns the pan offset for the pointer at p, rounded to whole
// pixels so the content never lands on a sub-pixel position.
func (s dragSession) offset(p Vec2) Vec2 {
	return s.startOffset.Add(p.Sub(s.startPointer)).Round()
}

// rebase returns the session with its start offset shifted by d, for an
// offset change made outside the drag (a wheel zoom).
func (s dragSession) rebase(d Vec2) dragSession {
	s.startOffset = s.startOffset.Add(d)
	return s
}

// pinchSession is the snapshot taken when two contacts go down.
// startDistance is always > 0.
type pinchSession struct {
	startDistance float64
	startScale    float64
	startCenter   Vec2
	startOffset   Vec2
}

func (pinchSession) state() State { return StatePinching }

// transform returns the pinch result for contacts a and b. The zoom is
// anchored at the start center using the pre-gesture transform, then the
// movement of the center is added as a pan. The two adjustments are
// independent and simply summed.
func (s pinchSession) transform(a, b Vec2, cfg Config) Transform {
	scaleChange := a.Dist(b) / s.startDistance
	newScale := cfg.clampScale(s.startScale * scaleChange)

	start := Transform{Scale: s.startScale, Offset: s.startOffset}
	t := ZoomAt(start, s.startCenter, newScale)
	t.Offset = t.Offset.Add(a.Mid(b).Sub(s.startCenter))
	return t
}

// pendingPinch holds two or more contacts that were too close together to
// start a pinch. Each move retries the start.
type pendingPinch struct{}

func (pendingPinch) state() State { return StatePinching }

// newPinchSession snapshots a pinch for contacts a and b over t. It returns
// false if the contacts are closer than minDistance (or coincide).
func newPinchSession(a, b Vec2, t Transform, minDistance float64) (pinchSession, bool) {
	d := a.Dist(b)
	if !(d > 0) || d < minDistance {
		return pinchSession{}, false
	}
	return pinchSession{
		startDistance: d,
		startScale:    t.Scale,
		startCenter:   a.Mid(b),
		startOffset:   t.Offset,
	}, true
}
