package panzoom

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyScript is returned by LoadScript for a script with no steps.
	ErrEmptyScript = errors.New("script has no steps")
	// ErrUnknownAction is returned by LoadScript for an unrecognized action.
	ErrUnknownAction = errors.New("unknown action")
	// ErrInvalidStep is returned by LoadScript when a step is missing the
	// points its action needs.
	ErrInvalidStep = errors.New("invalid step")
)

// scriptStep is a single gesture in a script.
type scriptStep struct {
	Action string `yaml:"action"`
	// At is the cursor for wheel.
	At Vec2 `yaml:"at"`
	// From and To are the contact points at the start and end of a drag (one
	// point) or pinch (two points).
	From []Vec2 `yaml:"from"`
	To   []Vec2 `yaml:"to"`
	// Moves is the number of intermediate move events between From and To.
	Moves int `yaml:"moves"`
	// Delta is the wheel deltaY.
	Delta float64 `yaml:"delta"`
	// Repeat repeats a wheel step.
	Repeat int `yaml:"repeat"`
}

type scriptFile struct {
	Steps []scriptStep `yaml:"steps"`
}

// Script is a recorded sequence of gestures that can be replayed against a
// Controller. Scripts are written in YAML (or JSON):
//
//	steps:
//	  - {action: drag, from: [{x: 50, y: 50}], to: [{x: 80, y: 65}], moves: 3}
//	  - {action: pinch, from: [{x: 0, y: 0}, {x: 100, y: 0}], to: [{x: -50, y: 0}, {x: 150, y: 0}]}
//	  - {action: wheel, at: {x: 100, y: 100}, delta: 1, repeat: 2}
//	  - {action: reset}
type Script struct {
	steps []scriptStep
}

// LoadScript parses and checks a script.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: %w", ErrEmptyScript)
	}
	for i, st := range f.Steps {
		if err := st.check(); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
	}
	return &Script{steps: f.Steps}, nil
}

func (st scriptStep) check() error {
	switch st.Action {
	case "drag":
		if len(st.From) < 1 || len(st.To) < 1 {
			return fmt.Errorf("%w: drag needs from and to", ErrInvalidStep)
		}
	case "pinch":
		if len(st.From) < 2 || len(st.To) < 2 {
			return fmt.Errorf("%w: pinch needs two from and two to points", ErrInvalidStep)
		}
	case "wheel":
		if st.Delta == 0 {
			return fmt.Errorf("%w: wheel needs a non-zero delta", ErrInvalidStep)
		}
	case "reset":
	default:
		return fmt.Errorf("%w %q", ErrUnknownAction, st.Action)
	}
	if st.Moves < 0 || st.Repeat < 0 {
		return fmt.Errorf("%w: negative moves or repeat", ErrInvalidStep)
	}
	return nil
}

// Len returns the number of steps.
func (s *Script) Len() int {
	return len(s.steps)
}

// Play feeds every step to c in order. Each drag and pinch is a complete
// start, move, end sequence.
func (s *Script) Play(c *Controller) {
	for _, st := range s.steps {
		st.play(c)
	}
}

func (st scriptStep) play(c *Controller) {
	switch st.Action {
	case "drag":
		c.DragStart(st.From[0])
		for _, t := range moveFractions(st.Moves) {
			c.DragMove(lerp(st.From[0], st.To[0], t))
		}
		c.DragEnd()
	case "pinch":
		c.MultiTouchStart(st.From[:2])
		for _, t := range moveFractions(st.Moves) {
			c.MultiTouchMove([]Vec2{
				lerp(st.From[0], st.To[0], t),
				lerp(st.From[1], st.To[1], t),
			})
		}
		c.MultiTouchEnd()
	case "wheel":
		n := max(st.Repeat, 1)
		for range n {
			c.Wheel(st.At, st.Delta)
		}
	case "reset":
		c.Reset()
	}
}

// moveFractions returns the interpolation points for moves intermediate
// events plus the final one at 1.
func moveFractions(moves int) []float64 {
	n := moves + 1
	out := make([]float64, n)
	for i := 1; i <= n; i++ {
		out[i-1] = float64(i) / float64(n)
	}
	return out
}

func lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}
