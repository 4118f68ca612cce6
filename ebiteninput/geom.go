package ebiteninput

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/panzoom"
)

// GeoM returns t as an ebiten.GeoM: scale about the origin, then translate
// by the offset.
func GeoM(t panzoom.Transform) ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(t.Scale, t.Scale)
	m.Translate(t.Offset.X, t.Offset.Y)
	return m
}
