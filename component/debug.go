package component

import (
	"github.com/lixenwraith/ant-colony/vmath"
)

// DrawKind selects the debug primitive
type DrawKind uint8

const (
	DrawCircle DrawKind = iota
	DrawLine
	DrawRect
)

// DebugColor is a small palette the renderer maps to terminal colors
type DebugColor uint8

const (
	ColorWhite DebugColor = iota
	ColorPink
	ColorOrange
	ColorGreen
	ColorYellow
	ColorRed
	ColorBlue
	ColorPurple
	ColorGray
)

// DrawOp is one debug primitive in world coordinates
type DrawOp struct {
	Kind   DrawKind
	From   vmath.Vec2 // Center for circles, start for lines, min corner for rects
	To     vmath.Vec2 // End for lines, max corner for rects
	Radius float64
	Color  DebugColor
}

// VisualDebugComponent collects per-entity debug draw ops for the current tick
// Side channel only; simulation never reads it
type VisualDebugComponent struct {
	Ops []DrawOp
}

func (v *VisualDebugComponent) Circle(center vmath.Vec2, radius float64, c DebugColor) {
	v.Ops = append(v.Ops, DrawOp{Kind: DrawCircle, From: center, Radius: radius, Color: c})
}

func (v *VisualDebugComponent) Line(from, to vmath.Vec2, c DebugColor) {
	v.Ops = append(v.Ops, DrawOp{Kind: DrawLine, From: from, To: to, Color: c})
}

func (v *VisualDebugComponent) Rect(min, max vmath.Vec2, c DebugColor) {
	v.Ops = append(v.Ops, DrawOp{Kind: DrawRect, From: min, To: max, Color: c})
}

// Clear drops ops but keeps capacity
func (v *VisualDebugComponent) Clear() {
	v.Ops = v.Ops[:0]
}
