package render

import (
	"math"

	"github.com/lixenwraith/ant-colony/vmath"
)

const (
	// CellAspect is terminal cell height over width
	CellAspect = 2.0

	MinScale = 1.0
	MaxScale = 64.0

	// statusRows reserved at the bottom of the screen
	statusRows = 1
)

// Camera maps world coordinates onto terminal cells
// Scale is world units per column; a row spans Scale*CellAspect
type Camera struct {
	Center vmath.Vec2
	Scale  float64
}

// NewCamera returns a camera centered on the origin at the given scale
func NewCamera(scale float64) Camera {
	return Camera{Scale: vmath.Clamp(scale, MinScale, MaxScale)}
}

// viewport is the drawable area excluding the status row
func viewport(w, h int) (int, int) {
	return w, max(0, h-statusRows)
}

// ToScreen returns the cell for p and whether it falls in the viewport
func (c *Camera) ToScreen(p vmath.Vec2, w, h int) (int, int, bool) {
	if !p.IsFinite() {
		return 0, 0, false
	}
	vw, vh := viewport(w, h)
	fx := (p.X-c.Center.X)/c.Scale + float64(vw)/2
	fy := (p.Y-c.Center.Y)/(c.Scale*CellAspect) + float64(vh)/2
	x, y := int(math.Floor(fx)), int(math.Floor(fy))
	return x, y, x >= 0 && y >= 0 && x < vw && y < vh
}

// ToWorld returns the world point at the center of cell (x, y)
func (c *Camera) ToWorld(x, y, w, h int) vmath.Vec2 {
	vw, vh := viewport(w, h)
	return vmath.V2(
		(float64(x)+0.5-float64(vw)/2)*c.Scale+c.Center.X,
		(float64(y)+0.5-float64(vh)/2)*c.Scale*CellAspect+c.Center.Y,
	)
}

// Pan moves the camera by whole cells
func (c *Camera) Pan(dx, dy int) {
	c.Center.X += float64(dx) * c.Scale
	c.Center.Y += float64(dy) * c.Scale * CellAspect
}

// Zoom multiplies Scale by factor, clamped
func (c *Camera) Zoom(factor float64) {
	c.Scale = vmath.Clamp(c.Scale*factor, MinScale, MaxScale)
}

// Fit centers on the box and picks the smallest scale that shows all of it
func (c *Camera) Fit(lo, hi vmath.Vec2, w, h int) {
	vw, vh := viewport(w, h)
	if vw <= 2 || vh <= 2 || !lo.IsFinite() || !hi.IsFinite() {
		return
	}
	c.Center = vmath.V2Scale(vmath.V2Add(lo, hi), 0.5)
	sx := (hi.X - lo.X) / float64(vw-2)
	sy := (hi.Y - lo.Y) / (float64(vh-2) * CellAspect)
	c.Scale = vmath.Clamp(math.Max(sx, sy), MinScale, MaxScale)
}
