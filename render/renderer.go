// Package render draws the colony world onto a tcell screen
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ant-colony/component"
	"github.com/lixenwraith/ant-colony/engine"
	"github.com/lixenwraith/ant-colony/scent"
	"github.com/lixenwraith/ant-colony/status"
	"github.com/lixenwraith/ant-colony/vmath"
)

// statusKeys are shown in order on the status line
var statusKeys = []struct{ key, label string }{
	{status.KeyAntsTotal, "ants"},
	{status.KeyAntsForager, "for"},
	{status.KeyAntsNurse, "nur"},
	{status.KeyAntsIdle, "idl"},
	{status.KeyLarvaCount, "larva"},
	{status.KeyFoodColony, "stock"},
	{status.KeyFoodChunks, "chunks"},
	{status.KeyAntsDied, "died"},
}

// Renderer draws one frame per call; it holds no world state between frames
type Renderer struct {
	screen tcell.Screen
	Camera Camera

	ShowScent  bool
	ShowStatus bool
	Message    string
}

// NewRenderer wraps an initialized screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:     screen,
		Camera:     NewCamera(4),
		ShowScent:  true,
		ShowStatus: true,
	}
}

// Screen returns the wrapped screen
func (r *Renderer) Screen() tcell.Screen { return r.screen }

// Draw renders the world under its read lock and shows the frame
func (r *Renderer) Draw(world *engine.World, rate engine.TickRate) {
	w, h := r.screen.Size()
	r.screen.SetStyle(styleBase)
	r.screen.Clear()

	world.RunSafe(func() {
		res := world.Resources
		if r.ShowScent {
			r.drawScent(res.Scent, res.Config.Scent.MaxStrength, w, h)
		}
		r.drawFood(world, w, h)
		r.drawSpawners(world, w, h)
		r.drawAnts(world, w, h)
		r.drawDebug(world, w, h)
	})

	if r.ShowStatus {
		r.drawStatus(world, rate, w, h)
	}
	r.screen.Show()
}

func (r *Renderer) set(x, y int, ch rune, style tcell.Style) {
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *Renderer) plot(p vmath.Vec2, ch rune, style tcell.Style, w, h int) {
	if x, y, ok := r.Camera.ToScreen(p, w, h); ok {
		r.set(x, y, ch, style)
	}
}

func (r *Renderer) drawScent(f *scent.Field, maxStrength float64, w, h int) {
	if maxStrength <= 0 {
		return
	}
	shade := func(c scent.Category, color tcell.Color) {
		f.Cells(c, func(cell vmath.Cell, v float64) {
			i := int(v / maxStrength * float64(len(scentRamp)))
			i = min(max(i, 0), len(scentRamp)-1)
			r.plot(cell.Vec(), scentRamp[i], styleBase.Foreground(color), w, h)
		})
	}
	shade(scent.AntSmell, tcell.ColorDarkSlateGray)
	// Food trail overdraws ant smell
	shade(scent.FoundFoodSmell, tcell.ColorOlive)
}

func (r *Renderer) drawFood(world *engine.World, w, h int) {
	store := world.Components.Food
	for _, e := range store.All() {
		f, ok := store.Get(e)
		if !ok {
			continue
		}
		style := styleFood
		if f.ExclusionDistance() >= 2*r.Camera.Scale {
			style = styleFoodBig
		}
		r.plot(f.Position, '*', style, w, h)
	}
}

func (r *Renderer) drawSpawners(world *engine.World, w, h int) {
	store := world.Components.Spawner
	for _, e := range store.All() {
		if sp, ok := store.Get(e); ok {
			r.plot(sp.Position, 'H', styleSpawner, w, h)
		}
	}
}

func (r *Renderer) drawAnts(world *engine.World, w, h int) {
	c := &world.Components
	for _, e := range c.Ant.All() {
		ant, ok := c.Ant.Get(e)
		if !ok {
			continue
		}
		nav, ok := c.Nav.Get(e)
		if !ok {
			continue
		}
		fc, hasForager := c.Forager.Get(e)
		ch, style := antGlyph(ant.Role, fc.State, hasForager, ant.Carrying)
		r.plot(nav.Position, ch, style, w, h)
	}
}

func (r *Renderer) drawDebug(world *engine.World, w, h int) {
	store := world.Components.Debug
	for _, e := range store.All() {
		dbg, ok := store.Get(e)
		if !ok {
			continue
		}
		for _, op := range dbg.Ops {
			style := debugStyle(op.Color)
			switch op.Kind {
			case component.DrawCircle:
				r.circle(op.From, op.Radius, style, w, h)
			case component.DrawLine:
				r.line(op.From, op.To, '·', style, w, h)
			case component.DrawRect:
				r.rect(op.From, op.To, style, w, h)
			}
		}
	}
}

// circle samples the outline at roughly one point per column of circumference
func (r *Renderer) circle(center vmath.Vec2, radius float64, style tcell.Style, w, h int) {
	if radius <= 0 || !center.IsFinite() {
		return
	}
	steps := min(max(8, int(vmath.Tau*radius/r.Camera.Scale)), 256)
	for i := 0; i < steps; i++ {
		p := vmath.V2Add(center, vmath.V2Scale(vmath.V2FromAngle(vmath.Tau*float64(i)/float64(steps)), radius))
		r.plot(p, '∘', style, w, h)
	}
}

func (r *Renderer) line(from, to vmath.Vec2, ch rune, style tcell.Style, w, h int) {
	x0, y0, _ := r.Camera.ToScreen(from, w, h)
	x1, y1, _ := r.Camera.ToScreen(to, w, h)
	if !from.IsFinite() || !to.IsFinite() {
		return
	}
	n := max(abs(x1-x0), abs(y1-y0))
	if n > w+h {
		n = w + h
	}
	vw, vh := viewport(w, h)
	for i := 0; i <= n; i++ {
		t := 0.0
		if n > 0 {
			t = float64(i) / float64(n)
		}
		x := x0 + int(math.Round(t*float64(x1-x0)))
		y := y0 + int(math.Round(t*float64(y1-y0)))
		if x >= 0 && y >= 0 && x < vw && y < vh {
			r.set(x, y, ch, style)
		}
	}
}

func (r *Renderer) rect(lo, hi vmath.Vec2, style tcell.Style, w, h int) {
	tl, tr := lo, vmath.V2(hi.X, lo.Y)
	bl, br := vmath.V2(lo.X, hi.Y), hi
	r.line(tl, tr, '─', style, w, h)
	r.line(bl, br, '─', style, w, h)
	r.line(tl, bl, '│', style, w, h)
	r.line(tr, br, '│', style, w, h)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// StatusLine formats the bottom row text
func StatusLine(reg *status.Registry, rate engine.TickRate) string {
	var b strings.Builder
	fmt.Fprintf(&b, " %s t=%.1fs", rate, reg.Floats.Get(status.KeySimSeconds).Get())
	for _, k := range statusKeys {
		fmt.Fprintf(&b, " %s=%d", k.label, reg.Int(k.key))
	}
	return b.String()
}

func (r *Renderer) drawStatus(world *engine.World, rate engine.TickRate, w, h int) {
	if h <= 0 {
		return
	}
	y := h - 1
	text := StatusLine(world.Resources.Status, rate)
	if r.Message != "" {
		text += " | " + r.Message
	}
	x := 0
	for _, ch := range text {
		if x >= w {
			break
		}
		r.set(x, y, ch, styleStatus)
		x++
	}
	for ; x < w; x++ {
		r.set(x, y, ' ', styleStatus)
	}
}
