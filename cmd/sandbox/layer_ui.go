package main

import (
	"github.com/quiltui/quilt/engine/colors"
	"github.com/quiltui/quilt/engine/core"
	"github.com/quiltui/quilt/engine/profiler"
	"github.com/quiltui/quilt/engine/scratch"
	"github.com/quiltui/quilt/ui"
)

// LayerUI drives the immediate-mode interface. All widget state the
// interface edits lives here; the session only keeps interaction state.
type LayerUI struct {
	app *App

	name       string
	volume     float32
	listOff    ui.Vec2
	selected   string
	clicks     int
	showDialog bool
}

func NewLayerUI(a *App) *LayerUI {
	return &LayerUI{app: a, name: "player one", volume: 0.4, selected: "item 3"}
}

func (l *LayerUI) OnAttach(e *core.Engine) {}
func (l *LayerUI) OnDetach(e *core.Engine) {}

func (l *LayerUI) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerUI) OnRender(e *core.Engine, alpha float64) {
	renderEnd := profiler.Start("LayerUI.OnRender")

	a := l.app
	a.session.Run(a.mgr, a.fonts, a.input, l.build)
	a.r2d.EndScene() // flush whatever the last projection still holds

	renderEnd()
}

func (l *LayerUI) OnEvent(e *core.Engine, ev core.Event) bool { return false }

func (l *LayerUI) build(c *ui.Context) {
	cfg := l.app.cfg.UI
	c.SetVirtualResolution(cfg.VirtualResolution)
	c.SetDragStartThreshold(cfg.DragStartThreshold)
	c.SetScrollSpeed(cfg.ScrollSpeedDrag, cfg.ScrollSpeedWheel, cfg.ScrollSpeedGamepad)
	c.SetTextFont("default")
	c.SetTextColor(colors.White)

	l.buildPanel(c)
	if l.showDialog {
		l.buildDialog(c)
	}
}

func (l *LayerUI) buildPanel(c *ui.Context) {
	c.StartGroup(ui.LayoutVerticalLeft, 10, "panel")
	c.PositionGroup(ui.AlignLeft, ui.AlignCenter, ui.Vec2{X: 40})
	c.SetMargin(ui.UniformMargin(16))
	if tex, ok := c.Texture("panel"); ok {
		c.ImageBackgroundNinePatch(tex, ui.NinePatch{U0: 0.25, V0: 0.25, U1: 0.75, V1: 0.75})
	} else {
		c.ColorBackground(colors.Black.WithAlpha(0.6))
	}

	c.Label("quilt sandbox", 36)

	if tex, ok := c.Texture("player"); ok {
		c.Image(tex, 80)
	}

	if l.button(c, "btn-dialog", "Open dialog") {
		l.showDialog = true
	}
	if l.button(c, "btn-click", "Click me") {
		l.clicks++
	}

	m := scratch.Mark()
	scratch.F().S("clicks: ").I(l.clicks).S("  selected: ").S(l.selected)
	c.Label(scratch.StringViewFrom(m), 24)

	l.volumeRow(c)
	l.itemList(c)

	c.StartGroup(ui.LayoutHorizontalCenter, 8, "name-row")
	c.Label("Name", 24)
	c.Edit(28, ui.Vec2{X: 260}, "name-edit", &l.name)
	c.EndGroup()

	c.EndGroup()
}

// button is a labeled group reacting to clicks, tinted by interaction state.
func (l *LayerUI) button(c *ui.Context, id, label string) bool {
	c.StartGroup(ui.LayoutHorizontalCenter, 8, id)
	c.SetMargin(ui.SymmetricMargin(14, 8))
	ev := c.CheckEvent()
	col := colors.RGB(0.22, 0.25, 0.32)
	switch {
	case ev.Has(ui.EventIsDown):
		col = col.Scaled(0.7)
	case ev.Has(ui.EventHover):
		col = col.Scaled(1.4)
	}
	c.ColorBackground(col)
	c.Label(label, 26)
	c.EndGroup()
	return ev.Has(ui.EventWentUp)
}

func (l *LayerUI) volumeRow(c *ui.Context) {
	c.StartGroup(ui.LayoutHorizontalCenter, 8, "volume-row")
	c.Label("Volume", 24)

	c.StartGroup(ui.LayoutOverlay, 0, "volume")
	c.StartSlider(ui.Horizontal, 4, &l.volume)
	r2d, vol := l.app.r2d, &l.volume
	c.CustomElement(ui.Vec2{X: 240, Y: 26}, "volume#body", func(pos, size ui.Point) {
		track := ui.Point{X: size.X, Y: size.Y / 3}
		tpos := ui.Point{X: pos.X, Y: pos.Y + (size.Y-track.Y)/2}
		r2d.DrawQuad(tpos, track, colors.RGB(0.15, 0.17, 0.2))
		knob := ui.Point{X: size.Y / 2, Y: size.Y}
		kx := pos.X + int(*vol*float32(size.X-knob.X))
		r2d.DrawQuad(ui.Point{X: kx, Y: pos.Y}, knob, colors.Gray)
	})
	c.EndSlider()
	c.EndGroup()

	m := scratch.Mark()
	scratch.F().I(int(l.volume*100 + 0.5)).C('%')
	c.Label(scratch.StringViewFrom(m), 24)
	c.EndGroup()
}

func (l *LayerUI) itemList(c *ui.Context) {
	items := [...]string{
		"item 1", "item 2", "item 3", "item 4", "item 5",
		"item 6", "item 7", "item 8", "item 9", "item 10",
	}

	c.StartGroup(ui.LayoutVerticalLeft, 4, "list")
	c.StartScroll(ui.Vec2{X: 300, Y: 180}, &l.listOff)
	for _, it := range items {
		c.StartGroup(ui.LayoutHorizontalTop, 0, it)
		c.SetMargin(ui.SymmetricMargin(8, 4))
		ev := c.CheckEvent()
		if ev.Has(ui.EventWentUp) {
			l.selected = it
		}
		if it == l.selected {
			c.ColorBackground(colors.RGB(0.2, 0.3, 0.45))
		} else if ev.Has(ui.EventHover) {
			c.ColorBackground(colors.White.WithAlpha(0.08))
		}
		c.Label(it, 24)
		c.EndGroup()
	}
	c.EndScroll()
	c.EndGroup()
}

func (l *LayerUI) buildDialog(c *ui.Context) {
	c.StartGroup(ui.LayoutVerticalCenter, 12, "dialog")
	c.PositionGroup(ui.AlignCenter, ui.AlignCenter, ui.Vec2{})
	c.ModalGroup()
	c.SetMargin(ui.UniformMargin(24))
	c.ColorBackground(colors.RGB(0.12, 0.14, 0.18))
	c.SetDefaultFocus()

	c.Label("Paused", 32)
	c.Label("Everything behind this dialog is inert.", 22)
	if l.button(c, "btn-close", "Close") {
		l.showDialog = false
	}
	c.EndGroup()
}
