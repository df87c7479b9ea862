package main

import (
	"fmt"

	"github.com/quiltui/quilt/engine/colors"
	"github.com/quiltui/quilt/engine/core"
	"github.com/quiltui/quilt/engine/profiler"
	"github.com/quiltui/quilt/engine/scratch"
	"github.com/quiltui/quilt/ui"
)

// LayerDebug overlays runtime statistics in the top-right corner. It runs
// its own interface session so its tree never interferes with the demo's
// focus or capture state.
type LayerDebug struct {
	app *App

	session       *ui.Session
	frameDuration float32
	tick          int
}

func (l *LayerDebug) OnAttach(e *core.Engine) {
	l.session = ui.NewSession(l.app.r2d)
}

func (l *LayerDebug) OnDetach(e *core.Engine) {}

func (l *LayerDebug) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerDebug) OnRender(e *core.Engine, alpha float64) {
	scopeRender := profiler.Start("LayerDebug.OnRender")

	a := l.app
	l.session.Run(a.mgr, a.fonts, a.input, func(c *ui.Context) { l.build(c, e) })
	a.r2d.EndScene()

	// Topmost layer renders last; retire the frame's input transitions and
	// the scratch strings built during it.
	a.input.EndFrame()
	scratch.Reset()

	scopeRender()
}

func (l *LayerDebug) build(c *ui.Context, e *core.Engine) {
	c.SetTextFont("default")

	c.StartGroup(ui.LayoutVerticalLeft, 6, "debug")
	c.PositionGroup(ui.AlignRight, ui.AlignTop, ui.Vec2{X: -16, Y: 16})
	c.SetMargin(ui.UniformMargin(12))
	c.ColorBackground(colors.Black.WithAlpha(0.5))

	stats := l.app.stats
	l.header(c, "Frame")
	l.line(c, func(b scratch.Builder) {
		b.I(l.tick).S("  ").F64(float64(l.frameDuration), 2).S(" ms")
	})
	l.header(c, "2D Renderer")
	l.line(c, func(b scratch.Builder) { b.S("draw calls: ").I(stats.DrawCalls) })
	l.line(c, func(b scratch.Builder) { b.S("quads: ").I(stats.QuadCount) })
	l.line(c, func(b scratch.Builder) { b.S("vertices: ").I(stats.TotalVertexCount()) })
	l.line(c, func(b scratch.Builder) { b.S("textures: ").I(stats.TextureCount) })
	l.header(c, "Runtime")
	l.line(c, func(b scratch.Builder) {
		b.S("heap: ").F64(float64(profiler.MemoryUsage())/(1<<20), 2).S(" MB")
	})
	l.line(c, func(b scratch.Builder) { b.S("goroutines: ").I(profiler.NumGoroutine()) })
	l.line(c, func(b scratch.Builder) { b.S("cpus: ").I(profiler.NumCPU()) })
	l.header(c, "GPU")
	c.Label(e.Renderer.GPURenderer(), 18)
	c.Label(e.Renderer.GPUVersion(), 18)

	c.EndGroup()
}

func (l *LayerDebug) header(c *ui.Context, s string) {
	c.SetTextColor(colors.Yellow)
	c.Label(s, 20)
	c.SetTextColor(colors.White)
}

func (l *LayerDebug) line(c *ui.Context, f func(scratch.Builder)) {
	m := scratch.Mark()
	f(scratch.F())
	c.Label(scratch.StringViewFrom(m), 18)
}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool {
	if v, ok := ev.(core.EventKey); ok {
		if v.Down && v.Key == core.KeyP && (v.Mods&core.ModCtrl) != 0 {
			if path, err := profiler.OpenProfilerGraph(); err == nil {
				fmt.Println("speedscope dump:", path)
			} else {
				fmt.Println("profiler dump error:", err)
			}
			return true
		}
	}
	return false
}
